package models

import "github.com/thenoetrevino/todoboard/internal/types"

// UserInfo describes the signed-in user as reported by the board API
type UserInfo struct {
	ID        types.UserID `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email,omitempty"`
	AvatarURL string       `json:"avatarUrl,omitempty"`
}

// DisplayName returns the name to show in the UI, falling back to the id
func (u *UserInfo) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.ID.String()
}
