// Package user guesses the account name to offer on the login form.
package user

import (
	"os"
	"os/user"
	"strings"
)

// LoginName returns the name to prefill on the login form.
// TODOBOARD_USER wins, then the OS account, then $USER.
// An empty string means no guess.
func LoginName() string {
	if name := strings.TrimSpace(os.Getenv("TODOBOARD_USER")); name != "" {
		return name
	}
	if current, err := user.Current(); err == nil && current.Username != "" {
		return stripDomain(current.Username)
	}
	return strings.TrimSpace(os.Getenv("USER"))
}

// stripDomain drops a Windows DOMAIN\ prefix
func stripDomain(name string) string {
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		return name[i+1:]
	}
	return name
}
