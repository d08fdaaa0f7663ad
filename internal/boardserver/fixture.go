// Package boardserver is a small fixture-backed implementation of the board
// API, used to run the client end to end without a real backend.
package boardserver

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoUsers           = errors.New("fixture has no users")
	ErrDuplicateUsername = errors.New("duplicate username")
)

// Fixture is the data the server serves
type Fixture struct {
	Users []FixtureUser `yaml:"users"`
}

// FixtureUser is one account and its board
type FixtureUser struct {
	ID        types.UserID    `yaml:"id"`
	Username  string          `yaml:"username"`
	Password  string          `yaml:"password"`
	Name      string          `yaml:"name"`
	Email     string          `yaml:"email"`
	AvatarURL string          `yaml:"avatar_url"`
	Columns   []models.Column `yaml:"columns"`

	// passwordHash replaces Password once the fixture is prepared
	passwordHash []byte
}

// Info returns the identity served for the user
func (u *FixtureUser) Info() *models.UserInfo {
	return &models.UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}

// LoadFixture reads a fixture from a YAML file
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

// DefaultFixture is served when no fixture file is given
func DefaultFixture() *Fixture {
	return &Fixture{Users: []FixtureUser{{
		Username: "demo",
		Password: "demo",
		Name:     "Demo User",
		Email:    "demo@example.com",
		Columns: []models.Column{
			{ID: "todo", Title: "To Do", Cards: []models.Card{
				{Title: "Try the board", Contents: "Move around with h, j, k and l", Author: "Demo User"},
				{Title: "Open your profile", Contents: "Press u to see who is signed in", Author: "Demo User"},
			}},
			{ID: "doing", Title: "In Progress", Cards: []models.Card{
				{Title: "Refresh", Contents: "Press r to fetch the board again", Author: "todoboard"},
			}},
			{ID: "done", Title: "Done"},
		},
	}}}
}

// prepare validates the fixture, hashes passwords and fills in missing ids
func (f *Fixture) prepare() error {
	if len(f.Users) == 0 {
		return ErrNoUsers
	}

	seen := make(map[string]bool, len(f.Users))
	for i := range f.Users {
		u := &f.Users[i]
		if u.Username == "" {
			return fmt.Errorf("user at position %d has no username", i)
		}
		if seen[u.Username] {
			return fmt.Errorf("%w: %s", ErrDuplicateUsername, u.Username)
		}
		seen[u.Username] = true

		if u.ID == "" {
			u.ID = types.UserID(uuid.NewString())
		}
		if u.Name == "" {
			u.Name = u.Username
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", u.Username, err)
		}
		u.passwordHash = hash
		u.Password = ""

		for c := range u.Columns {
			col := &u.Columns[c]
			if col.ID == "" {
				col.ID = types.ColumnID(uuid.NewString())
			}
			for k := range col.Cards {
				if col.Cards[k].ID == "" {
					col.Cards[k].ID = types.CardID(uuid.NewString())
				}
			}
		}

		board := models.Board{Columns: u.Columns}
		if err := board.Validate(); err != nil {
			return fmt.Errorf("board of %s: %w", u.Username, err)
		}
	}
	return nil
}

func (u *FixtureUser) checkPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}
