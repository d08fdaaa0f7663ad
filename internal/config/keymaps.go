package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Session
	Refresh  string `yaml:"refresh"`
	UserInfo string `yaml:"user_info"`
	SignOut  string `yaml:"sign_out"`

	// Error alert
	Retry   string `yaml:"retry"`
	Dismiss string `yaml:"dismiss"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Refresh:  "r",
		UserInfo: "u",
		SignOut:  "s",

		Retry:   "enter",
		Dismiss: "esc",

		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.UserInfo == "" {
		k.UserInfo = defaults.UserInfo
	}
	if k.SignOut == "" {
		k.SignOut = defaults.SignOut
	}
	if k.Retry == "" {
		k.Retry = defaults.Retry
	}
	if k.Dismiss == "" {
		k.Dismiss = defaults.Dismiss
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
