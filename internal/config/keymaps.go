package config

// KeyMappings defines all configurable key bindings of the roster window
type KeyMappings struct {
	// Roster actions
	AddStudent    string `yaml:"add_student"`
	RemoveStudent string `yaml:"remove_student"`
	SearchStudent string `yaml:"search_student"`
	ShowAll       string `yaml:"show_all"`

	// Navigation
	NextField string `yaml:"next_field"`
	PrevField string `yaml:"prev_field"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddStudent:    "ctrl+a",
		RemoveStudent: "ctrl+r",
		SearchStudent: "ctrl+f",
		ShowAll:       "ctrl+l",

		NextField: "tab",
		PrevField: "shift+tab",

		Quit: "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddStudent == "" {
		k.AddStudent = defaults.AddStudent
	}
	if k.RemoveStudent == "" {
		k.RemoveStudent = defaults.RemoveStudent
	}
	if k.SearchStudent == "" {
		k.SearchStudent = defaults.SearchStudent
	}
	if k.ShowAll == "" {
		k.ShowAll = defaults.ShowAll
	}
	if k.NextField == "" {
		k.NextField = defaults.NextField
	}
	if k.PrevField == "" {
		k.PrevField = defaults.PrevField
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
