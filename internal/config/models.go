package config

// Registry represents the entire user configuration file.
// It stores default encoding preferences so they do not have to be repeated
// as flags on every invocation; flags always win over file values.
type Registry struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	// MaxRatio is the default --max-ratio for encode; 0 means unconstrained.
	MaxRatio float64 `yaml:"max_ratio,omitempty"`
	// Portrait orders recommended dimensions taller than wide by default.
	Portrait bool `yaml:"portrait"`
	// Preview controls whether encode renders a terminal preview by default.
	Preview bool `yaml:"preview"`
	// InspectBytesLimit caps how many blocks 'tti inspect' lists (0 = all).
	InspectBytesLimit int `yaml:"inspect_bytes_limit,omitempty"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Preferences: &Preferences{
			MaxRatio: 0,
			Portrait: false,
			Preview:  true,
		},
	}
}
