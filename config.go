package nested

// Config holds the engine limits and fabrication policy. A Processor clones
// its Config on construction, so later changes to the caller's copy have no
// effect on it.
type Config struct {
	MaxDepth        int  `json:"max_depth" yaml:"max_depth"`               // Maximum tokens in a path
	MaxListSize     int  `json:"max_list_size" yaml:"max_list_size"`       // Maximum absolute sequence index
	OrderedMappings bool `json:"ordered_mappings" yaml:"ordered_mappings"` // Fabricate insertion-ordered mappings
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxDepth:        MaxDepth,
		MaxListSize:     MaxListSize,
		OrderedMappings: false,
	}
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}

	clone := *c
	return &clone
}

// Validate validates the configuration and applies corrections
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		c.MaxDepth = MaxDepth
	}
	if c.MaxListSize <= 0 {
		c.MaxListSize = MaxListSize
	}
	return nil
}
