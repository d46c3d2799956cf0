package backdrop

import (
	"flag"
	"strconv"
)

// Config controls how the background is mounted.
type Config struct {
	// Seed drives every random draw. Zero picks one from the wall clock.
	Seed int64
	// Cursor enables the trailing cursor layer.
	Cursor bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Seed: 42}
}

// FromMap populates a config from flag-style key/value pairs.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().With(cfg)
}

// With returns c with the recognized keys of cfg applied. Unknown keys and
// unparsable values are ignored.
func (c Config) With(cfg map[string]string) Config {
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["cursor"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Cursor = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle placement (0 = time based)")
	fs.BoolVar(&c.Cursor, "cursor", c.Cursor, "draw the trailing cursor layer")
}
