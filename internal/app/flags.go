package app

import (
	"flag"

	"neural-bg/internal/backdrop"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	TPS    int

	Backdrop backdrop.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 1280, Height: 800, TPS: 60, Backdrop: backdrop.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	c.Backdrop.Bind(fs)
}
