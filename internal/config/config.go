// Package config provides configuration for the chess rules engine and its
// interactive front end.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Debug enables the engine's debug trace and the debug-only commands.
	Debug bool

	// Verbosity: 0=errors only, 1=normal messages, 2=running commentary.
	Verbosity int

	Rules   RulesConfig
	Display DisplayConfig
	Storage StorageConfig

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Rules:      *NewRulesConfig(),
		Display:    *NewDisplayConfig(),
		Storage:    *NewStorageConfig(),
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream the interpreter writes boards and replies to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}
