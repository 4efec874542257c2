package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDebug enables the debug trace and debug-only commands.
func (b *ConfigBuilder) WithDebug(enabled bool) *ConfigBuilder {
	b.cfg.Debug = enabled
	return b
}

// WithStrictSelfCheck rejects any move that leaves the mover's king attacked.
func (b *ConfigBuilder) WithStrictSelfCheck(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictSelfCheck = enabled
	return b
}

// WithStartFEN starts games from fen instead of the standard position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Rules.StartFEN = fen
	return b
}

// WithBoardStyle sets how the board is drawn.
func (b *ConfigBuilder) WithBoardStyle(style BoardStyle) *ConfigBuilder {
	b.cfg.Display.Style = style
	return b
}

// WithCoordinates controls the file and rank labels.
func (b *ConfigBuilder) WithCoordinates(show bool) *ConfigBuilder {
	b.cfg.Display.ShowCoordinates = show
	return b
}

// WithBoardAfterMove controls whether the board is redrawn after each move.
func (b *ConfigBuilder) WithBoardAfterMove(show bool) *ConfigBuilder {
	b.cfg.Display.ShowBoardAfterMove = show
	return b
}

// WithStorageDir stores snapshots on disk under dir.
func (b *ConfigBuilder) WithStorageDir(dir string) *ConfigBuilder {
	b.cfg.Storage.Enabled = true
	b.cfg.Storage.Dir = dir
	b.cfg.Storage.InMemory = false
	return b
}

// WithInMemoryStorage keeps snapshots in memory only.
func (b *ConfigBuilder) WithInMemoryStorage() *ConfigBuilder {
	b.cfg.Storage.Enabled = true
	b.cfg.Storage.Dir = ""
	b.cfg.Storage.InMemory = true
	return b
}

// WithoutStorage disables the snapshot commands.
func (b *ConfigBuilder) WithoutStorage() *ConfigBuilder {
	b.cfg.Storage.Enabled = false
	return b
}

// WithInput sets the command stream.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
