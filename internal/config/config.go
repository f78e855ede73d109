// Package config loads starshand.hcl.
package config

import (
	"fmt"
	"os"
	"runtime"
	"time"
	_ "time/tzdata"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked for in the working directory.
const DefaultFile = "starshand.hcl"

// Config represents the complete starshand configuration
type Config struct {
	Parser ParserSettings
	Log    LogSettings
	Batch  BatchSettings
	Output OutputSettings
	Notes  NotesSettings
}

// fileConfig is the on-disk shape. Every block is optional.
type fileConfig struct {
	Parser *ParserSettings `hcl:"parser,block"`
	Log    *LogSettings    `hcl:"log,block"`
	Batch  *BatchSettings  `hcl:"batch,block"`
	Output *OutputSettings `hcl:"output,block"`
	Notes  *NotesSettings  `hcl:"notes,block"`
}

// ParserSettings controls hand parsing
type ParserSettings struct {
	// TimeZone is the IANA zone the bracketed ET timestamp is read in.
	TimeZone string `hcl:"timezone,optional"`
}

// LogSettings controls logging
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// BatchSettings controls parsing of multi-hand files
type BatchSettings struct {
	Workers int  `hcl:"workers,optional"`
	Strict  bool `hcl:"strict,optional"`
}

// OutputSettings controls export and rendering
type OutputSettings struct {
	Format string `hcl:"format,optional"`
	Color  *bool  `hcl:"color,optional"`
}

// NotesSettings locates the PokerStars notes file
type NotesSettings struct {
	File string `hcl:"file,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file is not an error
// and yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var cfg Config
	if fc.Parser != nil {
		cfg.Parser = *fc.Parser
	}
	if fc.Log != nil {
		cfg.Log = *fc.Log
	}
	if fc.Batch != nil {
		cfg.Batch = *fc.Batch
	}
	if fc.Output != nil {
		cfg.Output = *fc.Output
	}
	if fc.Notes != nil {
		cfg.Notes = *fc.Notes
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Parser.TimeZone == "" {
		c.Parser.TimeZone = "America/New_York"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Parser.TimeZone); err != nil {
		return fmt.Errorf("parser: invalid timezone %q: %w", c.Parser.TimeZone, err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: invalid level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log: invalid format %q", c.Log.Format)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch: workers must be positive, got %d", c.Batch.Workers)
	}
	switch c.Output.Format {
	case "json", "phh":
	default:
		return fmt.Errorf("output: invalid format %q", c.Output.Format)
	}
	return nil
}

// Location resolves the parser timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Parser.TimeZone)
}

// ColorEnabled reports whether rendered output may use colour.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}
