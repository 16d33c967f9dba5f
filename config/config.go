package config

import (
	"fmt"

	"github.com/imdario/mergo"
)

// Output formats for parsed commits.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	Debug    bool   `json:"debug,omitempty"`
	Quiet    bool   `json:"quiet,omitempty"`
	Format   string `json:"format,omitempty"`
	Template string `json:"template,omitempty"`
	// MarkBreaking renders a "!" header marker when reformatting any
	// breaking commit, including ones whose breaking flag came from a
	// BREAKING CHANGE footer rather than the header.
	MarkBreaking bool       `json:"mark_breaking,omitempty"`
	Term         TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Format {
	case "", FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Debug {
		return
	}
	c.Printf(msg, args...)
}
