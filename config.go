package main

import (
	"fmt"
	"os"

	"github.com/magiconair/properties"
	"github.com/mitchellh/go-homedir"

	"github.com/jcorbin/lineforth/internal/engine"
)

const defaultConfigPath = "~/.lineforth.properties"

// config holds settings shared by the command line and the properties file:
//
//	prompt     = >\u0020
//	color      = true
//	trace      = false
//	max.depth  = 1024
//	transcript = /path/to/session.log
type config struct {
	Prompt     string
	Color      bool
	Trace      bool
	MaxDepth   int
	Transcript string
}

func defaultConfig() config {
	return config{
		Prompt:   "> ",
		Color:    true,
		MaxDepth: engine.DefaultMaxDepth,
	}
}

// loadFile applies settings from a properties file; a missing file is only an
// error when required.
func (cfg *config) loadFile(path string, required bool) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) && !required {
		return nil
	}
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return err
	}
	return cfg.apply(props)
}

func (cfg *config) apply(props *properties.Properties) error {
	cfg.Prompt = props.GetString("prompt", cfg.Prompt)
	cfg.Color = props.GetBool("color", cfg.Color)
	cfg.Trace = props.GetBool("trace", cfg.Trace)
	cfg.MaxDepth = props.GetInt("max.depth", cfg.MaxDepth)
	if err := checkMaxDepth(cfg.MaxDepth); err != nil {
		return fmt.Errorf("invalid max.depth: %w", err)
	}
	if path := props.GetString("transcript", ""); path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return err
		}
		cfg.Transcript = expanded
	}
	return nil
}

func checkMaxDepth(depth int) error {
	if depth < 1 || depth > engine.MaxDepthLimit {
		return fmt.Errorf("%v is not within [1, %v]", depth, engine.MaxDepthLimit)
	}
	return nil
}
