package main

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Config      string `long:"config" value-name:"FILE" description:"read settings from a properties file (default ~/.lineforth.properties)"`
	Prompt      string `long:"prompt" description:"interactive prompt"`
	Trace       bool   `long:"trace" description:"log execution of every word to stderr"`
	MaxDepth    int    `long:"max-depth" value-name:"N" description:"limit on nested calls of defined words"`
	NoColor     bool   `long:"no-color" description:"underline errors with carets instead of color"`
	Transcript  string `long:"transcript" value-name:"FILE" description:"also write all output to FILE"`
	Dump        bool   `long:"dump" description:"dump the stack and words after input ends"`
	Batch       bool   `long:"batch" description:"run each file on its own engine, concurrently"`
	Interactive bool   `short:"i" long:"interactive" description:"read stdin after running files"`

	Args struct {
		Files []string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

var errBatchNeedsFiles = errors.New("--batch requires at least one FILE")

func parseOptions(args []string) (opts options, cfg config, err error) {
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [FILE...]"
	if _, err = parser.ParseArgs(args); err != nil {
		return opts, cfg, err
	}

	cfg = defaultConfig()
	if opts.Config != "" {
		err = cfg.loadFile(opts.Config, true)
	} else {
		err = cfg.loadFile(defaultConfigPath, false)
	}
	if err != nil {
		return opts, cfg, err
	}

	// flags given on the command line override the properties file
	isSet := func(name string) bool {
		opt := parser.FindOptionByLongName(name)
		return opt != nil && opt.IsSet()
	}
	if isSet("prompt") {
		cfg.Prompt = opts.Prompt
	}
	if isSet("trace") {
		cfg.Trace = opts.Trace
	}
	if isSet("max-depth") {
		cfg.MaxDepth = opts.MaxDepth
	}
	if isSet("no-color") {
		cfg.Color = !opts.NoColor
	}
	if isSet("transcript") {
		cfg.Transcript = opts.Transcript
	}

	if err = checkMaxDepth(cfg.MaxDepth); err != nil {
		err = fmt.Errorf("invalid --max-depth: %w", err)
	} else if opts.Batch && len(opts.Args.Files) == 0 {
		err = errBatchNeedsFiles
	}
	return opts, cfg, err
}

func helpRequested(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

func isFlagsError(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr)
}
