package main

import (
	"context"
	"io"
	"os"

	"github.com/jcorbin/lineforth/internal/engine"
	"github.com/jcorbin/lineforth/internal/fileinput"
	"github.com/jcorbin/lineforth/internal/logio"
)

func main() {
	ctx := context.Background()
	log := logio.NewLogger(os.Stderr)

	opts, cfg, err := parseOptions(os.Args[1:])
	if helpRequested(err) {
		return
	} else if err != nil {
		// go-flags already printed its own parse errors
		if !isFlagsError(err) {
			log.Errorf("%v", err)
		}
		os.Exit(2)
	}

	if opts.Batch {
		log.ErrorIf(runBatch(ctx, cfg, log, opts.Args.Files, opts.Dump))
		os.Exit(log.ExitCode())
	}

	log.ErrorIf(runSequential(ctx, cfg, log, opts))
	os.Exit(log.ExitCode())
}

// runSequential runs every named file, then stdin when no files were named or
// when asked to, all on one engine.
func runSequential(ctx context.Context, cfg config, log *logio.Logger, opts options) error {
	var engOpts []engine.Option
	if cfg.Transcript != "" {
		f, err := os.Create(cfg.Transcript)
		if err != nil {
			return err
		}
		defer func() { log.ErrorIf(f.Close()) }()
		engOpts = append(engOpts, engine.WithTee(f))
	}
	sess := newSession(cfg, log, os.Stdout, engOpts...)

	if files := opts.Args.Files; len(files) > 0 {
		in, err := openFiles(files)
		if err != nil {
			return err
		}
		defer in.Close()
		if err := sess.run(ctx, in, false); err != nil {
			return err
		}
	}

	if len(opts.Args.Files) == 0 || opts.Interactive {
		in := fileinput.Input{Queue: []io.Reader{os.Stdin}}
		if err := sess.run(ctx, &in, true); err != nil {
			return err
		}
	}

	if opts.Dump {
		return sess.eng.Dump(os.Stdout)
	}
	return nil
}

func openFiles(names []string) (*fileinput.Input, error) {
	in := &fileinput.Input{}
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			in.Close()
			return nil, err
		}
		in.Queue = append(in.Queue, f)
	}
	return in, nil
}
