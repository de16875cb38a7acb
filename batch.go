package main

import (
	"context"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/lineforth/internal/fileinput"
	"github.com/jcorbin/lineforth/internal/logio"
)

// runBatch runs each named file on its own engine, all at once. Each file's
// output is logged line by line under its name.
func runBatch(ctx context.Context, cfg config, log *logio.Logger, names []string, dump bool) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		name := name
		eg.Go(func() error {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			in := fileinput.Input{Queue: []io.Reader{f}}
			defer in.Close()

			out := &logio.Writer{Logf: log.Leveledf(name)}
			defer out.Close()

			sess := newSession(cfg, log, out)
			if err := sess.run(ctx, &in, false); err != nil {
				return err
			}
			if !dump {
				return nil
			}
			dumpOut := &logio.Writer{Logf: log.Leveledf(name)}
			defer dumpOut.Close()
			return sess.eng.Dump(dumpOut)
		})
	}
	return eg.Wait()
}
