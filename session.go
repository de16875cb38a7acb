package main

import (
	"context"
	"errors"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/jcorbin/lineforth/internal/engine"
	"github.com/jcorbin/lineforth/internal/fileinput"
	"github.com/jcorbin/lineforth/internal/lexer"
	"github.com/jcorbin/lineforth/internal/logio"
	"github.com/jcorbin/lineforth/internal/panicerr"
)

// session feeds input lines to one engine, reporting errors through log.
type session struct {
	eng *engine.Engine
	log *logio.Logger

	out    io.Writer
	prompt string
	color  bool
}

func newSession(cfg config, log *logio.Logger, out io.Writer, opts ...engine.Option) *session {
	engOpts := []engine.Option{
		engine.WithOutput(out),
		engine.WithMaxDepth(cfg.MaxDepth),
	}
	if cfg.Trace {
		engOpts = append(engOpts, engine.WithLogf(log.Leveledf("TRACE")))
	}
	return &session{
		eng:    engine.New(append(engOpts, opts...)...),
		log:    log,
		out:    out,
		prompt: cfg.Prompt,
		color:  cfg.Color,
	}
}

// run executes every line from in; errors in a line are reported and do not
// stop the loop. Only input errors and context cancellation are returned.
func (sess *session) run(ctx context.Context, in *fileinput.Input, interactive bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if interactive && sess.prompt != "" {
			if _, err := io.WriteString(sess.out, sess.prompt); err != nil {
				return err
			}
		}
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		sess.exec(line)
	}
}

func (sess *session) exec(line fileinput.Line) {
	err := panicerr.Recover(line.Location.String(), func() error {
		return sess.eng.Execute(line.Text)
	})
	if err == nil {
		return
	}

	var fault *panicerr.Fault
	if errors.As(err, &fault) {
		sess.log.Errorf("%v", fault)
		if !fault.Exit {
			sess.log.Printf("DEBUG", "panic stack:\n%s", fault.Stack)
			sess.log.Printf("DEBUG", "engine state:\n%s", spew.Sdump(sess.eng))
		}
		return
	}

	sess.log.Errorf("%v: %v", line.Location, err)
	var loc interface{ Location() lexer.Span }
	if errors.As(err, &loc) {
		sess.log.Printf("", "%s", highlight(line.Text, loc.Location(), sess.color))
	}
}
