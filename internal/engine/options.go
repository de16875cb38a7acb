package engine

import (
	"io"

	"github.com/cznic/mathutil"

	"github.com/jcorbin/lineforth/internal/flushio"
)

// DefaultMaxDepth bounds nested function execution unless WithMaxDepth says
// otherwise. WithMaxDepth is clamped to [1, MaxDepthLimit], which keeps deep
// recursion well within the goroutine stack.
const (
	DefaultMaxDepth = 1024
	MaxDepthLimit   = 1 << 16
)

// Option configures an Engine at construction time.
type Option interface{ apply(e *Engine) }

var defaults = []Option{
	withOutput(io.Discard),
	withMaxDepth(DefaultMaxDepth),
}

func (e *Engine) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(e)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(e)
		}
	}
}

func WithOutput(w io.Writer) Option  { return withOutput(w) }
func WithTee(w io.Writer) Option     { return withTee(w) }
func WithMaxDepth(depth int) Option  { return withMaxDepth(depth) }
func WithStack(values ...int) Option { return withStack(values) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(e *Engine) {
	e.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type maxDepthOption int
type stackOption []int

func withOutput(w io.Writer) outputOption   { return outputOption{w} }
func withTee(w io.Writer) teeOption         { return teeOption{w} }
func withMaxDepth(depth int) maxDepthOption { return maxDepthOption(depth) }
func withStack(values []int) stackOption    { return stackOption(values) }

func (o outputOption) apply(e *Engine) {
	if e.out != nil {
		e.out.Flush()
	}
	e.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(e *Engine) {
	e.out = flushio.WriteFlushers(e.out, flushio.NewWriteFlusher(o.Writer))
}

func (depth maxDepthOption) apply(e *Engine) {
	e.maxDepth = mathutil.Clamp(int(depth), 1, MaxDepthLimit)
}

func (values stackOption) apply(e *Engine) {
	e.stack = append(e.stack, values...)
}
