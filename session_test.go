package main

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/lineforth/internal/engine"
	"github.com/jcorbin/lineforth/internal/fileinput"
	"github.com/jcorbin/lineforth/internal/logio"
)

type namedSource struct {
	*strings.Reader
	name string
}

func (ns namedSource) Name() string { return ns.name }

func source(name string, lines ...string) io.Reader {
	return namedSource{strings.NewReader(strings.Join(lines, "\n")), name}
}

type sessionTest struct {
	name        string
	cfg         config
	input       []string
	interactive bool

	expectOutput string
	expectLog    string
	expectStack  []int
	expectCode   int
}

func sessTest(name string) sessionTest {
	cfg := defaultConfig()
	cfg.Color = false
	return sessionTest{name: name, cfg: cfg, expectStack: []int{}}
}

func (st sessionTest) withConfig(f func(*config)) sessionTest {
	f(&st.cfg)
	return st
}

func (st sessionTest) withInput(lines ...string) sessionTest {
	st.input = lines
	return st
}

func (st sessionTest) withPrompt() sessionTest {
	st.interactive = true
	return st
}

func (st sessionTest) expect(output string, stack ...int) sessionTest {
	st.expectOutput = output
	st.expectStack = append([]int{}, stack...)
	return st
}

func (st sessionTest) expectLogLines(code int, lines ...string) sessionTest {
	st.expectCode = code
	st.expectLog = strings.Join(lines, "\n") + "\n"
	return st
}

func (st sessionTest) run(t *testing.T) {
	var out, logBuf bytes.Buffer
	log := logio.NewLogger(&logBuf)
	sess := newSession(st.cfg, log, &out)

	in := fileinput.Input{Queue: []io.Reader{source("test.fs", st.input...)}}
	require.NoError(t, sess.run(context.Background(), &in, st.interactive))

	assert.Equal(t, st.expectOutput, out.String(), "expected output")
	if st.expectLog != "" {
		assert.Equal(t, st.expectLog, logBuf.String(), "expected log")
	} else {
		assert.Empty(t, logBuf.String(), "expected no log")
	}
	assert.Equal(t, st.expectStack, sess.eng.Stack(), "expected stack")
	assert.Equal(t, st.expectCode, log.ExitCode(), "expected exit code")
}

func Test_session(t *testing.T) {
	for _, st := range []sessionTest{
		sessTest("ok").withInput(
			": SQ DUP * ;",
			"3 SQ .",
			"", "", // a blank statement, then the final line feed
		).expect(" OK\n9 OK\n OK\n"),

		sessTest("unknown word").withInput(
			"1 NOPE",
			"2",
		).expect(" OK\n", 1, 2).expectLogLines(1,
			`ERROR: test.fs:1: unknown word: "NOPE" at 2`,
			`  1 NOPE`,
			`    ^^^^`,
		),

		sessTest("syntax error").withInput(
			"( unclosed",
		).expect("").expectLogLines(1,
			`ERROR: test.fs:1: unbalanced parenthesis at 0: "( unclosed"`,
			`  ( unclosed`,
			`  ^^^^^^^^^^`,
		),

		sessTest("error in body").withInput(
			": BAD 1 0 / ;",
			"7 BAD",
		).expect(" OK\n", 7, 1, 0).expectLogLines(1,
			`ERROR: test.fs:2: division by zero: "/" at 2`,
			`  7 BAD`,
			`    ^^^`,
		),

		sessTest("color").withConfig(func(cfg *config) {
			cfg.Color = true
		}).withInput(
			"DROP",
		).expect("").expectLogLines(1,
			`ERROR: test.fs:1: empty stack: "DROP" at 0`,
			"  \x1b[1;31mDROP\x1b[0m",
		),

		sessTest("prompt").withPrompt().withInput(
			"1 2 +",
			".",
		).expect(">  OK\n> 3 OK\n> "),

		sessTest("empty prompt").withConfig(func(cfg *config) {
			cfg.Prompt = ""
		}).withPrompt().withInput(
			"4",
		).expect(" OK\n", 4),

		sessTest("trace").withConfig(func(cfg *config) {
			cfg.Trace = true
		}).withInput(
			"5",
		).expect(" OK\n", 5).expectLogLines(0,
			`TRACE: >    "5"`,
		),
	} {
		t.Run(st.name, st.run)
	}
}

func Test_session_canceled(t *testing.T) {
	var out bytes.Buffer
	sess := newSession(defaultConfig(), logio.NewLogger(nil), &out, engine.WithStack(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := fileinput.Input{Queue: []io.Reader{source("test.fs", "2 3")}}
	assert.Equal(t, context.Canceled, sess.run(ctx, &in, false))
	assert.Equal(t, []int{1}, sess.eng.Stack())
	assert.Empty(t, out.String())
}

// faultyWriter runs fail on every write of engine output.
type faultyWriter func()

func (fw faultyWriter) Write(p []byte) (int, error) {
	fw()
	return len(p), nil
}

func Test_session_faults(t *testing.T) {
	for _, tc := range []struct {
		name   string
		fail   func()
		expect func(t *testing.T, log string)
	}{
		{
			name: "panic",
			fail: func() { panic("output gone") },
			expect: func(t *testing.T, log string) {
				assert.True(t, strings.HasPrefix(log, "ERROR: test.fs:1 panicked: output gone\n"), "got %q", log)
				assert.Contains(t, log, "DEBUG: panic stack:\n")
				assert.Contains(t, log, "DEBUG: engine state:\n")
			},
		},
		{
			name: "goexit",
			fail: runtime.Goexit,
			expect: func(t *testing.T, log string) {
				assert.Equal(t, "ERROR: test.fs:1 called runtime.Goexit\n", log)
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			log := logio.NewLogger(&logBuf)
			sess := newSession(defaultConfig(), log, faultyWriter(tc.fail))

			in := fileinput.Input{Queue: []io.Reader{source("test.fs", "1 2 +")}}
			require.NoError(t, sess.run(context.Background(), &in, false))

			tc.expect(t, logBuf.String())
			assert.Equal(t, 1, log.ExitCode())
			assert.Equal(t, []int{3}, sess.eng.Stack(), "expected effects before the fault to remain")
		})
	}
}
