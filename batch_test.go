package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/lineforth/internal/logio"
)

func writeFiles(t *testing.T, files map[string]string) map[string]string {
	dir := t.TempDir()
	paths := make(map[string]string, len(files))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		paths[name] = path
	}
	return paths
}

func sortedLines(s string) []string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	sort.Strings(lines)
	return lines
}

func Test_runBatch(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.fs": "1 2 + .\n",
		"b.fs": ": SQ DUP * ;\n4 SQ .\nNOPE\n",
	})
	a, b := paths["a.fs"], paths["b.fs"]

	var logBuf bytes.Buffer
	log := logio.NewLogger(&logBuf)
	cfg := defaultConfig()
	cfg.Color = false

	require.NoError(t, runBatch(context.Background(), cfg, log, []string{a, b}, false))
	assert.Equal(t, sortedLines(strings.Join([]string{
		a + ": 3 OK",
		b + ":  OK",
		b + ": 16 OK",
		`ERROR: ` + b + `:3: unknown word: "NOPE" at 0`,
		`  NOPE`,
		`  ^^^^`,
	}, "\n")), sortedLines(logBuf.String()))
	assert.Equal(t, 1, log.ExitCode())
}

func Test_runBatch_dump(t *testing.T) {
	paths := writeFiles(t, map[string]string{"a.fs": "7\n"})
	a := paths["a.fs"]

	var logBuf bytes.Buffer
	log := logio.NewLogger(&logBuf)
	require.NoError(t, runBatch(context.Background(), defaultConfig(), log, []string{a}, true))
	assert.Contains(t, logBuf.String(), a+": # Stack (1)\n")
	assert.Contains(t, logBuf.String(), a+":   0: 7\n")
	assert.Equal(t, 0, log.ExitCode())
}

func Test_runBatch_missingFile(t *testing.T) {
	log := logio.NewLogger(nil)
	err := runBatch(context.Background(), defaultConfig(), log,
		[]string{filepath.Join(t.TempDir(), "nope.fs")}, false)
	assert.True(t, os.IsNotExist(err))
}
