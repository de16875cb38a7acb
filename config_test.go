package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHome points home directory expansion at a temporary directory.
func fakeHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return home
}

func Test_config_apply(t *testing.T) {
	home := fakeHome(t)

	cfg := defaultConfig()
	require.NoError(t, cfg.apply(properties.MustLoadString(`
prompt = ok>\u0020
color = false
trace = true
max.depth = 64
transcript = ~/session.log
`)))
	assert.Equal(t, config{
		Prompt:     "ok> ",
		Color:      false,
		Trace:      true,
		MaxDepth:   64,
		Transcript: filepath.Join(home, "session.log"),
	}, cfg)
}

func Test_config_apply_defaults(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.apply(properties.MustLoadString("# nothing set\n")))
	assert.Equal(t, defaultConfig(), cfg)
}

func Test_config_apply_invalidDepth(t *testing.T) {
	for _, tc := range []struct {
		props string
		err   string
	}{
		{"max.depth = 0\n", "invalid max.depth: 0 is not within [1, 65536]"},
		{"max.depth = 10000000\n", "invalid max.depth: 10000000 is not within [1, 65536]"},
	} {
		cfg := defaultConfig()
		assert.EqualError(t, cfg.apply(properties.MustLoadString(tc.props)), tc.err)
	}

	cfg := defaultConfig()
	require.NoError(t, cfg.apply(properties.MustLoadString("max.depth = 65536\n")))
	assert.Equal(t, 65536, cfg.MaxDepth)
}

func Test_config_loadFile(t *testing.T) {
	home := fakeHome(t)

	t.Run("missing optional", func(t *testing.T) {
		cfg := defaultConfig()
		require.NoError(t, cfg.loadFile(defaultConfigPath, false))
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("missing required", func(t *testing.T) {
		cfg := defaultConfig()
		assert.Error(t, cfg.loadFile("~/nope.properties", true))
	})

	t.Run("from home", func(t *testing.T) {
		path := filepath.Join(home, ".lineforth.properties")
		require.NoError(t, os.WriteFile(path, []byte("trace = true\n"), 0o644))
		cfg := defaultConfig()
		require.NoError(t, cfg.loadFile(defaultConfigPath, false))
		assert.True(t, cfg.Trace)
	})
}
