package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.App.Width)
	assert.Equal(t, 0, cfg.App.Height)
	assert.False(t, cfg.App.ShowFooter)
	assert.True(t, cfg.App.Mouse)
	assert.False(t, cfg.App.NoColor)
	assert.Equal(t, 500*time.Millisecond, cfg.App.PlaceholderInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.App.RainbowInterval)
	assert.Equal(t, strings.ToLower(console.DefaultBackground), cfg.App.Background)
	assert.Equal(t, strings.ToLower(console.DefaultForeground), cfg.App.Foreground)
	assert.Equal(t, profile.Default(), cfg.App.Profile)
	assert.False(t, cfg.Logging.Trace)
	assert.Equal(t, "500ms", cfg.Flags["placeholderInterval"])
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"--width", "100",
		"--height=40",
		"--footer",
		"--trace",
		"--log-file", "/tmp/termfolio.log",
		"--mouse=false",
		"--rainbow-interval", "250ms",
		"--background", "#ABCDEF",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.App.Width)
	assert.Equal(t, 40, cfg.App.Height)
	assert.True(t, cfg.App.ShowFooter)
	assert.False(t, cfg.App.Mouse)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/termfolio.log", cfg.Logging.FilePath)
	assert.Equal(t, 250*time.Millisecond, cfg.App.RainbowInterval)
	assert.Equal(t, "#abcdef", cfg.App.Background)
	assert.Equal(t, []string{"--width", "100", "--height=40", "--footer", "--trace", "--log-file", "/tmp/termfolio.log", "--mouse=false", "--rainbow-interval", "250ms", "--background", "#ABCDEF"}, cfg.Args)
}

func TestLoadArgsEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{
		"TERMFOLIO_WIDTH=72",
		"TERMFOLIO_VERBOSE=true",
		"TERMFOLIO_PLACEHOLDER_INTERVAL=1s",
		"TERMFOLIO_FOREGROUND=#000000",
		"UNRELATED",
		"",
	})
	require.NoError(t, err)

	assert.Equal(t, 72, cfg.App.Width)
	assert.True(t, cfg.App.Verbose)
	assert.Equal(t, time.Second, cfg.App.PlaceholderInterval)
	assert.Equal(t, "#000000", cfg.App.Foreground)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--width", "90"}, []string{"TERMFOLIO_WIDTH=72"})
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.App.Width)
}

func TestNoColorEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"NO_COLOR=1"})
	require.NoError(t, err)
	assert.True(t, cfg.App.NoColor)

	cfg, err = LoadArgs(nil, []string{"NO_COLOR=1", "TERMFOLIO_NO_COLOR=false"})
	require.NoError(t, err)
	assert.False(t, cfg.App.NoColor)
}

func TestConfigFileSupplementsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termfolio.yaml")
	body := `width: 64
footer: true
rainbow-interval: 50ms
profile:
  name: Ada Lovelace
  email: ada@example.com
  year: 1843
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadArgs([]string{"--config", path}, []string{"TERMFOLIO_WIDTH=70"})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, 70, cfg.App.Width, "environment wins over the file")
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, 50*time.Millisecond, cfg.App.RainbowInterval)
	assert.Equal(t, "Ada Lovelace", cfg.App.Profile.Name)
	assert.Equal(t, "ada@example.com", cfg.App.Profile.Email)
	assert.Equal(t, 1843, cfg.App.Profile.Year)
	assert.Equal(t, profile.Default().Tagline, cfg.App.Profile.Tagline)
}

func TestConfigFileFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height: 33\n"), 0o644))

	cfg, err := LoadArgs(nil, []string{"TERMFOLIO_CONFIG=" + path})
	require.NoError(t, err)
	assert.Equal(t, 33, cfg.App.Height)
}

func TestMissingConfigFileFails(t *testing.T) {
	_, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestInvalidValuesRejected(t *testing.T) {
	cases := map[string][]string{
		"negative width":   {"--width", "-1"},
		"negative height":  {"--height", "-5"},
		"zero interval":    {"--placeholder-interval", "0s"},
		"bad background":   {"--background", "blue"},
		"bad foreground":   {"--foreground", "#12345"},
		"unknown flag":     {"--socket", "x"},
		"non numeric size": {"--width", "wide"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadArgs(args, nil)
			assert.Error(t, err)
		})
	}
}

func TestInvalidEnvironmentRejected(t *testing.T) {
	_, err := LoadArgs(nil, []string{"TERMFOLIO_WIDTH=wide"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width must be an integer")

	_, err = LoadArgs(nil, []string{"TERMFOLIO_RAINBOW_INTERVAL=soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rainbow-interval")
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadDotEnvSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TERMFOLIO_TEST_DOTENV=loaded\n"), 0o644))
	t.Setenv("TERMFOLIO_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("TERMFOLIO_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("TERMFOLIO_TEST_DOTENV"))
}
