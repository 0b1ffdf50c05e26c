package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/jamessmith/termfolio/internal/app"
	"github.com/jamessmith/termfolio/internal/console"
	"github.com/jamessmith/termfolio/internal/palette"
	"github.com/jamessmith/termfolio/internal/profile"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile          = "TERMFOLIO_CONFIG"
	envWidth               = "TERMFOLIO_WIDTH"
	envHeight              = "TERMFOLIO_HEIGHT"
	envShowFooter          = "TERMFOLIO_FOOTER"
	envVerbose             = "TERMFOLIO_VERBOSE"
	envTrace               = "TERMFOLIO_TRACE"
	envLogFile             = "TERMFOLIO_LOG_FILE"
	envMouse               = "TERMFOLIO_MOUSE"
	envNoColor             = "TERMFOLIO_NO_COLOR"
	envNoColorStandard     = "NO_COLOR"
	envPlaceholderInterval = "TERMFOLIO_PLACEHOLDER_INTERVAL"
	envRainbowInterval     = "TERMFOLIO_RAINBOW_INTERVAL"
	envBackground          = "TERMFOLIO_BACKGROUND"
	envForeground          = "TERMFOLIO_FOREGROUND"
)

const (
	keyConfig              = "config"
	keyWidth               = "width"
	keyHeight              = "height"
	keyFooter              = "footer"
	keyVerbose             = "verbose"
	keyTrace               = "trace"
	keyLogFile             = "log-file"
	keyMouse               = "mouse"
	keyNoColor             = "no-color"
	keyPlaceholderInterval = "placeholder-interval"
	keyRainbowInterval     = "rainbow-interval"
	keyBackground          = "background"
	keyForeground          = "foreground"
)

// envKeys maps each setting to the environment variable that overrides it.
var envKeys = map[string]string{
	keyWidth:               envWidth,
	keyHeight:              envHeight,
	keyFooter:              envShowFooter,
	keyVerbose:             envVerbose,
	keyTrace:               envTrace,
	keyLogFile:             envLogFile,
	keyMouse:               envMouse,
	keyNoColor:             envNoColor,
	keyPlaceholderInterval: envPlaceholderInterval,
	keyRainbowInterval:     envRainbowInterval,
	keyBackground:          envBackground,
	keyForeground:          envForeground,
}

// BindFlags registers every runtime flag on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "path to a YAML config file")
	fs.Int(keyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(keyFooter, false, "enable footer hint row (disabled by default)")
	fs.Bool(keyVerbose, false, "show session and timer details in the footer")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.String(keyLogFile, "", "path to the log file")
	fs.Bool(keyMouse, true, "enable mouse support for suggestions")
	fs.Bool(keyNoColor, false, "disable colors")
	fs.Duration(keyPlaceholderInterval, 500*time.Millisecond, "placeholder animation period")
	fs.Duration(keyRainbowInterval, 100*time.Millisecond, "rainbow animation period")
	fs.String(keyBackground, console.DefaultBackground, "initial background color")
	fs.String(keyForeground, console.DefaultForeground, "initial text color")
}

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the process environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	flags := pflag.NewFlagSet("termfolio", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	BindFlags(flags)
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := Resolve(flags, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// Resolve merges parsed flags, environment variables and the optional config
// file. Explicit flags win over the environment, which wins over the file.
func Resolve(flags *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	path := v.GetString(keyConfig)
	if f := flags.Lookup(keyConfig); (f == nil || !f.Changed) && env[envConfigFile] != "" {
		path = env[envConfigFile]
	}
	if path != "" {
		v.SetConfigFile(path)
		if !strings.Contains(path, ".") {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	overrides := make(map[string]interface{})
	if value := env[envNoColorStandard]; value != "" {
		overrides[keyNoColor] = "true"
	}
	for key, name := range envKeys {
		value, ok := env[name]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		overrides[key] = value
	}
	if len(overrides) > 0 {
		if err := v.MergeConfigMap(overrides); err != nil {
			return Config{}, fmt.Errorf("apply environment: %w", err)
		}
	}

	width, err := intSetting(v, keyWidth)
	if err != nil {
		return Config{}, err
	}
	height, err := intSetting(v, keyHeight)
	if err != nil {
		return Config{}, err
	}
	placeholderEvery, err := durationSetting(v, keyPlaceholderInterval)
	if err != nil {
		return Config{}, err
	}
	rainbowEvery, err := durationSetting(v, keyRainbowInterval)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:               width,
			Height:              height,
			ShowFooter:          v.GetBool(keyFooter),
			Verbose:             v.GetBool(keyVerbose),
			Mouse:               v.GetBool(keyMouse),
			NoColor:             v.GetBool(keyNoColor),
			PlaceholderInterval: placeholderEvery,
			RainbowInterval:     rainbowEvery,
			Background:          v.GetString(keyBackground),
			Foreground:          v.GetString(keyForeground),
			Profile: profile.Profile{
				Name:     v.GetString("profile.name"),
				Tagline:  v.GetString("profile.tagline"),
				Email:    v.GetString("profile.email"),
				Resume:   v.GetString("profile.resume"),
				LinkedIn: v.GetString("profile.linkedin"),
				GitHub:   v.GetString("profile.github"),
				Source:   v.GetString("profile.source"),
				Year:     v.GetInt("profile.year"),
			}.Merge(profile.Default()),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		File: path,
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	cfg.App.Background, _ = palette.Parse(cfg.App.Background)
	cfg.App.Foreground, _ = palette.Parse(cfg.App.Foreground)
	cfg.Flags = map[string]string{
		"config":              path,
		"width":               strconv.Itoa(cfg.App.Width),
		"height":              strconv.Itoa(cfg.App.Height),
		"footer":              strconv.FormatBool(cfg.App.ShowFooter),
		"trace":               strconv.FormatBool(cfg.Logging.Trace),
		"verbose":             strconv.FormatBool(cfg.App.Verbose),
		"logFile":             cfg.Logging.FilePath,
		"mouse":               strconv.FormatBool(cfg.App.Mouse),
		"noColor":             strconv.FormatBool(cfg.App.NoColor),
		"placeholderInterval": cfg.App.PlaceholderInterval.String(),
		"rainbowInterval":     cfg.App.RainbowInterval.String(),
		"background":          cfg.App.Background,
		"foreground":          cfg.App.Foreground,
	}
	return cfg, nil
}

func intSetting(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(fmt.Sprint(v.Get(key)))
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got %q)", key, raw)
	}
	return parsed, nil
}

func durationSetting(v *viper.Viper, key string) (time.Duration, error) {
	switch value := v.Get(key).(type) {
	case time.Duration:
		return value, nil
	case string:
		parsed, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("%s must be a duration such as 250ms (got %q)", key, value)
		}
		return parsed, nil
	default:
		return v.GetDuration(key), nil
	}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// Validate ensures the resolved configuration is usable.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.PlaceholderInterval <= 0 {
		return fmt.Errorf("placeholder-interval must be > 0 (got %s)", cfg.App.PlaceholderInterval)
	}
	if cfg.App.RainbowInterval <= 0 {
		return fmt.Errorf("rainbow-interval must be > 0 (got %s)", cfg.App.RainbowInterval)
	}
	if _, err := palette.Parse(cfg.App.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := palette.Parse(cfg.App.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	return nil
}
