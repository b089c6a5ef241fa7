package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultDocPath  = "DOCUMENTACION.md"
	DefaultWidth    = 78
	DefaultPageSize = 80
	DefaultLogLevel = "warn"

	MinWidth = 40
)

type Config struct {
	// Document
	DocPath string `toml:"doc_path"`

	// Rendering
	FrameWidth int  `toml:"frame_width"`
	PageSize   int  `toml:"page_size"`
	ASCII      bool `toml:"ascii"`
	Demo       bool `toml:"demo"`

	// Logging
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DocPath:    DefaultDocPath,
		FrameWidth: DefaultWidth,
		PageSize:   DefaultPageSize,
		LogLevel:   DefaultLogLevel,
	}
}

// Load starts from Defaults, applies the TOML file at path when path is
// not empty, then the DOCNAV_* environment variables.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DocPath = envOr("DOCNAV_FILE", c.DocPath)
	c.FrameWidth = envInt("DOCNAV_WIDTH", c.FrameWidth)
	c.PageSize = envInt("DOCNAV_PAGE_SIZE", c.PageSize)
	c.ASCII = envBool("DOCNAV_ASCII", c.ASCII)
	c.Demo = envBool("DOCNAV_DEMO", c.Demo)
	c.LogLevel = envOr("DOCNAV_LOG_LEVEL", c.LogLevel)
	c.LogFile = envOr("DOCNAV_LOG_FILE", c.LogFile)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DocPath) == "" {
		return fmt.Errorf("document path is required")
	}
	if c.FrameWidth < MinWidth {
		return fmt.Errorf("frame width must be at least %d, got %d", MinWidth, c.FrameWidth)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, or warn when it does not parse.
func (c Config) Level() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// ParseLevel accepts debug, info, warn, warning and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
