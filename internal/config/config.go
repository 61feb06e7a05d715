// Package config handles loading wordle configuration from a TOML file and
// the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Word source names accepted in [words] source.
const (
	SourceEmbedded = "embedded"
	SourceFiles    = "files"
	SourceRemote   = "remote"
)

// Config represents the config.toml file.
type Config struct {
	Game  Game  `toml:"game"`
	Words Words `toml:"words"`
	Daily Daily `toml:"daily"`
	Log   Log   `toml:"log"`
}

// Game holds the defaults for a new session.
type Game struct {
	Length     int  `toml:"length"`
	Limit      int  `toml:"limit"`
	Hard       bool `toml:"hard"`
	CheckValid bool `toml:"check-valid"`
	Share      bool `toml:"share"`
}

// Words selects where secrets and valid guesses come from.
type Words struct {
	// Source is one of "embedded", "files" or "remote". When empty, files
	// are used if any path is set and the embedded lists otherwise.
	Source      string `toml:"source"`
	AnswersFile string `toml:"answers-file"`
	AllowedFile string `toml:"allowed-file"`
	// URL overrides the built-in remote list location.
	URL string `toml:"url"`
}

// Daily configures the word-of-the-day selection.
type Daily struct {
	Salt string `toml:"salt"`
}

// Log configures zerolog output.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Game: Game{Length: 5, Limit: 6},
		Log:  Log{Level: "warn"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/wordle/config.toml, falling back to
// ~/.config/wordle/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wordle", "config.toml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "wordle", "config.toml"), nil
}

// Load reads the config file at path on top of Defaults, then applies
// environment overrides. An empty path means DefaultPath. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Defaults()
	if err := loadConfigFile(path, &cfg); err != nil {
		return nil, err
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.Words.Source = strings.ToLower(strings.TrimSpace(cfg.Words.Source))
	return &cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parse config file %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// applyEnv overrides cfg from environment variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WORDLE_LENGTH", &cfg.Game.Length},
		{"WORDLE_LIMIT", &cfg.Game.Limit},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok && v != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("parse %s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"WORDLE_HARD", &cfg.Game.Hard},
		{"WORDLE_CHECK_VALID", &cfg.Game.CheckValid},
		{"WORDLE_SHARE", &cfg.Game.Share},
	}
	for _, e := range bools {
		if v, ok := lookup(e.key); ok && v != "" {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("parse %s: %w", e.key, err)
			}
			*e.dst = b
		}
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"WORDS_SOURCE", &cfg.Words.Source},
		{"WORDS_ANSWERS_FILE", &cfg.Words.AnswersFile},
		{"WORDS_ALLOWED_FILE", &cfg.Words.AllowedFile},
		{"WORDS_URL", &cfg.Words.URL},
		{"DAILY_SALT", &cfg.Daily.Salt},
		{"LOG_LEVEL", &cfg.Log.Level},
		{"LOG_FILE", &cfg.Log.File},
	}
	for _, e := range strs {
		if v, ok := lookup(e.key); ok && v != "" {
			*e.dst = strings.TrimSpace(v)
		}
	}
	return nil
}

// WordSource resolves the effective word source name.
func (c *Config) WordSource() (string, error) {
	name := strings.ToLower(strings.TrimSpace(c.Words.Source))
	switch name {
	case "":
		if c.Words.AnswersFile != "" || c.Words.AllowedFile != "" {
			return SourceFiles, nil
		}
		return SourceEmbedded, nil
	case SourceEmbedded, SourceFiles, SourceRemote:
		return name, nil
	default:
		return "", fmt.Errorf("unknown word source %q (want %s, %s or %s)", c.Words.Source, SourceEmbedded, SourceFiles, SourceRemote)
	}
}
