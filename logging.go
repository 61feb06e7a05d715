package main

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
)

// setupLogging configures the global zerolog logger. Logs go to stderr
// unless a file is configured; the returned closer releases that file and
// points the logger back at stderr. An empty level means the default one.
func setupLogging(cfg config.Log) (io.Closer, error) {
	level := strings.TrimSpace(cfg.Level)
	if level == "" {
		level = config.Defaults().Log.Level
	}
	lvl, levelErr := zerolog.ParseLevel(level)
	if levelErr == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out, closer = f, logFile{f}
	}
	log.Logger = newLogger(out)

	if levelErr != nil {
		log.Warn().Str("level", cfg.Level).Msg("unknown log level, keeping default")
	}
	return closer, nil
}

func newLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Logger()
}

type logFile struct{ *os.File }

func (f logFile) Close() error {
	log.Logger = newLogger(os.Stderr)
	return f.File.Close()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
