package main

import (
	"github.com/spf13/pflag"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
)

var (
	flagConfig     string
	flagLength     int
	flagLimit      int
	flagHard       bool
	flagCheckValid bool
	flagShare      bool
	flagWord       string
	flagDaily      bool
	flagSource     string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default ~/.config/wordle/config.toml)")
	pf.IntVarP(&flagLength, "length", "l", 5, "Word length")
	pf.StringVar(&flagSource, "source", "", "Word source: embedded, files or remote")

	f := rootCmd.Flags()
	f.IntVarP(&flagLimit, "limit", "n", 6, "Maximum number of guesses")
	f.BoolVar(&flagHard, "hard", false, "Hard mode: every guess must use all revealed clues")
	f.BoolVarP(&flagCheckValid, "check-valid", "c", false, "Only accept guesses from the word list")
	f.BoolVarP(&flagShare, "share", "s", false, "Print a shareable summary at the end")
	f.StringVarP(&flagWord, "word", "w", "", "Play with this secret word")
	f.BoolVar(&flagDaily, "daily", false, "Play the word of the day")
	rootCmd.MarkFlagsMutuallyExclusive("word", "daily")
}

// applyFlags overrides cfg with every flag the user set explicitly, so
// unset flags leave file and environment values alone.
func applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("length") {
		cfg.Game.Length = flagLength
	}
	if fs.Changed("limit") {
		cfg.Game.Limit = flagLimit
	}
	if fs.Changed("hard") {
		cfg.Game.Hard = flagHard
	}
	if fs.Changed("check-valid") {
		cfg.Game.CheckValid = flagCheckValid
	}
	if fs.Changed("share") {
		cfg.Game.Share = flagShare
	}
	if fs.Changed("source") {
		cfg.Words.Source = flagSource
	}
}
