package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/input"
	"github.com/robalobadob/wordle/apps/go-term/internal/play"
	"github.com/robalobadob/wordle/apps/go-term/internal/render"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// loadConfig reads file and environment configuration and applies flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd.Flags(), cfg)
	return cfg, nil
}

// buildSource returns the word source selected by cfg.
func buildSource(cfg *config.Config) (words.Source, error) {
	name, err := cfg.WordSource()
	if err != nil {
		return nil, err
	}
	switch name {
	case config.SourceFiles:
		return words.NewFiles(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	case config.SourceRemote:
		return words.NewRemote(cfg.Words.URL), nil
	default:
		return words.Embedded{}, nil
	}
}

// newSession picks the secret and builds the session for cfg.
func newSession(ctx context.Context, cfg *config.Config, src words.Source) (*game.Session, error) {
	gcfg := game.Config{
		Length:     cfg.Game.Length,
		Limit:      cfg.Game.Limit,
		Hard:       cfg.Game.Hard,
		CheckValid: cfg.Game.CheckValid,
		Share:      cfg.Game.Share,
	}
	if err := gcfg.Validate(); err != nil {
		return nil, err
	}

	opts := []game.Option{
		game.WithLogger(log.Logger.With().Str("component", "session").Logger()),
	}
	if gcfg.CheckValid {
		dict, err := src.Allowed(ctx, gcfg.Length)
		if err != nil {
			return nil, fmt.Errorf("load valid words: %w", err)
		}
		opts = append(opts, game.WithDictionary(dict))
	}

	var secret string
	var err error
	switch {
	case flagWord != "":
		secret = flagWord
	case flagDaily:
		salt := cfg.Daily.Salt
		if salt == "" {
			salt = daily.DefaultSalt
		}
		secret, err = daily.Word(ctx, src, gcfg.Length, time.Now(), salt)
	default:
		secret, err = words.Random(ctx, src, gcfg.Length)
	}
	if err != nil {
		return nil, fmt.Errorf("choose secret word: %w", err)
	}
	return game.New(gcfg, secret, opts...)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logs, err := setupLogging(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logs.Close()

	src, err := buildSource(cfg)
	if err != nil {
		return err
	}
	sess, err := newSession(cmd.Context(), cfg, src)
	if err != nil {
		return err
	}
	log.Debug().
		Int("length", cfg.Game.Length).
		Int("limit", cfg.Game.Limit).
		Bool("hard", cfg.Game.Hard).
		Bool("checkValid", cfg.Game.CheckValid).
		Msg("starting game")

	out := cmd.OutOrStdout()
	interactive := input.IsTerminal(os.Stdin) && input.IsTerminal(os.Stdout)
	board := render.NewBoard(render.DefaultPalette(lipgloss.NewRenderer(out)))

	restore := func() {}
	if interactive {
		if restore, err = input.Raw(os.Stdin); err != nil {
			return fmt.Errorf("enable raw mode: %w", err)
		}
	}
	defer restore()

	outcome, err := play.Run(cmd.Context(), sess, play.Options{
		In:          cmd.InOrStdin(),
		Out:         out,
		Board:       board,
		Interactive: interactive,
		Log:         log.Logger,
	})
	restore()
	if err != nil {
		return err
	}
	if !interactive {
		if _, err := io.WriteString(out, board.Frame(sess)); err != nil {
			return err
		}
	}
	if outcome == play.Cancelled {
		// Cancel quits the whole program on the spot: no summary, no
		// further output beyond leaving the cursor on a fresh line.
		fmt.Fprintln(out)
		exit(0)
		return nil
	}

	printResult(out, sess)
	return nil
}

// printResult reveals a missed word and prints the share summary when
// enabled.
func printResult(out io.Writer, sess *game.Session) {
	if sess.State() == game.Lost {
		fmt.Fprintf(out, "The word was %s\n", sess.Secret())
	}
	if sess.Config().Share {
		fmt.Fprintln(out, render.SharePrompt)
		fmt.Fprintln(out, render.Summary(sess, render.DefaultShareTokens()))
	}
}
