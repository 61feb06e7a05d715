// Package main implements the wordle terminal game.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("wordle failed")
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "wordle",
	Short:        "Guess the hidden word in the terminal",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

// exit terminates the process after a cancelled game.
var exit = os.Exit
