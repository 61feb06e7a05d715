package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show how many words the configured source has",
	Args:  cobra.NoArgs,
	RunE:  runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	src, err := buildSource(cfg)
	if err != nil {
		return err
	}
	answers, allowed, err := words.Stats(cmd.Context(), src, cfg.Game.Length)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "length:  %d\n", cfg.Game.Length)
	fmt.Fprintf(out, "answers: %d\n", answers)
	fmt.Fprintf(out, "allowed: %d\n", allowed)
	return nil
}
