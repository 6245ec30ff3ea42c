package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathgenius/genius/internal/bot"
	"github.com/pathgenius/genius/internal/challenge"
	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/question"
	"github.com/pathgenius/genius/internal/scoring"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge [figure-id]",
	Short: "Simulate a challenge against a genius",
	Long:  "Runs a full challenge non-interactively, simulating both sides. Without a figure id the available opponents are listed. The same seed always replays the same match.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := figures.Load()
		if err != nil {
			return fmt.Errorf("load figure roster: %w", err)
		}

		if len(args) == 0 {
			fmt.Println("Available opponents:")
			for _, f := range roster.All() {
				fmt.Printf("  %-18s %s (%s, %s)\n", f.ID, f.Name, f.Era, f.Field)
			}
			return nil
		}

		fig, err := roster.Get(args[0])
		if err != nil {
			return err
		}

		bank, err := question.Load()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		now := time.Now()
		run := challenge.NewRun(now, bank, fig.Profile())
		if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
			run = challenge.NewSeededRun(now, seed, bank, fig.Profile())
		}

		// Simulate the player side as an average opponent.
		you := bot.Profile{ID: "you", Name: "You", BaseResponseSeconds: 8}
		res := run.Finish(bot.Simulate(run.Questions, you))

		fmt.Printf("Challenge vs %s (seed %d, %d questions)\n\n", fig.Name, run.Seed, len(run.Questions))
		fmt.Printf("  %-12s %4d pts  %4ds\n", "You", res.UserScore, res.UserTime)
		fmt.Printf("  %-12s %4d pts  %4ds\n\n", fig.Name, res.BotScore, res.BotTime)

		switch res.Outcome {
		case scoring.OutcomeWin:
			fmt.Println("Result: WIN")
		case scoring.OutcomeLoss:
			fmt.Println("Result: LOSS")
		default:
			fmt.Println("Result: DRAW")
		}
		return nil
	},
}

func init() {
	challengeCmd.Flags().Int64("seed", 0, "Replay seed (defaults to today's date seed)")
}
