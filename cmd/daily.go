package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathgenius/genius/internal/challenge"
	"github.com/pathgenius/genius/internal/question"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Print today's test",
	Long:  "Prints the daily test for the current UTC date. Everyone running this command on the same day sees the same questions in the same order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := question.Load()
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		test := challenge.BuildDailyTest(time.Now(), bank)

		fmt.Printf("Daily test %s (seed %d)\n\n", test.ID, test.Seed)
		for i, q := range test.Questions {
			fmt.Printf("%2d. [%s, difficulty %d, %d pts] %s\n", i+1, q.Category, q.Difficulty, q.Points, q.Prompt)
			for j, opt := range q.Options {
				fmt.Printf("      %c) %s\n", 'a'+j, opt)
			}
		}
		return nil
	},
}
