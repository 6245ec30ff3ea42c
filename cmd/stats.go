package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt history and records",
	RunE: func(cmd *cobra.Command, args []string) error {
		roster, err := figures.Load()
		if err != nil {
			return fmt.Errorf("load figure roster: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		fmt.Println("Records:")
		for _, f := range roster.All() {
			vs, err := st.AttemptRepo().Versus(ctx, f.ID)
			if err != nil {
				return fmt.Errorf("record vs %s: %w", f.ID, err)
			}
			if vs.Wins+vs.Losses+vs.Draws == 0 {
				continue
			}
			fmt.Printf("  %-20s %dW %dL %dD\n", f.Name, vs.Wins, vs.Losses, vs.Draws)
		}

		attempts, err := st.AttemptRepo().Recent(ctx, 20)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("\nNo attempts yet.")
			return nil
		}

		fmt.Println("\nRecent attempts:")
		for _, a := range attempts {
			date := a.FinishedAt.Format("2006-01-02")
			if a.Kind == store.KindDaily {
				fmt.Printf("  %s  daily %-12s score %d in %ds\n", date, a.TestID, a.UserScore, a.UserTimeSecs)
				continue
			}
			name := a.OpponentID
			if f, err := roster.Get(a.OpponentID); err == nil {
				name = f.Name
			}
			fmt.Printf("  %s  vs %-18s %d-%d %s\n", date, name, a.UserScore, a.BotScore, outcomeWord(a.Outcome))
		}
		return nil
	},
}

func outcomeWord(outcome int) string {
	switch {
	case outcome > 0:
		return "WIN"
	case outcome < 0:
		return "LOSS"
	default:
		return "DRAW"
	}
}
