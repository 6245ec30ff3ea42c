package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pathgenius/genius/internal/figures"
	"github.com/pathgenius/genius/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review [card-id hit|miss]",
	Short: "List due review cards or record a result",
	Long:  "Without arguments, lists all due biography cards, most overdue first. With a card id and 'hit' or 'miss', records the review result and reschedules the card.",
	Args:  cobra.RangeArgs(0, 2),
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
		snap, err := st.ReviewRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load review cards: %w", err)
		}
		sched := review.NewScheduler(snap)
		now := time.Now()

		if len(args) == 0 {
			due := sched.DueCards(now)
			if len(due) == 0 {
				fmt.Println("No cards due.")
				return nil
			}
			for _, id := range due {
				card := sched.Card(id)
				fig, fact, err := roster.FactForCard(id)
				if err != nil {
					fmt.Printf("  %-22s (orphaned card)\n", id)
					continue
				}
				fmt.Printf("  %-22s %-20s %.0f days overdue\n      %s\n",
					id, fig.Name, card.OverdueDays(now), fact)
			}
			return nil
		}

		if len(args) != 2 || (args[1] != "hit" && args[1] != "miss") {
			return fmt.Errorf("usage: genius review <card-id> hit|miss")
		}
		cardID := args[0]
		if sched.Card(cardID) == nil {
			return fmt.Errorf("unknown card %q", cardID)
		}

		sched.RecordReview(cardID, args[1] == "hit", now)
		if err := st.ReviewRepo().Save(ctx, sched.SnapshotData()); err != nil {
			return fmt.Errorf("save review cards: %w", err)
		}

		card := sched.Card(cardID)
		fmt.Printf("Recorded %s for %s. Next review in %d days.\n",
			args[1], cardID, card.CurrentIntervalDays())
		return nil
	},
}
