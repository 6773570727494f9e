package nutrilens

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/service"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [date]",
	Short: "Show recorded days, or one day's totals",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(st *store.Store, sess *service.Session) error {
			if len(args) == 0 {
				dates := sess.HistoryDates()
				if len(dates) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), "DATE\tKCAL\tP\tF\tFIBER\tWATER")
				for _, date := range dates {
					totals, _ := sess.HistoryFor(date)
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%d\n",
						date, totals.Calories, totals.ProteinG, totals.FatG, totals.FiberG, totals.WaterGlasses)
				}
				return nil
			}

			if _, err := time.Parse("2006-01-02", args[0]); err != nil {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", args[0])
			}
			sess.SelectHistoryDate(args[0])
			totals, ok := sess.HistoryFor(sess.SelectedHistoryDate())
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "No record for %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %.0f kcal\n", totals.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.1fg\n", totals.ProteinG)
			fmt.Fprintf(cmd.OutOrStdout(), "Fat: %.1fg\n", totals.FatG)
			fmt.Fprintf(cmd.OutOrStdout(), "Fiber: %.1fg\n", totals.FiberG)
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d glasses\n", totals.WaterGlasses)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
