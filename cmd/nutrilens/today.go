package nutrilens

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/service"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against your goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(st *store.Store, sess *service.Session) error {
			totals := sess.Totals()
			goals := sess.Goals()
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", sess.Today())
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %.0f / %d kcal\n", totals.Calories, goals.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.1f / %.0fg\n", totals.ProteinG, goals.ProteinG)
			fmt.Fprintf(cmd.OutOrStdout(), "Fat: %.1f / %.0fg\n", totals.FatG, goals.FatG)
			fmt.Fprintf(cmd.OutOrStdout(), "Fiber: %.1f / %.0fg\n", totals.FiberG, goals.FiberG)
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d glasses\n", totals.WaterGlasses, goals.WaterGlasses)
			remaining := float64(goals.Calories) - totals.Calories
			if remaining > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %.0f kcal\n", remaining)
			}
			if meal := sess.LastMeal(); meal != nil && meal.Summary != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Last meal: %s\n", meal.Summary)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
