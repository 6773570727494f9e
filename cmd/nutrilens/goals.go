package nutrilens

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/service"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/store"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show or recalculate daily nutrient goals",
}

var goalsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Recalculate goals from stored biometrics and save them",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(st *store.Store, sess *service.Session) error {
			biometrics, ok, err := service.LoadBiometrics(st)
			if err != nil {
				return err
			}
			if !ok {
				biometrics = model.DefaultBiometrics()
			}
			goals := service.CalculateGoals(biometrics)
			if err := sess.UpdateGoals(goals); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goals updated:")
			printGoals(cmd, goals)
			return nil
		})
	},
}

var goalsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			goals, ok, err := service.LoadGoals(st)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals set yet, showing defaults:")
				goals = model.DefaultGoals()
			}
			printGoals(cmd, goals)
			return nil
		})
	},
}

func printGoals(cmd *cobra.Command, g model.NutrientGoals) {
	fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\n", g.Calories)
	fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.0fg\n", g.ProteinG)
	fmt.Fprintf(cmd.OutOrStdout(), "Fat: %.0fg\n", g.FatG)
	fmt.Fprintf(cmd.OutOrStdout(), "Fiber: %.0fg\n", g.FiberG)
	fmt.Fprintf(cmd.OutOrStdout(), "Water: %d glasses\n", g.WaterGlasses)
}

func init() {
	rootCmd.AddCommand(goalsCmd)
	goalsCmd.AddCommand(goalsUpdateCmd, goalsShowCmd)
}
