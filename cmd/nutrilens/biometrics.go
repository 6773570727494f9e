package nutrilens

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/service"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/store"
)

var biometricsCmd = &cobra.Command{
	Use:   "biometrics",
	Short: "Manage the biometrics your goals are calculated from",
}

var (
	bioWeight   float64
	bioHeight   float64
	bioAge      int
	bioGender   string
	bioActivity string
	bioGoal     string
)

var biometricsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update biometrics (goals are not recalculated until 'goals update')",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			current, ok, err := service.LoadBiometrics(st)
			if err != nil {
				return err
			}
			if !ok {
				current = model.DefaultBiometrics()
			}
			if cmd.Flags().Changed("weight") {
				if bioWeight <= 0 {
					return fmt.Errorf("weight must be > 0")
				}
				current.WeightKg = bioWeight
			}
			if cmd.Flags().Changed("height") {
				if bioHeight <= 0 {
					return fmt.Errorf("height must be > 0")
				}
				current.HeightCm = bioHeight
			}
			if cmd.Flags().Changed("age") {
				if bioAge <= 0 {
					return fmt.Errorf("age must be > 0")
				}
				current.Age = bioAge
			}
			if cmd.Flags().Changed("gender") {
				gender, err := model.ParseGender(bioGender)
				if err != nil {
					return err
				}
				current.Gender = gender
			}
			if cmd.Flags().Changed("activity") {
				level, err := model.ParseActivityLevel(bioActivity)
				if err != nil {
					return err
				}
				current.ActivityLevel = level
			}
			if cmd.Flags().Changed("goal") {
				goal, err := model.ParseFitnessGoal(bioGoal)
				if err != nil {
					return err
				}
				current.FitnessGoal = goal
			}
			if err := service.SaveBiometrics(st, current); err != nil {
				return err
			}
			printBiometrics(cmd, current)
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'nutrilens goals update' to recalculate goals from these values.")
			return nil
		})
	},
}

var biometricsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored biometrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			current, ok, err := service.LoadBiometrics(st)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No biometrics stored yet, showing defaults:")
				current = model.DefaultBiometrics()
			}
			printBiometrics(cmd, current)
			return nil
		})
	},
}

func printBiometrics(cmd *cobra.Command, b model.Biometrics) {
	fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", b.WeightKg)
	fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", b.HeightCm)
	fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", b.Age)
	fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", b.Gender)
	fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s\n", b.ActivityLevel)
	fmt.Fprintf(cmd.OutOrStdout(), "Fitness goal: %s\n", b.FitnessGoal)
}

func init() {
	rootCmd.AddCommand(biometricsCmd)
	biometricsCmd.AddCommand(biometricsSetCmd, biometricsShowCmd)

	biometricsSetCmd.Flags().Float64Var(&bioWeight, "weight", 0, "Weight in kg")
	biometricsSetCmd.Flags().Float64Var(&bioHeight, "height", 0, "Height in cm")
	biometricsSetCmd.Flags().IntVar(&bioAge, "age", 0, "Age in years")
	biometricsSetCmd.Flags().StringVar(&bioGender, "gender", "", "male or female")
	biometricsSetCmd.Flags().StringVar(&bioActivity, "activity", "", "sedentary, light, moderate, active, or very-active")
	biometricsSetCmd.Flags().StringVar(&bioGoal, "goal", "", "maintenance, fat-loss, muscle-gain, or weight-gain")
}
