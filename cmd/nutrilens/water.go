package nutrilens

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/service"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/store"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track glasses of water for today",
}

var waterAddCmd = &cobra.Command{
	Use:   "add [glasses]",
	Short: "Add glasses of water (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		glasses, err := parseGlasses(args)
		if err != nil {
			return err
		}
		return changeWater(cmd, glasses)
	},
}

var waterRemoveCmd = &cobra.Command{
	Use:   "remove [glasses]",
	Short: "Remove glasses of water (default 1, never below 0)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		glasses, err := parseGlasses(args)
		if err != nil {
			return err
		}
		return changeWater(cmd, -glasses)
	},
}

func parseGlasses(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid glasses count %q (expected a positive integer)", args[0])
	}
	return n, nil
}

func changeWater(cmd *cobra.Command, delta int) error {
	return withSession(func(st *store.Store, sess *service.Session) error {
		if err := sess.ChangeWater(delta); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Water today: %d glasses (goal %d)\n",
			sess.Totals().WaterGlasses, sess.Goals().WaterGlasses)
		return nil
	})
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd, waterRemoveCmd)
}
