package nutrilens

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/service"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/store"
)

// Login always succeeds; it only remembers the name. Real authentication
// is deliberately out of scope.
var loginCmd = &cobra.Command{
	Use:   "login <name>",
	Short: "Start a session under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("name is required")
		}
		return withStore(func(st *store.Store) error {
			if err := service.SaveSessionUser(st, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", name)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session (data is kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			if err := service.SaveSessionUser(st, ""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd)
}
