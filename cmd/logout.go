package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slperm/cli/internal/auth"
	"github.com/slperm/cli/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	Long: `Remove the credentials stored by 'slperm login' and the API key from
~/.slpermrc.

SL_USERNAME / SL_API_KEY and local .slpermrc files are left untouched.

Examples:
  slperm logout`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	hadStored := auth.HasCredentials()
	if err := auth.ClearCredentials(); err != nil {
		return err
	}

	clearedKey, err := config.ClearGlobalApiKey()
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	if !hadStored && !clearedKey {
		fmt.Fprintln(out, "Not currently authenticated.")
		return nil
	}

	fmt.Fprintln(out, "Logged out successfully.")
	return nil
}
