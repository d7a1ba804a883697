package cmd

import (
	"github.com/spf13/cobra"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Inspect the permission action catalog",
}

var permissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every permission action the account can grant",
	Long: `List the permission action catalog. The KEY NAME column holds the
values accepted by 'slperm groups add-permissions'.

Examples:
  slperm permissions list
  slperm permissions list -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		actions, err := s.mgr.ListPermissionActions(cmd.Context())
		if err != nil {
			return s.fault("Unable to list permission actions", err)
		}
		return s.printer.Print(actionList(actions))
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
	permissionsCmd.AddCommand(permissionsListCmd)
}
