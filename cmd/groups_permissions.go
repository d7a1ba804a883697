package cmd

import (
	"github.com/spf13/cobra"

	"github.com/slperm/cli/internal/permission"
)

var (
	permissionsGroupID int
	permissionsKeys    []string
)

var groupsAddPermissionsCmd = &cobra.Command{
	Use:   "add-permissions",
	Short: "Add permission actions to a group",
	Long: `Add permission actions to a user permission group by key name.

Key names are matched against the account's permission action catalog.
Unknown key names are reported and skipped. Both "A,B" and "['A','B']"
are accepted.

Examples:
  slperm groups add-permissions --group-id 200 --permissions TICKET_VIEW,HARDWARE_VIEW
  slperm groups add-permissions --group-id 200 -p TICKET_VIEW -p HARDWARE_VIEW`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var keys []string
		for _, raw := range permissionsKeys {
			keys = append(keys, permission.ParseKeyNames(raw)...)
		}
		return runAddPermissions(cmd, permissionsGroupID, keys)
	},
}

var groupsActionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the actions granted by a group",
	Long: `List the permission actions granted by a user permission group.

Examples:
  slperm groups actions --group-id 200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		actions, err := s.mgr.GroupActions(cmd.Context(), permissionsGroupID)
		if err != nil {
			return s.fault("Unable to list actions of group", err)
		}
		return s.printer.Print(actionList(actions))
	},
}

func init() {
	groupsCmd.AddCommand(groupsAddPermissionsCmd)
	groupsAddPermissionsCmd.Flags().IntVar(&permissionsGroupID, "group-id", 0, "Id of the group (required)")
	groupsAddPermissionsCmd.Flags().StringArrayVarP(&permissionsKeys, "permissions", "p", nil, "Permission key names (comma-separated or multiple flags)")
	groupsAddPermissionsCmd.MarkFlagRequired("group-id")
	groupsAddPermissionsCmd.MarkFlagRequired("permissions")

	groupsCmd.AddCommand(groupsActionsCmd)
	groupsActionsCmd.Flags().IntVar(&permissionsGroupID, "group-id", 0, "Id of the group (required)")
	groupsActionsCmd.MarkFlagRequired("group-id")
}
