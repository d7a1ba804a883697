package cmd

import (
	"github.com/spf13/cobra"
)

var showRoleID int

var rolesGroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the groups linked to a role",
	Long: `List the permission groups linked to a user permission role.

Examples:
  slperm roles groups --role-id 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		groups, err := s.mgr.RoleGroups(cmd.Context(), showRoleID)
		if err != nil {
			return s.fault("Unable to list groups of role", err)
		}
		return s.printer.Print(groupList(groups))
	},
}

var rolesActionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the actions granted by a role",
	Long: `List the permission actions granted by a user permission role.

Examples:
  slperm roles actions --role-id 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		actions, err := s.mgr.RoleActions(cmd.Context(), showRoleID)
		if err != nil {
			return s.fault("Unable to list actions of role", err)
		}
		return s.printer.Print(actionList(actions))
	},
}

func init() {
	for _, c := range []*cobra.Command{rolesGroupsCmd, rolesActionsCmd} {
		rolesCmd.AddCommand(c)
		c.Flags().IntVar(&showRoleID, "role-id", 0, "Id of the role (required)")
		c.MarkFlagRequired("role-id")
	}
}
