package cmd

import (
	"github.com/spf13/cobra"
)

var (
	linkRoleID  int
	linkGroupID int
)

var rolesLinkGroupCmd = &cobra.Command{
	Use:   "link-group",
	Short: "Link a permission group to a role",
	Long: `Link a permission group to a user permission role.

If the API does not confirm the link, the groups currently linked to the
role are listed.

Examples:
  slperm roles link-group --role-id 100 --group-id 200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLinkGroup(cmd, linkRoleID, linkGroupID)
	},
}

func init() {
	rolesCmd.AddCommand(rolesLinkGroupCmd)
	rolesLinkGroupCmd.Flags().IntVar(&linkRoleID, "role-id", 0, "Id of the role (required)")
	rolesLinkGroupCmd.Flags().IntVar(&linkGroupID, "group-id", 0, "Id of the group (required)")
	rolesLinkGroupCmd.MarkFlagRequired("role-id")
	rolesLinkGroupCmd.MarkFlagRequired("group-id")
}
