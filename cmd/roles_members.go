package cmd

import (
	"github.com/spf13/cobra"
)

var (
	memberRoleID int
	memberUserID int
)

var rolesAddUserCmd = &cobra.Command{
	Use:   "add-user",
	Short: "Add a user to a role",
	Long: `Add a user to a user permission role.

If the API does not confirm the membership, the actions granted by the
role and the user's overall actions are listed.

Examples:
  slperm roles add-user --role-id 100 --user-id 4242`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddUser(cmd, memberRoleID, memberUserID)
	},
}

var rolesRemoveUserCmd = &cobra.Command{
	Use:   "remove-user",
	Short: "Remove a user from a role",
	Long: `Remove a user from a user permission role.

Examples:
  slperm roles remove-user --role-id 100 --user-id 4242`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemoveUser(cmd, memberRoleID, memberUserID)
	},
}

func init() {
	for _, c := range []*cobra.Command{rolesAddUserCmd, rolesRemoveUserCmd} {
		rolesCmd.AddCommand(c)
		c.Flags().IntVar(&memberRoleID, "role-id", 0, "Id of the role (required)")
		c.Flags().IntVar(&memberUserID, "user-id", 0, "Id of the user (required)")
		c.MarkFlagRequired("role-id")
		c.MarkFlagRequired("user-id")
	}
}
