package cmd

import (
	"github.com/spf13/cobra"
)

var deleteRoleID int

var rolesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user permission role",
	Long: `Delete a user permission role by id.

Examples:
  slperm roles delete --id 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeleteRole(cmd, deleteRoleID)
	},
}

func init() {
	rolesCmd.AddCommand(rolesDeleteCmd)
	rolesDeleteCmd.Flags().IntVar(&deleteRoleID, "id", 0, "Id of the role (required)")
	rolesDeleteCmd.MarkFlagRequired("id")
}
