package cmd

import (
	"github.com/spf13/cobra"
)

var deleteGroupID int

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user permission group",
	Long: `Delete a user permission group by id.

Examples:
  slperm groups delete --id 200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeleteGroup(cmd, deleteGroupID)
	},
}

func init() {
	groupsCmd.AddCommand(groupsDeleteCmd)
	groupsDeleteCmd.Flags().IntVar(&deleteGroupID, "id", 0, "Id of the group (required)")
	groupsDeleteCmd.MarkFlagRequired("id")
}
