package cmd

import (
	"github.com/spf13/cobra"
)

var createGroupName string

var groupsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user permission group",
	Long: `Create a user permission group.

The group's description is set to "<name>: user permission group".

Examples:
  slperm groups create --name Auditors`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreateGroup(cmd, createGroupName)
	},
}

func init() {
	groupsCmd.AddCommand(groupsCreateCmd)
	groupsCreateCmd.Flags().StringVarP(&createGroupName, "name", "n", "", "Name of the group (required)")
	groupsCreateCmd.MarkFlagRequired("name")
}
