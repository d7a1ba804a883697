package cmd

import (
	"github.com/spf13/cobra"
)

var createRoleName string

var rolesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user permission role",
	Long: `Create a user permission role.

The role's description is set to "<name> user permission role".

Examples:
  slperm roles create --name Auditors
  slperm roles create --name Auditors -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreateRole(cmd, createRoleName)
	},
}

func init() {
	rolesCmd.AddCommand(rolesCreateCmd)
	rolesCreateCmd.Flags().StringVarP(&createRoleName, "name", "n", "", "Name of the role (required)")
	rolesCreateCmd.MarkFlagRequired("name")
}
