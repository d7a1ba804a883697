package cmd

import (
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage user permission roles",
	Long: `Commands for managing SoftLayer user permission roles.

A role bundles permission groups. Users added to a role receive every
action granted by the groups linked to it.

Examples:
  slperm roles list
  slperm roles create --name Auditors
  slperm roles link-group --role-id 100 --group-id 200
  slperm roles add-user --role-id 100 --user-id 4242
  slperm roles remove-user --role-id 100 --user-id 4242
  slperm roles delete --id 100`,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}
