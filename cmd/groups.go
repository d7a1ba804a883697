package cmd

import (
	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage user permission groups",
	Long: `Commands for managing SoftLayer user permission groups.

A group holds permission actions and the resources those actions apply to.

Examples:
  slperm groups list
  slperm groups create --name Auditors
  slperm groups add-permissions --group-id 200 --permissions "TICKET_VIEW,HARDWARE_VIEW"
  slperm groups add-resources --group-id 200 --type SoftLayer_Hardware --ids 11,12
  slperm groups delete --id 200`,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}
