package cmd

import (
	"github.com/spf13/cobra"
)

var (
	resourcesGroupID int
	resourcesType    string
	resourcesIDs     string
)

var groupsAddResourcesCmd = &cobra.Command{
	Use:   "add-resources",
	Short: "Add resources to a group",
	Long: `Add resources of one type to a user permission group.

Examples:
  slperm groups add-resources --group-id 200 --type SoftLayer_Hardware --ids 11,12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddResources(cmd, resourcesGroupID, resourcesType, resourcesIDs)
	},
}

var groupsRemoveResourcesCmd = &cobra.Command{
	Use:   "remove-resources",
	Short: "Remove resources from a group",
	Long: `Remove resources of one type from a user permission group.

Examples:
  slperm groups remove-resources --group-id 200 --type SoftLayer_Hardware --ids 11`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemoveResources(cmd, resourcesGroupID, resourcesType, resourcesIDs)
	},
}

func init() {
	for _, c := range []*cobra.Command{groupsAddResourcesCmd, groupsRemoveResourcesCmd} {
		groupsCmd.AddCommand(c)
		c.Flags().IntVar(&resourcesGroupID, "group-id", 0, "Id of the group (required)")
		c.Flags().StringVarP(&resourcesType, "type", "t", "", "Resource type, e.g. SoftLayer_Hardware (required)")
		c.Flags().StringVar(&resourcesIDs, "ids", "", "Comma-separated resource ids (required)")
		c.MarkFlagRequired("group-id")
		c.MarkFlagRequired("type")
		c.MarkFlagRequired("ids")
	}
}
