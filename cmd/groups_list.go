package cmd

import (
	"github.com/spf13/cobra"

	"github.com/slperm/cli/internal/output"
)

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user permission groups",
	Long: `List the user permission groups on the account.

Examples:
  slperm groups list
  slperm groups list -o json`,
	RunE: runGroupsList,
}

func init() {
	groupsCmd.AddCommand(groupsListCmd)
}

func runGroupsList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	groups, err := s.mgr.ListGroups(cmd.Context())
	if err != nil {
		return s.fault("Unable to list user permission groups", err)
	}

	if len(groups) == 0 && s.printer.Format() == output.FormatTable {
		s.printer.Println("No groups found.")
		return nil
	}
	return s.printer.Print(groupList(groups))
}
