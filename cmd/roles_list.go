package cmd

import (
	"github.com/spf13/cobra"

	"github.com/slperm/cli/internal/output"
)

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user permission roles",
	Long: `List the user permission roles on the account.

Examples:
  slperm roles list
  slperm roles list -o yaml`,
	RunE: runRolesList,
}

func init() {
	rolesCmd.AddCommand(rolesListCmd)
}

func runRolesList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	roles, err := s.mgr.ListRoles(cmd.Context())
	if err != nil {
		return s.fault("Unable to list user permission roles", err)
	}

	if len(roles) == 0 && s.printer.Format() == output.FormatTable {
		s.printer.Println("No roles found.")
		return nil
	}
	return s.printer.Print(roleList(roles))
}
