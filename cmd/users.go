package cmd

import (
	"github.com/spf13/cobra"
)

var (
	findFirstName string
	findLastName  string
	actionsUserID int
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Look up account users",
	Long: `Commands for looking up users on the SoftLayer account.

Examples:
  slperm users list
  slperm users find --first-name Ada --last-name Lovelace
  slperm users actions --user-id 4242`,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List account users",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		users, err := s.mgr.ListUsers(cmd.Context())
		if err != nil {
			return s.fault("Unable to list users of the account", err)
		}
		return s.printer.Print(userList(users))
	},
}

var usersFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Print the id of a user by name",
	Long: `Print the id of the first account user whose first and last names
contain the given values. Nothing is printed when no user matches.

Examples:
  slperm users find --first-name Ada --last-name Lovelace`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFindUser(cmd, findFirstName, findLastName)
	},
}

var usersActionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List a user's effective permission actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		actions, err := s.mgr.UserActions(cmd.Context(), actionsUserID)
		if err != nil {
			return s.fault("Unable to list actions of user", err)
		}
		return s.printer.Print(actionList(actions))
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersFindCmd, usersActionsCmd)

	usersFindCmd.Flags().StringVar(&findFirstName, "first-name", "", "First name of the user (required)")
	usersFindCmd.Flags().StringVar(&findLastName, "last-name", "", "Last name of the user")
	usersFindCmd.MarkFlagRequired("first-name")

	usersActionsCmd.Flags().IntVar(&actionsUserID, "user-id", 0, "Id of the user (required)")
	usersActionsCmd.MarkFlagRequired("user-id")
}
