package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/slperm/cli/internal/logging"
	"github.com/slperm/cli/internal/permission"
)

// Flat flags kept for scripts written against the single-command form,
// e.g. "slperm --createrolename Auditors".
var (
	flagCreateRoleName      string
	flagDeleteRoleID        int
	flagCreateGroupName     string
	flagDeleteGroupID       int
	flagAddPermissions      string
	flagPermissionGroupID   int
	flagLinkGroupID         int
	flagLinkRoleID          int
	flagUserID              int
	flagUserRoleID          int
	flagRoleIDOfUser        int
	flagRemoveUserID        int
	flagUserFirstName       string
	flagUserLastName        string
	flagResourceIDsToAdd    string
	flagResourceIDsToRemove string
	flagResourceGroupID     int
	flagResourceTypeToAdd   string
	flagResourceTypeRemove  string
)

var logCleanup func()

var rootCmd = &cobra.Command{
	Use:   "slperm",
	Short: "slperm - manage SoftLayer user permission roles and groups",
	Long: `slperm manages user permission roles, permission groups, role/group links,
user memberships and group resources on a SoftLayer account.

Operations are available as subcommands or through the flat flags
accepted by the root command. When several flat flags are given only the
first operation in this order runs: create role, delete role, create
group, delete group, add permissions, link group, add user, remove user,
find user, add resources, remove resources.

Credentials come from SL_USERNAME / SL_API_KEY, a .slpermrc file, or the
credentials stored by 'slperm login'.

Examples:
  slperm --createrolename Auditors
  slperm --linkgroupid 200 --linkroleid 100
  slperm roles add-user --role-id 100 --user-id 4242
  slperm groups add-permissions --group-id 200 --permissions "TICKET_VIEW,HARDWARE_VIEW"`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cleanup, err := logging.SetupLogger(cmd)
		if err != nil {
			return err
		}
		logCleanup = cleanup
		return nil
	},
	RunE: runRoot,
}

// Execute runs the root command. The log file opened for --log-file is
// closed on every path, including failed runs.
func Execute() error {
	defer closeLog()
	return rootCmd.ExecuteContext(context.Background())
}

func closeLog() {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

// RootCmd returns the root command.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default is ./.slpermrc then $HOME/.slpermrc)")
	pf.String("endpoint", "", "SoftLayer API endpoint URL")
	pf.StringP("output", "o", "table", "Output format: table, json, yaml")
	logging.AddLoggerFlags(pf)

	f := rootCmd.Flags()
	f.StringVar(&flagCreateRoleName, "createrolename", "", "Create a user permission role with this name")
	f.IntVar(&flagDeleteRoleID, "deleteroleid", 0, "Delete the user permission role with this id")
	f.StringVar(&flagCreateGroupName, "creategroupname", "", "Create a user permission group with this name")
	f.IntVar(&flagDeleteGroupID, "deletegroupid", 0, "Delete the user permission group with this id")
	f.StringVar(&flagAddPermissions, "addpermissions", "", "Permission key names to add to --permissiongroupid")
	f.IntVar(&flagPermissionGroupID, "permissiongroupid", 0, "Group that receives --addpermissions")
	f.IntVar(&flagLinkGroupID, "linkgroupid", 0, "Group to link to --linkroleid")
	f.IntVar(&flagLinkRoleID, "linkroleid", 0, "Role that --linkgroupid is linked to")
	f.IntVar(&flagUserID, "userid", 0, "User to add to --userroleid")
	f.IntVar(&flagUserRoleID, "userroleid", 0, "Role that --userid is added to")
	f.IntVar(&flagRoleIDOfUser, "roleidofuser", 0, "Role that --removeuserid is removed from")
	f.IntVar(&flagRemoveUserID, "removeuserid", 0, "User to remove from --roleidofuser")
	f.StringVar(&flagUserFirstName, "userfirstname", "", "First name of the user to look up")
	f.StringVar(&flagUserLastName, "userlastname", "", "Last name of the user to look up")
	f.StringVar(&flagResourceIDsToAdd, "resourceidstoadd", "", "Comma separated resource ids to add to --resourcegroupid")
	f.StringVar(&flagResourceIDsToRemove, "resourceidstoremove", "", "Comma separated resource ids to remove from --resourcegroupid")
	f.IntVar(&flagResourceGroupID, "resourcegroupid", 0, "Group whose resources are changed")
	f.StringVar(&flagResourceTypeToAdd, "resourcetypetoadd", "", "Resource type of --resourceidstoadd (e.g. SoftLayer_Hardware)")
	f.StringVar(&flagResourceTypeRemove, "resourcetypetoremove", "", "Resource type of --resourceidstoremove")
}

// legacyOp is one flat-flag operation. trigger is the flag whose presence
// selects it.
type legacyOp struct {
	trigger string
	run     func(cmd *cobra.Command) error
}

// legacyOps is ordered by priority.
var legacyOps = []legacyOp{
	{"createrolename", func(cmd *cobra.Command) error {
		return runCreateRole(cmd, flagCreateRoleName)
	}},
	{"deleteroleid", func(cmd *cobra.Command) error {
		return runDeleteRole(cmd, flagDeleteRoleID)
	}},
	{"creategroupname", func(cmd *cobra.Command) error {
		return runCreateGroup(cmd, flagCreateGroupName)
	}},
	{"deletegroupid", func(cmd *cobra.Command) error {
		return runDeleteGroup(cmd, flagDeleteGroupID)
	}},
	{"addpermissions", func(cmd *cobra.Command) error {
		return runAddPermissions(cmd, flagPermissionGroupID, permission.ParseKeyNames(flagAddPermissions))
	}},
	{"linkgroupid", func(cmd *cobra.Command) error {
		return runLinkGroup(cmd, flagLinkRoleID, flagLinkGroupID)
	}},
	{"userid", func(cmd *cobra.Command) error {
		return runAddUser(cmd, flagUserRoleID, flagUserID)
	}},
	{"roleidofuser", func(cmd *cobra.Command) error {
		return runRemoveUser(cmd, flagRoleIDOfUser, flagRemoveUserID)
	}},
	{"userfirstname", func(cmd *cobra.Command) error {
		return runFindUser(cmd, flagUserFirstName, flagUserLastName)
	}},
	{"resourceidstoadd", func(cmd *cobra.Command) error {
		return runAddResources(cmd, flagResourceGroupID, flagResourceTypeToAdd, flagResourceIDsToAdd)
	}},
	{"resourceidstoremove", func(cmd *cobra.Command) error {
		return runRemoveResources(cmd, flagResourceGroupID, flagResourceTypeRemove, flagResourceIDsToRemove)
	}},
}

// runRoot runs the first flat-flag operation that was requested. With no
// trigger flag it does nothing.
func runRoot(cmd *cobra.Command, args []string) error {
	for _, op := range legacyOps {
		if cmd.Flags().Changed(op.trigger) {
			return op.run(cmd)
		}
	}
	return nil
}
