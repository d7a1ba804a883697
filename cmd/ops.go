package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/slperm/cli/internal/permission"
	"github.com/slperm/cli/internal/softlayer"
)

// The run* functions below are shared by the flat flags on the root command
// and by the grouped subcommands. Remote faults are printed and swallowed;
// they never make the process exit non-zero.

func runCreateRole(cmd *cobra.Command, name string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	role, err := s.mgr.CreateRole(cmd.Context(), name)
	if err != nil {
		return s.fault("Unable to create a user permission role", err)
	}

	s.printer.Println("Role created successfully!")
	return s.printer.Print(roleList{*role})
}

func runDeleteRole(cmd *cobra.Command, roleID int) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := s.mgr.DeleteRole(cmd.Context(), roleID)
	if err != nil {
		return s.fault("Unable to delete role", err)
	}

	if res.Err() == nil {
		s.printer.Printf("Role %d has been deleted.\n", roleID)
	} else {
		s.printer.Printf("Role %d was not deleted.\n", roleID)
	}
	return nil
}

func runCreateGroup(cmd *cobra.Command, name string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	group, err := s.mgr.CreateGroup(cmd.Context(), name)
	if err != nil {
		return s.fault("Unable to create a user permission group", err)
	}

	s.printer.Println("Group created successfully!")
	return s.printer.Print(groupList{*group})
}

func runDeleteGroup(cmd *cobra.Command, groupID int) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := s.mgr.DeleteGroup(cmd.Context(), groupID)
	if err != nil {
		return s.fault("Unable to delete group", err)
	}

	if res.Err() == nil {
		s.printer.Printf("Group %d has been deleted.\n", groupID)
	} else {
		s.printer.Printf("Group %d was not deleted.\n", groupID)
	}
	return nil
}

func runAddPermissions(cmd *cobra.Command, groupID int, keyNames []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := s.mgr.AddPermissions(cmd.Context(), groupID, keyNames)
	if err != nil {
		return s.fault("Unable to add user permission to group", err)
	}

	if len(res.Unknown) > 0 {
		s.printer.Printf("Skipped unknown permission keys: %s\n", strings.Join(res.Unknown, ", "))
	}
	if res.Err() == nil {
		s.printer.Printf("Added %d permission(s) to group %d.\n", len(res.Sent), groupID)
		return nil
	}

	s.printer.Printf("Permissions were not applied. Current actions of group %d:\n", groupID)
	return s.printer.Print(actionList(res.Current))
}

func runLinkGroup(cmd *cobra.Command, roleID, groupID int) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := s.mgr.LinkGroupToRole(cmd.Context(), roleID, groupID)
	if err != nil {
		return s.fault("Unable to link group to the user permission role", err)
	}

	if res.Err() == nil {
		s.printer.Printf("Group %d linked to role %d.\n", groupID, roleID)
		return nil
	}

	s.printer.Printf("Groups linked to role %d:\n", roleID)
	return s.printer.Print(groupList(res.Groups))
}

func runAddUser(cmd *cobra.Command, roleID, userID int) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := s.mgr.AddUserToRole(cmd.Context(), roleID, userID)
	if err != nil {
		return s.fault("Unable to add user to the user permission role", err)
	}

	if res.Err() == nil {
		s.printer.Printf("User %d added to role %d.\n", userID, roleID)
		return nil
	}

	s.printer.Println("Listing the user permissions...")
	s.printer.Printf("Permissions granted by role %d:\n", roleID)
	printActionPairs(s, res.RoleActions)
	s.printer.Printf("Overall permissions of user %d:\n", userID)
	printActionPairs(s, res.UserActions)
	return nil
}

func printActionPairs(s *session, actions []softlayer.PermissionAction) {
	for _, a := range actions {
		s.printer.Printf("%s: %s\n", a.Name, a.KeyName)
	}
}

func runRemoveUser(cmd *cobra.Command, roleID, userID int) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if err := s.mgr.RemoveUserFromRole(cmd.Context(), roleID, userID); err != nil {
		return s.fault("User not associated with permission role", err)
	}

	s.printer.Printf("UserID:%d removed from RoleID %d\n", userID, roleID)
	return nil
}

// runFindUser prints the matching user's id and nothing when no user matches.
func runFindUser(cmd *cobra.Command, firstName, lastName string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	user, ok, err := s.mgr.FindUserID(cmd.Context(), firstName, lastName)
	if err != nil {
		return s.fault("Unable to find User in the account", err)
	}
	if !ok {
		return nil
	}

	s.printer.Println(user.ID)
	return nil
}

func runAddResources(cmd *cobra.Command, groupID int, resourceType, idsCSV string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	s.printer.Printf("Adding resources: %s of server type: %s to User Group: %d\n", idsCSV, resourceType, groupID)
	res, err := s.mgr.AddResourcesToGroup(cmd.Context(), groupID, resourceType, idsCSV)
	if err != nil {
		return s.fault("Unable to add resources to group", err)
	}

	reportResources(s, res)
	return nil
}

func runRemoveResources(cmd *cobra.Command, groupID int, resourceType, idsCSV string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	s.printer.Printf("Removing resources: %s of server type: %s from User Group: %d\n", idsCSV, resourceType, groupID)
	res, err := s.mgr.RemoveResourcesFromGroup(cmd.Context(), groupID, resourceType, idsCSV)
	if err != nil {
		return s.fault("Unable to remove resources from group", err)
	}

	reportResources(s, res)
	return nil
}

func reportResources(s *session, res permission.ResourceResult) {
	if res.Err() == nil {
		s.printer.Printf("%d resource(s) updated.\n", len(res.Resources))
	} else {
		s.printer.Println("The API reported no change.")
	}
}
