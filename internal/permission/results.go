package permission

import "github.com/slperm/cli/internal/softlayer"

// DeleteResult reports a role or group deletion.
type DeleteResult struct {
	ID      int
	Deleted bool
}

// Err returns ErrNotApplied when the API did not confirm the deletion.
func (r DeleteResult) Err() error {
	if !r.Deleted {
		return ErrNotApplied
	}
	return nil
}

// PermissionsResult reports a bulk action grant.
type PermissionsResult struct {
	GroupID int
	Applied bool
	// Sent holds the catalog actions whose ids were submitted.
	Sent []softlayer.PermissionAction
	// Unknown holds requested keyNames absent from the catalog.
	Unknown []string
	// Current is the group's action list, read back when Applied is false.
	Current []softlayer.PermissionAction
}

// Err returns ErrNotApplied when the grant was not applied.
func (r PermissionsResult) Err() error {
	if !r.Applied {
		return ErrNotApplied
	}
	return nil
}

// LinkResult reports a role-group link.
type LinkResult struct {
	RoleID  int
	GroupID int
	Applied bool
	// Groups is the role's group list, read back when Applied is false.
	Groups []softlayer.Group
}

// Err returns ErrNotApplied when the link was not applied.
func (r LinkResult) Err() error {
	if !r.Applied {
		return ErrNotApplied
	}
	return nil
}

// MembershipResult reports adding a user to a role.
type MembershipResult struct {
	RoleID  int
	UserID  int
	Applied bool
	// RoleActions and UserActions are read back when Applied is false.
	RoleActions []softlayer.PermissionAction
	UserActions []softlayer.PermissionAction
}

// Err returns ErrNotApplied when the membership was not applied.
func (r MembershipResult) Err() error {
	if !r.Applied {
		return ErrNotApplied
	}
	return nil
}

// ResourceResult reports a bulk resource add or remove.
type ResourceResult struct {
	GroupID   int
	Applied   bool
	Resources []softlayer.ResourceObject
}

// Err returns ErrNotApplied when the change was not applied.
func (r ResourceResult) Err() error {
	if !r.Applied {
		return ErrNotApplied
	}
	return nil
}
