// Package permission implements the administrative operations on SoftLayer
// permission roles, groups, memberships and resource scopes.
//
// Every operation issues one remote call, plus a read-back when the API
// reports that nothing was applied. Remote faults are returned as errors
// wrapping *softlayer.APIError; a call that succeeds without applying
// anything is reported through the result's Applied field.
package permission

import (
	"context"
	"errors"

	"github.com/go-logr/logr"

	"github.com/slperm/cli/internal/softlayer"
)

// ErrNotApplied is returned by Result.Err when the API accepted a call but
// reported that nothing changed.
var ErrNotApplied = errors.New("remote service reported no change")

// Service is the set of remote calls the manager needs.
// *softlayer.Client implements it.
type Service interface {
	CreateRole(ctx context.Context, tmpl softlayer.Role) (*softlayer.Role, error)
	DeleteRole(ctx context.Context, id int) (bool, error)
	LinkRoleGroup(ctx context.Context, roleID, groupID int) (bool, error)
	RoleGroups(ctx context.Context, roleID int) ([]softlayer.Group, error)
	RoleActions(ctx context.Context, roleID int) ([]softlayer.PermissionAction, error)
	AddRoleUser(ctx context.Context, roleID, userID int) (bool, error)
	RemoveRoleUser(ctx context.Context, roleID, userID int) (bool, error)

	CreateGroup(ctx context.Context, tmpl softlayer.Group) (*softlayer.Group, error)
	DeleteGroup(ctx context.Context, id int) (bool, error)
	AddGroupActions(ctx context.Context, groupID int, actions []softlayer.PermissionAction) (bool, error)
	GroupActions(ctx context.Context, groupID int) ([]softlayer.PermissionAction, error)
	AddGroupResources(ctx context.Context, groupID int, resources []softlayer.ResourceObject) (bool, error)
	RemoveGroupResources(ctx context.Context, groupID int, resources []softlayer.ResourceObject) (bool, error)

	PermissionActions(ctx context.Context) ([]softlayer.PermissionAction, error)
	UserActions(ctx context.Context, userID int) ([]softlayer.PermissionAction, error)
	AccountUsers(ctx context.Context) ([]softlayer.User, error)
	AccountRoles(ctx context.Context) ([]softlayer.Role, error)
	AccountGroups(ctx context.Context) ([]softlayer.Group, error)
}

var _ Service = (*softlayer.Client)(nil)

// Manager performs permission administration against a Service.
type Manager struct {
	svc    Service
	logger logr.Logger
}

// NewManager creates a Manager. A zero logger discards output.
func NewManager(svc Service, logger logr.Logger) *Manager {
	return &Manager{svc: svc, logger: logger}
}

// RoleDescription is the description given to roles created by CreateRole.
func RoleDescription(name string) string {
	return name + " user permission role"
}

// GroupDescription is the description given to groups created by CreateGroup.
func GroupDescription(name string) string {
	return name + ": user permission group"
}

// CreateRole creates a role named name and returns it.
func (m *Manager) CreateRole(ctx context.Context, name string) (*softlayer.Role, error) {
	return m.svc.CreateRole(ctx, softlayer.Role{
		Name:        name,
		Description: RoleDescription(name),
	})
}

// DeleteRole deletes a role by id.
func (m *Manager) DeleteRole(ctx context.Context, id int) (DeleteResult, error) {
	ok, err := m.svc.DeleteRole(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{ID: id, Deleted: ok}, nil
}

// CreateGroup creates a group named name and returns it.
func (m *Manager) CreateGroup(ctx context.Context, name string) (*softlayer.Group, error) {
	return m.svc.CreateGroup(ctx, softlayer.Group{
		Name:        name,
		Description: GroupDescription(name),
	})
}

// DeleteGroup deletes a group by id.
func (m *Manager) DeleteGroup(ctx context.Context, id int) (DeleteResult, error) {
	ok, err := m.svc.DeleteGroup(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{ID: id, Deleted: ok}, nil
}

// LinkGroupToRole links groupID to roleID. When the API reports no change,
// the role's current groups are fetched into the result.
func (m *Manager) LinkGroupToRole(ctx context.Context, roleID, groupID int) (LinkResult, error) {
	ok, err := m.svc.LinkRoleGroup(ctx, roleID, groupID)
	if err != nil {
		return LinkResult{}, err
	}
	res := LinkResult{RoleID: roleID, GroupID: groupID, Applied: ok}
	if ok {
		return res, nil
	}

	m.logger.V(1).Info("link not applied, reading back role groups", "role", roleID)
	res.Groups, err = m.svc.RoleGroups(ctx, roleID)
	if err != nil {
		return res, err
	}
	return res, nil
}

// AddUserToRole adds userID to roleID. When the API reports no change, the
// role's actions and the user's effective actions are fetched into the
// result.
func (m *Manager) AddUserToRole(ctx context.Context, roleID, userID int) (MembershipResult, error) {
	ok, err := m.svc.AddRoleUser(ctx, roleID, userID)
	if err != nil {
		return MembershipResult{}, err
	}
	res := MembershipResult{RoleID: roleID, UserID: userID, Applied: ok}
	if ok {
		return res, nil
	}

	m.logger.V(1).Info("membership not applied, reading back actions", "role", roleID, "user", userID)
	if res.RoleActions, err = m.svc.RoleActions(ctx, roleID); err != nil {
		return res, err
	}
	if res.UserActions, err = m.svc.UserActions(ctx, userID); err != nil {
		return res, err
	}
	return res, nil
}

// RemoveUserFromRole removes userID from roleID.
func (m *Manager) RemoveUserFromRole(ctx context.Context, roleID, userID int) error {
	_, err := m.svc.RemoveRoleUser(ctx, roleID, userID)
	return err
}

// ListRoles lists the roles on the account.
func (m *Manager) ListRoles(ctx context.Context) ([]softlayer.Role, error) {
	return m.svc.AccountRoles(ctx)
}

// ListGroups lists the groups on the account.
func (m *Manager) ListGroups(ctx context.Context) ([]softlayer.Group, error) {
	return m.svc.AccountGroups(ctx)
}

// RoleGroups lists the groups linked to a role.
func (m *Manager) RoleGroups(ctx context.Context, roleID int) ([]softlayer.Group, error) {
	return m.svc.RoleGroups(ctx, roleID)
}

// RoleActions lists the actions granted by a role.
func (m *Manager) RoleActions(ctx context.Context, roleID int) ([]softlayer.PermissionAction, error) {
	return m.svc.RoleActions(ctx, roleID)
}

// GroupActions lists the actions granted by a group.
func (m *Manager) GroupActions(ctx context.Context, groupID int) ([]softlayer.PermissionAction, error) {
	return m.svc.GroupActions(ctx, groupID)
}

// UserActions lists a user's effective actions.
func (m *Manager) UserActions(ctx context.Context, userID int) ([]softlayer.PermissionAction, error) {
	return m.svc.UserActions(ctx, userID)
}

// ListPermissionActions returns the permission action catalog.
func (m *Manager) ListPermissionActions(ctx context.Context) ([]softlayer.PermissionAction, error) {
	return m.svc.PermissionActions(ctx)
}

// ListUsers lists the users on the account.
func (m *Manager) ListUsers(ctx context.Context) ([]softlayer.User, error) {
	return m.svc.AccountUsers(ctx)
}
