package permission

import (
	"context"
	"fmt"

	"github.com/slperm/cli/internal/softlayer"
)

// fakeService records calls and returns canned responses. A non-nil fault
// is returned from every call whose name is in faultOn.
type fakeService struct {
	calls []string

	fault   *softlayer.APIError
	faultOn map[string]bool

	applied bool

	createdRole  softlayer.Role
	createdGroup softlayer.Group

	catalog     []softlayer.PermissionAction
	sentActions []softlayer.PermissionAction
	groupAct    []softlayer.PermissionAction
	roleAct     []softlayer.PermissionAction
	userAct     []softlayer.PermissionAction
	roleGroups  []softlayer.Group
	users       []softlayer.User
	roles       []softlayer.Role
	groups      []softlayer.Group
	resources   []softlayer.ResourceObject
}

func (f *fakeService) record(name string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf("%s%v", name, args))
	if f.fault != nil && f.faultOn[name] {
		return f.fault
	}
	return nil
}

func (f *fakeService) CreateRole(_ context.Context, tmpl softlayer.Role) (*softlayer.Role, error) {
	if err := f.record("CreateRole"); err != nil {
		return nil, err
	}
	f.createdRole = tmpl
	role := tmpl
	role.ID = 100
	return &role, nil
}

func (f *fakeService) DeleteRole(_ context.Context, id int) (bool, error) {
	if err := f.record("DeleteRole", id); err != nil {
		return false, err
	}
	return f.applied, nil
}

func (f *fakeService) LinkRoleGroup(_ context.Context, roleID, groupID int) (bool, error) {
	if err := f.record("LinkRoleGroup", roleID, groupID); err != nil {
		return false, err
	}
	return f.applied, nil
}

func (f *fakeService) RoleGroups(_ context.Context, roleID int) ([]softlayer.Group, error) {
	if err := f.record("RoleGroups", roleID); err != nil {
		return nil, err
	}
	return f.roleGroups, nil
}

func (f *fakeService) RoleActions(_ context.Context, roleID int) ([]softlayer.PermissionAction, error) {
	if err := f.record("RoleActions", roleID); err != nil {
		return nil, err
	}
	return f.roleAct, nil
}

func (f *fakeService) AddRoleUser(_ context.Context, roleID, userID int) (bool, error) {
	if err := f.record("AddRoleUser", roleID, userID); err != nil {
		return false, err
	}
	return f.applied, nil
}

func (f *fakeService) RemoveRoleUser(_ context.Context, roleID, userID int) (bool, error) {
	if err := f.record("RemoveRoleUser", roleID, userID); err != nil {
		return false, err
	}
	return f.applied, nil
}

func (f *fakeService) CreateGroup(_ context.Context, tmpl softlayer.Group) (*softlayer.Group, error) {
	if err := f.record("CreateGroup"); err != nil {
		return nil, err
	}
	f.createdGroup = tmpl
	group := tmpl
	group.ID = 200
	return &group, nil
}

func (f *fakeService) DeleteGroup(_ context.Context, id int) (bool, error) {
	if err := f.record("DeleteGroup", id); err != nil {
		return false, err
	}
	return f.applied, nil
}

func (f *fakeService) AddGroupActions(_ context.Context, groupID int, actions []softlayer.PermissionAction) (bool, error) {
	if err := f.record("AddGroupActions", groupID); err != nil {
		return false, err
	}
	f.sentActions = actions
	return f.applied, nil
}

func (f *fakeService) GroupActions(_ context.Context, groupID int) ([]softlayer.PermissionAction, error) {
	if err := f.record("GroupActions", groupID); err != nil {
		return nil, err
	}
	return f.groupAct, nil
}

func (f *fakeService) AddGroupResources(_ context.Context, groupID int, resources []softlayer.ResourceObject) (bool, error) {
	if err := f.record("AddGroupResources", groupID); err != nil {
		return false, err
	}
	f.resources = resources
	return f.applied, nil
}

func (f *fakeService) RemoveGroupResources(_ context.Context, groupID int, resources []softlayer.ResourceObject) (bool, error) {
	if err := f.record("RemoveGroupResources", groupID); err != nil {
		return false, err
	}
	f.resources = resources
	return f.applied, nil
}

func (f *fakeService) PermissionActions(_ context.Context) ([]softlayer.PermissionAction, error) {
	if err := f.record("PermissionActions"); err != nil {
		return nil, err
	}
	return f.catalog, nil
}

func (f *fakeService) UserActions(_ context.Context, userID int) ([]softlayer.PermissionAction, error) {
	if err := f.record("UserActions", userID); err != nil {
		return nil, err
	}
	return f.userAct, nil
}

func (f *fakeService) AccountUsers(_ context.Context) ([]softlayer.User, error) {
	if err := f.record("AccountUsers"); err != nil {
		return nil, err
	}
	return f.users, nil
}

func (f *fakeService) AccountRoles(_ context.Context) ([]softlayer.Role, error) {
	if err := f.record("AccountRoles"); err != nil {
		return nil, err
	}
	return f.roles, nil
}

func (f *fakeService) AccountGroups(_ context.Context) ([]softlayer.Group, error) {
	if err := f.record("AccountGroups"); err != nil {
		return nil, err
	}
	return f.groups, nil
}
