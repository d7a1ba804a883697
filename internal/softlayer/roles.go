package softlayer

import "context"

const roleService = "SoftLayer_User_Permission_Role"

// CreateRole creates a permission role from a template.
func (c *Client) CreateRole(ctx context.Context, tmpl Role) (*Role, error) {
	var role Role
	if err := c.call(ctx, roleService, "createObject", 0, []any{tmpl}, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRole deletes a permission role.
func (c *Client) DeleteRole(ctx context.Context, id int) (bool, error) {
	var ok bool
	if err := c.call(ctx, roleService, "deleteObject", id, nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// LinkRoleGroup links a permission group to a role.
func (c *Client) LinkRoleGroup(ctx context.Context, roleID, groupID int) (bool, error) {
	var ok bool
	if err := c.call(ctx, roleService, "linkGroup", roleID, []any{objectRef{ID: groupID}}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// RoleGroups returns the groups linked to a role.
func (c *Client) RoleGroups(ctx context.Context, roleID int) ([]Group, error) {
	var groups []Group
	if err := c.call(ctx, roleService, "getGroups", roleID, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// RoleActions returns the permission actions granted by a role.
func (c *Client) RoleActions(ctx context.Context, roleID int) ([]PermissionAction, error) {
	var actions []PermissionAction
	if err := c.call(ctx, roleService, "getActions", roleID, nil, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// AddRoleUser adds a user to a role.
func (c *Client) AddRoleUser(ctx context.Context, roleID, userID int) (bool, error) {
	var ok bool
	if err := c.call(ctx, roleService, "addUser", roleID, []any{objectRef{ID: userID}}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// RemoveRoleUser removes a user from a role.
func (c *Client) RemoveRoleUser(ctx context.Context, roleID, userID int) (bool, error) {
	var ok bool
	if err := c.call(ctx, roleService, "removeUser", roleID, []any{objectRef{ID: userID}}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
