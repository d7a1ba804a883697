package softlayer

import "context"

const (
	accountService = "SoftLayer_Account"
	actionService  = "SoftLayer_User_Permission_Action"
	userService    = "SoftLayer_User_Customer"
)

// PermissionActions returns the full permission action catalog.
func (c *Client) PermissionActions(ctx context.Context) ([]PermissionAction, error) {
	var actions []PermissionAction
	if err := c.call(ctx, actionService, "getAllObjects", 0, nil, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// UserActions returns a user's effective permission actions.
func (c *Client) UserActions(ctx context.Context, userID int) ([]PermissionAction, error) {
	var actions []PermissionAction
	if err := c.call(ctx, userService, "getActions", userID, nil, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// AccountUsers lists all users on the account in listing order.
func (c *Client) AccountUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.call(ctx, accountService, "getUsers", 0, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AccountRoles lists the permission roles defined on the account.
func (c *Client) AccountRoles(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := c.call(ctx, accountService, "getPermissionRoles", 0, nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// AccountGroups lists the permission groups defined on the account.
func (c *Client) AccountGroups(ctx context.Context) ([]Group, error) {
	var groups []Group
	if err := c.call(ctx, accountService, "getPermissionGroups", 0, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
