package softlayer

import "context"

const groupService = "SoftLayer_User_Permission_Group"

// CreateGroup creates a permission group from a template.
func (c *Client) CreateGroup(ctx context.Context, tmpl Group) (*Group, error) {
	var group Group
	if err := c.call(ctx, groupService, "createObject", 0, []any{tmpl}, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// DeleteGroup deletes a permission group.
func (c *Client) DeleteGroup(ctx context.Context, id int) (bool, error) {
	var ok bool
	if err := c.call(ctx, groupService, "deleteObject", id, nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// AddGroupActions grants the given actions to a group in one bulk call.
// Only the action ids are sent.
func (c *Client) AddGroupActions(ctx context.Context, groupID int, actions []PermissionAction) (bool, error) {
	refs := make([]objectRef, 0, len(actions))
	for _, a := range actions {
		refs = append(refs, objectRef{ID: a.ID})
	}
	var ok bool
	if err := c.call(ctx, groupService, "addBulkActions", groupID, []any{refs}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// GroupActions returns the permission actions granted by a group.
func (c *Client) GroupActions(ctx context.Context, groupID int) ([]PermissionAction, error) {
	var actions []PermissionAction
	if err := c.call(ctx, groupService, "getActions", groupID, nil, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// AddGroupResources scopes a group to the given resources in one bulk call.
func (c *Client) AddGroupResources(ctx context.Context, groupID int, resources []ResourceObject) (bool, error) {
	var ok bool
	if err := c.call(ctx, groupService, "addBulkResourceObjects", groupID, []any{resources}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// RemoveGroupResources removes the given resources from a group in one bulk call.
func (c *Client) RemoveGroupResources(ctx context.Context, groupID int, resources []ResourceObject) (bool, error) {
	var ok bool
	if err := c.call(ctx, groupService, "removeBulkResourceObjects", groupID, []any{resources}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
