package permission

import (
	"context"
	"strings"

	"github.com/slperm/cli/internal/softlayer"
)

// ParseKeyNames splits a permission key list. Both the plain form
// HARDWARE_VIEW,VIRTUAL_GUEST_VIEW and the bracketed form
// ['HARDWARE_VIEW','VIRTUAL_GUEST_VIEW'] are accepted. Empty entries are
// dropped.
func ParseKeyNames(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	var keys []string
	for _, part := range strings.Split(raw, ",") {
		key := strings.Trim(strings.TrimSpace(part), `'"`)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// SelectActions returns the catalog actions whose keyName is in keyNames,
// in catalog order, and the requested keyNames that matched nothing.
func SelectActions(catalog []softlayer.PermissionAction, keyNames []string) (selected []softlayer.PermissionAction, unknown []string) {
	wanted := make(map[string]bool, len(keyNames))
	for _, k := range keyNames {
		wanted[k] = true
	}

	found := make(map[string]bool, len(keyNames))
	for _, action := range catalog {
		if wanted[action.KeyName] {
			selected = append(selected, action)
			found[action.KeyName] = true
		}
	}

	for _, k := range keyNames {
		if !found[k] {
			unknown = append(unknown, k)
			found[k] = true
		}
	}
	return selected, unknown
}

// AddPermissions grants the actions named by keyNames to groupID. The full
// catalog is listed to resolve keyNames to ids, then the ids are submitted in
// one bulk call. When the API reports no change, the group's current actions
// are fetched into the result.
func (m *Manager) AddPermissions(ctx context.Context, groupID int, keyNames []string) (PermissionsResult, error) {
	res := PermissionsResult{GroupID: groupID}

	catalog, err := m.svc.PermissionActions(ctx)
	if err != nil {
		return res, err
	}
	res.Sent, res.Unknown = SelectActions(catalog, keyNames)
	if len(res.Unknown) > 0 {
		m.logger.V(1).Info("keyNames not in permission catalog", "keys", res.Unknown)
	}

	ok, err := m.svc.AddGroupActions(ctx, groupID, res.Sent)
	if err != nil {
		return res, err
	}
	res.Applied = ok
	if ok {
		return res, nil
	}

	m.logger.V(1).Info("bulk actions not applied, reading back group actions", "group", groupID)
	if res.Current, err = m.svc.GroupActions(ctx, groupID); err != nil {
		return res, err
	}
	return res, nil
}
