package permission

import (
	"context"
	"strings"

	"github.com/slperm/cli/internal/softlayer"
)

// SplitResourceIDs tags every comma-separated id in csv with resourceType.
// Ids are kept verbatim and in order; the remote API validates them.
func SplitResourceIDs(resourceType, csv string) []softlayer.ResourceObject {
	ids := strings.Split(csv, ",")
	resources := make([]softlayer.ResourceObject, 0, len(ids))
	for _, id := range ids {
		resources = append(resources, softlayer.ResourceObject{
			ComplexType: resourceType,
			ID:          id,
		})
	}
	return resources
}

// AddResourcesToGroup scopes groupID to the resources in idsCSV.
func (m *Manager) AddResourcesToGroup(ctx context.Context, groupID int, resourceType, idsCSV string) (ResourceResult, error) {
	res := ResourceResult{GroupID: groupID, Resources: SplitResourceIDs(resourceType, idsCSV)}
	ok, err := m.svc.AddGroupResources(ctx, groupID, res.Resources)
	if err != nil {
		return res, err
	}
	res.Applied = ok
	return res, nil
}

// RemoveResourcesFromGroup removes the resources in idsCSV from groupID.
func (m *Manager) RemoveResourcesFromGroup(ctx context.Context, groupID int, resourceType, idsCSV string) (ResourceResult, error) {
	res := ResourceResult{GroupID: groupID, Resources: SplitResourceIDs(resourceType, idsCSV)}
	ok, err := m.svc.RemoveGroupResources(ctx, groupID, res.Resources)
	if err != nil {
		return res, err
	}
	res.Applied = ok
	return res, nil
}
