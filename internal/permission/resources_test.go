package permission

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slperm/cli/internal/softlayer"
)

func TestSplitResourceIDs(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"single", "11111"},
		{"two", "109620930,118470220"},
		{"many", "1,2,3,4,5,6,7"},
		{"empty segments kept", "1,,3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := strings.Split(tt.csv, ",")
			got := SplitResourceIDs("SoftLayer_Hardware_Server", tt.csv)

			require.Len(t, got, len(ids))
			for i, r := range got {
				assert.Equal(t, "SoftLayer_Hardware_Server", r.ComplexType)
				assert.Equal(t, ids[i], r.ID)
			}
		})
	}
}

func TestAddResourcesToGroup(t *testing.T) {
	svc := &fakeService{applied: true}
	m := newTestManager(svc)

	res, err := m.AddResourcesToGroup(context.Background(), 456789, "SoftLayer_Hardware_Server", "11111,22222")
	require.NoError(t, err)

	assert.True(t, res.Applied)
	assert.Equal(t, []string{"AddGroupResources[456789]"}, svc.calls)
	assert.Equal(t, []softlayer.ResourceObject{
		{ComplexType: "SoftLayer_Hardware_Server", ID: "11111"},
		{ComplexType: "SoftLayer_Hardware_Server", ID: "22222"},
	}, svc.resources)
}

func TestRemoveResourcesFromGroup(t *testing.T) {
	svc := &fakeService{applied: false}
	m := newTestManager(svc)

	res, err := m.RemoveResourcesFromGroup(context.Background(), 456789, "SoftLayer_Virtual_Guest", "1,2,3")
	require.NoError(t, err)

	assert.False(t, res.Applied)
	assert.ErrorIs(t, res.Err(), ErrNotApplied)
	assert.Equal(t, []string{"RemoveGroupResources[456789]"}, svc.calls)
	assert.Len(t, svc.resources, 3)
	assert.Equal(t, "SoftLayer_Virtual_Guest", svc.resources[2].ComplexType)
}
