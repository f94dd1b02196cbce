package policy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"fileauth/internal/domain/entity"
)

var allResources = []ResourceType{
	ResourceDag,
	ResourceDagRun,
	ResourceTaskInstance,
	ResourceConnection,
	ResourceVariable,
	ResourcePool,
	ResourceAsset,
	ResourceConfiguration,
	ResourceBackfill,
	ResourceAssetAlias,
}

func TestPermissionFor(t *testing.T) {
	tests := []struct {
		method string
		want   Permission
		ok     bool
	}{
		{http.MethodGet, PermissionRead, true},
		{"get", PermissionRead, true},
		{MethodMenu, PermissionRead, true},
		{http.MethodPost, PermissionWrite, true},
		{http.MethodPut, PermissionWrite, true},
		{http.MethodPatch, PermissionWrite, true},
		{http.MethodDelete, PermissionWrite, true},
		{http.MethodHead, "", false},
		{http.MethodOptions, "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, ok := PermissionFor(tt.method)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAuthorized_ReadAllowedForEveryRole(t *testing.T) {
	p := New()

	for _, resource := range allResources {
		for _, role := range entity.Roles() {
			assert.True(t, p.IsAuthorized(resource, http.MethodGet, role, ""), "%s GET %s", role, resource)
			assert.True(t, p.IsAuthorized(resource, MethodMenu, role, ""), "%s MENU %s", role, resource)
		}
	}
}

func TestIsAuthorized_WriteMatrix(t *testing.T) {
	p := New()

	tests := []struct {
		resource ResourceType
		minimum  entity.Role
	}{
		{ResourceDag, entity.RoleEditor},
		{ResourceDagRun, entity.RoleEditor},
		{ResourceTaskInstance, entity.RoleEditor},
		{ResourceAsset, entity.RoleEditor},
		{ResourceBackfill, entity.RoleEditor},
		{ResourceAssetAlias, entity.RoleEditor},
		{ResourceConnection, entity.RoleAdmin},
		{ResourceVariable, entity.RoleAdmin},
		{ResourcePool, entity.RoleAdmin},
		{ResourceConfiguration, entity.RoleAdmin},
	}

	writes := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	for _, tt := range tests {
		t.Run(string(tt.resource), func(t *testing.T) {
			for _, method := range writes {
				for _, role := range entity.Roles() {
					want := role.Level() >= tt.minimum.Level()
					assert.Equal(t, want, p.IsAuthorized(tt.resource, method, role, "some-id"), "%s %s %s", role, method, tt.resource)
				}
			}
		})
	}
}

func TestIsAuthorized_UnknownRoleDenied(t *testing.T) {
	p := New()

	for _, resource := range allResources {
		assert.False(t, p.IsAuthorized(resource, http.MethodGet, entity.Role("guest"), ""))
		assert.False(t, p.IsAuthorized(resource, http.MethodGet, entity.Role(""), ""))
	}
}

func TestIsAuthorized_UnknownMethodDenied(t *testing.T) {
	p := New()

	assert.False(t, p.IsAuthorized(ResourceDag, http.MethodHead, entity.RoleAdmin, ""))
	assert.False(t, p.IsAuthorized(ResourceDag, "TRACE", entity.RoleAdmin, ""))
}

func TestIsAuthorized_UnknownResourceUsesDefault(t *testing.T) {
	p := New()
	unknown := ResourceType("xcom")

	assert.True(t, p.IsAuthorized(unknown, http.MethodGet, entity.RoleViewer, ""))
	assert.False(t, p.IsAuthorized(unknown, http.MethodPost, entity.RoleEditor, ""))
	assert.True(t, p.IsAuthorized(unknown, http.MethodPost, entity.RoleAdmin, ""))
}

func TestOverride_ReceivesBaseRule(t *testing.T) {
	p := New()

	p.Override(ResourceDag, func(req Request, base Rule) bool {
		if req.Details == "restricted" {
			return req.Role == entity.RoleAdmin
		}

		return base(req)
	})

	assert.False(t, p.IsAuthorized(ResourceDag, http.MethodGet, entity.RoleViewer, "restricted"))
	assert.True(t, p.IsAuthorized(ResourceDag, http.MethodGet, entity.RoleAdmin, "restricted"))
	assert.True(t, p.IsAuthorized(ResourceDag, http.MethodGet, entity.RoleViewer, "example"))
	assert.True(t, p.IsAuthorized(ResourceDag, http.MethodPost, entity.RoleEditor, "example"))

	// Aliases follow the overridden rule.
	assert.False(t, p.IsAuthorized(ResourceBackfill, http.MethodGet, entity.RoleViewer, "restricted"))

	// Other resources are untouched.
	assert.True(t, p.IsAuthorized(ResourceDagRun, http.MethodGet, entity.RoleViewer, "restricted"))
}

func TestOverride_OnlyAffectsOneAlias(t *testing.T) {
	p := New()

	p.Override(ResourceBackfill, func(req Request, base Rule) bool {
		return false
	})

	assert.False(t, p.IsAuthorized(ResourceBackfill, http.MethodGet, entity.RoleAdmin, ""))
	assert.True(t, p.IsAuthorized(ResourceDag, http.MethodGet, entity.RoleViewer, ""))
}

func TestOverride_Stacks(t *testing.T) {
	p := New()
	calls := 0

	p.Override(ResourcePool, func(req Request, base Rule) bool {
		calls++

		return base(req)
	})
	p.Override(ResourcePool, func(req Request, base Rule) bool {
		calls++

		return base(req)
	})

	assert.True(t, p.IsAuthorized(ResourcePool, http.MethodGet, entity.RoleViewer, ""))
	assert.Equal(t, 2, calls)
}

func TestPolicies_AreIndependent(t *testing.T) {
	overridden := New()
	overridden.Override(ResourceDag, func(Request, Rule) bool { return false })

	assert.True(t, New().IsAuthorized(ResourceDag, http.MethodGet, entity.RoleViewer, ""))
}

func TestIsAuthorizedBatch(t *testing.T) {
	p := New()

	assert.True(t, p.IsAuthorizedBatch(nil))
	assert.True(t, p.IsAuthorizedBatch([]Request{
		{Resource: ResourceDag, Method: http.MethodGet, Role: entity.RoleEditor},
		{Resource: ResourceDagRun, Method: http.MethodPost, Role: entity.RoleEditor},
	}))
	assert.False(t, p.IsAuthorizedBatch([]Request{
		{Resource: ResourceDag, Method: http.MethodGet, Role: entity.RoleEditor},
		{Resource: ResourceVariable, Method: http.MethodPost, Role: entity.RoleEditor},
	}))
}

func TestIsAuthorizedView(t *testing.T) {
	p := New()

	for _, role := range entity.Roles() {
		assert.True(t, p.IsAuthorizedView(role))
	}
	assert.False(t, p.IsAuthorizedView(entity.Role("nobody")))
}

func TestIsAuthorizedCustomView(t *testing.T) {
	p := New()

	assert.True(t, p.IsAuthorizedCustomView(http.MethodGet, entity.RoleViewer, "Connection"))
	assert.False(t, p.IsAuthorizedCustomView(http.MethodPost, entity.RoleEditor, "Connection"))
	assert.True(t, p.IsAuthorizedCustomView(http.MethodPost, entity.RoleAdmin, "Connection"))
	assert.True(t, p.IsAuthorizedCustomView(http.MethodPost, entity.RoleEditor, "MyPluginView"))
	assert.False(t, p.IsAuthorizedCustomView(http.MethodPost, entity.RoleViewer, "MyPluginView"))
	assert.False(t, p.IsAuthorizedCustomView(http.MethodHead, entity.RoleAdmin, "MyPluginView"))
}

func TestHasMinimumRole(t *testing.T) {
	assert.True(t, HasMinimumRole(entity.RoleAdmin, entity.RoleEditor))
	assert.False(t, HasMinimumRole(entity.RoleViewer, entity.RoleEditor))
	assert.False(t, HasMinimumRole(entity.Role("root"), entity.RoleViewer))
}

func TestResources(t *testing.T) {
	resources := New().Resources()

	assert.ElementsMatch(t, allResources, resources)
	assert.NotContains(t, resources, ResourceDefault)
}

func TestFilterMenuItems(t *testing.T) {
	assert.Equal(t, DefaultMenu, FilterMenuItems(entity.RoleAdmin, DefaultMenu))
	assert.Equal(t,
		[]string{"Dags", "Assets", "Browse", "Docs"},
		FilterMenuItems(entity.RoleEditor, DefaultMenu),
	)
	assert.Equal(t,
		[]string{"Dags", "Assets", "Browse", "Docs"},
		FilterMenuItems(entity.RoleViewer, DefaultMenu),
	)
	assert.Equal(t, []string{"custom"}, FilterMenuItems(entity.RoleViewer, []string{"CONNECTIONS", "custom"}))
	assert.Empty(t, FilterMenuItems(entity.RoleViewer, nil))
}
