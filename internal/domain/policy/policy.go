// Package policy decides whether a role may perform an action on a resource type.
//
// Decisions are a pure function of (resource, method, role). The evaluation is
// a table of rule functions keyed by resource type with an explicit default
// entry. Callers customise a single resource with Override, which hands the
// replacement the rule it displaces so it can defer to the default table.
package policy

import (
	"net/http"
	"slices"
	"strings"

	"fileauth/internal/domain/entity"
)

// ResourceType is a category of managed object subject to permission checks.
type ResourceType string

const (
	ResourceDag           ResourceType = "dag"
	ResourceDagRun        ResourceType = "dag-run"
	ResourceTaskInstance  ResourceType = "task-instance"
	ResourceConnection    ResourceType = "connection"
	ResourceVariable      ResourceType = "variable"
	ResourcePool          ResourceType = "pool"
	ResourceAsset         ResourceType = "asset"
	ResourceConfiguration ResourceType = "configuration"

	// Aliases evaluated with another resource's rule.
	ResourceBackfill   ResourceType = "backfill"
	ResourceAssetAlias ResourceType = "asset-alias"

	// ResourceDefault is the table entry used for resource types without a rule.
	ResourceDefault ResourceType = "*"
)

// Permission is the coarse action category derived from a request method.
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
)

// MethodMenu is the pseudo-method used by the host UI when rendering menus.
const MethodMenu = "MENU"

// Matrix maps a permission to the minimum role holding it.
type Matrix map[Permission]entity.Role

// defaultMatrices is the fixed permission table. Everyone reads; editors write
// workflow objects (including triggering asset events); only admins write
// platform configuration.
var defaultMatrices = map[ResourceType]Matrix{
	ResourceDag:           {PermissionRead: entity.RoleViewer, PermissionWrite: entity.RoleEditor},
	ResourceDagRun:        {PermissionRead: entity.RoleViewer, PermissionWrite: entity.RoleEditor},
	ResourceTaskInstance:  {PermissionRead: entity.RoleViewer, PermissionWrite: entity.RoleEditor},
	ResourceAsset:         {PermissionRead: entity.RoleViewer, PermissionWrite: entity.RoleEditor},
	ResourceConnection:    {PermissionRead: entity.RoleViewer, PermissionWrite: entity.RoleAdmin},
	ResourceVariable:      {PermissionRead: entity.RoleViewer, PermissionWrite: entity.RoleAdmin},
	ResourcePool:          {PermissionRead: entity.RoleViewer, PermissionWrite: entity.RoleAdmin},
	ResourceConfiguration: {PermissionRead: entity.RoleViewer, PermissionWrite: entity.RoleAdmin},
	ResourceDefault:       {PermissionRead: entity.RoleViewer, PermissionWrite: entity.RoleAdmin},
}

var defaultAliases = map[ResourceType]ResourceType{
	ResourceBackfill:   ResourceDag,
	ResourceAssetAlias: ResourceAsset,
}

// adminOnlyCustomViews lists custom view resource names that only admins may modify.
var adminOnlyCustomViews = []string{"Connection", "Variable", "Configuration", "Pool"}

// Request is a single authorization question.
type Request struct {
	Resource ResourceType
	Method   string
	Role     entity.Role
	// Details identifies the specific resource instance (e.g. a dag id).
	// The base rules ignore it; overrides may inspect it.
	Details string
}

// Rule answers an authorization request.
type Rule func(req Request) bool

// OverrideFunc replaces a rule. base is the rule in effect before the override.
type OverrideFunc func(req Request, base Rule) bool

// Policy is the rule table. Overrides must be registered before the policy is
// shared between goroutines; evaluation itself holds no mutable state.
type Policy struct {
	rules   map[ResourceType]Rule
	aliases map[ResourceType]ResourceType
}

// New returns a policy populated with the default permission table.
func New() *Policy {
	p := &Policy{
		rules:   make(map[ResourceType]Rule, len(defaultMatrices)),
		aliases: make(map[ResourceType]ResourceType, len(defaultAliases)),
	}
	for resource, matrix := range defaultMatrices {
		p.rules[resource] = MatrixRule(matrix)
	}
	for alias, target := range defaultAliases {
		p.aliases[alias] = target
	}

	return p
}

// PermissionFor maps a request method to a permission kind.
func PermissionFor(method string) (Permission, bool) {
	switch strings.ToUpper(method) {
	case http.MethodGet, MethodMenu:
		return PermissionRead, true
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return PermissionWrite, true
	default:
		return "", false
	}
}

// HasMinimumRole reports whether role is at or above required.
func HasMinimumRole(role, required entity.Role) bool {
	return role.AtLeast(required)
}

// MatrixRule builds a rule from a minimum-role matrix.
func MatrixRule(matrix Matrix) Rule {
	return func(req Request) bool {
		permission, ok := PermissionFor(req.Method)
		if !ok {
			return false
		}

		required, ok := matrix[permission]
		if !ok {
			return false
		}

		return HasMinimumRole(req.Role, required)
	}
}

// Rule returns the rule in effect for a resource type, following aliases and
// falling back to the default entry.
func (p *Policy) Rule(resource ResourceType) Rule {
	if rule, ok := p.rules[resource]; ok {
		return rule
	}
	if target, ok := p.aliases[resource]; ok {
		return p.Rule(target)
	}

	return p.rules[ResourceDefault]
}

// Override replaces the rule for one resource type. The replacement receives
// the previous rule so it can delegate the default case.
func (p *Policy) Override(resource ResourceType, fn OverrideFunc) {
	base := p.Rule(resource)
	p.rules[resource] = func(req Request) bool {
		return fn(req, base)
	}
}

// Evaluate answers a single request.
func (p *Policy) Evaluate(req Request) bool {
	return p.Rule(req.Resource)(req)
}

// IsAuthorized reports whether role may use method on the resource type.
func (p *Policy) IsAuthorized(resource ResourceType, method string, role entity.Role, details string) bool {
	return p.Evaluate(Request{
		Resource: resource,
		Method:   method,
		Role:     role,
		Details:  details,
	})
}

// IsAuthorizedBatch reports whether every request is allowed.
func (p *Policy) IsAuthorizedBatch(reqs []Request) bool {
	for _, req := range reqs {
		if !p.Evaluate(req) {
			return false
		}
	}

	return true
}

// IsAuthorizedView reports whether role may open a built-in view. Any
// recognised role may.
func (p *Policy) IsAuthorizedView(role entity.Role) bool {
	return HasMinimumRole(role, entity.RoleViewer)
}

// IsAuthorizedCustomView evaluates access to a plugin-defined view by name.
func (p *Policy) IsAuthorizedCustomView(method string, role entity.Role, resourceName string) bool {
	permission, ok := PermissionFor(method)
	if !ok {
		return false
	}
	if permission == PermissionRead {
		return HasMinimumRole(role, entity.RoleViewer)
	}
	if slices.Contains(adminOnlyCustomViews, resourceName) {
		return HasMinimumRole(role, entity.RoleAdmin)
	}

	return HasMinimumRole(role, entity.RoleEditor)
}

// Resources lists the resource types that have their own rule or alias,
// excluding the default entry.
func (p *Policy) Resources() []ResourceType {
	resources := make([]ResourceType, 0, len(p.rules)+len(p.aliases))
	for resource := range p.rules {
		if resource != ResourceDefault {
			resources = append(resources, resource)
		}
	}
	for alias := range p.aliases {
		if _, ok := p.rules[alias]; !ok {
			resources = append(resources, alias)
		}
	}
	slices.Sort(resources)

	return resources
}
