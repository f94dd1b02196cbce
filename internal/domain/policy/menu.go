package policy

import (
	"strings"

	"fileauth/internal/domain/entity"
)

// DefaultMenu is the host UI's top-level menu.
var DefaultMenu = []string{
	"Dags",
	"Assets",
	"Browse",
	"Docs",
	"Connections",
	"Variables",
	"Pools",
	"Config",
	"Admin",
}

var adminOnlyMenus = map[string]struct{}{
	"connections": {},
	"variables":   {},
	"pools":       {},
	"config":      {},
	"admin":       {},
}

// FilterMenuItems hides the menu entries role cannot use. Matching is
// case-insensitive; order is preserved.
func FilterMenuItems(role entity.Role, items []string) []string {
	filtered := make([]string, 0, len(items))
	isAdmin := HasMinimumRole(role, entity.RoleAdmin)

	for _, item := range items {
		if _, adminOnly := adminOnlyMenus[strings.ToLower(strings.TrimSpace(item))]; adminOnly && !isAdmin {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}
