package config

import (
	"sort"
	"strings"
)

// Permission names a capability an endpoint can demand.
type Permission string

const (
	PermViewOverview    Permission = "view_overview"
	PermViewSales       Permission = "view_sales"
	PermViewMaintenance Permission = "view_maintenance"
)

// DefaultRole applies when a request carries no role header.
const DefaultRole = "sales"

// PermissionSet is the fixed capability set of one role.
type PermissionSet map[Permission]bool

// Has reports whether the set contains the permission.
func (s PermissionSet) Has(p Permission) bool {
	return s[p]
}

// rolePermissions enumerates every known role. The table is fixed at
// compile time; an unknown role resolves to no permissions at all.
var rolePermissions = map[string]PermissionSet{
	"admin": {
		PermViewOverview:    true,
		PermViewSales:       true,
		PermViewMaintenance: true,
	},
	"sales": {
		PermViewOverview: true,
		PermViewSales:    true,
	},
	"technician": {
		PermViewOverview:    true,
		PermViewMaintenance: true,
	},
}

// NormalizeRole lower-cases and trims a role header value, substituting
// the default role when it is empty.
func NormalizeRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return DefaultRole
	}
	return role
}

// PermissionsFor returns the permission set of a normalized role.
// Unknown roles get an empty set.
func PermissionsFor(role string) PermissionSet {
	if permissions, ok := rolePermissions[role]; ok {
		return permissions
	}
	return PermissionSet{}
}

// Roles lists the configured role names in stable order.
func Roles() []string {
	names := make([]string, 0, len(rolePermissions))
	for name := range rolePermissions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
