package authz

// Engine evaluates authorization checks against an immutable role table.
// Every method is a pure O(1) lookup and fails closed: an unknown or
// malformed role token denies, it never panics or errors.
type Engine struct {
	table Table
}

// NewEngine creates an Engine over the given table. The table is captured by
// reference and must not be mutated afterwards.
func NewEngine(table Table) *Engine {
	return &Engine{table: table}
}

// publicRoles is the fixed public-facing set for PublicReadAllowed.
var publicRoles = map[string]struct{}{
	RoleSpectator: {},
	RoleSponsor:   {},
}

// HasPermission reports whether the role holds the permission token. A role
// holding PermAdmin passes every permission check. Unknown roles deny.
func (e *Engine) HasPermission(role, permission string) bool {
	entry, ok := e.table[NormalizeRole(role)]
	if !ok {
		return false
	}
	for _, p := range entry.Permissions {
		if p == permission || p == PermAdmin {
			return true
		}
	}
	return false
}

// HasAccessLevel reports whether the role's level is at least required.
// PermAdmin does not bypass this check; the level lattice and the permission
// set are independent gates. Unknown roles rank below every level and deny.
func (e *Engine) HasAccessLevel(role string, required AccessLevel) bool {
	entry, ok := e.table[NormalizeRole(role)]
	if !ok {
		return false
	}
	return entry.Level >= required
}

// IsRoleAllowed reports whether the role is in the explicit allow-list. There
// is no admin fallback: this check restricts an operation to an exact set of
// roles regardless of their general privilege.
func (e *Engine) IsRoleAllowed(role string, allowed ...string) bool {
	role = NormalizeRole(role)
	for _, a := range allowed {
		if NormalizeRole(a) == role {
			return true
		}
	}
	return false
}

// PublicReadAllowed reports whether public content is visible to the actor.
// An empty role means an unauthenticated visitor, who always passes. Otherwise
// the role must be in the public-facing set or hold PermAdmin.
func (e *Engine) PublicReadAllowed(role string) bool {
	if role == "" {
		return true
	}
	role = NormalizeRole(role)
	if _, ok := publicRoles[role]; ok {
		return true
	}
	return e.HasPermission(role, PermAdmin)
}

// Known reports whether the role token exists in the table. Used at
// registration time to reject unrecognized role values up front.
func (e *Engine) Known(role string) bool {
	_, ok := e.table[NormalizeRole(role)]
	return ok
}
