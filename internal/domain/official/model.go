package official

const (
	RoleOfficial      = "official"
	RoleAssigner      = "assigner"
	RoleAdministrator = "administrator"
	RoleSuperadmin    = "superadmin"
)

// EligibleRoles holds the roles that may be assigned to games.
var EligibleRoles = map[string]struct{}{
	RoleOfficial:      {},
	RoleAssigner:      {},
	RoleAdministrator: {},
	RoleSuperadmin:    {},
}

// Official is a person who can be assigned to officiate games.
type Official struct {
	ID       string
	FullName string
	Email    string
	Role     string
	IsActive bool
}

// Assignable reports whether the official may enter a candidate pool.
func (o Official) Assignable() bool {
	if !o.IsActive {
		return false
	}
	_, ok := EligibleRoles[o.Role]
	return ok
}
