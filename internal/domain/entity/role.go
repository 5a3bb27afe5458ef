// Package entity contains the core business objects of the project.
package entity

// Role is the account type chosen at registration. A profile without a role has not been activated.
type Role string

const (
	RoleDonor    Role = "donor"
	RoleHospital Role = "hospital" // hospitals and blood banks
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the two account types.
func (r Role) IsValid() bool {
	return r == RoleDonor || r == RoleHospital
}

// IsHospital reports whether r may create requests and see donors.
func (r Role) IsHospital() bool {
	return r == RoleHospital
}
