package domain

// Role is the closed set of roles an authenticated caller can hold. It is
// carried explicitly inside Identity, never read from ambient state.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// Privileged reports whether r may act on resources it does not own.
func (r Role) Privileged() bool {
	return r == RoleAdmin
}

// Identity is the pre-validated caller context attached to every operation.
// Token validation happens upstream; by the time an Identity reaches a
// service, SubjectEmployeeID and Role are trusted.
type Identity struct {
	SubjectEmployeeID string
	Role              Role
}

// Owns reports whether the identity's subject is the given employee.
func (id Identity) Owns(employeeID string) bool {
	return id.SubjectEmployeeID == employeeID
}
