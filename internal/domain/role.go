package domain

// Role distinguishes the customer view (open slots only) from the elevated
// owner view (settings and all bookings). It is checked at each operation
// boundary rather than inferred from UI state.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleOwner
}
