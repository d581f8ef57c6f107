package user

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleManager  Role = "manager"  // Runs payroll cycles
	RoleEmployee Role = "employee" // Paid through payroll cycles
)

// CanManagePayroll reports whether the role may create, calculate, adjust and finalize cycles.
func (r Role) CanManagePayroll() bool {
	return r == RoleOwner || r == RoleManager
}
