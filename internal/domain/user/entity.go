package user

type Role string

const (
	RoleHR       Role = "hr"       // HR staff - full console access
	RoleManager  Role = "manager"  // Can punch on behalf of team members, review tasks
	RoleEmployee Role = "employee" // Regular employee
)

// Identity is the authenticated console user, extracted from token claims.
type Identity struct {
	EmployeeID string
	Role       Role
}

// IsManager checks if the user can act on behalf of other employees
func (i Identity) IsManager() bool {
	return i.Role == RoleManager || i.Role == RoleHR
}

// CanReviewTasks checks if the user can approve or reject submitted tasks
func (i Identity) CanReviewTasks() bool {
	return i.IsManager()
}
