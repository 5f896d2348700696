package service

import "github.com/learnhub/course-portal/internal/core/domain"

// Canonical route prefixes. The gate and the post-login redirect both read
// from this table so the two can never disagree.
const (
	PathLogin      = "/login"
	PathDashboard  = "/dashboard"
	HomeStudent    = "/dashboard/student"
	HomeInstructor = "/dashboard/instructor"
	HomeAdmin      = "/dashboard/admin"
)

var roleHomes = map[string]string{
	domain.RoleStudent:    HomeStudent,
	domain.RoleInstructor: HomeInstructor,
	domain.RoleAdmin:      HomeAdmin,
	domain.RoleSuperAdmin: HomeAdmin,
}

// HomePath maps a role to its canonical landing route. Unknown or missing
// roles land on the student home.
func HomePath(role string) string {
	if home, ok := roleHomes[domain.NormalizeRole(role)]; ok {
		return home
	}
	return HomeStudent
}
