package domain

// Roles recognised by the portal. The backend is the source of truth for a
// user's role; anything it reports outside this set collapses to student.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// NormalizeRole maps an arbitrary role string onto the known set.
// Unknown or empty roles default to student.
func NormalizeRole(role string) string {
	switch role {
	case RoleStudent, RoleInstructor, RoleAdmin, RoleSuperAdmin:
		return role
	default:
		return RoleStudent
	}
}

// Identity is the normalized representation of an authenticated user.
// It is immutable for the lifetime of a session; a role change requires
// re-authentication.
type Identity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	BackendToken string `json:"-"`
}

// NewIdentity builds an Identity with every field and its default made
// explicit. Optional backend fields (avatar, access token) stay empty
// rather than propagating whatever the backend happened to omit.
func NewIdentity(id, name, email, role, avatarURL, backendToken string) Identity {
	return Identity{
		ID:           id,
		Name:         name,
		Email:        email,
		Role:         NormalizeRole(role),
		AvatarURL:    avatarURL,
		BackendToken: backendToken,
	}
}

// GoogleProfile carries the fields of a federated Google sign-in that the
// portal cares about. Sub is the stable external id.
type GoogleProfile struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
