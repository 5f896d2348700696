package service

import (
	"net/url"
	"strings"
	"time"

	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/ports"
)

// Decision is the single outcome the gate produces for a request: either the
// request proceeds (optionally with a verified token attached) or it is
// redirected.
type Decision struct {
	Allow      bool
	RedirectTo string
	// Token is set whenever a valid session token was decoded, including on
	// redirect decisions, so callers can tell "redirected because anonymous"
	// from "redirected to own role home".
	Token *domain.SessionToken
}

// Paths reachable without a session. Evaluated before any token decoding.
var publicPrefixes = []string{
	PathLogin,
	"/register",
	"/auth/",
	"/courses",
	"/about",
	"/contact",
	"/health",
	"/metrics",
	"/swagger",
}

// Role-scoped dashboard subtrees. A request under a subtree the identity's
// role does not own redirects to the identity's own home without revealing
// anything about the foreign subtree.
var roleSubtrees = []struct {
	prefix  string
	allowed map[string]struct{}
}{
	{HomeAdmin, map[string]struct{}{domain.RoleAdmin: {}, domain.RoleSuperAdmin: {}}},
	{HomeInstructor, map[string]struct{}{domain.RoleInstructor: {}}},
	{HomeStudent, map[string]struct{}{domain.RoleStudent: {}}},
}

// AccessGate is the sole enforcement point for route protection. Decide is a
// pure function of (path, token, clock): it performs no writes and no I/O
// beyond the local signature check, and any decode failure is treated as "no
// session" — the gate fails closed, never open.
type AccessGate struct {
	codec ports.SessionCodec
}

func NewAccessGate(codec ports.SessionCodec) *AccessGate {
	return &AccessGate{codec: codec}
}

func (g *AccessGate) Decide(path, rawToken string, now time.Time) Decision {
	if isPublicPath(path) {
		return Decision{Allow: true}
	}

	tok, err := g.verify(rawToken, now)
	if err != nil {
		return Decision{RedirectTo: loginRedirect(path)}
	}

	role := tok.Identity.Role

	// Bare dashboard root fans out to the role's canonical home.
	if path == PathDashboard || path == PathDashboard+"/" {
		return Decision{RedirectTo: HomePath(role), Token: tok}
	}

	for _, sub := range roleSubtrees {
		if !strings.HasPrefix(path, sub.prefix) {
			continue
		}
		if _, ok := sub.allowed[role]; !ok {
			return Decision{RedirectTo: HomePath(role), Token: tok}
		}
		break
	}

	return Decision{Allow: true, Token: tok}
}

func (g *AccessGate) verify(rawToken string, now time.Time) (*domain.SessionToken, error) {
	if rawToken == "" {
		return nil, domain.ErrTokenInvalid
	}
	return g.codec.Verify(rawToken, now)
}

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	// Static assets.
	if strings.Contains(path, ".") {
		return true
	}
	return !strings.HasPrefix(path, PathDashboard)
}

// loginRedirect preserves the originally requested path so the user returns
// there after signing in.
func loginRedirect(path string) string {
	return PathLogin + "?callbackUrl=" + url.QueryEscape(path)
}
