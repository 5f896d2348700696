package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/learnhub/course-portal/internal/api/metrics"
	"github.com/learnhub/course-portal/internal/core/ports"
	"github.com/learnhub/course-portal/internal/core/service"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "portal_session"

// Context keys populated by SessionGate for downstream handlers.
const (
	CtxIdentity     = "identity"
	CtxRole         = "role"
	CtxSessionToken = "session_token"
)

// SessionGate adapts the pure access-gate decision to HTTP: it extracts the
// session cookie, asks the gate, consults the revocation store, and either
// forwards the request (identity in context) or issues the redirect. Gate
// failures never reach the rendering layer as errors — every path resolves to
// a decision.
//
// On public paths the gate allows without decoding; the provider then
// resolves the cookie as a read model so role-guarded API routes under public
// prefixes still see who is calling.
func SessionGate(gate *service.AccessGate, provider *service.SessionProvider, revoker ports.SessionRevoker, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			now := time.Now()

			raw := ""
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				raw = cookie.Value
			}

			decision := gate.Decide(path, raw, now)

			if decision.Token != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
				// Logout revocation is the one check the pure gate cannot do.
				// A revoked token is treated exactly like no token at all.
				if revoker != nil {
					revoked, err := revoker.IsRevoked(c.Request().Context(), decision.Token.TokenID)
					if err != nil {
						log.Warn().Err(err).Msg("revocation check failed, treating session as valid")
					} else if revoked {
						metrics.TokenVerificationsTotal.WithLabelValues("revoked").Inc()
						decision = gate.Decide(path, "", now)
					}
				}
			} else if raw != "" {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
			}

			if !decision.Allow {
				outcome := "redirect_home"
				if decision.Token == nil {
					outcome = "redirect_login"
				}
				metrics.GateDecisionsTotal.WithLabelValues(outcome).Inc()
				return c.Redirect(http.StatusFound, decision.RedirectTo)
			}

			metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
			switch {
			case decision.Token != nil:
				identity := decision.Token.Identity
				c.Set(CtxIdentity, &identity)
				c.Set(CtxRole, identity.Role)
				c.Set(CtxSessionToken, decision.Token)
			case raw != "":
				if sess := provider.Resolve(raw, now); sess.State == service.StateAuthenticated {
					c.Set(CtxIdentity, sess.Identity)
					c.Set(CtxRole, sess.Identity.Role)
				}
			}
			return next(c)
		}
	}
}
