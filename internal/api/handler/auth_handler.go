package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/learnhub/course-portal/internal/api/metrics"
	"github.com/learnhub/course-portal/internal/api/middleware"
	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/ports"
	"github.com/learnhub/course-portal/internal/core/service"
)

// AuthHandler owns credential sign-in, sign-out and the session read model.
type AuthHandler struct {
	credentials  ports.CredentialExchange
	codec        ports.SessionCodec
	provider     *service.SessionProvider
	revoker      ports.SessionRevoker
	audit        ports.AuditRecorder
	secureCookie bool
	logger       zerolog.Logger
}

func NewAuthHandler(
	credentials ports.CredentialExchange,
	codec ports.SessionCodec,
	provider *service.SessionProvider,
	revoker ports.SessionRevoker,
	audit ports.AuditRecorder,
	secureCookie bool,
	logger zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		credentials:  credentials,
		codec:        codec,
		provider:     provider,
		revoker:      revoker,
		audit:        audit,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

type loginRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	CallbackURL string `json:"callbackUrl"`
}

type loginResponse struct {
	User       *domain.Identity `json:"user"`
	RedirectTo string           `json:"redirectTo"`
}

// Login authenticates with email/password and sets the session cookie.
//
// @Summary      Sign in with credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	identity, err := h.credentials.AuthenticateWithPassword(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("credentials", "failure").Inc()
		return err
	}

	if err := h.startSession(c, *identity); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("credentials", "success").Inc()
	h.recordEvent(*identity, "credentials", domain.AuthEventSignIn)

	return c.JSON(http.StatusOK, loginResponse{
		User:       identity,
		RedirectTo: postLoginTarget(req.CallbackURL, identity.Role),
	})
}

// Logout invalidates the current session: the token id is revoked until its
// natural expiry and the cookie is cleared.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      204  "session ended"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if tok, err := h.codec.Verify(cookie.Value, time.Now()); err == nil {
			if err := h.revoker.Revoke(c.Request().Context(), tok.TokenID, tok.ExpiresAt); err != nil {
				h.logger.Warn().Err(err).Msg("failed to revoke session token")
			}
			h.recordEvent(tok.Identity, "", domain.AuthEventSignOut)
		}
	}

	h.clearCookie(c)
	return c.NoContent(http.StatusNoContent)
}

type sessionResponse struct {
	Status string           `json:"status"`
	User   *domain.Identity `json:"user,omitempty"`
}

// Session exposes the current-session read model: authenticated or not, and
// who. It enforces nothing — the gate does.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	raw := ""
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		raw = cookie.Value
	}

	sess := h.provider.Resolve(raw, time.Now())
	return c.JSON(http.StatusOK, sessionResponse{
		Status: sess.State.String(),
		User:   sess.Identity,
	})
}

// startSession mints a token for the identity and writes the session cookie.
// The cookie is only written after a fully successful mint.
func (h *AuthHandler) startSession(c echo.Context, identity domain.Identity) error {
	token, err := h.codec.Mint(identity, time.Now())
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", identity.ID).Msg("failed to mint session token")
		return echo.NewHTTPError(http.StatusInternalServerError, "could not start session")
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.codec.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *AuthHandler) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) recordEvent(identity domain.Identity, provider string, kind domain.AuthEventKind) {
	if h.audit == nil {
		return
	}
	h.audit.Record(domain.AuthEvent{
		UserID:   identity.ID,
		Email:    identity.Email,
		Role:     identity.Role,
		Provider: provider,
		Kind:     kind,
		At:       time.Now().UTC(),
	})
}

// postLoginTarget picks the client redirect after sign-in: the preserved
// callback when it is a safe internal path, the role home otherwise. The role
// table is the same one the gate consults.
func postLoginTarget(callbackURL, role string) string {
	if strings.HasPrefix(callbackURL, "/") && !strings.HasPrefix(callbackURL, "//") {
		return callbackURL
	}
	return service.HomePath(role)
}
