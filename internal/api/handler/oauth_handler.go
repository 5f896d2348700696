package handler

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/learnhub/course-portal/internal/api/metrics"
	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/service"
)

const (
	stateCookieName    = "oauth_state"
	callbackCookieName = "oauth_callback"
	stateCookieTTL     = 10 * time.Minute

	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

// OAuthHandler runs the Google sign-in dance. The identity that comes out of
// the callback goes through the same credential exchange and session mint as
// a password login.
type OAuthHandler struct {
	auth   *AuthHandler
	oauth  *oauth2.Config
	logger zerolog.Logger
}

func NewOAuthHandler(auth *AuthHandler, clientID, clientSecret, baseURL string, logger zerolog.Logger) *OAuthHandler {
	return &OAuthHandler{
		auth: auth,
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

// Begin redirects the browser to Google's consent screen. A random state
// value rides in a short-lived cookie; the originally requested path is
// preserved the same way so the callback can land the user back there.
//
// @Summary      Begin Google sign-in
// @Tags         auth
// @Param        callbackUrl  query  string  false  "Path to return to after sign-in"
// @Success      302  "redirect to Google"
// @Router       /auth/google [get]
func (h *OAuthHandler) Begin(c echo.Context) error {
	state, err := randomState()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not start sign-in")
	}

	h.setFlowCookie(c, stateCookieName, state)
	if cb := c.QueryParam("callbackUrl"); cb != "" {
		h.setFlowCookie(c, callbackCookieName, cb)
	}

	return c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// Callback completes the dance: state check, code exchange, userinfo fetch,
// reconciliation against the backend, session mint.
//
// @Summary      Google sign-in callback
// @Tags         auth
// @Success      302  "redirect to dashboard"
// @Failure      400  {object}  map[string]string
// @Router       /auth/google/callback [get]
func (h *OAuthHandler) Callback(c echo.Context) error {
	stateCookie, err := c.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		return echo.NewHTTPError(http.StatusBadRequest, "sign-in state mismatch")
	}
	h.clearFlowCookie(c, stateCookieName)

	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing authorization code")
	}

	ctx := c.Request().Context()
	token, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		h.logger.Error().Err(err).Msg("google code exchange failed")
		return echo.NewHTTPError(http.StatusBadGateway, "sign-in failed, please try again")
	}

	profile, err := h.fetchProfile(c, token)
	if err != nil {
		h.logger.Error().Err(err).Msg("google userinfo fetch failed")
		return echo.NewHTTPError(http.StatusBadGateway, "sign-in failed, please try again")
	}

	// Reconciliation failures degrade to a default-role identity inside the
	// credential exchange; this call does not fail on them.
	identity, err := h.auth.credentials.AuthenticateWithGoogle(ctx, *profile)
	if err != nil {
		return err
	}

	if err := h.auth.startSession(c, *identity); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("google", "success").Inc()
	h.auth.recordEvent(*identity, "google", domain.AuthEventSignIn)

	target := service.HomePath(identity.Role)
	if cb, err := c.Cookie(callbackCookieName); err == nil && cb.Value != "" {
		target = postLoginTarget(cb.Value, identity.Role)
		h.clearFlowCookie(c, callbackCookieName)
	}
	return c.Redirect(http.StatusFound, target)
}

func (h *OAuthHandler) fetchProfile(c echo.Context, token *oauth2.Token) (*domain.GoogleProfile, error) {
	client := h.oauth.Client(c.Request().Context(), token)
	res, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var profile domain.GoogleProfile
	if err := json.NewDecoder(res.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (h *OAuthHandler) setFlowCookie(c echo.Context, name, value string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.auth.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *OAuthHandler) clearFlowCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.auth.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
