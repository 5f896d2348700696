// Package backend implements the HTTP client for the external backend API
// that owns user accounts. The portal never stores credentials itself; both
// password verification and federated-account reconciliation are delegated
// here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-portal/internal/api/metrics"
	"github.com/learnhub/course-portal/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type backendUser struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	ProfileImage string `json:"profileImage"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	User        *backendUser `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// Login calls POST {backend}/users/login. Backend-reported rejections become
// *domain.AuthenticationError with the backend's message; anything that
// prevents getting a well-formed answer becomes domain.ErrBackendUnavailable.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	var resp loginResponse
	status, err := c.post(ctx, "/users/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		c.logger.Error().Err(err).Msg("backend login call failed")
		return nil, domain.ErrBackendUnavailable
	}

	if status >= http.StatusBadRequest || !resp.Success {
		return nil, &domain.AuthenticationError{Message: resp.Message}
	}
	if resp.User == nil {
		c.logger.Error().Int("status", status).Msg("backend login returned success without user payload")
		return nil, domain.ErrBackendUnavailable
	}

	identity := domain.NewIdentity(
		resp.User.ID,
		resp.User.Name,
		resp.User.Email,
		resp.User.Role,
		resp.User.ProfileImage,
		resp.AccessToken,
	)
	return &identity, nil
}

type checkGoogleUserRequest struct {
	GoogleID     string `json:"googleId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
}

type checkGoogleUserResponse struct {
	User *backendUser `json:"user"`
}

// CheckGoogleUser calls POST {backend}/users/check-google-user to look up or
// create the account matching a federated profile. The call may create a user
// backend-side; it is idempotent on external id/email. Failure is non-fatal
// for sign-in — the caller falls back to a default-role identity.
func (c *Client) CheckGoogleUser(ctx context.Context, profile domain.GoogleProfile) (*domain.Identity, error) {
	req := checkGoogleUserRequest{
		GoogleID:     profile.Sub,
		Email:        profile.Email,
		Name:         profile.Name,
		ProfileImage: profile.Picture,
	}

	var resp checkGoogleUserResponse
	status, err := c.post(ctx, "/users/check-google-user", req, &resp)
	if err != nil || status >= http.StatusBadRequest {
		c.logger.Warn().Err(err).Int("status", status).Msg("google user reconciliation call failed")
		return nil, domain.ErrReconciliationFailed
	}
	if resp.User == nil {
		return nil, nil
	}

	// Canonical id and role come from the backend; display fields fall back
	// to the federated profile when the backend omits them.
	name := resp.User.Name
	if name == "" {
		name = profile.Name
	}
	email := resp.User.Email
	if email == "" {
		email = profile.Email
	}
	avatar := resp.User.ProfileImage
	if avatar == "" {
		avatar = profile.Picture
	}

	identity := domain.NewIdentity(resp.User.ID, name, email, resp.User.Role, avatar, "")
	return &identity, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return res.StatusCode, err
	}
	return res.StatusCode, nil
}
