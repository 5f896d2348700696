package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-portal/internal/api/middleware"
	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/ports"
)

const recentSignInsLimit = 20

// DashboardHandler serves the role-scoped dashboard payloads. Access is
// already enforced by the session gate before these run; the bare /dashboard
// root never reaches a handler because the gate redirects it to the role home.
type DashboardHandler struct {
	audit ports.AuditRepository
}

func NewDashboardHandler(audit ports.AuditRepository) *DashboardHandler {
	return &DashboardHandler{audit: audit}
}

type dashboardResponse struct {
	Dashboard string             `json:"dashboard"`
	User      *domain.Identity   `json:"user"`
	SignIns   []domain.AuthEvent `json:"recent_sign_ins,omitempty"`
}

// Student serves GET /dashboard/student.
func (h *DashboardHandler) Student(c echo.Context) error {
	return c.JSON(http.StatusOK, dashboardResponse{
		Dashboard: "student",
		User:      ctxIdentity(c),
	})
}

// Instructor serves GET /dashboard/instructor.
func (h *DashboardHandler) Instructor(c echo.Context) error {
	return c.JSON(http.StatusOK, dashboardResponse{
		Dashboard: "instructor",
		User:      ctxIdentity(c),
	})
}

// Admin serves GET /dashboard/admin with the recent sign-in audit trail.
func (h *DashboardHandler) Admin(c echo.Context) error {
	resp := dashboardResponse{
		Dashboard: "admin",
		User:      ctxIdentity(c),
	}

	if h.audit != nil {
		events, err := h.audit.ListRecent(c.Request().Context(), recentSignInsLimit)
		if err != nil {
			// The dashboard still renders without the trail.
			events = nil
		}
		resp.SignIns = events
	}

	return c.JSON(http.StatusOK, resp)
}

// ctxIdentity pulls the identity the session gate attached to the request.
func ctxIdentity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(middleware.CtxIdentity).(*domain.Identity)
	return identity
}
