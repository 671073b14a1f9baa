package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"secureapp/internal/auth"
	"secureapp/internal/model"
	"secureapp/internal/service"
)

// adminUserLimit caps the admin panel's user listing.
const adminUserLimit = 50

// PageHandler renders the HTML pages. Protected pages re-derive the
// authoritative session here even though the gate already ran: the gate
// only checks cookie presence, so a cookie that fails validation must
// still be denied at this layer.
type PageHandler struct {
	sessions *auth.Sessions
	users    service.UserService
}

// NewPageHandler creates the page handler.
func NewPageHandler(sessions *auth.Sessions, users service.UserService) *PageHandler {
	return &PageHandler{sessions: sessions, users: users}
}

// Home renders the public landing page.
func (h *PageHandler) Home(c echo.Context) error {
	claims := h.sessions.Read(c)
	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Session": claims,
	})
}

// Login renders the login form.
func (h *PageHandler) Login(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"From": c.QueryParam("from"),
	})
}

// Register renders the registration form.
func (h *PageHandler) Register(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", nil)
}

// Dashboard renders the protected dashboard.
func (h *PageHandler) Dashboard(c echo.Context) error {
	claims := h.sessions.Read(c)
	if claims == nil {
		return c.Redirect(http.StatusFound, auth.LoginRedirect(c.Request().URL.Path))
	}
	return c.Render(http.StatusOK, "dashboard.html", echo.Map{
		"Email":   claims.Email,
		"Role":    claims.Role,
		"IsAdmin": claims.Role == model.RoleAdmin,
	})
}

// Admin renders the admin-only user listing. Non-admins are sent back to
// the dashboard rather than shown an error page.
func (h *PageHandler) Admin(c echo.Context) error {
	claims := h.sessions.Read(c)
	if claims == nil {
		return c.Redirect(http.StatusFound, auth.LoginRedirect(c.Request().URL.Path))
	}
	if claims.Role != model.RoleAdmin {
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	users, err := h.users.ListRecent(c.Request().Context(), adminUserLimit)
	if err != nil {
		c.Logger().Errorf("list users: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load users")
	}

	return c.Render(http.StatusOK, "admin.html", echo.Map{
		"Email": claims.Email,
		"Users": users,
	})
}
