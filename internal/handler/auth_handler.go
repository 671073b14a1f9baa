package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"secureapp/internal/auth"
	apperrors "secureapp/internal/errors"
	"secureapp/internal/service"
	"secureapp/internal/validation"
)

// AuthHandler handles the authentication API.
type AuthHandler struct {
	authService service.AuthService
	sessions    *auth.Sessions
	limiter     *auth.LoginLimiter
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *auth.Sessions, limiter *auth.LoginLimiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		limiter:     limiter,
	}
}

// AuthResponse is the success body for register and login.
type AuthResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
}

// LogoutResponse is the logout body; logout never fails to the caller.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// SessionUser is the identity exposed by /api/me.
type SessionUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// MeResponse wraps the current identity; User is null for anonymous
// callers, which is a normal result rather than an error.
type MeResponse struct {
	User *SessionUser `json:"user"`
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user with role "user" and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.RegisterRequest true "Registration data"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req validation.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error:   "Validation failed",
			Details: validation.FieldErrors(err),
		})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, apperrors.ErrorResponse{
				Error: "An account with this email already exists.",
			})
		}
		c.Logger().Errorf("register: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Registration failed."})
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		c.Logger().Errorf("issue session: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Registration failed."})
	}
	h.sessions.Write(c, token)

	return c.JSON(http.StatusOK, AuthResponse{Success: true, Role: user.Role})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req validation.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error:   "Validation failed",
			Details: validation.FieldErrors(err),
		})
	}

	ctx := c.Request().Context()
	ip := c.RealIP()

	if retryAfter := h.limiter.RetryAfter(ctx, ip); retryAfter > 0 {
		c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		return c.JSON(http.StatusTooManyRequests, apperrors.ErrorResponse{
			Error: "Too many attempts, try again later.",
		})
	}

	user, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.limiter.RecordFailure(ctx, ip)
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Invalid email or password.",
			})
		}
		c.Logger().Errorf("login: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Login failed."})
	}
	h.limiter.Reset(ctx, ip)

	token, err := h.sessions.Issue(user)
	if err != nil {
		c.Logger().Errorf("issue session: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Login failed."})
	}
	h.sessions.Write(c, token)

	return c.JSON(http.StatusOK, AuthResponse{Success: true, Role: user.Role})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. Always reports success:
// @Description stranding the caller in a logged-in UI state is worse than
// @Description masking an internal error.
// @Tags auth
// @Produce json
// @Success 200 {object} LogoutResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.JSON(http.StatusOK, LogoutResponse{Success: true})
}

// Me godoc
// @Summary Current identity
// @Description Returns the session identity, or user:null when anonymous.
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims := h.sessions.Read(c)
	if claims == nil {
		return c.JSON(http.StatusOK, MeResponse{User: nil})
	}
	return c.JSON(http.StatusOK, MeResponse{
		User: &SessionUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		},
	})
}
