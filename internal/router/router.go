package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"secureapp/internal/auth"
	"secureapp/internal/handler"
	"secureapp/internal/validation"
	"secureapp/internal/web"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Client IPs come from the socket peer, never forwarded headers, so
	// the login throttle cannot be dodged with a spoofed X-Forwarded-For.
	// Deployments behind a trusted reverse proxy should swap in
	// echo.ExtractIPFromXFFHeader with the proxy's trust ranges.
	e.IPExtractor = echo.ExtractIPDirect()

	e.Validator = &CustomValidator{validator: validation.New()}
	e.Renderer = web.NewRenderer()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/me", authHandler.Me)

	// Page routes sit behind the coarse gate; protected handlers also
	// re-validate the session themselves.
	pages := e.Group("", auth.PageGate())
	pages.GET("/", pageHandler.Home)
	pages.GET("/login", pageHandler.Login)
	pages.GET("/register", pageHandler.Register)
	pages.GET("/dashboard", pageHandler.Dashboard)
	pages.GET("/admin", pageHandler.Admin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
