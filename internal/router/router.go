package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"loginapi/internal/config"
	apperrors "loginapi/internal/errors"
	"loginapi/internal/handler"
)

const landingPage = `<!DOCTYPE html>
<html>
<head><title>Login App</title></head>
<body>
  <h1>Login API</h1>
  <p>Welcome to the Login Application</p>
  <h2>API Endpoints:</h2>
  <p><strong>POST</strong> /api/auth/register - Create new account</p>
  <p><strong>POST</strong> /api/auth/login - Login to account</p>
  <p><strong>GET</strong> /api/auth/users/:id - Fetch account</p>
  <p><strong>PUT</strong> /api/auth/users/:id - Update account</p>
  <p><strong>GET</strong> /health - Check server status</p>
</body>
</html>
`

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Unexpected faults surface as a generic 500 body, never internals.
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPage)
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/users/:id", userHandler.GetUser)
	api.PUT("/auth/users/:id", userHandler.UpdateUser)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
	}))

	secured.GET("/auth/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return c.JSON(http.StatusOK, echo.Map{
			"userId": claims["userId"],
			"email":  claims["email"],
		})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Something went wrong!"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if s, ok := he.Message.(string); ok && status != http.StatusInternalServerError {
			message = s
		}
	}

	_ = c.JSON(status, apperrors.ErrorResponse{Error: message})
}
