package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipebox/internal/auth"
	"recipebox/internal/config"
	"recipebox/internal/errors"
	"recipebox/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	favoriteHandler *handler.FavoriteHandler,
	progressHandler *handler.ProgressHandler,
	activityHandler *handler.ActivityHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes. The middleware rejects missing, malformed and expired
	// tokens with 401 before any handler runs.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		// Missing and malformed tokens both mean "re-authenticate"; the
		// middleware's default 400 for a missing token would suggest the
		// request itself was fixable.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "invalid or missing token",
				Code:  "AUTH_ERROR",
			})
		},
	}))

	secured.GET("/me", authHandler.Me)

	secured.GET("/favorites", favoriteHandler.List)
	secured.POST("/favorites", favoriteHandler.Add)
	secured.DELETE("/favorites/:id", favoriteHandler.Remove)

	secured.GET("/progress", progressHandler.List)
	secured.POST("/progress", progressHandler.Set)
	secured.DELETE("/progress/:id", progressHandler.Delete)

	secured.GET("/activities", activityHandler.List)
	secured.POST("/activities", activityHandler.Add)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
