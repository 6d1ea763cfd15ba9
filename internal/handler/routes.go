package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig holds the transport settings for NewRouter.
type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter builds the echo instance with middleware and every route registered.
func NewRouter(cfg RouterConfig, projects *ProjectHandler, board *BoardHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler
	e.Validator = NewAppValidator()

	e.Use(middleware.RequestID())
	e.Use(RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAccept, echo.HeaderContentType},
		ExposeHeaders: []string{echo.HeaderXRequestID},
		MaxAge:        300,
	}))

	e.GET("/health", func(c echo.Context) error {
		return JSON(c, http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/", board.Page)
	e.GET("/events", board.Events)

	api := e.Group("/api/v1")
	api.GET("/projects", projects.List)
	api.POST("/projects", projects.Create)
	api.GET("/projects/:id", projects.Get)
	api.POST("/projects/:id/move", projects.Move)

	return e
}
