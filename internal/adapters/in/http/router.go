package http

import (
	"log/slog"
	"net/http"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const apiBaseURL = "/api/v1"

// BranchStreamer upgrades a request to a live feed of one branch's orders.
type BranchStreamer interface {
	ServeBranch(w http.ResponseWriter, r *http.Request, branchID kernel.UUID)
}

// RouterConfig holds what NewRouter wires together.
type RouterConfig struct {
	Server      *Server
	Streamer    BranchStreamer
	Tokens      *auth.Tokens
	Logger      *slog.Logger
	CORSOrigins []string
}

// NewRouter builds the echo instance: public health, docs and WebSocket
// routes plus the bearer-protected API under /api/v1.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(cfg.Logger))
	e.Use(middleware.Recover())

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	registerDocs(e)

	if cfg.Streamer != nil {
		e.GET("/ws/branches/:branchId/orders", func(c echo.Context) error {
			branchID, err := kernel.UUIDFromString(c.Param("branchId"))
			if err != nil {
				return err
			}
			cfg.Streamer.ServeBranch(c.Response(), c.Request(), branchID)
			return nil
		})
	}

	api := e.Group(apiBaseURL, BearerAuth(cfg.Tokens))
	servers.RegisterHandlers(api, cfg.Server)

	return e
}
