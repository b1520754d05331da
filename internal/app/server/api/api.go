// Package api assembles the gateway's legacy routes:
//
//	GET /api/v1/health                 (public)
//	GET /api/expenses                  finance
//	GET /api/def-expenses              finance
//	GET /api/other-expenses            finance
//	GET /api/total-expenses            finance
//	GET /api/loan-calculations         finance
//	GET /api/vehicles, /api/vehicles/{id}, /api/drivers   fleet
//	GET /api/auth/verify               auth
//	GET /api/alerts, /api/alerts/{id}  notification
package api

import (
	"fleetgateway/internal/app/server/api/http/finance"
	"fleetgateway/internal/app/server/api/http/fleet"
	healthAPI "fleetgateway/internal/app/server/api/http/health"
	"fleetgateway/internal/app/server/api/http/identity"
	"fleetgateway/internal/app/server/api/http/middleware"
	"fleetgateway/internal/app/server/api/http/middleware/auth"
	"fleetgateway/internal/app/server/api/http/middleware/logger"
	"fleetgateway/internal/app/server/api/http/middleware/requestid"
	"fleetgateway/internal/app/server/api/http/notification"
	"fleetgateway/internal/app/server/api/http/relay"
	"fleetgateway/internal/infrastructure/upstream"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

const (
	title   = "Fleet Gateway API"
	version = "1.0.0"
)

type Handlers struct {
	Health       *healthAPI.Handler
	Finance      *finance.Handler
	Fleet        *fleet.Handler
	Identity     *identity.Handler
	Notification *notification.Handler
}

// New returns a *chi.Mux with every gateway operation registered through huma.
func New(fetcher upstream.Fetcher, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig(title, version)
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(fetcher, log)
	h.Health.SetupRoutes(API)
	h.Finance.SetupRoutes(API)
	h.Fleet.SetupRoutes(API)
	h.Identity.SetupRoutes(API)
	h.Notification.SetupRoutes(API)

	return mux
}

func handlers(fetcher upstream.Fetcher, log *slog.Logger) *Handlers {
	requestIDMW := requestid.New()
	loggerMW := logger.New(log)
	authMW := auth.New(log)
	rl := relay.New(fetcher, log)
	middlewares := middleware.NewContainer()

	healthHandler := healthAPI.NewHandler(log, middlewares.
		Add(requestIDMW.Middleware(), loggerMW.Middleware()).
		GetAllAndClear())

	protected := func() huma.Middlewares {
		return middlewares.
			Add(requestIDMW.Middleware(), loggerMW.Middleware(), authMW.Middleware()).
			GetAllAndClear()
	}

	return &Handlers{
		Health:       healthHandler,
		Finance:      finance.NewHandler(rl, log, protected()),
		Fleet:        fleet.NewHandler(rl, log, protected()),
		Identity:     identity.NewHandler(rl, log, protected()),
		Notification: notification.NewHandler(rl, log, protected()),
	}
}
