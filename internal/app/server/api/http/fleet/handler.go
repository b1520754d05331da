package fleet

import (
	"context"
	"net/url"

	"fleetgateway/internal/app/server/api/http/relay"
	"fleetgateway/internal/domain/adapter"
	"fleetgateway/internal/infrastructure/upstream"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	vehiclesPath = "/api/v1/vehicles"
	driversPath  = "/api/v1/drivers"
)

// Handler serves vehicles and driver profiles from the fleet service.
type Handler struct {
	relay      *relay.Relay
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(rl *relay.Relay, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		relay:      rl,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listVehiclesOp(), h.listVehicles)
	huma.Register(api, h.getVehicleOp(), h.getVehicle)
	huma.Register(api, h.listDriversOp(), h.listDrivers)
}

func (h *Handler) listVehicles(ctx context.Context, _ *listInput) (*relay.Output, error) {
	h.log.Debug("vehicle list request received")
	return h.relay.Forward(ctx, upstream.ServiceFleet, vehiclesPath, nil, adapter.Vehicles)
}

func (h *Handler) getVehicle(ctx context.Context, input *vehicleInput) (*relay.Output, error) {
	h.log.Debug("vehicle request received", slog.String("vehicle_id", input.ID))

	path := vehiclesPath + "/" + url.PathEscape(input.ID)
	return h.relay.Forward(ctx, upstream.ServiceFleet, path, nil, adapter.Vehicles)
}

func (h *Handler) listDrivers(ctx context.Context, _ *listInput) (*relay.Output, error) {
	h.log.Debug("driver list request received")
	return h.relay.Forward(ctx, upstream.ServiceFleet, driversPath, nil, adapter.DriverProfiles)
}
