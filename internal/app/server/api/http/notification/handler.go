package notification

import (
	"context"
	"net/url"

	"fleetgateway/internal/app/server/api/http/relay"
	"fleetgateway/internal/domain/adapter"
	"fleetgateway/internal/infrastructure/upstream"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const alertsPath = "/api/v1/alerts"

// Handler serves vehicle alerts from the notification service.
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
	huma.Register(api, h.listAlertsOp(), h.listAlerts)
	huma.Register(api, h.getAlertOp(), h.getAlert)
}

func (h *Handler) listAlerts(ctx context.Context, input *listInput) (*relay.Output, error) {
	h.log.Debug("alert list request received",
		slog.String("vehicle_id", input.VehicleID),
		slog.String("status", input.Status),
	)
	return h.relay.Forward(ctx, upstream.ServiceNotification, alertsPath, input.query(), adapter.Alerts)
}

func (h *Handler) getAlert(ctx context.Context, input *alertInput) (*relay.Output, error) {
	h.log.Debug("alert request received", slog.String("alert_id", input.ID))

	path := alertsPath + "/" + url.PathEscape(input.ID)
	return h.relay.Forward(ctx, upstream.ServiceNotification, path, nil, adapter.Alerts)
}
