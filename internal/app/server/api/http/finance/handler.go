package finance

import (
	"context"

	"fleetgateway/internal/app/server/api/http/relay"
	"fleetgateway/internal/domain/adapter"
	"fleetgateway/internal/infrastructure/upstream"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	fuelExpensesPath     = "/api/v1/expenses/fuel"
	defExpensesPath      = "/api/v1/expenses/def"
	otherExpensesPath    = "/api/v1/expenses/other"
	totalExpensesPath    = "/api/v1/expenses/total"
	loanCalculationsPath = "/api/v1/loans/calculations"
)

// Handler serves the expense and loan listings backed by the finance service.
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
	huma.Register(api, h.fuelExpensesOp(), h.fuelExpenses)
	huma.Register(api, h.defExpensesOp(), h.defExpenses)
	huma.Register(api, h.otherExpensesOp(), h.otherExpenses)
	huma.Register(api, h.totalExpensesOp(), h.totalExpenses)
	huma.Register(api, h.loanCalculationsOp(), h.loanCalculations)
}

func (h *Handler) fuelExpenses(ctx context.Context, input *listInput) (*relay.Output, error) {
	h.log.Debug("fuel expenses request received", slog.String("vehicle_id", input.VehicleID))
	return h.relay.Forward(ctx, upstream.ServiceFinance, fuelExpensesPath, input.query(), adapter.FuelExpenses)
}

func (h *Handler) defExpenses(ctx context.Context, input *listInput) (*relay.Output, error) {
	h.log.Debug("def expenses request received", slog.String("vehicle_id", input.VehicleID))
	return h.relay.Forward(ctx, upstream.ServiceFinance, defExpensesPath, input.query(), adapter.DEFExpenses)
}

func (h *Handler) otherExpenses(ctx context.Context, input *listInput) (*relay.Output, error) {
	h.log.Debug("other expenses request received", slog.String("vehicle_id", input.VehicleID))
	return h.relay.Forward(ctx, upstream.ServiceFinance, otherExpensesPath, input.query(), adapter.OtherExpenses)
}

func (h *Handler) totalExpenses(ctx context.Context, input *listInput) (*relay.Output, error) {
	h.log.Debug("total expenses request received", slog.String("vehicle_id", input.VehicleID))
	return h.relay.Forward(ctx, upstream.ServiceFinance, totalExpensesPath, input.query(), adapter.TotalExpenses)
}

func (h *Handler) loanCalculations(ctx context.Context, input *listInput) (*relay.Output, error) {
	h.log.Debug("loan calculations request received", slog.String("vehicle_id", input.VehicleID))
	return h.relay.Forward(ctx, upstream.ServiceFinance, loanCalculationsPath, input.query(), adapter.LoanCalculations)
}
