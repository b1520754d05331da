package identity

import (
	"context"
	"net/http"

	"fleetgateway/internal/app/server/api/http/relay"
	"fleetgateway/internal/domain/adapter"
	"fleetgateway/internal/infrastructure/upstream"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const verifyPath = "/api/v1/auth/verify"

type verifyInput struct{}

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
	huma.Register(api, huma.Operation{
		OperationID: "auth-verify",
		Method:      http.MethodGet,
		Path:        "/api/auth/verify",
		Summary:     "Verify token",
		Description: "Checks the bearer token with the auth service and returns the caller's identity.",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}, h.verify)
}

func (h *Handler) verify(ctx context.Context, _ *verifyInput) (*relay.Output, error) {
	h.log.Debug("token verification request received")
	return h.relay.Forward(ctx, upstream.ServiceAuth, verifyPath, nil, adapter.Identity)
}
