// Package relay forwards a gateway request to a microservice and adapts the
// response for the legacy frontend.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"fleetgateway/internal/app/server/api/http/middleware/auth"
	"fleetgateway/internal/app/server/api/http/middleware/requestid"
	"fleetgateway/internal/domain/adapter"
	"fleetgateway/internal/infrastructure/upstream"
	"fleetgateway/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Output is the response of every relayed operation: whatever the adapter
// produced, serialized as JSON.
type Output struct {
	Body any
}

type Relay struct {
	fetcher upstream.Fetcher
	log     *slog.Logger
}

func New(fetcher upstream.Fetcher, log *slog.Logger) *Relay {
	return &Relay{
		fetcher: fetcher,
		log:     log.With(slog.String("component", "relay")),
	}
}

// Forward fetches path from svc with the caller's token and request ID, then
// runs the body through adapt. Upstream status errors keep their status code;
// transport and decoding failures become 502.
func (r *Relay) Forward(ctx context.Context, svc upstream.Service, path string, query url.Values, adapt adapter.Func) (*Output, error) {
	token, _ := auth.Token(ctx)

	doc, err := r.fetcher.Fetch(ctx, upstream.Request{
		Service:   svc,
		Path:      path,
		Query:     query,
		Token:     token,
		RequestID: requestid.FromContext(ctx),
	})
	if err != nil {
		return nil, r.httpError(ctx, svc, path, err)
	}

	body := adapt(doc)
	if body == nil {
		return &Output{Body: json.RawMessage("null")}, nil
	}
	return &Output{Body: body}, nil
}

func (r *Relay) httpError(ctx context.Context, svc upstream.Service, path string, err error) error {
	log := r.log.With(
		slog.String("service", string(svc)),
		slog.String("path", path),
		slog.String("request_id", requestid.FromContext(ctx)),
	)

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) && statusErr.Status >= http.StatusBadRequest {
		log.Warn("upstream rejected request", slog.Int("status", statusErr.Status))

		msg := statusErr.Message
		if msg == "" {
			msg = http.StatusText(statusErr.Status)
		}
		return huma.NewError(statusErr.Status, msg)
	}

	log.Error("upstream request failed", logger.Err(err))
	return huma.Error502BadGateway("upstream service unavailable")
}

// Query builds forwarded query parameters from key/value pairs, skipping
// empty values.
func Query(pairs ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q.Set(pairs[i], pairs[i+1])
		}
	}
	return q
}
