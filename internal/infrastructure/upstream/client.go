package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fleetgateway/internal/config"
	"fleetgateway/internal/domain/adapter"
	"fleetgateway/internal/utils/logger"

	"golang.org/x/exp/slog"
)

const (
	maxBodySize     = 10 << 20
	userAgent       = "FleetGateway/1.0"
	RequestIDHeader = "X-Request-ID"
)

type Service string

const (
	ServiceFinance      Service = "finance"
	ServiceFleet        Service = "fleet"
	ServiceAuth         Service = "auth"
	ServiceNotification Service = "notification"
)

// Request describes one GET against a microservice. Token and RequestID are
// forwarded from the caller's request when set.
type Request struct {
	Service   Service
	Path      string
	Query     url.Values
	Token     string
	RequestID string
}

type Fetcher interface {
	Fetch(ctx context.Context, req Request) (any, error)
}

// Client fetches JSON documents from the configured microservices. It is safe
// for concurrent use.
type Client struct {
	client   *http.Client
	baseURLs map[Service]string
	log      *slog.Logger
}

func New(cfg config.Upstream, log *slog.Logger) *Client {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &Client{
		client: client,
		baseURLs: map[Service]string{
			ServiceFinance:      strings.TrimRight(cfg.FinanceURL, "/"),
			ServiceFleet:        strings.TrimRight(cfg.FleetURL, "/"),
			ServiceAuth:         strings.TrimRight(cfg.AuthURL, "/"),
			ServiceNotification: strings.TrimRight(cfg.NotificationURL, "/"),
		},
		log: log.With(slog.String("component", "upstream")),
	}
}

// Fetch performs the request and returns the decoded body. An empty body
// decodes to nil.
func (c *Client) Fetch(ctx context.Context, req Request) (any, error) {
	base, ok := c.baseURLs[req.Service]
	if !ok || base == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}

	target := base + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if req.RequestID != "" {
		httpReq.Header.Set(RequestIDHeader, req.RequestID)
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.log.Error("upstream request failed",
			slog.String("service", string(req.Service)),
			slog.String("path", req.Path),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, req.Service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %v", ErrUpstreamUnavailable, req.Service, err)
	}

	c.log.Debug("upstream response",
		slog.String("service", string(req.Service)),
		slog.String("path", req.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", req.RequestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Service: req.Service,
			Status:  resp.StatusCode,
			Message: errorMessage(body),
		}
	}

	doc, err := adapter.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBody, req.Service, err)
	}
	return doc, nil
}

// errorMessage extracts the message a microservice put in its error body.
func errorMessage(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	if errResp.Message != "" {
		return errResp.Message
	}
	if s, ok := errResp.Error.(string); ok {
		return s
	}
	return ""
}
