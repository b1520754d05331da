package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetgateway/internal/infrastructure/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, req upstream.Request) (any, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}

func serve(t *testing.T, mux http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestNew_HealthIsPublic(t *testing.T) {
	// Arrange
	fetcher := new(MockFetcher)
	mux := New(fetcher, slog.Default())

	// Act
	resp := serve(t, mux, "/api/v1/health", nil)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Header().Get(upstream.RequestIDHeader))
	fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestNew_ProtectedRoutesRequireBearer(t *testing.T) {
	routes := []string{
		"/api/expenses",
		"/api/def-expenses",
		"/api/other-expenses",
		"/api/total-expenses",
		"/api/loan-calculations",
		"/api/vehicles",
		"/api/vehicles/v1",
		"/api/drivers",
		"/api/auth/verify",
		"/api/alerts",
		"/api/alerts/a1",
	}
	headers := []map[string]string{
		nil,
		{"Authorization": "Basic dXNlcjpwYXNz"},
		{"Authorization": "Bearer "},
	}

	for _, route := range routes {
		for _, h := range headers {
			t.Run(route, func(t *testing.T) {
				// Arrange
				fetcher := new(MockFetcher)
				mux := New(fetcher, slog.Default())

				// Act
				resp := serve(t, mux, route, h)

				// Assert
				assert.Equal(t, http.StatusUnauthorized, resp.Code)
				assert.JSONEq(t, `{"error":"Unauthorized"}`, resp.Body.String())
				fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
			})
		}
	}
}

func TestNew_ForwardsTokenAndRequestID(t *testing.T) {
	// Arrange
	fetcher := new(MockFetcher)
	mux := New(fetcher, slog.Default())

	fetcher.On("Fetch", mock.Anything, mock.MatchedBy(func(req upstream.Request) bool {
		return req.Service == upstream.ServiceFinance &&
			req.Path == "/api/v1/expenses/fuel" &&
			req.Token == "tok-1" &&
			req.RequestID == "req-42" &&
			req.Query.Get("vehicleId") == "v1"
	})).Return([]any{
		map[string]any{"_id": "e1", "cost": json.Number("10.25")},
		map[string]any{"_id": "e2", "amount": json.Number("4.75")},
	}, nil)

	// Act
	resp := serve(t, mux, "/api/expenses?vehicleId=v1", map[string]string{
		"Authorization":         "Bearer tok-1",
		upstream.RequestIDHeader: "req-42",
	})

	// Assert
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, "req-42", resp.Header().Get(upstream.RequestIDHeader))

	var body struct {
		Expenses []struct {
			ID  string `json:"_id"`
			Key int    `json:"key"`
		} `json:"expenses"`
		TotalExpense float64 `json:"totalExpense"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 15.0, body.TotalExpense)
	require.Len(t, body.Expenses, 2)
	assert.Equal(t, "e2", body.Expenses[1].ID)
	assert.Equal(t, 1, body.Expenses[1].Key)
	fetcher.AssertExpectations(t)
}

func TestNew_UpstreamErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "not found",
			err:            &upstream.StatusError{Service: upstream.ServiceFleet, Status: http.StatusNotFound, Message: "vehicle not found"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unavailable",
			err:            upstream.ErrUpstreamUnavailable,
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			fetcher := new(MockFetcher)
			mux := New(fetcher, slog.Default())
			fetcher.On("Fetch", mock.Anything, mock.Anything).Return(nil, tt.err)

			// Act
			resp := serve(t, mux, "/api/vehicles/v1", map[string]string{"Authorization": "Bearer tok"})

			// Assert
			assert.Equal(t, tt.expectedStatus, resp.Code)
		})
	}
}

func TestNew_OpenAPIDocument(t *testing.T) {
	// Arrange
	mux := New(new(MockFetcher), slog.Default())

	// Act
	resp := serve(t, mux, "/openapi.json", nil)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	for _, path := range []string{"/api/expenses", "/api/vehicles/{id}", "/api/alerts/{id}", "/api/auth/verify"} {
		assert.Contains(t, resp.Body.String(), `"`+path+`"`)
	}
}
