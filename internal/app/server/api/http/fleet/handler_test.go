package fleet

import (
	"context"
	"net/http"
	"testing"

	"fleetgateway/internal/app/server/api/http/relay"
	"fleetgateway/internal/infrastructure/upstream"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
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

func setup(t *testing.T) (humatest.TestAPI, *MockFetcher) {
	t.Helper()
	fetcher := new(MockFetcher)
	_, api := humatest.New(t)

	NewHandler(relay.New(fetcher, slog.Default()), slog.Default(), huma.Middlewares{}).SetupRoutes(api)
	return api, fetcher
}

func fleetRequest(path string) upstream.Request {
	return upstream.Request{Service: upstream.ServiceFleet, Path: path}
}

func TestHandler_listVehicles(t *testing.T) {
	tests := []struct {
		name     string
		upstream any
		expected string
	}{
		{
			name: "bare list",
			upstream: []any{map[string]any{
				"id":            "v1",
				"userId":        "u1",
				"truckNumber":   "KA01",
				"make":          "Tata",
				"financed":      true,
				"chassisNumber": "CH1",
				"images":        []any{"a.png"},
			}},
			expected: `[{"_id":"v1","addedBy":"u1","registrationNo":"KA01","make":"Tata","model":"",
				"isFinanced":true,"financeAmount":0,"imgURL":["a.png"],"chassisNo":"CH1","engineNo":"","desc":""}]`,
		},
		{
			name:     "data wrapper keeps other keys",
			upstream: map[string]any{"success": true, "data": []any{map[string]any{"_id": "v2"}}},
			expected: `{"success":true,"data":[{"_id":"v2","addedBy":"","registrationNo":"","make":"","model":"",
				"isFinanced":false,"financeAmount":0,"imgURL":[],"chassisNo":"","engineNo":"","desc":""}]}`,
		},
		{
			name:     "null body",
			upstream: nil,
			expected: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			api, fetcher := setup(t)
			fetcher.On("Fetch", mock.Anything, fleetRequest(vehiclesPath)).Return(tt.upstream, nil)

			// Act
			resp := api.Get("/api/vehicles")

			// Assert
			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
			assert.JSONEq(t, tt.expected, resp.Body.String())
			fetcher.AssertExpectations(t)
		})
	}
}

func TestHandler_getVehicle(t *testing.T) {
	// Arrange
	api, fetcher := setup(t)
	fetcher.On("Fetch", mock.Anything, fleetRequest(vehiclesPath+"/v1")).
		Return(map[string]any{"_id": "v1", "registrationNo": "KA01"}, nil)

	// Act
	resp := api.Get("/api/vehicles/v1")

	// Assert
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"registrationNo":"KA01"`)
	fetcher.AssertExpectations(t)
}

func TestHandler_getVehicle_NotFound(t *testing.T) {
	// Arrange
	api, fetcher := setup(t)
	fetcher.On("Fetch", mock.Anything, fleetRequest(vehiclesPath+"/missing")).
		Return(nil, &upstream.StatusError{Service: upstream.ServiceFleet, Status: http.StatusNotFound})

	// Act
	resp := api.Get("/api/vehicles/missing")

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_listDrivers(t *testing.T) {
	// Arrange
	api, fetcher := setup(t)
	drivers := []any{map[string]any{"name": "Ravi", "licence": "DL-1"}}
	fetcher.On("Fetch", mock.Anything, fleetRequest(driversPath)).Return(drivers, nil)

	// Act
	resp := api.Get("/api/drivers")

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"name":"Ravi","licence":"DL-1"}]`, resp.Body.String())
}
