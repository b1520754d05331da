package fleet

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listVehiclesOp() huma.Operation {
	return huma.Operation{
		OperationID: "vehicles-list",
		Method:      http.MethodGet,
		Path:        "/api/vehicles",
		Summary:     "List vehicles",
		Description: "Vehicles of the caller in the legacy shape. A {data: [...]} wrapper is kept.",
		Tags:        []string{"vehicles"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) getVehicleOp() huma.Operation {
	return huma.Operation{
		OperationID: "vehicle-get",
		Method:      http.MethodGet,
		Path:        "/api/vehicles/{id}",
		Summary:     "Get vehicle",
		Tags:        []string{"vehicles"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) listDriversOp() huma.Operation {
	return huma.Operation{
		OperationID: "drivers-list",
		Method:      http.MethodGet,
		Path:        "/api/drivers",
		Summary:     "List driver profiles",
		Tags:        []string{"drivers"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
