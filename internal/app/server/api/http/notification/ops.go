package notification

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listAlertsOp() huma.Operation {
	return huma.Operation{
		OperationID: "alerts-list",
		Method:      http.MethodGet,
		Path:        "/api/alerts",
		Summary:     "List alerts",
		Description: "Alerts in the legacy {success, message, data} envelope with pagination and statistics.",
		Tags:        []string{"alerts"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) getAlertOp() huma.Operation {
	return huma.Operation{
		OperationID: "alert-get",
		Method:      http.MethodGet,
		Path:        "/api/alerts/{id}",
		Summary:     "Get alert",
		Tags:        []string{"alerts"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
