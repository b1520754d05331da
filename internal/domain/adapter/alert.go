package adapter

import "fmt"

const defaultAlertMessage = "Alert found"

// AlertsResponse is the legacy {success, message, data} envelope for alerts.
type AlertsResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
	Pagination any    `json:"pagination,omitempty"`
	Statistics any    `json:"statistics,omitempty"`
}

// Alerts adapts the notification service's successful alert responses.
// Recognized shapes, in order: an alert list and a single alert. The legacy
// envelope, failures and anything else are returned as-is.
func Alerts(raw any) any {
	m, ok := raw.(map[string]any)
	if !ok || !truthy(m["success"]) {
		return raw
	}

	if alerts, ok := m["alerts"].([]any); ok {
		return AlertsResponse{
			Success:    true,
			Message:    fmt.Sprintf("Found %d alerts", len(alerts)),
			Data:       alerts,
			Pagination: m["pagination"],
			Statistics: m["statistics"],
		}
	}

	if alert, ok := m["alert"]; ok && alert != nil {
		msg := toText(m["message"])
		if msg == "" {
			msg = defaultAlertMessage
		}
		return AlertsResponse{
			Success: true,
			Message: msg,
			Data:    alert,
		}
	}

	return raw
}
