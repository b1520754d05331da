package notification

import (
	"net/url"

	"fleetgateway/internal/app/server/api/http/relay"
)

type listInput struct {
	VehicleID string `query:"vehicleId" doc:"Only alerts of this vehicle"`
	Status    string `query:"status" example:"active" doc:"Alert status filter"`
	Page      string `query:"page" example:"1" doc:"Page number"`
	Limit     string `query:"limit" example:"20" doc:"Page size"`
}

func (in *listInput) query() url.Values {
	return relay.Query(
		"vehicleId", in.VehicleID,
		"status", in.Status,
		"page", in.Page,
		"limit", in.Limit,
	)
}

type alertInput struct {
	ID string `path:"id" doc:"Alert ID"`
}
