package finance

import (
	"net/url"

	"fleetgateway/internal/app/server/api/http/relay"
)

type listInput struct {
	VehicleID string `query:"vehicleId" example:"64f1c2" doc:"Only records of this vehicle"`
	StartDate string `query:"startDate" example:"2024-01-01" doc:"Earliest record date"`
	EndDate   string `query:"endDate" example:"2024-01-31" doc:"Latest record date"`
}

func (in *listInput) query() url.Values {
	return relay.Query(
		"vehicleId", in.VehicleID,
		"startDate", in.StartDate,
		"endDate", in.EndDate,
	)
}
