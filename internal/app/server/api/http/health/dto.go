package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status  string `json:"status" example:"OK" doc:"Health status of the gateway"`
	Service string `json:"service" example:"fleetgateway" doc:"Service name"`
}
