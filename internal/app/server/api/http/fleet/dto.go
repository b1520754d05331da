package fleet

type listInput struct{}

type vehicleInput struct {
	ID string `path:"id" example:"64f1c2" doc:"Vehicle ID"`
}
