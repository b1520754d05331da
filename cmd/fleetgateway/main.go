package main

import "fleetgateway/cmd/fleetgateway/cmd"

func main() {
	cmd.Execute()
}
