package adapter

// DriverProfiles returns the driver service response untouched; it already
// speaks the legacy contract.
func DriverProfiles(raw any) any {
	return raw
}
