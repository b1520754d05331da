// Package adapter reshapes upstream microservice responses into the legacy
// response contract the fleet frontend was built against.
//
// Every adapter is total: it never fails and never panics. Input it does not
// recognize degrades to an empty listing (list adapters) or is returned
// unchanged (entity adapters).
package adapter

import "sort"

// Func converts one decoded upstream body into its legacy shape.
type Func func(raw any) any

type Kind string

const (
	KindFuelExpenses     Kind = "expenses"
	KindDEFExpenses      Kind = "def-expenses"
	KindOtherExpenses    Kind = "other-expenses"
	KindTotalExpenses    Kind = "total-expenses"
	KindLoanCalculations Kind = "loan-calculations"
	KindVehicles         Kind = "vehicles"
	KindIdentity         Kind = "identity"
	KindDrivers          Kind = "drivers"
	KindAlerts           Kind = "alerts"
)

var registry = map[Kind]Func{
	KindFuelExpenses:     FuelExpenses,
	KindDEFExpenses:      DEFExpenses,
	KindOtherExpenses:    OtherExpenses,
	KindTotalExpenses:    TotalExpenses,
	KindLoanCalculations: LoanCalculations,
	KindVehicles:         Vehicles,
	KindIdentity:         Identity,
	KindDrivers:          DriverProfiles,
	KindAlerts:           Alerts,
}

// Lookup returns the adapter registered for kind.
func Lookup(kind Kind) (Func, bool) {
	fn, ok := registry[kind]
	return fn, ok
}

// Kinds lists every registered kind in lexical order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
