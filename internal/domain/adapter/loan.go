package adapter

import (
	"github.com/shopspring/decimal"
)

const (
	calculationsKey     = "calculations"
	totalCalculationKey = "totalCalculation"
)

// Calculation is one row of the legacy loan-calculation table.
type Calculation struct {
	ID                string   `json:"_id"`
	VehicleID         string   `json:"vehicleId"`
	AddedBy           string   `json:"addedBy"`
	Date              string   `json:"date"`
	Cost              float64  `json:"cost"`
	AdditionalCharges *float64 `json:"additionalCharges,omitempty"`
	Note              string   `json:"note"`
	RegistrationNo    string   `json:"registrationNo"`
	Key               int      `json:"key"`
}

// CalculationList is the legacy {calculations, totalCalculation} envelope.
type CalculationList struct {
	Calculations     []Calculation `json:"calculations"`
	TotalCalculation float64       `json:"totalCalculation"`
}

// LoanCalculations adapts a loan-calculation listing.
func LoanCalculations(raw any) any {
	switch v := raw.(type) {
	case []any:
		return calculationList(v)
	case CalculationList, *CalculationList:
		return v
	}

	if hasEnvelope(raw, calculationsKey, totalCalculationKey) {
		return raw
	}
	return CalculationList{Calculations: []Calculation{}}
}

func calculationList(items []any) CalculationList {
	list := CalculationList{Calculations: make([]Calculation, 0, len(items))}
	total := decimal.Zero

	for i, item := range items {
		rec := asRecord(item)
		total = total.Add(toDecimal(costKeys.value(rec)))

		list.Calculations = append(list.Calculations, Calculation{
			ID:                idKeys.text(rec),
			VehicleID:         vehicleIDKeys.text(rec),
			AddedBy:           addedByKeys.text(rec),
			Date:              FormatDate(dateKeys.value(rec)),
			Cost:              costKeys.number(rec),
			AdditionalCharges: additionalChargeKeys.optional(rec),
			Note:              noteKeys.text(rec),
			RegistrationNo:    registrationKeys.text(rec),
			Key:               i,
		})
	}

	list.TotalCalculation = total.InexactFloat64()
	return list
}
