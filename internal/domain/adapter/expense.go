package adapter

import (
	"github.com/shopspring/decimal"
)

const (
	expensesKey     = "expenses"
	totalExpenseKey = "totalExpense"

	defaultCatalog = "Other Expense"
)

// Expense is one row of the legacy expense table. Fuel, other and total
// expense listings share it and differ only in which optional fields are set.
type Expense struct {
	ID                string   `json:"_id"`
	VehicleID         string   `json:"vehicleId"`
	AddedBy           string   `json:"addedBy"`
	Date              string   `json:"date"`
	Cost              float64  `json:"cost"`
	Catalog           string   `json:"catalog,omitempty"`
	Category          string   `json:"category,omitempty"`
	CurrentKM         *float64 `json:"currentKM,omitempty"`
	Litres            *float64 `json:"litres,omitempty"`
	Mileage           *float64 `json:"mileage,omitempty"`
	Range             *float64 `json:"range,omitempty"`
	AdditionalCharges *float64 `json:"additionalCharges,omitempty"`
	Note              string   `json:"note"`
	RegistrationNo    string   `json:"registrationNo"`
	Key               int      `json:"key"`
}

// ExpenseList is the legacy {expenses, totalExpense} envelope.
type ExpenseList struct {
	Expenses     []Expense `json:"expenses"`
	TotalExpense float64   `json:"totalExpense"`
}

// FuelExpenses adapts a fuel-expense listing.
func FuelExpenses(raw any) any {
	return adaptExpenses(raw, fuelExpense)
}

// DEFExpenses adapts a diesel-exhaust-fluid listing. DEF purchases carry the
// same volume and odometer readings as fuel, so they share the fuel shape.
func DEFExpenses(raw any) any {
	return FuelExpenses(raw)
}

// OtherExpenses adapts a listing of non-fuel expenses.
func OtherExpenses(raw any) any {
	return adaptExpenses(raw, otherExpense)
}

// TotalExpenses adapts the aggregate listing that mixes every expense kind.
func TotalExpenses(raw any) any {
	return adaptExpenses(raw, totalExpense)
}

func adaptExpenses(raw any, build func(rec map[string]any) Expense) any {
	switch v := raw.(type) {
	case []any:
		return expenseList(v, build)
	case ExpenseList, *ExpenseList:
		return v
	}

	if hasEnvelope(raw, expensesKey, totalExpenseKey) {
		return raw
	}
	return ExpenseList{Expenses: []Expense{}}
}

func expenseList(items []any, build func(rec map[string]any) Expense) ExpenseList {
	list := ExpenseList{Expenses: make([]Expense, 0, len(items))}
	total := decimal.Zero

	for i, item := range items {
		rec := asRecord(item)
		total = total.Add(toDecimal(costKeys.value(rec)))

		e := build(rec)
		e.Key = i
		list.Expenses = append(list.Expenses, e)
	}

	list.TotalExpense = total.InexactFloat64()
	return list
}

func baseExpense(rec map[string]any) Expense {
	return Expense{
		ID:             idKeys.text(rec),
		VehicleID:      vehicleIDKeys.text(rec),
		AddedBy:        addedByKeys.text(rec),
		Date:           FormatDate(dateKeys.value(rec)),
		Cost:           costKeys.number(rec),
		Note:           noteKeys.text(rec),
		RegistrationNo: registrationKeys.text(rec),
	}
}

func fuelExpense(rec map[string]any) Expense {
	e := baseExpense(rec)
	e.CurrentKM = currentKMKeys.optional(rec)
	e.Litres = litresKeys.optional(rec)
	e.Mileage = mileageKeys.optional(rec)
	e.Range = rangeKeys.optional(rec)
	return e
}

func otherExpense(rec map[string]any) Expense {
	e := baseExpense(rec)
	e.Category = categoryKeys.text(rec)
	e.CurrentKM = currentKMKeys.optional(rec)
	return e
}

func totalExpense(rec map[string]any) Expense {
	e := baseExpense(rec)
	e.Catalog = catalogKeys.text(rec)
	if e.Catalog == "" {
		e.Catalog = defaultCatalog
	}
	e.Category = categoryKeys.text(rec)
	e.CurrentKM = currentKMKeys.optional(rec)
	e.Litres = litresKeys.optional(rec)
	e.AdditionalCharges = additionalChargeKeys.optional(rec)
	return e
}

// hasEnvelope reports whether raw is already a legacy envelope: both the list
// key and the total key are present. A null total still counts.
func hasEnvelope(raw any, listKey, totalKey string) bool {
	m, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	_, hasList := m[listKey]
	_, hasTotal := m[totalKey]
	return hasList && hasTotal
}
