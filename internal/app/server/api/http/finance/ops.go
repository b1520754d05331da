package finance

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) fuelExpensesOp() huma.Operation {
	return huma.Operation{
		OperationID: "expenses-list",
		Method:      http.MethodGet,
		Path:        "/api/expenses",
		Summary:     "List fuel expenses",
		Description: "Fuel expenses with their total, in the legacy {expenses, totalExpense} shape.",
		Tags:        []string{"expenses"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) defExpensesOp() huma.Operation {
	return huma.Operation{
		OperationID: "def-expenses-list",
		Method:      http.MethodGet,
		Path:        "/api/def-expenses",
		Summary:     "List DEF expenses",
		Description: "Diesel exhaust fluid purchases, same shape as fuel expenses.",
		Tags:        []string{"expenses"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) otherExpensesOp() huma.Operation {
	return huma.Operation{
		OperationID: "other-expenses-list",
		Method:      http.MethodGet,
		Path:        "/api/other-expenses",
		Summary:     "List other expenses",
		Tags:        []string{"expenses"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) totalExpensesOp() huma.Operation {
	return huma.Operation{
		OperationID: "total-expenses-list",
		Method:      http.MethodGet,
		Path:        "/api/total-expenses",
		Summary:     "List every expense kind",
		Description: "All expenses of a vehicle with their catalog and the grand total.",
		Tags:        []string{"expenses"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) loanCalculationsOp() huma.Operation {
	return huma.Operation{
		OperationID: "loan-calculations-list",
		Method:      http.MethodGet,
		Path:        "/api/loan-calculations",
		Summary:     "List loan calculations",
		Description: "Loan instalments in the legacy {calculations, totalCalculation} shape.",
		Tags:        []string{"loans"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
