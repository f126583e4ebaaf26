package models

import "github.com/escolar/escolar-backend/internal/pkg/search"

// PaymentStatus is the collection state of a payment
type PaymentStatus string

// Payment states
const (
	PaymentPending PaymentStatus = "pendiente"
	PaymentPaid    PaymentStatus = "pagado"
	PaymentOverdue PaymentStatus = "vencido"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentOverdue:
		return true
	}
	return false
}

// PaymentMethod is how a payment was (or will be) collected
type PaymentMethod string

// Payment methods
const (
	MethodCash     PaymentMethod = "efectivo"
	MethodTransfer PaymentMethod = "transferencia"
	MethodCard     PaymentMethod = "tarjeta"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard:
		return true
	}
	return false
}

// PeriodType is the billing granularity of a payment
type PeriodType string

// Billing period types
const (
	PeriodDaily   PeriodType = "diario"
	PeriodWeekly  PeriodType = "semanal"
	PeriodMonthly PeriodType = "mensual"
)

// Valid reports whether t is a known period type.
func (t PeriodType) Valid() bool {
	switch t {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Payment represents one charge against a student's account
type Payment struct {
	ID              int64         `json:"-"`
	PublicID        string        `json:"id"`
	StudentPublicID string        `json:"studentId" binding:"required"`
	Amount          float64       `json:"amount" binding:"required,gt=0"`
	PaymentDate     string        `json:"paymentDate,omitempty"` // ISO-8601 date, empty until paid
	Description     string        `json:"description"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Status          PaymentStatus `json:"status"`
	DueDate         string        `json:"dueDate" example:"2025-01-31"` // ISO-8601 date
	Period          string        `json:"period" example:"Enero 2025"`
	PeriodType      PeriodType    `json:"periodType,omitempty"`
}

// PaymentFilters narrows a payment search. DueFrom/DueTo bound the due date
// (inclusive); ISO-8601 dates compare correctly as strings.
type PaymentFilters struct {
	SearchText    string
	Status        PaymentStatus
	PaymentMethod PaymentMethod
	StudentID     string
	DueFrom       string
	DueTo         string
}

// Matches reports whether the payment satisfies every present filter.
func (f PaymentFilters) Matches(p Payment) bool {
	if f.DueFrom != "" && p.DueDate < f.DueFrom {
		return false
	}
	if f.DueTo != "" && p.DueDate > f.DueTo {
		return false
	}
	return search.MatchText(f.SearchText, p.Description, p.Period) &&
		search.MatchExact(string(f.Status), string(p.Status)) &&
		search.MatchExact(string(f.PaymentMethod), string(p.PaymentMethod)) &&
		search.MatchExact(f.StudentID, p.StudentPublicID)
}

// PaymentSchema lists the searchable and sortable attributes of a payment.
var PaymentSchema = search.Schema[Payment]{
	SearchFields: func(p Payment) []string {
		return []string{p.Description, p.Period}
	},
	SortKeys: map[string]func(Payment) search.Value{
		"amount":      func(p Payment) search.Value { return search.Number(p.Amount) },
		"paymentDate": func(p Payment) search.Value { return search.String(p.PaymentDate) },
		"dueDate":     func(p Payment) search.Value { return search.String(p.DueDate) },
		"status":      func(p Payment) search.Value { return search.String(string(p.Status)) },
		"period":      func(p Payment) search.Value { return search.String(p.Period) },
	},
}
