package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentKind enum
type ComponentKind string

const (
	ComponentKindAllowance ComponentKind = "allowance"
	ComponentKindDeduction ComponentKind = "deduction"
)

// Closed category sets per component kind.
var (
	AllowanceCategories = []string{"transport", "medical", "housing", "meal", "other"}
	DeductionCategories = []string{"tax", "insurance", "loan", "penalty", "other"}
)

// Component - reusable registry entry (allowance or deduction definition).
// IsLocationBased/MinDistanceKm are reserved schema fields; the salary
// calculator does not consume them yet.
type Component struct {
	ID              string
	Kind            ComponentKind
	Name            string
	Category        string
	Rate            Rate
	IsLocationBased bool
	MinDistanceKm   *decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Assignment - links one employee to one registry component. CustomAmount,
// when set, overrides the component's own rate entirely. Duplicate
// assignments of the same component are allowed and double-apply.
type Assignment struct {
	ID           string
	EmployeeID   string
	ComponentID  string
	CustomAmount *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	ComponentName *string
	ComponentKind *ComponentKind
	ComponentRate *Rate
}

// OvertimeRecord - per-employee, per-month overtime entry. TotalAmount is
// computed as hours * rate at write time; the calculator trusts it and
// never re-derives it at read time.
type OvertimeRecord struct {
	ID          string
	EmployeeID  string
	Month       string // "YYYY-MM"
	Hours       decimal.Decimal
	Rate        decimal.Decimal
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// SalaryPayment - one row per (employee, month), enforced by
// uq_salary_payments_employee_month. Amount is the net salary snapshot.
type SalaryPayment struct {
	ID            string
	EmployeeID    string
	Month         string
	Amount        decimal.Decimal
	Status        PaymentStatus
	PaymentDate   *time.Time
	PaymentMethod *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// BreakdownType enum
type BreakdownType string

const (
	BreakdownTypeBase      BreakdownType = "base"
	BreakdownTypeAllowance BreakdownType = "allowance"
	BreakdownTypeOvertime  BreakdownType = "overtime"
	BreakdownTypeDeduction BreakdownType = "deduction"
)

// BreakdownRow - child row of a SalaryPayment explaining one component of
// the net figure. Amount is always a non-negative magnitude; the sign is
// implied by ComponentType.
type BreakdownRow struct {
	ID                 string
	PaymentID          string
	ComponentType      BreakdownType
	ComponentName      string
	Amount             decimal.Decimal
	CalculationDetails *string
	CreatedAt          time.Time
}

func IsValidCategory(kind ComponentKind, category string) bool {
	var set []string
	switch kind {
	case ComponentKindAllowance:
		set = AllowanceCategories
	case ComponentKindDeduction:
		set = DeductionCategories
	default:
		return false
	}
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}
