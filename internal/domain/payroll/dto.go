package payroll

import (
	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== COMPONENT DTOs ==========

type CreateComponentRequest struct {
	Kind            string           `json:"kind"` // "allowance" or "deduction"
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Percentage      *decimal.Decimal `json:"percentage,omitempty"`
	IsLocationBased *bool            `json:"is_location_based,omitempty"`
	MinDistanceKm   *decimal.Decimal `json:"min_distance_km,omitempty"`
}

func (r *CreateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	kind := ComponentKind(r.Kind)
	if kind != ComponentKindAllowance && kind != ComponentKindDeduction {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'allowance' or 'deduction'"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(errs) == 0 && !IsValidCategory(kind, r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is not a valid category for this kind"})
	}
	if _, err := RateFromColumns(r.Amount, r.Percentage); err != nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: err.Error()})
	}
	if kind == ComponentKindDeduction && r.IsLocationBased != nil && *r.IsLocationBased {
		errs = append(errs, validator.ValidationError{Field: "is_location_based", Message: "only allowances can be location based"})
	}
	if r.MinDistanceKm != nil && r.MinDistanceKm.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "min_distance_km", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateComponentRequest struct {
	ID              string
	Name            *string          `json:"name,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Percentage      *decimal.Decimal `json:"percentage,omitempty"`
	IsLocationBased *bool            `json:"is_location_based,omitempty"`
	MinDistanceKm   *decimal.Decimal `json:"min_distance_km,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

func (r *UpdateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	// A rate change must still form a valid union.
	if r.Amount != nil && r.Percentage != nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: ErrAmbiguousRate.Error()})
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if r.Percentage != nil && (r.Percentage.IsNegative() || r.Percentage.GreaterThan(oneHundred)) {
		errs = append(errs, validator.ValidationError{Field: "percentage", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComponentResponse struct {
	ID              string           `json:"id"`
	Kind            string           `json:"kind"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Percentage      *decimal.Decimal `json:"percentage,omitempty"`
	IsLocationBased bool             `json:"is_location_based"`
	MinDistanceKm   *decimal.Decimal `json:"min_distance_km,omitempty"`
	IsActive        bool             `json:"is_active"`
}

// ========== ASSIGNMENT DTOs ==========

type AssignComponentRequest struct {
	EmployeeID   string           `json:"-"`
	ComponentID  string           `json:"component_id"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
}

func (r *AssignComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ComponentID == "" {
		errs = append(errs, validator.ValidationError{Field: "component_id", Message: "is required"})
	}
	if r.CustomAmount != nil && r.CustomAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "custom_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	ID           string
	CustomAmount *decimal.Decimal `json:"custom_amount"` // null clears the override
}

func (r *UpdateAssignmentRequest) Validate() error {
	if r.CustomAmount != nil && r.CustomAmount.IsNegative() {
		return validator.ValidationErrors{{Field: "custom_amount", Message: "must be non-negative"}}
	}
	return nil
}

type AssignmentResponse struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	ComponentID   string           `json:"component_id"`
	ComponentName string           `json:"component_name"`
	ComponentKind string           `json:"component_kind"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Percentage    *decimal.Decimal `json:"percentage,omitempty"`
	CustomAmount  *decimal.Decimal `json:"custom_amount,omitempty"`
}

// ========== OVERTIME DTOs ==========

type CreateOvertimeRequest struct {
	EmployeeID string          `json:"-"`
	Month      string          `json:"month"`
	Hours      decimal.Decimal `json:"hours"`
	Rate       decimal.Decimal `json:"rate"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPayMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be non-negative"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOvertimeRequest struct {
	ID    string
	Hours *decimal.Decimal `json:"hours,omitempty"`
	Rate  *decimal.Decimal `json:"rate,omitempty"`
}

func (r *UpdateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Hours != nil && r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be non-negative"})
	}
	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Month       string          `json:"month"`
	Hours       decimal.Decimal `json:"hours"`
	Rate        decimal.Decimal `json:"rate"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ========== GENERATION DTOs ==========

type GenerateSalariesRequest struct {
	Month string `json:"month"`
}

func (r *GenerateSalariesRequest) Validate() error {
	if !validator.IsValidPayMonth(r.Month) {
		return validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}
	return nil
}

type GenerateSalariesResponse struct {
	Month        string            `json:"month"`
	Created      []PaymentResponse `json:"created"`
	CreatedCount int               `json:"created_count"`
	SkippedCount int               `json:"skipped_count"`
}

// ========== PAYMENT DTOs ==========

type PaymentResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	EmployeeCode  string          `json:"employee_code,omitempty"`
	Month         string          `json:"month"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentDate   *string         `json:"payment_date,omitempty"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

type PaymentFilter struct {
	Month      *string
	Status     *string
	EmployeeID *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

type ListPaymentsResponse struct {
	Data       []PaymentResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type UpdatePaymentStatusRequest struct {
	ID          string
	Status      string  `json:"status"`
	PaymentDate *string `json:"payment_date,omitempty"` // RFC3339; defaults to now() on transition to paid
}

func (r *UpdatePaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	status := PaymentStatus(r.Status)
	if status != PaymentStatusPending && status != PaymentStatusPaid && status != PaymentStatusFailed {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'pending', 'paid' or 'failed'"})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDateTime(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be a valid ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePaymentRequest struct {
	ID            string
	PaymentMethod *string `json:"payment_method,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type BreakdownRowResponse struct {
	ID                 string          `json:"id"`
	ComponentType      string          `json:"component_type"`
	ComponentName      string          `json:"component_name"`
	Amount             decimal.Decimal `json:"amount"`
	CalculationDetails *string         `json:"calculation_details,omitempty"`
}

type MonthlySummaryResponse struct {
	Month         string          `json:"month"`
	TotalPayments int             `json:"total_payments"`
	TotalNet      decimal.Decimal `json:"total_net"`
	PendingCount  int             `json:"pending_count"`
	PaidCount     int             `json:"paid_count"`
	FailedCount   int             `json:"failed_count"`
}
