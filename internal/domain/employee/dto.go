package employee

import (
	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode          string          `json:"employee_code"`
	FullName              string          `json:"full_name"`
	BankName              string          `json:"bank_name"`
	BankAccountHolderName *string         `json:"bank_account_holder_name,omitempty"`
	BankAccountNumber     string          `json:"bank_account_number"`
	Salary                decimal.Decimal `json:"salary"`
	Status                *string         `json:"status,omitempty"` // defaults to active
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.BankName) {
		errs = append(errs, validator.ValidationError{Field: "bank_name", Message: "is required"})
	}
	if !validator.IsValidBankAccountNumber(r.BankAccountNumber) {
		errs = append(errs, validator.ValidationError{Field: "bank_account_number", Message: "must be 8 to 24 digits"})
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be positive"})
	}
	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active, on_leave or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                    string
	FullName              *string          `json:"full_name,omitempty"`
	BankName              *string          `json:"bank_name,omitempty"`
	BankAccountHolderName *string          `json:"bank_account_holder_name,omitempty"`
	BankAccountNumber     *string          `json:"bank_account_number,omitempty"`
	Salary                *decimal.Decimal `json:"salary,omitempty"`
	Status                *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BankAccountNumber != nil && !validator.IsValidBankAccountNumber(*r.BankAccountNumber) {
		errs = append(errs, validator.ValidationError{Field: "bank_account_number", Message: "must be 8 to 24 digits"})
	}
	if r.Salary != nil && !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be positive"})
	}
	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active, on_leave or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                    string          `json:"id"`
	EmployeeCode          string          `json:"employee_code"`
	FullName              string          `json:"full_name"`
	BankName              string          `json:"bank_name"`
	BankAccountHolderName *string         `json:"bank_account_holder_name,omitempty"`
	BankAccountNumber     string          `json:"bank_account_number"`
	Salary                decimal.Decimal `json:"salary"`
	Status                string          `json:"status"`
}

type EmployeeFilter struct {
	Status *Status
	Search *string
	Page   int
	Limit  int
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
