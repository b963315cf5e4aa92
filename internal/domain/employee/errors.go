package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeCodeExists    = errors.New("employee code already exists")
	ErrBankAccountExists     = errors.New("bank account number already registered")
	ErrInvalidStatus         = errors.New("status must be active, on_leave or inactive")
	ErrNonPositiveBaseSalary = errors.New("base salary must be positive")
)
