package payroll

import "errors"

var (
	ErrComponentNotFound    = errors.New("pay component not found")
	ErrComponentNameExists  = errors.New("pay component name already exists")
	ErrAssignmentNotFound   = errors.New("component assignment not found")
	ErrOvertimeNotFound     = errors.New("overtime record not found")
	ErrPaymentNotFound      = errors.New("salary payment not found")
	ErrPaymentAlreadyExists = errors.New("salary payment already exists for this month")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrInvalidMonth         = errors.New("month must be in YYYY-MM format")
	ErrInvalidComponentKind = errors.New("invalid component kind")
	ErrAmbiguousRate        = errors.New("exactly one of amount or percentage must be set")
	ErrNegativeAmount       = errors.New("amount must be non-negative")
	ErrInvalidPercentage    = errors.New("percentage must be between 0 and 100")
	ErrInvalidStatus        = errors.New("invalid payment status")
)
