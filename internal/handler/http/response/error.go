package response

import (
	"errors"
	"net/http"

	"github.com/hisaab-hr/payroll-backend-go/internal/domain/auth"
	"github.com/hisaab-hr/payroll-backend-go/internal/domain/employee"
	"github.com/hisaab-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/hisaab-hr/payroll-backend-go/internal/domain/user"
	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrBankAccountExists):
		Conflict(w, "Bank account number already registered")
	case errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, employee.ErrNonPositiveBaseSalary):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrComponentNotFound):
		NotFound(w, "Pay component not found")
	case errors.Is(err, payroll.ErrComponentNameExists):
		Conflict(w, "Pay component name already exists")
	case errors.Is(err, payroll.ErrAssignmentNotFound):
		NotFound(w, "Component assignment not found")
	case errors.Is(err, payroll.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, payroll.ErrPaymentNotFound):
		NotFound(w, "Salary payment not found")
	case errors.Is(err, payroll.ErrPaymentAlreadyExists):
		Conflict(w, "Salary payment already exists for this month")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, payroll.ErrInvalidMonth),
		errors.Is(err, payroll.ErrInvalidComponentKind),
		errors.Is(err, payroll.ErrAmbiguousRate),
		errors.Is(err, payroll.ErrNegativeAmount),
		errors.Is(err, payroll.ErrInvalidPercentage),
		errors.Is(err, payroll.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
