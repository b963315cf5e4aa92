package payroll

import (
	"context"
)

// PayrollService defines business logic for the pay-component registry,
// overtime ledger, salary calculation and monthly generation.
type PayrollService interface {
	// Components
	CreateComponent(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error)
	GetComponent(ctx context.Context, id string) (ComponentResponse, error)
	ListComponents(ctx context.Context, kind string, activeOnly bool) ([]ComponentResponse, error)
	UpdateComponent(ctx context.Context, req UpdateComponentRequest) error
	DeleteComponent(ctx context.Context, id string) error

	// Assignments
	AssignComponent(ctx context.Context, req AssignComponentRequest) (AssignmentResponse, error)
	GetEmployeeAssignments(ctx context.Context, employeeID string) ([]AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) error
	RemoveAssignment(ctx context.Context, id string) error

	// Overtime
	CreateOvertime(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	ListOvertime(ctx context.Context, employeeID, month string) ([]OvertimeResponse, error)
	UpdateOvertime(ctx context.Context, req UpdateOvertimeRequest) (OvertimeResponse, error)
	DeleteOvertime(ctx context.Context, id string) error

	// CalculateSalary derives the salary for one employee and month. Pure
	// read: it writes no payment or breakdown rows, so it doubles as the
	// preview endpoint.
	CalculateSalary(ctx context.Context, employeeID, month string) (SalaryCalculation, error)

	// GenerateForMonth runs the calculator for every active employee
	// without a payment for the month and persists one payment plus its
	// breakdown rows per employee. Idempotent per month: already-paid
	// employees are reported as skipped, never overwritten.
	GenerateForMonth(ctx context.Context, req GenerateSalariesRequest) (GenerateSalariesResponse, error)

	// Payments
	GetPayment(ctx context.Context, id string) (PaymentResponse, error)
	ListPayments(ctx context.Context, filter PaymentFilter) (ListPaymentsResponse, error)
	UpdatePaymentStatus(ctx context.Context, req UpdatePaymentStatusRequest) (PaymentResponse, error)
	UpdatePayment(ctx context.Context, req UpdatePaymentRequest) (PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error
	GetBreakdown(ctx context.Context, paymentID string) ([]BreakdownRowResponse, error)

	// Summary
	GetMonthlySummary(ctx context.Context, month string) (MonthlySummaryResponse, error)
}
