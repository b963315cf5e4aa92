package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for the pay-component registry,
// assignments, the overtime ledger, and salary payments with their
// breakdown rows.
type PayrollRepository interface {
	// Components
	CreateComponent(ctx context.Context, component Component) (Component, error)
	GetComponentByID(ctx context.Context, id string) (Component, error)
	ListComponents(ctx context.Context, kind *ComponentKind, activeOnly bool) ([]Component, error)
	UpdateComponent(ctx context.Context, req UpdateComponentRequest) error
	DeleteComponent(ctx context.Context, id string) error

	// Assignments
	CreateAssignment(ctx context.Context, assignment Assignment) (Assignment, error)
	GetAssignmentByID(ctx context.Context, id string) (Assignment, error)
	// ListAssignmentsByEmployee returns assignments joined with their
	// component's name, kind and rate. activeOnly filters on the
	// component's is_active flag.
	ListAssignmentsByEmployee(ctx context.Context, employeeID string, kind *ComponentKind, activeOnly bool) ([]Assignment, error)
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) error
	DeleteAssignment(ctx context.Context, id string) error

	// Overtime
	CreateOvertime(ctx context.Context, record OvertimeRecord) (OvertimeRecord, error)
	GetOvertimeByID(ctx context.Context, id string) (OvertimeRecord, error)
	ListOvertimeByEmployeeMonth(ctx context.Context, employeeID, month string) ([]OvertimeRecord, error)
	UpdateOvertime(ctx context.Context, req UpdateOvertimeRequest) error
	DeleteOvertime(ctx context.Context, id string) error

	// Payments
	CreatePayment(ctx context.Context, payment SalaryPayment) (SalaryPayment, error)
	GetPaymentByID(ctx context.Context, id string) (SalaryPayment, error)
	// ListPaidEmployeeIDsByMonth returns the ids of employees that already
	// have a payment row for the month, regardless of status.
	ListPaidEmployeeIDsByMonth(ctx context.Context, month string) ([]string, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]SalaryPayment, int64, error)
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus, paymentDate *time.Time) error
	UpdatePayment(ctx context.Context, req UpdatePaymentRequest) error
	DeletePayment(ctx context.Context, id string) error

	// Breakdowns
	CreateBreakdownRows(ctx context.Context, paymentID string, rows []BreakdownRow) error
	GetBreakdown(ctx context.Context, paymentID string) ([]BreakdownRow, error)

	// Aggregations
	GetMonthlySummary(ctx context.Context, month string) (MonthlySummaryResponse, error)
}
