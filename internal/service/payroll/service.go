package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hisaab-hr/payroll-backend-go/internal/domain/employee"
	"github.com/hisaab-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/database"
	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/hisaab-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db           database.TxBeginner
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	db database.TxBeginner,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== COMPONENTS ==========

func (s *PayrollServiceImpl) CreateComponent(ctx context.Context, req payroll.CreateComponentRequest) (payroll.ComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ComponentResponse{}, err
	}

	rate, err := payroll.RateFromColumns(req.Amount, req.Percentage)
	if err != nil {
		return payroll.ComponentResponse{}, err
	}

	isLocationBased := false
	if req.IsLocationBased != nil {
		isLocationBased = *req.IsLocationBased
	}

	component := payroll.Component{
		Kind:            payroll.ComponentKind(req.Kind),
		Name:            req.Name,
		Category:        req.Category,
		Rate:            rate,
		IsLocationBased: isLocationBased,
		MinDistanceKm:   req.MinDistanceKm,
		IsActive:        true,
	}

	created, err := s.payrollRepo.CreateComponent(ctx, component)
	if err != nil {
		return payroll.ComponentResponse{}, err
	}

	return mapToComponentResponse(created), nil
}

func (s *PayrollServiceImpl) GetComponent(ctx context.Context, id string) (payroll.ComponentResponse, error) {
	component, err := s.payrollRepo.GetComponentByID(ctx, id)
	if err != nil {
		return payroll.ComponentResponse{}, err
	}

	return mapToComponentResponse(component), nil
}

func (s *PayrollServiceImpl) ListComponents(ctx context.Context, kind string, activeOnly bool) ([]payroll.ComponentResponse, error) {
	var kindFilter *payroll.ComponentKind
	if kind != "" {
		k := payroll.ComponentKind(kind)
		if k != payroll.ComponentKindAllowance && k != payroll.ComponentKindDeduction {
			return nil, payroll.ErrInvalidComponentKind
		}
		kindFilter = &k
	}

	components, err := s.payrollRepo.ListComponents(ctx, kindFilter, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.ComponentResponse, 0, len(components))
	for _, c := range components {
		result = append(result, mapToComponentResponse(c))
	}

	return result, nil
}

func (s *PayrollServiceImpl) UpdateComponent(ctx context.Context, req payroll.UpdateComponentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Category changes are validated against the stored kind.
	if req.Category != nil {
		current, err := s.payrollRepo.GetComponentByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if !payroll.IsValidCategory(current.Kind, *req.Category) {
			return validator.ValidationErrors{{Field: "category", Message: "is not a valid category for this kind"}}
		}
	}

	return s.payrollRepo.UpdateComponent(ctx, req)
}

func (s *PayrollServiceImpl) DeleteComponent(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteComponent(ctx, id)
}

// ========== ASSIGNMENTS ==========

func (s *PayrollServiceImpl) AssignComponent(ctx context.Context, req payroll.AssignComponentRequest) (payroll.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AssignmentResponse{}, err
	}

	assignment := payroll.Assignment{
		EmployeeID:   req.EmployeeID,
		ComponentID:  req.ComponentID,
		CustomAmount: req.CustomAmount,
	}

	created, err := s.payrollRepo.CreateAssignment(ctx, assignment)
	if err != nil {
		return payroll.AssignmentResponse{}, err
	}

	return mapToAssignmentResponse(created), nil
}

func (s *PayrollServiceImpl) GetEmployeeAssignments(ctx context.Context, employeeID string) ([]payroll.AssignmentResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	assignments, err := s.payrollRepo.ListAssignmentsByEmployee(ctx, employeeID, nil, false)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, mapToAssignmentResponse(a))
	}

	return result, nil
}

func (s *PayrollServiceImpl) UpdateAssignment(ctx context.Context, req payroll.UpdateAssignmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.payrollRepo.UpdateAssignment(ctx, req)
}

func (s *PayrollServiceImpl) RemoveAssignment(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteAssignment(ctx, id)
}

// ========== OVERTIME ==========

func (s *PayrollServiceImpl) CreateOvertime(ctx context.Context, req payroll.CreateOvertimeRequest) (payroll.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.OvertimeResponse{}, err
	}

	record := payroll.OvertimeRecord{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Hours:       req.Hours,
		Rate:        req.Rate,
		TotalAmount: req.Hours.Mul(req.Rate),
	}

	created, err := s.payrollRepo.CreateOvertime(ctx, record)
	if err != nil {
		return payroll.OvertimeResponse{}, err
	}

	return mapToOvertimeResponse(created), nil
}

func (s *PayrollServiceImpl) ListOvertime(ctx context.Context, employeeID, month string) ([]payroll.OvertimeResponse, error) {
	if month != "" && !validator.IsValidPayMonth(month) {
		return nil, payroll.ErrInvalidMonth
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListOvertimeByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.OvertimeResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToOvertimeResponse(r))
	}

	return result, nil
}

func (s *PayrollServiceImpl) UpdateOvertime(ctx context.Context, req payroll.UpdateOvertimeRequest) (payroll.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.OvertimeResponse{}, err
	}

	if err := s.payrollRepo.UpdateOvertime(ctx, req); err != nil {
		return payroll.OvertimeResponse{}, err
	}

	updated, err := s.payrollRepo.GetOvertimeByID(ctx, req.ID)
	if err != nil {
		return payroll.OvertimeResponse{}, err
	}

	return mapToOvertimeResponse(updated), nil
}

func (s *PayrollServiceImpl) DeleteOvertime(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteOvertime(ctx, id)
}

// ========== CALCULATION ==========

func (s *PayrollServiceImpl) CalculateSalary(ctx context.Context, employeeID, month string) (payroll.SalaryCalculation, error) {
	if !validator.IsValidPayMonth(month) {
		return payroll.SalaryCalculation{}, payroll.ErrInvalidMonth
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryCalculation{}, err
	}

	return s.calculateForEmployee(ctx, emp, month)
}

// calculateForEmployee resolves one employee's salary for a month. Reads
// only; the caller decides whether the result gets persisted.
func (s *PayrollServiceImpl) calculateForEmployee(ctx context.Context, emp employee.Employee, month string) (payroll.SalaryCalculation, error) {
	base := emp.Salary

	assignments, err := s.payrollRepo.ListAssignmentsByEmployee(ctx, emp.ID, nil, true)
	if err != nil {
		return payroll.SalaryCalculation{}, err
	}

	calc := payroll.SalaryCalculation{
		EmployeeID: emp.ID,
		Month:      month,
		BaseSalary: base,
	}

	for _, a := range assignments {
		if a.ComponentName == nil || a.ComponentKind == nil || a.ComponentRate == nil {
			return payroll.SalaryCalculation{}, fmt.Errorf("assignment %s is missing component data", a.ID)
		}

		var amount decimal.Decimal
		var details string
		if a.CustomAmount != nil {
			amount = *a.CustomAmount
			details = "custom amount"
		} else {
			amount = a.ComponentRate.ResolveAgainst(base)
			details = a.ComponentRate.Details()
		}

		line := payroll.ComponentAmount{Name: *a.ComponentName, Amount: amount, Details: details}
		if *a.ComponentKind == payroll.ComponentKindAllowance {
			calc.Allowances = append(calc.Allowances, line)
		} else {
			calc.Deductions = append(calc.Deductions, line)
		}
	}

	records, err := s.payrollRepo.ListOvertimeByEmployeeMonth(ctx, emp.ID, month)
	if err != nil {
		return payroll.SalaryCalculation{}, err
	}
	if len(records) > 0 {
		hours := decimal.Zero
		amount := decimal.Zero
		for _, r := range records {
			hours = hours.Add(r.Hours)
			amount = amount.Add(r.TotalAmount)
		}
		rate := decimal.Zero
		if !hours.IsZero() {
			rate = amount.Div(hours)
		}
		calc.Overtime = &payroll.OvertimeSummary{
			Hours:   hours,
			Rate:    rate,
			Amount:  amount,
			Records: len(records),
		}
	}

	calc.NetSalary = base.
		Add(calc.TotalAllowances()).
		Add(calc.OvertimeAmount()).
		Sub(calc.TotalDeductions())

	return calc, nil
}

// ========== GENERATION ==========

func (s *PayrollServiceImpl) GenerateForMonth(ctx context.Context, req payroll.GenerateSalariesRequest) (payroll.GenerateSalariesResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateSalariesResponse{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.GenerateSalariesResponse{}, fmt.Errorf("failed to get active employees: %w", err)
	}

	paidIDs, err := s.payrollRepo.ListPaidEmployeeIDsByMonth(ctx, req.Month)
	if err != nil {
		return payroll.GenerateSalariesResponse{}, fmt.Errorf("failed to get existing payments: %w", err)
	}
	alreadyPaid := make(map[string]bool, len(paidIDs))
	for _, id := range paidIDs {
		alreadyPaid[id] = true
	}

	resp := payroll.GenerateSalariesResponse{
		Month:   req.Month,
		Created: []payroll.PaymentResponse{},
	}

	for _, emp := range employees {
		if alreadyPaid[emp.ID] {
			resp.SkippedCount++
			continue
		}

		calc, err := s.calculateForEmployee(ctx, emp, req.Month)
		if err != nil {
			return payroll.GenerateSalariesResponse{}, fmt.Errorf("failed to calculate salary for employee %s: %w", emp.ID, err)
		}

		var created payroll.SalaryPayment
		err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			created, err = s.payrollRepo.CreatePayment(txCtx, payroll.SalaryPayment{
				EmployeeID: emp.ID,
				Month:      req.Month,
				Amount:     calc.NetSalary,
				Status:     payroll.PaymentStatusPending,
			})
			if err != nil {
				return err
			}

			return s.payrollRepo.CreateBreakdownRows(txCtx, created.ID, buildBreakdownRows(calc))
		})
		if err != nil {
			// Concurrent run already inserted this employee's row. The
			// unique key closed the check-then-insert window, so treat it
			// the same as the upfront skip.
			if errors.Is(err, payroll.ErrPaymentAlreadyExists) {
				resp.SkippedCount++
				continue
			}
			return payroll.GenerateSalariesResponse{}, fmt.Errorf("failed to create payment for employee %s: %w", emp.ID, err)
		}

		resp.Created = append(resp.Created, mapToPaymentResponse(created))
		resp.CreatedCount++
	}

	return resp, nil
}

// buildBreakdownRows flattens a calculation into ledger rows, ordered
// base, allowances, overtime, deductions.
func buildBreakdownRows(calc payroll.SalaryCalculation) []payroll.BreakdownRow {
	var rows []payroll.BreakdownRow

	rows = append(rows, payroll.BreakdownRow{
		ComponentType: payroll.BreakdownTypeBase,
		ComponentName: "Base Salary",
		Amount:        calc.BaseSalary,
	})

	for _, a := range calc.Allowances {
		details := a.Details
		rows = append(rows, payroll.BreakdownRow{
			ComponentType:      payroll.BreakdownTypeAllowance,
			ComponentName:      a.Name,
			Amount:             a.Amount,
			CalculationDetails: &details,
		})
	}

	if calc.Overtime != nil {
		details := fmt.Sprintf("%s hours @ %s/hour (%d records)",
			calc.Overtime.Hours.String(), calc.Overtime.Rate.String(), calc.Overtime.Records)
		rows = append(rows, payroll.BreakdownRow{
			ComponentType:      payroll.BreakdownTypeOvertime,
			ComponentName:      "Overtime",
			Amount:             calc.Overtime.Amount,
			CalculationDetails: &details,
		})
	}

	for _, d := range calc.Deductions {
		details := d.Details
		rows = append(rows, payroll.BreakdownRow{
			ComponentType:      payroll.BreakdownTypeDeduction,
			ComponentName:      d.Name,
			Amount:             d.Amount,
			CalculationDetails: &details,
		})
	}

	return rows
}

// ========== PAYMENTS ==========

func (s *PayrollServiceImpl) GetPayment(ctx context.Context, id string) (payroll.PaymentResponse, error) {
	payment, err := s.payrollRepo.GetPaymentByID(ctx, id)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	return mapToPaymentResponse(payment), nil
}

func (s *PayrollServiceImpl) ListPayments(ctx context.Context, filter payroll.PaymentFilter) (payroll.ListPaymentsResponse, error) {
	if filter.Month != nil && !validator.IsValidPayMonth(*filter.Month) {
		return payroll.ListPaymentsResponse{}, payroll.ErrInvalidMonth
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	payments, totalCount, err := s.payrollRepo.ListPayments(ctx, filter)
	if err != nil {
		return payroll.ListPaymentsResponse{}, err
	}

	result := make([]payroll.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, mapToPaymentResponse(p))
	}

	return payroll.ListPaymentsResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) UpdatePaymentStatus(ctx context.Context, req payroll.UpdatePaymentStatusRequest) (payroll.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaymentResponse{}, err
	}

	status := payroll.PaymentStatus(req.Status)

	var paymentDate *time.Time
	if req.PaymentDate != nil {
		parsed, _ := validator.IsValidDateTime(*req.PaymentDate)
		paymentDate = &parsed
	} else if status == payroll.PaymentStatusPaid {
		// Marking paid without a date stamps it now.
		now := time.Now()
		paymentDate = &now
	}

	if err := s.payrollRepo.UpdatePaymentStatus(ctx, req.ID, status, paymentDate); err != nil {
		return payroll.PaymentResponse{}, err
	}

	return s.GetPayment(ctx, req.ID)
}

func (s *PayrollServiceImpl) UpdatePayment(ctx context.Context, req payroll.UpdatePaymentRequest) (payroll.PaymentResponse, error) {
	if err := s.payrollRepo.UpdatePayment(ctx, req); err != nil {
		return payroll.PaymentResponse{}, err
	}

	return s.GetPayment(ctx, req.ID)
}

func (s *PayrollServiceImpl) DeletePayment(ctx context.Context, id string) error {
	return s.payrollRepo.DeletePayment(ctx, id)
}

func (s *PayrollServiceImpl) GetBreakdown(ctx context.Context, paymentID string) ([]payroll.BreakdownRowResponse, error) {
	rows, err := s.payrollRepo.GetBreakdown(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.BreakdownRowResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, payroll.BreakdownRowResponse{
			ID:                 r.ID,
			ComponentType:      string(r.ComponentType),
			ComponentName:      r.ComponentName,
			Amount:             r.Amount,
			CalculationDetails: r.CalculationDetails,
		})
	}

	return result, nil
}

// ========== SUMMARY ==========

func (s *PayrollServiceImpl) GetMonthlySummary(ctx context.Context, month string) (payroll.MonthlySummaryResponse, error) {
	if !validator.IsValidPayMonth(month) {
		return payroll.MonthlySummaryResponse{}, payroll.ErrInvalidMonth
	}

	return s.payrollRepo.GetMonthlySummary(ctx, month)
}

// ========== HELPERS ==========

func mapToComponentResponse(c payroll.Component) payroll.ComponentResponse {
	return payroll.ComponentResponse{
		ID:              c.ID,
		Kind:            string(c.Kind),
		Name:            c.Name,
		Category:        c.Category,
		Amount:          c.Rate.FixedAmount(),
		Percentage:      c.Rate.Percentage(),
		IsLocationBased: c.IsLocationBased,
		MinDistanceKm:   c.MinDistanceKm,
		IsActive:        c.IsActive,
	}
}

func mapToAssignmentResponse(a payroll.Assignment) payroll.AssignmentResponse {
	resp := payroll.AssignmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		ComponentID:  a.ComponentID,
		CustomAmount: a.CustomAmount,
	}
	if a.ComponentName != nil {
		resp.ComponentName = *a.ComponentName
	}
	if a.ComponentKind != nil {
		resp.ComponentKind = string(*a.ComponentKind)
	}
	if a.ComponentRate != nil {
		resp.Amount = a.ComponentRate.FixedAmount()
		resp.Percentage = a.ComponentRate.Percentage()
	}
	return resp
}

func mapToOvertimeResponse(r payroll.OvertimeRecord) payroll.OvertimeResponse {
	return payroll.OvertimeResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Month:       r.Month,
		Hours:       r.Hours,
		Rate:        r.Rate,
		TotalAmount: r.TotalAmount,
	}
}

func mapToPaymentResponse(p payroll.SalaryPayment) payroll.PaymentResponse {
	var paymentDateStr *string
	if p.PaymentDate != nil {
		str := p.PaymentDate.Format(time.RFC3339)
		paymentDateStr = &str
	}

	resp := payroll.PaymentResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		Month:         p.Month,
		Amount:        p.Amount,
		Status:        string(p.Status),
		PaymentDate:   paymentDateStr,
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.EmployeeCode != nil {
		resp.EmployeeCode = *p.EmployeeCode
	}
	return resp
}
