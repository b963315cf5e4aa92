package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hisaab-hr/payroll-backend-go/internal/domain/employee"
	"github.com/hisaab-hr/payroll-backend-go/internal/domain/payroll"
	payrollService "github.com/hisaab-hr/payroll-backend-go/internal/service/payroll"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockPayrollRepository is a mock type for the payroll.PayrollRepository interface
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) CreateComponent(ctx context.Context, component payroll.Component) (payroll.Component, error) {
	args := m.Called(ctx, component)
	return args.Get(0).(payroll.Component), args.Error(1)
}

func (m *MockPayrollRepository) GetComponentByID(ctx context.Context, id string) (payroll.Component, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.Component), args.Error(1)
}

func (m *MockPayrollRepository) ListComponents(ctx context.Context, kind *payroll.ComponentKind, activeOnly bool) ([]payroll.Component, error) {
	args := m.Called(ctx, kind, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payroll.Component), args.Error(1)
}

func (m *MockPayrollRepository) UpdateComponent(ctx context.Context, req payroll.UpdateComponentRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPayrollRepository) DeleteComponent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPayrollRepository) CreateAssignment(ctx context.Context, assignment payroll.Assignment) (payroll.Assignment, error) {
	args := m.Called(ctx, assignment)
	return args.Get(0).(payroll.Assignment), args.Error(1)
}

func (m *MockPayrollRepository) GetAssignmentByID(ctx context.Context, id string) (payroll.Assignment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.Assignment), args.Error(1)
}

func (m *MockPayrollRepository) ListAssignmentsByEmployee(ctx context.Context, employeeID string, kind *payroll.ComponentKind, activeOnly bool) ([]payroll.Assignment, error) {
	args := m.Called(ctx, employeeID, kind, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payroll.Assignment), args.Error(1)
}

func (m *MockPayrollRepository) UpdateAssignment(ctx context.Context, req payroll.UpdateAssignmentRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPayrollRepository) DeleteAssignment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPayrollRepository) CreateOvertime(ctx context.Context, record payroll.OvertimeRecord) (payroll.OvertimeRecord, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(payroll.OvertimeRecord), args.Error(1)
}

func (m *MockPayrollRepository) GetOvertimeByID(ctx context.Context, id string) (payroll.OvertimeRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.OvertimeRecord), args.Error(1)
}

func (m *MockPayrollRepository) ListOvertimeByEmployeeMonth(ctx context.Context, employeeID, month string) ([]payroll.OvertimeRecord, error) {
	args := m.Called(ctx, employeeID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payroll.OvertimeRecord), args.Error(1)
}

func (m *MockPayrollRepository) UpdateOvertime(ctx context.Context, req payroll.UpdateOvertimeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPayrollRepository) DeleteOvertime(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPayrollRepository) CreatePayment(ctx context.Context, payment payroll.SalaryPayment) (payroll.SalaryPayment, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(payroll.SalaryPayment), args.Error(1)
}

func (m *MockPayrollRepository) GetPaymentByID(ctx context.Context, id string) (payroll.SalaryPayment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.SalaryPayment), args.Error(1)
}

func (m *MockPayrollRepository) ListPaidEmployeeIDsByMonth(ctx context.Context, month string) ([]string, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPayrollRepository) ListPayments(ctx context.Context, filter payroll.PaymentFilter) ([]payroll.SalaryPayment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]payroll.SalaryPayment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPayrollRepository) UpdatePaymentStatus(ctx context.Context, id string, status payroll.PaymentStatus, paymentDate *time.Time) error {
	args := m.Called(ctx, id, status, paymentDate)
	return args.Error(0)
}

func (m *MockPayrollRepository) UpdatePayment(ctx context.Context, req payroll.UpdatePaymentRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPayrollRepository) DeletePayment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPayrollRepository) CreateBreakdownRows(ctx context.Context, paymentID string, rows []payroll.BreakdownRow) error {
	args := m.Called(ctx, paymentID, rows)
	return args.Error(0)
}

func (m *MockPayrollRepository) GetBreakdown(ctx context.Context, paymentID string) ([]payroll.BreakdownRow, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payroll.BreakdownRow), args.Error(1)
}

func (m *MockPayrollRepository) GetMonthlySummary(ctx context.Context, month string) (payroll.MonthlySummaryResponse, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(payroll.MonthlySummaryResponse), args.Error(1)
}

// MockEmployeeRepository is a mock type for the employee.EmployeeRepository interface
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, newEmployee)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]employee.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *MockEmployeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]employee.Employee), args.Error(1)
}

// fakeTx satisfies pgx.Tx without a database connection. Repository calls
// inside the transaction go to the mocks, never to the tx itself.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *fakeTx) Commit(ctx context.Context) error          { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error        { t.rolledBack = true; return nil }
func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *fakeTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return nil, nil
}
func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                                       { return nil }

type fakeTxBeginner struct {
	txs []*fakeTx
}

func (f *fakeTxBeginner) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx := &fakeTx{}
	f.txs = append(f.txs, tx)
	return tx, nil
}

// --- Test Suite Setup ---

type PayrollServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockPayrollRepository
	mockEmpRepo *MockEmployeeRepository
	txBeginner  *fakeTxBeginner
	service     payroll.PayrollService
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPayrollRepository)
	suite.mockEmpRepo = new(MockEmployeeRepository)
	suite.txBeginner = &fakeTxBeginner{}
	suite.service = payrollService.NewPayrollService(suite.txBeginner, suite.mockRepo, suite.mockEmpRepo)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func strPtr(s string) *string { return &s }

func kindPtr(k payroll.ComponentKind) *payroll.ComponentKind { return &k }

func fixedRatePtr(amount string) *payroll.Rate {
	r, _ := payroll.NewFixedRate(dec(amount))
	return &r
}

func percentageRatePtr(pct string) *payroll.Rate {
	r, _ := payroll.NewPercentageRate(dec(pct))
	return &r
}

func activeEmployee(id, code string, salary string) employee.Employee {
	return employee.Employee{
		ID:           id,
		EmployeeCode: code,
		FullName:     "Test Employee " + code,
		Salary:       dec(salary),
		Status:       employee.StatusActive,
	}
}

// --- Calculation tests ---

func (suite *PayrollServiceTestSuite) TestCalculateSalary_PercentageOfBase() {
	ctx := context.Background()
	emp := activeEmployee("emp-1", "EMP001", "100000")

	suite.mockEmpRepo.On("GetByID", ctx, "emp-1").Return(emp, nil).Once()
	suite.mockRepo.On("ListAssignmentsByEmployee", ctx, "emp-1", (*payroll.ComponentKind)(nil), true).
		Return([]payroll.Assignment{
			{
				ID:            "as-1",
				EmployeeID:    "emp-1",
				ComponentID:   "comp-1",
				ComponentName: strPtr("Housing"),
				ComponentKind: kindPtr(payroll.ComponentKindAllowance),
				ComponentRate: percentageRatePtr("20"),
			},
		}, nil).Once()
	suite.mockRepo.On("ListOvertimeByEmployeeMonth", ctx, "emp-1", "2026-03").
		Return([]payroll.OvertimeRecord{}, nil).Once()

	calc, err := suite.service.CalculateSalary(ctx, "emp-1", "2026-03")

	suite.Require().NoError(err)
	suite.Require().Len(calc.Allowances, 1)
	suite.True(calc.Allowances[0].Amount.Equal(dec("20000")), "got %s", calc.Allowances[0].Amount)
	suite.Equal("20% of base salary", calc.Allowances[0].Details)
	suite.True(calc.NetSalary.Equal(dec("120000")), "got %s", calc.NetSalary)
	suite.Nil(calc.Overtime)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCalculateSalary_CustomAmountOverridesRate() {
	ctx := context.Background()
	emp := activeEmployee("emp-1", "EMP001", "50000")
	custom := dec("7500")

	suite.mockEmpRepo.On("GetByID", ctx, "emp-1").Return(emp, nil).Once()
	suite.mockRepo.On("ListAssignmentsByEmployee", ctx, "emp-1", (*payroll.ComponentKind)(nil), true).
		Return([]payroll.Assignment{
			{
				ID:            "as-1",
				EmployeeID:    "emp-1",
				ComponentID:   "comp-1",
				CustomAmount:  &custom,
				ComponentName: strPtr("Transport"),
				ComponentKind: kindPtr(payroll.ComponentKindAllowance),
				ComponentRate: fixedRatePtr("5000"),
			},
		}, nil).Once()
	suite.mockRepo.On("ListOvertimeByEmployeeMonth", ctx, "emp-1", "2026-03").
		Return([]payroll.OvertimeRecord{}, nil).Once()

	calc, err := suite.service.CalculateSalary(ctx, "emp-1", "2026-03")

	suite.Require().NoError(err)
	suite.Require().Len(calc.Allowances, 1)
	suite.True(calc.Allowances[0].Amount.Equal(custom))
	suite.Equal("custom amount", calc.Allowances[0].Details)
	suite.True(calc.NetSalary.Equal(dec("57500")))
}

func (suite *PayrollServiceTestSuite) TestCalculateSalary_OvertimeAggregation() {
	ctx := context.Background()
	emp := activeEmployee("emp-1", "EMP001", "40000")

	suite.mockEmpRepo.On("GetByID", ctx, "emp-1").Return(emp, nil).Once()
	suite.mockRepo.On("ListAssignmentsByEmployee", ctx, "emp-1", (*payroll.ComponentKind)(nil), true).
		Return([]payroll.Assignment{}, nil).Once()
	suite.mockRepo.On("ListOvertimeByEmployeeMonth", ctx, "emp-1", "2026-03").
		Return([]payroll.OvertimeRecord{
			{ID: "ot-1", Hours: dec("2"), Rate: dec("500"), TotalAmount: dec("1000")},
			{ID: "ot-2", Hours: dec("3"), Rate: dec("500"), TotalAmount: dec("1500")},
		}, nil).Once()

	calc, err := suite.service.CalculateSalary(ctx, "emp-1", "2026-03")

	suite.Require().NoError(err)
	suite.Require().NotNil(calc.Overtime)
	suite.True(calc.Overtime.Hours.Equal(dec("5")))
	suite.True(calc.Overtime.Amount.Equal(dec("2500")))
	suite.True(calc.Overtime.Rate.Equal(dec("500")), "effective rate, got %s", calc.Overtime.Rate)
	suite.Equal(2, calc.Overtime.Records)
	suite.True(calc.NetSalary.Equal(dec("42500")))
}

func (suite *PayrollServiceTestSuite) TestCalculateSalary_NetMayGoNegative() {
	ctx := context.Background()
	emp := activeEmployee("emp-1", "EMP001", "10000")

	suite.mockEmpRepo.On("GetByID", ctx, "emp-1").Return(emp, nil).Once()
	suite.mockRepo.On("ListAssignmentsByEmployee", ctx, "emp-1", (*payroll.ComponentKind)(nil), true).
		Return([]payroll.Assignment{
			{
				ID:            "as-1",
				ComponentName: strPtr("Loan Repayment"),
				ComponentKind: kindPtr(payroll.ComponentKindDeduction),
				ComponentRate: fixedRatePtr("15000"),
			},
		}, nil).Once()
	suite.mockRepo.On("ListOvertimeByEmployeeMonth", ctx, "emp-1", "2026-03").
		Return([]payroll.OvertimeRecord{}, nil).Once()

	calc, err := suite.service.CalculateSalary(ctx, "emp-1", "2026-03")

	suite.Require().NoError(err)
	suite.True(calc.NetSalary.Equal(dec("-5000")), "net is never clamped, got %s", calc.NetSalary)
}

func (suite *PayrollServiceTestSuite) TestCalculateSalary_MixedComponentsReconcile() {
	ctx := context.Background()
	emp := activeEmployee("emp-1", "EMP001", "85000")

	suite.mockEmpRepo.On("GetByID", ctx, "emp-1").Return(emp, nil).Once()
	suite.mockRepo.On("ListAssignmentsByEmployee", ctx, "emp-1", (*payroll.ComponentKind)(nil), true).
		Return([]payroll.Assignment{
			{
				ID:            "as-1",
				ComponentName: strPtr("Transport"),
				ComponentKind: kindPtr(payroll.ComponentKindAllowance),
				ComponentRate: fixedRatePtr("3000"),
			},
			{
				ID:            "as-2",
				ComponentName: strPtr("Income Tax"),
				ComponentKind: kindPtr(payroll.ComponentKindDeduction),
				ComponentRate: percentageRatePtr("5"),
			},
		}, nil).Once()
	suite.mockRepo.On("ListOvertimeByEmployeeMonth", ctx, "emp-1", "2026-03").
		Return([]payroll.OvertimeRecord{}, nil).Once()

	calc, err := suite.service.CalculateSalary(ctx, "emp-1", "2026-03")

	suite.Require().NoError(err)
	suite.True(calc.TotalAllowances().Equal(dec("3000")))
	suite.True(calc.TotalDeductions().Equal(dec("4250")))
	suite.True(calc.NetSalary.Equal(dec("83750")))

	// Net always reconciles against its own parts.
	recomputed := calc.BaseSalary.
		Add(calc.TotalAllowances()).
		Add(calc.OvertimeAmount()).
		Sub(calc.TotalDeductions())
	suite.True(calc.NetSalary.Equal(recomputed))
}

func (suite *PayrollServiceTestSuite) TestCalculateSalary_RejectsBadMonth() {
	ctx := context.Background()

	_, err := suite.service.CalculateSalary(ctx, "emp-1", "2026-13")
	suite.ErrorIs(err, payroll.ErrInvalidMonth)

	_, err = suite.service.CalculateSalary(ctx, "emp-1", "March 2026")
	suite.ErrorIs(err, payroll.ErrInvalidMonth)
}

// --- Generation tests ---

func (suite *PayrollServiceTestSuite) TestGenerateForMonth_CreatesPaymentWithBreakdown() {
	ctx := context.Background()
	emp := activeEmployee("emp-1", "EMP001", "85000")

	suite.mockEmpRepo.On("GetActive", ctx).Return([]employee.Employee{emp}, nil).Once()
	suite.mockRepo.On("ListPaidEmployeeIDsByMonth", ctx, "2026-03").Return([]string{}, nil).Once()
	suite.mockRepo.On("ListAssignmentsByEmployee", ctx, "emp-1", (*payroll.ComponentKind)(nil), true).
		Return([]payroll.Assignment{
			{
				ID:            "as-1",
				ComponentName: strPtr("Transport"),
				ComponentKind: kindPtr(payroll.ComponentKindAllowance),
				ComponentRate: fixedRatePtr("3000"),
			},
			{
				ID:            "as-2",
				ComponentName: strPtr("Income Tax"),
				ComponentKind: kindPtr(payroll.ComponentKindDeduction),
				ComponentRate: percentageRatePtr("5"),
			},
		}, nil).Once()
	suite.mockRepo.On("ListOvertimeByEmployeeMonth", ctx, "emp-1", "2026-03").
		Return([]payroll.OvertimeRecord{
			{ID: "ot-1", Hours: dec("4"), Rate: dec("250"), TotalAmount: dec("1000")},
		}, nil).Once()

	suite.mockRepo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p payroll.SalaryPayment) bool {
		return p.EmployeeID == "emp-1" &&
			p.Month == "2026-03" &&
			p.Status == payroll.PaymentStatusPending &&
			p.PaymentDate == nil &&
			p.Amount.Equal(dec("84750"))
	})).Return(payroll.SalaryPayment{
		ID:         "pay-1",
		EmployeeID: "emp-1",
		Month:      "2026-03",
		Amount:     dec("84750"),
		Status:     payroll.PaymentStatusPending,
	}, nil).Once()

	suite.mockRepo.On("CreateBreakdownRows", mock.Anything, "pay-1", mock.MatchedBy(func(rows []payroll.BreakdownRow) bool {
		if len(rows) != 4 {
			return false
		}
		return rows[0].ComponentType == payroll.BreakdownTypeBase &&
			rows[1].ComponentType == payroll.BreakdownTypeAllowance &&
			rows[2].ComponentType == payroll.BreakdownTypeOvertime &&
			rows[3].ComponentType == payroll.BreakdownTypeDeduction &&
			rows[0].Amount.Equal(dec("85000")) &&
			rows[3].Amount.Equal(dec("4250"))
	})).Return(nil).Once()

	resp, err := suite.service.GenerateForMonth(ctx, payroll.GenerateSalariesRequest{Month: "2026-03"})

	suite.Require().NoError(err)
	suite.Equal(1, resp.CreatedCount)
	suite.Equal(0, resp.SkippedCount)
	suite.Require().Len(suite.txBeginner.txs, 1)
	suite.True(suite.txBeginner.txs[0].committed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestGenerateForMonth_SkipsEmployeesWithExistingPayment() {
	ctx := context.Background()
	paid := activeEmployee("emp-1", "EMP001", "50000")
	unpaid := activeEmployee("emp-2", "EMP002", "60000")

	suite.mockEmpRepo.On("GetActive", ctx).Return([]employee.Employee{paid, unpaid}, nil).Once()
	suite.mockRepo.On("ListPaidEmployeeIDsByMonth", ctx, "2026-03").Return([]string{"emp-1"}, nil).Once()

	suite.mockRepo.On("ListAssignmentsByEmployee", ctx, "emp-2", (*payroll.ComponentKind)(nil), true).
		Return([]payroll.Assignment{}, nil).Once()
	suite.mockRepo.On("ListOvertimeByEmployeeMonth", ctx, "emp-2", "2026-03").
		Return([]payroll.OvertimeRecord{}, nil).Once()
	suite.mockRepo.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p payroll.SalaryPayment) bool {
		return p.EmployeeID == "emp-2"
	})).Return(payroll.SalaryPayment{ID: "pay-2", EmployeeID: "emp-2", Month: "2026-03", Amount: dec("60000"), Status: payroll.PaymentStatusPending}, nil).Once()
	suite.mockRepo.On("CreateBreakdownRows", mock.Anything, "pay-2", mock.Anything).Return(nil).Once()

	resp, err := suite.service.GenerateForMonth(ctx, payroll.GenerateSalariesRequest{Month: "2026-03"})

	suite.Require().NoError(err)
	suite.Equal(1, resp.CreatedCount)
	suite.Equal(1, resp.SkippedCount)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAssignmentsByEmployee", ctx, "emp-1", (*payroll.ComponentKind)(nil), true)
}

func (suite *PayrollServiceTestSuite) TestGenerateForMonth_UniqueViolationCountsAsSkip() {
	ctx := context.Background()
	emp := activeEmployee("emp-1", "EMP001", "50000")

	suite.mockEmpRepo.On("GetActive", ctx).Return([]employee.Employee{emp}, nil).Once()
	suite.mockRepo.On("ListPaidEmployeeIDsByMonth", ctx, "2026-03").Return([]string{}, nil).Once()
	suite.mockRepo.On("ListAssignmentsByEmployee", ctx, "emp-1", (*payroll.ComponentKind)(nil), true).
		Return([]payroll.Assignment{}, nil).Once()
	suite.mockRepo.On("ListOvertimeByEmployeeMonth", ctx, "emp-1", "2026-03").
		Return([]payroll.OvertimeRecord{}, nil).Once()
	suite.mockRepo.On("CreatePayment", mock.Anything, mock.Anything).
		Return(payroll.SalaryPayment{}, payroll.ErrPaymentAlreadyExists).Once()

	resp, err := suite.service.GenerateForMonth(ctx, payroll.GenerateSalariesRequest{Month: "2026-03"})

	suite.Require().NoError(err)
	suite.Equal(0, resp.CreatedCount)
	suite.Equal(1, resp.SkippedCount)
	suite.Require().Len(suite.txBeginner.txs, 1)
	suite.True(suite.txBeginner.txs[0].rolledBack)
}

func (suite *PayrollServiceTestSuite) TestGenerateForMonth_AbortsOnUnexpectedError() {
	ctx := context.Background()
	emp := activeEmployee("emp-1", "EMP001", "50000")
	boom := errors.New("connection reset")

	suite.mockEmpRepo.On("GetActive", ctx).Return([]employee.Employee{emp}, nil).Once()
	suite.mockRepo.On("ListPaidEmployeeIDsByMonth", ctx, "2026-03").Return([]string{}, nil).Once()
	suite.mockRepo.On("ListAssignmentsByEmployee", ctx, "emp-1", (*payroll.ComponentKind)(nil), true).
		Return([]payroll.Assignment{}, nil).Once()
	suite.mockRepo.On("ListOvertimeByEmployeeMonth", ctx, "emp-1", "2026-03").
		Return([]payroll.OvertimeRecord{}, nil).Once()
	suite.mockRepo.On("CreatePayment", mock.Anything, mock.Anything).
		Return(payroll.SalaryPayment{}, boom).Once()

	_, err := suite.service.GenerateForMonth(ctx, payroll.GenerateSalariesRequest{Month: "2026-03"})

	suite.Require().Error(err)
	suite.ErrorIs(err, boom)
}

func (suite *PayrollServiceTestSuite) TestGenerateForMonth_RejectsBadMonth() {
	ctx := context.Background()

	_, err := suite.service.GenerateForMonth(ctx, payroll.GenerateSalariesRequest{Month: "2026-3"})
	suite.Require().Error(err)
	suite.mockEmpRepo.AssertNotCalled(suite.T(), "GetActive", ctx)
}

// --- Payment lifecycle tests ---

func (suite *PayrollServiceTestSuite) TestUpdatePaymentStatus_PaidStampsDate() {
	ctx := context.Background()

	suite.mockRepo.On("UpdatePaymentStatus", ctx, "pay-1", payroll.PaymentStatusPaid,
		mock.MatchedBy(func(d *time.Time) bool {
			return d != nil && time.Since(*d) < time.Minute
		})).Return(nil).Once()

	paidAt := time.Now()
	suite.mockRepo.On("GetPaymentByID", ctx, "pay-1").Return(payroll.SalaryPayment{
		ID:          "pay-1",
		EmployeeID:  "emp-1",
		Month:       "2026-03",
		Amount:      dec("50000"),
		Status:      payroll.PaymentStatusPaid,
		PaymentDate: &paidAt,
	}, nil).Once()

	resp, err := suite.service.UpdatePaymentStatus(ctx, payroll.UpdatePaymentStatusRequest{
		ID:     "pay-1",
		Status: "paid",
	})

	suite.Require().NoError(err)
	suite.Equal("paid", resp.Status)
	suite.NotNil(resp.PaymentDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestUpdatePaymentStatus_RejectsUnknownStatus() {
	ctx := context.Background()

	_, err := suite.service.UpdatePaymentStatus(ctx, payroll.UpdatePaymentStatusRequest{
		ID:     "pay-1",
		Status: "settled",
	})

	suite.Require().Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
