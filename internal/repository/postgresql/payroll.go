package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hisaab-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== COMPONENTS ==========

func scanComponent(row pgx.Row) (payroll.Component, error) {
	var c payroll.Component
	var amount, percentage *decimal.Decimal
	err := row.Scan(
		&c.ID, &c.Kind, &c.Name, &c.Category, &amount, &percentage,
		&c.IsLocationBased, &c.MinDistanceKm, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return payroll.Component{}, err
	}
	rate, err := payroll.RateFromColumns(amount, percentage)
	if err != nil {
		return payroll.Component{}, fmt.Errorf("component %s: %w", c.ID, err)
	}
	c.Rate = rate
	return c, nil
}

const componentColumns = `id, kind, name, category, amount, percentage,
	   is_location_based, min_distance_km, is_active, created_at, updated_at`

func (r *payrollRepository) CreateComponent(ctx context.Context, component payroll.Component) (payroll.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_components (kind, name, category, amount, percentage,
			is_location_based, min_distance_km, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + componentColumns

	c, err := scanComponent(q.QueryRow(ctx, query,
		component.Kind, component.Name, component.Category,
		component.Rate.FixedAmount(), component.Rate.Percentage(),
		component.IsLocationBased, component.MinDistanceKm, component.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uq_pay_components_kind_name") {
			return payroll.Component{}, payroll.ErrComponentNameExists
		}
		return payroll.Component{}, fmt.Errorf("failed to create pay component: %w", err)
	}

	return c, nil
}

func (r *payrollRepository) GetComponentByID(ctx context.Context, id string) (payroll.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM pay_components WHERE id = $1`

	c, err := scanComponent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Component{}, payroll.ErrComponentNotFound
		}
		return payroll.Component{}, fmt.Errorf("failed to get pay component: %w", err)
	}

	return c, nil
}

func (r *payrollRepository) ListComponents(ctx context.Context, kind *payroll.ComponentKind, activeOnly bool) ([]payroll.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM pay_components WHERE 1=1`
	args := []interface{}{}
	if kind != nil {
		query += " AND kind = $1"
		args = append(args, *kind)
	}
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY kind, name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay components: %w", err)
	}
	defer rows.Close()

	var components []payroll.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay component: %w", err)
		}
		components = append(components, c)
	}

	return components, nil
}

func (r *payrollRepository) UpdateComponent(ctx context.Context, req payroll.UpdateComponentRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Category != nil {
		setParts = append(setParts, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, *req.Category)
		argIdx++
	}
	// Switching the rate kind clears the other column so the union CHECK holds.
	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d, percentage = NULL", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.Percentage != nil {
		setParts = append(setParts, fmt.Sprintf("percentage = $%d, amount = NULL", argIdx))
		args = append(args, *req.Percentage)
		argIdx++
	}
	if req.IsLocationBased != nil {
		setParts = append(setParts, fmt.Sprintf("is_location_based = $%d", argIdx))
		args = append(args, *req.IsLocationBased)
		argIdx++
	}
	if req.MinDistanceKm != nil {
		setParts = append(setParts, fmt.Sprintf("min_distance_km = $%d", argIdx))
		args = append(args, *req.MinDistanceKm)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE pay_components
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrComponentNotFound
		}
		if strings.Contains(err.Error(), "uq_pay_components_kind_name") {
			return payroll.ErrComponentNameExists
		}
		return fmt.Errorf("failed to update pay component: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeleteComponent(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM pay_components WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrComponentNotFound
		}
		return fmt.Errorf("failed to delete pay component: %w", err)
	}

	return nil
}

// ========== ASSIGNMENTS ==========

func scanAssignment(row pgx.Row) (payroll.Assignment, error) {
	var a payroll.Assignment
	var amount, percentage *decimal.Decimal
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.ComponentID, &a.CustomAmount, &a.CreatedAt, &a.UpdatedAt,
		&a.ComponentName, &a.ComponentKind, &amount, &percentage,
	)
	if err != nil {
		return payroll.Assignment{}, err
	}
	rate, err := payroll.RateFromColumns(amount, percentage)
	if err != nil {
		return payroll.Assignment{}, fmt.Errorf("assignment %s: %w", a.ID, err)
	}
	a.ComponentRate = &rate
	return a, nil
}

const assignmentColumns = `ec.id, ec.employee_id, ec.component_id, ec.custom_amount, ec.created_at, ec.updated_at,
	   pc.name as component_name, pc.kind as component_kind, pc.amount, pc.percentage`

func (r *payrollRepository) CreateAssignment(ctx context.Context, assignment payroll.Assignment) (payroll.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	var empExists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, assignment.EmployeeID).Scan(&empExists)
	if err != nil || !empExists {
		return payroll.Assignment{}, payroll.ErrEmployeeNotFound
	}

	var compExists bool
	err = q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM pay_components WHERE id = $1)`, assignment.ComponentID).Scan(&compExists)
	if err != nil || !compExists {
		return payroll.Assignment{}, payroll.ErrComponentNotFound
	}

	query := `
		WITH inserted AS (
			INSERT INTO employee_components (employee_id, component_id, custom_amount)
			VALUES ($1, $2, $3)
			RETURNING id, employee_id, component_id, custom_amount, created_at, updated_at
		)
		SELECT ec.id, ec.employee_id, ec.component_id, ec.custom_amount, ec.created_at, ec.updated_at,
			   pc.name as component_name, pc.kind as component_kind, pc.amount, pc.percentage
		FROM inserted ec
		JOIN pay_components pc ON ec.component_id = pc.id
	`

	a, err := scanAssignment(q.QueryRow(ctx, query,
		assignment.EmployeeID, assignment.ComponentID, assignment.CustomAmount,
	))
	if err != nil {
		return payroll.Assignment{}, fmt.Errorf("failed to assign component: %w", err)
	}

	return a, nil
}

func (r *payrollRepository) GetAssignmentByID(ctx context.Context, id string) (payroll.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM employee_components ec
		JOIN pay_components pc ON ec.component_id = pc.id
		WHERE ec.id = $1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Assignment{}, payroll.ErrAssignmentNotFound
		}
		return payroll.Assignment{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	return a, nil
}

func (r *payrollRepository) ListAssignmentsByEmployee(ctx context.Context, employeeID string, kind *payroll.ComponentKind, activeOnly bool) ([]payroll.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM employee_components ec
		JOIN pay_components pc ON ec.component_id = pc.id
		WHERE ec.employee_id = $1
	`
	args := []interface{}{employeeID}
	if kind != nil {
		query += " AND pc.kind = $2"
		args = append(args, *kind)
	}
	if activeOnly {
		query += " AND pc.is_active = true"
	}
	query += " ORDER BY pc.kind, pc.name, ec.created_at"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []payroll.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *payrollRepository) UpdateAssignment(ctx context.Context, req payroll.UpdateAssignmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_components
		SET custom_amount = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, req.ID, req.CustomAmount).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeleteAssignment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employee_components WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to remove assignment: %w", err)
	}

	return nil
}

// ========== OVERTIME ==========

const overtimeColumns = `id, employee_id, month, hours, rate, total_amount, created_at, updated_at`

func scanOvertime(row pgx.Row) (payroll.OvertimeRecord, error) {
	var o payroll.OvertimeRecord
	err := row.Scan(
		&o.ID, &o.EmployeeID, &o.Month, &o.Hours, &o.Rate, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *payrollRepository) CreateOvertime(ctx context.Context, record payroll.OvertimeRecord) (payroll.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	var empExists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, record.EmployeeID).Scan(&empExists)
	if err != nil || !empExists {
		return payroll.OvertimeRecord{}, payroll.ErrEmployeeNotFound
	}

	query := `
		INSERT INTO overtime_records (employee_id, month, hours, rate, total_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + overtimeColumns

	o, err := scanOvertime(q.QueryRow(ctx, query,
		record.EmployeeID, record.Month, record.Hours, record.Rate, record.TotalAmount,
	))
	if err != nil {
		return payroll.OvertimeRecord{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return o, nil
}

func (r *payrollRepository) GetOvertimeByID(ctx context.Context, id string) (payroll.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_records WHERE id = $1`

	o, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.OvertimeRecord{}, payroll.ErrOvertimeNotFound
		}
		return payroll.OvertimeRecord{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	return o, nil
}

func (r *payrollRepository) ListOvertimeByEmployeeMonth(ctx context.Context, employeeID, month string) ([]payroll.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_records WHERE employee_id = $1`
	args := []interface{}{employeeID}
	if month != "" {
		query += " AND month = $2"
		args = append(args, month)
	}
	query += " ORDER BY month, created_at"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	var records []payroll.OvertimeRecord
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, o)
	}

	return records, nil
}

func (r *payrollRepository) UpdateOvertime(ctx context.Context, req payroll.UpdateOvertimeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Hours != nil {
		setParts = append(setParts, fmt.Sprintf("hours = $%d", argIdx))
		args = append(args, *req.Hours)
		argIdx++
	}
	if req.Rate != nil {
		setParts = append(setParts, fmt.Sprintf("rate = $%d", argIdx))
		args = append(args, *req.Rate)
		argIdx++
	}
	// total_amount stays consistent with hours x rate on every write
	setParts = append(setParts, "total_amount = hours * rate")

	query := fmt.Sprintf(`
		UPDATE overtime_records
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrOvertimeNotFound
		}
		return fmt.Errorf("failed to update overtime record: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeleteOvertime(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM overtime_records WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrOvertimeNotFound
		}
		return fmt.Errorf("failed to delete overtime record: %w", err)
	}

	return nil
}

// ========== PAYMENTS ==========

const paymentColumns = `sp.id, sp.employee_id, sp.month, sp.amount, sp.status, sp.payment_date,
	   sp.payment_method, sp.notes, sp.created_at, sp.updated_at,
	   e.full_name as employee_name, e.employee_code`

func scanPayment(row pgx.Row) (payroll.SalaryPayment, error) {
	var p payroll.SalaryPayment
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Amount, &p.Status, &p.PaymentDate,
		&p.PaymentMethod, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode,
	)
	return p, err
}

func (r *payrollRepository) CreatePayment(ctx context.Context, payment payroll.SalaryPayment) (payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO salary_payments (employee_id, month, amount, status, payment_date, payment_method, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, employee_id, month, amount, status, payment_date, payment_method, notes, created_at, updated_at
		)
		SELECT sp.id, sp.employee_id, sp.month, sp.amount, sp.status, sp.payment_date,
			   sp.payment_method, sp.notes, sp.created_at, sp.updated_at,
			   e.full_name as employee_name, e.employee_code
		FROM inserted sp
		JOIN employees e ON sp.employee_id = e.id
	`

	p, err := scanPayment(q.QueryRow(ctx, query,
		payment.EmployeeID, payment.Month, payment.Amount, payment.Status,
		payment.PaymentDate, payment.PaymentMethod, payment.Notes,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uq_salary_payments_employee_month") {
			return payroll.SalaryPayment{}, payroll.ErrPaymentAlreadyExists
		}
		return payroll.SalaryPayment{}, fmt.Errorf("failed to create salary payment: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetPaymentByID(ctx context.Context, id string) (payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM salary_payments sp
		JOIN employees e ON sp.employee_id = e.id
		WHERE sp.id = $1
	`

	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryPayment{}, payroll.ErrPaymentNotFound
		}
		return payroll.SalaryPayment{}, fmt.Errorf("failed to get salary payment: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListPaidEmployeeIDsByMonth(ctx context.Context, month string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT employee_id FROM salary_payments WHERE month = $1`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list paid employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *payrollRepository) ListPayments(ctx context.Context, filter payroll.PaymentFilter) ([]payroll.SalaryPayment, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM salary_payments sp
		JOIN employees e ON sp.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND sp.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND sp.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND sp.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary payments: %w", err)
	}

	sortColumn := "sp.created_at"
	if filter.SortBy != "" {
		allowedColumns := map[string]string{
			"created_at":    "sp.created_at",
			"month":         "sp.month",
			"employee_name": "e.full_name",
			"amount":        "sp.amount",
		}
		if col, ok := allowedColumns[filter.SortBy]; ok {
			sortColumn = col
		}
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, paymentColumns, baseQuery, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary payments: %w", err)
	}
	defer rows.Close()

	var payments []payroll.SalaryPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, totalCount, nil
}

func (r *payrollRepository) UpdatePaymentStatus(ctx context.Context, id string, status payroll.PaymentStatus, paymentDate *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_payments
		SET status = $2, payment_date = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status, paymentDate).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPaymentNotFound
		}
		if strings.Contains(err.Error(), "ck_salary_payments_status") {
			return payroll.ErrInvalidStatus
		}
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return nil
}

func (r *payrollRepository) UpdatePayment(ctx context.Context, req payroll.UpdatePaymentRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.PaymentMethod != nil {
		setParts = append(setParts, fmt.Sprintf("payment_method = $%d", argIdx))
		args = append(args, *req.PaymentMethod)
		argIdx++
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *req.Notes)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE salary_payments
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to update salary payment: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeletePayment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// breakdown rows cascade via fk_salary_breakdowns_payment
	query := `DELETE FROM salary_payments WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to delete salary payment: %w", err)
	}

	return nil
}

// ========== BREAKDOWNS ==========

func (r *payrollRepository) CreateBreakdownRows(ctx context.Context, paymentID string, rows []payroll.BreakdownRow) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_breakdowns (payment_id, component_type, component_name, amount, calculation_details)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, row := range rows {
		if _, err := q.Exec(ctx, query,
			paymentID, row.ComponentType, row.ComponentName, row.Amount, row.CalculationDetails,
		); err != nil {
			return fmt.Errorf("failed to create breakdown row: %w", err)
		}
	}

	return nil
}

func (r *payrollRepository) GetBreakdown(ctx context.Context, paymentID string) ([]payroll.BreakdownRow, error) {
	q := GetQuerier(ctx, r.db)

	var paymentExists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM salary_payments WHERE id = $1)`, paymentID).Scan(&paymentExists)
	if err != nil || !paymentExists {
		return nil, payroll.ErrPaymentNotFound
	}

	query := `
		SELECT id, payment_id, component_type, component_name, amount, calculation_details, created_at
		FROM salary_breakdowns
		WHERE payment_id = $1
		ORDER BY seq
	`

	rows, err := q.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get breakdown: %w", err)
	}
	defer rows.Close()

	var breakdown []payroll.BreakdownRow
	for rows.Next() {
		var b payroll.BreakdownRow
		if err := rows.Scan(
			&b.ID, &b.PaymentID, &b.ComponentType, &b.ComponentName, &b.Amount, &b.CalculationDetails, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown row: %w", err)
		}
		breakdown = append(breakdown, b)
	}

	return breakdown, nil
}

// ========== AGGREGATIONS ==========

func (r *payrollRepository) GetMonthlySummary(ctx context.Context, month string) (payroll.MonthlySummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) as total_payments,
			COALESCE(SUM(amount), 0) as total_net,
			COUNT(*) FILTER (WHERE status = 'pending') as pending_count,
			COUNT(*) FILTER (WHERE status = 'paid') as paid_count,
			COUNT(*) FILTER (WHERE status = 'failed') as failed_count
		FROM salary_payments
		WHERE month = $1
	`

	var summary payroll.MonthlySummaryResponse
	err := q.QueryRow(ctx, query, month).Scan(
		&summary.TotalPayments, &summary.TotalNet,
		&summary.PendingCount, &summary.PaidCount, &summary.FailedCount,
	)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	summary.Month = month

	return summary, nil
}
