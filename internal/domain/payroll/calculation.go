package payroll

import (
	"github.com/shopspring/decimal"
)

// ComponentAmount is one resolved allowance or deduction line in a
// calculation result.
type ComponentAmount struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	Details string          `json:"details"`
}

// OvertimeSummary aggregates the month's overtime records into a single
// contribution. When more than one record exists, Hours is the sum of all
// hours, Amount the sum of all totals, and Rate the derived effective rate
// (Amount / Hours, zero when Hours is zero). Records carries the merge count.
type OvertimeSummary struct {
	Hours   decimal.Decimal `json:"hours"`
	Rate    decimal.Decimal `json:"rate"`
	Amount  decimal.Decimal `json:"amount"`
	Records int             `json:"records"`
}

// SalaryCalculation is the structured result of the salary calculator.
// Invariant: NetSalary = BaseSalary + sum(Allowances) + Overtime.Amount
// - sum(Deductions). NetSalary may be negative; the calculator never clamps.
type SalaryCalculation struct {
	EmployeeID string            `json:"employee_id"`
	Month      string            `json:"month"`
	BaseSalary decimal.Decimal   `json:"base_salary"`
	Allowances []ComponentAmount `json:"allowances"`
	Overtime   *OvertimeSummary  `json:"overtime,omitempty"`
	Deductions []ComponentAmount `json:"deductions"`
	NetSalary  decimal.Decimal   `json:"net_salary"`
}

// TotalAllowances sums the allowance lines.
func (c SalaryCalculation) TotalAllowances() decimal.Decimal {
	total := decimal.Zero
	for _, a := range c.Allowances {
		total = total.Add(a.Amount)
	}
	return total
}

// TotalDeductions sums the deduction lines.
func (c SalaryCalculation) TotalDeductions() decimal.Decimal {
	total := decimal.Zero
	for _, d := range c.Deductions {
		total = total.Add(d.Amount)
	}
	return total
}

// OvertimeAmount is the overtime contribution, zero when no records existed.
func (c SalaryCalculation) OvertimeAmount() decimal.Decimal {
	if c.Overtime == nil {
		return decimal.Zero
	}
	return c.Overtime.Amount
}
