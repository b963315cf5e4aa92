package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/validator"
)

func decPtr(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestCreateComponentRequestValidate(t *testing.T) {
	base := func() CreateComponentRequest {
		return CreateComponentRequest{
			Kind:     "allowance",
			Name:     "Transport",
			Category: "transport",
			Amount:   decPtr("3000"),
		}
	}

	t.Run("valid fixed allowance", func(t *testing.T) {
		req := base()
		assert.NoError(t, req.Validate())
	})

	t.Run("valid percentage deduction", func(t *testing.T) {
		req := CreateComponentRequest{
			Kind:       "deduction",
			Name:       "Income Tax",
			Category:   "tax",
			Percentage: decPtr("5"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("both amount and percentage rejected", func(t *testing.T) {
		req := base()
		req.Percentage = decPtr("10")
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "amount")
	})

	t.Run("neither amount nor percentage rejected", func(t *testing.T) {
		req := base()
		req.Amount = nil
		assert.Error(t, req.Validate())
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		req := base()
		req.Kind = "bonus"
		assert.Error(t, req.Validate())
	})

	t.Run("category must match kind", func(t *testing.T) {
		req := base()
		req.Category = "tax" // deduction category on an allowance
		assert.Error(t, req.Validate())
	})

	t.Run("deductions cannot be location based", func(t *testing.T) {
		locationBased := true
		req := CreateComponentRequest{
			Kind:            "deduction",
			Name:            "Penalty",
			Category:        "penalty",
			Amount:          decPtr("1000"),
			IsLocationBased: &locationBased,
		}
		assert.Error(t, req.Validate())
	})
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(ComponentKindAllowance, "transport"))
	assert.True(t, IsValidCategory(ComponentKindAllowance, "other"))
	assert.True(t, IsValidCategory(ComponentKindDeduction, "tax"))
	assert.True(t, IsValidCategory(ComponentKindDeduction, "other"))

	assert.False(t, IsValidCategory(ComponentKindAllowance, "tax"))
	assert.False(t, IsValidCategory(ComponentKindDeduction, "housing"))
	assert.False(t, IsValidCategory(ComponentKind("bonus"), "other"))
}

func TestCreateOvertimeRequestValidate(t *testing.T) {
	req := CreateOvertimeRequest{
		Month: "2026-03",
		Hours: d("2"),
		Rate:  d("500"),
	}
	assert.NoError(t, req.Validate())

	req.Month = "2026-3"
	assert.Error(t, req.Validate())

	req.Month = "2026-03"
	req.Hours = d("-1")
	assert.Error(t, req.Validate())
}

func TestUpdatePaymentStatusRequestValidate(t *testing.T) {
	req := UpdatePaymentStatusRequest{ID: "pay-1", Status: "paid"}
	assert.NoError(t, req.Validate())

	req.Status = "settled"
	assert.Error(t, req.Validate())

	badDate := "15-03-2026"
	req = UpdatePaymentStatusRequest{ID: "pay-1", Status: "paid", PaymentDate: &badDate}
	assert.Error(t, req.Validate())
}
