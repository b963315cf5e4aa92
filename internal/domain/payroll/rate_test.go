package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestRateFromColumns(t *testing.T) {
	amount := d("5000")
	percentage := d("12.5")

	t.Run("fixed", func(t *testing.T) {
		r, err := RateFromColumns(&amount, nil)
		require.NoError(t, err)
		assert.Equal(t, RateFixed, r.Kind())
		require.NotNil(t, r.FixedAmount())
		assert.True(t, r.FixedAmount().Equal(amount))
		assert.Nil(t, r.Percentage())
	})

	t.Run("percentage", func(t *testing.T) {
		r, err := RateFromColumns(nil, &percentage)
		require.NoError(t, err)
		assert.Equal(t, RatePercentage, r.Kind())
		require.NotNil(t, r.Percentage())
		assert.True(t, r.Percentage().Equal(percentage))
		assert.Nil(t, r.FixedAmount())
	})

	t.Run("both set", func(t *testing.T) {
		_, err := RateFromColumns(&amount, &percentage)
		assert.ErrorIs(t, err, ErrAmbiguousRate)
	})

	t.Run("neither set", func(t *testing.T) {
		_, err := RateFromColumns(nil, nil)
		assert.ErrorIs(t, err, ErrAmbiguousRate)
	})
}

func TestNewFixedRate(t *testing.T) {
	_, err := NewFixedRate(d("-1"))
	assert.ErrorIs(t, err, ErrNegativeAmount)

	r, err := NewFixedRate(d("0"))
	require.NoError(t, err)
	assert.True(t, r.ResolveAgainst(d("100000")).IsZero())
}

func TestNewPercentageRate(t *testing.T) {
	_, err := NewPercentageRate(d("-0.01"))
	assert.ErrorIs(t, err, ErrInvalidPercentage)

	_, err = NewPercentageRate(d("100.01"))
	assert.ErrorIs(t, err, ErrInvalidPercentage)

	_, err = NewPercentageRate(d("100"))
	assert.NoError(t, err)
}

func TestRateResolveAgainst(t *testing.T) {
	cases := []struct {
		name string
		rate func() Rate
		base string
		want string
	}{
		{
			name: "fixed ignores base",
			rate: func() Rate { r, _ := NewFixedRate(d("3000")); return r },
			base: "85000",
			want: "3000",
		},
		{
			name: "twenty percent",
			rate: func() Rate { r, _ := NewPercentageRate(d("20")); return r },
			base: "100000",
			want: "20000",
		},
		{
			name: "five percent",
			rate: func() Rate { r, _ := NewPercentageRate(d("5")); return r },
			base: "85000",
			want: "4250",
		},
		{
			name: "fractional percentage",
			rate: func() Rate { r, _ := NewPercentageRate(d("2.5")); return r },
			base: "10000",
			want: "250",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.rate().ResolveAgainst(d(c.base))
			assert.True(t, got.Equal(d(c.want)), "got %s, want %s", got, c.want)
		})
	}
}

func TestRateDetails(t *testing.T) {
	fixed, _ := NewFixedRate(d("3000"))
	assert.Equal(t, "fixed amount", fixed.Details())

	pct, _ := NewPercentageRate(d("12.5"))
	assert.Equal(t, "12.5% of base salary", pct.Details())
}
