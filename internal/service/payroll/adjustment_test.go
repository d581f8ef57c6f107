package payroll

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseDetail() payroll.Detail {
	name := "Somchai"
	d := payroll.Detail{
		ID:                "detail-1",
		CycleID:           "cycle-1",
		EmployeeID:        "e1",
		BasePay:           dec("30000"),
		Bonus:             decimal.Zero,
		Deduction:         dec("500"),
		DeductionReason:   strPtr("late"),
		CalculationMethod: payroll.MethodDaily,
		EmployeeName:      &name,
	}
	d.NetPay = d.ComputeNetPay()
	return d
}

func TestApplyAdjustment_BonusThenRejectedDeduction(t *testing.T) {
	d := baseDetail()
	require.Equal(t, "29500.00", d.NetPay.StringFixed(2))

	withBonus, err := ApplyAdjustment(d, Adjustment{Kind: payroll.AdjustmentBonus, Amount: dec("2000"), Reason: strPtr("ผลงานดีเด่น")})
	require.NoError(t, err)
	assert.Equal(t, "31500.00", withBonus.NetPay.StringFixed(2))
	assert.Equal(t, "ผลงานดีเด่น", *withBonus.BonusReason)

	rejected, err := ApplyAdjustment(withBonus, Adjustment{Kind: payroll.AdjustmentDeduction, Amount: dec("35000"), Reason: strPtr("damage")})
	require.Error(t, err)

	var integrity *payroll.IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.ErrorIs(t, err, payroll.ErrNegativeNetPay)
	require.Len(t, integrity.Offenders, 1)
	assert.Equal(t, "e1", integrity.Offenders[0].EmployeeID)
	assert.Equal(t, "Somchai", integrity.Offenders[0].FullName)
	assert.Equal(t, "-3000.00", integrity.Offenders[0].NetPay.StringFixed(2))

	// The record handed back is the unchanged input.
	assert.Equal(t, "31500.00", rejected.NetPay.StringFixed(2))
	assert.Equal(t, "500", rejected.Deduction.String())
}

func TestApplyAdjustment_DoesNotMutateInput(t *testing.T) {
	d := baseDetail()

	_, err := ApplyAdjustment(d, Adjustment{Kind: payroll.AdjustmentBonus, Amount: dec("100"), Reason: strPtr("good")})
	require.NoError(t, err)

	assert.True(t, d.Bonus.IsZero())
	assert.Nil(t, d.BonusReason)
}

func TestApplyAdjustment_ReasonRules(t *testing.T) {
	tests := []struct {
		name   string
		adj    Adjustment
		field  string
		errMsg string
	}{
		{"Positive amount without reason", Adjustment{Kind: payroll.AdjustmentBonus, Amount: dec("100")}, "reason", "is required when amount is greater than zero"},
		{"Positive amount with blank reason", Adjustment{Kind: payroll.AdjustmentBonus, Amount: dec("100"), Reason: strPtr("  ")}, "reason", "is required when amount is greater than zero"},
		{"Zero amount with reason", Adjustment{Kind: payroll.AdjustmentDeduction, Amount: decimal.Zero, Reason: strPtr("oops")}, "reason", "must be empty when amount is zero"},
		{"Negative amount", Adjustment{Kind: payroll.AdjustmentBonus, Amount: dec("-1"), Reason: strPtr("x")}, "amount", "must be non-negative"},
		{"Too many decimal places", Adjustment{Kind: payroll.AdjustmentBonus, Amount: dec("1.005"), Reason: strPtr("x")}, "amount", "must have at most 2 decimal places"},
		{"Unknown kind", Adjustment{Kind: "allowance", Amount: dec("1"), Reason: strPtr("x")}, "kind", "must be 'bonus' or 'deduction'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := baseDetail()
			got, err := ApplyAdjustment(d, tt.adj)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
			assert.Equal(t, tt.errMsg, verrs.ToMap()[tt.field])
			assert.Equal(t, d.NetPay, got.NetPay)
		})
	}
}

func TestApplyAdjustment_Clear(t *testing.T) {
	d := baseDetail()

	cleared, err := ApplyAdjustment(d, ClearAdjustment(payroll.AdjustmentDeduction))
	require.NoError(t, err)
	assert.True(t, cleared.Deduction.IsZero())
	assert.Nil(t, cleared.DeductionReason)
	assert.Equal(t, "30000.00", cleared.NetPay.StringFixed(2))
}

func TestApplyAdjustment_NetPayNeverNegative(t *testing.T) {
	d := baseDetail()
	steps := []Adjustment{
		{Kind: payroll.AdjustmentDeduction, Amount: dec("29999.99"), Reason: strPtr("a")},
		{Kind: payroll.AdjustmentDeduction, Amount: dec("30000.01"), Reason: strPtr("b")},
		{Kind: payroll.AdjustmentBonus, Amount: dec("10"), Reason: strPtr("c")},
		{Kind: payroll.AdjustmentDeduction, Amount: dec("30010"), Reason: strPtr("d")},
		ClearAdjustment(payroll.AdjustmentBonus),
		ClearAdjustment(payroll.AdjustmentDeduction),
	}

	for _, adj := range steps {
		next, err := ApplyAdjustment(d, adj)
		if err == nil {
			d = next
		}
		assert.False(t, d.NetPay.IsNegative(), "net pay went negative after %+v", adj)
		assert.True(t, d.ComputeNetPay().Equal(d.NetPay))
	}
}

func TestAdjustmentValues(t *testing.T) {
	d := baseDetail()

	bonus := adjustmentValues(d, payroll.AdjustmentBonus)
	assert.Equal(t, "0.00", bonus["bonus"])
	assert.Equal(t, "29500.00", bonus["net_pay"])
	assert.NotContains(t, bonus, "deduction")

	deduction := adjustmentValues(d, payroll.AdjustmentDeduction)
	assert.Equal(t, "500.00", deduction["deduction"])
	assert.Equal(t, strPtr("late"), deduction["deduction_reason"])
}
