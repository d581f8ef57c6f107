package payroll

import (
	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Adjustment sets (or, with a zero amount and nil reason, clears) a bonus or deduction.
type Adjustment struct {
	Kind   payroll.AdjustmentKind
	Amount decimal.Decimal
	Reason *string
}

// ClearAdjustment is the adjustment that removes an existing bonus or deduction.
func ClearAdjustment(kind payroll.AdjustmentKind) Adjustment {
	return Adjustment{Kind: kind, Amount: decimal.Zero}
}

// ApplyAdjustment returns detail with adj applied and net pay recomputed. The
// input is never modified; on any error the caller keeps the original record.
func ApplyAdjustment(detail payroll.Detail, adj Adjustment) (payroll.Detail, error) {
	if errs := payroll.ValidateAdjustmentAmount(adj.Amount, adj.Reason); len(errs) > 0 {
		return detail, errs
	}

	candidate := detail
	switch adj.Kind {
	case payroll.AdjustmentBonus:
		candidate.Bonus = adj.Amount
		candidate.BonusReason = adj.Reason
	case payroll.AdjustmentDeduction:
		candidate.Deduction = adj.Amount
		candidate.DeductionReason = adj.Reason
	default:
		return detail, payroll.ValidateAdjustmentKind(adj.Kind)
	}
	candidate.NetPay = candidate.ComputeNetPay()

	// Clears pass through the same guard.
	if candidate.NetPay.IsNegative() {
		return detail, &payroll.IntegrityError{
			Err:       payroll.ErrNegativeNetPay,
			Offenders: []payroll.NegativeNetPay{negativeNetPayOf(candidate)},
		}
	}

	return candidate, nil
}

// adjustmentValues is the audit triple for one side of an adjustment.
func adjustmentValues(d payroll.Detail, kind payroll.AdjustmentKind) map[string]interface{} {
	values := map[string]interface{}{
		"net_pay": d.NetPay.StringFixed(2),
	}
	switch kind {
	case payroll.AdjustmentBonus:
		values["bonus"] = d.Bonus.StringFixed(2)
		values["bonus_reason"] = d.BonusReason
	case payroll.AdjustmentDeduction:
		values["deduction"] = d.Deduction.StringFixed(2)
		values["deduction_reason"] = d.DeductionReason
	}
	return values
}

func negativeNetPayOf(d payroll.Detail) payroll.NegativeNetPay {
	name := ""
	if d.EmployeeName != nil {
		name = *d.EmployeeName
	}
	return payroll.NegativeNetPay{
		DetailID:   d.ID,
		EmployeeID: d.EmployeeID,
		FullName:   name,
		NetPay:     d.NetPay,
	}
}
