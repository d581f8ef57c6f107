package payroll

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CYCLE DTOs ==========

type CreateCycleRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreateCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	} else if len(strings.TrimSpace(r.Name)) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must be at most 255 characters"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if r.StartDate == "" {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if r.EndDate == "" {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}

	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be after start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed range. Only meaningful after Validate succeeds.
func (r *CreateCycleRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

type CycleFilter struct {
	Status *string `json:"status,omitempty"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

func (f *CycleFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{string(CycleStatusActive), string(CycleStatusCompleted)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'completed'"})
	}
	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "must be at least 1"})
	}
	if f.Limit < 1 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CycleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	FinalizedAt *string `json:"finalized_at,omitempty"`
	FinalizedBy *string `json:"finalized_by,omitempty"`
}

type ListCycleResponse struct {
	Data       []CycleResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// ValidateID rejects path identifiers that cannot name a stored record.
func ValidateID(field, id string) error {
	if !validator.IsValidUUID(id) {
		return validator.ValidationErrors{{Field: field, Message: "must be a valid UUID"}}
	}
	return nil
}

// ========== ADJUSTMENT DTOs ==========

type AdjustmentKind string

const (
	AdjustmentBonus     AdjustmentKind = "bonus"
	AdjustmentDeduction AdjustmentKind = "deduction"
)

func ValidateAdjustmentKind(kind AdjustmentKind) error {
	if kind == AdjustmentBonus || kind == AdjustmentDeduction {
		return nil
	}
	return validator.ValidationErrors{{Field: "kind", Message: "must be 'bonus' or 'deduction'"}}
}

type SetAdjustmentRequest struct {
	DetailID string          `json:"-"`
	Amount   decimal.Decimal `json:"amount"`
	Reason   *string         `json:"reason,omitempty"`
}

// Normalize trims the reason and treats a blank reason as absent.
func (r *SetAdjustmentRequest) Normalize() {
	if r.Reason == nil {
		return
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		r.Reason = nil
		return
	}
	r.Reason = &trimmed
}

func (r *SetAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DetailID) {
		errs = append(errs, validator.ValidationError{Field: "detail_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.DetailID) {
		errs = append(errs, validator.ValidationError{Field: "detail_id", Message: "must be a valid UUID"})
	}

	errs = append(errs, ValidateAdjustmentAmount(r.Amount, r.Reason)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateAdjustmentAmount enforces the amount/reason pairing shared by bonuses
// and deductions: negative amounts are rejected, a positive amount needs a
// reason and a zero amount (a clear) must not carry one.
func ValidateAdjustmentAmount(amount decimal.Decimal, reason *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	switch {
	case amount.IsNegative():
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	case amount.IsPositive() && (reason == nil || validator.IsEmpty(*reason)):
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required when amount is greater than zero"})
	case amount.IsZero() && reason != nil:
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "must be empty when amount is zero"})
	}
	if !validator.HasMaxDecimalPlaces(amount, 2) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must have at most 2 decimal places"})
	}

	return errs
}

// ========== DETAIL DTOs ==========

type DetailResponse struct {
	ID                string             `json:"id"`
	CycleID           string             `json:"cycle_id"`
	EmployeeID        string             `json:"employee_id"`
	FullName          string             `json:"full_name"`
	BasePay           decimal.Decimal    `json:"base_pay"`
	Bonus             decimal.Decimal    `json:"bonus"`
	BonusReason       *string            `json:"bonus_reason"`
	Deduction         decimal.Decimal    `json:"deduction"`
	DeductionReason   *string            `json:"deduction_reason"`
	NetPay            decimal.Decimal    `json:"net_pay"`
	CalculationMethod string             `json:"calculation_method"`
	DaysWorked        int                `json:"days_worked"`
	DailyBreakdown    []DailyCalculation `json:"daily_breakdown"`
}

type CalculationResponse struct {
	Cycle              CycleResponse    `json:"cycle"`
	TotalEmployees     int              `json:"total_employees"`
	TotalBasePay       decimal.Decimal  `json:"total_base_pay"`
	AnomalousIntervals int              `json:"anomalous_intervals"`
	Details            []DetailResponse `json:"details"`
}

// ========== FINALIZATION / SUMMARY DTOs ==========

type FinalizationCheckResponse struct {
	TotalEmployees              int               `json:"total_employees"`
	TotalNetPay                 decimal.Decimal   `json:"total_net_pay"`
	CanFinalize                 bool              `json:"can_finalize"`
	EmployeesWithNegativeNetPay []NegativeNetPay  `json:"employees_with_negative_net_pay"`
	ValidationIssues            []ValidationIssue `json:"validation_issues"`
}

type SummaryCycleInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

type SummaryTotals struct {
	TotalEmployees  int             `json:"total_employees"`
	TotalBasePay    decimal.Decimal `json:"total_base_pay"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
}

type SummaryValidation struct {
	CanFinalize                 bool              `json:"can_finalize"`
	EmployeesWithNegativeNetPay int               `json:"employees_with_negative_net_pay"`
	ValidationIssues            []ValidationIssue `json:"validation_issues"`
}

type CycleSummaryResponse struct {
	CycleInfo       SummaryCycleInfo  `json:"cycle_info"`
	Totals          SummaryTotals     `json:"totals"`
	Validation      SummaryValidation `json:"validation"`
	EmployeeDetails []DetailResponse  `json:"employee_details"`
}
