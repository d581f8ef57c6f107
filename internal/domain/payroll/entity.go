package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleStatus enum
type CycleStatus string

const (
	CycleStatusActive    CycleStatus = "active"
	CycleStatusCompleted CycleStatus = "completed"
)

// Cycle - Payroll period with an inclusive calendar date range
type Cycle struct {
	ID          string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Status      CycleStatus
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FinalizedAt *time.Time
	FinalizedBy *string
}

// CalculationMethod enum
type CalculationMethod string

const (
	MethodHourly CalculationMethod = "hourly"
	MethodDaily  CalculationMethod = "daily"
	MethodMixed  CalculationMethod = "mixed"
)

// DailyCalculation - One priced calendar day, kept at full precision
type DailyCalculation struct {
	Date       string            `json:"date"` // 2006-01-02
	Hours      decimal.Decimal   `json:"hours"`
	Method     CalculationMethod `json:"method"`
	Amount     decimal.Decimal   `json:"amount"`
	Unrateable bool              `json:"unrateable,omitempty"`
}

// Detail - Per-employee pay record within a cycle
type Detail struct {
	ID                string
	CycleID           string
	EmployeeID        string
	BasePay           decimal.Decimal
	Bonus             decimal.Decimal
	BonusReason       *string
	Deduction         decimal.Decimal
	DeductionReason   *string
	NetPay            decimal.Decimal
	CalculationMethod CalculationMethod
	DaysWorked        int
	DailyBreakdown    []DailyCalculation
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// ComputeNetPay returns base + bonus - deduction.
func (d Detail) ComputeNetPay() decimal.Decimal {
	return d.BasePay.Add(d.Bonus).Sub(d.Deduction)
}

// RateKind is the closed set of rate configurations an employee can have.
type RateKind int

const (
	RateNone RateKind = iota
	RateHourlyOnly
	RateDailyOnly
	RateBoth
)

func (k RateKind) String() string {
	switch k {
	case RateHourlyOnly:
		return "hourly_only"
	case RateDailyOnly:
		return "daily_only"
	case RateBoth:
		return "both"
	default:
		return "none"
	}
}

// Rates is an employee's rate profile resolved once at load time.
// Hourly is meaningful for RateHourlyOnly and RateBoth, Daily for RateDailyOnly and RateBoth.
type Rates struct {
	Kind   RateKind
	Hourly decimal.Decimal
	Daily  decimal.Decimal
}

// ResolveRates classifies nullable store columns into a Rates variant.
func ResolveRates(hourly, daily *decimal.Decimal) Rates {
	switch {
	case hourly != nil && daily != nil:
		return Rates{Kind: RateBoth, Hourly: *hourly, Daily: *daily}
	case hourly != nil:
		return Rates{Kind: RateHourlyOnly, Hourly: *hourly}
	case daily != nil:
		return Rates{Kind: RateDailyOnly, Daily: *daily}
	default:
		return Rates{Kind: RateNone}
	}
}

// NegativeNetPay - Finalization blocker for a single employee
type NegativeNetPay struct {
	DetailID   string          `json:"detail_id"`
	EmployeeID string          `json:"employee_id"`
	FullName   string          `json:"full_name"`
	NetPay     decimal.Decimal `json:"net_pay"`
}

// IssueType enum
type IssueType string

const (
	IssueNegativeNetPay IssueType = "negative_net_pay"
)

// ValidationIssue - Blocking condition found while checking finalization
type ValidationIssue struct {
	Type       IssueType       `json:"type"`
	EmployeeID string          `json:"employee_id"`
	FullName   string          `json:"full_name"`
	NetPay     decimal.Decimal `json:"net_pay"`
	Message    string          `json:"message"`
}
