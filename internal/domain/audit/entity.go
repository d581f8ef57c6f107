package audit

import (
	"time"
)

// Action names emitted by the payroll engine
const (
	ActionCycleCreate           = "payroll_cycle.create"
	ActionCycleCalculate        = "payroll_cycle.calculate"
	ActionCycleFinalize         = "payroll_cycle.finalize"
	ActionDetailCreate          = "payroll_detail.create"
	ActionDetailUpdateBonus     = "payroll_detail.update_bonus"
	ActionDetailUpdateDeduction = "payroll_detail.update_deduction"
)

// Entity names
const (
	EntityPayrollCycle  = "payroll_cycle"
	EntityPayrollDetail = "payroll_detail"
)

// Fact is an audit-worthy event. It is recorded after the primary write commits.
type Fact struct {
	ID          string
	Actor       string
	Action      string
	Entity      string
	EntityID    string
	OldValues   map[string]interface{}
	NewValues   map[string]interface{}
	Description string
	OccurredAt  time.Time
}
