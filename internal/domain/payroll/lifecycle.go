package payroll

// Event is an operation requested against a cycle.
type Event string

const (
	EventCalculate Event = "calculate"
	EventAdjust    Event = "adjust"
	EventFinalize  Event = "finalize"
)

// Transition is the single gate every cycle operation passes through. hasDetails
// reports whether the cycle already owns detail rows. It returns the status the
// cycle will be in once the operation commits.
//
//	active (no details)  --calculate--> active (details)
//	active (details)     --adjust-----> active (details)
//	active (details)     --finalize---> completed
//	completed            --*----------> rejected
func Transition(c Cycle, event Event, hasDetails bool) (CycleStatus, error) {
	if c.Status == CycleStatusCompleted {
		if event == EventAdjust {
			return c.Status, &ConflictError{Err: ErrCycleAlreadyCompleted, Entity: "payroll_cycle", EntityID: c.ID}
		}
		return c.Status, &StateError{Err: ErrCycleAlreadyCompleted, CycleID: c.ID, Status: c.Status, Event: event}
	}
	if c.Status != CycleStatusActive {
		return c.Status, &StateError{Err: ErrInvalidTransition, CycleID: c.ID, Status: c.Status, Event: event}
	}

	switch event {
	case EventCalculate:
		if hasDetails {
			return c.Status, &ConflictError{Err: ErrCycleAlreadyCalculated, Entity: "payroll_cycle", EntityID: c.ID}
		}
		return CycleStatusActive, nil
	case EventAdjust:
		return CycleStatusActive, nil
	case EventFinalize:
		if !hasDetails {
			return c.Status, &StateError{Err: ErrCycleNotCalculated, CycleID: c.ID, Status: c.Status, Event: event}
		}
		return CycleStatusCompleted, nil
	default:
		return c.Status, &StateError{Err: ErrInvalidTransition, CycleID: c.ID, Status: c.Status, Event: event}
	}
}
