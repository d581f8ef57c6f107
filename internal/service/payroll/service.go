package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/audit"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type PayrollServiceImpl struct {
	tx             payroll.Transactor
	cycleRepo      payroll.CycleRepository
	detailRepo     payroll.DetailRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	auditor        audit.Publisher
	location       *time.Location
	now            func() time.Time
}

func NewPayrollService(
	tx payroll.Transactor,
	cycleRepo payroll.CycleRepository,
	detailRepo payroll.DetailRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	auditor audit.Publisher,
	location *time.Location,
) payroll.PayrollService {
	if location == nil {
		location = time.UTC
	}
	return &PayrollServiceImpl{
		tx:             tx,
		cycleRepo:      cycleRepo,
		detailRepo:     detailRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		auditor:        auditor,
		location:       location,
		now:            time.Now,
	}
}

// Helper to get the acting user from JWT context
func actorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", payroll.ErrActorRequired, err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", payroll.ErrActorRequired
	}

	return userID, nil
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// ========== CYCLES ==========

func (s *PayrollServiceImpl) CreateCycle(ctx context.Context, req payroll.CreateCycleRequest) (payroll.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CycleResponse{}, err
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	start, end := req.Dates()

	var created payroll.Cycle
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.cycleRepo.LockForCreate(txCtx); err != nil {
			return err
		}

		overlapping, err := s.cycleRepo.FindOverlapping(txCtx, start, end)
		if err != nil {
			return fmt.Errorf("failed to check overlapping cycles: %w", err)
		}
		if overlapping != nil {
			return &payroll.ConflictError{
				Err:      payroll.ErrCycleOverlap,
				Entity:   audit.EntityPayrollCycle,
				EntityID: overlapping.ID,
				Detail: fmt.Sprintf("%s (%s to %s)", overlapping.Name,
					overlapping.StartDate.Format(dateLayout), overlapping.EndDate.Format(dateLayout)),
			}
		}

		sameName, err := s.cycleRepo.FindByName(txCtx, name)
		if err != nil {
			return fmt.Errorf("failed to check cycle name: %w", err)
		}
		if sameName != nil {
			return &payroll.ConflictError{
				Err:      payroll.ErrCycleNameExists,
				Entity:   audit.EntityPayrollCycle,
				EntityID: sameName.ID,
				Detail:   sameName.Name,
			}
		}

		id, err := newID()
		if err != nil {
			return err
		}

		created, err = s.cycleRepo.Create(txCtx, payroll.Cycle{
			ID:        id,
			Name:      name,
			StartDate: start,
			EndDate:   end,
			Status:    payroll.CycleStatusActive,
			CreatedBy: &actor,
		})
		return err
	})
	if err != nil {
		return payroll.CycleResponse{}, payroll.Dependency("create payroll cycle", err)
	}

	s.auditor.Publish(ctx, audit.Fact{
		Actor:     actor,
		Action:    audit.ActionCycleCreate,
		Entity:    audit.EntityPayrollCycle,
		EntityID:  created.ID,
		NewValues: cycleValues(created),
		Description: fmt.Sprintf("Created payroll cycle %s (%s to %s)", created.Name,
			created.StartDate.Format(dateLayout), created.EndDate.Format(dateLayout)),
	})

	return mapToCycleResponse(created), nil
}

func (s *PayrollServiceImpl) GetCycle(ctx context.Context, id string) (payroll.CycleResponse, error) {
	if err := payroll.ValidateID("id", id); err != nil {
		return payroll.CycleResponse{}, err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.CycleResponse{}, payroll.Dependency("get payroll cycle", err)
	}

	return mapToCycleResponse(cycle), nil
}

func (s *PayrollServiceImpl) ListCycles(ctx context.Context, filter payroll.CycleFilter) (payroll.ListCycleResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListCycleResponse{}, err
	}

	cycles, totalCount, err := s.cycleRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListCycleResponse{}, payroll.Dependency("list payroll cycles", err)
	}

	data := make([]payroll.CycleResponse, 0, len(cycles))
	for _, c := range cycles {
		data = append(data, mapToCycleResponse(c))
	}

	return payroll.ListCycleResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== CALCULATION ==========

func (s *PayrollServiceImpl) CalculateCycle(ctx context.Context, id string) (payroll.CalculationResponse, error) {
	if err := payroll.ValidateID("id", id); err != nil {
		return payroll.CalculationResponse{}, err
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return payroll.CalculationResponse{}, err
	}

	var (
		cycle   payroll.Cycle
		calc    Calculation
		created []payroll.Detail
	)
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		cycle, err = s.cycleRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		hasDetails, err := s.detailRepo.ExistsForCycle(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to check existing payroll details: %w", err)
		}
		if _, err := payroll.Transition(cycle, payroll.EventCalculate, hasDetails); err != nil {
			return err
		}

		profiles, err := s.employeeRepo.ListPayrollEligible(txCtx)
		if err != nil {
			return fmt.Errorf("failed to get eligible employees: %w", err)
		}
		employees := make([]employee.RateProfile, 0, len(profiles))
		employeeIDs := make([]string, 0, len(profiles))
		for _, p := range profiles {
			if !p.HasRate() {
				slog.Warn("Skipping employee without pay rate", "cycle_id", id, "employee_id", p.ID)
				continue
			}
			employees = append(employees, p)
			employeeIDs = append(employeeIDs, p.ID)
		}

		intervals, err := s.attendanceRepo.ListIntervals(txCtx, employeeIDs, cycle.StartDate, cycle.EndDate, s.location)
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}

		calc = CalculateCycle(cycle, employees, intervals, s.location)
		for i := range calc.Details {
			detailID, err := newID()
			if err != nil {
				return err
			}
			calc.Details[i].ID = detailID
		}

		created, err = s.detailRepo.CreateBatch(txCtx, calc.Details)
		return err
	})
	if err != nil {
		return payroll.CalculationResponse{}, payroll.Dependency("calculate payroll cycle", err)
	}

	for _, a := range calc.Anomalies {
		slog.Warn("Anomalous attendance interval ignored",
			"cycle_id", id, "employee_id", a.EmployeeID, "interval_id", a.IntervalID,
			"clock_in", a.ClockIn, "clock_out", a.ClockOut)
	}
	for _, u := range calc.Unrateable {
		slog.Warn("Worked day has no usable rate", "cycle_id", id, "employee_id", u.EmployeeID, "date", u.Date)
	}
	slog.Info("Payroll cycle calculated", "cycle_id", id, "employees", len(created), "anomalies", len(calc.Anomalies))

	total := calc.TotalBasePay()
	facts := make([]audit.Fact, 0, len(created)+1)
	facts = append(facts, audit.Fact{
		Actor:    actor,
		Action:   audit.ActionCycleCalculate,
		Entity:   audit.EntityPayrollCycle,
		EntityID: cycle.ID,
		NewValues: map[string]interface{}{
			"total_employees":     len(created),
			"total_base_pay":      total.StringFixed(2),
			"anomalous_intervals": len(calc.Anomalies),
		},
		Description: fmt.Sprintf("Calculated payroll cycle %s for %d employees", cycle.Name, len(created)),
	})
	for _, d := range created {
		facts = append(facts, audit.Fact{
			Actor:     actor,
			Action:    audit.ActionDetailCreate,
			Entity:    audit.EntityPayrollDetail,
			EntityID:  d.ID,
			NewValues: detailValues(d),
			Description: fmt.Sprintf("Created payroll detail for employee %s in cycle %s (base pay %s, %s)",
				d.EmployeeID, cycle.Name, d.BasePay.StringFixed(2), d.CalculationMethod),
		})
	}
	s.auditor.Publish(ctx, facts...)

	return payroll.CalculationResponse{
		Cycle:              mapToCycleResponse(cycle),
		TotalEmployees:     len(created),
		TotalBasePay:       total,
		AnomalousIntervals: len(calc.Anomalies),
		Details:            mapToDetailResponses(created),
	}, nil
}

// ========== DETAILS ==========

func (s *PayrollServiceImpl) ListDetails(ctx context.Context, cycleID string) ([]payroll.DetailResponse, error) {
	if err := payroll.ValidateID("cycle_id", cycleID); err != nil {
		return nil, err
	}

	if _, err := s.cycleRepo.GetByID(ctx, cycleID); err != nil {
		return nil, payroll.Dependency("get payroll cycle", err)
	}

	details, err := s.detailRepo.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, payroll.Dependency("list payroll details", err)
	}

	return mapToDetailResponses(details), nil
}

func (s *PayrollServiceImpl) GetDetail(ctx context.Context, id string) (payroll.DetailResponse, error) {
	if err := payroll.ValidateID("id", id); err != nil {
		return payroll.DetailResponse{}, err
	}

	detail, err := s.detailRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.DetailResponse{}, payroll.Dependency("get payroll detail", err)
	}

	return mapToDetailResponse(detail), nil
}

func (s *PayrollServiceImpl) SetBonus(ctx context.Context, req payroll.SetAdjustmentRequest) (payroll.DetailResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return payroll.DetailResponse{}, err
	}

	return s.adjust(ctx, req.DetailID, Adjustment{Kind: payroll.AdjustmentBonus, Amount: req.Amount, Reason: req.Reason})
}

func (s *PayrollServiceImpl) SetDeduction(ctx context.Context, req payroll.SetAdjustmentRequest) (payroll.DetailResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return payroll.DetailResponse{}, err
	}

	return s.adjust(ctx, req.DetailID, Adjustment{Kind: payroll.AdjustmentDeduction, Amount: req.Amount, Reason: req.Reason})
}

func (s *PayrollServiceImpl) ClearBonus(ctx context.Context, detailID string) (payroll.DetailResponse, error) {
	return s.adjust(ctx, detailID, ClearAdjustment(payroll.AdjustmentBonus))
}

func (s *PayrollServiceImpl) ClearDeduction(ctx context.Context, detailID string) (payroll.DetailResponse, error) {
	return s.adjust(ctx, detailID, ClearAdjustment(payroll.AdjustmentDeduction))
}

// adjust re-reads the detail under a row lock so the net pay guard never runs on a stale record.
func (s *PayrollServiceImpl) adjust(ctx context.Context, detailID string, adj Adjustment) (payroll.DetailResponse, error) {
	if err := payroll.ValidateID("detail_id", detailID); err != nil {
		return payroll.DetailResponse{}, err
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return payroll.DetailResponse{}, err
	}

	var before, after payroll.Detail
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		owner, err := s.detailRepo.GetByID(txCtx, detailID)
		if err != nil {
			return err
		}

		// Cycle before detail, the same order finalization locks in.
		cycle, err := s.cycleRepo.GetByIDForShare(txCtx, owner.CycleID)
		if err != nil {
			return err
		}
		if _, err := payroll.Transition(cycle, payroll.EventAdjust, true); err != nil {
			return err
		}

		before, err = s.detailRepo.GetByIDForUpdate(txCtx, detailID)
		if err != nil {
			return err
		}

		candidate, err := ApplyAdjustment(before, adj)
		if err != nil {
			return err
		}

		after, err = s.detailRepo.UpdateAdjustments(txCtx, candidate)
		return err
	})
	if err != nil {
		return payroll.DetailResponse{}, payroll.Dependency("adjust payroll detail", err)
	}

	action := audit.ActionDetailUpdateBonus
	if adj.Kind == payroll.AdjustmentDeduction {
		action = audit.ActionDetailUpdateDeduction
	}
	s.auditor.Publish(ctx, audit.Fact{
		Actor:     actor,
		Action:    action,
		Entity:    audit.EntityPayrollDetail,
		EntityID:  after.ID,
		OldValues: adjustmentValues(before, adj.Kind),
		NewValues: adjustmentValues(after, adj.Kind),
		Description: fmt.Sprintf("Set %s for employee %s to %s (net pay %s -> %s)",
			adj.Kind, after.EmployeeID, adj.Amount.StringFixed(2), before.NetPay.StringFixed(2), after.NetPay.StringFixed(2)),
	})

	return mapToDetailResponse(after), nil
}

// ========== FINALIZATION ==========

func (s *PayrollServiceImpl) ValidateFinalization(ctx context.Context, cycleID string) (payroll.FinalizationCheckResponse, error) {
	if err := payroll.ValidateID("cycle_id", cycleID); err != nil {
		return payroll.FinalizationCheckResponse{}, err
	}

	if _, err := s.cycleRepo.GetByID(ctx, cycleID); err != nil {
		return payroll.FinalizationCheckResponse{}, payroll.Dependency("get payroll cycle", err)
	}

	details, err := s.detailRepo.ListByCycle(ctx, cycleID)
	if err != nil {
		return payroll.FinalizationCheckResponse{}, payroll.Dependency("list payroll details", err)
	}

	report := CheckFinalization(details)
	return payroll.FinalizationCheckResponse{
		TotalEmployees:              report.TotalEmployees,
		TotalNetPay:                 report.TotalNetPay,
		CanFinalize:                 report.CanFinalize(),
		EmployeesWithNegativeNetPay: report.Offenders,
		ValidationIssues:            report.Issues,
	}, nil
}

func (s *PayrollServiceImpl) FinalizeCycle(ctx context.Context, cycleID string) (payroll.CycleResponse, error) {
	if err := payroll.ValidateID("cycle_id", cycleID); err != nil {
		return payroll.CycleResponse{}, err
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	var (
		before    payroll.Cycle
		finalized payroll.Cycle
		report    FinalizationReport
	)
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		before, err = s.cycleRepo.GetByIDForUpdate(txCtx, cycleID)
		if err != nil {
			return err
		}

		details, err := s.detailRepo.ListByCycle(txCtx, cycleID)
		if err != nil {
			return fmt.Errorf("failed to list payroll details: %w", err)
		}

		next, err := payroll.Transition(before, payroll.EventFinalize, len(details) > 0)
		if err != nil {
			return err
		}

		report = CheckFinalization(details)
		if !report.CanFinalize() {
			return &payroll.IntegrityError{Err: payroll.ErrNegativeNetPay, Offenders: report.Offenders}
		}

		if next != payroll.CycleStatusCompleted {
			return &payroll.StateError{Err: payroll.ErrInvalidTransition, CycleID: cycleID, Status: before.Status, Event: payroll.EventFinalize}
		}

		finalized, err = s.cycleRepo.MarkCompleted(txCtx, cycleID, actor, s.now())
		return err
	})
	if err != nil {
		return payroll.CycleResponse{}, payroll.Dependency("finalize payroll cycle", err)
	}

	slog.Info("Payroll cycle finalized", "cycle_id", cycleID, "employees", report.TotalEmployees, "finalized_by", actor)

	newValues := cycleValues(finalized)
	newValues["total_employees"] = report.TotalEmployees
	newValues["total_net_pay"] = report.TotalNetPay.StringFixed(2)
	s.auditor.Publish(ctx, audit.Fact{
		Actor:       actor,
		Action:      audit.ActionCycleFinalize,
		Entity:      audit.EntityPayrollCycle,
		EntityID:    finalized.ID,
		OldValues:   cycleValues(before),
		NewValues:   newValues,
		Description: fmt.Sprintf("Finalized payroll cycle %s (%d employees, net pay %s)", finalized.Name, report.TotalEmployees, report.TotalNetPay.StringFixed(2)),
	})

	return mapToCycleResponse(finalized), nil
}

// ========== SUMMARY ==========

func (s *PayrollServiceImpl) GetCycleSummary(ctx context.Context, cycleID string) (payroll.CycleSummaryResponse, error) {
	if err := payroll.ValidateID("cycle_id", cycleID); err != nil {
		return payroll.CycleSummaryResponse{}, err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, cycleID)
	if err != nil {
		return payroll.CycleSummaryResponse{}, payroll.Dependency("get payroll cycle", err)
	}

	details, err := s.detailRepo.ListByCycle(ctx, cycleID)
	if err != nil {
		return payroll.CycleSummaryResponse{}, payroll.Dependency("list payroll details", err)
	}

	report := CheckFinalization(details)
	return payroll.CycleSummaryResponse{
		CycleInfo: payroll.SummaryCycleInfo{
			ID:        cycle.ID,
			Name:      cycle.Name,
			StartDate: cycle.StartDate.Format(dateLayout),
			EndDate:   cycle.EndDate.Format(dateLayout),
			Status:    string(cycle.Status),
		},
		Totals: Totals(details),
		Validation: payroll.SummaryValidation{
			CanFinalize:                 report.CanFinalize(),
			EmployeesWithNegativeNetPay: len(report.Offenders),
			ValidationIssues:            report.Issues,
		},
		EmployeeDetails: mapToDetailResponses(details),
	}, nil
}

// ========== HELPERS ==========

func cycleValues(c payroll.Cycle) map[string]interface{} {
	values := map[string]interface{}{
		"name":       c.Name,
		"start_date": c.StartDate.Format(dateLayout),
		"end_date":   c.EndDate.Format(dateLayout),
		"status":     string(c.Status),
	}
	if c.FinalizedAt != nil {
		values["finalized_at"] = c.FinalizedAt.Format(time.RFC3339)
	}
	if c.FinalizedBy != nil {
		values["finalized_by"] = *c.FinalizedBy
	}
	return values
}

func detailValues(d payroll.Detail) map[string]interface{} {
	return map[string]interface{}{
		"cycle_id":           d.CycleID,
		"employee_id":        d.EmployeeID,
		"base_pay":           d.BasePay.StringFixed(2),
		"net_pay":            d.NetPay.StringFixed(2),
		"calculation_method": string(d.CalculationMethod),
		"days_worked":        d.DaysWorked,
	}
}

func mapToCycleResponse(c payroll.Cycle) payroll.CycleResponse {
	var finalizedAtStr *string
	if c.FinalizedAt != nil {
		str := c.FinalizedAt.Format(time.RFC3339)
		finalizedAtStr = &str
	}

	return payroll.CycleResponse{
		ID:          c.ID,
		Name:        c.Name,
		StartDate:   c.StartDate.Format(dateLayout),
		EndDate:     c.EndDate.Format(dateLayout),
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		FinalizedAt: finalizedAtStr,
		FinalizedBy: c.FinalizedBy,
	}
}

func mapToDetailResponse(d payroll.Detail) payroll.DetailResponse {
	fullName := ""
	if d.EmployeeName != nil {
		fullName = *d.EmployeeName
	}

	breakdown := d.DailyBreakdown
	if breakdown == nil {
		breakdown = []payroll.DailyCalculation{}
	}

	return payroll.DetailResponse{
		ID:                d.ID,
		CycleID:           d.CycleID,
		EmployeeID:        d.EmployeeID,
		FullName:          fullName,
		BasePay:           d.BasePay,
		Bonus:             d.Bonus,
		BonusReason:       d.BonusReason,
		Deduction:         d.Deduction,
		DeductionReason:   d.DeductionReason,
		NetPay:            d.NetPay,
		CalculationMethod: string(d.CalculationMethod),
		DaysWorked:        d.DaysWorked,
		DailyBreakdown:    breakdown,
	}
}

func mapToDetailResponses(details []payroll.Detail) []payroll.DetailResponse {
	result := make([]payroll.DetailResponse, 0, len(details))
	for _, d := range details {
		result = append(result, mapToDetailResponse(d))
	}
	return result
}
