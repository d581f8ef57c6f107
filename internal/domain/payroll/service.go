package payroll

import "context"

// PayrollService is the cycle calculation and finalization surface used by the HTTP layer.
//
//go:generate mockgen -destination=mocks/mock_service.go -package=mock_payroll -source=service.go
type PayrollService interface {
	// Cycles
	CreateCycle(ctx context.Context, req CreateCycleRequest) (CycleResponse, error)
	GetCycle(ctx context.Context, id string) (CycleResponse, error)
	ListCycles(ctx context.Context, filter CycleFilter) (ListCycleResponse, error)

	// Calculation
	CalculateCycle(ctx context.Context, id string) (CalculationResponse, error)

	// Details
	ListDetails(ctx context.Context, cycleID string) ([]DetailResponse, error)
	GetDetail(ctx context.Context, id string) (DetailResponse, error)
	SetBonus(ctx context.Context, req SetAdjustmentRequest) (DetailResponse, error)
	SetDeduction(ctx context.Context, req SetAdjustmentRequest) (DetailResponse, error)
	ClearBonus(ctx context.Context, detailID string) (DetailResponse, error)
	ClearDeduction(ctx context.Context, detailID string) (DetailResponse, error)

	// Finalization
	ValidateFinalization(ctx context.Context, cycleID string) (FinalizationCheckResponse, error)
	FinalizeCycle(ctx context.Context, cycleID string) (CycleResponse, error)

	// Summary
	GetCycleSummary(ctx context.Context, cycleID string) (CycleSummaryResponse, error)
}
