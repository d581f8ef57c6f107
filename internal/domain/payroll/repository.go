package payroll

import (
	"context"
	"time"
)

// Transactor runs fn as one atomic unit. Repository calls made with the ctx
// passed to fn join the transaction.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mock_payroll -source=repository.go
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CycleRepository defines data access methods for payroll cycles.
type CycleRepository interface {
	Create(ctx context.Context, cycle Cycle) (Cycle, error)
	GetByID(ctx context.Context, id string) (Cycle, error)

	// GetByIDForUpdate locks the cycle row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (Cycle, error)

	// GetByIDForShare blocks finalization of the cycle until the surrounding
	// transaction ends while still letting other adjustments proceed.
	GetByIDForShare(ctx context.Context, id string) (Cycle, error)

	List(ctx context.Context, filter CycleFilter) ([]Cycle, int64, error)

	// FindOverlapping returns the first cycle whose range intersects [start, end], boundaries inclusive.
	FindOverlapping(ctx context.Context, start, end time.Time) (*Cycle, error)

	// FindByName returns the cycle using name, if any.
	FindByName(ctx context.Context, name string) (*Cycle, error)

	// LockForCreate serialises cycle creation for the rest of the transaction.
	LockForCreate(ctx context.Context) error

	MarkCompleted(ctx context.Context, id string, finalizedBy string, finalizedAt time.Time) (Cycle, error)
}

// DetailRepository defines data access methods for payroll details.
type DetailRepository interface {
	// CreateBatch inserts every detail or none.
	CreateBatch(ctx context.Context, details []Detail) ([]Detail, error)
	GetByID(ctx context.Context, id string) (Detail, error)

	// GetByIDForUpdate locks the detail row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (Detail, error)

	ListByCycle(ctx context.Context, cycleID string) ([]Detail, error)
	ExistsForCycle(ctx context.Context, cycleID string) (bool, error)
	UpdateAdjustments(ctx context.Context, detail Detail) (Detail, error)
}
