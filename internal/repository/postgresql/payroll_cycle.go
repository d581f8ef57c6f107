package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// cycleCreateLockKey is the advisory lock taken while a cycle is being created.
const cycleCreateLockKey int64 = 0x7061797263796c65

const cycleColumns = `id, name, start_date, end_date, status, created_by, created_at, updated_at, finalized_at, finalized_by`

type cycleRepository struct {
	db *database.DB
}

func NewCycleRepository(db *database.DB) payroll.CycleRepository {
	return &cycleRepository{db: db}
}

func scanCycle(row pgx.Row) (payroll.Cycle, error) {
	var c payroll.Cycle
	var status string
	err := row.Scan(
		&c.ID, &c.Name, &c.StartDate, &c.EndDate, &status, &c.CreatedBy,
		&c.CreatedAt, &c.UpdatedAt, &c.FinalizedAt, &c.FinalizedBy,
	)
	if err != nil {
		return payroll.Cycle{}, err
	}
	c.Status = payroll.CycleStatus(status)
	return c, nil
}

func (r *cycleRepository) Create(ctx context.Context, cycle payroll.Cycle) (payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_cycles (id, name, start_date, end_date, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + cycleColumns

	created, err := scanCycle(q.QueryRow(ctx, query,
		cycle.ID, cycle.Name, cycle.StartDate, cycle.EndDate, string(cycle.Status), cycle.CreatedBy,
	))
	if err != nil {
		if constraint, ok := constraintViolation(err, pgUniqueViolation); ok && constraint == "uk_payroll_cycles_name" {
			return payroll.Cycle{}, &payroll.ConflictError{Err: payroll.ErrCycleNameExists, Entity: "payroll_cycle", Detail: cycle.Name}
		}
		if constraint, ok := constraintViolation(err, pgCheckViolation); ok && constraint == "chk_payroll_cycles_dates" {
			return payroll.Cycle{}, fmt.Errorf("failed to create payroll cycle: start_date must precede end_date: %w", err)
		}
		return payroll.Cycle{}, fmt.Errorf("failed to create payroll cycle: %w", err)
	}

	return created, nil
}

func (r *cycleRepository) getByID(ctx context.Context, id string, lock string) (payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cycleColumns + ` FROM payroll_cycles WHERE id = $1` + lock

	c, err := scanCycle(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Cycle{}, payroll.ErrCycleNotFound
		}
		return payroll.Cycle{}, fmt.Errorf("failed to get payroll cycle: %w", err)
	}

	return c, nil
}

func (r *cycleRepository) GetByID(ctx context.Context, id string) (payroll.Cycle, error) {
	return r.getByID(ctx, id, "")
}

func (r *cycleRepository) GetByIDForUpdate(ctx context.Context, id string) (payroll.Cycle, error) {
	return r.getByID(ctx, id, " FOR UPDATE")
}

func (r *cycleRepository) GetByIDForShare(ctx context.Context, id string) (payroll.Cycle, error) {
	return r.getByID(ctx, id, " FOR SHARE")
}

func (r *cycleRepository) List(ctx context.Context, filter payroll.CycleFilter) ([]payroll.Cycle, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count query
	var total int64
	countQuery := "SELECT COUNT(*) FROM payroll_cycles WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll cycles: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_cycles
		WHERE %s
		ORDER BY start_date DESC
		LIMIT $%d OFFSET $%d
	`, cycleColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll cycles: %w", err)
	}
	defer rows.Close()

	cycles := make([]payroll.Cycle, 0)
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll cycle: %w", err)
		}
		cycles = append(cycles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll cycles: %w", err)
	}

	return cycles, total, nil
}

func (r *cycleRepository) FindOverlapping(ctx context.Context, start, end time.Time) (*payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + cycleColumns + `
		FROM payroll_cycles
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date
		LIMIT 1
	`

	c, err := scanCycle(q.QueryRow(ctx, query, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find overlapping payroll cycle: %w", err)
	}

	return &c, nil
}

func (r *cycleRepository) FindByName(ctx context.Context, name string) (*payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cycleColumns + ` FROM payroll_cycles WHERE name = $1`

	c, err := scanCycle(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payroll cycle by name: %w", err)
	}

	return &c, nil
}

func (r *cycleRepository) LockForCreate(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, cycleCreateLockKey); err != nil {
		return fmt.Errorf("failed to lock payroll cycle creation: %w", err)
	}

	return nil
}

func (r *cycleRepository) MarkCompleted(ctx context.Context, id string, finalizedBy string, finalizedAt time.Time) (payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_cycles
		SET status = $2, finalized_by = $3, finalized_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
		RETURNING ` + cycleColumns

	c, err := scanCycle(q.QueryRow(ctx, query,
		id, string(payroll.CycleStatusCompleted), finalizedBy, finalizedAt, string(payroll.CycleStatusActive),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Cycle{}, &payroll.StateError{
				Err:     payroll.ErrCycleAlreadyCompleted,
				CycleID: id,
				Status:  payroll.CycleStatusCompleted,
				Event:   payroll.EventFinalize,
			}
		}
		return payroll.Cycle{}, fmt.Errorf("failed to finalize payroll cycle: %w", err)
	}

	return c, nil
}
