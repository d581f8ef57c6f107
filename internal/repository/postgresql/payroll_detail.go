package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const detailColumns = `
	pd.id, pd.payroll_cycle_id, pd.employee_id, pd.base_pay,
	pd.bonus, pd.bonus_reason, pd.deduction, pd.deduction_reason, pd.net_pay,
	pd.calculation_method, pd.days_worked, pd.daily_breakdown,
	pd.created_at, pd.updated_at, e.full_name`

type detailRepository struct {
	db *database.DB
}

func NewDetailRepository(db *database.DB) payroll.DetailRepository {
	return &detailRepository{db: db}
}

func scanDetail(row pgx.Row) (payroll.Detail, error) {
	var d payroll.Detail
	var method string
	var breakdownBytes []byte
	err := row.Scan(
		&d.ID, &d.CycleID, &d.EmployeeID, &d.BasePay,
		&d.Bonus, &d.BonusReason, &d.Deduction, &d.DeductionReason, &d.NetPay,
		&method, &d.DaysWorked, &breakdownBytes,
		&d.CreatedAt, &d.UpdatedAt, &d.EmployeeName,
	)
	if err != nil {
		return payroll.Detail{}, err
	}
	d.CalculationMethod = payroll.CalculationMethod(method)
	if breakdownBytes != nil {
		if err := json.Unmarshal(breakdownBytes, &d.DailyBreakdown); err != nil {
			return payroll.Detail{}, fmt.Errorf("failed to unmarshal daily breakdown: %w", err)
		}
	}
	return d, nil
}

func (r *detailRepository) CreateBatch(ctx context.Context, details []payroll.Detail) ([]payroll.Detail, error) {
	if len(details) == 0 {
		return []payroll.Detail{}, nil
	}

	q := GetQuerier(ctx, r.db)

	// Build batch insert query
	const cols = 12
	valueStrings := make([]string, 0, len(details))
	valueArgs := make([]interface{}, 0, len(details)*cols)

	for i, d := range details {
		breakdownJSON, err := json.Marshal(d.DailyBreakdown)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal daily breakdown: %w", err)
		}

		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", i*cols+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")
		valueArgs = append(valueArgs,
			d.ID, d.CycleID, d.EmployeeID, d.BasePay,
			d.Bonus, d.BonusReason, d.Deduction, d.DeductionReason, d.NetPay,
			string(d.CalculationMethod), d.DaysWorked, breakdownJSON,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO payroll_details (
			id, payroll_cycle_id, employee_id, base_pay,
			bonus, bonus_reason, deduction, deduction_reason, net_pay,
			calculation_method, days_worked, daily_breakdown
		) VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
		if constraint, ok := constraintViolation(err, pgUniqueViolation); ok && constraint == "uk_payroll_details_cycle_employee" {
			return nil, &payroll.ConflictError{Err: payroll.ErrDetailAlreadyExists, Entity: "payroll_cycle", EntityID: details[0].CycleID}
		}
		return nil, fmt.Errorf("failed to batch create payroll details: %w", err)
	}

	// Read back through the same querier so the caller sees server-side timestamps.
	return r.ListByCycle(ctx, details[0].CycleID)
}

func (r *detailRepository) getByID(ctx context.Context, id string, lock string) (payroll.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + detailColumns + `
		FROM payroll_details pd
		JOIN employees e ON e.id = pd.employee_id
		WHERE pd.id = $1` + lock

	d, err := scanDetail(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Detail{}, payroll.ErrDetailNotFound
		}
		return payroll.Detail{}, fmt.Errorf("failed to get payroll detail: %w", err)
	}

	return d, nil
}

func (r *detailRepository) GetByID(ctx context.Context, id string) (payroll.Detail, error) {
	return r.getByID(ctx, id, "")
}

func (r *detailRepository) GetByIDForUpdate(ctx context.Context, id string) (payroll.Detail, error) {
	return r.getByID(ctx, id, " FOR UPDATE OF pd")
}

func (r *detailRepository) ListByCycle(ctx context.Context, cycleID string) ([]payroll.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + detailColumns + `
		FROM payroll_details pd
		JOIN employees e ON e.id = pd.employee_id
		WHERE pd.payroll_cycle_id = $1
		ORDER BY e.full_name, pd.employee_id
	`

	rows, err := q.Query(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll details: %w", err)
	}
	defer rows.Close()

	details := make([]payroll.Detail, 0)
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll detail: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll details: %w", err)
	}

	return details, nil
}

func (r *detailRepository) ExistsForCycle(ctx context.Context, cycleID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payroll_details WHERE payroll_cycle_id = $1)`, cycleID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll details: %w", err)
	}

	return exists, nil
}

func (r *detailRepository) UpdateAdjustments(ctx context.Context, detail payroll.Detail) (payroll.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_details
		SET bonus = $2, bonus_reason = $3, deduction = $4, deduction_reason = $5, net_pay = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		detail.ID, detail.Bonus, detail.BonusReason, detail.Deduction, detail.DeductionReason, detail.NetPay,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Detail{}, payroll.ErrDetailNotFound
		}
		if constraint, ok := constraintViolation(err, pgCheckViolation); ok && constraint == "chk_payroll_details_net_pay" {
			var name string
			if detail.EmployeeName != nil {
				name = *detail.EmployeeName
			}
			return payroll.Detail{}, &payroll.IntegrityError{
				Err: payroll.ErrNegativeNetPay,
				Offenders: []payroll.NegativeNetPay{{
					DetailID:   detail.ID,
					EmployeeID: detail.EmployeeID,
					FullName:   name,
					NetPay:     detail.NetPay,
				}},
			}
		}
		return payroll.Detail{}, fmt.Errorf("failed to update payroll detail: %w", err)
	}

	return r.getByID(ctx, updatedID, "")
}
