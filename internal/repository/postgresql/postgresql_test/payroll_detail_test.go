package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetail(t *testing.T, cycleID, employeeID string, basePay string) payroll.Detail {
	id, err := uuid.NewV7()
	require.NoError(t, err)
	base := decimal.RequireFromString(basePay)
	return payroll.Detail{
		ID:                id.String(),
		CycleID:           cycleID,
		EmployeeID:        employeeID,
		BasePay:           base,
		Bonus:             decimal.Zero,
		Deduction:         decimal.Zero,
		NetPay:            base,
		CalculationMethod: payroll.MethodMixed,
		DaysWorked:        2,
		DailyBreakdown: []payroll.DailyCalculation{
			{Date: "2025-01-02", Hours: decimal.RequireFromString("4.5"), Method: payroll.MethodHourly, Amount: decimal.RequireFromString("225")},
			{Date: "2025-01-03", Hours: decimal.RequireFromString("9"), Method: payroll.MethodDaily, Amount: decimal.RequireFromString("500")},
		},
	}
}

func seedCycle(t *testing.T, repo payroll.CycleRepository) payroll.Cycle {
	t.Helper()
	cycle, err := repo.Create(context.Background(), newCycle(t, "January 2025 (1)", "2025-01-01", "2025-01-15"))
	require.NoError(t, err)
	return cycle
}

func TestDetailRepository_CreateBatchAndList(t *testing.T) {
	db := openTestDB(t)
	truncatePayrollTables(t, db)
	ctx := context.Background()
	cycle := seedCycle(t, postgresql.NewCycleRepository(db))
	repo := postgresql.NewDetailRepository(db)

	anan := seedEmployee(t, db, "Anan")
	benja := seedEmployee(t, db, "Benja")

	created, err := repo.CreateBatch(ctx, []payroll.Detail{
		newDetail(t, cycle.ID, benja, "725.00"),
		newDetail(t, cycle.ID, anan, "100.50"),
	})
	require.NoError(t, err)
	require.Len(t, created, 2)

	first := created[0]
	require.NotNil(t, first.EmployeeName)
	assert.Equal(t, "Anan", *first.EmployeeName, "ordered by employee name")
	assert.Equal(t, "100.50", first.BasePay.StringFixed(2))
	assert.Equal(t, "100.50", first.NetPay.StringFixed(2))
	assert.True(t, first.Bonus.IsZero())
	assert.Equal(t, payroll.MethodMixed, first.CalculationMethod)
	assert.Equal(t, 2, first.DaysWorked)
	assert.False(t, first.CreatedAt.IsZero())

	require.Len(t, first.DailyBreakdown, 2)
	assert.Equal(t, "2025-01-02", first.DailyBreakdown[0].Date)
	assert.True(t, decimal.RequireFromString("4.5").Equal(first.DailyBreakdown[0].Hours))
	assert.True(t, decimal.RequireFromString("225").Equal(first.DailyBreakdown[0].Amount))
	assert.Equal(t, payroll.MethodDaily, first.DailyBreakdown[1].Method)

	exists, err := repo.ExistsForCycle(ctx, cycle.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, anan, got.EmployeeID)
}

func TestDetailRepository_CreateBatchDuplicateEmployee(t *testing.T) {
	db := openTestDB(t)
	truncatePayrollTables(t, db)
	ctx := context.Background()
	cycle := seedCycle(t, postgresql.NewCycleRepository(db))
	repo := postgresql.NewDetailRepository(db)

	anan := seedEmployee(t, db, "Anan")

	_, err := repo.CreateBatch(ctx, []payroll.Detail{newDetail(t, cycle.ID, anan, "100.00")})
	require.NoError(t, err)

	_, err = repo.CreateBatch(ctx, []payroll.Detail{newDetail(t, cycle.ID, anan, "100.00")})
	var conflict *payroll.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.ErrorIs(t, err, payroll.ErrDetailAlreadyExists)
	assert.Equal(t, "payroll_cycle", conflict.Entity)
	assert.Equal(t, cycle.ID, conflict.EntityID)
}

func TestDetailRepository_UpdateAdjustments(t *testing.T) {
	db := openTestDB(t)
	truncatePayrollTables(t, db)
	ctx := context.Background()
	cycle := seedCycle(t, postgresql.NewCycleRepository(db))
	repo := postgresql.NewDetailRepository(db)

	created, err := repo.CreateBatch(ctx, []payroll.Detail{newDetail(t, cycle.ID, seedEmployee(t, db, "Anan"), "100.00")})
	require.NoError(t, err)
	detail := created[0]

	reason := "Overtime"
	detail.Bonus = decimal.RequireFromString("25.25")
	detail.BonusReason = &reason
	detail.NetPay = detail.ComputeNetPay()

	updated, err := repo.UpdateAdjustments(ctx, detail)
	require.NoError(t, err)
	assert.Equal(t, "125.25", updated.NetPay.StringFixed(2))
	require.NotNil(t, updated.BonusReason)
	assert.Equal(t, "Overtime", *updated.BonusReason)
	assert.False(t, updated.UpdatedAt.Before(detail.UpdatedAt))
}

func TestDetailRepository_UpdateAdjustmentsNegativeNetPay(t *testing.T) {
	db := openTestDB(t)
	truncatePayrollTables(t, db)
	ctx := context.Background()
	cycle := seedCycle(t, postgresql.NewCycleRepository(db))
	repo := postgresql.NewDetailRepository(db)

	created, err := repo.CreateBatch(ctx, []payroll.Detail{newDetail(t, cycle.ID, seedEmployee(t, db, "Anan"), "100.00")})
	require.NoError(t, err)
	detail := created[0]

	reason := "Advance repayment"
	detail.Deduction = decimal.RequireFromString("300")
	detail.DeductionReason = &reason
	detail.NetPay = detail.ComputeNetPay()

	_, err = repo.UpdateAdjustments(ctx, detail)
	var integrity *payroll.IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.ErrorIs(t, err, payroll.ErrNegativeNetPay)
	require.Len(t, integrity.Offenders, 1)
	assert.Equal(t, detail.ID, integrity.Offenders[0].DetailID)
	assert.Equal(t, detail.EmployeeID, integrity.Offenders[0].EmployeeID)
	assert.Equal(t, "Anan", integrity.Offenders[0].FullName)
	assert.Equal(t, "-200.00", integrity.Offenders[0].NetPay.StringFixed(2))

	unchanged, err := repo.GetByID(ctx, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", unchanged.NetPay.StringFixed(2))
}

func TestDetailRepository_GetByIDForUpdateLocksRow(t *testing.T) {
	db := openTestDB(t)
	truncatePayrollTables(t, db)
	ctx := context.Background()
	cycle := seedCycle(t, postgresql.NewCycleRepository(db))
	repo := postgresql.NewDetailRepository(db)

	created, err := repo.CreateBatch(ctx, []payroll.Detail{newDetail(t, cycle.ID, seedEmployee(t, db, "Anan"), "100.00")})
	require.NoError(t, err)
	id := created[0].ID

	err = postgresql.NewTransactor(db).WithinTx(ctx, func(txCtx context.Context) error {
		locked, err := repo.GetByIDForUpdate(txCtx, id)
		require.NoError(t, err)
		assert.Equal(t, id, locked.ID)
		require.NotNil(t, locked.EmployeeName)

		// A second connection cannot take the same row lock.
		var other string
		err = db.QueryRow(ctx, `SELECT id FROM payroll_details WHERE id = $1 FOR UPDATE NOWAIT`, id).Scan(&other)
		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "55P03", pgErr.Code)
		return nil
	})
	require.NoError(t, err)

	missing, err := uuid.NewV7()
	require.NoError(t, err)
	_, err = repo.GetByIDForUpdate(ctx, missing.String())
	assert.ErrorIs(t, err, payroll.ErrDetailNotFound)
}
