package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// openTestDB connects to a database that already has the payroll migrations applied.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testDB != nil {
		return testDB
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(context.Background(), dsn, database.PoolConfig{MaxConns: 4, MinConns: 1})
	require.NoError(t, err, "failed to connect to test database")
	return testDB
}

func truncatePayrollTables(t *testing.T, db *database.DB) {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "TRUNCATE TABLE payroll_details, payroll_cycles, audit_logs CASCADE")
	require.NoError(t, err)

	require.NoError(t, tx.Commit(ctx))
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// seedEmployee inserts a company, an employee-role user and an active employee
// with an hourly rate, and returns the employee id. Core HRIS rows are left in
// place; every value that must be unique is derived from a fresh uuid.
func seedEmployee(t *testing.T, db *database.DB, fullName string) string {
	t.Helper()
	ctx := context.Background()
	suffix := uuid.NewString()

	var companyID string
	err := db.QueryRow(ctx, `
		INSERT INTO companies (id, name, username, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Payroll Test Company', $1, NOW(), NOW())
		RETURNING id
	`, "payroll-"+suffix).Scan(&companyID)
	require.NoError(t, err)

	var userID string
	err = db.QueryRow(ctx, `
		INSERT INTO users (id, company_id, email, password_hash, role, email_verified, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, 'not-a-real-hash', 'employee', true, NOW(), NOW())
		RETURNING id
	`, companyID, suffix+"@example.com").Scan(&userID)
	require.NoError(t, err)

	var employeeID string
	err = db.QueryRow(ctx, `
		INSERT INTO employees (
			user_id, company_id, employee_code, full_name,
			hire_date, employment_type, employment_status, hourly_rate
		) VALUES ($1, $2, $3, $4, '2024-01-01', 'permanent', 'active', 50)
		RETURNING id
	`, userID, companyID, "EMP-"+suffix[:8], fullName).Scan(&employeeID)
	require.NoError(t, err)

	return employeeID
}
