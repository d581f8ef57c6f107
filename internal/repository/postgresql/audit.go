package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/audit"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

// NewAuditRepository creates the audit_logs sink
func NewAuditRepository(db *database.DB) audit.Sink {
	return &auditRepository{db: db}
}

// CreateBatch inserts multiple audit facts in a single statement
func (r *auditRepository) CreateBatch(ctx context.Context, facts []audit.Fact) error {
	if len(facts) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	// Build batch insert query
	valueStrings := make([]string, 0, len(facts))
	valueArgs := make([]interface{}, 0, len(facts)*9)

	for i, f := range facts {
		oldJSON, err := marshalValues(f.OldValues)
		if err != nil {
			return fmt.Errorf("failed to marshal audit old values: %w", err)
		}
		newJSON, err := marshalValues(f.NewValues)
		if err != nil {
			return fmt.Errorf("failed to marshal audit new values: %w", err)
		}

		var actor *string
		if f.Actor != "" {
			actor = &f.Actor
		}

		base := i * 9
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9,
		))
		valueArgs = append(valueArgs,
			f.ID,
			actor,
			f.Action,
			f.Entity,
			f.EntityID,
			oldJSON,
			newJSON,
			f.Description,
			f.OccurredAt,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, old_values, new_values, description, created_at)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("failed to batch create audit logs: %w", err)
	}

	return nil
}

func marshalValues(values map[string]interface{}) ([]byte, error) {
	if values == nil {
		return nil, nil
	}
	return json.Marshal(values)
}
