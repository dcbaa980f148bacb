package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/audit"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.Logger {
	return &auditRepositoryImpl{db: db}
}

// Record appends the entries. An empty batch is a no-op so callers can diff
// unconditionally.
func (r *auditRepositoryImpl) Record(ctx context.Context, entries []audit.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_entries (id, company_id, table_name, row_id, field, old_value, new_value, actor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, entry := range entries {
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		_, err := q.Exec(ctx, query,
			entry.ID, entry.CompanyID, entry.TableName, entry.RowID,
			entry.Field, entry.OldValue, entry.NewValue, entry.Actor,
		)
		if err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}
	}

	return nil
}
