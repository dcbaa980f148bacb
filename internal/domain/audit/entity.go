package audit

import "time"

// Entry is one immutable field-level change record. The engine only appends;
// it never reads the trail back.
type Entry struct {
	ID        string
	CompanyID string
	TableName string
	RowID     string
	Field     string
	OldValue  string
	NewValue  string
	Actor     string
	CreatedAt time.Time
}
