package audit

import "context"

// Logger is the append-only audit sink. Direct field edits are recorded;
// derived recomputation caused by those edits is not.
type Logger interface {
	Record(ctx context.Context, entries []Entry) error
}
