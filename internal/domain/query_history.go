package domain

import "time"

// HistoryEntry is an immutable audit trail record for a query. Entries are
// append-only; insertion order is the only meaningful order.
type HistoryEntry struct {
	ID          string
	QueryID     string
	Action      string
	PerformedBy string
	Note        string
	Timestamp   time.Time
}
