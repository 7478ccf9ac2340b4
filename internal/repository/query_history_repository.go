package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/query-service/internal/domain"
)

// QueryHistoryRepository stores the append-only audit trail. Entries are
// never edited or removed.
type QueryHistoryRepository interface {
	Append(ctx context.Context, entry *domain.HistoryEntry) error
	ListByQuery(ctx context.Context, queryID string) ([]domain.HistoryEntry, error)

	// WithTx rebinds the repository to an open transaction.
	WithTx(tx pgx.Tx) QueryHistoryRepository
}

type queryHistoryRepository struct {
	db DBTX
}

// NewQueryHistoryRepository constructs repository.
func NewQueryHistoryRepository(pool *pgxpool.Pool) QueryHistoryRepository {
	return &queryHistoryRepository{db: pool}
}

func (r *queryHistoryRepository) WithTx(tx pgx.Tx) QueryHistoryRepository {
	if tx == nil {
		return r
	}
	return &queryHistoryRepository{db: tx}
}

func (r *queryHistoryRepository) Append(ctx context.Context, entry *domain.HistoryEntry) error {
	const stmt = `
        INSERT INTO query_history (query_id, action, performed_by, note)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.db.QueryRow(ctx, stmt,
		entry.QueryID,
		entry.Action,
		entry.PerformedBy,
		entry.Note,
	).Scan(&entry.ID, &entry.Timestamp)
}

func (r *queryHistoryRepository) ListByQuery(ctx context.Context, queryID string) ([]domain.HistoryEntry, error) {
	const stmt = `
        SELECT id, query_id, action, performed_by, note, created_at
        FROM query_history WHERE query_id=$1 ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, stmt, queryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.QueryID, &entry.Action, &entry.PerformedBy, &entry.Note, &entry.Timestamp); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
