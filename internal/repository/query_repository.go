package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/query-service/internal/domain"
)

// QueryFilter captures listing parameters.
type QueryFilter struct {
	Status     *domain.QueryStatus
	Tag        *domain.QueryTag
	Priority   *domain.QueryPriority
	Channel    *domain.Channel
	AssignedTo *string
}

// QueryRepository encapsulates query persistence and the grouped aggregation
// queries the analytics service fans out over.
type QueryRepository interface {
	Insert(ctx context.Context, query *domain.Query) error
	Update(ctx context.Context, query *domain.Query) error
	GetByID(ctx context.Context, id string) (*domain.Query, error)
	ListWithFilter(ctx context.Context, filter QueryFilter) ([]domain.Query, error)
	Delete(ctx context.Context, id string) (bool, error)

	CountAll(ctx context.Context) (int, error)
	CountResolved(ctx context.Context) (int, error)
	CountByTag(ctx context.Context) (map[domain.QueryTag]int, error)
	CountByStatus(ctx context.Context) (map[domain.QueryStatus]int, error)
	CountByPriority(ctx context.Context) (map[domain.QueryPriority]int, error)
	CountByChannel(ctx context.Context) (map[domain.Channel]int, error)
	AvgResponseTime(ctx context.Context) (float64, int, error)
	AvgResponseTimeByTag(ctx context.Context) (map[domain.QueryTag]float64, error)

	// WithTx rebinds the repository to an open transaction so a query write
	// and its history entry can commit or roll back together.
	WithTx(tx pgx.Tx) QueryRepository
}

type queryRepository struct {
	db DBTX
}

// NewQueryRepository instantiates repository.
func NewQueryRepository(pool *pgxpool.Pool) QueryRepository {
	return &queryRepository{db: pool}
}

func (r *queryRepository) WithTx(tx pgx.Tx) QueryRepository {
	if tx == nil {
		return r
	}
	return &queryRepository{db: tx}
}

const queryColumns = `id, channel, sender_name, sender_email, subject, message,
               tag, priority, status, assigned_to, assigned_to_name,
               created_at, updated_at, resolved_at, response_time`

func (r *queryRepository) Insert(ctx context.Context, query *domain.Query) error {
	const stmt = `
        INSERT INTO queries (channel, sender_name, sender_email, subject, message, tag, priority, status, assigned_to, assigned_to_name, resolved_at, response_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, stmt,
		query.Channel,
		query.SenderName,
		query.SenderEmail,
		query.Subject,
		query.Message,
		query.Tag,
		query.Priority,
		query.Status,
		query.AssignedTo,
		query.AssignedToName,
		query.ResolvedAt,
		query.ResponseTime,
	).Scan(&query.ID, &query.CreatedAt, &query.UpdatedAt)
}

func (r *queryRepository) Update(ctx context.Context, query *domain.Query) error {
	const stmt = `
        UPDATE queries SET status=$1, priority=$2, assigned_to=$3, assigned_to_name=$4,
            resolved_at=$5, response_time=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`
	err := r.db.QueryRow(ctx, stmt,
		query.Status,
		query.Priority,
		query.AssignedTo,
		query.AssignedToName,
		query.ResolvedAt,
		query.ResponseTime,
		query.ID,
	).Scan(&query.UpdatedAt)
	if err != nil {
		return err
	}
	return nil
}

func (r *queryRepository) GetByID(ctx context.Context, id string) (*domain.Query, error) {
	stmt := fmt.Sprintf(`SELECT %s FROM queries WHERE id=$1`, queryColumns)
	var query domain.Query
	if err := r.db.QueryRow(ctx, stmt, id).Scan(
		&query.ID,
		&query.Channel,
		&query.SenderName,
		&query.SenderEmail,
		&query.Subject,
		&query.Message,
		&query.Tag,
		&query.Priority,
		&query.Status,
		&query.AssignedTo,
		&query.AssignedToName,
		&query.CreatedAt,
		&query.UpdatedAt,
		&query.ResolvedAt,
		&query.ResponseTime,
	); err != nil {
		return nil, err
	}
	return &query, nil
}

func (r *queryRepository) ListWithFilter(ctx context.Context, filter QueryFilter) ([]domain.Query, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Tag != nil {
		args = append(args, *filter.Tag)
		clauses = append(clauses, fmt.Sprintf("tag=$%d", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		clauses = append(clauses, fmt.Sprintf("priority=$%d", len(args)))
	}
	if filter.Channel != nil {
		args = append(args, *filter.Channel)
		clauses = append(clauses, fmt.Sprintf("channel=$%d", len(args)))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		clauses = append(clauses, fmt.Sprintf("assigned_to=$%d", len(args)))
	}

	stmt := fmt.Sprintf(`SELECT %s FROM queries WHERE %s ORDER BY created_at DESC`,
		queryColumns, strings.Join(clauses, " AND "))

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanQueries(rows)
}

func (r *queryRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM queries WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *queryRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM queries`).Scan(&count)
	return count, err
}

func (r *queryRepository) CountResolved(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM queries WHERE status IN ('resolved','closed')`).Scan(&count)
	return count, err
}

func (r *queryRepository) CountByTag(ctx context.Context) (map[domain.QueryTag]int, error) {
	result := make(map[domain.QueryTag]int)
	rows, err := r.db.Query(ctx, `SELECT tag, COUNT(*) FROM queries GROUP BY tag`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var tag domain.QueryTag
		var count int
		if err := rows.Scan(&tag, &count); err != nil {
			return nil, err
		}
		result[tag] = count
	}
	return result, rows.Err()
}

func (r *queryRepository) CountByStatus(ctx context.Context) (map[domain.QueryStatus]int, error) {
	result := make(map[domain.QueryStatus]int)
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM queries GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status domain.QueryStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		result[status] = count
	}
	return result, rows.Err()
}

func (r *queryRepository) CountByPriority(ctx context.Context) (map[domain.QueryPriority]int, error) {
	result := make(map[domain.QueryPriority]int)
	rows, err := r.db.Query(ctx, `SELECT priority, COUNT(*) FROM queries GROUP BY priority`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var priority domain.QueryPriority
		var count int
		if err := rows.Scan(&priority, &count); err != nil {
			return nil, err
		}
		result[priority] = count
	}
	return result, rows.Err()
}

func (r *queryRepository) CountByChannel(ctx context.Context) (map[domain.Channel]int, error) {
	result := make(map[domain.Channel]int)
	rows, err := r.db.Query(ctx, `SELECT channel, COUNT(*) FROM queries GROUP BY channel`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var channel domain.Channel
		var count int
		if err := rows.Scan(&channel, &count); err != nil {
			return nil, err
		}
		result[channel] = count
	}
	return result, rows.Err()
}

// AvgResponseTime averages response_time over resolved or closed queries with
// a positive response time, returning the qualifying record count alongside.
func (r *queryRepository) AvgResponseTime(ctx context.Context) (float64, int, error) {
	const stmt = `
        SELECT COALESCE(AVG(response_time), 0), COUNT(*)
        FROM queries
        WHERE status IN ('resolved','closed') AND response_time > 0`
	var avg float64
	var count int
	if err := r.db.QueryRow(ctx, stmt).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}

func (r *queryRepository) AvgResponseTimeByTag(ctx context.Context) (map[domain.QueryTag]float64, error) {
	const stmt = `
        SELECT tag, AVG(response_time)
        FROM queries
        WHERE status IN ('resolved','closed') AND response_time > 0
        GROUP BY tag`
	result := make(map[domain.QueryTag]float64)
	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var tag domain.QueryTag
		var avg float64
		if err := rows.Scan(&tag, &avg); err != nil {
			return nil, err
		}
		result[tag] = avg
	}
	return result, rows.Err()
}

func scanQueries(rows pgx.Rows) ([]domain.Query, error) {
	var result []domain.Query
	for rows.Next() {
		var query domain.Query
		if err := rows.Scan(
			&query.ID,
			&query.Channel,
			&query.SenderName,
			&query.SenderEmail,
			&query.Subject,
			&query.Message,
			&query.Tag,
			&query.Priority,
			&query.Status,
			&query.AssignedTo,
			&query.AssignedToName,
			&query.CreatedAt,
			&query.UpdatedAt,
			&query.ResolvedAt,
			&query.ResponseTime,
		); err != nil {
			return nil, err
		}
		result = append(result, query)
	}
	return result, rows.Err()
}
