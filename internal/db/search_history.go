package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/medilink/backend/internal/model"
)

const searchHistorySelect = `
	SELECT s.id, s.user_id, u.name, s.query, s.search_type, s.created_at
	FROM search_history s
	LEFT JOIN users u ON u.id = s.user_id`

func (db *Postgres) ListSearchHistory(ctx context.Context, params model.SearchHistoryListParams) ([]model.SearchHistory, int64, error) {
	var w where
	if params.Search != "" {
		w.add(`s.query ILIKE $%d`, likePattern(params.Search))
	}
	if params.UserID > 0 {
		w.add(`s.user_id = $%d`, params.UserID)
	}
	if params.SearchType != "" {
		w.add(`s.search_type = $%d`, params.SearchType)
	}

	var total int64
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM search_history s`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, classify("db.ListSearchHistory", err)
	}

	limit, args := w.page(params.Limit, params.Offset())
	rows, err := db.Pool.Query(ctx, searchHistorySelect+w.String()+` ORDER BY s.created_at DESC, s.id DESC`+limit, args...)
	if err != nil {
		return nil, 0, classify("db.ListSearchHistory", err)
	}
	defer rows.Close()

	entries := make([]model.SearchHistory, 0, params.Limit)
	for rows.Next() {
		var e model.SearchHistory
		if err := rows.Scan(&e.ID, &e.UserID, &e.UserName, &e.Query, &e.SearchType, &e.CreatedAt); err != nil {
			return nil, 0, classify("db.ListSearchHistory", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify("db.ListSearchHistory", err)
	}
	return entries, total, nil
}

// RecordSearch stores a query. A nil userID records an anonymous search.
func (db *Postgres) RecordSearch(ctx context.Context, userID *int64, query string, searchType model.SearchType) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO search_history (user_id, query, search_type, created_at)
		VALUES ($1, $2, $3, NOW())
	`, userID, query, searchType)
	return classify("db.RecordSearch", err)
}

func (db *Postgres) DeleteSearchHistory(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM search_history WHERE id = $1`, id)
	if err != nil {
		return classify("db.DeleteSearchHistory", err)
	}
	if tag.RowsAffected() == 0 {
		return classify("db.DeleteSearchHistory", pgx.ErrNoRows)
	}
	return nil
}

func (db *Postgres) ClearUserSearchHistory(ctx context.Context, userID int64) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM search_history WHERE user_id = $1`, userID)
	if err != nil {
		return 0, classify("db.ClearUserSearchHistory", err)
	}
	return tag.RowsAffected(), nil
}

// PruneSearchHistory deletes entries created before cutoff.
func (db *Postgres) PruneSearchHistory(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM search_history WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, classify("db.PruneSearchHistory", err)
	}
	return tag.RowsAffected(), nil
}

func (db *Postgres) TopSearchQueries(ctx context.Context, limit int) ([]model.TopQuery, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT LOWER(query) AS q, COUNT(*) AS n
		FROM search_history
		GROUP BY q
		ORDER BY n DESC, q ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, classify("db.TopSearchQueries", err)
	}
	defer rows.Close()

	top := make([]model.TopQuery, 0, limit)
	for rows.Next() {
		var q model.TopQuery
		if err := rows.Scan(&q.Query, &q.Count); err != nil {
			return nil, classify("db.TopSearchQueries", err)
		}
		top = append(top, q)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("db.TopSearchQueries", err)
	}
	return top, nil
}

func (db *Postgres) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var s model.DashboardStats
	err := db.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE status = 'active'),
			(SELECT COUNT(*) FROM medicines),
			(SELECT COUNT(*) FROM reviews),
			(SELECT COUNT(*) FROM reviews WHERE status = 'pending'),
			(SELECT COUNT(*) FROM search_history),
			(SELECT COUNT(*) FROM search_history WHERE created_at >= NOW() - INTERVAL '24 hours')
	`).Scan(
		&s.Users,
		&s.ActiveUsers,
		&s.Medicines,
		&s.Reviews,
		&s.PendingReviews,
		&s.Searches,
		&s.SearchesToday,
	)
	if err != nil {
		return nil, classify("db.DashboardStats", err)
	}
	return &s, nil
}
