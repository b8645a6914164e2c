package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/medilink/backend/internal/model"
)

const reviewSelect = `
	SELECT r.id, r.user_id, COALESCE(u.name, ''), r.medicine_id, COALESCE(m.name, ''),
		r.rating, r.comment, r.status, r.created_at
	FROM reviews r
	LEFT JOIN users u ON u.id = r.user_id
	LEFT JOIN medicines m ON m.id = r.medicine_id`

func scanReview(row pgx.Row) (*model.Review, error) {
	var r model.Review
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.UserName,
		&r.MedicineID,
		&r.MedicineName,
		&r.Rating,
		&r.Comment,
		&r.Status,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (db *Postgres) ListReviews(ctx context.Context, params model.ReviewListParams) ([]model.Review, int64, error) {
	var w where
	if params.Search != "" {
		w.add(`(r.comment ILIKE $%[1]d OR u.name ILIKE $%[1]d OR m.name ILIKE $%[1]d)`, likePattern(params.Search))
	}
	if params.Status != "" {
		w.add(`r.status = $%d`, params.Status)
	}
	if params.MedicineID > 0 {
		w.add(`r.medicine_id = $%d`, params.MedicineID)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		LEFT JOIN medicines m ON m.id = r.medicine_id` + w.String()
	var total int64
	if err := db.Pool.QueryRow(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, classify("db.ListReviews", err)
	}

	limit, args := w.page(params.Limit, params.Offset())
	rows, err := db.Pool.Query(ctx, reviewSelect+w.String()+` ORDER BY r.created_at DESC, r.id DESC`+limit, args...)
	if err != nil {
		return nil, 0, classify("db.ListReviews", err)
	}
	defer rows.Close()

	reviews := make([]model.Review, 0, params.Limit)
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, 0, classify("db.ListReviews", err)
		}
		reviews = append(reviews, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify("db.ListReviews", err)
	}
	return reviews, total, nil
}

func (db *Postgres) ReviewByID(ctx context.Context, id int64) (*model.Review, error) {
	r, err := scanReview(db.Pool.QueryRow(ctx, reviewSelect+` WHERE r.id = $1`, id))
	if err != nil {
		return nil, classify("db.ReviewByID", err)
	}
	return r, nil
}

func (db *Postgres) SetReviewStatus(ctx context.Context, id int64, status model.ReviewStatus) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE reviews SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return classify("db.SetReviewStatus", err)
	}
	if tag.RowsAffected() == 0 {
		return classify("db.SetReviewStatus", pgx.ErrNoRows)
	}
	return nil
}

func (db *Postgres) DeleteReview(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return classify("db.DeleteReview", err)
	}
	if tag.RowsAffected() == 0 {
		return classify("db.DeleteReview", pgx.ErrNoRows)
	}
	return nil
}
