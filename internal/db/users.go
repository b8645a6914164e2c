package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/medilink/backend/internal/model"
)

const userColumns = `id, name, email, phone, age, gender, status, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Age,
		&user.Gender,
		&user.Status,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) ListUsers(ctx context.Context, params model.ListParams) ([]model.User, int64, error) {
	var w where
	if params.Search != "" {
		w.add(`(name ILIKE $%[1]d OR email ILIKE $%[1]d OR phone ILIKE $%[1]d)`, likePattern(params.Search))
	}

	var total int64
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, classify("db.ListUsers", err)
	}

	limit, args := w.page(params.Limit, params.Offset())
	rows, err := db.Pool.Query(ctx, `SELECT `+userColumns+` FROM users`+w.String()+` ORDER BY id DESC`+limit, args...)
	if err != nil {
		return nil, 0, classify("db.ListUsers", err)
	}
	defer rows.Close()

	users := make([]model.User, 0, params.Limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, classify("db.ListUsers", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify("db.ListUsers", err)
	}
	return users, total, nil
}

func (db *Postgres) UserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := scanUser(db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, classify("db.UserByID", err)
	}
	return user, nil
}

func (db *Postgres) CreateUser(ctx context.Context, user *model.User) error {
	status := user.Status
	if status == "" {
		status = model.UserStatusActive
	}
	query := `
		INSERT INTO users (name, email, phone, age, gender, status, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, status, created_at, updated_at
	`
	err := db.Pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		user.Age,
		user.Gender,
		status,
		user.PasswordHash,
	).Scan(&user.ID, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	return classify("db.CreateUser", err)
}

// UpdateUser applies the non-nil fields of req. An empty phone clears it.
func (db *Postgres) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	var phone string
	if req.Phone != nil {
		phone = *req.Phone
	}
	query := `
		UPDATE users
		SET name = COALESCE($2, name),
			email = COALESCE($3, email),
			phone = CASE WHEN $4 THEN NULLIF($5, '') ELSE phone END,
			age = COALESCE($6, age),
			gender = COALESCE($7, gender),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	user, err := scanUser(db.Pool.QueryRow(ctx, query,
		id, req.Name, req.Email, req.Phone != nil, phone, req.Age, req.Gender,
	))
	if err != nil {
		return nil, classify("db.UpdateUser", err)
	}
	return user, nil
}

func (db *Postgres) SetUserStatus(ctx context.Context, id int64, status model.UserStatus) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE users SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return classify("db.SetUserStatus", err)
	}
	if tag.RowsAffected() == 0 {
		return classify("db.SetUserStatus", pgx.ErrNoRows)
	}
	return nil
}

func (db *Postgres) DeleteUser(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return classify("db.DeleteUser", err)
	}
	if tag.RowsAffected() == 0 {
		return classify("db.DeleteUser", pgx.ErrNoRows)
	}
	return nil
}
