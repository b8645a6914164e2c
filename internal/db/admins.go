package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/medilink/backend/internal/model"
)

const adminColumns = `id, username, email, phone, password_hash, status, created_at, updated_at`

func scanAdmin(row pgx.Row) (*model.Admin, error) {
	var admin model.Admin
	err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.Phone,
		&admin.PasswordHash,
		&admin.Status,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (db *Postgres) AdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE username = $1`
	admin, err := scanAdmin(db.Pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, classify("db.AdminByUsername", err)
	}
	return admin, nil
}

func (db *Postgres) AdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE LOWER(email) = LOWER($1)`
	admin, err := scanAdmin(db.Pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, classify("db.AdminByEmail", err)
	}
	return admin, nil
}

func (db *Postgres) AdminByID(ctx context.Context, id int64) (*model.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	admin, err := scanAdmin(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classify("db.AdminByID", err)
	}
	return admin, nil
}

// CreateAdmin inserts admin and fills in its generated id and timestamps.
func (db *Postgres) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	status := admin.Status
	if status == "" {
		status = model.AdminStatusActive
	}
	query := `
		INSERT INTO admins (username, email, phone, password_hash, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, status, created_at, updated_at
	`
	err := db.Pool.QueryRow(ctx, query,
		admin.Username,
		admin.Email,
		admin.Phone,
		admin.PasswordHash,
		status,
	).Scan(&admin.ID, &admin.Status, &admin.CreatedAt, &admin.UpdatedAt)
	return classify("db.CreateAdmin", err)
}

// UpdateAdminProfile applies the non-nil fields of upd. An empty phone clears it.
func (db *Postgres) UpdateAdminProfile(ctx context.Context, id int64, upd model.AdminProfileUpdate) (*model.Admin, error) {
	var phone string
	if upd.Phone != nil {
		phone = *upd.Phone
	}
	query := `
		UPDATE admins
		SET username = COALESCE($2, username),
			email = COALESCE($3, email),
			phone = CASE WHEN $4 THEN NULLIF($5, '') ELSE phone END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + adminColumns
	admin, err := scanAdmin(db.Pool.QueryRow(ctx, query, id, upd.Username, upd.Email, upd.Phone != nil, phone))
	if err != nil {
		return nil, classify("db.UpdateAdminProfile", err)
	}
	return admin, nil
}

func (db *Postgres) UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE admins SET password_hash = $2, updated_at = NOW() WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return classify("db.UpdateAdminPassword", err)
	}
	if tag.RowsAffected() == 0 {
		return classify("db.UpdateAdminPassword", pgx.ErrNoRows)
	}
	return nil
}

func (db *Postgres) SetAdminStatus(ctx context.Context, id int64, status model.AdminStatus) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE admins SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return classify("db.SetAdminStatus", err)
	}
	if tag.RowsAffected() == 0 {
		return classify("db.SetAdminStatus", pgx.ErrNoRows)
	}
	return nil
}
