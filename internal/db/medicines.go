package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/medilink/backend/internal/model"
)

const medicineColumns = `id, name, generic_name, category, manufacturer, description, dosage, side_effects, price::float8, requires_prescription, created_at, updated_at`

func scanMedicine(row pgx.Row) (*model.Medicine, error) {
	var m model.Medicine
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.GenericName,
		&m.Category,
		&m.Manufacturer,
		&m.Description,
		&m.Dosage,
		&m.SideEffects,
		&m.Price,
		&m.RequiresPrescription,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (db *Postgres) ListMedicines(ctx context.Context, params model.MedicineListParams) ([]model.Medicine, int64, error) {
	var w where
	if params.Search != "" {
		w.add(`(name ILIKE $%[1]d OR generic_name ILIKE $%[1]d OR category ILIKE $%[1]d)`, likePattern(params.Search))
	}
	if params.Category != "" {
		w.add(`LOWER(category) = LOWER($%d)`, params.Category)
	}

	var total int64
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM medicines`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, classify("db.ListMedicines", err)
	}

	limit, args := w.page(params.Limit, params.Offset())
	rows, err := db.Pool.Query(ctx, `SELECT `+medicineColumns+` FROM medicines`+w.String()+` ORDER BY name ASC, id ASC`+limit, args...)
	if err != nil {
		return nil, 0, classify("db.ListMedicines", err)
	}
	defer rows.Close()

	medicines := make([]model.Medicine, 0, params.Limit)
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, 0, classify("db.ListMedicines", err)
		}
		medicines = append(medicines, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify("db.ListMedicines", err)
	}
	return medicines, total, nil
}

func (db *Postgres) MedicineByID(ctx context.Context, id int64) (*model.Medicine, error) {
	m, err := scanMedicine(db.Pool.QueryRow(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE id = $1`, id))
	if err != nil {
		return nil, classify("db.MedicineByID", err)
	}
	return m, nil
}

func (db *Postgres) CreateMedicine(ctx context.Context, req model.MedicineRequest) (*model.Medicine, error) {
	query := `
		INSERT INTO medicines (name, generic_name, category, manufacturer, description, dosage, side_effects, price, requires_prescription, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + medicineColumns
	m, err := scanMedicine(db.Pool.QueryRow(ctx, query,
		req.Name,
		req.GenericName,
		req.Category,
		req.Manufacturer,
		req.Description,
		req.Dosage,
		req.SideEffects,
		req.Price,
		req.RequiresPrescription,
	))
	if err != nil {
		return nil, classify("db.CreateMedicine", err)
	}
	return m, nil
}

func (db *Postgres) UpdateMedicine(ctx context.Context, id int64, req model.MedicineRequest) (*model.Medicine, error) {
	query := `
		UPDATE medicines
		SET name = $2,
			generic_name = $3,
			category = $4,
			manufacturer = $5,
			description = $6,
			dosage = $7,
			side_effects = $8,
			price = $9,
			requires_prescription = $10,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + medicineColumns
	m, err := scanMedicine(db.Pool.QueryRow(ctx, query,
		id,
		req.Name,
		req.GenericName,
		req.Category,
		req.Manufacturer,
		req.Description,
		req.Dosage,
		req.SideEffects,
		req.Price,
		req.RequiresPrescription,
	))
	if err != nil {
		return nil, classify("db.UpdateMedicine", err)
	}
	return m, nil
}

func (db *Postgres) DeleteMedicine(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return classify("db.DeleteMedicine", err)
	}
	if tag.RowsAffected() == 0 {
		return classify("db.DeleteMedicine", pgx.ErrNoRows)
	}
	return nil
}
