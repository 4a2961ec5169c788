package postgres

import (
	"context"
	"database/sql"
	"strings"

	"livestock-breeding/internal/domain/breeding"
)

type BreedingRepo struct {
	db *sql.DB
}

func NewBreedingRepo(db *sql.DB) *BreedingRepo {
	return &BreedingRepo{db: db}
}

const breedingColumns = `
	id, owner_user_id,
	mother_id, father_id,
	breeding_date, method, status,
	expected_due_date, actual_birth_date,
	pregnancy_confirmed, pregnancy_confirmation_date,
	offspring_count,
	veterinarian, cost, notes,
	created_at, updated_at`

func (r *BreedingRepo) Create(ctx context.Context, rec breeding.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO breeding_records (`+breedingColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		rec.ID,
		rec.OwnerUserID,
		rec.MotherID,
		rec.FatherID,
		rec.BreedingDate,
		string(rec.Method),
		string(rec.Status),
		toNullDate(rec.ExpectedDueDate),
		toNullDate(rec.ActualBirthDate),
		rec.PregnancyConfirmed,
		toNullDate(rec.PregnancyConfirmationDate),
		rec.OffspringCount,
		rec.Veterinarian,
		toNullFloat(rec.Cost),
		rec.Notes,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *BreedingRepo) Update(ctx context.Context, rec breeding.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE breeding_records
		SET
			mother_id = $2,
			father_id = $3,
			breeding_date = $4,
			method = $5,
			status = $6,
			expected_due_date = $7,
			actual_birth_date = $8,
			pregnancy_confirmed = $9,
			pregnancy_confirmation_date = $10,
			offspring_count = $11,
			veterinarian = $12,
			cost = $13,
			notes = $14,
			updated_at = $15
		WHERE id = $1
	`,
		rec.ID,
		rec.MotherID,
		rec.FatherID,
		rec.BreedingDate,
		string(rec.Method),
		string(rec.Status),
		toNullDate(rec.ExpectedDueDate),
		toNullDate(rec.ActualBirthDate),
		rec.PregnancyConfirmed,
		toNullDate(rec.PregnancyConfirmationDate),
		rec.OffspringCount,
		rec.Veterinarian,
		toNullFloat(rec.Cost),
		rec.Notes,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BreedingRepo) GetByID(ctx context.Context, id string) (breeding.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return breeding.Record{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+breedingColumns+`
		FROM breeding_records
		WHERE id = $1
	`, id)

	rec, err := scanBreedingRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return breeding.Record{}, ErrNotFound
		}
		return breeding.Record{}, err
	}
	return rec, nil
}

func (r *BreedingRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]breeding.Record, error) {
	return r.list(ctx, `
		SELECT `+breedingColumns+`
		FROM breeding_records
		WHERE owner_user_id = $1
		ORDER BY breeding_date DESC
	`, ownerUserID)
}

func (r *BreedingRepo) ListByMother(ctx context.Context, motherID string) ([]breeding.Record, error) {
	return r.list(ctx, `
		SELECT `+breedingColumns+`
		FROM breeding_records
		WHERE mother_id = $1
		ORDER BY breeding_date DESC
	`, motherID)
}

func (r *BreedingRepo) list(ctx context.Context, query, arg string) ([]breeding.Record, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeding.Record, 0)
	for rows.Next() {
		rec, err := scanBreedingRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func scanBreedingRecord(row rowScanner) (breeding.Record, error) {
	var rec breeding.Record
	var method, status string
	var due, birth, confirmed sql.NullTime
	var cost sql.NullFloat64

	if err := row.Scan(
		&rec.ID,
		&rec.OwnerUserID,
		&rec.MotherID,
		&rec.FatherID,
		&rec.BreedingDate,
		&method,
		&status,
		&due,
		&birth,
		&rec.PregnancyConfirmed,
		&confirmed,
		&rec.OffspringCount,
		&rec.Veterinarian,
		&cost,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return breeding.Record{}, err
	}

	rec.Method = breeding.Method(method)
	rec.Status = breeding.Status(status)
	if due.Valid {
		t := due.Time
		rec.ExpectedDueDate = &t
	}
	if birth.Valid {
		t := birth.Time
		rec.ActualBirthDate = &t
	}
	if confirmed.Valid {
		t := confirmed.Time
		rec.PregnancyConfirmationDate = &t
	}
	if cost.Valid {
		v := cost.Float64
		rec.Cost = &v
	}

	return rec, nil
}
