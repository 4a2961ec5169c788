package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"livestock-breeding/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, owner_user_id,
	tag, name, species, gender, breed, color,
	health_status, birth_date, weight, notes,
	ancestry_mother, ancestry_father,
	ancestry_maternal_grandmother, ancestry_maternal_grandfather,
	ancestry_paternal_grandmother, ancestry_paternal_grandfather,
	ancestry_maternal_grandmother_mother, ancestry_maternal_grandmother_father,
	ancestry_maternal_grandfather_mother, ancestry_maternal_grandfather_father,
	ancestry_paternal_grandmother_mother, ancestry_paternal_grandmother_father,
	ancestry_paternal_grandfather_mother, ancestry_paternal_grandfather_father,
	created_at, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,
			$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,
			$27,$28
		)
	`,
		a.ID,
		a.OwnerUserID,
		a.Tag,
		a.Name,
		a.Species,
		a.Gender,
		a.Breed,
		a.Color,
		string(a.HealthStatus),
		toNullDate(a.BirthDate),
		toNullFloat(a.Weight),
		a.Notes,
		a.Ancestry.Mother,
		a.Ancestry.Father,
		a.Ancestry.MaternalGrandmother,
		a.Ancestry.MaternalGrandfather,
		a.Ancestry.PaternalGrandmother,
		a.Ancestry.PaternalGrandfather,
		a.Ancestry.MaternalGrandmotherMother,
		a.Ancestry.MaternalGrandmotherFather,
		a.Ancestry.MaternalGrandfatherMother,
		a.Ancestry.MaternalGrandfatherFather,
		a.Ancestry.PaternalGrandmotherMother,
		a.Ancestry.PaternalGrandmotherFather,
		a.Ancestry.PaternalGrandfatherMother,
		a.Ancestry.PaternalGrandfatherFather,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			tag = $2,
			name = $3,
			species = $4,
			gender = $5,
			breed = $6,
			color = $7,
			health_status = $8,
			birth_date = $9,
			weight = $10,
			notes = $11,
			ancestry_mother = $12,
			ancestry_father = $13,
			ancestry_maternal_grandmother = $14,
			ancestry_maternal_grandfather = $15,
			ancestry_paternal_grandmother = $16,
			ancestry_paternal_grandfather = $17,
			ancestry_maternal_grandmother_mother = $18,
			ancestry_maternal_grandmother_father = $19,
			ancestry_maternal_grandfather_mother = $20,
			ancestry_maternal_grandfather_father = $21,
			ancestry_paternal_grandmother_mother = $22,
			ancestry_paternal_grandmother_father = $23,
			ancestry_paternal_grandfather_mother = $24,
			ancestry_paternal_grandfather_father = $25,
			updated_at = $26
		WHERE id = $1
	`,
		a.ID,
		a.Tag,
		a.Name,
		a.Species,
		a.Gender,
		a.Breed,
		a.Color,
		string(a.HealthStatus),
		toNullDate(a.BirthDate),
		toNullFloat(a.Weight),
		a.Notes,
		a.Ancestry.Mother,
		a.Ancestry.Father,
		a.Ancestry.MaternalGrandmother,
		a.Ancestry.MaternalGrandfather,
		a.Ancestry.PaternalGrandmother,
		a.Ancestry.PaternalGrandfather,
		a.Ancestry.MaternalGrandmotherMother,
		a.Ancestry.MaternalGrandmotherFather,
		a.Ancestry.MaternalGrandfatherMother,
		a.Ancestry.MaternalGrandfatherFather,
		a.Ancestry.PaternalGrandmotherMother,
		a.Ancestry.PaternalGrandmotherFather,
		a.Ancestry.PaternalGrandfatherMother,
		a.Ancestry.PaternalGrandfatherFather,
		a.UpdatedAt,
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

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return animals.Animal{}, ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]animals.Animal, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var status string
	var bd sql.NullTime
	var weight sql.NullFloat64

	if err := row.Scan(
		&a.ID,
		&a.OwnerUserID,
		&a.Tag,
		&a.Name,
		&a.Species,
		&a.Gender,
		&a.Breed,
		&a.Color,
		&status,
		&bd,
		&weight,
		&a.Notes,
		&a.Ancestry.Mother,
		&a.Ancestry.Father,
		&a.Ancestry.MaternalGrandmother,
		&a.Ancestry.MaternalGrandfather,
		&a.Ancestry.PaternalGrandmother,
		&a.Ancestry.PaternalGrandfather,
		&a.Ancestry.MaternalGrandmotherMother,
		&a.Ancestry.MaternalGrandmotherFather,
		&a.Ancestry.MaternalGrandfatherMother,
		&a.Ancestry.MaternalGrandfatherFather,
		&a.Ancestry.PaternalGrandmotherMother,
		&a.Ancestry.PaternalGrandmotherFather,
		&a.Ancestry.PaternalGrandfatherMother,
		&a.Ancestry.PaternalGrandfatherFather,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}

	a.HealthStatus = animals.HealthStatus(status)
	if bd.Valid {
		t := bd.Time
		// birth_date es DATE; pgx lo mapea a time.Time midnight UTC
		a.BirthDate = &t
	}
	if weight.Valid {
		v := weight.Float64
		a.Weight = &v
	}

	return a, nil
}

// birth_date y demás DATE van como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
