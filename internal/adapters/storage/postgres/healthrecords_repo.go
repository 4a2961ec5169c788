package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"livestock-breeding/internal/domain/animals"
	"livestock-breeding/internal/domain/healthrecords"
	"livestock-breeding/internal/domain/healthrecords/details"
)

type HealthRecordsRepo struct {
	db *sql.DB
}

func NewHealthRecordsRepo(db *sql.DB) *HealthRecordsRepo {
	return &HealthRecordsRepo{db: db}
}

// detailsDoc agrupa los payloads opcionales en una sola columna JSONB.
type detailsDoc struct {
	Measurement *details.Measurement `json:"measurement,omitempty"`
	Vaccination *details.Vaccination `json:"vaccination,omitempty"`
	Medication  *details.Medication  `json:"medication,omitempty"`
}

func (r *HealthRecordsRepo) Create(ctx context.Context, h healthrecords.HealthRecord) error {
	doc, err := marshalDetails(h)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO health_records (
			id, animal_id,
			type, occurred_at, recorded_at,
			title, notes, veterinarian,
			new_health_status, details,
			status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		h.ID,
		h.AnimalID,
		string(h.Type),
		h.OccurredAt,
		h.RecordedAt,
		h.Title,
		h.Notes,
		h.Veterinarian,
		string(h.NewHealthStatus),
		doc,
		string(h.Status),
	)
	return err
}

func (r *HealthRecordsRepo) GetByID(ctx context.Context, id string) (healthrecords.HealthRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return healthrecords.HealthRecord{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, animal_id,
			type, occurred_at, recorded_at,
			title, notes, veterinarian,
			new_health_status, details,
			status
		FROM health_records
		WHERE id = $1
	`, id)

	h, err := scanHealthRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return healthrecords.HealthRecord{}, ErrNotFound
		}
		return healthrecords.HealthRecord{}, err
	}
	return h, nil
}

func (r *HealthRecordsRepo) ListByAnimal(ctx context.Context, animalID string, filter healthrecords.ListFilter) ([]healthrecords.HealthRecord, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return nil, nil
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT
			id, animal_id,
			type, occurred_at, recorded_at,
			title, notes, veterinarian,
			new_health_status, details,
			status
		FROM health_records
		WHERE animal_id = $1
	`
	args := []any{animalID}
	n := 1

	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		n++
		query += fmt.Sprintf(" AND type = ANY($%d)", n)
		args = append(args, types)
	}
	if filter.From != nil {
		n++
		query += fmt.Sprintf(" AND occurred_at >= $%d", n)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		n++
		query += fmt.Sprintf(" AND occurred_at <= $%d", n)
		args = append(args, *filter.To)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		n++
		query += fmt.Sprintf(" AND (title ILIKE $%d OR notes ILIKE $%d)", n, n)
		args = append(args, "%"+q+"%")
	}

	n++
	query += fmt.Sprintf(" ORDER BY occurred_at DESC LIMIT $%d", n)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]healthrecords.HealthRecord, 0)
	for rows.Next() {
		h, err := scanHealthRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}

	return out, rows.Err()
}

func (r *HealthRecordsRepo) Void(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE health_records
		SET status = $2
		WHERE id = $1
	`, id, string(healthrecords.RecordStatusVoided))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanHealthRecord(row rowScanner) (healthrecords.HealthRecord, error) {
	var h healthrecords.HealthRecord
	var typ, newStatus, status string
	var rawDetails []byte

	if err := row.Scan(
		&h.ID,
		&h.AnimalID,
		&typ,
		&h.OccurredAt,
		&h.RecordedAt,
		&h.Title,
		&h.Notes,
		&h.Veterinarian,
		&newStatus,
		&rawDetails,
		&status,
	); err != nil {
		return healthrecords.HealthRecord{}, err
	}

	h.Type = healthrecords.RecordType(typ)
	h.NewHealthStatus = animals.HealthStatus(newStatus)
	h.Status = healthrecords.RecordStatus(status)

	if len(rawDetails) > 0 {
		var doc detailsDoc
		if err := json.Unmarshal(rawDetails, &doc); err != nil {
			return healthrecords.HealthRecord{}, err
		}
		h.Measurement = doc.Measurement
		h.Vaccination = doc.Vaccination
		h.Medication = doc.Medication
	}

	return h, nil
}

func marshalDetails(h healthrecords.HealthRecord) ([]byte, error) {
	doc := detailsDoc{
		Measurement: h.Measurement,
		Vaccination: h.Vaccination,
		Medication:  h.Medication,
	}
	if doc.Measurement == nil && doc.Vaccination == nil && doc.Medication == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(doc)
}
