// Package postgres persists patients and doses in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"vaxreg/internal/records/models"
	"vaxreg/internal/vaccine"
	"vaxreg/pkg/platform/sentinel"
)

const uniqueViolation = "23505"

// Schema creates the record tables when they are missing.
const Schema = `
CREATE TABLE IF NOT EXISTS patients (
	seq          BIGSERIAL,
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	age          INTEGER NOT NULL,
	contact      TEXT NOT NULL,
	centre       TEXT NOT NULL,
	vaccine_code TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS doses (
	seq          BIGSERIAL PRIMARY KEY,
	patient_id   TEXT NOT NULL,
	vaccine_code TEXT NOT NULL,
	dose_date    DATE NOT NULL,
	dose_label   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS doses_patient_id_idx ON doses (patient_id, seq);
`

// Store keeps insertion order through the seq columns.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate applies Schema.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate record schema: %w", err)
	}
	return nil
}

func (s *Store) AppendPatient(ctx context.Context, patient *models.Patient) error {
	if patient == nil {
		return fmt.Errorf("patient is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO patients (id, name, age, contact, centre, vaccine_code)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(patient.ID), patient.Name, patient.Age, patient.Contact, patient.Centre, string(patient.VaccineCode),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("append patient %s: %w", patient.ID, sentinel.ErrConflict)
		}
		return fmt.Errorf("append patient: %w", err)
	}
	return nil
}

func (s *Store) AppendDose(ctx context.Context, dose *models.Dose) error {
	if dose == nil {
		return fmt.Errorf("dose is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO doses (patient_id, vaccine_code, dose_date, dose_label)
		VALUES ($1, $2, $3, $4)`,
		string(dose.PatientID), string(dose.VaccineCode), dose.DateString(), string(dose.Label),
	)
	if err != nil {
		return fmt.Errorf("append dose: %w", err)
	}
	return nil
}

func (s *Store) LoadPatients(ctx context.Context) ([]*models.Patient, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, age, contact, centre, vaccine_code FROM patients ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}
	defer rows.Close()

	var out []*models.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}
	return out, nil
}

func (s *Store) LoadDoses(ctx context.Context) ([]*models.Dose, error) {
	return s.queryDoses(ctx, `
		SELECT patient_id, vaccine_code, dose_date, dose_label FROM doses ORDER BY seq`)
}

func (s *Store) CountPatients(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM patients`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count patients: %w", err)
	}
	return count, nil
}

func (s *Store) FindPatientByID(ctx context.Context, id models.PatientID) (*models.Patient, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, age, contact, centre, vaccine_code FROM patients WHERE id = $1`, string(id))
	p, err := scanPatient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return p, nil
}

func (s *Store) DosesForPatient(ctx context.Context, id models.PatientID) ([]*models.Dose, error) {
	return s.queryDoses(ctx, `
		SELECT patient_id, vaccine_code, dose_date, dose_label FROM doses
		WHERE patient_id = $1 ORDER BY seq`, string(id))
}

func (s *Store) queryDoses(ctx context.Context, query string, args ...any) ([]*models.Dose, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load doses: %w", err)
	}
	defer rows.Close()

	var out []*models.Dose
	for rows.Next() {
		var (
			patientID, vaccineCode, label string
			date                          sql.NullTime
		)
		if err := rows.Scan(&patientID, &vaccineCode, &date, &label); err != nil {
			return nil, fmt.Errorf("scan dose: %w", err)
		}
		out = append(out, &models.Dose{
			PatientID:   models.PatientID(patientID),
			VaccineCode: vaccine.Code(vaccineCode),
			Date:        vaccine.Day(date.Time),
			Label:       vaccine.DoseLabel(label),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load doses: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPatient(row scanner) (*models.Patient, error) {
	var (
		p               models.Patient
		id, vaccineCode string
	)
	if err := row.Scan(&id, &p.Name, &p.Age, &p.Contact, &p.Centre, &vaccineCode); err != nil {
		return nil, err
	}
	p.ID = models.PatientID(id)
	p.VaccineCode = vaccine.Code(vaccineCode)
	return &p, nil
}
