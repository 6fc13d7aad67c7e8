// Package file stores patients and doses as append-only comma-separated text
// files, one record per line and no header row.
package file

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"vaxreg/internal/records/models"
	"vaxreg/internal/vaccine"
	"vaxreg/pkg/platform/sentinel"
)

const (
	patientFields = 6
	doseFields    = 4
)

// Store reads both files in full on every query and opens, writes one row and
// closes on every append. The mutex only serialises writers in this process.
type Store struct {
	mu           sync.Mutex
	patientsPath string
	dosesPath    string
}

// New returns a store over the two files. Missing files read as empty and are
// created on first append; the parent directory must exist or be creatable.
func New(patientsPath, dosesPath string) *Store {
	return &Store{patientsPath: patientsPath, dosesPath: dosesPath}
}

func (s *Store) PatientsPath() string { return s.patientsPath }
func (s *Store) DosesPath() string { return s.dosesPath }

func (s *Store) AppendPatient(ctx context.Context, patient *models.Patient) error {
	if patient == nil {
		return fmt.Errorf("patient is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.LoadPatients(ctx)
	if err != nil {
		return err
	}
	for _, p := range existing {
		if p.ID == patient.ID {
			return fmt.Errorf("append patient %s: %w", patient.ID, sentinel.ErrConflict)
		}
	}
	return appendRow(s.patientsPath, patientRow(patient))
}

func (s *Store) AppendDose(_ context.Context, dose *models.Dose) error {
	if dose == nil {
		return fmt.Errorf("dose is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return appendRow(s.dosesPath, doseRow(dose))
}

func (s *Store) LoadPatients(_ context.Context) ([]*models.Patient, error) {
	var out []*models.Patient
	err := readRows(s.patientsPath, patientFields, func(line int, row []string) error {
		p, err := parsePatient(row)
		if err != nil {
			return fmt.Errorf("%s line %d: %w: %w", filepath.Base(s.patientsPath), line, sentinel.ErrCorrupt, err)
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) LoadDoses(_ context.Context) ([]*models.Dose, error) {
	var out []*models.Dose
	err := readRows(s.dosesPath, doseFields, func(line int, row []string) error {
		d, err := parseDose(row)
		if err != nil {
			return fmt.Errorf("%s line %d: %w: %w", filepath.Base(s.dosesPath), line, sentinel.ErrCorrupt, err)
		}
		out = append(out, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) CountPatients(ctx context.Context) (int, error) {
	patients, err := s.LoadPatients(ctx)
	if err != nil {
		return 0, err
	}
	return len(patients), nil
}

// FindPatientByID returns the first row carrying id.
func (s *Store) FindPatientByID(ctx context.Context, id models.PatientID) (*models.Patient, error) {
	patients, err := s.LoadPatients(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *Store) DosesForPatient(ctx context.Context, id models.PatientID) ([]*models.Dose, error) {
	doses, err := s.LoadDoses(ctx)
	if err != nil {
		return nil, err
	}
	return models.FilterByPatient(doses, id), nil
}

func patientRow(p *models.Patient) []string {
	return []string{string(p.ID), p.Name, strconv.Itoa(p.Age), p.Contact, p.Centre, string(p.VaccineCode)}
}

func doseRow(d *models.Dose) []string {
	return []string{string(d.PatientID), string(d.VaccineCode), d.DateString(), string(d.Label)}
}

func parsePatient(row []string) (*models.Patient, error) {
	age, err := strconv.Atoi(row[2])
	if err != nil {
		return nil, fmt.Errorf("age %q is not a number", row[2])
	}
	return &models.Patient{
		ID:          models.PatientID(row[0]),
		Name:        row[1],
		Age:         age,
		Contact:     row[3],
		Centre:      row[4],
		VaccineCode: vaccine.Code(row[5]),
	}, nil
}

func parseDose(row []string) (*models.Dose, error) {
	date, err := vaccine.ParseDate(row[2])
	if err != nil {
		return nil, fmt.Errorf("date %q: %w", row[2], err)
	}
	return &models.Dose{
		PatientID:   models.PatientID(row[0]),
		VaccineCode: vaccine.Code(row[1]),
		Date:        date,
		Label:       vaccine.DoseLabel(row[3]),
	}, nil
}

func appendRow(path string, row []string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// readRows calls fn for every record in path with the record's starting line.
// A missing file yields no records.
func readRows(path string, fields int, fn func(line int, row []string) error) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = fields
	r.LazyQuotes = true
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w: %w", filepath.Base(path), sentinel.ErrCorrupt, err)
		}
		line, _ := r.FieldPos(0)
		if err := fn(line, row); err != nil {
			return err
		}
	}
}
