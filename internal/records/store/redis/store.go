// Package redis persists patients and doses as JSON entries in Redis lists.
//
// Key layout under a prefix:
//
//	<prefix>:patients           list of patients in registration order
//	<prefix>:patient:<id>       hash holding one patient, used for lookups
//	<prefix>:doses              list of every dose in administration order
//	<prefix>:doses:<patientID>  list of one patient's doses
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"vaxreg/internal/records/models"
	"vaxreg/internal/vaccine"
	"vaxreg/pkg/platform/sentinel"
)

const DefaultPrefix = "vaxreg"

type Store struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

type patientRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Contact     string `json:"contact"`
	Centre      string `json:"centre"`
	VaccineCode string `json:"vaccine_code"`
}

type doseRecord struct {
	PatientID   string `json:"patient_id"`
	VaccineCode string `json:"vaccine_code"`
	Date        string `json:"date"`
	Label       string `json:"label"`
}

func (s *Store) patientsKey() string { return s.prefix + ":patients" }
func (s *Store) patientKey(id models.PatientID) string { return s.prefix + ":patient:" + string(id) }
func (s *Store) dosesKey() string { return s.prefix + ":doses" }
func (s *Store) patientDosesKey(id models.PatientID) string { return s.prefix + ":doses:" + string(id) }

// AppendPatient writes the list entry and the lookup hash in one MULTI block,
// watching the hash so a concurrent writer with the same id loses.
func (s *Store) AppendPatient(ctx context.Context, patient *models.Patient) error {
	if patient == nil {
		return fmt.Errorf("patient is required")
	}
	rec := patientRecord{
		ID:          string(patient.ID),
		Name:        patient.Name,
		Age:         patient.Age,
		Contact:     patient.Contact,
		Centre:      patient.Centre,
		VaccineCode: string(patient.VaccineCode),
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode patient: %w", err)
	}
	key := s.patientKey(patient.ID)

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return sentinel.ErrConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.RPush(ctx, s.patientsKey(), payload)
			pipe.HSet(ctx, key, map[string]any{
				"id":           rec.ID,
				"name":         rec.Name,
				"age":          rec.Age,
				"contact":      rec.Contact,
				"centre":       rec.Centre,
				"vaccine_code": rec.VaccineCode,
			})
			return nil
		})
		return err
	}, key)
	switch {
	case errors.Is(err, sentinel.ErrConflict), errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("append patient %s: %w", patient.ID, sentinel.ErrConflict)
	case err != nil:
		return fmt.Errorf("append patient: %w", err)
	}
	return nil
}

func (s *Store) AppendDose(ctx context.Context, dose *models.Dose) error {
	if dose == nil {
		return fmt.Errorf("dose is required")
	}
	payload, err := json.Marshal(doseRecord{
		PatientID:   string(dose.PatientID),
		VaccineCode: string(dose.VaccineCode),
		Date:        dose.DateString(),
		Label:       string(dose.Label),
	})
	if err != nil {
		return fmt.Errorf("encode dose: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, s.dosesKey(), payload)
		pipe.RPush(ctx, s.patientDosesKey(dose.PatientID), payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("append dose: %w", err)
	}
	return nil
}

func (s *Store) LoadPatients(ctx context.Context) ([]*models.Patient, error) {
	entries, err := s.client.LRange(ctx, s.patientsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load patients: %w", err)
	}
	out := make([]*models.Patient, 0, len(entries))
	for i, entry := range entries {
		var rec patientRecord
		if err := json.Unmarshal([]byte(entry), &rec); err != nil {
			return nil, fmt.Errorf("patient entry %d: %w: %w", i, sentinel.ErrCorrupt, err)
		}
		out = append(out, rec.toModel())
	}
	return out, nil
}

func (s *Store) LoadDoses(ctx context.Context) ([]*models.Dose, error) {
	return s.loadDoses(ctx, s.dosesKey())
}

func (s *Store) CountPatients(ctx context.Context) (int, error) {
	n, err := s.client.LLen(ctx, s.patientsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("count patients: %w", err)
	}
	return int(n), nil
}

func (s *Store) FindPatientByID(ctx context.Context, id models.PatientID) (*models.Patient, error) {
	fields, err := s.client.HGetAll(ctx, s.patientKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("find patient: %w", err)
	}
	if len(fields) == 0 {
		return nil, sentinel.ErrNotFound
	}
	age, err := strconv.Atoi(fields["age"])
	if err != nil {
		return nil, fmt.Errorf("patient %s age: %w: %w", id, sentinel.ErrCorrupt, err)
	}
	return &models.Patient{
		ID:          models.PatientID(fields["id"]),
		Name:        fields["name"],
		Age:         age,
		Contact:     fields["contact"],
		Centre:      fields["centre"],
		VaccineCode: vaccine.Code(fields["vaccine_code"]),
	}, nil
}

func (s *Store) DosesForPatient(ctx context.Context, id models.PatientID) ([]*models.Dose, error) {
	return s.loadDoses(ctx, s.patientDosesKey(id))
}

func (s *Store) loadDoses(ctx context.Context, key string) ([]*models.Dose, error) {
	entries, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load doses: %w", err)
	}
	out := make([]*models.Dose, 0, len(entries))
	for i, entry := range entries {
		var rec doseRecord
		if err := json.Unmarshal([]byte(entry), &rec); err != nil {
			return nil, fmt.Errorf("dose entry %d: %w: %w", i, sentinel.ErrCorrupt, err)
		}
		date, err := vaccine.ParseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("dose entry %d: %w: %w", i, sentinel.ErrCorrupt, err)
		}
		out = append(out, &models.Dose{
			PatientID:   models.PatientID(rec.PatientID),
			VaccineCode: vaccine.Code(rec.VaccineCode),
			Date:        date,
			Label:       vaccine.DoseLabel(rec.Label),
		})
	}
	return out, nil
}

func (r patientRecord) toModel() *models.Patient {
	return &models.Patient{
		ID:          models.PatientID(r.ID),
		Name:        r.Name,
		Age:         r.Age,
		Contact:     r.Contact,
		Centre:      r.Centre,
		VaccineCode: vaccine.Code(r.VaccineCode),
	}
}
