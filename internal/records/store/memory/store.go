package memory

import (
	"context"
	"fmt"
	"sync"

	"vaxreg/internal/records/models"
	"vaxreg/pkg/platform/sentinel"
)

// InMemory keeps patients and doses in insertion order. Reads return copies so
// callers cannot mutate stored records.
type InMemory struct {
	mu       sync.RWMutex
	patients []models.Patient
	byID     map[models.PatientID]int
	doses    []models.Dose
}

func New() *InMemory {
	return &InMemory{byID: make(map[models.PatientID]int)}
}

func (s *InMemory) AppendPatient(_ context.Context, patient *models.Patient) error {
	if patient == nil {
		return fmt.Errorf("patient is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[patient.ID]; exists {
		return fmt.Errorf("append patient %s: %w", patient.ID, sentinel.ErrConflict)
	}
	s.byID[patient.ID] = len(s.patients)
	s.patients = append(s.patients, *patient)
	return nil
}

func (s *InMemory) AppendDose(_ context.Context, dose *models.Dose) error {
	if dose == nil {
		return fmt.Errorf("dose is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doses = append(s.doses, *dose)
	return nil
}

func (s *InMemory) LoadPatients(_ context.Context) ([]*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Patient, 0, len(s.patients))
	for i := range s.patients {
		p := s.patients[i]
		out = append(out, &p)
	}
	return out, nil
}

func (s *InMemory) LoadDoses(_ context.Context) ([]*models.Dose, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Dose, 0, len(s.doses))
	for i := range s.doses {
		d := s.doses[i]
		out = append(out, &d)
	}
	return out, nil
}

func (s *InMemory) CountPatients(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients), nil
}

func (s *InMemory) FindPatientByID(_ context.Context, id models.PatientID) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	p := s.patients[idx]
	return &p, nil
}

func (s *InMemory) DosesForPatient(_ context.Context, id models.PatientID) ([]*models.Dose, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Dose
	for i := range s.doses {
		if s.doses[i].PatientID == id {
			d := s.doses[i]
			out = append(out, &d)
		}
	}
	return out, nil
}
