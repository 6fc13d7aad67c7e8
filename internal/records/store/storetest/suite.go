// Package storetest is the behaviour every record store backend must share.
// Backends run it from their own tests:
//
//	suite.Run(t, &storetest.Suite{NewStore: func(t *testing.T) storetest.Store { return memory.New() }})
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"vaxreg/internal/records/models"
	"vaxreg/internal/vaccine"
	"vaxreg/pkg/platform/sentinel"
)

// Store mirrors the record store port of the workflow service.
type Store interface {
	LoadPatients(ctx context.Context) ([]*models.Patient, error)
	LoadDoses(ctx context.Context) ([]*models.Dose, error)
	CountPatients(ctx context.Context) (int, error)
	FindPatientByID(ctx context.Context, id models.PatientID) (*models.Patient, error)
	DosesForPatient(ctx context.Context, id models.PatientID) ([]*models.Dose, error)
	AppendPatient(ctx context.Context, patient *models.Patient) error
	AppendDose(ctx context.Context, dose *models.Dose) error
}

type Suite struct {
	suite.Suite
	NewStore func(t *testing.T) Store

	store Store
	ctx   context.Context
}

func (s *Suite) SetupTest() {
	s.store = s.NewStore(s.T())
	s.ctx = context.Background()
}

func (s *Suite) patient(n int, vaccineCode vaccine.Code) *models.Patient {
	return &models.Patient{
		ID:          models.NextPatientID(n - 1),
		Name:        "Patient",
		Age:         30 + n,
		Contact:     "555-0100",
		Centre:      "VC1",
		VaccineCode: vaccineCode,
	}
}

func (s *Suite) dose(id models.PatientID, date string, label vaccine.DoseLabel) *models.Dose {
	d, err := vaccine.ParseDate(date)
	s.Require().NoError(err)
	return &models.Dose{PatientID: id, VaccineCode: "AF", Date: d, Label: label}
}

// TestEmpty verifies a fresh store reads as empty rather than failing.
func (s *Suite) TestEmpty() {
	patients, err := s.store.LoadPatients(s.ctx)
	s.Require().NoError(err)
	s.Empty(patients)

	doses, err := s.store.LoadDoses(s.ctx)
	s.Require().NoError(err)
	s.Empty(doses)

	count, err := s.store.CountPatients(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	_, err = s.store.FindPatientByID(s.ctx, "P0001")
	s.ErrorIs(err, sentinel.ErrNotFound)

	own, err := s.store.DosesForPatient(s.ctx, "P0001")
	s.Require().NoError(err)
	s.Empty(own)
}

// TestPatients verifies append order, lookup and counting.
func (s *Suite) TestPatients() {
	for i := 1; i <= 3; i++ {
		s.Require().NoError(s.store.AppendPatient(s.ctx, s.patient(i, "AF")))
	}

	s.Run("loads in append order", func() {
		patients, err := s.store.LoadPatients(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(patients, 3)
		s.Equal(models.PatientID("P0001"), patients[0].ID)
		s.Equal(models.PatientID("P0003"), patients[2].ID)
		s.Equal(33, patients[2].Age)
	})

	s.Run("counts", func() {
		count, err := s.store.CountPatients(s.ctx)
		s.Require().NoError(err)
		s.Equal(3, count)
	})

	s.Run("finds by id", func() {
		p, err := s.store.FindPatientByID(s.ctx, "P0002")
		s.Require().NoError(err)
		s.Equal(32, p.Age)
		s.Equal("VC1", p.Centre)
		s.Equal(vaccine.Code("AF"), p.VaccineCode)
	})

	s.Run("rejects a duplicate id", func() {
		err := s.store.AppendPatient(s.ctx, s.patient(2, "BV"))
		s.ErrorIs(err, sentinel.ErrConflict)

		count, err := s.store.CountPatients(s.ctx)
		s.Require().NoError(err)
		s.Equal(3, count)
	})
}

// TestDelimitersInFields verifies free-text fields survive a round trip even
// when they contain separators.
func (s *Suite) TestDelimitersInFields() {
	p := s.patient(1, "CZ")
	p.Name = `Smith, "Jo"`
	p.Contact = "12 High St,\nFlat 3"
	s.Require().NoError(s.store.AppendPatient(s.ctx, p))
	s.Require().NoError(s.store.AppendPatient(s.ctx, s.patient(2, "AF")))

	got, err := s.store.FindPatientByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p.Name, got.Name)
	s.Equal(p.Contact, got.Contact)

	patients, err := s.store.LoadPatients(s.ctx)
	s.Require().NoError(err)
	s.Len(patients, 2)
}

// TestDoses verifies dose append order and per-patient filtering.
func (s *Suite) TestDoses() {
	s.Require().NoError(s.store.AppendDose(s.ctx, s.dose("P0001", "2024-01-15", vaccine.DoseSecond)))
	s.Require().NoError(s.store.AppendDose(s.ctx, s.dose("P0002", "2024-01-02", vaccine.DoseFirst)))
	s.Require().NoError(s.store.AppendDose(s.ctx, s.dose("P0001", "2024-01-01", vaccine.DoseFirst)))

	all, err := s.store.LoadDoses(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(models.PatientID("P0002"), all[1].PatientID)

	own, err := s.store.DosesForPatient(s.ctx, "P0001")
	s.Require().NoError(err)
	s.Require().Len(own, 2)
	s.Equal("2024-01-15", own[0].DateString())
	s.Equal(vaccine.DoseSecond, own[0].Label)
	s.Equal("2024-01-01", own[1].DateString())
	s.Equal(vaccine.Code("AF"), own[1].VaccineCode)

	last := models.LastDose(own)
	s.Require().NotNil(last)
	s.Equal("2024-01-15", last.DateString())
}
