// Package workflow holds the two form submissions as pure functions: given the
// parsed form, a snapshot of the records they depend on, and the rules, each
// either returns the record to append or the reason the form was rejected.
// Loading the snapshot and performing the append is the caller's job.
package workflow

import (
	"fmt"
	"slices"
	"time"

	"vaxreg/internal/records/models"
	"vaxreg/internal/vaccine"
	dErrors "vaxreg/pkg/domain-errors"
)

// Rules is the configuration both workflows validate against.
type Rules struct {
	Vaccines vaccine.Table
	Centres  []string
}

// ReferenceRules returns the reference vaccine table with centres VC1 and VC2.
func ReferenceRules() Rules {
	return Rules{Vaccines: vaccine.Reference(), Centres: []string{"VC1", "VC2"}}
}

// KnownCentre reports whether centre is one of the configured centres.
func (r Rules) KnownCentre(centre string) bool {
	return slices.Contains(r.Centres, centre)
}

// PlanRegistration validates a register form against the rules and returns
// the patient to append. existingPatients is the current patient count and
// determines the new identifier.
//
// Checks run in order: vaccine code, age parse, age eligibility, centre.
func PlanRegistration(req models.RegisterPatientRequest, existingPatients int, rules Rules) (*models.Patient, error) {
	req.Normalize()

	def, ok := rules.Vaccines.Lookup(vaccine.Code(req.VaccineCode))
	if !ok {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid vaccine selected")
	}
	age, err := models.ParseAge(req.Age)
	if err != nil {
		return nil, err
	}
	if err := vaccine.CheckAge(def, age); err != nil {
		return nil, err
	}
	if !rules.KnownCentre(req.Centre) {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid vaccination centre selected")
	}

	return &models.Patient{
		ID:          models.NextPatientID(existingPatients),
		Name:        req.Name,
		Age:         age,
		Contact:     req.Contact,
		Centre:      req.Centre,
		VaccineCode: def.Code,
	}, nil
}

// PlanDose validates an administer form and returns the dose to append.
// patient is nil when the identifier did not resolve; last is the patient's
// most recent dose or nil.
//
// Checks run in order: dose label, date, patient, patient's vaccine,
// dose interval.
func PlanDose(req models.AdministerDoseRequest, patient *models.Patient, last *models.Dose, rules Rules) (*models.Dose, error) {
	req.Normalize()

	label, err := vaccine.ParseDoseLabel(req.Dose)
	if err != nil {
		return nil, err
	}
	date, err := vaccine.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.ID != models.PatientID(req.PatientID) {
		return nil, dErrors.New(dErrors.CodeNotFound, "patient ID not found")
	}
	def, ok := rules.Vaccines.Lookup(patient.VaccineCode)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("vaccine %s assigned to patient %s is not configured", patient.VaccineCode, patient.ID))
	}

	var lastDate *time.Time
	if last != nil {
		d := last.Date
		lastDate = &d
	}
	if err := vaccine.CheckDoseInterval(def, label, date, lastDate); err != nil {
		return nil, err
	}

	return &models.Dose{
		PatientID:   patient.ID,
		VaccineCode: def.Code,
		Date:        date,
		Label:       label,
	}, nil
}
