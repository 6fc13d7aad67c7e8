package models

import (
	"fmt"
	"strconv"
	"strings"

	"vaxreg/internal/vaccine"
	dErrors "vaxreg/pkg/domain-errors"
)

// PatientID is the sequential patient identifier, "P" followed by a
// zero-padded counter of at least four digits.
type PatientID string

func (id PatientID) String() string {
	return string(id)
}

// NextPatientID derives the identifier for the patient registered after
// existing others. Past P9999 the counter simply grows wider.
func NextPatientID(existing int) PatientID {
	return PatientID(fmt.Sprintf("P%04d", existing+1))
}

// Patient is created on registration and never mutated.
type Patient struct {
	ID          PatientID
	Name        string
	Age         int
	Contact     string
	Centre      string
	VaccineCode vaccine.Code
}

// RegisterPatientRequest carries the raw register form fields.
type RegisterPatientRequest struct {
	Name        string
	Age         string
	Contact     string
	Centre      string
	VaccineCode string
}

// Normalize trims surrounding whitespace from every field.
func (r *RegisterPatientRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Age = strings.TrimSpace(r.Age)
	r.Contact = strings.TrimSpace(r.Contact)
	r.Centre = strings.TrimSpace(r.Centre)
	r.VaccineCode = strings.TrimSpace(r.VaccineCode)
}

// ParseAge converts the age field. Non-numeric input rejects the submission
// rather than defaulting.
func ParseAge(s string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, "age must be a whole number")
	}
	if age < 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "age cannot be negative")
	}
	return age, nil
}
