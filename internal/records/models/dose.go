package models

import (
	"sort"
	"strings"
	"time"

	"vaxreg/internal/vaccine"
)

// Dose records one administered dose. Date is a calendar date at UTC midnight.
type Dose struct {
	PatientID   PatientID
	VaccineCode vaccine.Code
	Date        time.Time
	Label       vaccine.DoseLabel
}

// DateString renders Date in vaccine.DateLayout.
func (d *Dose) DateString() string {
	return d.Date.Format(vaccine.DateLayout)
}

// AdministerDoseRequest carries the raw administer form fields.
type AdministerDoseRequest struct {
	PatientID string
	Dose      string
	Date      string
}

// Normalize trims surrounding whitespace from every field.
func (r *AdministerDoseRequest) Normalize() {
	r.PatientID = strings.TrimSpace(r.PatientID)
	r.Dose = strings.TrimSpace(r.Dose)
	r.Date = strings.TrimSpace(r.Date)
}

// SortByDate orders doses by date ascending. Same-day doses keep their stored
// order.
func SortByDate(doses []*Dose) []*Dose {
	out := append([]*Dose(nil), doses...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// LastDose returns the latest of doses by date, or nil when there are none.
func LastDose(doses []*Dose) *Dose {
	if len(doses) == 0 {
		return nil
	}
	sorted := SortByDate(doses)
	return sorted[len(sorted)-1]
}

// FilterByPatient returns the doses belonging to id, in stored order.
func FilterByPatient(doses []*Dose, id PatientID) []*Dose {
	var out []*Dose
	for _, d := range doses {
		if d.PatientID == id {
			out = append(out, d)
		}
	}
	return out
}
