package handler

import (
	"encoding/json"

	"vaxreg/internal/records/models"
	"vaxreg/internal/vaccine"
)

type registerPatientRequest struct {
	Name        string      `json:"name"`
	Age         json.Number `json:"age"`
	Contact     string      `json:"contact"`
	Centre      string      `json:"centre"`
	VaccineCode string      `json:"vaccine_code"`
}

func (r registerPatientRequest) toModel() models.RegisterPatientRequest {
	return models.RegisterPatientRequest{
		Name:        r.Name,
		Age:         r.Age.String(),
		Contact:     r.Contact,
		Centre:      r.Centre,
		VaccineCode: r.VaccineCode,
	}
}

type administerDoseRequest struct {
	PatientID string `json:"patient_id"`
	Dose      string `json:"dose"`
	Date      string `json:"date"`
}

func (r administerDoseRequest) toModel() models.AdministerDoseRequest {
	return models.AdministerDoseRequest{PatientID: r.PatientID, Dose: r.Dose, Date: r.Date}
}

type patientResponse struct {
	PatientID   string `json:"patient_id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Contact     string `json:"contact"`
	Centre      string `json:"centre"`
	VaccineCode string `json:"vaccine_code"`
}

func toPatientResponse(p *models.Patient) patientResponse {
	return patientResponse{
		PatientID:   string(p.ID),
		Name:        p.Name,
		Age:         p.Age,
		Contact:     p.Contact,
		Centre:      p.Centre,
		VaccineCode: string(p.VaccineCode),
	}
}

type doseResponse struct {
	PatientID   string `json:"patient_id"`
	VaccineCode string `json:"vaccine_code"`
	Date        string `json:"date"`
	Dose        string `json:"dose"`
}

func toDoseResponse(d *models.Dose) doseResponse {
	return doseResponse{
		PatientID:   string(d.PatientID),
		VaccineCode: string(d.VaccineCode),
		Date:        d.DateString(),
		Dose:        string(d.Label),
	}
}

type vaccineResponse struct {
	Code         string `json:"code"`
	Doses        int    `json:"doses"`
	IntervalDays int    `json:"interval_days"`
	MinAge       int    `json:"min_age"`
	MaxAge       *int   `json:"max_age,omitempty"`
}

func toVaccineResponse(d vaccine.Definition) vaccineResponse {
	return vaccineResponse{
		Code:         string(d.Code),
		Doses:        d.Doses,
		IntervalDays: d.IntervalDays,
		MinAge:       d.MinAge,
		MaxAge:       d.MaxAge,
	}
}
