package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxreg/internal/records/models"
	"vaxreg/internal/vaccine"
	dErrors "vaxreg/pkg/domain-errors"
)

func registerReq(vaccineCode, age string) models.RegisterPatientRequest {
	return models.RegisterPatientRequest{
		Name:        "Ada Lovelace",
		Age:         age,
		Contact:     "555-0100",
		Centre:      "VC1",
		VaccineCode: vaccineCode,
	}
}

func TestPlanRegistration(t *testing.T) {
	rules := ReferenceRules()

	t.Run("accepts an eligible patient and numbers it from the count", func(t *testing.T) {
		p, err := PlanRegistration(registerReq("AF", "30"), 0, rules)
		require.NoError(t, err)
		assert.Equal(t, models.PatientID("P0001"), p.ID)
		assert.Equal(t, 30, p.Age)
		assert.Equal(t, vaccine.Code("AF"), p.VaccineCode)

		p, err = PlanRegistration(registerReq("AF", "30"), 41, rules)
		require.NoError(t, err)
		assert.Equal(t, models.PatientID("P0042"), p.ID)
	})

	t.Run("unknown vaccine is checked before age", func(t *testing.T) {
		_, err := PlanRegistration(registerReq("ZZ", "not a number"), 0, rules)
		require.Error(t, err)
		assert.Equal(t, "invalid vaccine selected", dErrors.MessageOf(err))
	})

	t.Run("non-numeric age rejects the submission", func(t *testing.T) {
		_, err := PlanRegistration(registerReq("AF", "thirty"), 0, rules)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "age must be a whole number", dErrors.MessageOf(err))
	})

	t.Run("age outside the vaccine bounds", func(t *testing.T) {
		_, err := PlanRegistration(registerReq("AF", "10"), 0, rules)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeIneligible))

		_, err = PlanRegistration(registerReq("CZ", "46"), 0, rules)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeIneligible))

		_, err = PlanRegistration(registerReq("CZ", "45"), 0, rules)
		assert.NoError(t, err)
	})

	t.Run("unknown centre", func(t *testing.T) {
		req := registerReq("AF", "30")
		req.Centre = "VC9"
		_, err := PlanRegistration(req, 0, rules)
		require.Error(t, err)
		assert.Equal(t, "invalid vaccination centre selected", dErrors.MessageOf(err))
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		req := registerReq(" AF ", " 30 ")
		req.Name = "  Ada  "
		p, err := PlanRegistration(req, 0, rules)
		require.NoError(t, err)
		assert.Equal(t, "Ada", p.Name)
	})
}

func TestPlanDose(t *testing.T) {
	rules := ReferenceRules()
	patient := &models.Patient{ID: "P0001", Name: "Ada", Age: 30, Centre: "VC1", VaccineCode: "AF"}
	first := &models.Dose{PatientID: "P0001", VaccineCode: "AF", Date: mustDate(t, "2024-01-01"), Label: vaccine.DoseFirst}

	req := func(dose, date string) models.AdministerDoseRequest {
		return models.AdministerDoseRequest{PatientID: "P0001", Dose: dose, Date: date}
	}

	t.Run("first dose without history", func(t *testing.T) {
		d, err := PlanDose(req("D1", "2024-01-01"), patient, nil, rules)
		require.NoError(t, err)
		assert.Equal(t, models.PatientID("P0001"), d.PatientID)
		assert.Equal(t, vaccine.Code("AF"), d.VaccineCode)
		assert.Equal(t, "2024-01-01", d.DateString())
		assert.Equal(t, vaccine.DoseFirst, d.Label)
	})

	t.Run("date format is checked before the patient", func(t *testing.T) {
		_, err := PlanDose(req("D1", "01/01/2024"), nil, nil, rules)
		require.Error(t, err)
		assert.Equal(t, "invalid date format, use YYYY-MM-DD", dErrors.MessageOf(err))
	})

	t.Run("unknown patient", func(t *testing.T) {
		_, err := PlanDose(req("D1", "2024-01-01"), nil, nil, rules)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("invalid dose label", func(t *testing.T) {
		_, err := PlanDose(req("D3", "2024-01-01"), patient, nil, rules)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("second dose interval", func(t *testing.T) {
		_, err := PlanDose(req("D2", "2024-01-10"), patient, first, rules)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wait 14 days")

		d, err := PlanDose(req("D2", "2024-01-15"), patient, first, rules)
		require.NoError(t, err)
		assert.Equal(t, vaccine.DoseSecond, d.Label)
	})

	t.Run("any prior dose blocks a first dose", func(t *testing.T) {
		onlySecond := &models.Dose{PatientID: "P0001", VaccineCode: "AF", Date: mustDate(t, "2020-01-01"), Label: vaccine.DoseSecond}
		_, err := PlanDose(req("D1", "2024-06-01"), patient, onlySecond, rules)
		require.Error(t, err)
		assert.Equal(t, "dose 1 already administered", dErrors.MessageOf(err))
	})

	t.Run("patient vaccine missing from the rules", func(t *testing.T) {
		orphan := &models.Patient{ID: "P0001", VaccineCode: "OLD"}
		_, err := PlanDose(req("D1", "2024-01-01"), orphan, nil, rules)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := vaccine.ParseDate(s)
	require.NoError(t, err)
	return d
}
