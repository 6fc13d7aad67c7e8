package vaccine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "vaxreg/pkg/domain-errors"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

// TestCheckAge_Bounds checks every reference vaccine at and around its bounds.
func TestCheckAge_Bounds(t *testing.T) {
	for _, def := range Reference().Definitions() {
		t.Run(def.Code.String(), func(t *testing.T) {
			err := CheckAge(def, def.MinAge-1)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeIneligible))

			assert.NoError(t, CheckAge(def, def.MinAge))

			if def.HasMaxAge() {
				assert.NoError(t, CheckAge(def, *def.MaxAge))
				err := CheckAge(def, *def.MaxAge+1)
				require.Error(t, err)
				assert.Contains(t, err.Error(), "maximum age")
			} else {
				assert.NoError(t, CheckAge(def, 120))
			}
		})
	}
}

func TestCheckDoseInterval(t *testing.T) {
	af, ok := Reference().Lookup("AF")
	require.True(t, ok)
	first := date(t, "2024-01-01")

	tests := []struct {
		name    string
		label   DoseLabel
		date    string
		last    *time.Time
		wantErr string
	}{
		{name: "first dose without history", label: DoseFirst, date: "2024-01-01"},
		{name: "second dose without history", label: DoseSecond, date: "2024-01-15", wantErr: "no dose 1 found"},
		{name: "first dose after any prior dose", label: DoseFirst, date: "2025-06-01", last: &first, wantErr: "dose 1 already administered"},
		{name: "second dose nine days later", label: DoseSecond, date: "2024-01-10", last: &first, wantErr: "wait 14 days"},
		{name: "second dose thirteen days later", label: DoseSecond, date: "2024-01-14", last: &first, wantErr: "wait 14 days"},
		{name: "second dose exactly at interval", label: DoseSecond, date: "2024-01-15", last: &first},
		{name: "second dose well after interval", label: DoseSecond, date: "2024-03-01", last: &first},
		{name: "second dose dated before the prior dose", label: DoseSecond, date: "2023-12-25", last: &first, wantErr: "wait 14 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDoseInterval(af, tt.label, date(t, tt.date), tt.last)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeIneligible))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheckDoseInterval_ZeroInterval(t *testing.T) {
	ec, ok := Reference().Lookup("EC")
	require.True(t, ok)
	last := date(t, "2024-05-05")

	assert.NoError(t, CheckDoseInterval(ec, DoseSecond, last, &last), "same-day second dose meets a zero interval")
	assert.Error(t, CheckDoseInterval(ec, DoseSecond, date(t, "2024-05-04"), &last))
}
