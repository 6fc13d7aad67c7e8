package vaccine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "vaxreg/pkg/domain-errors"
)

func TestReferenceTable(t *testing.T) {
	table := Reference()
	assert.Equal(t, []Code{"AF", "BV", "CZ", "DM", "EC"}, table.Codes())

	cz, ok := table.Lookup("CZ")
	require.True(t, ok)
	require.True(t, cz.HasMaxAge())
	assert.Equal(t, 45, *cz.MaxAge)
	assert.Equal(t, 21, cz.IntervalDays)

	_, ok = table.Lookup("ZZ")
	assert.False(t, ok)
}

func TestNewTable_Invariants(t *testing.T) {
	maxAge := 10
	cases := map[string]Definition{
		"empty code":       {Code: " ", Doses: 1},
		"zero doses":       {Code: "X", Doses: 0},
		"negative gap":     {Code: "X", Doses: 2, IntervalDays: -1},
		"negative min age": {Code: "X", Doses: 1, MinAge: -1},
		"max below min":    {Code: "X", Doses: 1, MinAge: 12, MaxAge: &maxAge},
	}
	for name, def := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewTable(def)
			assert.Error(t, err)
		})
	}

	t.Run("duplicate code", func(t *testing.T) {
		_, err := NewTable(Definition{Code: "X", Doses: 1}, Definition{Code: "X", Doses: 2})
		assert.ErrorContains(t, err, "defined twice")
	})
}

func TestParseDate_Strict(t *testing.T) {
	valid, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, valid.Day())

	for _, in := range []string{"", "2024-1-05", "2024/01/05", "05-01-2024", "2024-01-05T00:00:00Z", "2023-02-29", "24-01-05", "2024-01-05 "} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDate(in)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestParseDoseLabel(t *testing.T) {
	for _, l := range DoseLabels {
		got, err := ParseDoseLabel(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := ParseDoseLabel("D3")
	assert.Error(t, err)
	_, err = ParseDoseLabel("d1")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDate("2024-01-01")
	b, _ := ParseDate("2024-03-01")
	assert.Equal(t, 60, DaysBetween(a, b))
	assert.Equal(t, -60, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}
