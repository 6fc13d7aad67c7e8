// Package vaccine holds the vaccine rule table and the two eligibility checks
// run before a patient is registered or a dose is recorded.
package vaccine

import (
	"fmt"
	"sort"
	"strings"
)

// Code identifies a vaccine product, e.g. "AF".
type Code string

func (c Code) String() string {
	return string(c)
}

// Definition is one row of the rule table.
//
// Invariants:
//   - Code is non-empty
//   - Doses is at least 1
//   - IntervalDays and MinAge are never negative
//   - MaxAge, when set, is not below MinAge
type Definition struct {
	Code         Code
	Doses        int
	IntervalDays int
	MinAge       int
	MaxAge       *int
}

// HasMaxAge reports whether the vaccine has an upper age bound.
func (d Definition) HasMaxAge() bool {
	return d.MaxAge != nil
}

func (d Definition) validate() error {
	if strings.TrimSpace(string(d.Code)) == "" {
		return fmt.Errorf("vaccine code cannot be empty")
	}
	if d.Doses < 1 {
		return fmt.Errorf("vaccine %s: doses must be at least 1", d.Code)
	}
	if d.IntervalDays < 0 {
		return fmt.Errorf("vaccine %s: interval cannot be negative", d.Code)
	}
	if d.MinAge < 0 {
		return fmt.Errorf("vaccine %s: minimum age cannot be negative", d.Code)
	}
	if d.MaxAge != nil && *d.MaxAge < d.MinAge {
		return fmt.Errorf("vaccine %s: maximum age %d is below minimum age %d", d.Code, *d.MaxAge, d.MinAge)
	}
	return nil
}

// Table is the read-only rule table. The zero value is an empty table.
type Table struct {
	defs  map[Code]Definition
	codes []Code
}

// NewTable validates the definitions and builds a table keyed by code.
func NewTable(defs ...Definition) (Table, error) {
	t := Table{defs: make(map[Code]Definition, len(defs))}
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return Table{}, err
		}
		if _, dup := t.defs[d.Code]; dup {
			return Table{}, fmt.Errorf("vaccine %s defined twice", d.Code)
		}
		t.defs[d.Code] = d
		t.codes = append(t.codes, d.Code)
	}
	sort.Slice(t.codes, func(i, j int) bool { return t.codes[i] < t.codes[j] })
	return t, nil
}

// MustTable is NewTable for fixed tables; it panics on invalid input.
func MustTable(defs ...Definition) Table {
	t, err := NewTable(defs...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the definition for code.
func (t Table) Lookup(code Code) (Definition, bool) {
	d, ok := t.defs[code]
	return d, ok
}

// Codes returns the known codes in ascending order.
func (t Table) Codes() []Code {
	return append([]Code(nil), t.codes...)
}

// Definitions returns every definition ordered by code.
func (t Table) Definitions() []Definition {
	out := make([]Definition, 0, len(t.codes))
	for _, c := range t.codes {
		out = append(out, t.defs[c])
	}
	return out
}

// Len returns the number of vaccines in the table.
func (t Table) Len() int {
	return len(t.codes)
}

func intPtr(v int) *int { return &v }

// Reference returns the rule table shipped with the system.
func Reference() Table {
	return MustTable(
		Definition{Code: "AF", Doses: 2, IntervalDays: 14, MinAge: 12},
		Definition{Code: "BV", Doses: 2, IntervalDays: 21, MinAge: 18},
		Definition{Code: "CZ", Doses: 2, IntervalDays: 21, MinAge: 12, MaxAge: intPtr(45)},
		Definition{Code: "DM", Doses: 2, IntervalDays: 28, MinAge: 12},
		Definition{Code: "EC", Doses: 1, IntervalDays: 0, MinAge: 18},
	)
}
