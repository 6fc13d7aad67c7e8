package vaccine

import (
	"fmt"
	"time"

	dErrors "vaxreg/pkg/domain-errors"
)

// CheckAge fails when age is below the vaccine's minimum or above its maximum.
func CheckAge(def Definition, age int) error {
	if age < def.MinAge {
		return dErrors.New(dErrors.CodeIneligible,
			fmt.Sprintf("patient is not eligible for this vaccine: minimum age is %d", def.MinAge))
	}
	if def.MaxAge != nil && age > *def.MaxAge {
		return dErrors.New(dErrors.CodeIneligible,
			fmt.Sprintf("patient is not eligible for this vaccine: maximum age is %d", *def.MaxAge))
	}
	return nil
}

// CheckDoseInterval decides whether a dose labelled label may be given on date,
// given the date of the patient's most recent dose (nil when none).
//
// Any prior dose blocks D1, whatever its label or age. D2 needs a prior dose
// at least IntervalDays earlier.
func CheckDoseInterval(def Definition, label DoseLabel, date time.Time, lastDose *time.Time) error {
	if lastDose == nil {
		if label == DoseSecond {
			return dErrors.New(dErrors.CodeIneligible, "no dose 1 found, administer dose 1 first")
		}
		return nil
	}
	if label == DoseFirst {
		return dErrors.New(dErrors.CodeIneligible, "dose 1 already administered")
	}
	if DaysBetween(*lastDose, date) < def.IntervalDays {
		return dErrors.New(dErrors.CodeIneligible,
			fmt.Sprintf("too early for second dose, wait %d days", def.IntervalDays))
	}
	return nil
}
