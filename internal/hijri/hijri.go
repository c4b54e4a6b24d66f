// Package hijri converts Gregorian dates to the tabular Hijri calendar.
//
// The conversion is the fixed arithmetic (Kuwaiti) algorithm: Julian Day
// Number from the Gregorian date, inverted into the 30-year/11-leap-year
// tabular cycle. It is deliberately NOT tied to moon sighting and can
// drift +/- 1 day from observation; the admin/user offset knob exists to
// correct exactly that drift, so the approximation must stay as-is.
//
// Input dates are time.Time values, so months are 1-indexed throughout.
package hijri

import (
	"math"
	"time"
)

// Date is a tabular Hijri date. Month is 1 (Muharram) through 12
// (Dzulhijjah).
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

const (
	// epochJDN is the astronomical Hijri epoch (15 July 622 CE).
	epochJDN = 1948084
	// cycleDays is the length of the 30-year tabular cycle.
	cycleDays = 10631
	// yearDays is the mean tabular year length.
	yearDays = float64(cycleDays) / 30.0
	// monthShift nudges month boundaries to match the tabular leap pattern.
	monthShift = 8.01 / 60.0
)

// julianDayNumber computes the JDN for a Gregorian calendar date using
// the standard century correction.
func julianDayNumber(year, month, day int) int {
	if month < 3 {
		year--
		month += 12
	}
	a := year / 100
	b := 2 - a + a/4
	return int(math.Floor(365.25*float64(year+4716))) +
		int(math.Floor(30.6001*float64(month+1))) +
		day + b - 1524
}

// ToHijri converts the calendar date of t into its tabular Hijri date.
// Any valid Gregorian date yields Day in [1,30] and Month in [1,12].
func ToHijri(t time.Time) Date {
	day := t.Day()
	if day < 1 {
		day = 1
	}
	jdn := julianDayNumber(t.Year(), int(t.Month()), day)

	z := float64(jdn - epochJDN)
	cycles := math.Floor(z / cycleDays)
	z -= cycleDays * cycles

	yearInCycle := math.Floor((z - monthShift) / yearDays)
	hijriYear := int(30*cycles + yearInCycle)
	z -= math.Floor(yearInCycle*yearDays + monthShift)

	month := int(math.Floor((z + 28.5001) / 29.5))
	if month == 13 {
		month = 12
	}
	hijriDay := int(z) - int(math.Floor(29.5001*float64(month)-29))

	return Date{Day: hijriDay, Month: month, Year: hijriYear}
}
