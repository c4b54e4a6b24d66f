package hijri

import (
	"fmt"
	"time"
)

// maghribRolloverHour is the display heuristic for the lunar day change:
// from 18:00 local time onwards the next Gregorian day is converted.
// Habit eligibility uses the real Maghrib instant instead (see the
// prayer package); this heuristic only drives headers and glyphs.
const maghribRolloverHour = 18

// MonthNames are the Indonesian Hijri month names, indexed by Month-1.
var MonthNames = []string{
	"Muharram", "Safar", "Rabiul Awal", "Rabiul Akhir",
	"Jumadil Awal", "Jumadil Akhir", "Rajab", "Sya'ban",
	"Ramadhan", "Syawal", "Dzulqa'dah", "Dzulhijjah",
}

// SmartDate resolves the Hijri date for a local date-time: first the
// sunset rollover (hour >= 18 counts as the next day), then the combined
// calibration offset in days, then the tabular conversion.
func SmartDate(t time.Time, offset int) Date {
	working := t
	if t.Hour() >= maghribRolloverHour {
		working = working.AddDate(0, 0, 1)
	}
	working = working.AddDate(0, 0, offset)
	return ToHijri(working)
}

// FormatDate renders a Hijri date as e.g. "13 Ramadhan 1445 H".
func FormatDate(d Date) string {
	name := ""
	if d.Month >= 1 && d.Month <= 12 {
		name = MonthNames[d.Month-1]
	}
	return fmt.Sprintf("%d %s %d H", d.Day, name, d.Year)
}

// MoonPhase maps a Hijri day of month to one of five glyph categories.
// The banding is presentation-only; the only contract is a stable,
// deterministic mapping.
func MoonPhase(day int) string {
	switch {
	case day <= 3 || day >= 28:
		return "🌙" // crescent
	case day <= 7:
		return "🌓" // first quarter
	case day >= 23:
		return "🌗" // last quarter
	case day <= 12 || day >= 18:
		return "🌔" // gibbous
	default:
		return "🌕" // full, days 13-17
	}
}
