// Package prayer provides the six daily prayer instants for a date and
// coordinate. Externally supplied timings (the Kemenag-style API) take
// absolute precedence; otherwise the times are computed locally from
// solar position. The Maghrib instant doubles as the pivot for the lunar
// day change used by the eligibility engine.
package prayer

import (
	"math"
	"strings"
	"time"
)

// Location is a geographic coordinate.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultLocation is Jakarta. Used fail-open when a user has not set a
// location yet, so the tracker keeps working before onboarding finishes.
var DefaultLocation = Location{Lat: -6.2088, Lng: 106.8456}

// IsZero reports whether the location is unset.
func (l Location) IsZero() bool {
	return l.Lat == 0 && l.Lng == 0
}

// Times holds the six canonical instants anchored to one calendar date.
type Times struct {
	Fajr    time.Time `json:"fajr"`
	Sunrise time.Time `json:"sunrise"`
	Dhuhr   time.Time `json:"dhuhr"`
	Asr     time.Time `json:"asr"`
	Maghrib time.Time `json:"maghrib"`
	Isha    time.Time `json:"isha"`
}

// APITimings carries externally sourced HH:MM strings. A trailing
// timezone annotation like "04:38 (WIB)" is tolerated and stripped.
type APITimings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Calculation convention: Kemenag-style twilight angles with the Shafi
// asr shadow factor, matching Indonesian official timetables closely.
const (
	fajrAngle    = 20.0
	ishaAngle    = 18.0
	horizonAngle = 0.833 // sunrise/sunset refraction + solar radius
	asrShadow    = 1.0   // Shafi school
)

// ForDate returns the prayer times for the given date. When api is
// non-nil and all six fields parse, the external values are placed onto
// the date and returned verbatim. A partial or malformed payload falls
// back to the local calculation wholesale: a zero-value instant would
// corrupt the Maghrib pivot and every unlock time built from it. A zero
// location falls back to Jakarta rather than failing.
func ForDate(date time.Time, loc Location, api *APITimings) Times {
	if api != nil && api.Fajr != "" {
		if t, ok := parseAPITimings(date, api); ok {
			return t
		}
	}
	if loc.IsZero() {
		loc = DefaultLocation
	}
	return calculate(date, loc)
}

// AfterMaghrib reports whether now is at or past the Maghrib instant of
// the given date/location. This is the pivot for the effective Hijri
// date of night habits: once true, the night belongs to the next lunar
// day.
func AfterMaghrib(now, date time.Time, loc Location, api *APITimings) bool {
	times := ForDate(date, loc, api)
	return !now.Before(times.Maghrib)
}

func parseAPITimings(date time.Time, api *APITimings) (Times, bool) {
	fajr, ok := parseClock(date, api.Fajr)
	if !ok {
		return Times{}, false
	}
	sunrise, ok := parseClock(date, api.Sunrise)
	if !ok {
		return Times{}, false
	}
	dhuhr, ok := parseClock(date, api.Dhuhr)
	if !ok {
		return Times{}, false
	}
	asr, ok := parseClock(date, api.Asr)
	if !ok {
		return Times{}, false
	}
	maghrib, ok := parseClock(date, api.Maghrib)
	if !ok {
		return Times{}, false
	}
	isha, ok := parseClock(date, api.Isha)
	if !ok {
		return Times{}, false
	}
	return Times{Fajr: fajr, Sunrise: sunrise, Dhuhr: dhuhr, Asr: asr, Maghrib: maghrib, Isha: isha}, true
}

// parseClock puts an "HH:MM" string onto the calendar date, stripping a
// trailing annotation such as " (WIB)".
func parseClock(date time.Time, raw string) (time.Time, bool) {
	clean := raw
	if idx := strings.Index(clean, " "); idx > 0 {
		clean = clean[:idx]
	}
	parsed, err := time.Parse("15:04", clean)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), true
}

// calculate derives the six instants from solar position for the date's
// local timezone.
func calculate(date time.Time, loc Location) Times {
	decl, eqt := sunPosition(julianDate(date) - loc.Lng/(15.0*24.0))

	noonUTC := fixHour(12-eqt) - loc.Lng/15.0

	fajr := noonUTC - hourAngle(fajrAngle, loc.Lat, decl)
	sunrise := noonUTC - hourAngle(horizonAngle, loc.Lat, decl)
	asr := noonUTC + hourAngle(asrAngle(asrShadow, loc.Lat, decl), loc.Lat, decl)
	maghrib := noonUTC + hourAngle(horizonAngle, loc.Lat, decl)
	isha := noonUTC + hourAngle(ishaAngle, loc.Lat, decl)

	return Times{
		Fajr:    clockTime(date, fajr),
		Sunrise: clockTime(date, sunrise),
		Dhuhr:   clockTime(date, noonUTC+2.0/60.0),
		Asr:     clockTime(date, asr),
		Maghrib: clockTime(date, maghrib),
		Isha:    clockTime(date, isha),
	}
}

// julianDate returns the astronomical Julian date at local noon of the
// given calendar date.
func julianDate(t time.Time) float64 {
	year, month, day := t.Year(), int(t.Month()), t.Day()
	if month < 3 {
		year--
		month += 12
	}
	a := year / 100
	b := 2 - a + a/4
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + float64(b) - 1524.5 + 0.5
}

// sunPosition returns the solar declination (degrees) and the equation
// of time (hours) for a Julian date, using the low-precision ephemeris.
func sunPosition(jd float64) (decl, eqt float64) {
	d := jd - 2451545.0

	g := fixAngle(357.529 + 0.98560028*d)
	q := fixAngle(280.459 + 0.98564736*d)
	l := fixAngle(q + 1.915*sinDeg(g) + 0.020*sinDeg(2*g))
	e := 23.439 - 0.00000036*d

	decl = radToDeg(math.Asin(sinDeg(e) * sinDeg(l)))
	ra := radToDeg(math.Atan2(cosDeg(e)*sinDeg(l), cosDeg(l))) / 15.0
	eqt = q/15.0 - fixHour(ra)
	return decl, eqt
}

// hourAngle returns the hours between solar noon and the instant the sun
// is `angle` degrees below the horizon.
func hourAngle(angle, lat, decl float64) float64 {
	num := -sinDeg(angle) - sinDeg(decl)*sinDeg(lat)
	den := cosDeg(decl) * cosDeg(lat)
	ratio := num / den
	// Clamp for extreme latitudes where the sun never reaches the angle.
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}
	return radToDeg(math.Acos(ratio)) / 15.0
}

// asrAngle converts the shadow-length factor into the solar depression
// angle at asr time.
func asrAngle(shadow, lat, decl float64) float64 {
	return -radToDeg(math.Atan(1.0 / (shadow + math.Tan(degToRad(math.Abs(lat-decl))))))
}

// clockTime anchors a UTC hour value onto the calendar date in its
// timezone.
func clockTime(date time.Time, utcHours float64) time.Time {
	_, offsetSec := date.Zone()
	local := fixHour(utcHours + float64(offsetSec)/3600.0)
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(local * float64(time.Hour))).Round(time.Minute)
}

func fixAngle(a float64) float64 { return a - 360.0*math.Floor(a/360.0) }
func fixHour(h float64) float64  { return h - 24.0*math.Floor(h/24.0) }

func degToRad(d float64) float64 { return d * math.Pi / 180.0 }
func radToDeg(r float64) float64 { return r * 180.0 / math.Pi }
func sinDeg(d float64) float64   { return math.Sin(degToRad(d)) }
func cosDeg(d float64) float64   { return math.Cos(degToRad(d)) }
