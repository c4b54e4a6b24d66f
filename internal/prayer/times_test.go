package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

func jakartaDate() time.Time {
	return time.Date(2024, time.March, 11, 0, 0, 0, 0, wib)
}

// within asserts that got falls inside the [lo, hi] clock window on the
// same date. Windows are generous on purpose: the low-precision solar
// ephemeris may differ a few minutes from official timetables.
func within(t *testing.T, got time.Time, loHour, loMin, hiHour, hiMin int) {
	t.Helper()
	lo := time.Date(got.Year(), got.Month(), got.Day(), loHour, loMin, 0, 0, got.Location())
	hi := time.Date(got.Year(), got.Month(), got.Day(), hiHour, hiMin, 0, 0, got.Location())
	assert.False(t, got.Before(lo), "got %v, want >= %v", got, lo)
	assert.False(t, got.After(hi), "got %v, want <= %v", got, hi)
}

func TestForDate_JakartaLocalCalculation(t *testing.T) {
	times := ForDate(jakartaDate(), DefaultLocation, nil)

	within(t, times.Fajr, 4, 30, 4, 50)
	within(t, times.Sunrise, 5, 45, 6, 10)
	within(t, times.Dhuhr, 11, 55, 12, 15)
	within(t, times.Asr, 15, 0, 15, 20)
	within(t, times.Maghrib, 17, 55, 18, 20)
	within(t, times.Isha, 19, 5, 19, 30)
}

func TestForDate_Ordering(t *testing.T) {
	dates := []time.Time{
		jakartaDate(),
		time.Date(2024, time.June, 21, 0, 0, 0, 0, wib),
		time.Date(2024, time.December, 21, 0, 0, 0, 0, wib),
	}
	for _, d := range dates {
		times := ForDate(d, DefaultLocation, nil)
		assert.True(t, times.Fajr.Before(times.Sunrise), "%s fajr/sunrise", d)
		assert.True(t, times.Sunrise.Before(times.Dhuhr), "%s sunrise/dhuhr", d)
		assert.True(t, times.Dhuhr.Before(times.Asr), "%s dhuhr/asr", d)
		assert.True(t, times.Asr.Before(times.Maghrib), "%s asr/maghrib", d)
		assert.True(t, times.Maghrib.Before(times.Isha), "%s maghrib/isha", d)
	}
}

func TestForDate_ZeroLocationFallsBackToJakarta(t *testing.T) {
	got := ForDate(jakartaDate(), Location{}, nil)
	want := ForDate(jakartaDate(), DefaultLocation, nil)
	assert.Equal(t, want, got)
}

func TestForDate_APITimingsTakePrecedence(t *testing.T) {
	api := &APITimings{
		Fajr:    "04:41",
		Sunrise: "05:57",
		Dhuhr:   "12:04",
		Asr:     "15:09",
		Maghrib: "18:07",
		Isha:    "19:15",
	}

	times := ForDate(jakartaDate(), DefaultLocation, api)

	require.Equal(t, 4, times.Fajr.Hour())
	require.Equal(t, 41, times.Fajr.Minute())
	assert.Equal(t, 18, times.Maghrib.Hour())
	assert.Equal(t, 7, times.Maghrib.Minute())
	assert.Equal(t, jakartaDate().Day(), times.Isha.Day())
}

func TestForDate_APITimingsStripTimezoneSuffix(t *testing.T) {
	api := &APITimings{
		Fajr:    "04:41 (WIB)",
		Sunrise: "05:57 (WIB)",
		Dhuhr:   "12:04 (WIB)",
		Asr:     "15:09 (WIB)",
		Maghrib: "18:07 (WIB)",
		Isha:    "19:15 (WIB)",
	}

	times := ForDate(jakartaDate(), DefaultLocation, api)
	assert.Equal(t, 4, times.Fajr.Hour())
	assert.Equal(t, 41, times.Fajr.Minute())
	assert.Equal(t, 19, times.Isha.Hour())
	assert.Equal(t, 15, times.Isha.Minute())
}

func TestForDate_EmptyAPIFallsBackToCalculation(t *testing.T) {
	got := ForDate(jakartaDate(), DefaultLocation, &APITimings{})
	want := ForDate(jakartaDate(), DefaultLocation, nil)
	assert.Equal(t, want, got)
}

func TestForDate_PartialAPIFallsBackToCalculation(t *testing.T) {
	// A payload carrying only Fajr must not leave the other five
	// instants at their zero value: that would make the Maghrib pivot
	// report "after Maghrib" from midnight onward.
	api := &APITimings{Fajr: "04:41"}
	date := jakartaDate()

	got := ForDate(date, DefaultLocation, api)
	want := ForDate(date, DefaultLocation, nil)
	assert.Equal(t, want, got)
	assert.False(t, got.Maghrib.IsZero())

	morning := time.Date(2024, time.March, 11, 10, 0, 0, 0, wib)
	assert.False(t, AfterMaghrib(morning, date, DefaultLocation, api))
}

func TestForDate_MalformedAPIFallsBackToCalculation(t *testing.T) {
	got := ForDate(jakartaDate(), DefaultLocation, &APITimings{Fajr: "not-a-time"})
	want := ForDate(jakartaDate(), DefaultLocation, nil)
	assert.Equal(t, want, got)
}

func TestAfterMaghrib(t *testing.T) {
	api := &APITimings{
		Fajr:    "04:41",
		Sunrise: "05:57",
		Dhuhr:   "12:04",
		Asr:     "15:09",
		Maghrib: "18:07",
		Isha:    "19:15",
	}
	date := jakartaDate()

	before := time.Date(2024, time.March, 11, 18, 6, 0, 0, wib)
	at := time.Date(2024, time.March, 11, 18, 7, 0, 0, wib)
	after := time.Date(2024, time.March, 11, 22, 0, 0, 0, wib)

	assert.False(t, AfterMaghrib(before, date, DefaultLocation, api))
	assert.True(t, AfterMaghrib(at, date, DefaultLocation, api))
	assert.True(t, AfterMaghrib(after, date, DefaultLocation, api))
}

func TestLocationIsZero(t *testing.T) {
	assert.True(t, Location{}.IsZero())
	assert.False(t, DefaultLocation.IsZero())
}
