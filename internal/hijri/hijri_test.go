package hijri

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestToHijri_KnownDates(t *testing.T) {
	tests := []struct {
		name      string
		gregorian time.Time
		want      Date
	}{
		{"new year 1445", date(2023, time.July, 18), Date{Day: 1, Month: 1, Year: 1445}},
		{"early ramadhan 1445", date(2024, time.March, 11), Date{Day: 2, Month: 9, Year: 1445}},
		{"millennium", date(2000, time.January, 1), Date{Day: 25, Month: 9, Year: 1420}},
		{"dzulhijjah 1445", date(2024, time.June, 16), Date{Day: 10, Month: 12, Year: 1445}},
		{"ramadhan 1446 start", date(2025, time.February, 28), Date{Day: 1, Month: 9, Year: 1446}},
		{"muharram 1420", date(1999, time.April, 17), Date{Day: 2, Month: 1, Year: 1420}},
		{"far future", date(2030, time.December, 31), Date{Day: 7, Month: 9, Year: 1452}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHijri(tt.gregorian))
		})
	}
}

func TestToHijri_AlwaysInRange(t *testing.T) {
	start := time.Date(1990, time.January, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2060, time.December, 31, 12, 0, 0, 0, time.UTC)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		h := ToHijri(d)
		if h.Day < 1 || h.Day > 30 {
			t.Fatalf("day out of range for %s: %+v", d.Format("2006-01-02"), h)
		}
		if h.Month < 1 || h.Month > 12 {
			t.Fatalf("month out of range for %s: %+v", d.Format("2006-01-02"), h)
		}
	}
}

func TestToHijri_MonotonicOverDays(t *testing.T) {
	// Consecutive days never move the calendar backwards and never jump
	// by more than one day.
	start := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	prev := ToHijri(start)
	for i := 1; i < 800; i++ {
		cur := ToHijri(start.AddDate(0, 0, i))
		if cur.Year == prev.Year && cur.Month == prev.Month {
			assert.Equal(t, prev.Day+1, cur.Day, "non-contiguous day within month")
		} else {
			assert.Equal(t, 1, cur.Day, "month change must land on day 1")
		}
		prev = cur
	}
}

func TestSmartDate_EveningRollsToNextDay(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)

	evening := time.Date(2024, time.March, 11, 19, 0, 0, 0, wib)
	afternoon := time.Date(2024, time.March, 11, 17, 59, 0, 0, wib)

	assert.Equal(t, ToHijri(time.Date(2024, time.March, 12, 0, 0, 0, 0, wib)), SmartDate(evening, 0))
	assert.Equal(t, ToHijri(afternoon), SmartDate(afternoon, 0))
}

func TestSmartDate_RolloverBoundary(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	at1800 := time.Date(2024, time.March, 11, 18, 0, 0, 0, wib)
	at1759 := time.Date(2024, time.March, 11, 17, 59, 59, 0, wib)

	assert.NotEqual(t, SmartDate(at1759, 0), SmartDate(at1800, 0))
}

func TestSmartDate_OffsetShiftsConversion(t *testing.T) {
	base := date(2024, time.March, 11)

	for offset := -3; offset <= 3; offset++ {
		want := ToHijri(base.AddDate(0, 0, offset))
		assert.Equal(t, want, SmartDate(base, offset), "offset %d", offset)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "13 Ramadhan 1445 H", FormatDate(Date{Day: 13, Month: 9, Year: 1445}))
	assert.Equal(t, "1 Muharram 1445 H", FormatDate(Date{Day: 1, Month: 1, Year: 1445}))
	assert.Equal(t, "29 Dzulhijjah 1446 H", FormatDate(Date{Day: 29, Month: 12, Year: 1446}))
}

func TestMoonPhase_Bands(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "🌙"}, {3, "🌙"}, {28, "🌙"}, {30, "🌙"},
		{4, "🌓"}, {7, "🌓"},
		{23, "🌗"}, {27, "🌗"},
		{8, "🌔"}, {12, "🌔"}, {18, "🌔"}, {22, "🌔"},
		{13, "🌕"}, {15, "🌕"}, {17, "🌕"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MoonPhase(tt.day), "day %d", tt.day)
	}
}
