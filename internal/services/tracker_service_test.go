package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenithapp/zenith-server/internal/habits"
	"github.com/zenithapp/zenith-server/internal/hijri"
)

func TestHeaderTime_PastDateIgnoresClock(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	now := time.Date(2024, time.March, 20, 19, 30, 0, 0, wib)
	past := time.Date(2024, time.March, 11, 0, 0, 0, 0, wib)

	got := headerTime(now, past)
	// The header must describe the requested day even though the live
	// clock is past the evening rollover.
	assert.Equal(t, past.Day(), got.Day())
	assert.Equal(t, 12, got.Hour())
	assert.Equal(t, hijri.ToHijri(past), hijri.SmartDate(got, 0))
}

func TestHeaderTime_TodayKeepsEveningRollover(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	now := time.Date(2024, time.March, 11, 19, 30, 0, 0, wib)
	today := time.Date(2024, time.March, 11, 0, 0, 0, 0, wib)

	got := headerTime(now, today)
	assert.Equal(t, now, got)
	assert.Equal(t, hijri.ToHijri(today.AddDate(0, 0, 1)), hijri.SmartDate(got, 0))
}

func TestDisplayTitle_FridayJumatForMen(t *testing.T) {
	zuhur, ok := habits.ByID("sholat_zuhur")
	require.True(t, ok)

	friday := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sholat Jumat", displayTitle(zuhur, friday, "male"))
	assert.Equal(t, "Sholat Zuhur", displayTitle(zuhur, friday, "female"))
	assert.Equal(t, "Sholat Zuhur", displayTitle(zuhur, monday, "male"))

	// Only the Zuhur slot is relabeled.
	asar, _ := habits.ByID("sholat_asar")
	assert.Equal(t, "Sholat Asar", displayTitle(asar, friday, "male"))
}
