package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenithapp/zenith-server/internal/habits"
	"github.com/zenithapp/zenith-server/internal/prayer"
)

var wib = time.FixedZone("WIB", 7*3600)

var jakartaTimings = &prayer.APITimings{
	Fajr:    "04:41",
	Sunrise: "05:57",
	Dhuhr:   "12:04",
	Asr:     "15:09",
	Maghrib: "18:07",
	Isha:    "19:15",
}

// allSunnahActive enables every optional catalog habit.
func allSunnahActive() map[string]bool {
	active := make(map[string]bool)
	for _, h := range habits.Master {
		if h.Category == habits.CategorySunnah {
			active[h.ID] = true
		}
	}
	return active
}

func baseRequest(date time.Time, now time.Time) Request {
	return Request{
		Date: date,
		Now:  now,
		User: UserContext{
			Gender:       "male",
			ActiveHabits: allSunnahActive(),
		},
		Location:   prayer.DefaultLocation,
		APITimings: jakartaTimings,
	}
}

func ids(list []DynamicHabit) map[string]DynamicHabit {
	m := make(map[string]DynamicHabit, len(list))
	for _, h := range list {
		m[h.ID] = h
	}
	return m
}

// 2024-03-11 is a Monday and 2 Ramadhan 1445 in the tabular calendar.
func mondayRamadhan() time.Time {
	return time.Date(2024, time.March, 11, 0, 0, 0, 0, wib)
}

func noonOf(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())
}

func TestGenerateDailyHabits_WajibAlwaysPresent(t *testing.T) {
	req := baseRequest(mondayRamadhan(), noonOf(mondayRamadhan()))
	// Even with every preference disabled the five prayers stay.
	req.User.ActiveHabits = nil

	byID := ids(GenerateDailyHabits(req))
	for _, id := range habits.WajibPrayerIDs {
		assert.Contains(t, byID, id)
	}
	assert.NotContains(t, byID, "tahajjud")
}

func TestGenerateDailyHabits_MenstruatingFemaleSkipsPhysical(t *testing.T) {
	req := baseRequest(mondayRamadhan(), noonOf(mondayRamadhan()))
	req.User.Gender = "female"
	req.User.IsMenstruating = true

	result := GenerateDailyHabits(req)
	require.NotEmpty(t, result)

	for _, h := range result {
		assert.False(t, h.IsPhysical, "physical habit %s must be filtered out", h.ID)
	}

	byID := ids(result)
	assert.NotContains(t, byID, "sholat_subuh")
	assert.Contains(t, byID, "dzikir_pagi")
	assert.Contains(t, byID, "shalawat_target")
}

func TestGenerateDailyHabits_PreferenceFilter(t *testing.T) {
	req := baseRequest(mondayRamadhan(), noonOf(mondayRamadhan()))
	req.User.ActiveHabits = map[string]bool{"tahajjud": true}

	byID := ids(GenerateDailyHabits(req))
	assert.Contains(t, byID, "tahajjud")
	assert.NotContains(t, byID, "sholat_dhuha")
	assert.Contains(t, byID, "sholat_subuh")
}

func TestGenerateDailyHabits_WeekdayFilter(t *testing.T) {
	monday := mondayRamadhan()
	req := baseRequest(monday, noonOf(monday))

	byID := ids(GenerateDailyHabits(req))
	assert.Contains(t, byID, "puasa_senin")
	assert.NotContains(t, byID, "puasa_kamis")
	assert.NotContains(t, byID, "jumat_alkahfi")

	thursday := monday.AddDate(0, 0, 3)
	req = baseRequest(thursday, noonOf(thursday))
	byID = ids(GenerateDailyHabits(req))
	assert.NotContains(t, byID, "puasa_senin")
	assert.Contains(t, byID, "puasa_kamis")
}

func TestGenerateDailyHabits_AyyamulBidhHijriDates(t *testing.T) {
	// 2023-07-18 is 1 Muharram 1445, so the 13th falls on 2023-07-30.
	white := time.Date(2023, time.July, 30, 0, 0, 0, 0, wib)
	req := baseRequest(white, noonOf(white))
	byID := ids(GenerateDailyHabits(req))
	assert.Contains(t, byID, "puasa_ayyamul_bidh")

	ordinary := time.Date(2023, time.July, 20, 0, 0, 0, 0, wib)
	req = baseRequest(ordinary, noonOf(ordinary))
	byID = ids(GenerateDailyHabits(req))
	assert.NotContains(t, byID, "puasa_ayyamul_bidh")
}

func TestGenerateDailyHabits_TarawihOnlyInRamadhan(t *testing.T) {
	req := baseRequest(mondayRamadhan(), noonOf(mondayRamadhan()))
	byID := ids(GenerateDailyHabits(req))
	assert.Contains(t, byID, "sholat_tarawih")

	muharram := time.Date(2023, time.July, 20, 0, 0, 0, 0, wib)
	req = baseRequest(muharram, noonOf(muharram))
	byID = ids(GenerateDailyHabits(req))
	assert.NotContains(t, byID, "sholat_tarawih")
	assert.Contains(t, byID, "sholat_witir")
}

func TestGenerateDailyHabits_NightHabitsUseNextHijriAfterMaghrib(t *testing.T) {
	// 2024-03-09 is still Sya'ban during daytime, but after Maghrib the
	// night belongs to 1 Ramadhan: the first tarawih appears.
	eve := time.Date(2024, time.March, 9, 0, 0, 0, 0, wib)

	afternoon := baseRequest(eve, time.Date(2024, time.March, 9, 17, 0, 0, 0, wib))
	byID := ids(GenerateDailyHabits(afternoon))
	assert.NotContains(t, byID, "sholat_tarawih")

	night := baseRequest(eve, time.Date(2024, time.March, 9, 19, 30, 0, 0, wib))
	byID = ids(GenerateDailyHabits(night))
	assert.Contains(t, byID, "sholat_tarawih")

	// Day habits keep the regular Hijri date: ayyamul bidh must not leak
	// in just because the night rolled over.
	assert.NotContains(t, byID, "puasa_ayyamul_bidh")
}

func TestGenerateDailyHabits_SortOrder(t *testing.T) {
	req := baseRequest(mondayRamadhan(), noonOf(mondayRamadhan()))
	result := GenerateDailyHabits(req)
	require.NotEmpty(t, result)

	blockRank := make(map[habits.TimeBlock]int)
	for i, b := range habits.BlockOrder {
		blockRank[b] = i
	}

	for i := 1; i < len(result); i++ {
		prev, cur := result[i-1], result[i]
		if prev.TimeBlock == cur.TimeBlock {
			assert.GreaterOrEqual(t, prev.Weight, cur.Weight,
				"%s before %s within block %s", prev.ID, cur.ID, cur.TimeBlock)
		} else {
			assert.Less(t, blockRank[prev.TimeBlock], blockRank[cur.TimeBlock])
		}
	}
}

func TestGenerateDailyHabits_UnlockTimes(t *testing.T) {
	req := baseRequest(mondayRamadhan(), noonOf(mondayRamadhan()))
	byID := ids(GenerateDailyHabits(req))

	subuh := byID["sholat_subuh"]
	require.NotNil(t, subuh.UnlockTime)
	assert.Equal(t, 4, subuh.UnlockTime.Hour())
	assert.Equal(t, 41, subuh.UnlockTime.Minute())

	// Duha habits unlock at sunrise regardless of their block.
	dhuha := byID["sholat_dhuha"]
	require.NotNil(t, dhuha.UnlockTime)
	assert.Equal(t, 5, dhuha.UnlockTime.Hour())
	assert.Equal(t, 57, dhuha.UnlockTime.Minute())

	// Qiyam begins after Isha.
	tahajjud := byID["tahajjud"]
	require.NotNil(t, tahajjud.UnlockTime)
	assert.Equal(t, 19, tahajjud.UnlockTime.Hour())

	maghrib := byID["sholat_maghrib"]
	require.NotNil(t, maghrib.UnlockTime)
	assert.Equal(t, 18, maghrib.UnlockTime.Hour())
	assert.Equal(t, 7, maghrib.UnlockTime.Minute())

	// Anytime habits have no prayer anchor.
	assert.Nil(t, byID["tilawah_target"].UnlockTime)
	assert.Nil(t, byID["puasa_senin"].UnlockTime)
}

func TestGenerateDailyHabits_Deterministic(t *testing.T) {
	req := baseRequest(mondayRamadhan(), noonOf(mondayRamadhan()))
	first := GenerateDailyHabits(req)
	second := GenerateDailyHabits(req)
	assert.Equal(t, first, second)
}

func TestGenerateDailyHabits_WorksWithoutAPITimings(t *testing.T) {
	req := baseRequest(mondayRamadhan(), noonOf(mondayRamadhan()))
	req.APITimings = nil

	result := GenerateDailyHabits(req)
	require.NotEmpty(t, result)

	byID := ids(result)
	subuh := byID["sholat_subuh"]
	require.NotNil(t, subuh.UnlockTime)
	// Locally calculated Fajr for Jakarta lands in the usual early window.
	assert.Equal(t, 4, subuh.UnlockTime.Hour())
}
