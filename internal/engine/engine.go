// Package engine produces the ordered, filtered list of habit entries a
// user should see for one date. All inputs, including "now" and the
// calibration offset, are injected so every run is a pure function of
// its arguments.
package engine

import (
	"sort"
	"time"

	"github.com/zenithapp/zenith-server/internal/habits"
	"github.com/zenithapp/zenith-server/internal/hijri"
	"github.com/zenithapp/zenith-server/internal/prayer"
)

// UserContext is the slice of user state the engine needs.
type UserContext struct {
	Gender         string
	IsMenstruating bool
	// ActiveHabits maps optional habit ids to their enabled flag.
	ActiveHabits map[string]bool
}

// Request bundles one eligibility computation.
type Request struct {
	// Date is the tracked calendar day.
	Date time.Time
	// Now is the wall clock, used only for the Maghrib pivot.
	Now time.Time

	User        UserContext
	Location    prayer.Location
	HijriOffset int

	// APITimings, when present, override the local prayer calculation.
	APITimings *prayer.APITimings
}

// DynamicHabit is a catalog entry annotated for one specific day.
type DynamicHabit struct {
	habits.Definition
	// UnlockTime is the prayer instant gating the habit, nil when the
	// habit has no natural prayer anchor. Lock state itself is derived
	// downstream from (now, UnlockTime, completion), not here.
	UnlockTime *time.Time `json:"unlockTime,omitempty"`
}

// nightBlocks are the time blocks occurring after Maghrib. Once Maghrib
// has passed, these habits belong to the NEXT lunar day: the Hijri date
// they are filtered against is the one of date+1.
func isNightBlock(block habits.TimeBlock) bool {
	return block == habits.BlockSunset || block == habits.BlockBedtime
}

// GenerateDailyHabits runs the filter pipeline over the static catalog
// and annotates survivors with their unlock instants. The result is
// deterministic for identical inputs.
func GenerateDailyHabits(req Request) []DynamicHabit {
	times := prayer.ForDate(req.Date, req.Location, req.APITimings)
	maghribPassed := prayer.AfterMaghrib(req.Now, req.Date, req.Location, req.APITimings)
	weekday := int(req.Date.Weekday())

	// Two Hijri dates, resolved once per run: the regular one for day
	// habits and the next one for night habits after Maghrib.
	regularHijri := hijri.SmartDate(req.Date, req.HijriOffset)
	nextHijri := hijri.SmartDate(req.Date.AddDate(0, 0, 1), req.HijriOffset)

	var result []DynamicHabit
	for _, habit := range habits.Master {
		if habits.IsExemptPhysical(habit, req.User.IsMenstruating) {
			continue
		}

		if len(habit.AvailableDays) > 0 && !containsInt(habit.AvailableDays, weekday) {
			continue
		}

		effectiveHijri := regularHijri
		if isNightBlock(habit.TimeBlock) && maghribPassed {
			effectiveHijri = nextHijri
		}

		if len(habit.HijriDates) > 0 && !containsInt(habit.HijriDates, effectiveHijri.Day) {
			continue
		}
		if habit.HijriMonth != 0 && habit.HijriMonth != effectiveHijri.Month {
			continue
		}

		// Wajib habits always pass the preference filter.
		if habit.Category == habits.CategorySunnah && !req.User.ActiveHabits[habit.ID] {
			continue
		}

		result = append(result, DynamicHabit{
			Definition: habit,
			UnlockTime: unlockTime(habit, times),
		})
	}

	sortHabits(result)
	return result
}

// unlockTime maps a habit's semantic slot to its gating prayer instant.
func unlockTime(habit habits.Definition, times prayer.Times) *time.Time {
	// Duha-related habits unlock at sunrise wherever they sit.
	if habit.HasTag("duha") {
		return &times.Sunrise
	}

	switch habit.TimeBlock {
	case habits.BlockDawn:
		return &times.Fajr
	case habits.BlockMidday:
		return &times.Dhuhr
	case habits.BlockAfternoon:
		return &times.Asr
	case habits.BlockSunset:
		return &times.Maghrib
	case habits.BlockBedtime:
		return &times.Isha
	case habits.BlockDeepNight:
		// Qiyam begins after Isha; other deep-night habits have no anchor.
		if habit.HasTag("qiyam") {
			return &times.Isha
		}
	}
	return nil
}

// sortHabits orders by timeline block, then by descending weight so
// obligatory habits (weight 10) lead each section, then by id for a
// stable tiebreak.
func sortHabits(list []DynamicHabit) {
	blockRank := make(map[habits.TimeBlock]int, len(habits.BlockOrder))
	for i, b := range habits.BlockOrder {
		blockRank[b] = i
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].TimeBlock != list[j].TimeBlock {
			return blockRank[list[i].TimeBlock] < blockRank[list[j].TimeBlock]
		}
		if list[i].Weight != list[j].Weight {
			return list[i].Weight > list[j].Weight
		}
		return list[i].ID < list[j].ID
	})
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
