package insights

import (
	"sort"
	"time"
)

// Streak holds the consecutive-day counts for the heatmap header.
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// CalculateStreak computes the current and longest run of consecutive
// active days. The current streak survives when the last active day is
// today or yesterday relative to now.
func CalculateStreak(dates []string, now time.Time) Streak {
	if len(dates) == 0 {
		return Streak{}
	}

	unique := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		unique[d] = struct{}{}
	}

	sorted := make([]string, 0, len(unique))
	for d := range unique {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	days := make([]int64, 0, len(sorted))
	for _, d := range sorted {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			continue
		}
		days = append(days, t.Unix()/86400)
	}
	if len(days) == 0 {
		return Streak{}
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
	current := 0
	if today-days[len(days)-1] <= 1 {
		current = run
	}

	return Streak{Current: current, Longest: longest}
}
