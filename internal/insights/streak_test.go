package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateStreak_Empty(t *testing.T) {
	assert.Equal(t, Streak{}, CalculateStreak(nil, time.Now()))
}

func TestCalculateStreak_ConsecutiveThroughToday(t *testing.T) {
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
	dates := []string{"2024-03-18", "2024-03-19", "2024-03-20"}

	s := CalculateStreak(dates, now)
	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 3, s.Longest)
}

func TestCalculateStreak_YesterdayKeepsCurrent(t *testing.T) {
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
	dates := []string{"2024-03-18", "2024-03-19"}

	s := CalculateStreak(dates, now)
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, 2, s.Longest)
}

func TestCalculateStreak_GapBreaksCurrent(t *testing.T) {
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
	dates := []string{"2024-03-10", "2024-03-11", "2024-03-12", "2024-03-13", "2024-03-17"}

	s := CalculateStreak(dates, now)
	// Last active day is three days ago: no live streak.
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 4, s.Longest)
}

func TestCalculateStreak_DuplicatesIgnored(t *testing.T) {
	now := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
	dates := []string{"2024-03-19", "2024-03-19", "2024-03-20", "2024-03-20"}

	s := CalculateStreak(dates, now)
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, 2, s.Longest)
}
