// Package insights computes quality scores, behaviour trends and the
// narrative feedback shown on the history page. Everything here is a
// pure computation over already-fetched logs; "today" is injected so the
// window partitioning stays testable.
package insights

import (
	"time"

	"github.com/zenithapp/zenith-server/internal/habits"
	"github.com/zenithapp/zenith-server/internal/models"
)

// UserContext is the demographic context trend analysis depends on.
type UserContext struct {
	Gender         string `json:"gender"`
	IsMenstruating bool   `json:"isMenstruating"`
}

// TrendResult is the structured outcome of AnalyzeTrends.
type TrendResult struct {
	// AvgThisWeek and AvgLastWeek are mean scope-filtered daily scores
	// over the current and preceding 7-day windows.
	AvgThisWeek float64 `json:"avgThisWeek"`
	AvgLastWeek float64 `json:"avgLastWeek"`
	// ScoreVelocity is the week-over-week delta in score points.
	ScoreVelocity float64 `json:"scoreVelocity"`
	// AvgScore is the mean daily score over every log in the span.
	AvgScore float64 `json:"avgScore"`

	// WajibCompliance is the mean obligatory-prayer compliance (0-100)
	// across all logs, with menstruation days counted as fully exempt.
	WajibCompliance int `json:"wajibCompliance"`

	// WeakestDay is the Indonesian weekday name with the lowest mean
	// score, empty when no weekday has enough samples.
	WeakestDay string `json:"weakestDay"`

	// HabitInDanger is the title of the habit with the lowest completion
	// ratio below 50%, empty when none qualifies.
	HabitInDanger string `json:"habitInDanger"`

	// MenstruatingDates lists log dates flagged for exemption, passed
	// through for calendar highlighting.
	MenstruatingDates []string `json:"menstruatingDates"`
}

// DayNames are Indonesian weekday names indexed by time.Weekday.
var DayNames = []string{"Ahad", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

const (
	// minWeekdaySamples guards the weakest-day report against noise.
	minWeekdaySamples = 3
	// minHabitOccurrences guards the at-risk habit report likewise.
	minHabitOccurrences = 6
	// dangerRatio is the completion ratio below which a habit is at risk.
	dangerRatio = 0.5
)

// CalculateDailyScore sums the weights of completed habits belonging to
// the scope. The global scope sums across the whole catalog, so it is
// always >= any scoped score for the same log.
func CalculateDailyScore(log *models.DailyLog, scope habits.InsightScope) int {
	if log == nil {
		return 0
	}
	score := 0
	for _, id := range log.Checklists {
		def, ok := habits.ByID(id)
		if !ok {
			continue
		}
		if habits.InScope(id, scope) {
			score += def.Weight
		}
	}
	return score
}

// CheckWajibCompliance returns the percentage of the five daily prayers
// present in the log. A menstruating female user is exempt, not
// penalized: her compliance is 100 regardless of the checklist.
func CheckWajibCompliance(log *models.DailyLog, user UserContext) int {
	if log == nil {
		return 0
	}
	if user.Gender == "female" && log.IsMenstruating {
		return 100
	}
	done := 0
	for _, id := range habits.WajibPrayerIDs {
		if log.HasCompleted(id) {
			done++
		}
	}
	return done * 100 / len(habits.WajibPrayerIDs)
}

// isExemptLog reports whether a log day should be dropped from a scope's
// denominator entirely: during menstruation the wajib prayers do not
// apply, so counting those days would skew the averages downward.
func isExemptLog(log *models.DailyLog, user UserContext, scope habits.InsightScope) bool {
	return user.Gender == "female" && log.IsMenstruating && scope == habits.ScopeWajib
}

// AnalyzeTrends runs the full analysis over a span of logs. Returns nil
// when there is nothing to analyze; callers render the neutral insight
// in that case.
func AnalyzeTrends(logs []models.DailyLog, user UserContext, scope habits.InsightScope, now time.Time) *TrendResult {
	if len(logs) == 0 {
		return nil
	}

	sevenDaysAgo := now.AddDate(0, 0, -7)
	fourteenDaysAgo := now.AddDate(0, 0, -14)

	var allScores, currentScores, previousScores []int
	var complianceSum, complianceCount int
	var menstruatingDates []string

	weekdayScores := make(map[int][]int)

	for i := range logs {
		log := &logs[i]

		logDate, err := time.Parse("2006-01-02", log.Date)
		if err != nil {
			continue
		}

		if log.IsMenstruating {
			menstruatingDates = append(menstruatingDates, log.Date)
		}

		score := CalculateDailyScore(log, scope)
		allScores = append(allScores, score)

		if !logDate.Before(sevenDaysAgo) {
			currentScores = append(currentScores, score)
		} else if !logDate.Before(fourteenDaysAgo) {
			previousScores = append(previousScores, score)
		}

		complianceSum += CheckWajibCompliance(log, user)
		complianceCount++

		if !isExemptLog(log, user, scope) {
			weekday := int(logDate.Weekday())
			weekdayScores[weekday] = append(weekdayScores[weekday], score)
		}
	}

	result := &TrendResult{
		AvgThisWeek:       mean(currentScores),
		AvgLastWeek:       mean(previousScores),
		AvgScore:          mean(allScores),
		WeakestDay:        weakestWeekday(weekdayScores),
		HabitInDanger:     habitInDanger(logs, user, scope),
		MenstruatingDates: menstruatingDates,
	}
	result.ScoreVelocity = result.AvgThisWeek - result.AvgLastWeek
	if complianceCount > 0 {
		result.WajibCompliance = complianceSum / complianceCount
	}
	return result
}

// weakestWeekday picks the weekday with the lowest mean score among
// those with enough samples. Empty when no weekday qualifies: reporting
// "insufficient data" beats guessing.
func weakestWeekday(scores map[int][]int) string {
	lowest := -1.0
	weakest := -1
	for day := 0; day < 7; day++ {
		samples := scores[day]
		if len(samples) < minWeekdaySamples {
			continue
		}
		avg := mean(samples)
		if weakest == -1 || avg < lowest {
			lowest = avg
			weakest = day
		}
	}
	if weakest == -1 {
		return ""
	}
	return DayNames[weakest]
}

// habitInDanger finds the scope habit with the lowest completion ratio,
// provided it applied often enough and the ratio is genuinely poor.
// Menstruation days are excluded from a physical habit's denominator via
// the shared exemption rule.
func habitInDanger(logs []models.DailyLog, user UserContext, scope habits.InsightScope) string {
	var candidates []string
	if scope == habits.ScopeGlobal {
		// Global view watches the backbone: obligatory prayers plus the
		// rawatib sunnah attached to them.
		for _, def := range habits.Master {
			if def.Category == habits.CategoryWajib || def.HasTag("rawatib") {
				candidates = append(candidates, def.ID)
			}
		}
	} else {
		candidates = habits.InsightGroups[scope]
	}

	worstTitle := ""
	worstRatio := dangerRatio
	for _, id := range candidates {
		def, ok := habits.ByID(id)
		if !ok {
			continue
		}

		applicable, completed := 0, 0
		for i := range logs {
			log := &logs[i]
			if user.Gender == "female" && habits.IsExemptPhysical(def, log.IsMenstruating) {
				continue
			}
			applicable++
			if log.HasCompleted(id) {
				completed++
			}
		}

		if applicable < minHabitOccurrences {
			continue
		}
		ratio := float64(completed) / float64(applicable)
		if ratio < worstRatio {
			worstRatio = ratio
			worstTitle = def.Title
		}
	}
	return worstTitle
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
