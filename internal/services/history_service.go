package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/habits"
	"github.com/zenithapp/zenith-server/internal/insights"
	"github.com/zenithapp/zenith-server/internal/models"
	"github.com/zenithapp/zenith-server/internal/repository"
)

// HistoryService builds the history page: heatmap, streaks, trend
// analysis and the narrative insight card.
type HistoryService struct {
	logs *repository.LogRepository

	now func() time.Time
}

// NewHistoryService creates a new instance of HistoryService.
func NewHistoryService(logs *repository.LogRepository) *HistoryService {
	return &HistoryService{
		logs: logs,
		now:  time.Now,
	}
}

// HistoryView is the full payload of the history screen for one scope.
type HistoryView struct {
	Year  int                 `json:"year"`
	Scope habits.InsightScope `json:"scope"`
	// Heatmap maps each logged date to its scope-filtered daily score.
	Heatmap map[string]int        `json:"heatmap"`
	Streak  insights.Streak       `json:"streak"`
	Trend   *insights.TrendResult `json:"trend"`
	Insight insights.Insight      `json:"insight"`
}

// GetHistory computes the history view over one calendar year of logs.
func (s *HistoryService) GetHistory(ctx context.Context, user *models.User, year int, scopeStr string) (*HistoryView, error) {
	now := s.now()

	if year == 0 {
		year = now.Year()
	}
	if year < 2000 || year > now.Year()+1 {
		return nil, fmt.Errorf("invalid year: %d", year)
	}

	if scopeStr == "" {
		scopeStr = string(habits.ScopeGlobal)
	}
	if !habits.ValidScope(scopeStr) {
		return nil, fmt.Errorf("unknown insight scope: %s", scopeStr)
	}
	scope := habits.InsightScope(scopeStr)

	logs, err := s.logs.GetYearLogs(ctx, user.ID.Hex(), year)
	if err != nil {
		return nil, fmt.Errorf("failed to load year logs: %v", err)
	}

	heatmap := make(map[string]int, len(logs))
	activeDates := make([]string, 0, len(logs))
	for i := range logs {
		log := &logs[i]
		heatmap[log.Date] = insights.CalculateDailyScore(log, scope)
		if log.CompletedCount() > 0 {
			activeDates = append(activeDates, log.Date)
		}
	}

	userCtx := insights.UserContext{
		Gender:         user.Gender,
		IsMenstruating: user.Preferences.IsMenstruating,
	}

	trend := insights.AnalyzeTrends(logs, userCtx, scope, now)

	view := &HistoryView{
		Year:    year,
		Scope:   scope,
		Heatmap: heatmap,
		Streak:  insights.CalculateStreak(activeDates, now),
		Trend:   trend,
		Insight: insights.GenerateInsight(trend, userCtx, scope),
	}

	logrus.WithFields(logrus.Fields{
		"userID": user.ID.Hex(),
		"year":   year,
		"scope":  scope,
		"logs":   len(logs),
	}).Info("History view computed")

	return view, nil
}
