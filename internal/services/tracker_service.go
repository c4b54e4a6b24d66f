package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/engine"
	"github.com/zenithapp/zenith-server/internal/habits"
	"github.com/zenithapp/zenith-server/internal/hijri"
	"github.com/zenithapp/zenith-server/internal/insights"
	"github.com/zenithapp/zenith-server/internal/models"
	"github.com/zenithapp/zenith-server/internal/prayer"
	"github.com/zenithapp/zenith-server/internal/repository"
)

const dateLayout = "2006-01-02"

// TrackerService assembles the daily tracker view: eligible habits for
// the day, completion state from the log, prayer times and the Hijri
// header. It owns the log mutations too, since every action lands on
// the same (user, date) document.
type TrackerService struct {
	logs     *repository.LogRepository
	settings *repository.SettingRepository
	client   *prayer.Client

	// now is injectable for tests.
	now func() time.Time
}

// NewTrackerService creates a new instance of TrackerService.
func NewTrackerService(logs *repository.LogRepository, settings *repository.SettingRepository, client *prayer.Client) *TrackerService {
	return &TrackerService{
		logs:     logs,
		settings: settings,
		client:   client,
		now:      time.Now,
	}
}

// TrackerHabit is one row of the tracker: the day-specific habit entry
// plus its completion state from the log.
type TrackerHabit struct {
	engine.DynamicHabit
	Completed    bool `json:"completed"`
	CounterValue int  `json:"counterValue,omitempty"`
}

// TrackerView is the full payload of the daily tracker screen.
type TrackerView struct {
	Date       string `json:"date"`
	HijriLabel string `json:"hijriLabel"`
	MoonPhase  string `json:"moonPhase"`
	City       string `json:"city"`

	PrayerTimes prayer.Times   `json:"prayerTimes"`
	Habits      []TrackerHabit `json:"habits"`

	Score          int    `json:"score"`
	Notes          string `json:"notes,omitempty"`
	IsMenstruating bool   `json:"isMenstruating"`
}

// GetTracker builds the tracker view for one user and date. External
// failures (prayer API, missing settings) degrade to local fallbacks
// rather than erroring: the tracker must always render.
func (s *TrackerService) GetTracker(ctx context.Context, user *models.User, dateStr string) (*TrackerView, error) {
	now := s.now()

	if dateStr == "" {
		dateStr = now.Format(dateLayout)
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %v", err)
	}

	globalOffset, err := s.settings.GetInt(ctx, models.HijriOffsetKey, 0)
	if err != nil {
		logrus.WithError(err).Warn("Falling back to zero global hijri offset")
		globalOffset = 0
	}
	totalOffset := globalOffset + user.HijriOffset

	loc := prayer.DefaultLocation
	city := "Jakarta"
	if user.Location != nil {
		loc = prayer.Location{Lat: user.Location.Lat, Lng: user.Location.Lng}
		if user.Location.City != "" {
			city = user.Location.City
		}
	}

	// Best effort: a failed fetch just means the local astronomical
	// calculation takes over.
	timings, err := s.client.FetchTimings(ctx, date, loc)
	if err != nil {
		logrus.WithError(err).WithField("date", dateStr).Warn("Prayer API unavailable, using local calculation")
		timings = nil
	}

	dailyHabits := engine.GenerateDailyHabits(engine.Request{
		Date: date,
		Now:  now,
		User: engine.UserContext{
			Gender:         user.Gender,
			IsMenstruating: user.Preferences.IsMenstruating,
			ActiveHabits:   user.Preferences.ActiveHabits,
		},
		Location:    loc,
		HijriOffset: totalOffset,
		APITimings:  timings,
	})

	log, err := s.logs.GetLog(ctx, user.ID.Hex(), dateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily log: %v", err)
	}

	rows := make([]TrackerHabit, 0, len(dailyHabits))
	for _, h := range dailyHabits {
		h.Title = displayTitle(h.Definition, date, user.Gender)

		row := TrackerHabit{DynamicHabit: h}
		if log != nil {
			row.Completed = log.HasCompleted(h.ID)
			if h.Type == habits.TypeCounter {
				row.CounterValue = log.Counters[h.ID]
			}
		}
		rows = append(rows, row)
	}

	hijriDate := hijri.SmartDate(headerTime(now, date), totalOffset)

	view := &TrackerView{
		Date:        dateStr,
		HijriLabel:  hijri.FormatDate(hijriDate),
		MoonPhase:   hijri.MoonPhase(hijriDate.Day),
		City:        city,
		PrayerTimes: prayer.ForDate(date, loc, timings),
		Habits:      rows,
		Score:       insights.CalculateDailyScore(log, habits.ScopeGlobal),
	}
	if log != nil {
		view.Notes = log.Notes
		view.IsMenstruating = log.IsMenstruating
	}
	return view, nil
}

// headerTime picks the instant the Hijri header is resolved from. For
// today that is the live clock, so the 18:00 rollover advances the
// header after sunset. For any other requested date it is noon of that
// date: the header must describe the same day as the habit list and
// prayer times, and noon never triggers the rollover.
func headerTime(now, date time.Time) time.Time {
	if now.Format(dateLayout) == date.Format(dateLayout) {
		return now
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())
}

// displayTitle returns the label shown for a habit on a given date. On
// Fridays men pray Jumat in place of Zuhur; this is display only, the
// id, weight and category stay untouched.
func displayTitle(h habits.Definition, date time.Time, gender string) string {
	if h.ID == "sholat_zuhur" && gender == "male" && date.Weekday() == time.Friday {
		return "Sholat Jumat"
	}
	return h.Title
}

// ToggleHabit flips a habit's completion for the date and returns the
// new checked state.
func (s *TrackerService) ToggleHabit(ctx context.Context, userID, dateStr, habitID string) (bool, error) {
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return false, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %v", err)
	}
	if _, ok := habits.ByID(habitID); !ok {
		return false, fmt.Errorf("unknown habit id: %s", habitID)
	}
	return s.logs.ToggleHabit(ctx, userID, dateStr, habitID)
}

// SetCounter stores a counter habit's value for the date.
func (s *TrackerService) SetCounter(ctx context.Context, userID, dateStr, habitID string, value int) error {
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD: %v", err)
	}
	def, ok := habits.ByID(habitID)
	if !ok {
		return fmt.Errorf("unknown habit id: %s", habitID)
	}
	if def.Type != habits.TypeCounter {
		return fmt.Errorf("habit %s is not a counter", habitID)
	}
	if value < 0 {
		return fmt.Errorf("counter value must not be negative")
	}
	return s.logs.SetCounter(ctx, userID, dateStr, habitID, value)
}

// SetNote stores the day's free-text reflection.
func (s *TrackerService) SetNote(ctx context.Context, userID, dateStr, note string) error {
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD: %v", err)
	}
	if len(note) > 2000 {
		return fmt.Errorf("note too long")
	}
	return s.logs.SetNote(ctx, userID, dateStr, note)
}

// SetMenstruating flags a day as exempt from physical acts.
func (s *TrackerService) SetMenstruating(ctx context.Context, userID, dateStr string, value bool) error {
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD: %v", err)
	}
	return s.logs.SetMenstruating(ctx, userID, dateStr, value)
}
