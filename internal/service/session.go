package service

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
)

// Session is the application state for one run: current goals, today's
// totals, recorded history, and the last meal analysis. All mutations go
// through its methods, which persist in a fixed order: today's totals
// unconditionally, then history only when the non-zero rule changed it.
type Session struct {
	store Store
	log   *zap.Logger

	today        string
	goals        model.NutrientGoals
	totals       model.NutrientTotals
	history      model.History
	lastMeal     *model.MealAnalysisResult
	selectedDate string
}

// StartSession loads persisted state and runs the day-rollover check,
// which happens exactly once per session. Missing goals fall back to the
// stock defaults without being persisted.
func StartSession(s Store, now time.Time, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	goals, ok, err := LoadGoals(s)
	if err != nil {
		return nil, err
	}
	if !ok {
		goals = model.DefaultGoals()
	}
	history, err := LoadHistory(s)
	if err != nil {
		return nil, err
	}
	today, totals, err := ResolveDay(s, now)
	if err != nil {
		return nil, err
	}
	log.Debug("session started",
		zap.String("date", today),
		zap.Bool("stored_goals", ok),
		zap.Int("history_days", len(history)))
	return &Session{
		store:   s,
		log:     log,
		today:   today,
		goals:   goals,
		totals:  totals,
		history: history,
	}, nil
}

func (s *Session) Today() string                       { return s.today }
func (s *Session) Goals() model.NutrientGoals          { return s.goals }
func (s *Session) Totals() model.NutrientTotals        { return s.totals }
func (s *Session) LastMeal() *model.MealAnalysisResult { return s.lastMeal }

// HistoryFor distinguishes a day that was never recorded from one with
// stored totals.
func (s *Session) HistoryFor(dateKey string) (model.NutrientTotals, bool) {
	totals, ok := s.history[dateKey]
	return totals, ok
}

// HistoryDates lists recorded days, most recent first.
func (s *Session) HistoryDates() []string {
	dates := make([]string, 0, len(s.history))
	for key := range s.history {
		dates = append(dates, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// SelectHistoryDate is a view-state change only; it never touches the
// recorded history.
func (s *Session) SelectHistoryDate(dateKey string) {
	s.selectedDate = dateKey
}

func (s *Session) SelectedHistoryDate() string { return s.selectedDate }

// ApplyMealResult folds a successful analysis into today's totals and
// keeps it as the last result. A failed analysis never reaches this
// point, so totals and history stay untouched on error paths upstream.
func (s *Session) ApplyMealResult(result model.MealAnalysisResult) error {
	s.totals = AddMeal(s.totals, result.TotalNutrients)
	s.lastMeal = &result
	s.log.Debug("meal applied",
		zap.Float64("calories", result.TotalNutrients.Calories),
		zap.Int("foods", len(result.Foods)))
	return s.persistTotals()
}

func (s *Session) ChangeWater(delta int) error {
	s.totals = AdjustWater(s.totals, delta)
	return s.persistTotals()
}

// UpdateGoals replaces the goals snapshot wholesale and persists it.
func (s *Session) UpdateGoals(goals model.NutrientGoals) error {
	s.goals = goals
	return SaveGoals(s.store, goals)
}

func (s *Session) persistTotals() error {
	if err := SaveTotals(s.store, s.totals); err != nil {
		return err
	}
	history, changed := RecordIfNonZero(s.history, s.today, s.totals)
	s.history = history
	if !changed {
		return nil
	}
	s.log.Debug("history recorded", zap.String("date", s.today))
	return SaveHistory(s.store, s.history)
}
