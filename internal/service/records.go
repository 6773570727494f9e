package service

import (
	"encoding/json"
	"fmt"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
)

// Fixed store keys. Every persisted record lives under one of these.
const (
	KeyBiometrics     = "biometrics"
	KeyGoals          = "goals"
	KeyDailyTotals    = "daily_totals"
	KeyHistory        = "history"
	KeyLastActiveDate = "last_active_date"
	KeySessionUser    = "session_user"
)

// biometricsFills is the backward-compatible default chain applied to
// every loaded biometrics record, oldest schema change first. Append a
// step here when a field is added to the record.
var biometricsFills = []func(*model.Biometrics){
	func(b *model.Biometrics) {
		if b.FitnessGoal == "" {
			b.FitnessGoal = model.GoalMaintenance
		}
	},
}

func LoadBiometrics(s Store) (model.Biometrics, bool, error) {
	raw, ok, err := s.Get(KeyBiometrics)
	if err != nil || !ok {
		return model.Biometrics{}, false, err
	}
	var b model.Biometrics
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return model.Biometrics{}, false, fmt.Errorf("decode stored biometrics: %w", err)
	}
	for _, fill := range biometricsFills {
		fill(&b)
	}
	return b, true, nil
}

func SaveBiometrics(s Store, b model.Biometrics) error {
	return putJSON(s, KeyBiometrics, b)
}

func LoadGoals(s Store) (model.NutrientGoals, bool, error) {
	var g model.NutrientGoals
	ok, err := getJSON(s, KeyGoals, &g)
	return g, ok, err
}

func SaveGoals(s Store, g model.NutrientGoals) error {
	return putJSON(s, KeyGoals, g)
}

func LoadTotals(s Store) (model.NutrientTotals, bool, error) {
	var t model.NutrientTotals
	ok, err := getJSON(s, KeyDailyTotals, &t)
	return t, ok, err
}

func SaveTotals(s Store, t model.NutrientTotals) error {
	return putJSON(s, KeyDailyTotals, t)
}

// LoadHistory returns an empty, usable map when no history has been
// recorded yet.
func LoadHistory(s Store) (model.History, error) {
	h := model.History{}
	if _, err := getJSON(s, KeyHistory, &h); err != nil {
		return nil, err
	}
	if h == nil {
		h = model.History{}
	}
	return h, nil
}

func SaveHistory(s Store, h model.History) error {
	return putJSON(s, KeyHistory, h)
}

// The last-active date is stored as the bare YYYY-MM-DD string.
func LoadLastActiveDate(s Store) (string, bool, error) {
	return s.Get(KeyLastActiveDate)
}

func SaveLastActiveDate(s Store, dateKey string) error {
	if err := s.Put(KeyLastActiveDate, dateKey); err != nil {
		return fmt.Errorf("save %s: %w", KeyLastActiveDate, err)
	}
	return nil
}

// LoadSessionUser returns the logged-in user name, empty when logged out.
func LoadSessionUser(s Store) (string, error) {
	name, _, err := s.Get(KeySessionUser)
	return name, err
}

func SaveSessionUser(s Store, name string) error {
	if err := s.Put(KeySessionUser, name); err != nil {
		return fmt.Errorf("save %s: %w", KeySessionUser, err)
	}
	return nil
}

func getJSON(s Store, key string, out any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode stored %s: %w", key, err)
	}
	return true, nil
}

func putJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Put(key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
