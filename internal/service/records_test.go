package service_test

import (
	"strings"
	"testing"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/service"
)

func TestLoadBiometricsBackfillsFitnessGoal(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	// A record from before fitness goals existed.
	st.m[service.KeyBiometrics] = `{"weight_kg":82,"height_cm":180,"age":41,"gender":"FEMALE","activity_level":"LIGHT"}`

	b, ok, err := service.LoadBiometrics(st)
	if err != nil {
		t.Fatalf("load biometrics: %v", err)
	}
	if !ok {
		t.Fatal("expected stored biometrics to be found")
	}
	if b.FitnessGoal != model.GoalMaintenance {
		t.Fatalf("expected fitness goal backfilled to MAINTENANCE, got %q", b.FitnessGoal)
	}
	if b.WeightKg != 82 || b.Gender != model.GenderFemale {
		t.Fatalf("other fields must survive the fill, got %+v", b)
	}
}

func TestLoadBiometricsAbsentIsNotAnError(t *testing.T) {
	t.Parallel()

	_, ok, err := service.LoadBiometrics(newMemStore())
	if err != nil {
		t.Fatalf("expected no error on first run, got %v", err)
	}
	if ok {
		t.Fatal("expected absent biometrics")
	}
}

func TestLoadCorruptedRecordFailsLoudly(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	st.m[service.KeyGoals] = `{"calories": oops`

	_, _, err := service.LoadGoals(st)
	if err == nil {
		t.Fatal("expected decode error for corrupted record")
	}
	if !strings.Contains(err.Error(), service.KeyGoals) {
		t.Fatalf("error should name the corrupted key, got %v", err)
	}
}

func TestGoalsRoundTrip(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	goals := model.NutrientGoals{Calories: 2507, ProteinG: 188, FatG: 70, FiberG: 30, WaterGlasses: 8}
	if err := service.SaveGoals(st, goals); err != nil {
		t.Fatalf("save goals: %v", err)
	}
	loaded, ok, err := service.LoadGoals(st)
	if err != nil || !ok {
		t.Fatalf("load goals: present=%v err=%v", ok, err)
	}
	if loaded != goals {
		t.Fatalf("expected %+v, got %+v", goals, loaded)
	}
}

func TestLoadHistoryEmptyIsUsable(t *testing.T) {
	t.Parallel()

	h, err := service.LoadHistory(newMemStore())
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if h == nil {
		t.Fatal("expected a usable empty map")
	}
}
