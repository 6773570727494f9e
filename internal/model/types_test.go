package model_test

import (
	"testing"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
)

func TestParseGender(t *testing.T) {
	t.Parallel()

	if g, err := model.ParseGender(" male "); err != nil || g != model.GenderMale {
		t.Fatalf("parse male: got %q, %v", g, err)
	}
	if g, err := model.ParseGender("FEMALE"); err != nil || g != model.GenderFemale {
		t.Fatalf("parse female: got %q, %v", g, err)
	}
	if _, err := model.ParseGender("other"); err == nil {
		t.Fatal("expected error for unknown gender")
	}
}

func TestParseActivityLevelAcceptsDashes(t *testing.T) {
	t.Parallel()

	level, err := model.ParseActivityLevel("very-active")
	if err != nil {
		t.Fatalf("parse very-active: %v", err)
	}
	if level != model.ActivityVeryActive {
		t.Fatalf("expected VERY_ACTIVE, got %q", level)
	}
	if _, err := model.ParseActivityLevel("couch"); err == nil {
		t.Fatal("expected error for unknown activity level")
	}
}

func TestParseFitnessGoal(t *testing.T) {
	t.Parallel()

	goal, err := model.ParseFitnessGoal("fat-loss")
	if err != nil {
		t.Fatalf("parse fat-loss: %v", err)
	}
	if goal != model.GoalFatLoss {
		t.Fatalf("expected FAT_LOSS, got %q", goal)
	}
	if _, err := model.ParseFitnessGoal("bulk"); err == nil {
		t.Fatal("expected error for unknown fitness goal")
	}
}
