package model

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "SEDENTARY"
	ActivityLight      ActivityLevel = "LIGHT"
	ActivityModerate   ActivityLevel = "MODERATE"
	ActivityActive     ActivityLevel = "ACTIVE"
	ActivityVeryActive ActivityLevel = "VERY_ACTIVE"
)

type FitnessGoal string

const (
	GoalMaintenance FitnessGoal = "MAINTENANCE"
	GoalFatLoss     FitnessGoal = "FAT_LOSS"
	GoalMuscleGain  FitnessGoal = "MUSCLE_GAIN"
	GoalWeightGain  FitnessGoal = "WEIGHT_GAIN"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToUpper(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	}
	return "", fmt.Errorf("invalid gender %q (expected male or female)", s)
}

func ParseActivityLevel(s string) (ActivityLevel, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	switch ActivityLevel(normalized) {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return ActivityLevel(normalized), nil
	}
	return "", fmt.Errorf("invalid activity level %q (expected sedentary, light, moderate, active, or very-active)", s)
}

func ParseFitnessGoal(s string) (FitnessGoal, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	switch FitnessGoal(normalized) {
	case GoalMaintenance, GoalFatLoss, GoalMuscleGain, GoalWeightGain:
		return FitnessGoal(normalized), nil
	}
	return "", fmt.Errorf("invalid fitness goal %q (expected maintenance, fat-loss, muscle-gain, or weight-gain)", s)
}

// Biometrics is edited only through explicit user action and persists
// across sessions. FitnessGoal was added after the first release; records
// stored without it are backfilled to MAINTENANCE on load.
type Biometrics struct {
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	FitnessGoal   FitnessGoal   `json:"fitness_goal,omitempty"`
}

// NutrientGoals is a snapshot derived from biometrics on explicit request.
// It is persisted separately so later biometric edits leave it untouched
// until the user recomputes.
type NutrientGoals struct {
	Calories     int     `json:"calories"`
	ProteinG     float64 `json:"protein_g"`
	FatG         float64 `json:"fat_g"`
	FiberG       float64 `json:"fiber_g"`
	WaterGlasses int     `json:"water_glasses"`
}

// NutrientTotals is the accumulated intake for one calendar day.
type NutrientTotals struct {
	Calories     float64 `json:"calories"`
	ProteinG     float64 `json:"protein_g"`
	FatG         float64 `json:"fat_g"`
	FiberG       float64 `json:"fiber_g"`
	WaterGlasses int     `json:"water_glasses"`
}

// History maps a YYYY-MM-DD date key to that day's final totals. Only days
// with at least one positive value are ever recorded.
type History map[string]NutrientTotals

type AnalyzedFood struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// MealNutrients carries the nutrient breakdown of a single analyzed meal.
// Field names match the inference response schema.
type MealNutrients struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein"`
	FatG     float64 `json:"fat"`
	FiberG   float64 `json:"fiber"`
}

type MealAnalysisResult struct {
	Foods          []AnalyzedFood `json:"foods"`
	TotalNutrients MealNutrients  `json:"totalNutrients"`
	Summary        string         `json:"summary"`
}

func DefaultBiometrics() Biometrics {
	return Biometrics{
		WeightKg:      70,
		HeightCm:      170,
		Age:           30,
		Gender:        GenderMale,
		ActivityLevel: ActivityModerate,
		FitnessGoal:   GoalMaintenance,
	}
}

func DefaultGoals() NutrientGoals {
	return NutrientGoals{
		Calories:     2000,
		ProteinG:     150,
		FatG:         65,
		FiberG:       30,
		WaterGlasses: 8,
	}
}
