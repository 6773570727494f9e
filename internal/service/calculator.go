package service

import (
	"math"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
)

var activityFactors = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

var goalCalorieModifiers = map[model.FitnessGoal]float64{
	model.GoalMaintenance: 0,
	model.GoalFatLoss:     -500,
	model.GoalMuscleGain:  300,
	model.GoalWeightGain:  500,
}

type macroSplit struct {
	protein float64
	fat     float64
}

var goalMacros = map[model.FitnessGoal]macroSplit{
	model.GoalMaintenance: {protein: 0.30, fat: 0.25},
	model.GoalFatLoss:     {protein: 0.40, fat: 0.25},
	model.GoalMuscleGain:  {protein: 0.35, fat: 0.30},
	model.GoalWeightGain:  {protein: 0.25, fat: 0.35},
}

// BasalMetabolicRate computes BMR with the Mifflin-St Jeor equation.
func BasalMetabolicRate(b model.Biometrics) float64 {
	bmr := 10*b.WeightKg + 6.25*b.HeightCm - 5*float64(b.Age)
	if b.Gender == model.GenderFemale {
		return bmr - 161
	}
	return bmr + 5
}

// CalculateGoals derives daily nutrient goals from biometrics: TDEE from
// BMR and activity factor, a calorie adjustment for the fitness goal, and
// protein/fat targets from goal-specific calorie fractions (4 kcal per
// gram of protein, 9 per gram of fat). Fiber and water are fixed
// recommendations. Pure and deterministic; the caller decides whether the
// result replaces the stored goals.
func CalculateGoals(b model.Biometrics) model.NutrientGoals {
	tdee := BasalMetabolicRate(b) * activityFactors[b.ActivityLevel]
	calories := int(math.Round(tdee + goalCalorieModifiers[b.FitnessGoal]))
	split := goalMacros[b.FitnessGoal]
	return model.NutrientGoals{
		Calories:     calories,
		ProteinG:     math.Round(float64(calories) * split.protein / 4),
		FatG:         math.Round(float64(calories) * split.fat / 9),
		FiberG:       30,
		WaterGlasses: 8,
	}
}
