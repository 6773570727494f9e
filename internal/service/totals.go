package service

import "github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"

// AddMeal folds an analyzed meal into the running daily totals. Water is
// tracked separately and never changed by meals.
func AddMeal(totals model.NutrientTotals, meal model.MealNutrients) model.NutrientTotals {
	totals.Calories += meal.Calories
	totals.ProteinG += meal.ProteinG
	totals.FatG += meal.FatG
	totals.FiberG += meal.FiberG
	return totals
}

// AdjustWater shifts the water count by delta glasses, clamped at zero.
// There is no upper bound.
func AdjustWater(totals model.NutrientTotals, delta int) model.NutrientTotals {
	totals.WaterGlasses += delta
	if totals.WaterGlasses < 0 {
		totals.WaterGlasses = 0
	}
	return totals
}
