package service

import "github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"

// RecordIfNonZero inserts or overwrites the history entry for dateKey,
// but only when at least one nutrient value is strictly positive. All-zero
// totals leave history untouched so an empty day is never persisted, and
// an existing entry is never deleted. The returned flag reports whether
// history actually changed and needs to be persisted.
func RecordIfNonZero(h model.History, dateKey string, totals model.NutrientTotals) (model.History, bool) {
	if !hasIntake(totals) {
		return h, false
	}
	if existing, ok := h[dateKey]; ok && existing == totals {
		return h, false
	}
	if h == nil {
		h = model.History{}
	}
	h[dateKey] = totals
	return h, true
}

func hasIntake(t model.NutrientTotals) bool {
	return t.Calories > 0 || t.ProteinG > 0 || t.FatG > 0 || t.FiberG > 0 || t.WaterGlasses > 0
}
