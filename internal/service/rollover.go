package service

import (
	"time"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/model"
)

const dateKeyLayout = "2006-01-02"

// DateKey renders t as the canonical YYYY-MM-DD key for its local
// calendar day.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ResolveDay runs the once-per-session day check. If the persisted
// last-active date matches today, the persisted totals are restored
// verbatim; otherwise totals start from zero and the zeroed record is
// written immediately, so a crash right after rollover cannot resurrect
// the previous day. Today's date key is persisted as the new last-active
// date in both branches, including the first run where none exists.
//
// The returned date key is fixed for the rest of the session: a session
// left open across midnight keeps accumulating into it until the next
// start.
func ResolveDay(s Store, now time.Time) (string, model.NutrientTotals, error) {
	today := DateKey(now)
	var totals model.NutrientTotals

	last, ok, err := LoadLastActiveDate(s)
	if err != nil {
		return "", totals, err
	}
	if ok && last == today {
		stored, found, err := LoadTotals(s)
		if err != nil {
			return "", totals, err
		}
		if found {
			totals = stored
		}
	} else {
		if err := SaveTotals(s, totals); err != nil {
			return "", totals, err
		}
	}

	if err := SaveLastActiveDate(s, today); err != nil {
		return "", totals, err
	}
	return today, totals, nil
}
