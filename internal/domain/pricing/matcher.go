package pricing

import (
	"time"

	"viaggio_tours/internal/domain/entities"
)

// MatchPeriods filters a package's price list down to the periods whose date
// range contains the travel date (inclusive on both ends, time-of-day ignored)
// and whose meal plan and room count match exactly. Room count is exact
// equality, not ≥. Original order is preserved.
//
// Malformed periods (start after end) simply never match; an empty input
// returns an empty result, which callers must report as "no pricing defined"
// rather than "no match for these criteria".
func MatchPeriods(periods []entities.PricingPeriod, travelDate time.Time, mealPlanID string, numberOfRooms int) []entities.PricingPeriod {
	d := dateOnly(travelDate)

	matched := make([]entities.PricingPeriod, 0, len(periods))
	for _, p := range periods {
		start := dateOnly(p.StartDate)
		end := dateOnly(p.EndDate)

		isDateMatch := !d.Before(start) && !d.After(end)
		isMealPlanMatch := p.MealPlanID == mealPlanID
		isRoomMatch := p.NumberOfRooms == numberOfRooms

		if isDateMatch && isMealPlanMatch && isRoomMatch {
			matched = append(matched, p)
		}
	}
	return matched
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
