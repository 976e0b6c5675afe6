package entities

import "time"

// PricingPeriod is one row of a tour package's price list: a date range during
// which a specific (meal plan, room count) combination has defined prices.
//
// Storage model (DynamoDB):
//   - PK: tour_package_id
//   - SK: id
//
// Periods are authored by package-template administrators. Within one package
// no two periods should overlap on (date range, meal_plan_id, number_of_rooms);
// the resolution engine does not enforce this, it detects violations at query
// time and reports them as an ambiguous match.

type PricingPeriod struct {
	ID             string             `json:"id"`
	TourPackageID  string             `json:"tour_package_id"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	MealPlanID     string             `json:"meal_plan_id"`
	NumberOfRooms  int                `json:"number_of_rooms"`
	IsGroupPricing bool               `json:"is_group_pricing"`
	Components     []PricingComponent `json:"components"`
}

// PricingComponent is one named line-item price within a period, e.g.
// "Double Occupancy Per Person" or "Extra Bed".
//
// Price is kept as the free-text string captured by the back office. Parsing
// is the engine's job and is fail-soft: a malformed price degrades to 0 so a
// single bad entry never blocks the whole calculation.
type PricingComponent struct {
	ID                 string `json:"id"`
	PricingAttributeID string `json:"pricing_attribute_id"`
	AttributeName      string `json:"attribute_name"`
	Price              string `json:"price"`
}
