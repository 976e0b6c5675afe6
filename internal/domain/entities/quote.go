package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (tour package query).
//
// Domain notes:
//   - The pricing-service is the source of truth for quote/payment state.
//   - A quote starts pending and is confirmed/rejected by the operator, or
//     cancelled by either side.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusConfirmed QuoteStatus = "confirmed"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// QuoteLine is one component of a quote's price breakdown, kept for
// display and auditing.
type QuoteLine struct {
	ComponentID         string  `json:"component_id"`
	Name                string  `json:"name"`
	BasePrice           float64 `json:"base_price"`
	OccupancyMultiplier int     `json:"occupancy_multiplier"`
	RoomQuantity        int     `json:"room_quantity"`
	Amount              float64 `json:"amount"`
	Description         string  `json:"description"`
}

// Quote is the priced tour package query persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tour_package_id-index): tour_package_id
//
// Monetary representation:
//   - TotalPrice is the resolved total including markup; MarkupAmount records
//     the markup portion separately for auditing.

type Quote struct {
	ID            string      `json:"id"`
	TourPackageID string      `json:"tour_package_id"`
	TravelDate    time.Time   `json:"travel_date"`
	MealPlanID    string      `json:"meal_plan_id"`
	NumberOfRooms int         `json:"number_of_rooms"`
	TotalPrice    float64     `json:"total_price"`
	MarkupPercent float64     `json:"markup_percent"`
	MarkupAmount  float64     `json:"markup_amount"`
	Breakdown     []QuoteLine `json:"breakdown"`
	PeriodID      string      `json:"period_id"`
	Status        QuoteStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
