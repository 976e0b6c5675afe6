package response

import (
	"math"
	"time"

	"viaggio_tours/internal/domain/entities"
	"viaggio_tours/internal/domain/pricing"
)

type QuoteLineResponse struct {
	ComponentID         string  `json:"component_id"`
	Name                string  `json:"name"`
	BasePrice           float64 `json:"base_price"`
	OccupancyMultiplier int     `json:"occupancy_multiplier"`
	RoomQuantity        int     `json:"room_quantity"`
	Amount              float64 `json:"amount"`
	Description         string  `json:"description"`
}

type QuoteResponse struct {
	QuoteID       string              `json:"quote_id"`
	ID            string              `json:"id"`
	TourPackageID string              `json:"tour_package_id"`
	TravelDate    string              `json:"travel_date"`
	MealPlanID    string              `json:"meal_plan_id"`
	NumberOfRooms int                 `json:"number_of_rooms"`
	TotalPrice    float64             `json:"total_price"`
	MarkupPercent float64             `json:"markup_percent"`
	MarkupAmount  float64             `json:"markup_amount"`
	PeriodID      string              `json:"period_id"`
	Status        string              `json:"status"`
	Breakdown     []QuoteLineResponse `json:"breakdown"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ResolveOutcomeResponse wraps a resolution result. Quote is present only
// when the status is matched; Message explains the failure otherwise.
type ResolveOutcomeResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Quote   *QuoteResponse `json:"quote,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(q.Breakdown))
	for _, l := range q.Breakdown {
		lines = append(lines, QuoteLineResponse{
			ComponentID:         l.ComponentID,
			Name:                l.Name,
			BasePrice:           round2(l.BasePrice),
			OccupancyMultiplier: l.OccupancyMultiplier,
			RoomQuantity:        l.RoomQuantity,
			Amount:              round2(l.Amount),
			Description:         l.Description,
		})
	}
	return QuoteResponse{
		QuoteID:       q.ID,
		ID:            q.ID,
		TourPackageID: q.TourPackageID,
		TravelDate:    q.TravelDate.Format("2006-01-02"),
		MealPlanID:    q.MealPlanID,
		NumberOfRooms: q.NumberOfRooms,
		TotalPrice:    round2(q.TotalPrice),
		MarkupPercent: q.MarkupPercent,
		MarkupAmount:  round2(q.MarkupAmount),
		PeriodID:      q.PeriodID,
		Status:        string(q.Status),
		Breakdown:     lines,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func FromResolveOutcome(result pricing.Result, q entities.Quote) ResolveOutcomeResponse {
	out := ResolveOutcomeResponse{
		Status:  string(result.Status),
		Message: result.Message,
	}
	if q.ID != "" {
		qr := FromQuote(q)
		out.Quote = &qr
	}
	return out
}

// round2 applies two-decimal display rounding. This is the only place money
// is rounded; the engine keeps full precision throughout the calculation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
