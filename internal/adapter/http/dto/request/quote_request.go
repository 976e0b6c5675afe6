package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidTravelDate = errors.New("invalid travel date")
	ErrInvalidRoomCount  = errors.New("invalid room count")
)

const travelDateLayout = "2006-01-02"

// RoomAllocationRequest mirrors one row of the room allocation grid in the
// back-office form. Only the quantity feeds the engine; the type/occupancy
// ids ride along for the caller's own records.
type RoomAllocationRequest struct {
	RoomTypeID      string `json:"room_type_id"`
	OccupancyTypeID string `json:"occupancy_type_id"`
	MealPlanID      string `json:"meal_plan_id"`
	Quantity        int    `json:"quantity"`
}

// ResolveQuoteRequest is the payload for POST /quotes/resolve. Rooms may be
// stated directly or as allocations to be summed.
type ResolveQuoteRequest struct {
	TourPackageID            string                  `json:"tour_package_id" binding:"required"`
	TravelDate               string                  `json:"travel_date" binding:"required"`
	MealPlanID               string                  `json:"meal_plan_id" binding:"required"`
	NumberOfRooms            int                     `json:"number_of_rooms"`
	RoomAllocations          []RoomAllocationRequest `json:"room_allocations"`
	MarkupPercent            float64                 `json:"markup_percent"`
	SelectedComponentIDs     []string                `json:"selected_component_ids"`
	ComponentRoomQuantities  map[string]int          `json:"component_room_quantities"`
	RequireExplicitSelection bool                    `json:"require_explicit_selection"`
}

func (r ResolveQuoteRequest) ResolveTourPackageID() string {
	return strings.TrimSpace(r.TourPackageID)
}

func (r ResolveQuoteRequest) ResolveTravelDate() (time.Time, error) {
	d, err := time.Parse(travelDateLayout, strings.TrimSpace(r.TravelDate))
	if err != nil {
		return time.Time{}, ErrInvalidTravelDate
	}
	return d, nil
}

// ResolveRooms prefers the explicit room count and falls back to summing the
// allocation quantities. Non-positive allocation rows are skipped.
func (r ResolveQuoteRequest) ResolveRooms() (int, error) {
	if r.NumberOfRooms > 0 {
		return r.NumberOfRooms, nil
	}
	total := 0
	for _, a := range r.RoomAllocations {
		if a.Quantity > 0 {
			total += a.Quantity
		}
	}
	if total > 0 {
		return total, nil
	}
	return 0, ErrInvalidRoomCount
}

// QuoteActionRequest is the payload for quote status transitions
// (confirm/reject/cancel) and reprice.
type QuoteActionRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

func (r QuoteActionRequest) ResolveQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}
