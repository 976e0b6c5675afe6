package request

import (
	"strings"
	"time"

	"viaggio_tours/internal/domain/entities"
)

type PricingComponentRequest struct {
	PricingAttributeID string `json:"pricing_attribute_id"`
	AttributeName      string `json:"attribute_name" binding:"required"`
	Price              string `json:"price" binding:"required"`
}

// PricingPeriodRequest is the payload for creating one price-list period.
type PricingPeriodRequest struct {
	StartDate      string                    `json:"start_date" binding:"required"`
	EndDate        string                    `json:"end_date" binding:"required"`
	MealPlanID     string                    `json:"meal_plan_id" binding:"required"`
	NumberOfRooms  int                       `json:"number_of_rooms" binding:"required"`
	IsGroupPricing bool                      `json:"is_group_pricing"`
	Components     []PricingComponentRequest `json:"components" binding:"required"`
}

// ToEntity maps the payload onto the domain entity; bad dates come back as
// zero values and are rejected by the use case's validation.
func (r PricingPeriodRequest) ToEntity(tourPackageID string) entities.PricingPeriod {
	start, _ := time.Parse(travelDateLayout, strings.TrimSpace(r.StartDate))
	end, _ := time.Parse(travelDateLayout, strings.TrimSpace(r.EndDate))

	components := make([]entities.PricingComponent, 0, len(r.Components))
	for _, c := range r.Components {
		components = append(components, entities.PricingComponent{
			PricingAttributeID: strings.TrimSpace(c.PricingAttributeID),
			AttributeName:      c.AttributeName,
			Price:              strings.TrimSpace(c.Price),
		})
	}

	return entities.PricingPeriod{
		TourPackageID:  strings.TrimSpace(tourPackageID),
		StartDate:      start,
		EndDate:        end,
		MealPlanID:     strings.TrimSpace(r.MealPlanID),
		NumberOfRooms:  r.NumberOfRooms,
		IsGroupPricing: r.IsGroupPricing,
		Components:     components,
	}
}
