package response

import (
	"viaggio_tours/internal/domain/entities"
)

type PricingComponentResponse struct {
	ID                 string `json:"id"`
	PricingAttributeID string `json:"pricing_attribute_id,omitempty"`
	AttributeName      string `json:"attribute_name"`
	Price              string `json:"price"`
}

type PricingPeriodResponse struct {
	ID             string                     `json:"id"`
	TourPackageID  string                     `json:"tour_package_id"`
	StartDate      string                     `json:"start_date"`
	EndDate        string                     `json:"end_date"`
	MealPlanID     string                     `json:"meal_plan_id"`
	NumberOfRooms  int                        `json:"number_of_rooms"`
	IsGroupPricing bool                       `json:"is_group_pricing"`
	Components     []PricingComponentResponse `json:"components"`
}

func FromPricingPeriod(p entities.PricingPeriod) PricingPeriodResponse {
	components := make([]PricingComponentResponse, 0, len(p.Components))
	for _, c := range p.Components {
		components = append(components, PricingComponentResponse{
			ID:                 c.ID,
			PricingAttributeID: c.PricingAttributeID,
			AttributeName:      c.AttributeName,
			Price:              c.Price,
		})
	}
	return PricingPeriodResponse{
		ID:             p.ID,
		TourPackageID:  p.TourPackageID,
		StartDate:      p.StartDate.Format("2006-01-02"),
		EndDate:        p.EndDate.Format("2006-01-02"),
		MealPlanID:     p.MealPlanID,
		NumberOfRooms:  p.NumberOfRooms,
		IsGroupPricing: p.IsGroupPricing,
		Components:     components,
	}
}

func FromPricingPeriods(periods []entities.PricingPeriod) []PricingPeriodResponse {
	out := make([]PricingPeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, FromPricingPeriod(p))
	}
	return out
}
