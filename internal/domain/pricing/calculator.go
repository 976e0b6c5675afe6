package pricing

import (
	"fmt"

	"viaggio_tours/internal/domain/entities"
)

// ComponentPrice is the priced form of a single component.
type ComponentPrice struct {
	BasePrice           float64
	PriceOK             bool
	OccupancyMultiplier int
	RoomQuantity        int
	Amount              float64
	Description         string
}

// PriceComponent computes base × occupancy multiplier × room quantity for one
// component. The base price parses fail-soft (see ParseAmount); PriceOK is
// false when the stored price string was malformed and the base degraded to 0.
//
// The description is an audit string of the form
// "5000 × 2 occupancy × 3 rooms = 30000"; the rooms clause is omitted when
// roomQuantity is 1.
func PriceComponent(c entities.PricingComponent, roomQuantity int) ComponentPrice {
	base, ok := ParseAmount(c.Price)
	multiplier := OccupancyMultiplier(c.AttributeName)
	amount := base * float64(multiplier) * float64(roomQuantity)

	var desc string
	if roomQuantity == 1 {
		desc = fmt.Sprintf("%s × %d occupancy = %s", formatAmount(base), multiplier, formatAmount(amount))
	} else {
		desc = fmt.Sprintf("%s × %d occupancy × %d rooms = %s", formatAmount(base), multiplier, roomQuantity, formatAmount(amount))
	}

	return ComponentPrice{
		BasePrice:           base,
		PriceOK:             ok,
		OccupancyMultiplier: multiplier,
		RoomQuantity:        roomQuantity,
		Amount:              amount,
		Description:         desc,
	}
}
