package pricing

import (
	"errors"

	"viaggio_tours/internal/domain/entities"
)

var ErrNoComponentsSelected = errors.New("no pricing components selected")

// SelectionMode controls how an empty component selection is treated.
//
// The two modes exist because different entry forms behave differently: the
// manual form prices every component by default, while the associate form
// requires the operator to tick components explicitly before pricing.
type SelectionMode int

const (
	// SelectAllWhenEmpty prices every component when no explicit selection
	// is supplied.
	SelectAllWhenEmpty SelectionMode = iota
	// RequireExplicit fails with ErrNoComponentsSelected when the selection
	// is empty.
	RequireExplicit
)

// AppliedMarkup records the markup portion of a total for auditing.
type AppliedMarkup struct {
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

// Options configures one aggregation run.
type Options struct {
	SelectionMode SelectionMode
	// SelectedComponentIDs limits pricing to these components. Empty means
	// "all" under SelectAllWhenEmpty and is an error under RequireExplicit.
	SelectedComponentIDs []string
	// RoomQuantities overrides the room quantity per component id; components
	// not present fall back to DefaultRooms.
	RoomQuantities map[string]int
	DefaultRooms   int
	// MarkupPercent, when > 0, adds totalBase × pct / 100 on top of the sum.
	MarkupPercent float64
}

// Aggregate prices the selected components and sums them into a Result with a
// per-component breakdown. All arithmetic stays in float64; rounding to two
// decimals happens only at presentation time so errors do not compound across
// components.
func Aggregate(components []entities.PricingComponent, opts Options) (Result, error) {
	selected := components
	if len(opts.SelectedComponentIDs) > 0 {
		want := make(map[string]bool, len(opts.SelectedComponentIDs))
		for _, id := range opts.SelectedComponentIDs {
			want[id] = true
		}
		selected = make([]entities.PricingComponent, 0, len(components))
		for _, c := range components {
			if want[c.ID] {
				selected = append(selected, c)
			}
		}
	} else if opts.SelectionMode == RequireExplicit {
		return Result{}, ErrNoComponentsSelected
	}

	totalBase := 0.0
	breakdown := make([]entities.QuoteLine, 0, len(selected))
	var malformed []string

	for _, c := range selected {
		qty := opts.DefaultRooms
		if override, ok := opts.RoomQuantities[c.ID]; ok {
			qty = override
		}

		cp := PriceComponent(c, qty)
		if !cp.PriceOK {
			malformed = append(malformed, c.ID)
		}
		totalBase += cp.Amount
		breakdown = append(breakdown, entities.QuoteLine{
			ComponentID:         c.ID,
			Name:                c.AttributeName,
			BasePrice:           cp.BasePrice,
			OccupancyMultiplier: cp.OccupancyMultiplier,
			RoomQuantity:        cp.RoomQuantity,
			Amount:              cp.Amount,
			Description:         cp.Description,
		})
	}

	res := Result{
		Status:                StatusMatched,
		TotalPrice:            totalBase,
		Breakdown:             breakdown,
		MalformedComponentIDs: malformed,
	}

	if opts.MarkupPercent > 0 {
		markup := totalBase * opts.MarkupPercent / 100
		res.TotalPrice = totalBase + markup
		res.AppliedMarkup = &AppliedMarkup{Percent: opts.MarkupPercent, Amount: markup}
	}

	return res, nil
}
