package pricing

import (
	"fmt"
	"time"

	"viaggio_tours/internal/domain/entities"
)

// Status classifies the outcome of one pricing resolution.
type Status string

const (
	StatusMatched          Status = "matched"
	StatusNoMatch          Status = "no_match"
	StatusAmbiguous        Status = "ambiguous"
	StatusNoPricingDefined Status = "no_pricing_defined"
)

// Query carries the caller-supplied criteria for one resolution. It lives
// only for the duration of the call and is never persisted by the engine.
type Query struct {
	TravelDate              time.Time
	MealPlanID              string
	NumberOfRooms           int
	MarkupPercent           float64
	SelectedComponentIDs    []string
	ComponentRoomQuantities map[string]int
	SelectionMode           SelectionMode
}

// Result is the outcome of one pricing resolution. TotalPrice and Breakdown
// are populated only when Status is StatusMatched; Message explains the
// failure otherwise.
type Result struct {
	Status          Status               `json:"status"`
	TotalPrice      float64              `json:"total_price"`
	Breakdown       []entities.QuoteLine `json:"breakdown,omitempty"`
	AppliedMarkup   *AppliedMarkup       `json:"applied_markup,omitempty"`
	MatchedPeriodID string               `json:"matched_period_id,omitempty"`
	Message         string               `json:"message,omitempty"`
	// MalformedComponentIDs lists components whose stored price failed to
	// parse and degraded to 0. Informational, for caller-side logging.
	MalformedComponentIDs []string `json:"-"`
}

// Resolve runs the full resolution: match periods against the query, then
// price the single matching period. It is pure and synchronous; fetching the
// period list is the caller's job.
//
// Outcomes other than a match are expected conditions, returned in the Result
// rather than as errors: no periods at all, no period matching the criteria,
// or more than one matching period. The last case is deliberately fail-closed.
// Silently picking one period would mask a data-authoring error (overlapping
// periods), so the engine refuses to auto-apply pricing and leaves the
// de-duplication to an administrator.
//
// The only error returned is ErrNoComponentsSelected under RequireExplicit.
func Resolve(periods []entities.PricingPeriod, q Query) (Result, error) {
	if len(periods) == 0 {
		return Result{
			Status:  StatusNoPricingDefined,
			Message: "tour package has no pricing periods defined",
		}, nil
	}

	matched := MatchPeriods(periods, q.TravelDate, q.MealPlanID, q.NumberOfRooms)

	switch len(matched) {
	case 0:
		return Result{
			Status:  StatusNoMatch,
			Message: fmt.Sprintf("no pricing period matches %s", criteria(q)),
		}, nil
	case 1:
		res, err := Aggregate(matched[0].Components, Options{
			SelectionMode:        q.SelectionMode,
			SelectedComponentIDs: q.SelectedComponentIDs,
			RoomQuantities:       q.ComponentRoomQuantities,
			DefaultRooms:         q.NumberOfRooms,
			MarkupPercent:        q.MarkupPercent,
		})
		if err != nil {
			return Result{}, err
		}
		res.MatchedPeriodID = matched[0].ID
		return res, nil
	default:
		return Result{
			Status: StatusAmbiguous,
			Message: fmt.Sprintf("%d pricing periods match %s; refusing to auto-apply pricing until the overlapping periods are de-duplicated",
				len(matched), criteria(q)),
		}, nil
	}
}

// criteria echoes the searched criteria verbatim so the operator can see what
// was looked up when diagnosing a failed resolution.
func criteria(q Query) string {
	return fmt.Sprintf("travel date %s, meal plan %s, %d Rooms",
		q.TravelDate.Format("2006-01-02"), q.MealPlanID, q.NumberOfRooms)
}
