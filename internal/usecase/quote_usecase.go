package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"viaggio_tours/internal/domain/entities"
	"viaggio_tours/internal/domain/pricing"
	"viaggio_tours/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidTourPackageID = errors.New("invalid tour_package_id")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrMissingTravelDate    = errors.New("missing travel date")
	ErrMissingMealPlan      = errors.New("missing meal plan")
	ErrInvalidRoomCount     = errors.New("invalid room count")
	ErrInvalidMarkupPercent = errors.New("invalid markup percent")
)

// ResolveQuoteInput carries everything one pricing resolution needs. The
// tour package id locates the price list; the rest feeds the pricing engine
// unchanged.
type ResolveQuoteInput struct {
	TourPackageID            string
	TravelDate               time.Time
	MealPlanID               string
	NumberOfRooms            int
	MarkupPercent            float64
	SelectedComponentIDs     []string
	ComponentRoomQuantities  map[string]int
	RequireExplicitSelection bool
}

// QuoteResolution pairs the engine outcome with the quote persisted for it.
// Quote is zero-valued unless Result.Status is matched.
type QuoteResolution struct {
	Result pricing.Result
	Quote  entities.Quote
}

// IQuoteUseCase exposes quote operations.
//
// ResolveQuote is the write path of the pricing engine: fetch the package's
// price list, resolve it against the query, persist a pending quote on a
// match. Unmatched outcomes (no pricing defined / no match / ambiguous) are
// expected conditions carried in the resolution, not errors.

type IQuoteUseCase interface {
	ResolveQuote(ctx context.Context, in ResolveQuoteInput) (QuoteResolution, error)
	ConfirmByID(ctx context.Context, id string) (entities.Quote, error)
	RejectByID(ctx context.Context, id string) (entities.Quote, error)
	CancelByID(ctx context.Context, id string) (entities.Quote, error)
	RepriceQuote(ctx context.Context, id string) (QuoteResolution, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByTourPackageID(ctx context.Context, tourPackageID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	quotes  interfaces.IQuoteRepository
	periods interfaces.IPricingPeriodRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, periods interfaces.IPricingPeriodRepository) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, periods: periods}
}

func (u *QuoteUseCase) ResolveQuote(ctx context.Context, in ResolveQuoteInput) (QuoteResolution, error) {
	if err := validateResolveInput(&in); err != nil {
		return QuoteResolution{}, err
	}

	periods, err := u.periods.ListByTourPackageID(ctx, in.TourPackageID)
	if err != nil {
		log.Printf("[quote][usecase] period fetch failed tour_package_id=%s err=%v", in.TourPackageID, err)
		return QuoteResolution{}, err
	}

	mode := pricing.SelectAllWhenEmpty
	if in.RequireExplicitSelection {
		mode = pricing.RequireExplicit
	}

	result, err := pricing.Resolve(periods, pricing.Query{
		TravelDate:              in.TravelDate,
		MealPlanID:              in.MealPlanID,
		NumberOfRooms:           in.NumberOfRooms,
		MarkupPercent:           in.MarkupPercent,
		SelectedComponentIDs:    in.SelectedComponentIDs,
		ComponentRoomQuantities: in.ComponentRoomQuantities,
		SelectionMode:           mode,
	})
	if err != nil {
		return QuoteResolution{}, err
	}

	for _, id := range result.MalformedComponentIDs {
		log.Printf("[quote][usecase] malformed component price treated as 0 tour_package_id=%s component_id=%s", in.TourPackageID, id)
	}

	if result.Status != pricing.StatusMatched {
		log.Printf("[quote][usecase] resolution not matched tour_package_id=%s status=%s msg=%q", in.TourPackageID, result.Status, result.Message)
		return QuoteResolution{Result: result}, nil
	}

	markupAmount := 0.0
	if result.AppliedMarkup != nil {
		markupAmount = result.AppliedMarkup.Amount
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:            uuid.NewString(),
		TourPackageID: in.TourPackageID,
		TravelDate:    in.TravelDate,
		MealPlanID:    in.MealPlanID,
		NumberOfRooms: in.NumberOfRooms,
		TotalPrice:    result.TotalPrice,
		MarkupPercent: in.MarkupPercent,
		MarkupAmount:  markupAmount,
		Breakdown:     result.Breakdown,
		PeriodID:      result.MatchedPeriodID,
		Status:        entities.QuoteStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] quote create failed tour_package_id=%s err=%v", in.TourPackageID, err)
		return QuoteResolution{}, err
	}
	log.Printf("[quote][usecase] quote created quote_id=%s tour_package_id=%s period_id=%s total=%.2f", created.ID, created.TourPackageID, created.PeriodID, created.TotalPrice)
	return QuoteResolution{Result: result, Quote: created}, nil
}

// RepriceQuote re-runs the resolution for an existing quote against the
// current price list and stores the new total. The quote keeps its status;
// only the pricing fields change.
func (u *QuoteUseCase) RepriceQuote(ctx context.Context, id string) (QuoteResolution, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return QuoteResolution{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return QuoteResolution{}, err
	}
	if q.ID == "" {
		return QuoteResolution{}, ErrQuoteNotFound
	}

	periods, err := u.periods.ListByTourPackageID(ctx, q.TourPackageID)
	if err != nil {
		return QuoteResolution{}, err
	}

	result, err := pricing.Resolve(periods, pricing.Query{
		TravelDate:    q.TravelDate,
		MealPlanID:    q.MealPlanID,
		NumberOfRooms: q.NumberOfRooms,
		MarkupPercent: q.MarkupPercent,
	})
	if err != nil {
		return QuoteResolution{}, err
	}

	if result.Status != pricing.StatusMatched {
		log.Printf("[quote][usecase] reprice not matched quote_id=%s status=%s", id, result.Status)
		return QuoteResolution{Result: result}, nil
	}

	markupAmount := 0.0
	if result.AppliedMarkup != nil {
		markupAmount = result.AppliedMarkup.Amount
	}

	updated, err := u.quotes.UpdatePricingByID(ctx, id, result.TotalPrice, markupAmount, result.Breakdown, result.MatchedPeriodID)
	if err != nil {
		return QuoteResolution{}, err
	}
	if updated.ID == "" {
		return QuoteResolution{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] quote repriced quote_id=%s total=%.2f", id, updated.TotalPrice)
	return QuoteResolution{Result: result, Quote: updated}, nil
}

func (u *QuoteUseCase) ConfirmByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusConfirmed)
}

func (u *QuoteUseCase) RejectByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) CancelByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusCancelled)
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.quotes.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByTourPackageID(ctx context.Context, tourPackageID string) ([]entities.Quote, error) {
	tourPackageID = strings.TrimSpace(tourPackageID)
	if tourPackageID == "" {
		return nil, ErrInvalidTourPackageID
	}
	return u.quotes.ListByTourPackageID(ctx, tourPackageID)
}

// validateResolveInput rejects incomplete queries before any matching
// attempt, normalizing ids in place.
func validateResolveInput(in *ResolveQuoteInput) error {
	in.TourPackageID = strings.TrimSpace(in.TourPackageID)
	if in.TourPackageID == "" {
		return ErrInvalidTourPackageID
	}
	if in.TravelDate.IsZero() {
		return ErrMissingTravelDate
	}
	in.MealPlanID = strings.TrimSpace(in.MealPlanID)
	if in.MealPlanID == "" {
		return ErrMissingMealPlan
	}
	if in.NumberOfRooms < 1 {
		return ErrInvalidRoomCount
	}
	if in.MarkupPercent < 0 || in.MarkupPercent > 100 {
		return ErrInvalidMarkupPercent
	}
	return nil
}
