package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"viaggio_tours/internal/domain/entities"
	"viaggio_tours/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPricingPeriodNotFound = errors.New("pricing period not found")
	ErrInvalidPeriodID       = errors.New("invalid pricing period id")
	ErrInvalidPeriodDates    = errors.New("invalid pricing period dates")
	ErrNoPeriodComponents    = errors.New("pricing period has no components")
)

// IPricingPeriodUseCase exposes price-list administration.
//
// Overlap between periods is intentionally not validated here: the back
// office has always allowed overlapping entries, and the resolution engine
// reports them as ambiguous at query time. Enforcing non-overlap at write
// time is a product decision that has not been taken.

type IPricingPeriodUseCase interface {
	CreatePeriod(ctx context.Context, p entities.PricingPeriod) (entities.PricingPeriod, error)
	ListByTourPackageID(ctx context.Context, tourPackageID string) ([]entities.PricingPeriod, error)
	DeleteByID(ctx context.Context, tourPackageID, id string) error
}

type PricingPeriodUseCase struct {
	repo interfaces.IPricingPeriodRepository
}

var _ IPricingPeriodUseCase = (*PricingPeriodUseCase)(nil)

func NewPricingPeriodUseCase(repo interfaces.IPricingPeriodRepository) *PricingPeriodUseCase {
	return &PricingPeriodUseCase{repo: repo}
}

func (u *PricingPeriodUseCase) CreatePeriod(ctx context.Context, p entities.PricingPeriod) (entities.PricingPeriod, error) {
	p.TourPackageID = strings.TrimSpace(p.TourPackageID)
	if p.TourPackageID == "" {
		return entities.PricingPeriod{}, ErrInvalidTourPackageID
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() || p.EndDate.Before(p.StartDate) {
		return entities.PricingPeriod{}, ErrInvalidPeriodDates
	}
	p.MealPlanID = strings.TrimSpace(p.MealPlanID)
	if p.MealPlanID == "" {
		return entities.PricingPeriod{}, ErrMissingMealPlan
	}
	if p.NumberOfRooms < 1 {
		return entities.PricingPeriod{}, ErrInvalidRoomCount
	}
	if len(p.Components) == 0 {
		return entities.PricingPeriod{}, ErrNoPeriodComponents
	}

	p.ID = uuid.NewString()
	p.StartDate = p.StartDate.UTC().Truncate(24 * time.Hour)
	p.EndDate = p.EndDate.UTC().Truncate(24 * time.Hour)
	for i := range p.Components {
		if p.Components[i].ID == "" {
			p.Components[i].ID = uuid.NewString()
		}
		p.Components[i].AttributeName = strings.TrimSpace(p.Components[i].AttributeName)
	}

	return u.repo.Create(ctx, p)
}

func (u *PricingPeriodUseCase) ListByTourPackageID(ctx context.Context, tourPackageID string) ([]entities.PricingPeriod, error) {
	tourPackageID = strings.TrimSpace(tourPackageID)
	if tourPackageID == "" {
		return nil, ErrInvalidTourPackageID
	}
	return u.repo.ListByTourPackageID(ctx, tourPackageID)
}

func (u *PricingPeriodUseCase) DeleteByID(ctx context.Context, tourPackageID, id string) error {
	tourPackageID = strings.TrimSpace(tourPackageID)
	if tourPackageID == "" {
		return ErrInvalidTourPackageID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPeriodID
	}

	existing, err := u.repo.GetByID(ctx, tourPackageID, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrPricingPeriodNotFound
	}
	return u.repo.DeleteByID(ctx, tourPackageID, id)
}
