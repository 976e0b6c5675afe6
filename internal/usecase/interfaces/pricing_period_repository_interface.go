package interfaces

import (
	"context"
	"viaggio_tours/internal/domain/entities"
)

// IPricingPeriodRepository abstracts DynamoDB persistence for a tour
// package's price list.
//
// The pricing-service must be able to:
//   - store periods authored by package-template administrators
//   - fetch the full price list of a package before resolving a quote
//   - remove periods flagged as overlapping duplicates

type IPricingPeriodRepository interface {
	Create(ctx context.Context, p entities.PricingPeriod) (entities.PricingPeriod, error)
	GetByID(ctx context.Context, tourPackageID, id string) (entities.PricingPeriod, error)
	ListByTourPackageID(ctx context.Context, tourPackageID string) ([]entities.PricingPeriod, error)
	DeleteByID(ctx context.Context, tourPackageID, id string) error
}
