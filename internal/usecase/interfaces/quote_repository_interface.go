package interfaces

import (
	"context"
	"viaggio_tours/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The pricing-service must be able to:
//   - create a quote when a resolution matches
//   - update quote status by id (confirm/reject/cancel)
//   - update the stored total when a quote is repriced

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByTourPackageID(ctx context.Context, tourPackageID string) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	UpdatePricingByID(ctx context.Context, id string, totalPrice, markupAmount float64, breakdown []entities.QuoteLine, periodID string) (entities.Quote, error)
}
