package interfaces

import (
	"context"
	"viaggio_tours/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error)
}
