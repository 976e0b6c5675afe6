package response

import (
	"time"

	"viaggio_tours/internal/domain/entities"
)

type DepositPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	QuoteID     string    `json:"quote_id"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
