package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"viaggio_tours/internal/domain/entities"
	"viaggio_tours/internal/usecase/interfaces"
)

var (
	ErrDepositPaymentNotFound     = errors.New("deposit payment not found")
	ErrInvalidPaymentQuoteID      = errors.New("invalid quote_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrQuoteNotConfirmed          = errors.New("quote not confirmed")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IDepositPaymentUseCase encapsulates the "collect a deposit" behavior.
//
// A deposit may only be collected against a confirmed quote; the charged
// amount always comes from the stored quote total, never from the caller's
// payload.

type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, payload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo      interfaces.IDepositPaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, payload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[deposit][usecase] create-and-approve start raw_quote_id=%q payload_len=%d", quoteID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()

	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentQuoteID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[deposit][usecase] invalid payload quote_id=%s", quoteID)
			return entities.DepositPayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}
	if u.quoteRepo == nil {
		return entities.DepositPayment{}, errors.New("quote repository not configured")
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Printf("[deposit][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		return entities.DepositPayment{}, err
	}
	if q.ID == "" {
		return entities.DepositPayment{}, ErrQuoteNotFound
	}
	if !mockMode && q.Status != entities.QuoteStatusConfirmed {
		log.Printf("[deposit][usecase] quote not confirmed quote_id=%s status=%s", quoteID, q.Status)
		return entities.DepositPayment{}, ErrQuoteNotConfirmed
	}
	log.Printf("[deposit][usecase] quote loaded quote_id=%s status=%s total=%.2f", quoteID, q.Status, q.TotalPrice)

	// Ensure basic linkage with the quote when the caller didn't provide it.
	// The provider uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quoteID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Deposit for quote %s", quoteID)
		}

		// The source of truth for amount is the quote in DB.
		reqMap["transaction_amount"] = q.TotalPrice
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)

	if mockMode {
		log.Printf("[deposit][usecase] mock mode enabled; skipping external payment gateway quote_id=%s", quoteID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		mockResp := map[string]any{}
		_ = json.Unmarshal(payload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = providerStatus
		mockResp["status_detail"] = "accredited"
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DepositPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[deposit][usecase] payment gateway failed quote_id=%s err=%v", quoteID, err)
			if isGatewayUnauthorized(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.DepositPayment{}, err
		}
	}
	log.Printf("[deposit][usecase] payment gateway success quote_id=%s provider_payment_id=%s provider_status=%s", quoteID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	p := entities.DepositPayment{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[deposit][usecase] payment repository create failed quote_id=%s payment_id=%s err=%v", quoteID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	log.Printf("[deposit][usecase] create-and-approve success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
