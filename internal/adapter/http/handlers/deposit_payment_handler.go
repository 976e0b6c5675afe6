package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	response "viaggio_tours/internal/adapter/http/dto/response"
	"viaggio_tours/internal/usecase"
	"viaggio_tours/pkg"

	"github.com/gin-gonic/gin"
)

// DepositPaymentHandler handles HTTP requests for quote deposit payments.

type DepositPaymentHandler struct {
	usecase usecase.IDepositPaymentUseCase
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc}
}

// CreatePaymentByQuoteID creates/approves a deposit payment using quote_id in path.
func (h *DepositPaymentHandler) CreatePaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[deposit][handler] create start quote_id=%s", quoteID)
	mockMode := isGatewayMockModeEnabled()
	payload, err := readGatewayPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[deposit][handler] payload invalid in mock mode; fallback to empty payload quote_id=%s err=%v", quoteID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][handler] invalid payload quote_id=%s err=%v", quoteID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), quoteID, payload)
	if err != nil {
		log.Printf("[deposit][handler] create failed quote_id=%s err=%v", quoteID, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] create success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetPaymentByQuoteID returns the latest deposit payment for a quote.
func (h *DepositPaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log.Printf("[deposit][handler] get-by-quote start quote_id=%s", quoteID)

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		log.Printf("[deposit][handler] get-by-quote failed quote_id=%s err=%v", quoteID, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[deposit][handler] get-by-quote not-found quote_id=%s", quoteID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[deposit][handler] get-by-quote success quote_id=%s payment_id=%s status=%s", quoteID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

func readGatewayPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotConfirmed):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_CONFIRMED", "Quote not confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isGatewayMockModeEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
