package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"viaggio_tours/internal/adapter/http/handlers/mocks"
	"viaggio_tours/internal/domain/entities"
	"viaggio_tours/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDepositPaymentHandler_CreatePaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/quote-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "quote-1", json.RawMessage("{}")).Return(entities.DepositPayment{ID: "pay-1", QuoteID: "quote-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/quote-1", bytes.NewBufferString(""))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("quote not confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "quote-1", gomock.Any()).Return(entities.DepositPayment{}, usecase.ErrQuoteNotConfirmed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/quote-1", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with wrapped payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "quote-1", gomock.Any()).Return(entities.DepositPayment{ID: "pay-1", QuoteID: "quote-1", Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/quote-1", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDepositPaymentHandler_GetPaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "quote-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/quote-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("latest payment wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		older := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		newer := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
		uc.EXPECT().ListByQuoteID(gomock.Any(), "quote-1").Return([]entities.DepositPayment{
			{ID: "pay-1", QuoteID: "quote-1", Date: older, Status: entities.PaymentStatusDenied},
			{ID: "pay-2", QuoteID: "quote-1", Date: newer, Status: entities.PaymentStatusApproved},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/quote-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-2" {
			t.Fatalf("expected latest payment, got: %s", w.Body.String())
		}
	})
}

func TestReadGatewayPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(body string) (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		return c, w
	}

	t.Run("empty body becomes empty object", func(t *testing.T) {
		c, _ := newCtx("")
		got, err := readGatewayPayload(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != "{}" {
			t.Fatalf("expected {}, got %s", got)
		}
	})

	t.Run("invalid json rejected", func(t *testing.T) {
		c, _ := newCtx("{")
		if _, err := readGatewayPayload(c); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("mp_payload envelope unwrapped", func(t *testing.T) {
		c, _ := newCtx(`{"mp_payload":{"payment_method_id":"pix"}}`)
		got, err := readGatewayPayload(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload: %s", got)
		}
	})

	t.Run("null mp_payload rejected", func(t *testing.T) {
		c, _ := newCtx(`{"mp_payload":null}`)
		if _, err := readGatewayPayload(c); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bare payload passed through", func(t *testing.T) {
		c, _ := newCtx(`{"payment_method_id":"pix"}`)
		got, err := readGatewayPayload(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload: %s", got)
		}
	})
}

func TestMapDepositPaymentError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid quote id", usecase.ErrInvalidPaymentQuoteID, http.StatusBadRequest},
		{"gateway bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{"gateway unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{"quote not found", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"quote not confirmed", usecase.ErrQuoteNotConfirmed, http.StatusConflict},
		{"payment not found", usecase.ErrDepositPaymentNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapDepositPaymentError(tc.err); got.HTTPStatus != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got.HTTPStatus)
			}
		})
	}
}
