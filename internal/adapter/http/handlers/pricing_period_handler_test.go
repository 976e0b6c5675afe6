package handlers

import (
	"bytes"
	"context"
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

func TestPricingPeriodHandler_CreatePricingPeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingPeriodUseCase(ctrl)
		h := NewPricingPeriodHandler(uc)

		r := gin.New()
		r.POST("/v1/packages/:tour_package_id/periods", h.CreatePricingPeriod)

		req := httptest.NewRequest(http.MethodPost, "/v1/packages/pkg-1/periods", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingPeriodUseCase(ctrl)
		h := NewPricingPeriodHandler(uc)

		r := gin.New()
		r.POST("/v1/packages/:tour_package_id/periods", h.CreatePricingPeriod)

		uc.EXPECT().CreatePeriod(gomock.Any(), gomock.Any()).Return(entities.PricingPeriod{}, usecase.ErrInvalidPeriodDates)

		payload := `{"start_date":"2025-03-01","end_date":"2025-01-01","meal_plan_id":"MP1","number_of_rooms":2,"components":[{"attribute_name":"Room - DOUBLE","price":"5000"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/packages/pkg-1/periods", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingPeriodUseCase(ctrl)
		h := NewPricingPeriodHandler(uc)

		r := gin.New()
		r.POST("/v1/packages/:tour_package_id/periods", h.CreatePricingPeriod)

		created := entities.PricingPeriod{
			ID:            "p1",
			TourPackageID: "pkg-1",
			StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			MealPlanID:    "MP1",
			NumberOfRooms: 2,
			Components: []entities.PricingComponent{
				{ID: "c1", AttributeName: "Room - DOUBLE", Price: "5000"},
			},
		}
		uc.EXPECT().CreatePeriod(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PricingPeriod) (entities.PricingPeriod, error) {
			if p.TourPackageID != "pkg-1" {
				t.Fatalf("expected path package id, got %q", p.TourPackageID)
			}
			return created, nil
		})

		payload := `{"start_date":"2025-01-01","end_date":"2025-03-31","meal_plan_id":"MP1","number_of_rooms":2,"components":[{"attribute_name":"Room - DOUBLE","price":"5000"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/packages/pkg-1/periods", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPricingPeriodHandler_ListPricingPeriods(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPricingPeriodUseCase(ctrl)
	h := NewPricingPeriodHandler(uc)

	r := gin.New()
	r.GET("/v1/packages/:tour_package_id/periods", h.ListPricingPeriods)

	uc.EXPECT().ListByTourPackageID(gomock.Any(), "pkg-1").Return([]entities.PricingPeriod{
		{ID: "p1", TourPackageID: "pkg-1"},
		{ID: "p2", TourPackageID: "pkg-1"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/packages/pkg-1/periods", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(body))
	}
}

func TestPricingPeriodHandler_DeletePricingPeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingPeriodUseCase(ctrl)
		h := NewPricingPeriodHandler(uc)

		r := gin.New()
		r.DELETE("/v1/packages/:tour_package_id/periods/:period_id", h.DeletePricingPeriod)

		uc.EXPECT().DeleteByID(gomock.Any(), "pkg-1", "p1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/packages/pkg-1/periods/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingPeriodUseCase(ctrl)
		h := NewPricingPeriodHandler(uc)

		r := gin.New()
		r.DELETE("/v1/packages/:tour_package_id/periods/:period_id", h.DeletePricingPeriod)

		uc.EXPECT().DeleteByID(gomock.Any(), "pkg-1", "p404").Return(usecase.ErrPricingPeriodNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/packages/pkg-1/periods/p404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapPricingPeriodError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid dates", usecase.ErrInvalidPeriodDates, http.StatusBadRequest},
		{"no components", usecase.ErrNoPeriodComponents, http.StatusBadRequest},
		{"not found", usecase.ErrPricingPeriodNotFound, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapPricingPeriodError(tc.err); got.HTTPStatus != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got.HTTPStatus)
			}
		})
	}
}
