package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"viaggio_tours/internal/domain/entities"
	mock_interfaces "viaggio_tours/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validPeriod() entities.PricingPeriod {
	return entities.PricingPeriod{
		TourPackageID: "pkg-1",
		StartDate:     testDate(2025, 1, 1),
		EndDate:       testDate(2025, 1, 31),
		MealPlanID:    "MP1",
		NumberOfRooms: 2,
		Components: []entities.PricingComponent{
			{AttributeName: " Double Occupancy Per Person ", Price: "5000"},
		},
	}
}

func TestPricingPeriodUseCase_CreatePeriod(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*entities.PricingPeriod)
			want   error
		}{
			{"blank package id", func(p *entities.PricingPeriod) { p.TourPackageID = " " }, ErrInvalidTourPackageID},
			{"zero start", func(p *entities.PricingPeriod) { p.StartDate = time.Time{} }, ErrInvalidPeriodDates},
			{"end before start", func(p *entities.PricingPeriod) { p.EndDate = p.StartDate.AddDate(0, 0, -1) }, ErrInvalidPeriodDates},
			{"blank meal plan", func(p *entities.PricingPeriod) { p.MealPlanID = "" }, ErrMissingMealPlan},
			{"zero rooms", func(p *entities.PricingPeriod) { p.NumberOfRooms = 0 }, ErrInvalidRoomCount},
			{"no components", func(p *entities.PricingPeriod) { p.Components = nil }, ErrNoPeriodComponents},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewPricingPeriodUseCase(nil)
				p := validPeriod()
				tc.mutate(&p)
				if _, err := uc.CreatePeriod(context.Background(), p); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("create success assigns ids and normalizes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingPeriodRepository(ctrl)
		uc := NewPricingPeriodUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PricingPeriod{})).DoAndReturn(
			func(_ context.Context, p entities.PricingPeriod) (entities.PricingPeriod, error) {
				if p.ID == "" {
					t.Fatalf("expected generated period id")
				}
				if p.Components[0].ID == "" {
					t.Fatalf("expected generated component id")
				}
				if p.Components[0].AttributeName != "Double Occupancy Per Person" {
					t.Fatalf("expected trimmed attribute name, got %q", p.Components[0].AttributeName)
				}
				return p, nil
			},
		)

		if _, err := uc.CreatePeriod(context.Background(), validPeriod()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPricingPeriodUseCase_DeleteByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingPeriodRepository(ctrl)
		uc := NewPricingPeriodUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "pkg-1", "p-404").Return(entities.PricingPeriod{}, nil)

		err := uc.DeleteByID(context.Background(), "pkg-1", "p-404")
		if !errors.Is(err, ErrPricingPeriodNotFound) {
			t.Fatalf("expected ErrPricingPeriodNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingPeriodRepository(ctrl)
		uc := NewPricingPeriodUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "pkg-1", "p-1").Return(entities.PricingPeriod{ID: "p-1"}, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), "pkg-1", "p-1").Return(nil)

		if err := uc.DeleteByID(context.Background(), " pkg-1 ", " p-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPricingPeriodUseCase_ListByTourPackageID(t *testing.T) {
	uc := NewPricingPeriodUseCase(nil)
	if _, err := uc.ListByTourPackageID(context.Background(), "  "); !errors.Is(err, ErrInvalidTourPackageID) {
		t.Fatalf("expected ErrInvalidTourPackageID, got %v", err)
	}
}
