package handlers

import (
	"errors"
	"net/http"
	request "viaggio_tours/internal/adapter/http/dto/request"
	response "viaggio_tours/internal/adapter/http/dto/response"
	"viaggio_tours/internal/usecase"
	"viaggio_tours/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPeriodPayload = pkg.NewDomainErrorSimple("INVALID_PERIOD_INPUT", "Invalid pricing period payload", http.StatusBadRequest)
)

// PricingPeriodHandler handles HTTP requests for a package's price list.

type PricingPeriodHandler struct {
	usecase usecase.IPricingPeriodUseCase
}

func NewPricingPeriodHandler(uc usecase.IPricingPeriodUseCase) *PricingPeriodHandler {
	return &PricingPeriodHandler{usecase: uc}
}

// CreatePricingPeriod registers a pricing period under the tour package in
// the path.
func (h *PricingPeriodHandler) CreatePricingPeriod(c *gin.Context) {
	tourPackageID := c.Param("tour_package_id")

	var payload request.PricingPeriodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPeriodPayload.HTTPStatus, errInvalidPeriodPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePeriod(c.Request.Context(), payload.ToEntity(tourPackageID))
	if err != nil {
		appErr := mapPricingPeriodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPricingPeriod(created))
}

// ListPricingPeriods returns the full price list of a package, in stored
// order.
func (h *PricingPeriodHandler) ListPricingPeriods(c *gin.Context) {
	tourPackageID := c.Param("tour_package_id")

	periods, err := h.usecase.ListByTourPackageID(c.Request.Context(), tourPackageID)
	if err != nil {
		appErr := mapPricingPeriodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingPeriods(periods))
}

func (h *PricingPeriodHandler) DeletePricingPeriod(c *gin.Context) {
	tourPackageID := c.Param("tour_package_id")
	periodID := c.Param("period_id")

	if err := h.usecase.DeleteByID(c.Request.Context(), tourPackageID, periodID); err != nil {
		appErr := mapPricingPeriodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPricingPeriodError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTourPackageID),
		errors.Is(err, usecase.ErrInvalidPeriodID),
		errors.Is(err, usecase.ErrInvalidPeriodDates),
		errors.Is(err, usecase.ErrNoPeriodComponents):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPricingPeriodNotFound):
		return pkg.NewDomainErrorSimple("PRICING_PERIOD_NOT_FOUND", "Pricing period not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
