package handlers

import (
	"context"
	"errors"
	"net/http"
	request "viaggio_tours/internal/adapter/http/dto/request"
	response "viaggio_tours/internal/adapter/http/dto/response"
	"viaggio_tours/internal/domain/entities"
	"viaggio_tours/internal/domain/pricing"
	"viaggio_tours/internal/usecase"
	"viaggio_tours/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for tour quotes.
//
// Resolution is the interesting path: the engine outcome decides the HTTP
// status, so unmatched resolutions come back as 422 with the engine's
// message rather than as errors.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ResolveQuote prices a tour package for a travel date and persists a pending
// quote when exactly one pricing period matches.
func (h *QuoteHandler) ResolveQuote(c *gin.Context) {
	var payload request.ResolveQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	travelDate, err := payload.ResolveTravelDate()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	rooms, err := payload.ResolveRooms()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	resolution, err := h.usecase.ResolveQuote(c.Request.Context(), usecase.ResolveQuoteInput{
		TourPackageID:            payload.ResolveTourPackageID(),
		TravelDate:               travelDate,
		MealPlanID:               payload.MealPlanID,
		NumberOfRooms:            rooms,
		MarkupPercent:            payload.MarkupPercent,
		SelectedComponentIDs:     payload.SelectedComponentIDs,
		ComponentRoomQuantities:  payload.ComponentRoomQuantities,
		RequireExplicitSelection: payload.RequireExplicitSelection,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if resolution.Result.Status != pricing.StatusMatched {
		c.JSON(http.StatusUnprocessableEntity, response.FromResolveOutcome(resolution.Result, resolution.Quote))
		return
	}

	c.JSON(http.StatusCreated, response.FromResolveOutcome(resolution.Result, resolution.Quote))
}

func (h *QuoteHandler) ConfirmQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.ConfirmByID)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.RejectByID)
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.CancelByID)
}

func (h *QuoteHandler) patchQuoteStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	var payload request.QuoteActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quoteID := payload.ResolveQuoteID()
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := updater(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// RepriceQuote re-runs the resolution for a stored quote against the current
// price list and updates its totals in place.
func (h *QuoteHandler) RepriceQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")

	resolution, err := h.usecase.RepriceQuote(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if resolution.Result.Status != pricing.StatusMatched {
		c.JSON(http.StatusUnprocessableEntity, response.FromResolveOutcome(resolution.Result, resolution.Quote))
		return
	}

	c.JSON(http.StatusOK, response.FromResolveOutcome(resolution.Result, resolution.Quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")

	quote, err := h.usecase.GetByID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotesByTourPackage returns all quotes ever priced for a package.
func (h *QuoteHandler) ListQuotesByTourPackage(c *gin.Context) {
	tourPackageID := c.Param("tour_package_id")

	quotes, err := h.usecase.ListByTourPackageID(c.Request.Context(), tourPackageID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, response.FromQuote(q))
	}

	c.JSON(http.StatusOK, out)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTourPackageID),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrMissingTravelDate),
		errors.Is(err, usecase.ErrMissingMealPlan),
		errors.Is(err, usecase.ErrInvalidRoomCount),
		errors.Is(err, usecase.ErrInvalidMarkupPercent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrNoComponentsSelected):
		return pkg.NewDomainErrorSimple("NO_COMPONENTS_SELECTED", "No pricing components selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
