package routes

import (
	"viaggio_tours/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPackages = "/packages"
	PathPayments = "/payments"
)

func addPricingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, periodHandler *handlers.PricingPeriodHandler, paymentHandler *handlers.DepositPaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/resolve", quoteHandler.ResolveQuote)
		quotes.PATCH("/confirm", quoteHandler.ConfirmQuote)
		quotes.PATCH("/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/cancel", quoteHandler.CancelQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/reprice", quoteHandler.RepriceQuote)
	}

	packages := rg.Group(PathPackages)
	{
		packages.POST("/:tour_package_id/periods", periodHandler.CreatePricingPeriod)
		packages.GET("/:tour_package_id/periods", periodHandler.ListPricingPeriods)
		packages.DELETE("/:tour_package_id/periods/:period_id", periodHandler.DeletePricingPeriod)
		packages.GET("/:tour_package_id/quotes", quoteHandler.ListQuotesByTourPackage)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}
}
