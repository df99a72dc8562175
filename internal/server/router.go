package server

import (
	"net/http"

	handler "ad-ledger/services/ads/handler"
	"ad-ledger/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application.
// backend is reported by the health endpoint.
func SetupRouter(adService handler.AdServiceInterface, backend string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	adHandler := handler.NewAdHandler(adService)

	router.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"backend": backend}, "ok")
	})

	ads := router.Group("/ads")
	{
		ads.POST("", adHandler.CreateAdHandler)
		ads.GET("", adHandler.GetAllAdsHandler)
		ads.GET("/:ad_id", adHandler.GetAdHandler)
		ads.PUT("/:ad_id", adHandler.UpdateAdHandler)
		ads.DELETE("/:ad_id", adHandler.DeleteAdHandler)
		ads.POST("/:ad_id/bids", adHandler.PlaceBidHandler)
	}

	owners := router.Group("/owners")
	{
		owners.GET("/:owner/ads", adHandler.GetAdsByOwnerHandler)
	}

	return router
}
