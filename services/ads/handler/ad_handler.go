package handler

import (
	"context"
	"fmt"
	"net/http"

	model "ad-ledger/internal/models"
	"ad-ledger/services/ads/helpers"
	"ad-ledger/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=ad_handler.go -destination=mock_ad_handler.go -package=handler

type AdServiceInterface interface {
	CreateAd(ctx context.Context, itemType, itemDescription string) (model.Ad, error)
	UpdateAd(ctx context.Context, id, owner string, payload model.AdUpdate) (model.Ad, error)
	DeleteAd(ctx context.Context, id, owner string) (model.Ad, error)
	BidOnAd(ctx context.Context, id, bidder string, amount float64) (model.Ad, error)
	GetAllAds(ctx context.Context) ([]model.Ad, error)
	GetAdByID(ctx context.Context, id string) (model.Ad, error)
	GetAdsByOwner(ctx context.Context, owner string) ([]model.Ad, error)
}

type AdHandler struct {
	service AdServiceInterface
}

func NewAdHandler(service AdServiceInterface) *AdHandler {
	return &AdHandler{service: service}
}

// respondServiceError maps a service error to the JSON envelope and logs it
func respondServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// CreateAdHandler handles POST /ads
func (h *AdHandler) CreateAdHandler(c *gin.Context) {
	var req helpers.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAdHandler", err)
		return
	}

	ad, err := h.service.CreateAd(c.Request.Context(), req.ItemType, req.ItemDescription)
	if err != nil {
		respondServiceError(c, "CreateAdHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAdResponse(ad), "ad created successfully")
	helpers.LogSuccess("CreateAdHandler", "ad created successfully", map[string]any{
		"ad_id": ad.ID,
		"owner": ad.Owner,
	})
}

// GetAllAdsHandler handles GET /ads
func (h *AdHandler) GetAllAdsHandler(c *gin.Context) {
	ads, err := h.service.GetAllAds(c.Request.Context())
	if err != nil {
		respondServiceError(c, "GetAllAdsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAdResponses(ads), "ads retrieved successfully")
	helpers.LogSuccess("GetAllAdsHandler", "ads retrieved successfully", map[string]any{"count": len(ads)})
}

// GetAdHandler handles GET /ads/:ad_id
func (h *AdHandler) GetAdHandler(c *gin.Context) {
	adID := c.Param("ad_id")
	ad, err := h.service.GetAdByID(c.Request.Context(), adID)
	if err != nil {
		respondServiceError(c, "GetAdHandler", err, map[string]any{"ad_id": adID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAdResponse(ad), "ad retrieved successfully")
}

// GetAdsByOwnerHandler handles GET /owners/:owner/ads.
// An owner without ads is a 404, unlike GET /ads on an empty store.
func (h *AdHandler) GetAdsByOwnerHandler(c *gin.Context) {
	owner := c.Param("owner")
	ads, err := h.service.GetAdsByOwner(c.Request.Context(), owner)
	if err != nil {
		respondServiceError(c, "GetAdsByOwnerHandler", err, map[string]any{"owner": owner})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAdResponses(ads), "ads retrieved successfully")
	helpers.LogSuccess("GetAdsByOwnerHandler", "ads retrieved successfully", map[string]any{
		"owner": owner,
		"count": len(ads),
	})
}

// UpdateAdHandler handles PUT /ads/:ad_id
func (h *AdHandler) UpdateAdHandler(c *gin.Context) {
	adID := c.Param("ad_id")

	var req helpers.UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAdHandler", err)
		return
	}

	ad, err := h.service.UpdateAd(c.Request.Context(), adID, req.Owner, model.AdUpdate{
		ItemType:        req.ItemType,
		ItemDescription: req.ItemDescription,
		Status:          req.Status,
	})
	if err != nil {
		respondServiceError(c, "UpdateAdHandler", err, map[string]any{"ad_id": adID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAdResponse(ad), "ad updated successfully")
	helpers.LogSuccess("UpdateAdHandler", "ad updated successfully", map[string]any{
		"ad_id":  ad.ID,
		"status": ad.Status,
	})
}

// DeleteAdHandler handles DELETE /ads/:ad_id?owner=...
func (h *AdHandler) DeleteAdHandler(c *gin.Context) {
	adID := c.Param("ad_id")
	owner := c.Query("owner")

	ad, err := h.service.DeleteAd(c.Request.Context(), adID, owner)
	if err != nil {
		respondServiceError(c, "DeleteAdHandler", err, map[string]any{"ad_id": adID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAdResponse(ad), "ad deleted successfully")
	helpers.LogSuccess("DeleteAdHandler", "ad deleted successfully", map[string]any{"ad_id": ad.ID})
}

// PlaceBidHandler handles POST /ads/:ad_id/bids
func (h *AdHandler) PlaceBidHandler(c *gin.Context) {
	adID := c.Param("ad_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	ad, err := h.service.BidOnAd(c.Request.Context(), adID, req.Bidder, *req.Amount)
	if err != nil {
		respondServiceError(c, "PlaceBidHandler", err, map[string]any{
			"ad_id":  adID,
			"bidder": req.Bidder,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAdResponse(ad), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"ad_id":  ad.ID,
		"bidder": req.Bidder,
		"amount": *req.Amount,
	})
}
