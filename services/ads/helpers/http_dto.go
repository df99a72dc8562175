package helpers

import (
	"time"

	model "ad-ledger/internal/models"
)

// Request/Response DTOs
type CreateAdRequest struct {
	ItemType        string `json:"item_type"`
	ItemDescription string `json:"item_description"`
}

type UpdateAdRequest struct {
	Owner           string `json:"owner"`
	ItemType        string `json:"item_type"`
	ItemDescription string `json:"item_description"`
	Status          string `json:"status"`
}

// Amount is a pointer so that a zero bid binds but a missing one does not
type PlaceBidRequest struct {
	Bidder string   `json:"bidder" binding:"required"`
	Amount *float64 `json:"amount" binding:"required"`
}

type BidResponse struct {
	Bidder string  `json:"bidder"`
	Amount float64 `json:"amount"`
}

type AdResponse struct {
	ID              string        `json:"id"`
	Owner           string        `json:"owner"`
	ItemType        string        `json:"item_type"`
	ItemDescription string        `json:"item_description"`
	Bids            []BidResponse `json:"bids"`
	Status          string        `json:"status"`
	CreatedAt       string        `json:"created_at"`
	UpdatedAt       string        `json:"updated_at,omitempty"`
}

// ToAdResponse converts a model to its wire form with RFC3339 timestamps
func ToAdResponse(ad model.Ad) AdResponse {
	bids := make([]BidResponse, 0, len(ad.Bids))
	for _, b := range ad.Bids {
		bids = append(bids, BidResponse{Bidder: b.Bidder, Amount: b.Amount})
	}

	resp := AdResponse{
		ID:              ad.ID,
		Owner:           ad.Owner,
		ItemType:        ad.ItemType,
		ItemDescription: ad.ItemDescription,
		Bids:            bids,
		Status:          string(ad.Status),
		CreatedAt:       ad.CreatedAt.UTC().Format(time.RFC3339),
	}
	if ad.UpdatedAt != nil {
		resp.UpdatedAt = ad.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func ToAdResponses(ads []model.Ad) []AdResponse {
	out := make([]AdResponse, 0, len(ads))
	for _, ad := range ads {
		out = append(out, ToAdResponse(ad))
	}
	return out
}
