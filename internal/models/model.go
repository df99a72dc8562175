package models

import (
	"fmt"
	"time"
)

// AdStatus is the lifecycle state of an ad
type AdStatus string

const (
	StatusOpen   AdStatus = "OPEN"
	StatusClosed AdStatus = "CLOSED"
	StatusBought AdStatus = "BOUGHT"
)

// Valid reports whether s is one of the known statuses
func (s AdStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusBought:
		return true
	default:
		return false
	}
}

// ParseStatus converts raw input into an AdStatus. Matching is exact.
func ParseStatus(raw string) (AdStatus, error) {
	s := AdStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

// Bid represents an offer on an ad
type Bid struct {
	Bidder string  `json:"bidder"`
	Amount float64 `json:"amount"`
}

// Ad represents a listing posted by a seller
type Ad struct {
	ID              string     `json:"id"`
	Owner           string     `json:"owner"`
	ItemType        string     `json:"item_type"`
	ItemDescription string     `json:"item_description"`
	Bids            []Bid      `json:"bids"`
	Status          AdStatus   `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// Clone returns a copy of the ad that shares no memory with the receiver
func (a Ad) Clone() Ad {
	out := a
	out.Bids = make([]Bid, len(a.Bids))
	copy(out.Bids, a.Bids)
	if a.UpdatedAt != nil {
		t := *a.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

// HasBidFrom reports whether bidder already holds a bid on the ad
func (a Ad) HasBidFrom(bidder string) bool {
	for _, b := range a.Bids {
		if b.Bidder == bidder {
			return true
		}
	}
	return false
}

// AdEventType names a state change on an ad
type AdEventType string

const (
	EventAdCreated AdEventType = "ad_created"
	EventAdUpdated AdEventType = "ad_updated"
	EventAdDeleted AdEventType = "ad_deleted"
	EventBidPlaced AdEventType = "bid_placed"
)

// AdEvent is emitted after a successful state change
type AdEvent struct {
	Type      AdEventType `json:"type"`
	AdID      string      `json:"ad_id"`
	Owner     string      `json:"owner"`
	Status    AdStatus    `json:"status"`
	Bidder    string      `json:"bidder,omitempty"`
	Amount    float64     `json:"amount"`
	Timestamp time.Time   `json:"timestamp"`
}

// AdUpdate carries the owner-editable fields of an ad
type AdUpdate struct {
	ItemType        string
	ItemDescription string
	Status          string // empty keeps the current status
}
