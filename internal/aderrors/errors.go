package aderrors

import (
	"errors"
	"fmt"
)

// Parameter and payload errors
var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrInvalidStatus     = errors.New("invalid status")
)

// Lookup and ownership errors
var (
	ErrNotFound     = errors.New("ad not found")
	ErrUnauthorized = errors.New("caller is not the owner of the ad")

	// ErrOwnerHasNoAds is a NotFound: an owner filter with no matches is a failure, unlike listing all ads.
	ErrOwnerHasNoAds = fmt.Errorf("%w: owner has no ads", ErrNotFound)
)

// Bidding rule errors
var (
	ErrAdNotOpen    = errors.New("ad is not open for bidding")
	ErrSelfBid      = errors.New("owner cannot bid on own ad")
	ErrDuplicateBid = errors.New("bidder has already bid on this ad")
)
