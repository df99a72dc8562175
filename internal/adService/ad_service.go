package ads

import (
	"ad-ledger/internal/aderrors"
	"ad-ledger/internal/models"
	"ad-ledger/internal/repository"
	"ad-ledger/utils"
	"context"
	"fmt"
	"math"
	"time"
)

// EventPublisher receives an event after every committed state change
type EventPublisher interface {
	PublishAdEvent(ctx context.Context, event models.AdEvent) error
}

// Option configures an AdService
type Option func(*AdService)

// WithClock replaces the time source
func WithClock(now func() time.Time) Option {
	return func(s *AdService) { s.now = now }
}

// WithIDGenerator replaces the generator used for ad IDs and owner identities
func WithIDGenerator(newID func() string) Option {
	return func(s *AdService) { s.newID = newID }
}

// WithEventPublisher enables ad event publishing
func WithEventPublisher(p EventPublisher) Option {
	return func(s *AdService) { s.publisher = p }
}

// AdService implements the ad lifecycle: creation, owner edits, deletion and bidding.
// Read-modify-write sequences on one ad are serialized; different ads proceed in parallel.
type AdService struct {
	repo      repository.AdStore
	locks     *keyedMutex
	now       func() time.Time
	newID     func() string
	publisher EventPublisher
}

// NewAdService creates a new AdService instance
func NewAdService(repo repository.AdStore, opts ...Option) *AdService {
	s := &AdService{
		repo:  repo,
		locks: newKeyedMutex(),
		now:   utils.Now,
		newID: utils.GenerateID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAd stores a new OPEN ad. The owner identity is generated here, not supplied by the caller.
func (s *AdService) CreateAd(ctx context.Context, itemType, itemDescription string) (models.Ad, error) {
	if itemType == "" || itemDescription == "" {
		return models.Ad{}, fmt.Errorf("service: %w - missing item type or item description", aderrors.ErrInvalidPayload)
	}

	ad := models.Ad{
		ID:              s.newID(),
		Owner:           s.newID(),
		ItemType:        itemType,
		ItemDescription: itemDescription,
		Bids:            []models.Bid{},
		Status:          models.StatusOpen,
		CreatedAt:       s.now(),
	}

	if err := s.repo.Insert(ctx, ad); err != nil {
		return models.Ad{}, fmt.Errorf("service: failed to store ad %s: %w", ad.ID, err)
	}

	utils.Info("service: ad created", map[string]any{
		"ad_id":     ad.ID,
		"owner":     ad.Owner,
		"item_type": ad.ItemType,
	})
	s.publish(ctx, models.EventAdCreated, ad, models.Bid{})

	return ad, nil
}

// UpdateAd replaces the editable fields of an ad owned by owner
func (s *AdService) UpdateAd(ctx context.Context, id, owner string, payload models.AdUpdate) (models.Ad, error) {
	if id == "" || owner == "" {
		return models.Ad{}, fmt.Errorf("service: %w - missing ad ID or owner", aderrors.ErrInvalidParameters)
	}
	if payload.ItemType == "" || payload.ItemDescription == "" {
		return models.Ad{}, fmt.Errorf("service: %w - missing item type or item description", aderrors.ErrInvalidPayload)
	}

	var status models.AdStatus
	if payload.Status != "" {
		parsed, err := models.ParseStatus(payload.Status)
		if err != nil {
			return models.Ad{}, fmt.Errorf("service: %w - %v", aderrors.ErrInvalidStatus, err)
		}
		status = parsed
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	ad, err := s.loadOwned(ctx, id, owner)
	if err != nil {
		return models.Ad{}, err
	}

	ad.ItemType = payload.ItemType
	ad.ItemDescription = payload.ItemDescription
	if status != "" {
		ad.Status = status
	}
	updatedAt := s.now()
	ad.UpdatedAt = &updatedAt

	if err := s.repo.Insert(ctx, ad); err != nil {
		return models.Ad{}, fmt.Errorf("service: failed to store ad %s: %w", id, err)
	}

	utils.Info("service: ad updated", map[string]any{
		"ad_id":  ad.ID,
		"status": ad.Status,
	})
	s.publish(ctx, models.EventAdUpdated, ad, models.Bid{})

	return ad, nil
}

// DeleteAd removes an ad owned by owner and returns its last state
func (s *AdService) DeleteAd(ctx context.Context, id, owner string) (models.Ad, error) {
	if id == "" || owner == "" {
		return models.Ad{}, fmt.Errorf("service: %w - missing ad ID or owner", aderrors.ErrInvalidParameters)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	if _, err := s.loadOwned(ctx, id, owner); err != nil {
		return models.Ad{}, err
	}

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return models.Ad{}, fmt.Errorf("service: failed to remove ad %s: %w", id, err)
	}

	utils.Info("service: ad deleted", map[string]any{"ad_id": id})
	s.publish(ctx, models.EventAdDeleted, removed, models.Bid{})

	return removed, nil
}

// BidOnAd appends a bid from bidder to an OPEN ad
func (s *AdService) BidOnAd(ctx context.Context, id, bidder string, amount float64) (models.Ad, error) {
	if id == "" || bidder == "" {
		return models.Ad{}, fmt.Errorf("service: %w - missing ad ID or bidder", aderrors.ErrInvalidParameters)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.Ad{}, fmt.Errorf("service: %w - bid amount is not a number", aderrors.ErrInvalidParameters)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	ad, err := s.load(ctx, id)
	if err != nil {
		return models.Ad{}, err
	}

	if err := validateBid(ad, bidder); err != nil {
		utils.Warn("service: bid rejected", map[string]any{
			"ad_id":  id,
			"bidder": bidder,
			"amount": amount,
			"error":  err.Error(),
		})
		return models.Ad{}, err
	}

	bid := models.Bid{Bidder: bidder, Amount: amount}
	ad.Bids = append(ad.Bids, bid)

	if err := s.repo.Insert(ctx, ad); err != nil {
		return models.Ad{}, fmt.Errorf("service: failed to record bid on ad %s by %s: %w", id, bidder, err)
	}

	utils.Info("service: bid placed", map[string]any{
		"ad_id":  id,
		"bidder": bidder,
		"amount": amount,
		"bids":   len(ad.Bids),
	})
	s.publish(ctx, models.EventBidPlaced, ad, bid)

	return ad, nil
}

// validateBid checks the bidding rules against the current state of the ad
func validateBid(ad models.Ad, bidder string) error {
	if ad.Status != models.StatusOpen {
		return fmt.Errorf("service: %w - ad %s is %s", aderrors.ErrAdNotOpen, ad.ID, ad.Status)
	}
	if bidder == ad.Owner {
		return fmt.Errorf("service: %w - ad %s", aderrors.ErrSelfBid, ad.ID)
	}
	if ad.HasBidFrom(bidder) {
		return fmt.Errorf("service: %w - bidder %s on ad %s", aderrors.ErrDuplicateBid, bidder, ad.ID)
	}
	return nil
}

// GetAllAds returns every ad. An empty store is not an error.
func (s *AdService) GetAllAds(ctx context.Context) ([]models.Ad, error) {
	ads, err := s.repo.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list ads: %w", err)
	}
	if ads == nil {
		ads = []models.Ad{}
	}
	return ads, nil
}

// GetAdByID returns a single ad
func (s *AdService) GetAdByID(ctx context.Context, id string) (models.Ad, error) {
	if id == "" {
		return models.Ad{}, fmt.Errorf("service: %w - empty ad ID", aderrors.ErrNotFound)
	}
	return s.load(ctx, id)
}

// GetAdsByOwner returns the ads created under owner. No match is an error.
func (s *AdService) GetAdsByOwner(ctx context.Context, owner string) ([]models.Ad, error) {
	if owner == "" {
		return nil, fmt.Errorf("service: %w - empty owner", aderrors.ErrOwnerHasNoAds)
	}

	all, err := s.repo.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list ads for owner %s: %w", owner, err)
	}

	owned := make([]models.Ad, 0)
	for _, ad := range all {
		if ad.Owner == owner {
			owned = append(owned, ad)
		}
	}
	if len(owned) == 0 {
		return nil, fmt.Errorf("service: %w - owner %s", aderrors.ErrOwnerHasNoAds, owner)
	}
	return owned, nil
}

func (s *AdService) load(ctx context.Context, id string) (models.Ad, error) {
	ad, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Ad{}, fmt.Errorf("service: failed to get ad %s: %w", id, err)
	}
	return ad, nil
}

// loadOwned loads the ad and checks that owner matches the stored owner
func (s *AdService) loadOwned(ctx context.Context, id, owner string) (models.Ad, error) {
	ad, err := s.load(ctx, id)
	if err != nil {
		return models.Ad{}, err
	}
	if ad.Owner != owner {
		utils.Warn("service: owner mismatch", map[string]any{
			"ad_id":  id,
			"caller": owner,
		})
		return models.Ad{}, fmt.Errorf("service: %w - ad %s", aderrors.ErrUnauthorized, id)
	}
	return ad, nil
}

func (s *AdService) publish(ctx context.Context, typ models.AdEventType, ad models.Ad, bid models.Bid) {
	if s.publisher == nil {
		return
	}

	event := models.AdEvent{
		Type:      typ,
		AdID:      ad.ID,
		Owner:     ad.Owner,
		Status:    ad.Status,
		Bidder:    bid.Bidder,
		Amount:    bid.Amount,
		Timestamp: s.now(),
	}
	if err := s.publisher.PublishAdEvent(ctx, event); err != nil {
		// the store write already committed
		utils.Warn("service: failed to publish ad event", map[string]any{
			"ad_id": ad.ID,
			"type":  typ,
			"error": err.Error(),
		})
	}
}
