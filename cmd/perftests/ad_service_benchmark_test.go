package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	ads "ad-ledger/internal/adService"
	model "ad-ledger/internal/models"
	repository "ad-ledger/internal/repository"
)

// seedAds creates n OPEN ads and returns their IDs
func seedAds(b *testing.B, svc *ads.AdService, n int) []string {
	b.Helper()
	ctx := context.Background()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ad, err := svc.CreateAd(ctx, "item", fmt.Sprintf("Benchmark ad %d", i))
		if err != nil {
			b.Fatalf("failed to create ad: %v", err)
		}
		ids = append(ids, ad.ID)
	}
	return ids
}

// Benchmark 1: CreateAd - Sequential
func Benchmark_CreateAd(b *testing.B) {
	svc := ads.NewAdService(repository.NewMemoryRepo())
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.CreateAd(ctx, "item", "benchmark ad"); err != nil {
			b.Fatalf("failed to create ad: %v", err)
		}
	}
}

// Benchmark 2: BidOnAd - Isolated Ads (Low Contention - Micro Benchmark)
func Benchmark_BidOnAd_Isolated(b *testing.B) {
	svc := ads.NewAdService(repository.NewMemoryRepo())
	ids := seedAds(b, svc, b.N)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidder := fmt.Sprintf("bidder_%d", i)
		amount := float64(50 + rand.Intn(100))
		if _, err := svc.BidOnAd(ctx, ids[i], bidder, amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 3: BidOnAd - Shared Ad (High Contention - Concurrency Benchmark).
// Every bid copies the growing bid list, so this also measures list growth.
func Benchmark_BidOnAd_ConcurrentSharedAd(b *testing.B) {
	svc := ads.NewAdService(repository.NewMemoryRepo())
	adID := seedAds(b, svc, 1)[0]
	ctx := context.Background()

	var bidderSeq int64

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := fmt.Sprintf("bidder_parallel_%d", atomic.AddInt64(&bidderSeq, 1))
			if _, err := svc.BidOnAd(ctx, adID, bidder, float64(rnd.Intn(1000))); err != nil {
				b.Errorf("failed to place bid: %v", err)
				return
			}
		}
	})
}

// Benchmark 4: GetAdByID - Concurrent reads of one ad
func Benchmark_GetAdByID_ConcurrentSharedAd(b *testing.B) {
	svc := ads.NewAdService(repository.NewMemoryRepo())
	adID := seedAds(b, svc, 1)[0]
	ctx := context.Background()

	for j := 0; j < 100; j++ {
		_, _ = svc.BidOnAd(ctx, adID, fmt.Sprintf("bidder_%d", j), float64(50+j))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetAdByID(ctx, adID); err != nil {
				b.Errorf("failed to get ad: %v", err)
				return
			}
		}
	})
}

// Benchmark 5: GetAdsByOwner - full scan over a populated store
func Benchmark_GetAdsByOwner(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := ads.NewAdService(repo)
	seedAds(b, svc, 1000)

	ctx := context.Background()
	all, err := repo.Values(ctx)
	if err != nil {
		b.Fatalf("failed to list ads: %v", err)
	}
	owner := all[len(all)/2].Owner

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.GetAdsByOwner(ctx, owner); err != nil {
			b.Fatalf("failed to get ads by owner: %v", err)
		}
	}
}

// Benchmark 6: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload(b *testing.B) {
	svc := ads.NewAdService(repository.NewMemoryRepo())
	ids := seedAds(b, svc, 50)
	ctx := context.Background()

	var bidderSeq int64

	b.ReportAllocs()
	b.ResetTimer()

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			adID := ids[rnd.Intn(len(ids))]
			switch op := rnd.Intn(10); {
			case op < 3:
				bidder := fmt.Sprintf("bidder_writer_%d", atomic.AddInt64(&bidderSeq, 1))
				_, _ = svc.BidOnAd(ctx, adID, bidder, float64(rnd.Intn(500)))
			case op < 4:
				_, _ = svc.GetAllAds(ctx)
			default:
				_, _ = svc.GetAdByID(ctx, adID)
			}
		}
	})
}

// Benchmark 7: UpdateAd flipping status on a shared ad
func Benchmark_UpdateAd_SharedAd(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := ads.NewAdService(repo)
	adID := seedAds(b, svc, 1)[0]
	ctx := context.Background()

	ad, err := svc.GetAdByID(ctx, adID)
	if err != nil {
		b.Fatalf("failed to get ad: %v", err)
	}
	statuses := []model.AdStatus{model.StatusOpen, model.StatusClosed, model.StatusBought}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		payload := model.AdUpdate{
			ItemType:        "item",
			ItemDescription: "updated",
			Status:          string(statuses[i%len(statuses)]),
		}
		if _, err := svc.UpdateAd(ctx, adID, ad.Owner, payload); err != nil {
			b.Fatalf("failed to update ad: %v", err)
		}
	}
}
