package perftests

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	ads "ad-ledger/internal/adService"
	"ad-ledger/internal/aderrors"
	repository "ad-ledger/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name      string
	NumAds    int
	ReadRatio int  // out of 10
	Bidders   int  // size of the bidder pool, smaller pools produce more duplicate rejections
	Burst     bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	defer om.mu.Unlock()

	if len(om.latencies) == 0 {
		return
	}
	latencies := append([]time.Duration(nil), om.latencies...)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupService creates a memory-backed service with numAds OPEN ads
func setupService(b *testing.B, numAds int) (*ads.AdService, []string) {
	b.Helper()
	svc := ads.NewAdService(repository.NewMemoryRepo())
	ctx := context.Background()

	ids := make([]string, 0, numAds)
	for i := 0; i < numAds; i++ {
		ad, err := svc.CreateAd(ctx, "load", fmt.Sprintf("Load test ad %d", i))
		if err != nil {
			b.Fatalf("failed to create ad: %v", err)
		}
		ids = append(ids, ad.ID)
	}
	return svc, ids
}

// Benchmark_Load_AdLedger runs multiple scenarios
func Benchmark_Load_AdLedger(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 0, 100000, false},
		{"High-Contention-WriteHeavy", 10, 0, 100000, false},
		{"Mixed-Workload", 50, 7, 100000, false},
		{"ReadHeavy", 50, 9, 100000, false},
		{"Duplicate-Heavy", 5, 2, 20, false},
		{"Peak-Burst", 50, 0, 100000, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc, ids := setupService(b, s.NumAds)
	ctx := context.Background()

	var totalOps, acceptedBids, duplicateBids, otherFailures, totalReads int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			adID := ids[rnd.Intn(len(ids))]
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.GetAdByID(ctx, adID); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				bidder := fmt.Sprintf("bidder_%d", rnd.Intn(s.Bidders))
				_, err := svc.BidOnAd(ctx, adID, bidder, float64(rnd.Intn(1000)))
				switch {
				case err == nil:
					atomic.AddInt64(&acceptedBids, 1)
				case errors.Is(err, aderrors.ErrDuplicateBid):
					atomic.AddInt64(&duplicateBids, 1)
				default:
					atomic.AddInt64(&otherFailures, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	if otherFailures > 0 {
		b.Errorf("unexpected bid failures: %d", otherFailures)
	}

	b.Logf(
		"Scenario: %s | Ads: %d | Total Ops: %d | Accepted Bids: %d | Duplicate Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAds, totalOps, acceptedBids, duplicateBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
