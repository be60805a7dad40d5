// matchbench measures recommendation latency over a full in-memory board.
// N sets the number of queries, CONC the worker count (both via env).
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/d60-Lab/agent-match/internal/matching"
	"github.com/d60-Lab/agent-match/internal/model"
	"github.com/d60-Lab/agent-match/internal/repository"
	"github.com/d60-Lab/agent-match/internal/service"
)

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func main() {
	N := envInt("N", 10000)
	CONC := envInt("CONC", 1)

	board := repository.NewBoardRepository()
	ctx := context.Background()
	board.Seed(ctx, false)
	for i := 0; i < repository.BoardCapacity; i++ {
		board.Insert(ctx, "trade", repository.ListingInput{
			Title:      fmt.Sprintf("판매글: 아이패드 %04d", i),
			Subtitle:   "벤치마크 매물",
			Tags:       []string{"아이패드", "직거래"},
			OwnerEmail: fmt.Sprintf("owner%04d@example.com", i),
		})
	}

	recommendSvc := service.NewRecommendService(board, matching.NewScorer())
	publishSvc := service.NewPublishService(board)

	queries := []string{
		"아이패드 에어 5 구해요",
		"직거래 가능한 매물",
		"없는물건 검색어",
		"",
	}

	// recommendation pass with CONC workers
	workers := CONC
	if workers > N {
		workers = N
	}
	feed := make(chan int, N)
	for i := 0; i < N; i++ {
		feed <- i
	}
	close(feed)

	latCh := make(chan time.Duration, N)
	done := make(chan struct{}, workers)
	t0 := time.Now()
	for w := 0; w < workers; w++ {
		go func() {
			for i := range feed {
				st := time.Now()
				_ = recommendSvc.Recommend(ctx, "trade", queries[i%len(queries)], model.ModeFind)
				latCh <- time.Since(st)
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ {
		<-done
	}
	close(latCh)
	recs := make([]time.Duration, 0, N)
	for d := range latCh {
		recs = append(recs, d)
	}
	recDur := time.Since(t0)

	// publish/upsert pass, single writer
	t1 := time.Now()
	for i := 0; i < N; i++ {
		email := fmt.Sprintf("owner%04d@example.com", i%repository.BoardCapacity)
		_, _ = publishSvc.Publish(ctx, "trade", "아이패드 프로 팝니다, 가격 조정", "", email, "")
	}
	pubDur := time.Since(t1)

	pct := func(vs []time.Duration, p float64) time.Duration {
		if len(vs) == 0 {
			return 0
		}
		xs := append([]time.Duration(nil), vs...)
		sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
		k := int(math.Ceil(p*float64(len(xs)))) - 1
		if k < 0 {
			k = 0
		}
		if k >= len(xs) {
			k = len(xs) - 1
		}
		return xs[k]
	}

	fmt.Printf("N=%d, CONC=%d, board=%d rows\n", N, CONC, repository.BoardCapacity)
	fmt.Printf("Recommend total: %v, per op: %v, p50: %v, p95: %v, p99: %v\n",
		recDur, recDur/time.Duration(N), pct(recs, 0.50), pct(recs, 0.95), pct(recs, 0.99))
	fmt.Printf("Publish upsert total: %v, per op: %v\n", pubDur, pubDur/time.Duration(N))
}
