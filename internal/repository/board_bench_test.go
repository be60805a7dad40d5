package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
)

func seedFullBoard(b *testing.B, repo BoardRepository) {
	b.Helper()
	ctx := context.Background()
	for i := 0; i < BoardCapacity; i++ {
		repo.Insert(ctx, "trade", ListingInput{
			Title:      fmt.Sprintf("판매글 %04d", i),
			Subtitle:   "벤치마크 매물",
			Tags:       []string{"벤치", "직거래"},
			OwnerEmail: fmt.Sprintf("owner%04d@example.com", i),
		})
	}
}

func BenchmarkBoardUpsertByOwner(b *testing.B) {
	repo := NewBoardRepository()
	seedFullBoard(b, repo)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		email := fmt.Sprintf("owner%04d@example.com", rand.Intn(BoardCapacity))
		_, _ = repo.UpsertByOwner(ctx, "trade", ListingInput{
			Title:      "판매글 갱신",
			Subtitle:   "가격 조정",
			Tags:       []string{"갱신"},
			OwnerEmail: email,
		})
	}
}

func BenchmarkBoardReadsAtCapacity(b *testing.B) {
	repo := NewBoardRepository()
	seedFullBoard(b, repo)
	ctx := context.Background()
	target := repo.List(ctx, "trade")[BoardCapacity/2].ID

	b.Run("List", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = repo.List(ctx, "trade")
		}
	})

	b.Run("Find", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.Find(ctx, "trade", target)
		}
	})
}
