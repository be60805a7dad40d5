package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/agent-match/internal/matching"
	"github.com/d60-Lab/agent-match/internal/model"
	"github.com/d60-Lab/agent-match/internal/repository"
)

func newRecommendFixture() (RecommendService, repository.BoardRepository) {
	board := repository.NewBoardRepository()
	return NewRecommendService(board, matching.NewScorerWithJitter(func() float64 { return 0 })), board
}

func TestRecommendMatchingListingFirst(t *testing.T) {
	svc, board := newRecommendFixture()
	ctx := context.Background()

	board.Insert(ctx, "trade", repository.ListingInput{
		Title: "판매글: 기계식 키보드", Subtitle: "택배 가능", Tags: []string{"키보드"},
	})
	target := board.Insert(ctx, "trade", repository.ListingInput{
		Title: "판매글: 아이패드 에어 5", Subtitle: "상태 A급", Tags: []string{"아이패드", "애플"},
	})

	recs := svc.Recommend(ctx, "trade", "아이패드 에어 구해요", model.ModeFind)
	require.NotEmpty(t, recs)
	assert.Equal(t, target.ID, recs[0].ID)
	assert.True(t, recs[0].Live)

	// no-hit rows are filtered once anything matched
	for _, r := range recs {
		assert.NotContains(t, r.Title, "키보드")
	}
}

// A market-domain query with zero hits shows nothing rather than fallback.
func TestRecommendMarketSuppression(t *testing.T) {
	svc, board := newRecommendFixture()
	ctx := context.Background()
	board.Seed(ctx, false)

	recs := svc.Recommend(ctx, "trade", "은하수 망원경 구해요", model.ModeFind)
	assert.Empty(t, recs)
}

func TestRecommendNonMarketFallsBack(t *testing.T) {
	svc, board := newRecommendFixture()
	ctx := context.Background()
	board.Seed(ctx, false)

	// friend is a people-domain category: zero hits still returns the board
	recs := svc.Recommend(ctx, "friend", "은하수 망원경", model.ModeFind)
	assert.NotEmpty(t, recs)
}

func TestRecommendPublishModeNeverSuppressed(t *testing.T) {
	svc, board := newRecommendFixture()
	ctx := context.Background()
	board.Seed(ctx, false)

	recs := svc.Recommend(ctx, "trade", "은하수 망원경 팝니다", model.ModePublish)
	assert.NotEmpty(t, recs)
}

func TestRecommendEmptyQueryRanksByScore(t *testing.T) {
	svc, board := newRecommendFixture()
	ctx := context.Background()
	board.Seed(ctx, false)

	recs := svc.Recommend(ctx, "soccer", "", model.ModeFind)
	require.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestRecommendLimits(t *testing.T) {
	svc, board := newRecommendFixture()
	ctx := context.Background()
	for i := 0; i < 20; i++ {
		board.Insert(ctx, "study", repository.ListingInput{Title: fmt.Sprintf("스터디 모집 %d", i)})
	}

	assert.Len(t, svc.Recommend(ctx, "study", "", model.ModeFind), findResultLimit)
	assert.Len(t, svc.Recommend(ctx, "study", "", model.ModePublish), publishResultLimit)
}

func TestRecommendEmptyBoardUsesDefaults(t *testing.T) {
	svc, _ := newRecommendFixture()

	recs := svc.Recommend(context.Background(), "friend", "", model.ModeFind)
	require.NotEmpty(t, recs)
	for i, r := range recs {
		assert.False(t, r.Live)
		assert.True(t, strings.HasPrefix(r.ID, "friend-default-"), "id %q", r.ID)
		assert.NotEmpty(t, r.OwnerName, "slot %d", i)
	}
}

func TestRecommendMasksContact(t *testing.T) {
	svc, board := newRecommendFixture()
	ctx := context.Background()
	board.Insert(ctx, "trade", repository.ListingInput{
		Title:      "판매글: 모니터",
		OwnerName:  "김하늘",
		OwnerEmail: "haneul.kim@example.com",
		OwnerPhone: "010-1234-5678",
	})

	recs := svc.Recommend(ctx, "trade", "", model.ModeFind)
	require.Len(t, recs, 1)
	assert.Equal(t, "ha***@example.com", recs[0].OwnerEmail)
	assert.Equal(t, "010-****-5678", recs[0].OwnerPhone)
	assert.NotContains(t, recs[0].OwnerEmail, "haneul.kim")
}

func TestRecommendUnknownCategoryFallsToDefault(t *testing.T) {
	svc, board := newRecommendFixture()
	ctx := context.Background()
	board.Seed(ctx, false)

	recs := svc.Recommend(ctx, "", "주말 친구", model.ModeFind)
	assert.NotEmpty(t, recs)
}

func TestRecommendationContext(t *testing.T) {
	assert.Equal(t, "검색 결과 0건", RecommendationContext(nil))

	recs := []model.Recommendation{
		{Title: "판매글: 아이패드", Subtitle: "55만원", Score: 0.91},
		{Title: "판매글: 맥북", Subtitle: "120만원", Score: 0.80},
	}
	text := RecommendationContext(recs)
	assert.Contains(t, text, "검색 결과 2건")
	assert.Contains(t, text, "판매글: 아이패드")
	assert.Contains(t, text, "0.91")
}
