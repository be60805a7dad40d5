package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/agent-match/internal/repository"
)

func TestPublishCreatesListing(t *testing.T) {
	board := repository.NewBoardRepository()
	svc := NewPublishService(board)
	ctx := context.Background()

	rec, updated := svc.Publish(ctx, "trade", "아이패드 에어 5 팝니다, 상태 A급", "김하늘", "seller@example.com", "010-1234-5678")
	assert.False(t, updated)
	assert.True(t, strings.HasSuffix(rec.Title, "등록됨"))
	assert.Equal(t, "아이패드 에어 5 팝니다, 상태 A급", rec.Subtitle)
	assert.Contains(t, rec.Tags, "아이패드")
	assert.Equal(t, 0.99, rec.Score)
	assert.True(t, rec.Live)
	// contact comes back masked
	assert.NotContains(t, rec.OwnerEmail, "seller@")

	stored, ok := board.Find(ctx, "trade", rec.ID)
	require.True(t, ok)
	assert.Equal(t, "seller@example.com", stored.OwnerEmail)
}

func TestPublishRepeatUpdatesInPlace(t *testing.T) {
	board := repository.NewBoardRepository()
	svc := NewPublishService(board)
	ctx := context.Background()

	first, _ := svc.Publish(ctx, "trade", "아이패드 팝니다", "", "seller@example.com", "")
	second, updated := svc.Publish(ctx, "trade", "아이패드 프로 팝니다", "", "seller@example.com", "")
	assert.True(t, updated)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, board.List(ctx, "trade"), 1)
}

func TestPublishWithoutEmailAlwaysInserts(t *testing.T) {
	board := repository.NewBoardRepository()
	svc := NewPublishService(board)
	ctx := context.Background()

	svc.Publish(ctx, "study", "알고리즘 스터디 모집", "", "", "")
	_, updated := svc.Publish(ctx, "study", "알고리즘 스터디 모집", "", "", "")
	assert.False(t, updated)
	assert.Len(t, board.List(ctx, "study"), 2)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "조건 미입력", summarize("   "))
	assert.Equal(t, "짧은 글", summarize("짧은 글"))

	long := strings.Repeat("가", summaryLimit+10)
	got := summarize(long)
	assert.Equal(t, summaryLimit+3, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}
