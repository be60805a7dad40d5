package service

import (
	"context"
	"strings"

	"github.com/d60-Lab/agent-match/internal/catalog"
	"github.com/d60-Lab/agent-match/internal/matching"
	"github.com/d60-Lab/agent-match/internal/model"
	"github.com/d60-Lab/agent-match/internal/repository"
)

// summaryLimit caps the subtitle derived from the publish message, in runes.
const summaryLimit = 42

// PublishService turns a free-text message into a board listing. A repeat
// publish by the same owner email updates the existing listing in place
// instead of creating a duplicate.
type PublishService interface {
	Publish(ctx context.Context, categoryID, message, ownerName, ownerEmail, ownerPhone string) (model.Recommendation, bool)
}

type publishService struct {
	board repository.BoardRepository
}

// NewPublishService wires publishing over the board store.
func NewPublishService(board repository.BoardRepository) PublishService {
	return &publishService{board: board}
}

func summarize(message string) string {
	summary := strings.TrimSpace(message)
	if summary == "" {
		return "조건 미입력"
	}
	runes := []rune(summary)
	if len(runes) > summaryLimit {
		return string(runes[:summaryLimit]) + "..."
	}
	return summary
}

func (s *publishService) Publish(ctx context.Context, categoryID, message, ownerName, ownerEmail, ownerPhone string) (model.Recommendation, bool) {
	cid := categoryID
	if cid == "" {
		cid = catalog.DefaultCategoryID
	}
	in := repository.ListingInput{
		Title:      catalog.ProfileTitle(cid) + " 등록됨",
		Subtitle:   summarize(message),
		Tags:       matching.TagTokens(message),
		Detail:     strings.TrimSpace(message),
		OwnerName:  ownerName,
		OwnerEmail: ownerEmail,
		OwnerPhone: ownerPhone,
	}

	var (
		listing model.Listing
		updated bool
	)
	if strings.TrimSpace(ownerEmail) != "" {
		listing, updated = s.board.UpsertByOwner(ctx, cid, in)
	} else {
		listing = s.board.Insert(ctx, cid, in)
	}
	return recommendationFromListing(listing, 0.99), updated
}
