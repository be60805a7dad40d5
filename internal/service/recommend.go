package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/d60-Lab/agent-match/internal/catalog"
	"github.com/d60-Lab/agent-match/internal/matching"
	"github.com/d60-Lab/agent-match/internal/model"
	"github.com/d60-Lab/agent-match/internal/repository"
	"github.com/d60-Lab/agent-match/pkg/logger"
)

// Result limits per mode.
const (
	publishResultLimit = 5
	findResultLimit    = 8
)

// RecommendService assembles ranked recommendations for a category query.
type RecommendService interface {
	Recommend(ctx context.Context, categoryID, message, mode string) []model.Recommendation
}

type recommendService struct {
	board  repository.BoardRepository
	scorer *matching.Scorer
}

// NewRecommendService wires the assembler over a board store and scorer.
func NewRecommendService(board repository.BoardRepository, scorer *matching.Scorer) RecommendService {
	return &recommendService{board: board, scorer: scorer}
}

type scoredRecommendation struct {
	rec  model.Recommendation
	hits int
}

func recommendationFromListing(l model.Listing, score float64) model.Recommendation {
	return model.Recommendation{
		ID:         l.ID,
		Title:      l.Title,
		Subtitle:   l.Subtitle,
		Tags:       l.Tags,
		Detail:     l.Detail,
		ImageURLs:  l.ImageURLs,
		OwnerName:  l.OwnerName,
		OwnerEmail: model.MaskEmail(l.OwnerEmail),
		OwnerPhone: model.MaskPhone(l.OwnerPhone),
		Score:      score,
		Live:       true,
	}
}

func (s *recommendService) Recommend(ctx context.Context, categoryID, message, mode string) []model.Recommendation {
	cid := categoryID
	if cid == "" {
		cid = catalog.DefaultCategoryID
	}
	tokens := matching.QueryTokens(message)
	listings := s.board.List(ctx, cid)

	scored := make([]scoredRecommendation, 0, len(listings))
	for _, l := range listings {
		score, hits := s.scorer.Score(tokens, matching.Doc{Title: l.Title, Subtitle: l.Subtitle, Tags: l.Tags}, true)
		scored = append(scored, scoredRecommendation{rec: recommendationFromListing(l, score), hits: hits})
	}

	// Empty board: rank the static default candidates instead, with
	// synthetic ids and the deterministic demo owner for each slot.
	if len(listings) == 0 {
		for idx, cand := range catalog.DefaultCandidates(cid) {
			score, hits := s.scorer.Score(tokens, matching.Doc{Title: cand.Title, Subtitle: cand.Subtitle, Tags: cand.Tags}, false)
			owner := catalog.AssignedOwner(cid, idx)
			scored = append(scored, scoredRecommendation{
				rec: model.Recommendation{
					ID:         fmt.Sprintf("%s-default-%d", cid, idx+1),
					Title:      cand.Title,
					Subtitle:   cand.Subtitle,
					Tags:       cand.Tags,
					OwnerName:  owner.Name,
					OwnerEmail: model.MaskEmail(owner.Email),
					OwnerPhone: model.MaskPhone(owner.Phone),
					Score:      score,
					Live:       false,
				},
				hits: hits,
			})
		}
	}

	if len(tokens) > 0 {
		matched := make([]scoredRecommendation, 0, len(scored))
		for _, row := range scored {
			if row.hits > 0 {
				matched = append(matched, row)
			}
		}
		switch {
		case len(matched) > 0:
			scored = matched
		case catalog.StrategyFor(cid).SuppressFallback && mode != model.ModePublish:
			// Market queries with zero hits show nothing rather than
			// irrelevant fallback candidates.
			logger.Debug("suppressing no-hit fallback", zap.String("category", cid), zap.Strings("tokens", tokens))
			return []model.Recommendation{}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].hits != scored[j].hits {
			return scored[i].hits > scored[j].hits
		}
		return scored[i].rec.Score > scored[j].rec.Score
	})

	limit := findResultLimit
	if mode == model.ModePublish {
		limit = publishResultLimit
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}
	out := make([]model.Recommendation, len(scored))
	for i, row := range scored {
		out[i] = row.rec
	}
	return out
}

// RecommendationContext renders scored results as plain text for the reply
// generator: counts plus the top titles and scores, nothing the generator
// could not also read off the response.
func RecommendationContext(recs []model.Recommendation) string {
	if len(recs) == 0 {
		return "검색 결과 0건"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "검색 결과 %d건", len(recs))
	top := recs
	if len(top) > 3 {
		top = top[:3]
	}
	for i, r := range top {
		fmt.Fprintf(&b, "\n%d) %s / %s (score %.2f)", i+1, r.Title, r.Subtitle, r.Score)
	}
	return b.String()
}
