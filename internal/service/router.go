package service

import (
	"context"
	"sort"
	"strings"

	"github.com/d60-Lab/agent-match/internal/catalog"
	"github.com/d60-Lab/agent-match/internal/matching"
	"github.com/d60-Lab/agent-match/internal/model"
)

const defaultRouteLimit = 3

// RouteSuggestion is one category proposal for a free-text message.
type RouteSuggestion struct {
	CategoryID    string       `json:"category_id"`
	Name          string       `json:"name"`
	Domain        model.Domain `json:"domain"`
	Score         float64      `json:"score"`
	Reason        string       `json:"reason"`
	SuggestedMode string       `json:"suggested_mode"`
}

// RouterService suggests categories for a message before one is chosen.
// It only reads the static catalog; board and ledger state never influence
// routing.
type RouterService interface {
	Route(ctx context.Context, text string, limit int) []RouteSuggestion
}

type routerService struct {
	scorer *matching.Scorer
}

// NewRouterService wires the router over the shared scorer.
func NewRouterService(scorer *matching.Scorer) RouterService {
	return &routerService{scorer: scorer}
}

func matchedKeywords(tokens []string, c model.Category) []string {
	name := strings.ToLower(c.Name)
	hint := strings.ToLower(c.FocusHint)
	var out []string
	for _, token := range tokens {
		if strings.Contains(name, token) || strings.Contains(hint, token) {
			out = append(out, token)
			continue
		}
		for _, kw := range c.Keywords {
			if strings.Contains(strings.ToLower(kw), token) {
				out = append(out, token)
				break
			}
		}
	}
	return out
}

func (s *routerService) Route(ctx context.Context, text string, limit int) []RouteSuggestion {
	if limit <= 0 {
		limit = defaultRouteLimit
	}
	tokens := matching.QueryTokens(text)

	out := make([]RouteSuggestion, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		score, _ := s.scorer.Score(tokens, matching.Doc{Title: c.Name, Subtitle: c.FocusHint, Tags: c.Keywords}, false)
		reason := "일반 추천"
		if matched := matchedKeywords(tokens, c); len(matched) > 0 {
			reason = "매칭 키워드: " + strings.Join(matched, ", ")
		}
		out = append(out, RouteSuggestion{
			CategoryID:    c.ID,
			Name:          c.Name,
			Domain:        c.Domain,
			Score:         score,
			Reason:        reason,
			SuggestedMode: model.ModeFind,
		})
	}

	// Stable sort keeps catalog order on ties.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
