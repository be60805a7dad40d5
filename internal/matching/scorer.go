package matching

import (
	"math"
	"math/rand"
	"strings"
)

// Field weights and score shape. A token can contribute to all three fields;
// the final score is capped below 1.0 so no candidate ever looks certain.
const (
	titleWeight    = 0.22
	subtitleWeight = 0.14
	tagWeight      = 0.18

	queryBase        = 0.34
	noQueryBase      = 0.56
	liveBonus        = 0.08
	noQueryLiveBonus = 0.10
	coverageWeight   = 0.12

	jitterSpan = 0.03
	maxScore   = 0.99
)

// Doc is the scoreable surface of a listing or default candidate.
type Doc struct {
	Title    string
	Subtitle string
	Tags     []string
}

// Scorer ranks docs against query tokens. The jitter source exists only to
// break ties in sort order and is injectable so tests can pin it to zero.
type Scorer struct {
	jitter func() float64
}

// NewScorer returns a scorer with real tie-break jitter.
func NewScorer() *Scorer {
	return &Scorer{jitter: rand.Float64}
}

// NewScorerWithJitter returns a scorer with a caller-supplied jitter source.
func NewScorerWithJitter(jitter func() float64) *Scorer {
	return &Scorer{jitter: jitter}
}

// Score returns a bounded relevance score and the number of distinct query
// tokens that matched at least one field. live marks board-resident docs,
// which rank slightly above static defaults.
func (s *Scorer) Score(tokens []string, doc Doc, live bool) (float64, int) {
	title := strings.ToLower(doc.Title)
	subtitle := strings.ToLower(doc.Subtitle)
	tags := make([]string, len(doc.Tags))
	for i, t := range doc.Tags {
		tags[i] = strings.ToLower(t)
	}

	hits := 0
	weighted := 0.0
	for _, token := range tokens {
		tokenHit := false
		if strings.Contains(title, token) {
			weighted += titleWeight
			tokenHit = true
		}
		if strings.Contains(subtitle, token) {
			weighted += subtitleWeight
			tokenHit = true
		}
		for _, tag := range tags {
			if strings.Contains(tag, token) {
				weighted += tagWeight
				tokenHit = true
				break
			}
		}
		if tokenHit {
			hits++
		}
	}

	base := noQueryBase
	bonus := noQueryLiveBonus
	if len(tokens) > 0 {
		base = queryBase
		bonus = liveBonus
	}
	if live {
		base += bonus
	}

	coverage := 0.0
	if hits > 0 && len(tokens) > 0 {
		coverage = coverageWeight * float64(hits) / float64(len(tokens))
	}

	score := base + weighted + coverage + s.jitter()*jitterSpan
	score = math.Round(score*100) / 100
	if score > maxScore {
		score = maxScore
	}
	return score, hits
}
