package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/d60-Lab/agent-match/internal/model"
)

// ActionRepository is the action ledger: one map of actions plus secondary
// indexes by category and by recommendation id for the dedup lookup. Actions
// are never deleted, only transitioned.
type ActionRepository interface {
	// CreateIfNoActive atomically enforces the dedup invariant: when an
	// active action already exists for (category, recommendation, requester)
	// it is returned unchanged with created=false, otherwise a is stored and
	// indexed.
	CreateIfNoActive(ctx context.Context, a *model.Action) (action model.Action, created bool)

	// Get returns a snapshot of one action.
	Get(ctx context.Context, id string) (model.Action, bool)

	// FindActive returns the non-terminal action for (category,
	// recommendation, requester), if any. This backs the dedup invariant.
	FindActive(ctx context.Context, categoryID, recommendationID, requesterEmail string) (model.Action, bool)

	// Mutate runs fn on the stored action under the ledger lock. The update
	// is discarded when fn errors. found=false means the id is unknown.
	Mutate(ctx context.Context, id string, fn func(*model.Action) error) (a model.Action, found bool, err error)

	// List snapshots actions, most-recently-updated first. Empty categoryID
	// means all categories.
	List(ctx context.Context, categoryID string) []model.Action

	// Reset drops all ledger state.
	Reset(ctx context.Context)
}

type memoryActionRepository struct {
	mu               sync.RWMutex
	actions          map[string]*model.Action
	byCategory       map[string][]string
	byRecommendation map[string][]string
	order            []string // creation order, for stable listing
}

// NewActionRepository creates an empty in-memory ledger.
func NewActionRepository() ActionRepository {
	return &memoryActionRepository{
		actions:          make(map[string]*model.Action),
		byCategory:       make(map[string][]string),
		byRecommendation: make(map[string][]string),
	}
}

func (r *memoryActionRepository) findActiveLocked(categoryID, recommendationID, requesterEmail string) (*model.Action, bool) {
	for _, id := range r.byRecommendation[recommendationID] {
		a, ok := r.actions[id]
		if !ok || a.CategoryID != categoryID || a.RequesterEmail != requesterEmail {
			continue
		}
		if a.Status.Active() {
			return a, true
		}
	}
	return nil, false
}

func (r *memoryActionRepository) CreateIfNoActive(ctx context.Context, a *model.Action) (model.Action, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.findActiveLocked(a.CategoryID, a.RecommendationID, a.RequesterEmail); ok {
		return existing.Clone(), false
	}
	stored := a.Clone()
	r.actions[stored.ID] = &stored
	r.byCategory[stored.CategoryID] = append(r.byCategory[stored.CategoryID], stored.ID)
	r.byRecommendation[stored.RecommendationID] = append(r.byRecommendation[stored.RecommendationID], stored.ID)
	r.order = append(r.order, stored.ID)
	return stored.Clone(), true
}

func (r *memoryActionRepository) Get(ctx context.Context, id string) (model.Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actions[id]
	if !ok {
		return model.Action{}, false
	}
	return a.Clone(), true
}

func (r *memoryActionRepository) FindActive(ctx context.Context, categoryID, recommendationID, requesterEmail string) (model.Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.findActiveLocked(categoryID, recommendationID, requesterEmail); ok {
		return a.Clone(), true
	}
	return model.Action{}, false
}

func (r *memoryActionRepository) Mutate(ctx context.Context, id string, fn func(*model.Action) error) (model.Action, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.actions[id]
	if !ok {
		return model.Action{}, false, nil
	}
	// fn works on a copy so a failed transition leaves the ledger untouched.
	next := a.Clone()
	if err := fn(&next); err != nil {
		return a.Clone(), true, err
	}
	r.actions[id] = &next
	return next.Clone(), true, nil
}

func (r *memoryActionRepository) List(ctx context.Context, categoryID string) []model.Action {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.order
	if categoryID != "" {
		ids = r.byCategory[categoryID]
	}
	out := make([]model.Action, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.actions[id]; ok {
			out = append(out, a.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func (r *memoryActionRepository) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = make(map[string]*model.Action)
	r.byCategory = make(map[string][]string)
	r.byRecommendation = make(map[string][]string)
	r.order = nil
}
