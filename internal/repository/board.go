// Package repository owns the in-memory shared state of the matching demo:
// the per-category listing boards and the action ledger. Both are process
// local by design; nothing here survives a restart.
package repository

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/agent-match/internal/catalog"
	"github.com/d60-Lab/agent-match/internal/model"
)

// BoardCapacity bounds each category board; overflow drops from the tail.
const BoardCapacity = 120

// ListingInput carries the caller-supplied fields of a publish. Empty owner
// fields are default-filled from the demo identity pool.
type ListingInput struct {
	ID         string
	Title      string
	Subtitle   string
	Tags       []string
	Detail     string
	ImageURLs  []string
	OwnerName  string
	OwnerEmail string
	OwnerPhone string
}

// BoardRepository is the per-category, most-recent-first listing store.
type BoardRepository interface {
	// Insert places a new listing at the front of the category board.
	Insert(ctx context.Context, categoryID string, in ListingInput) model.Listing

	// UpsertByOwner updates the owner's existing listing in place and moves
	// it to the front, or inserts a new one. Returns updated=true on mutate.
	UpsertByOwner(ctx context.Context, categoryID string, in ListingInput) (model.Listing, bool)

	// Find looks up a listing by id within one category.
	Find(ctx context.Context, categoryID, id string) (model.Listing, bool)

	// List snapshots a category board, most-recent-first.
	List(ctx context.Context, categoryID string) []model.Listing

	// Counts returns the non-empty per-category sizes.
	Counts(ctx context.Context) map[string]int

	// Seed idempotently inserts the demo rows for every catalog category and
	// returns how many were newly inserted per category. reset clears the
	// board first.
	Seed(ctx context.Context, reset bool) map[string]int

	// Reset drops all board state.
	Reset(ctx context.Context)
}

type memoryBoardRepository struct {
	mu     sync.RWMutex
	boards map[string][]*model.Listing
}

// NewBoardRepository creates an empty in-memory board store.
func NewBoardRepository() BoardRepository {
	return &memoryBoardRepository{boards: make(map[string][]*model.Listing)}
}

func newListingID(categoryID string) string {
	u := uuid.New()
	return fmt.Sprintf("%s-user-%s", categoryID, hex.EncodeToString(u[:])[:8])
}

func capTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{"매칭", "조건"}
	}
	if len(tags) > model.MaxListingTags {
		tags = tags[:model.MaxListingTags]
	}
	return append([]string(nil), tags...)
}

func capImages(urls []string) []string {
	if len(urls) > model.MaxListingImages {
		urls = urls[:model.MaxListingImages]
	}
	return append([]string(nil), urls...)
}

// buildListing materializes the input; position keys the default owner
// assignment so the same slot always gets the same demo identity.
func buildListing(categoryID string, in ListingInput, position int) *model.Listing {
	now := time.Now()
	l := &model.Listing{
		ID:         in.ID,
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		Tags:       capTags(in.Tags),
		Detail:     in.Detail,
		ImageURLs:  capImages(in.ImageURLs),
		OwnerName:  strings.TrimSpace(in.OwnerName),
		OwnerEmail: strings.ToLower(strings.TrimSpace(in.OwnerEmail)),
		OwnerPhone: strings.TrimSpace(in.OwnerPhone),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if l.ID == "" {
		l.ID = newListingID(categoryID)
	}
	if l.OwnerName == "" && l.OwnerEmail == "" {
		id := catalog.AssignedOwner(categoryID, position)
		l.OwnerName, l.OwnerEmail, l.OwnerPhone = id.Name, id.Email, id.Phone
	}
	return l
}

func (r *memoryBoardRepository) insertLocked(categoryID string, in ListingInput) *model.Listing {
	items := r.boards[categoryID]
	l := buildListing(categoryID, in, len(items))
	items = append([]*model.Listing{l}, items...)
	if len(items) > BoardCapacity {
		items = items[:BoardCapacity]
	}
	r.boards[categoryID] = items
	return l
}

func (r *memoryBoardRepository) Insert(ctx context.Context, categoryID string, in ListingInput) model.Listing {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(categoryID, in).Clone()
}

func (r *memoryBoardRepository) UpsertByOwner(ctx context.Context, categoryID string, in ListingInput) (model.Listing, bool) {
	email := strings.ToLower(strings.TrimSpace(in.OwnerEmail))
	r.mu.Lock()
	defer r.mu.Unlock()
	if email != "" {
		items := r.boards[categoryID]
		for i, l := range items {
			if l.OwnerEmail != email {
				continue
			}
			l.Title = in.Title
			l.Subtitle = in.Subtitle
			l.Tags = capTags(in.Tags)
			if in.Detail != "" {
				l.Detail = in.Detail
			}
			if len(in.ImageURLs) > 0 {
				l.ImageURLs = capImages(in.ImageURLs)
			}
			l.UpdatedAt = time.Now()
			// move to front
			copy(items[1:i+1], items[:i])
			items[0] = l
			return l.Clone(), true
		}
	}
	return r.insertLocked(categoryID, in).Clone(), false
}

func (r *memoryBoardRepository) Find(ctx context.Context, categoryID, id string) (model.Listing, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.boards[categoryID] {
		if l.ID == id {
			return l.Clone(), true
		}
	}
	return model.Listing{}, false
}

func (r *memoryBoardRepository) List(ctx context.Context, categoryID string) []model.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.boards[categoryID]
	out := make([]model.Listing, len(items))
	for i, l := range items {
		out[i] = l.Clone()
	}
	return out
}

func (r *memoryBoardRepository) Counts(ctx context.Context) map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int, len(r.boards))
	for cid, items := range r.boards {
		if len(items) > 0 {
			out[cid] = len(items)
		}
	}
	return out
}

func (r *memoryBoardRepository) Seed(ctx context.Context, reset bool) map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reset {
		r.boards = make(map[string][]*model.Listing)
	}

	counts := make(map[string]int)
	for _, category := range catalog.Categories() {
		cid := category.ID
		existing := make(map[string]struct{}, len(r.boards[cid]))
		for _, l := range r.boards[cid] {
			existing[l.ID] = struct{}{}
		}

		inserted := 0
		for idx, cand := range catalog.SeedCandidates(cid) {
			seedID := fmt.Sprintf("%s-seed-%d", cid, idx+1)
			if _, dup := existing[seedID]; dup {
				continue
			}
			owner := catalog.AssignedOwner(cid, idx)
			r.insertLocked(cid, ListingInput{
				ID:         seedID,
				Title:      cand.Title,
				Subtitle:   cand.Subtitle,
				Tags:       cand.Tags,
				OwnerName:  owner.Name,
				OwnerEmail: owner.Email,
				OwnerPhone: owner.Phone,
			})
			inserted++
		}
		counts[cid] = inserted
	}
	return counts
}

func (r *memoryBoardRepository) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards = make(map[string][]*model.Listing)
}
