package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/agent-match/internal/catalog"
	"github.com/d60-Lab/agent-match/internal/model"
	"github.com/d60-Lab/agent-match/internal/repository"
	"github.com/d60-Lab/agent-match/pkg/logger"
)

var (
	// ErrRequesterEmailRequired: a match request needs a requester identity.
	ErrRequesterEmailRequired = errors.New("requester email is required")
	// ErrSelfRequest: owners cannot request a match on their own listing.
	ErrSelfRequest = errors.New("cannot request a match on your own listing")
	// ErrActionNotFound: unknown action id.
	ErrActionNotFound = errors.New("action not found")
	// ErrListingNotFound: the recommendation id resolves to neither a board
	// listing nor a default candidate.
	ErrListingNotFound = errors.New("listing not found")
	// ErrUnauthorized: the transition is state-valid but the actor's role is
	// not permitted to issue it. Deliberately carries no allowed-command
	// list.
	ErrUnauthorized = errors.New("not permitted for this command")
)

// InvalidTransitionError reports a command that is not valid for the current
// status, including the commands that would be, to aid caller-side retry.
type InvalidTransitionError struct {
	Status  model.ActionStatus
	Command model.ActionCommand
	Allowed []model.ActionCommand
}

func (e *InvalidTransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, c := range e.Allowed {
		allowed[i] = string(c)
	}
	label := strings.Join(allowed, ", ")
	if label == "" {
		label = "none"
	}
	return fmt.Sprintf("invalid transition: %s -> %s (allowed: %s)", e.Status, e.Command, label)
}

// ActionService runs the request/accept/reject/confirm/cancel lifecycle with
// role-based authorization and contact-disclosure gating.
type ActionService interface {
	Request(ctx context.Context, categoryID, recommendationID, requesterEmail, requesterName, note string) (model.ActionView, error)
	Transition(ctx context.Context, actionID string, command model.ActionCommand, actorEmail, note string) (model.ActionView, error)
	List(ctx context.Context, categoryID, viewerEmail string) []model.ActionView
	Serialize(a model.Action, viewerEmail string) model.ActionView
}

type actionService struct {
	actions repository.ActionRepository
	board   repository.BoardRepository
}

// NewActionService wires the lifecycle over the ledger and the board store.
func NewActionService(actions repository.ActionRepository, board repository.BoardRepository) ActionService {
	return &actionService{actions: actions, board: board}
}

func newActionID() string {
	u := uuid.New()
	return "act-" + hex.EncodeToString(u[:])[:10]
}

// ownerSnapshot resolves the counterpart identity and display fields for a
// recommendation id: a board listing when resident, else the deterministic
// owner of the matching default candidate slot.
func (s *actionService) ownerSnapshot(ctx context.Context, categoryID, recommendationID string) (catalog.Identity, string, string, error) {
	if l, ok := s.board.Find(ctx, categoryID, recommendationID); ok {
		owner := catalog.Identity{Name: l.OwnerName, Email: l.OwnerEmail, Phone: l.OwnerPhone}
		return owner, l.Title, l.Subtitle, nil
	}
	if rest, ok := strings.CutPrefix(recommendationID, categoryID+"-default-"); ok {
		candidates := catalog.DefaultCandidates(categoryID)
		if idx, err := strconv.Atoi(rest); err == nil && idx >= 1 && idx <= len(candidates) {
			cand := candidates[idx-1]
			return catalog.AssignedOwner(categoryID, idx-1), cand.Title, cand.Subtitle, nil
		}
	}
	return catalog.Identity{}, "", "", ErrListingNotFound
}

func (s *actionService) Request(ctx context.Context, categoryID, recommendationID, requesterEmail, requesterName, note string) (model.ActionView, error) {
	email := strings.ToLower(strings.TrimSpace(requesterEmail))
	if email == "" {
		return model.ActionView{}, ErrRequesterEmailRequired
	}
	cid := categoryID
	if cid == "" {
		cid = catalog.DefaultCategoryID
	}

	owner, title, subtitle, err := s.ownerSnapshot(ctx, cid, recommendationID)
	if err != nil {
		return model.ActionView{}, err
	}
	if owner.Email != "" && owner.Email == email {
		return model.ActionView{}, ErrSelfRequest
	}

	now := time.Now()
	action := &model.Action{
		ID:                     newActionID(),
		CategoryID:             cid,
		RecommendationID:       recommendationID,
		RecommendationTitle:    title,
		RecommendationSubtitle: subtitle,
		Status:                 model.StatusRequested,
		RequesterEmail:         email,
		RequesterName:          strings.TrimSpace(requesterName),
		OwnerEmail:             owner.Email,
		OwnerName:              owner.Name,
		OwnerPhone:             owner.Phone,
		Note:                   note,
		CreatedAt:              now,
		UpdatedAt:              now,
		History: []model.HistoryEntry{
			{Status: model.StatusRequested, Note: note, At: now},
		},
	}

	stored, created := s.actions.CreateIfNoActive(ctx, action)
	if !created {
		// Repeat request while one is active: return the existing action
		// unchanged.
		return s.Serialize(stored, email), nil
	}
	logger.Info("action requested",
		zap.String("action_id", stored.ID),
		zap.String("category", cid),
		zap.String("recommendation_id", recommendationID))
	return s.Serialize(stored, email), nil
}

func (s *actionService) Transition(ctx context.Context, actionID string, command model.ActionCommand, actorEmail, note string) (model.ActionView, error) {
	updated, found, err := s.actions.Mutate(ctx, actionID, func(a *model.Action) error {
		next, ok := model.NextStatus(a.Status, command)
		if !ok {
			return &InvalidTransitionError{Status: a.Status, Command: command, Allowed: model.AllowedCommands(a.Status)}
		}
		role := a.RoleFor(actorEmail)
		if !model.May(a.Status, command, role) {
			return ErrUnauthorized
		}
		now := time.Now()
		a.Status = next
		a.UpdatedAt = now
		if note != "" {
			a.Note = note
		}
		a.History = append(a.History, model.HistoryEntry{Status: next, Note: note, At: now})
		return nil
	})
	if !found {
		return model.ActionView{}, ErrActionNotFound
	}
	if err != nil {
		return model.ActionView{}, err
	}
	logger.Info("action transitioned",
		zap.String("action_id", actionID),
		zap.String("command", string(command)),
		zap.String("status", string(updated.Status)))
	return s.Serialize(updated, actorEmail), nil
}

func (s *actionService) List(ctx context.Context, categoryID, viewerEmail string) []model.ActionView {
	actions := s.actions.List(ctx, categoryID)
	out := make([]model.ActionView, len(actions))
	for i, a := range actions {
		out[i] = s.Serialize(a, viewerEmail)
	}
	return out
}

// Serialize projects an action for one viewer. Contact is unlocked only for
// the two parties once the action is accepted or confirmed; the requester
// sees the owner's phone, the owner never sees a requester phone (the model
// does not collect one).
func (s *actionService) Serialize(a model.Action, viewerEmail string) model.ActionView {
	role := a.RoleFor(viewerEmail)
	unlocked := (a.Status == model.StatusAccepted || a.Status == model.StatusConfirmed) &&
		(role == model.RoleOwner || role == model.RoleRequester)

	view := model.ActionView{
		Action:          a.Clone(),
		ViewerRole:      role,
		ContactUnlocked: unlocked,
		AllowedActions:  []model.ActionCommand{},
	}
	for _, cmd := range model.AllowedCommands(a.Status) {
		if model.May(a.Status, cmd, role) {
			view.AllowedActions = append(view.AllowedActions, cmd)
		}
	}
	if unlocked {
		switch role {
		case model.RoleRequester:
			view.Counterpart = &model.ContactCard{Name: a.OwnerName, Email: a.OwnerEmail, Phone: a.OwnerPhone}
		case model.RoleOwner:
			view.Counterpart = &model.ContactCard{Name: a.RequesterName, Email: a.RequesterEmail}
		}
	}
	return view
}
