package model

import (
	"strings"
	"time"
)

// ActionStatus is the lifecycle state of a match request.
type ActionStatus string

const (
	StatusRequested ActionStatus = "requested"
	StatusAccepted  ActionStatus = "accepted"
	StatusRejected  ActionStatus = "rejected"
	StatusConfirmed ActionStatus = "confirmed"
	StatusCanceled  ActionStatus = "canceled"
)

// ActionCommand is a caller-issued transition command.
type ActionCommand string

const (
	CommandAccept  ActionCommand = "accept"
	CommandReject  ActionCommand = "reject"
	CommandConfirm ActionCommand = "confirm"
	CommandCancel  ActionCommand = "cancel"
)

// Role is the viewer's relationship to an action, resolved by email.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleRequester Role = "requester"
	RoleViewer    Role = "viewer"
)

// transitions is the full state table. Missing entries are invalid moves;
// rejected/confirmed/canceled have no successors.
var transitions = map[ActionStatus]map[ActionCommand]ActionStatus{
	StatusRequested: {
		CommandAccept: StatusAccepted,
		CommandReject: StatusRejected,
		CommandCancel: StatusCanceled,
	},
	StatusAccepted: {
		CommandConfirm: StatusConfirmed,
		CommandReject:  StatusRejected,
		CommandCancel:  StatusCanceled,
	},
	StatusRejected:  {},
	StatusConfirmed: {},
	StatusCanceled:  {},
}

// commandRoles maps each command to the roles allowed to issue it.
var commandRoles = map[ActionCommand][]Role{
	CommandAccept:  {RoleOwner},
	CommandReject:  {RoleOwner},
	CommandConfirm: {RoleRequester},
	CommandCancel:  {RoleOwner, RoleRequester},
}

// commandOrder keeps AllowedCommands output deterministic.
var commandOrder = []ActionCommand{CommandAccept, CommandReject, CommandConfirm, CommandCancel}

// NextStatus returns the table-defined successor for (status, command).
func NextStatus(status ActionStatus, command ActionCommand) (ActionStatus, bool) {
	next, ok := transitions[status][command]
	return next, ok
}

// AllowedCommands lists every state-valid command for the status, in a fixed order.
func AllowedCommands(status ActionStatus) []ActionCommand {
	possible := transitions[status]
	out := make([]ActionCommand, 0, len(possible))
	for _, cmd := range commandOrder {
		if _, ok := possible[cmd]; ok {
			out = append(out, cmd)
		}
	}
	return out
}

// May reports whether role is permitted to issue command from status.
// State validity and role permission are checked independently so callers
// can distinguish an invalid transition from an authorization failure.
func May(status ActionStatus, command ActionCommand, role Role) bool {
	if _, ok := transitions[status][command]; !ok {
		return false
	}
	for _, r := range commandRoles[command] {
		if r == role {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s ActionStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// Active reports whether the status still blocks a duplicate request.
func (s ActionStatus) Active() bool {
	return s == StatusRequested || s == StatusAccepted
}

// HistoryEntry is one append-only lifecycle record.
type HistoryEntry struct {
	Status ActionStatus `json:"status"`
	Note   string       `json:"note,omitempty"`
	At     time.Time    `json:"at"`
}

// Action is the negotiation state between a requester and a listing owner.
// Owner identity is snapshotted at creation so later listing edits do not
// retroactively change it.
type Action struct {
	ID                     string         `json:"id"`
	CategoryID             string         `json:"category_id"`
	RecommendationID       string         `json:"recommendation_id"`
	RecommendationTitle    string         `json:"recommendation_title"`
	RecommendationSubtitle string         `json:"recommendation_subtitle,omitempty"`
	Status                 ActionStatus   `json:"status"`
	RequesterEmail         string         `json:"-"`
	RequesterName          string         `json:"-"`
	OwnerEmail             string         `json:"-"`
	OwnerName              string         `json:"-"`
	OwnerPhone             string         `json:"-"`
	Note                   string         `json:"note,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	History                []HistoryEntry `json:"history"`
}

// RoleFor resolves the viewer role for an email, case-insensitively.
func (a *Action) RoleFor(email string) Role {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return RoleViewer
	}
	if e == a.OwnerEmail {
		return RoleOwner
	}
	if e == a.RequesterEmail {
		return RoleRequester
	}
	return RoleViewer
}

// Clone returns an independent copy; the history slice is not shared.
func (a *Action) Clone() Action {
	out := *a
	out.History = append([]HistoryEntry(nil), a.History...)
	return out
}

// ContactCard is the counterpart identity revealed once contact is unlocked.
type ContactCard struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ActionView is the per-viewer projection of an action. Counterpart is only
// populated when ContactUnlocked is true.
type ActionView struct {
	Action
	ViewerRole      Role            `json:"viewer_role"`
	AllowedActions  []ActionCommand `json:"allowed_actions"`
	ContactUnlocked bool            `json:"contact_unlocked"`
	Counterpart     *ContactCard    `json:"counterpart,omitempty"`
}
