package offer

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInsufficientRole   = errors.New("insufficient role for status transition")
	ErrNotAssignedCourier = errors.New("actor is not the offer's assigned courier")
	ErrNotOfferRequester  = errors.New("actor is not the offer's requester")
)

type edge struct {
	from Status
	to   Status
}

// transitions is the complete set of legal edges and the roles allowed to take them.
var transitions = map[edge][]Role{
	{Open, Accepted}:       {Courier},
	{Accepted, PickedUp}:   {Courier},
	{PickedUp, InTransit}:  {Courier},
	{InTransit, Delivered}: {Courier},
	{Delivered, Completed}: {Requester},
	{Open, Cancelled}:      {Requester, Courier},
	{Accepted, Cancelled}:  {Requester, Courier},
}

// AllowedRoles returns the roles permitted to move an offer from one status to
// another. The second result is false when the edge does not exist.
func AllowedRoles(from, to Status) ([]Role, bool) {
	roles, ok := transitions[edge{from: from, to: to}]
	if !ok {
		return nil, false
	}
	return slices.Clone(roles), true
}

// CheckTransition validates an edge against the table without touching an offer.
func CheckTransition(from, to Status, role Role) error {
	roles, ok := transitions[edge{from: from, to: to}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	if !slices.Contains(roles, role) {
		return fmt.Errorf("%w: %s -> %s requires %s, got %s", ErrInsufficientRole, from, to, joinRoles(roles), role)
	}
	return nil
}

// NextStatuses lists the statuses reachable from s by the given role.
func NextStatuses(from Status, role Role) []Status {
	var next []Status
	for _, to := range AllStatuses() {
		if CheckTransition(from, to, role) == nil {
			next = append(next, to)
		}
	}
	return next
}

func joinRoles(roles []Role) string {
	out := ""
	for i, r := range roles {
		if i > 0 {
			out += " or "
		}
		out += r.String()
	}
	return out
}
