// Package offer implements the delivery lifecycle: the Offer aggregate and the
// state machine that decides which status changes are legal and who may make them.
//
// Transitions are keyed by (from, to) and carry the set of roles allowed to take
// them. Anything missing from the table is ErrInvalidTransition; a present edge
// taken by the wrong role is ErrInsufficientRole.
package offer
