package models

// Booking statuses.
const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusCanceled = "CANCELED"
)

// LockedStatuses lists statuses that block any further approval decision.
// REJECTED and CANCELED are terminal for reads but an owner may still
// revisit the decision; only APPROVED is hard-locked.
var LockedStatuses = map[string]bool{
	StatusApproved: true,
}

// State buckets for booking listings.
const (
	StateAll      = "ALL"
	StateCurrent  = "CURRENT"
	StatePast     = "PAST"
	StateFuture   = "FUTURE"
	StateWaiting  = "WAITING"
	StateRejected = "REJECTED"
)

var validStates = map[string]bool{
	StateAll:      true,
	StateCurrent:  true,
	StatePast:     true,
	StateFuture:   true,
	StateWaiting:  true,
	StateRejected: true,
}

// ParseState validates a state filter token. Tokens are case-sensitive;
// anything outside the six buckets is rejected.
func ParseState(raw string) (string, bool) {
	if validStates[raw] {
		return raw, true
	}
	return "", false
}

const (
	// DefaultPageSize is used when a listing request omits the size parameter.
	DefaultPageSize = 20

	// RateLimitRequests requests per window per user
	RateLimitRequests = 30

	// RateLimitWindow window in seconds
	RateLimitWindow = 60
)
