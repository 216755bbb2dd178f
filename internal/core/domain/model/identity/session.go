package identity

import "time"

// Session is one issued admin token. Its ID is the token id claim.
type Session struct {
	ID        string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ActivityOutcome tells whether a logged admin operation succeeded.
type ActivityOutcome string

const (
	OutcomeSuccess ActivityOutcome = "success"
	OutcomeFailure ActivityOutcome = "failure"
)

// ActivityEntry is one line of an admin's activity log. Operation names the
// command, e.g. "assign_driver".
type ActivityEntry struct {
	Operation string
	Module    Module
	TargetID  string
	Outcome   ActivityOutcome
	Detail    string
	At        time.Time
}
