// Package session persists the authentication session across runs.
package session

import "context"

// Record is the persisted session. Both fields are written and cleared as
// one unit: a loaded record always carries both a token and a username.
type Record struct {
	Token    string
	Username string
}

// Repository stores at most one session record.
//
// Load returns nil when no complete record is stored. Implementations treat
// a partially present record (token without username or the reverse) as
// absent, so a broken write degrades to the logged-out state.
type Repository interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context) (*Record, error)
	Clear(ctx context.Context) error
}
