// internal/discovery/stores.go
// Store contracts the engine depends on. Each has a Postgres and an
// in-memory implementation; the engine never reaches past these.

package discovery

import (
	"context"

	"github.com/amora-dating/amora-backend/internal/directory"
)

// UserDirectory is the read surface of the profile store the engine
// consumes. Profile writes belong to the directory package.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*directory.UserProfile, error)
	GetAll(ctx context.Context) ([]*directory.UserProfile, error)
}

// PreferenceStore holds per-user discovery filter settings
type PreferenceStore interface {
	// Get returns (nil, nil) when the user has never written
	// preferences; callers fall back to DefaultPreferences.
	Get(ctx context.Context, ownerID int64) (*Preferences, error)
	Upsert(ctx context.Context, prefs *Preferences) error
}

// InteractionLedger records every directional swipe
type InteractionLedger interface {
	// Get returns (nil, nil) when the actor has not acted on the target
	Get(ctx context.Context, actorID, targetID int64) (*InteractionRecord, error)
	// Upsert replaces any prior record for the (actor, target) pair
	Upsert(ctx context.Context, record *InteractionRecord) error
	// TargetsOf returns the set of ids the actor has already swiped on
	TargetsOf(ctx context.Context, actorID int64) (map[int64]struct{}, error)
}

// MatchStore holds mutual matches, at most one per unordered pair
type MatchStore interface {
	// Create inserts the match; ErrMatchExists if the pair already has one
	Create(ctx context.Context, match *Match) error
	// GetByID returns ErrMatchNotFound for unknown ids
	GetByID(ctx context.Context, id string) (*Match, error)
	// FindByPair returns (nil, nil) when the pair has no match
	FindByPair(ctx context.Context, a, b int64) (*Match, error)
	ListByUser(ctx context.Context, userID int64) ([]*Match, error)
	// SetLastMessage updates the denormalized conversation tail
	SetLastMessage(ctx context.Context, matchID string, summary *MessageSummary) error
}
