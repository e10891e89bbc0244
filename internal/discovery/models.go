// internal/discovery/models.go

package discovery

import (
	"time"
)

// SwipeKind is the direction of a swipe action
type SwipeKind string

const (
	KindLike      SwipeKind = "like"
	KindDislike   SwipeKind = "dislike"
	KindSuperlike SwipeKind = "superlike"
)

// Valid reports whether the kind is one of the accepted swipe actions
func (k SwipeKind) Valid() bool {
	switch k {
	case KindLike, KindDislike, KindSuperlike:
		return true
	}
	return false
}

// Positive reports whether the kind counts toward reciprocity
func (k SwipeKind) Positive() bool {
	return k == KindLike || k == KindSuperlike
}

// GenderFilterAll disables gender filtering in preferences
const GenderFilterAll = "all"

// Preferences are a user's discovery filter settings.
// MaxDistanceKm of 0 means no distance limit.
type Preferences struct {
	OwnerID       int64     `json:"owner_id" db:"owner_id"`
	AgeMin        int       `json:"age_min" db:"age_min"`
	AgeMax        int       `json:"age_max" db:"age_max"`
	MaxDistanceKm float64   `json:"max_distance_km" db:"max_distance_km"`
	GenderFilter  string    `json:"gender_filter" db:"gender_filter"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultPreferences is what a user discovers with before their first
// preferences write: widest age range, no distance cap, all genders.
func DefaultPreferences(ownerID int64) *Preferences {
	return &Preferences{
		OwnerID:       ownerID,
		AgeMin:        18,
		AgeMax:        100,
		MaxDistanceKm: 0,
		GenderFilter:  GenderFilterAll,
	}
}

// Malformed reports a stored range that violates the ageMin <= ageMax
// invariant. Writes enforcing it are rejected, so a malformed row is a
// data integrity fault; readers fall back to defaults.
func (p *Preferences) Malformed() bool {
	return p.AgeMin > p.AgeMax
}

// InteractionRecord is one user's directional action toward another.
// At most one record exists per (actor, target) pair; a later swipe on
// the same target overwrites the earlier one.
type InteractionRecord struct {
	ActorID   int64     `json:"actor_id" db:"actor_id"`
	TargetID  int64     `json:"target_id" db:"target_id"`
	Kind      SwipeKind `json:"kind" db:"kind"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Match is a mutual positive interaction between two distinct users.
// The pair is stored normalized with UserAID < UserBID so one row
// serves lookups from either side.
type Match struct {
	ID        string    `json:"id" db:"id"`
	UserAID   int64     `json:"user_a_id" db:"user_a_id"`
	UserBID   int64     `json:"user_b_id" db:"user_b_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// LastMessage is denormalized for match list views; chat itself
	// lives in the messaging service and writes back through
	// MatchStore.SetLastMessage.
	LastMessage *MessageSummary `json:"last_message,omitempty"`
}

// MessageSummary is the denormalized tail of a match's conversation
type MessageSummary struct {
	Text     string    `json:"text"`
	SenderID int64     `json:"sender_id"`
	SentAt   time.Time `json:"sent_at"`
}

// HasParticipant reports whether userID is a party to the match
func (m *Match) HasParticipant(userID int64) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// OtherUser returns the participant that is not userID
func (m *Match) OtherUser(userID int64) int64 {
	if m.UserAID == userID {
		return m.UserBID
	}
	return m.UserAID
}

// normalizePair orders two user ids so (a, b) and (b, a) address the
// same match row and the same pair lock.
func normalizePair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}
