// internal/discovery/memory.go
// In-memory store implementations for development and tests. Same
// contracts as the Postgres stores, single process only.

package discovery

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Preference store

type memoryPreferenceStore struct {
	mu    sync.RWMutex
	prefs map[int64]*Preferences
}

func NewMemoryPreferenceStore() PreferenceStore {
	return &memoryPreferenceStore{prefs: make(map[int64]*Preferences)}
}

func (s *memoryPreferenceStore) Get(ctx context.Context, ownerID int64) (*Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs, ok := s.prefs[ownerID]
	if !ok {
		return nil, nil
	}

	copied := *prefs
	return &copied, nil
}

func (s *memoryPreferenceStore) Upsert(ctx context.Context, prefs *Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs.UpdatedAt = time.Now()
	stored := *prefs
	s.prefs[prefs.OwnerID] = &stored
	return nil
}

// Interaction ledger

type pairKey struct {
	actorID  int64
	targetID int64
}

type memoryInteractionLedger struct {
	mu      sync.RWMutex
	records map[pairKey]*InteractionRecord
}

func NewMemoryInteractionLedger() InteractionLedger {
	return &memoryInteractionLedger{records: make(map[pairKey]*InteractionRecord)}
}

func (l *memoryInteractionLedger) Get(ctx context.Context, actorID, targetID int64) (*InteractionRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.records[pairKey{actorID, targetID}]
	if !ok {
		return nil, nil
	}

	copied := *record
	return &copied, nil
}

func (l *memoryInteractionLedger) Upsert(ctx context.Context, record *InteractionRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := *record
	l.records[pairKey{record.ActorID, record.TargetID}] = &stored
	return nil
}

func (l *memoryInteractionLedger) TargetsOf(ctx context.Context, actorID int64) (map[int64]struct{}, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	targets := make(map[int64]struct{})
	for key := range l.records {
		if key.actorID == actorID {
			targets[key.targetID] = struct{}{}
		}
	}

	return targets, nil
}

// Match store

type memoryMatchStore struct {
	mu      sync.RWMutex
	matches map[string]*Match
	byPair  map[pairKey]string
}

func NewMemoryMatchStore() MatchStore {
	return &memoryMatchStore{
		matches: make(map[string]*Match),
		byPair:  make(map[pairKey]string),
	}
}

func (s *memoryMatchStore) Create(ctx context.Context, match *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{match.UserAID, match.UserBID}
	if _, ok := s.byPair[key]; ok {
		return ErrMatchExists
	}

	stored := *match
	s.matches[match.ID] = &stored
	s.byPair[key] = match.ID
	return nil
}

func (s *memoryMatchStore) GetByID(ctx context.Context, id string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match, ok := s.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}

	return copyMatch(match), nil
}

func (s *memoryMatchStore) FindByPair(ctx context.Context, a, b int64) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lo, hi := normalizePair(a, b)
	id, ok := s.byPair[pairKey{lo, hi}]
	if !ok {
		return nil, nil
	}

	return copyMatch(s.matches[id]), nil
}

func (s *memoryMatchStore) ListByUser(ctx context.Context, userID int64) ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*Match
	for _, match := range s.matches {
		if match.HasParticipant(userID) {
			matches = append(matches, copyMatch(match))
		}
	}

	// Newest first, same as the Postgres store
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID < matches[j].ID
	})

	return matches, nil
}

func (s *memoryMatchStore) SetLastMessage(ctx context.Context, matchID string, summary *MessageSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, ok := s.matches[matchID]
	if !ok {
		return ErrMatchNotFound
	}

	copied := *summary
	match.LastMessage = &copied
	return nil
}

func copyMatch(match *Match) *Match {
	copied := *match
	if match.LastMessage != nil {
		summary := *match.LastMessage
		copied.LastMessage = &summary
	}
	return &copied
}
