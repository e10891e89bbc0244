// internal/discovery/swipe.go
// Swipe processing and match formation. Reciprocity is deterministic:
// a match forms exactly when both directed likes exist, never by
// chance.

package discovery

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/amora-dating/amora-backend/internal/directory"
	"github.com/amora-dating/amora-backend/internal/notify"
)

// RecordSwipe upserts the actor's interaction with the target and, for
// positive kinds, checks the opposite direction for reciprocity. The
// whole check-upsert-check-create sequence runs under the pair lock so
// two concurrent opposite swipes settle on exactly one Match.
func (s *service) RecordSwipe(ctx context.Context, actorID, targetID int64, kind SwipeKind) (*SwipeResult, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	if actorID == targetID {
		return nil, ErrSelfSwipe
	}

	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, directory.ErrProfileNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	unlock := s.pairs.Lock(actorID, targetID)
	defer unlock()

	// Retries after a match are a no-op success returning the match
	existing, err := s.matches.FindByPair(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &SwipeResult{Recorded: true, Match: existing}, nil
	}

	record := &InteractionRecord{
		ActorID:   actorID,
		TargetID:  targetID,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ledger.Upsert(ctx, record); err != nil {
		return nil, err
	}
	RecordSwipeKind(kind)

	if kind == KindDislike {
		return &SwipeResult{Recorded: true}, nil
	}

	reverse, err := s.ledger.Get(ctx, targetID, actorID)
	if err != nil {
		return nil, err
	}
	if reverse == nil || !reverse.Kind.Positive() {
		s.notifyAsync(targetID, notify.Event{
			Type:    notify.EventLikeReceived,
			ActorID: actorID,
		})
		return &SwipeResult{Recorded: true}, nil
	}

	match, err := s.createMatch(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}

	s.notifyAsync(actorID, notify.Event{Type: notify.EventMatchCreated, ActorID: targetID, MatchID: match.ID})
	s.notifyAsync(targetID, notify.Event{Type: notify.EventMatchCreated, ActorID: actorID, MatchID: match.ID})

	return &SwipeResult{Recorded: true, Match: match}, nil
}

func (s *service) createMatch(ctx context.Context, actorID, targetID int64) (*Match, error) {
	a, b := normalizePair(actorID, targetID)
	match := &Match{
		ID:        uuid.NewString(),
		UserAID:   a,
		UserBID:   b,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.matches.Create(ctx, match); err != nil {
		// Another instance won the pair; its row is the match
		if errors.Is(err, ErrMatchExists) {
			existing, findErr := s.matches.FindByPair(ctx, a, b)
			if findErr != nil {
				return nil, findErr
			}
			if existing == nil {
				return nil, err
			}
			return existing, nil
		}
		return nil, err
	}

	RecordMatchCreated()

	return match, nil
}

// notifyAsync fans an event out without blocking or failing the swipe.
// The request context is intentionally not reused: the swipe response
// does not wait for delivery.
func (s *service) notifyAsync(userID int64, event notify.Event) {
	event.CreatedAt = time.Now().UTC()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.notifier.Notify(ctx, userID, event)
	}()
}
