// internal/discovery/service.go

package discovery

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/amora-dating/amora-backend/internal/common/utils"
	"github.com/amora-dating/amora-backend/internal/directory"
	"github.com/amora-dating/amora-backend/internal/notify"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchExists        = errors.New("match already exists for this pair")
	ErrSelfSwipe          = errors.New("cannot swipe on yourself")
	ErrInvalidKind        = errors.New("invalid swipe kind")
	ErrInvalidLimit       = errors.New("limit out of range")
	ErrForbidden          = errors.New("not a participant in this match")
	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrInvalidAgeRange    = errors.New("age_min must not exceed age_max")
)

type Service interface {
	// Candidate Filter & Ranker
	GetCandidates(ctx context.Context, viewerID int64, limit int) ([]*directory.UserProfile, error)

	// Swipe/Match Engine
	RecordSwipe(ctx context.Context, actorID, targetID int64, kind SwipeKind) (*SwipeResult, error)

	// Matches
	ListMatches(ctx context.Context, userID int64) ([]*MatchWithProfile, error)
	GetMatch(ctx context.Context, userID int64, matchID string) (*MatchWithProfile, error)

	// Preferences
	GetPreferences(ctx context.Context, ownerID int64) (*Preferences, error)
	UpdatePreferences(ctx context.Context, ownerID int64, req *UpdatePreferencesRequest) (*Preferences, error)
}

// Limits bound the candidate list size per request
type Limits struct {
	DefaultLimit int
	MaxLimit     int
}

type service struct {
	users    UserDirectory
	prefs    PreferenceStore
	ledger   InteractionLedger
	matches  MatchStore
	notifier notify.Notifier
	pairs    *pairLocks
	limits   Limits
}

func NewService(users UserDirectory, prefs PreferenceStore, ledger InteractionLedger, matches MatchStore, notifier notify.Notifier, limits Limits) Service {
	if limits.DefaultLimit <= 0 {
		limits.DefaultLimit = 20
	}
	if limits.MaxLimit <= 0 {
		limits.MaxLimit = 100
	}
	if notifier == nil {
		notifier = notify.Nop()
	}

	return &service{
		users:    users,
		prefs:    prefs,
		ledger:   ledger,
		matches:  matches,
		notifier: notifier,
		pairs:    newPairLocks(),
		limits:   limits,
	}
}

func (s *service) ListMatches(ctx context.Context, userID int64) ([]*MatchWithProfile, error) {
	matches, err := s.matches.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*MatchWithProfile, 0, len(matches))
	for _, match := range matches {
		other, err := s.users.GetByID(ctx, match.OtherUser(userID))
		if err != nil {
			if errors.Is(err, directory.ErrProfileNotFound) {
				// Orphaned match row; skip rather than fail the list
				log.Printf("match %s references missing profile %d", match.ID, match.OtherUser(userID))
				continue
			}
			return nil, err
		}

		result = append(result, &MatchWithProfile{Match: match, OtherUser: other})
	}

	return result, nil
}

func (s *service) GetMatch(ctx context.Context, userID int64, matchID string) (*MatchWithProfile, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if !match.HasParticipant(userID) {
		return nil, ErrForbidden
	}

	other, err := s.users.GetByID(ctx, match.OtherUser(userID))
	if err != nil {
		if errors.Is(err, directory.ErrProfileNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &MatchWithProfile{Match: match, OtherUser: other}, nil
}

// GetPreferences returns the stored preferences or the documented
// defaults when the user has never written any.
func (s *service) GetPreferences(ctx context.Context, ownerID int64) (*Preferences, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, directory.ErrProfileNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	prefs, err := s.prefs.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return DefaultPreferences(ownerID), nil
	}

	return prefs, nil
}

// UpdatePreferences lazily creates preferences from the defaults on
// first write and applies the partial update. An ageMin > ageMax write
// is rejected, never clamped.
func (s *service) UpdatePreferences(ctx context.Context, ownerID int64, req *UpdatePreferencesRequest) (*Preferences, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}

	prefs, err := s.GetPreferences(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if req.AgeMin != nil {
		prefs.AgeMin = *req.AgeMin
	}
	if req.AgeMax != nil {
		prefs.AgeMax = *req.AgeMax
	}
	if req.MaxDistanceKm != nil {
		prefs.MaxDistanceKm = *req.MaxDistanceKm
	}
	if req.GenderFilter != nil {
		prefs.GenderFilter = *req.GenderFilter
	}

	if prefs.Malformed() {
		return nil, ErrInvalidAgeRange
	}

	if err := s.prefs.Upsert(ctx, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}
