// internal/discovery/engine.go
// Candidate filtering and ranking. Pure read: repeated calls with the
// same stored state return the same ordered list.

package discovery

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/amora-dating/amora-backend/internal/directory"
)

// GetCandidates produces the ordered, de-duplicated candidate list for
// viewerID, at most limit entries. limit 0 selects the default.
func (s *service) GetCandidates(ctx context.Context, viewerID int64, limit int) ([]*directory.UserProfile, error) {
	if limit == 0 {
		limit = s.limits.DefaultLimit
	}
	if limit < 1 || limit > s.limits.MaxLimit {
		return nil, ErrInvalidLimit
	}

	viewer, err := s.users.GetByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, directory.ErrProfileNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	prefs, err := s.loadPreferences(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	population, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	swiped, err := s.ledger.TargetsOf(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	matches, err := s.matches.ListByUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	matched := make(map[int64]struct{}, len(matches))
	for _, match := range matches {
		matched[match.OtherUser(viewerID)] = struct{}{}
	}

	candidates := make([]*directory.UserProfile, 0, len(population))
	for _, candidate := range population {
		if candidate.ID == viewer.ID {
			continue
		}
		if _, ok := swiped[candidate.ID]; ok {
			// Already swiped in either direction of sentiment; a
			// candidate is dealt at most once.
			continue
		}
		if _, ok := matched[candidate.ID]; ok {
			continue
		}
		if !candidate.IsComplete() {
			continue
		}
		if !matchesPreferences(candidate, prefs) {
			continue
		}

		candidates = append(candidates, candidate)
	}

	// Nearest first; ties broken by id so identical inputs always
	// produce identical ordering.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].ID < candidates[j].ID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	RecordCandidatesReturned(len(candidates))

	return candidates, nil
}

// loadPreferences resolves the viewer's filters, substituting defaults
// when none are stored or the stored row is malformed. A malformed row
// means a write slipped past validation; it must not fail discovery.
func (s *service) loadPreferences(ctx context.Context, viewerID int64) (*Preferences, error) {
	prefs, err := s.prefs.Get(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return DefaultPreferences(viewerID), nil
	}
	if prefs.Malformed() {
		log.Printf("malformed preferences for user %d (age %d-%d), falling back to defaults", viewerID, prefs.AgeMin, prefs.AgeMax)
		RecordPreferenceFallback()
		return DefaultPreferences(viewerID), nil
	}

	return prefs, nil
}

func matchesPreferences(candidate *directory.UserProfile, prefs *Preferences) bool {
	if prefs.GenderFilter != GenderFilterAll && candidate.Gender != prefs.GenderFilter {
		return false
	}
	if candidate.Age < prefs.AgeMin || candidate.Age > prefs.AgeMax {
		return false
	}
	if prefs.MaxDistanceKm > 0 && candidate.DistanceKm > prefs.MaxDistanceKm {
		return false
	}
	return true
}
