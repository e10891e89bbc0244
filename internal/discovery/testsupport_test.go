package discovery

import (
	"context"
	"testing"

	"github.com/lib/pq"

	"github.com/amora-dating/amora-backend/internal/directory"
	"github.com/amora-dating/amora-backend/internal/notify"
)

// fixture wires the engine against the in-memory stores
type fixture struct {
	users   directory.Repository
	prefs   PreferenceStore
	ledger  InteractionLedger
	matches MatchStore
	svc     Service
}

func newFixture() *fixture {
	return newFixtureWithNotifier(nil)
}

func newFixtureWithNotifier(notifier notify.Notifier) *fixture {
	users := directory.NewMemoryRepository()
	prefs := NewMemoryPreferenceStore()
	ledger := NewMemoryInteractionLedger()
	matches := NewMemoryMatchStore()

	return &fixture{
		users:   users,
		prefs:   prefs,
		ledger:  ledger,
		matches: matches,
		svc:     NewService(users, prefs, ledger, matches, notifier, Limits{DefaultLimit: 20, MaxLimit: 100}),
	}
}

func (f *fixture) addProfile(t *testing.T, id int64, name string, age int, gender string, distanceKm float64) *directory.UserProfile {
	t.Helper()

	profile := &directory.UserProfile{
		ID:          id,
		DisplayName: name,
		Age:         age,
		Gender:      gender,
		DistanceKm:  distanceKm,
		Photos:      pq.StringArray{"https://cdn.amora.dev/test/" + name + ".jpg"},
	}
	if err := f.users.Create(context.Background(), profile); err != nil {
		t.Fatalf("creating profile %s: %v", name, err)
	}

	return profile
}

func (f *fixture) addIncompleteProfile(t *testing.T, id int64, name string, age int, gender string, distanceKm float64) *directory.UserProfile {
	t.Helper()

	profile := &directory.UserProfile{
		ID:          id,
		DisplayName: name,
		Age:         age,
		Gender:      gender,
		DistanceKm:  distanceKm,
	}
	if err := f.users.Create(context.Background(), profile); err != nil {
		t.Fatalf("creating profile %s: %v", name, err)
	}

	return profile
}

func candidateIDs(candidates []*directory.UserProfile) []int64 {
	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	return ids
}

func sameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
