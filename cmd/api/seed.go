// cmd/api/seed.go
// Demo data for local development, enabled with SEED_DEMO_DATA=true

package main

import (
	"context"
	"log"

	"github.com/amora-dating/amora-backend/internal/directory"
	"github.com/amora-dating/amora-backend/internal/discovery"
)

// seedDemoData populates a handful of profiles so the discovery feed
// has something to show on a fresh database. Skips seeding entirely if
// any profiles already exist.
func seedDemoData(ctx context.Context, users directory.Service, prefs discovery.PreferenceStore) error {
	existing, err := users.GetAllProfiles(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("ℹ️  Skipping demo seed, %d profiles already present", len(existing))
		return nil
	}

	profiles := []*directory.CreateProfileRequest{
		{
			DisplayName: "Emma",
			Age:         28,
			Gender:      "female",
			Bio:         "Coffee enthusiast and weekend hiker. Looking for someone to share trail snacks with.",
			Location:    "Brooklyn, NY",
			DistanceKm:  5,
			Interests:   []string{"hiking", "coffee", "photography"},
			Photos:      []string{"https://cdn.amora.dev/demo/emma-1.jpg", "https://cdn.amora.dev/demo/emma-2.jpg"},
		},
		{
			DisplayName: "Liam",
			Age:         31,
			Gender:      "male",
			Bio:         "Software engineer by day, amateur chef by night. My pasta is better than my code.",
			Location:    "Manhattan, NY",
			DistanceKm:  8,
			Interests:   []string{"cooking", "cycling", "jazz"},
			Photos:      []string{"https://cdn.amora.dev/demo/liam-1.jpg"},
		},
		{
			DisplayName: "Sofia",
			Age:         26,
			Gender:      "female",
			Bio:         "Yoga instructor who travels too much. Ask me about Lisbon.",
			Location:    "Queens, NY",
			DistanceKm:  3,
			Interests:   []string{"yoga", "travel", "painting"},
			Photos:      []string{"https://cdn.amora.dev/demo/sofia-1.jpg", "https://cdn.amora.dev/demo/sofia-2.jpg"},
		},
		{
			DisplayName: "Noah",
			Age:         29,
			Gender:      "male",
			Bio:         "Dog dad to a very opinionated corgi. He approves my matches.",
			Location:    "Jersey City, NJ",
			DistanceKm:  12,
			Interests:   []string{"dogs", "running", "board games"},
			Photos:      []string{"https://cdn.amora.dev/demo/noah-1.jpg"},
		},
		{
			DisplayName: "Olivia",
			Age:         27,
			Gender:      "female",
			Bio:         "Bookshop regular and live music chaser. Currently rereading everything by Le Guin.",
			Location:    "Brooklyn, NY",
			DistanceKm:  6,
			Interests:   []string{"reading", "concerts", "wine"},
			Photos:      []string{"https://cdn.amora.dev/demo/olivia-1.jpg", "https://cdn.amora.dev/demo/olivia-2.jpg"},
		},
		{
			DisplayName: "Ethan",
			Age:         33,
			Gender:      "male",
			Bio:         "Climbing gym three times a week. Belay certified, commitment pending.",
			Location:    "Hoboken, NJ",
			DistanceKm:  15,
			Interests:   []string{"climbing", "craft beer", "film"},
			Photos:      []string{"https://cdn.amora.dev/demo/ethan-1.jpg"},
		},
	}

	for _, req := range profiles {
		profile, err := users.CreateProfile(ctx, req)
		if err != nil {
			return err
		}

		// Seeded users start with default preferences written out so the
		// preferences endpoint returns a persisted row for them
		if err := prefs.Upsert(ctx, discovery.DefaultPreferences(profile.ID)); err != nil {
			return err
		}
	}

	log.Printf("ℹ️  Seeded %d demo profiles", len(profiles))
	return nil
}
