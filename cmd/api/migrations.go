// cmd/api/migrations.go
// Inline schema migrations, executed at startup

package main

import (
	"github.com/jmoiron/sqlx"
)

// runMigrations creates the tables the application needs if they do not
// exist yet. Statements are idempotent so repeated startups are safe.
func runMigrations(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS user_profiles (
			id BIGSERIAL PRIMARY KEY,
			display_name VARCHAR(100) NOT NULL,
			age INT NOT NULL,
			gender VARCHAR(20) NOT NULL,
			bio TEXT NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
			interests TEXT[] NOT NULL DEFAULT '{}',
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			photos TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS discovery_preferences (
			owner_id BIGINT PRIMARY KEY REFERENCES user_profiles(id) ON DELETE CASCADE,
			age_min INT NOT NULL,
			age_max INT NOT NULL,
			max_distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
			gender_filter VARCHAR(20) NOT NULL DEFAULT 'all',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS interactions (
			actor_id BIGINT NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
			target_id BIGINT NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
			kind VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (actor_id, target_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_interactions_target
			ON interactions(target_id)`,

		`CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			user_a_id BIGINT NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
			user_b_id BIGINT NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_message_text TEXT,
			last_message_sender_id BIGINT,
			last_message_at TIMESTAMPTZ,
			UNIQUE (user_a_id, user_b_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_matches_user_a ON matches(user_a_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_user_b ON matches(user_b_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
