// internal/discovery/postgres.go
// Postgres implementations of the engine's stores.

package discovery

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Preference store

type postgresPreferenceStore struct {
	db *sqlx.DB
}

func NewPostgresPreferenceStore(db *sqlx.DB) PreferenceStore {
	return &postgresPreferenceStore{db: db}
}

func (s *postgresPreferenceStore) Get(ctx context.Context, ownerID int64) (*Preferences, error) {
	var prefs Preferences
	query := `SELECT * FROM discovery_preferences WHERE owner_id = $1`

	err := s.db.GetContext(ctx, &prefs, query, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &prefs, nil
}

func (s *postgresPreferenceStore) Upsert(ctx context.Context, prefs *Preferences) error {
	query := `
        INSERT INTO discovery_preferences (
            owner_id, age_min, age_max, max_distance_km, gender_filter
        ) VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (owner_id)
        DO UPDATE SET
            age_min = EXCLUDED.age_min,
            age_max = EXCLUDED.age_max,
            max_distance_km = EXCLUDED.max_distance_km,
            gender_filter = EXCLUDED.gender_filter,
            updated_at = CURRENT_TIMESTAMP
        RETURNING updated_at
    `

	return s.db.QueryRowxContext(
		ctx, query,
		prefs.OwnerID, prefs.AgeMin, prefs.AgeMax,
		prefs.MaxDistanceKm, prefs.GenderFilter,
	).Scan(&prefs.UpdatedAt)
}

// Interaction ledger

type postgresInteractionLedger struct {
	db *sqlx.DB
}

func NewPostgresInteractionLedger(db *sqlx.DB) InteractionLedger {
	return &postgresInteractionLedger{db: db}
}

func (l *postgresInteractionLedger) Get(ctx context.Context, actorID, targetID int64) (*InteractionRecord, error) {
	var record InteractionRecord
	query := `SELECT * FROM interactions WHERE actor_id = $1 AND target_id = $2`

	err := l.db.GetContext(ctx, &record, query, actorID, targetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (l *postgresInteractionLedger) Upsert(ctx context.Context, record *InteractionRecord) error {
	// One row per (actor, target); a later swipe supersedes in place
	query := `
        INSERT INTO interactions (actor_id, target_id, kind, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (actor_id, target_id)
        DO UPDATE SET kind = EXCLUDED.kind, created_at = EXCLUDED.created_at
    `

	_, err := l.db.ExecContext(ctx, query, record.ActorID, record.TargetID, record.Kind, record.CreatedAt)
	return err
}

func (l *postgresInteractionLedger) TargetsOf(ctx context.Context, actorID int64) (map[int64]struct{}, error) {
	var ids []int64
	query := `SELECT target_id FROM interactions WHERE actor_id = $1`

	if err := l.db.SelectContext(ctx, &ids, query, actorID); err != nil {
		return nil, err
	}

	targets := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		targets[id] = struct{}{}
	}

	return targets, nil
}

// Match store

type postgresMatchStore struct {
	db *sqlx.DB
}

func NewPostgresMatchStore(db *sqlx.DB) MatchStore {
	return &postgresMatchStore{db: db}
}

type matchRow struct {
	ID                string         `db:"id"`
	UserAID           int64          `db:"user_a_id"`
	UserBID           int64          `db:"user_b_id"`
	CreatedAt         sql.NullTime   `db:"created_at"`
	LastMessageText   sql.NullString `db:"last_message_text"`
	LastMessageSender sql.NullInt64  `db:"last_message_sender_id"`
	LastMessageAt     sql.NullTime   `db:"last_message_at"`
}

func (r *matchRow) toMatch() *Match {
	match := &Match{
		ID:        r.ID,
		UserAID:   r.UserAID,
		UserBID:   r.UserBID,
		CreatedAt: r.CreatedAt.Time,
	}

	if r.LastMessageText.Valid {
		match.LastMessage = &MessageSummary{
			Text:     r.LastMessageText.String,
			SenderID: r.LastMessageSender.Int64,
			SentAt:   r.LastMessageAt.Time,
		}
	}

	return match
}

func (s *postgresMatchStore) Create(ctx context.Context, match *Match) error {
	// The unique (user_a_id, user_b_id) constraint is the backstop for
	// concurrent opposite swipes landing on different instances
	query := `
        INSERT INTO matches (id, user_a_id, user_b_id, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_a_id, user_b_id) DO NOTHING
    `

	result, err := s.db.ExecContext(ctx, query, match.ID, match.UserAID, match.UserBID, match.CreatedAt)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMatchExists
	}

	return nil
}

func (s *postgresMatchStore) GetByID(ctx context.Context, id string) (*Match, error) {
	var row matchRow
	query := `SELECT * FROM matches WHERE id = $1`

	err := s.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}

	return row.toMatch(), nil
}

func (s *postgresMatchStore) FindByPair(ctx context.Context, a, b int64) (*Match, error) {
	lo, hi := normalizePair(a, b)

	var row matchRow
	query := `SELECT * FROM matches WHERE user_a_id = $1 AND user_b_id = $2`

	err := s.db.GetContext(ctx, &row, query, lo, hi)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return row.toMatch(), nil
}

func (s *postgresMatchStore) ListByUser(ctx context.Context, userID int64) ([]*Match, error) {
	var rows []matchRow
	query := `
        SELECT * FROM matches
        WHERE user_a_id = $1 OR user_b_id = $1
        ORDER BY created_at DESC
    `

	if err := s.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	matches := make([]*Match, 0, len(rows))
	for i := range rows {
		matches = append(matches, rows[i].toMatch())
	}

	return matches, nil
}

func (s *postgresMatchStore) SetLastMessage(ctx context.Context, matchID string, summary *MessageSummary) error {
	query := `
        UPDATE matches
        SET last_message_text = $2, last_message_sender_id = $3, last_message_at = $4
        WHERE id = $1
    `

	result, err := s.db.ExecContext(ctx, query, matchID, summary.Text, summary.SenderID, summary.SentAt)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMatchNotFound
	}

	return nil
}
