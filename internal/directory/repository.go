// internal/directory/repository.go

package directory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, profile *UserProfile) error
	GetByID(ctx context.Context, id int64) (*UserProfile, error)
	GetAll(ctx context.Context) ([]*UserProfile, error)
	Update(ctx context.Context, profile *UserProfile) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, profile *UserProfile) error {
	query := `
        INSERT INTO user_profiles (
            display_name, age, gender, bio, location, distance_km,
            interests, verified, photos
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		profile.DisplayName, profile.Age, profile.Gender, profile.Bio,
		profile.Location, profile.DistanceKm,
		pq.Array(profile.Interests), profile.Verified, pq.Array(profile.Photos),
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)

	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*UserProfile, error) {
	var profile UserProfile
	query := `SELECT * FROM user_profiles WHERE id = $1`

	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]*UserProfile, error) {
	var profiles []*UserProfile
	query := `SELECT * FROM user_profiles ORDER BY id`

	if err := r.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *postgresRepository) Update(ctx context.Context, profile *UserProfile) error {
	query := `
        UPDATE user_profiles
        SET display_name = $2, age = $3, gender = $4, bio = $5,
            location = $6, distance_km = $7, interests = $8,
            verified = $9, photos = $10, updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		profile.ID, profile.DisplayName, profile.Age, profile.Gender,
		profile.Bio, profile.Location, profile.DistanceKm,
		pq.Array(profile.Interests), profile.Verified, pq.Array(profile.Photos),
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProfileNotFound
	}

	return err
}
