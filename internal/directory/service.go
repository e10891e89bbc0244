// internal/directory/service.go

package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amora-dating/amora-backend/internal/common/utils"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

type Service interface {
	CreateProfile(ctx context.Context, req *CreateProfileRequest) (*UserProfile, error)
	GetProfile(ctx context.Context, id int64) (*UserProfile, error)
	GetAllProfiles(ctx context.Context) ([]*UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*UserProfile, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*UserProfile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	profile := &UserProfile{
		DisplayName: strings.TrimSpace(req.DisplayName),
		Age:         req.Age,
		Gender:      req.Gender,
		Bio:         strings.TrimSpace(req.Bio),
		Location:    strings.TrimSpace(req.Location),
		DistanceKm:  req.DistanceKm,
		Interests:   normalizeInterests(req.Interests),
		Photos:      req.Photos,
	}

	if profile.DisplayName == "" {
		return nil, fmt.Errorf("%w: display_name must not be blank", ErrInvalidProfile)
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *service) GetProfile(ctx context.Context, id int64) (*UserProfile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAllProfiles(ctx context.Context) ([]*UserProfile, error) {
	return s.repo.GetAll(ctx)
}

// UpdateProfile applies a partial update to the caller's own profile.
// Ownership is enforced here: userID is always the authenticated user.
func (s *service) UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*UserProfile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return nil, fmt.Errorf("%w: display_name must not be blank", ErrInvalidProfile)
		}
		profile.DisplayName = name
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.Bio != nil {
		profile.Bio = strings.TrimSpace(*req.Bio)
	}
	if req.Location != nil {
		profile.Location = strings.TrimSpace(*req.Location)
	}
	if req.DistanceKm != nil {
		profile.DistanceKm = *req.DistanceKm
	}
	if req.Interests != nil {
		profile.Interests = normalizeInterests(req.Interests)
	}
	if req.Photos != nil {
		profile.Photos = req.Photos
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// normalizeInterests trims and de-duplicates, keeping first occurrence.
// Interest order carries no meaning but a stable canonical form keeps
// storage and comparisons predictable.
func normalizeInterests(interests []string) []string {
	seen := make(map[string]bool, len(interests))
	normalized := make([]string, 0, len(interests))

	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" || seen[interest] {
			continue
		}
		seen[interest] = true
		normalized = append(normalized, interest)
	}

	return normalized
}
