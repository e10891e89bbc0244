// internal/discovery/dto.go
package discovery

import "github.com/amora-dating/amora-backend/internal/directory"

// DTOs for API requests/responses

type SwipeRequest struct {
	TargetUserID int64 `json:"target_user_id" validate:"required,gt=0"`
}

type UpdatePreferencesRequest struct {
	AgeMin        *int     `json:"age_min" validate:"omitempty,gte=18,lte=100"`
	AgeMax        *int     `json:"age_max" validate:"omitempty,gte=18,lte=100"`
	MaxDistanceKm *float64 `json:"max_distance_km" validate:"omitempty,gte=0,lte=500"`
	GenderFilter  *string  `json:"gender_filter" validate:"omitempty,oneof=male female other all"`
}

// SwipeResult is the outcome of a processed swipe
type SwipeResult struct {
	Recorded bool   `json:"recorded"`
	Match    *Match `json:"match,omitempty"`
}

// MatchWithProfile pairs a match with the other participant's profile
// for list and detail views
type MatchWithProfile struct {
	Match     *Match                 `json:"match"`
	OtherUser *directory.UserProfile `json:"other_user"`
}

type LikeResponse struct {
	Liked bool   `json:"liked"`
	Match *Match `json:"match"`
}

type DislikeResponse struct {
	Disliked bool `json:"disliked"`
}

type SuperLikeResponse struct {
	SuperLiked bool   `json:"super_liked"`
	Match      *Match `json:"match"`
}
