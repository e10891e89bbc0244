// internal/directory/models.go

package directory

import (
	"time"

	"github.com/lib/pq"
)

// Gender values accepted on a profile
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// UserProfile is a member of the discoverable population. A profile is
// fully validated at creation time; readers never patch missing fields.
type UserProfile struct {
	ID          int64          `json:"id" db:"id"`
	DisplayName string         `json:"display_name" db:"display_name"`
	Age         int            `json:"age" db:"age"`
	Gender      string         `json:"gender" db:"gender"`
	Bio         string         `json:"bio" db:"bio"`
	Location    string         `json:"location" db:"location"`

	// DistanceKm is the distance from the viewing user as reported by
	// the client's geo layer, denormalized onto the profile record.
	DistanceKm float64 `json:"distance_km" db:"distance_km"`

	Interests pq.StringArray `json:"interests" db:"interests"`
	Verified  bool           `json:"verified" db:"verified"`
	Photos    pq.StringArray `json:"photos" db:"photos"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsComplete reports whether the profile qualifies for candidate pools.
// Profiles without photos stay resolvable by id but are never dealt.
func (p *UserProfile) IsComplete() bool {
	return len(p.Photos) > 0
}
