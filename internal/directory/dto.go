// internal/directory/dto.go
package directory

// DTOs for API requests/responses

type CreateProfileRequest struct {
	DisplayName string   `json:"display_name" validate:"required,min=1,max=100"`
	Age         int      `json:"age" validate:"required,gte=18,lte=100"`
	Gender      string   `json:"gender" validate:"required,oneof=male female other"`
	Bio         string   `json:"bio" validate:"omitempty,max=500"`
	Location    string   `json:"location" validate:"omitempty,max=100"`
	DistanceKm  float64  `json:"distance_km" validate:"omitempty,gte=0"`
	Interests   []string `json:"interests" validate:"omitempty,max=10,dive,min=1,max=50"`
	Photos      []string `json:"photos" validate:"omitempty,max=9,dive,url"`
}

type UpdateProfileRequest struct {
	DisplayName *string  `json:"display_name" validate:"omitempty,min=1,max=100"`
	Age         *int     `json:"age" validate:"omitempty,gte=18,lte=100"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Bio         *string  `json:"bio" validate:"omitempty,max=500"`
	Location    *string  `json:"location" validate:"omitempty,max=100"`
	DistanceKm  *float64 `json:"distance_km" validate:"omitempty,gte=0"`
	Interests   []string `json:"interests" validate:"omitempty,max=10,dive,min=1,max=50"`
	Photos      []string `json:"photos" validate:"omitempty,max=9,dive,url"`
}
