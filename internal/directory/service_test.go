package directory

import (
	"context"
	"errors"
	"testing"
)

func newTestService() Service {
	return NewService(NewMemoryRepository())
}

func validCreateRequest() *CreateProfileRequest {
	return &CreateProfileRequest{
		DisplayName: "Emma",
		Age:         28,
		Gender:      "female",
		Bio:         "Coffee enthusiast",
		Location:    "Brooklyn, NY",
		DistanceKm:  5,
		Interests:   []string{"hiking", "coffee"},
		Photos:      []string{"https://cdn.amora.dev/test/emma.jpg"},
	}
}

func TestCreateProfile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	profile, err := svc.CreateProfile(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if profile.ID == 0 {
		t.Error("profile id was not assigned")
	}

	fetched, err := svc.GetProfile(ctx, profile.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if fetched.DisplayName != "Emma" {
		t.Errorf("DisplayName = %q, want Emma", fetched.DisplayName)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateProfileRequest)
	}{
		{"underage", func(r *CreateProfileRequest) { r.Age = 17 }},
		{"over max age", func(r *CreateProfileRequest) { r.Age = 101 }},
		{"unknown gender", func(r *CreateProfileRequest) { r.Gender = "robot" }},
		{"blank name", func(r *CreateProfileRequest) { r.DisplayName = "   " }},
		{"bad photo url", func(r *CreateProfileRequest) { r.Photos = []string{"not-a-url"} }},
	}

	for _, tc := range cases {
		req := validCreateRequest()
		tc.mutate(req)

		if _, err := svc.CreateProfile(ctx, req); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("%s: err = %v, want ErrInvalidProfile", tc.name, err)
		}
	}
}

func TestCreateProfileNormalizesInterests(t *testing.T) {
	svc := newTestService()

	req := validCreateRequest()
	req.Interests = []string{" hiking ", "coffee", "hiking", "  ", "jazz"}

	profile, err := svc.CreateProfile(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	want := []string{"hiking", "coffee", "jazz"}
	if len(profile.Interests) != len(want) {
		t.Fatalf("interests = %v, want %v", profile.Interests, want)
	}
	for i := range want {
		if profile.Interests[i] != want[i] {
			t.Errorf("interests[%d] = %q, want %q", i, profile.Interests[i], want[i])
		}
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newTestService()

	if _, err := svc.GetProfile(context.Background(), 999); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	profile, err := svc.CreateProfile(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	bio := "New bio"
	updated, err := svc.UpdateProfile(ctx, profile.ID, &UpdateProfileRequest{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if updated.Bio != "New bio" {
		t.Errorf("Bio = %q, want %q", updated.Bio, "New bio")
	}
	if updated.DisplayName != profile.DisplayName || updated.Age != profile.Age {
		t.Error("fields not named in the request were modified")
	}
}

func TestUpdateProfileRejectsBlankName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	profile, err := svc.CreateProfile(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	blank := "   "
	if _, err := svc.UpdateProfile(ctx, profile.ID, &UpdateProfileRequest{DisplayName: &blank}); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("err = %v, want ErrInvalidProfile", err)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := newTestService()

	bio := "hello"
	if _, err := svc.UpdateProfile(context.Background(), 999, &UpdateProfileRequest{Bio: &bio}); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}
