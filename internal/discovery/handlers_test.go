package discovery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/amora-dating/amora-backend/internal/auth"
)

func authedRequest(method, target, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	return req.WithContext(auth.ContextWithUserID(context.Background(), userID))
}

func TestGetPotentialMatchesEndpoint(t *testing.T) {
	f := newFixture()
	handler := NewHandler(f.svc)

	f.addProfile(t, 1, "viewer", 30, "female", 0)
	f.addProfile(t, 2, "near", 28, "male", 3)
	f.addProfile(t, 3, "far", 29, "male", 10)

	rec := httptest.NewRecorder()
	handler.GetPotentialMatches(rec, authedRequest(http.MethodGet, "/api/v1/discovery/potential-matches", "", 1))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var candidates []struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &candidates); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(candidates) != 2 || candidates[0].ID != 2 || candidates[1].ID != 3 {
		t.Errorf("candidates = %+v, want ids [2 3] nearest first", candidates)
	}
}

func TestGetPotentialMatchesRejectsBadLimit(t *testing.T) {
	f := newFixture()
	handler := NewHandler(f.svc)

	f.addProfile(t, 1, "viewer", 30, "female", 0)

	for _, limit := range []string{"abc", "0", "101", "-5"} {
		rec := httptest.NewRecorder()
		handler.GetPotentialMatches(rec, authedRequest(http.MethodGet, "/api/v1/discovery/potential-matches?limit="+limit, "", 1))

		// "0" parses but is the query-level zero, which falls back to
		// the default rather than failing
		if limit == "0" {
			if rec.Code != http.StatusOK {
				t.Errorf("limit=0: status = %d, want 200", rec.Code)
			}
			continue
		}

		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, want 400", limit, rec.Code)
		}
	}
}

func TestGetPotentialMatchesRequiresAuth(t *testing.T) {
	f := newFixture()
	handler := NewHandler(f.svc)

	rec := httptest.NewRecorder()
	handler.GetPotentialMatches(rec, httptest.NewRequest(http.MethodGet, "/api/v1/discovery/potential-matches", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestLikeEndpointReportsMatch(t *testing.T) {
	f := newFixture()
	handler := NewHandler(f.svc)

	f.addProfile(t, 1, "a", 30, "female", 0)
	f.addProfile(t, 2, "b", 28, "male", 5)

	rec := httptest.NewRecorder()
	handler.Like(rec, authedRequest(http.MethodPost, "/api/v1/discovery/like", `{"target_user_id": 2}`, 1))
	if rec.Code != http.StatusOK {
		t.Fatalf("first like: status = %d; body: %s", rec.Code, rec.Body.String())
	}

	var first LikeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if !first.Liked || first.Match != nil {
		t.Errorf("first like response = %+v, want liked with no match", first)
	}

	rec = httptest.NewRecorder()
	handler.Like(rec, authedRequest(http.MethodPost, "/api/v1/discovery/like", `{"target_user_id": 1}`, 2))
	if rec.Code != http.StatusOK {
		t.Fatalf("reciprocal like: status = %d; body: %s", rec.Code, rec.Body.String())
	}

	var second LikeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if second.Match == nil {
		t.Error("reciprocal like response carries no match")
	}
}

func TestSwipeEndpointValidation(t *testing.T) {
	f := newFixture()
	handler := NewHandler(f.svc)

	f.addProfile(t, 1, "a", 30, "female", 0)

	cases := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed json", body: `{`, want: http.StatusBadRequest},
		{name: "missing target", body: `{}`, want: http.StatusBadRequest},
		{name: "self swipe", body: `{"target_user_id": 1}`, want: http.StatusBadRequest},
		{name: "unknown target", body: `{"target_user_id": 999}`, want: http.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		handler.Like(rec, authedRequest(http.MethodPost, "/api/v1/discovery/like", tc.body, 1))
		if rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestGetMatchEndpointStatusCodes(t *testing.T) {
	f := newFixture()
	handler := NewHandler(f.svc)

	f.addProfile(t, 1, "a", 30, "female", 0)
	f.addProfile(t, 2, "b", 28, "male", 5)
	f.addProfile(t, 3, "stranger", 27, "male", 9)

	ctx := context.Background()
	if _, err := f.svc.RecordSwipe(ctx, 1, 2, KindLike); err != nil {
		t.Fatalf("like: %v", err)
	}
	result, err := f.svc.RecordSwipe(ctx, 2, 1, KindLike)
	if err != nil {
		t.Fatalf("reciprocal like: %v", err)
	}

	get := func(userID int64, matchID string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := authedRequest(http.MethodGet, "/api/v1/discovery/matches/"+matchID, "", userID)
		req = mux.SetURLVars(req, map[string]string{"id": matchID})
		handler.GetMatch(rec, req)
		return rec
	}

	if rec := get(1, result.Match.ID); rec.Code != http.StatusOK {
		t.Errorf("participant: status = %d, want 200", rec.Code)
	}
	if rec := get(3, result.Match.ID); rec.Code != http.StatusForbidden {
		t.Errorf("non-participant: status = %d, want 403", rec.Code)
	}
	if rec := get(1, "missing"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", rec.Code)
	}
}

func TestPreferencesEndpoints(t *testing.T) {
	f := newFixture()
	handler := NewHandler(f.svc)

	f.addProfile(t, 1, "user", 30, "female", 0)

	rec := httptest.NewRecorder()
	handler.GetPreferences(rec, authedRequest(http.MethodGet, "/api/v1/discovery/preferences", "", 1))
	if rec.Code != http.StatusOK {
		t.Fatalf("get defaults: status = %d", rec.Code)
	}

	var prefs Preferences
	if err := json.Unmarshal(rec.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if prefs.AgeMin != 18 || prefs.AgeMax != 100 {
		t.Errorf("default range = %d-%d, want 18-100", prefs.AgeMin, prefs.AgeMax)
	}

	rec = httptest.NewRecorder()
	handler.UpdatePreferences(rec, authedRequest(http.MethodPut, "/api/v1/discovery/preferences", `{"age_min": 25, "gender_filter": "male"}`, 1))
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status = %d; body: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.UpdatePreferences(rec, authedRequest(http.MethodPut, "/api/v1/discovery/preferences", `{"age_min": 50, "age_max": 20}`, 1))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("inverted range: status = %d, want 400", rec.Code)
	}
}
