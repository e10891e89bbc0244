package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/amora-dating/amora-backend/internal/auth"
)

const wsTestSecret = "ws-test-secret"

func signAccessToken(t *testing.T, userID int64) string {
	t.Helper()

	claims := &auth.Claims{
		UserID: userID,
		Type:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(wsTestSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newWSServer(t *testing.T) (*Hub, string) {
	t.Helper()

	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Shutdown)

	router := mux.NewRouter()
	RegisterRoutes(router, NewHandler(hub), auth.NewMiddleware(auth.NewVerifier(wsTestSecret)))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestServeWSStreamsEventsToAuthenticatedUser(t *testing.T) {
	hub, url := newWSServer(t)

	header := http.Header{"Authorization": {"Bearer " + signAccessToken(t, 7)}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("dialing: %v", err)
	}
	defer conn.Close()

	waitForClient(t, hub, 7)

	hub.Notify(context.Background(), 7, Event{Type: EventMatchCreated, ActorID: 3, MatchID: "m-1"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading event: %v", err)
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("decoding event: %v", err)
	}
	if event.Type != EventMatchCreated || event.ActorID != 3 || event.MatchID != "m-1" {
		t.Errorf("event = %+v, want match.created for m-1 from user 3", event)
	}
}

func TestServeWSRejectsMissingToken(t *testing.T) {
	_, url := newWSServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		conn.Close()
		t.Fatal("dial succeeded without a token")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("handshake response = %+v, want 401", resp)
	}
}

func TestServeWSDisconnectEvictsClient(t *testing.T) {
	hub, url := newWSServer(t)

	header := http.Header{"Authorization": {"Bearer " + signAccessToken(t, 7)}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("dialing: %v", err)
	}

	waitForClient(t, hub, 7)

	conn.Close()
	waitForNoClient(t, hub, 7)

	// Events for the departed user are dropped without error
	hub.Notify(context.Background(), 7, Event{Type: EventLikeReceived, ActorID: 3})
}
