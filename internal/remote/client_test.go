package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", 5*time.Second)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.Event{})
	}))

	if _, err := c.Schedules().List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestClientMapsNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Событие не найдено"})
	}))

	_, err := c.Schedules().Get(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("error does not carry APIError")
	}
	if apiErr.Detail != "Событие не найдено" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
}

func TestClientMapsUnauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		err := c.Schedules().Delete(context.Background(), 1)
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("status %d: err = %v, want ErrUnauthorized", status, err)
		}
	}
}

func TestSharesCreatePayload(t *testing.T) {
	var got createGrantRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/shared-schedules/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(model.ShareGrant{ID: 7, ScheduleID: got.ScheduleID, SharedWithID: got.SharedWithID, PermissionLevel: got.PermissionLevel})
	}))

	grant, err := c.Shares().Create(context.Background(), 10, 2, model.PermissionView)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ScheduleID != 10 || got.SharedWithID != 2 || got.PermissionLevel != "view" {
		t.Errorf("request payload = %+v", got)
	}
	if grant.ID != 7 {
		t.Errorf("grant id = %d, want 7", grant.ID)
	}
}

func TestFriendsAcceptedQuery(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("status"); got != model.FriendAccepted {
			t.Errorf("status query = %q, want accepted", got)
		}
		json.NewEncoder(w).Encode([]model.Friend{{ID: 1, UserID: 1, FriendID: 2, Status: model.FriendAccepted}})
	}))

	friends, err := c.Friends().Accepted(context.Background())
	if err != nil {
		t.Fatalf("Accepted: %v", err)
	}
	if len(friends) != 1 {
		t.Fatalf("got %d friends, want 1", len(friends))
	}
}
