package view

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/BokGosha/schedule-coursework/internal/model"
)

type fakeDirectory struct {
	users map[int64]model.User
	calls int
}

func (d *fakeDirectory) ByID(_ context.Context, id int64) (model.User, error) {
	d.calls++
	u, ok := d.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("user %d not found", id)
	}
	return u, nil
}

func TestResolveOwner(t *testing.T) {
	const me = int64(1)
	owned := IndexByID([]model.Event{event(10, me, "")})
	dir := &fakeDirectory{}

	access, err := Resolve(context.Background(), 10, me, owned, nil, dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !access.IsOwner {
		t.Error("expected owner access")
	}
	if access.OwnerID != me {
		t.Errorf("owner id = %d, want %d", access.OwnerID, me)
	}
	if dir.calls != 0 {
		t.Errorf("owner resolution hit the user directory %d times", dir.calls)
	}
}

func TestResolveShared(t *testing.T) {
	const me, alice = int64(2), int64(1)
	shared := []model.Event{event(10, alice, "")}
	dir := &fakeDirectory{users: map[int64]model.User{alice: {ID: alice, Username: "alice"}}}

	access, err := Resolve(context.Background(), 10, me, nil, shared, dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if access.IsOwner {
		t.Error("grantee resolved as owner")
	}
	if access.OwnerID != alice {
		t.Errorf("owner id = %d, want %d", access.OwnerID, alice)
	}
	if access.OwnerName != "alice" {
		t.Errorf("owner name = %q, want alice", access.OwnerName)
	}
}

func TestResolveSharedDirectoryfailureDegrades(t *testing.T) {
	shared := []model.Event{event(10, 1, "")}
	dir := &fakeDirectory{} // every lookup fails

	access, err := Resolve(context.Background(), 10, 2, nil, shared, dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if access.OwnerID != 1 || access.OwnerName != "" {
		t.Errorf("got %+v, want id-only result", access)
	}
}

func TestResolveNotFound(t *testing.T) {
	owned := IndexByID([]model.Event{event(10, 1, "")})
	shared := []model.Event{event(20, 3, "")}

	_, err := Resolve(context.Background(), 99, 1, owned, shared, &fakeDirectory{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestResolveOwnedWinsOverShared(t *testing.T) {
	// The same id in both collections must resolve via the owned index.
	const me = int64(1)
	owned := IndexByID([]model.Event{event(10, me, "")})
	shared := []model.Event{event(10, 2, "")}

	access, err := Resolve(context.Background(), 10, me, owned, shared, &fakeDirectory{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !access.IsOwner {
		t.Error("expected owner access")
	}
}
