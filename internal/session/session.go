// Package session drives the per-user aggregation pipeline: it pulls the
// owned and shared event lists from the backend, merges them through the
// view engine and keeps the last good snapshot for the local API to serve.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/BokGosha/schedule-coursework/internal/model"
	"github.com/BokGosha/schedule-coursework/internal/remote"
	"github.com/BokGosha/schedule-coursework/internal/view"
)

// Snapshot is the result of one full aggregation pass. It is immutable
// once published; a changed event or grant set requires a new pass.
type Snapshot struct {
	Events      []model.AggregatedEvent
	Owned       map[int64]model.Event
	Shared      []model.Event
	RefreshedAt time.Time
}

// Session is the single logical actor of the companion: one signed-in user,
// sequential mutations, re-aggregation after every change.
type Session struct {
	schedules *remote.Schedules
	shares    *remote.Shares
	users     *remote.Users

	userID int64

	mu          sync.Mutex
	generation  uint64
	snapshot    Snapshot
	hasSnapshot bool
}

// New creates a session over the given backend client. Init must be called
// before the first refresh.
func New(client *remote.Client) *Session {
	return &Session{
		schedules: client.Schedules(),
		shares:    client.Shares(),
		users:     client.Users(),
	}
}

// Init resolves the authenticated user's identity and pins it for the
// lifetime of the session.
func (s *Session) Init(ctx context.Context) error {
	me, err := s.users.Me(ctx)
	if err != nil {
		return fmt.Errorf("resolving current user: %w", err)
	}
	s.userID = me.ID
	log.Printf("Session bound to user %d (%s)", me.ID, me.Username)
	return nil
}

// UserID returns the session's user id.
func (s *Session) UserID() int64 {
	return s.userID
}

// Current returns the last good snapshot, if one exists.
func (s *Session) Current() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.hasSnapshot
}

// Refresh runs one full aggregation pass. The owned list and the enriched
// shared-with-me list are fetched concurrently; the join is a pure merge,
// so completion order does not matter. A pass superseded by a newer one
// while in flight is discarded in favor of whatever the newer pass
// publishes. A failed pass leaves the previous snapshot untouched.
func (s *Session) Refresh(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var (
		owned, shared       []model.Event
		ownedErr, sharedErr error
		wg                  sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		owned, ownedErr = s.schedules.List(ctx)
	}()
	go func() {
		defer wg.Done()
		shared, sharedErr = s.shares.WithMeData(ctx)
	}()
	wg.Wait()

	if ownedErr != nil {
		return Snapshot{}, fmt.Errorf("fetching own events: %w", ownedErr)
	}
	if sharedErr != nil {
		return Snapshot{}, fmt.Errorf("fetching shared events: %w", sharedErr)
	}

	shared = dropDangling(shared)

	snap := Snapshot{
		Events:      view.Aggregate(s.userID, owned, shared),
		Owned:       view.IndexByID(owned),
		Shared:      shared,
		RefreshedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer pass started while this one was in flight; its view of
		// the world is at least as fresh, so this result is not published.
		// Before the first publish there is nothing stored to prefer, so
		// the caller still gets this pass's own result.
		if !s.hasSnapshot {
			return snap, nil
		}
		return s.snapshot, nil
	}
	s.snapshot = snap
	s.hasSnapshot = true
	return snap, nil
}

// dropDangling removes enriched rows whose event payload is missing, which
// happens when a grant outlives its deleted event. Whether the registry
// cascades grant deletion is not guaranteed either way; a dangling grant
// is silently excluded instead of crashing the pass.
func dropDangling(events []model.Event) []model.Event {
	out := events[:0]
	for _, ev := range events {
		if ev.ID == 0 {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// ResolveAccess resolves the viewer's relationship to one event. A missing
// snapshot forces a refresh first: rendering an owner-versus-viewer verdict
// off partial data is not allowed.
//
// The enriched shared view can lag behind a freshly created grant, so on a
// miss the raw shared-with-me grant listing is consulted before declaring
// the event unknown.
func (s *Session) ResolveAccess(ctx context.Context, eventID int64) (view.Access, error) {
	snap, ok := s.Current()
	if !ok {
		var err error
		snap, err = s.Refresh(ctx)
		if err != nil {
			return view.Access{}, err
		}
	}

	access, err := view.Resolve(ctx, eventID, s.userID, snap.Owned, snap.Shared, s.users)
	if err == nil {
		return access, nil
	}
	if !errors.Is(err, view.ErrNotFound) {
		return view.Access{}, err
	}

	grants, gerr := s.shares.WithMe(ctx)
	if gerr != nil {
		return view.Access{}, fmt.Errorf("listing incoming grants: %w", gerr)
	}
	for _, grant := range grants {
		if grant.ScheduleID != eventID {
			continue
		}
		access := view.Access{OwnerID: grant.OwnerID}
		if owner, uerr := s.users.ByID(ctx, grant.OwnerID); uerr == nil {
			access.OwnerName = owner.Username
		}
		return access, nil
	}
	return view.Access{}, err
}

// CreateEvent stores a new own event and re-aggregates.
func (s *Session) CreateEvent(ctx context.Context, draft model.EventDraft) (model.Event, error) {
	if err := validateDraft(draft); err != nil {
		return model.Event{}, err
	}
	event, err := s.schedules.Create(ctx, draft)
	if err != nil {
		return model.Event{}, err
	}
	s.refreshAfterMutation(ctx, "create")
	return event, nil
}

// UpdateEvent replaces an owned event's fields. Non-owners are refused
// before the request leaves the process; the backend re-checks anyway.
func (s *Session) UpdateEvent(ctx context.Context, id int64, draft model.EventDraft) (model.Event, error) {
	if err := validateDraft(draft); err != nil {
		return model.Event{}, err
	}
	if err := s.requireOwner(ctx, id); err != nil {
		return model.Event{}, err
	}
	event, err := s.schedules.Update(ctx, id, draft)
	if err != nil {
		return model.Event{}, err
	}
	s.refreshAfterMutation(ctx, "update")
	return event, nil
}

// DeleteEvent removes an owned event. After a successful delete the next
// aggregation pass no longer surfaces the event, whether or not its grants
// were cascaded.
func (s *Session) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.requireOwner(ctx, id); err != nil {
		return err
	}
	if err := s.schedules.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshAfterMutation(ctx, "delete")
	return nil
}

func (s *Session) requireOwner(ctx context.Context, eventID int64) error {
	access, err := s.ResolveAccess(ctx, eventID)
	if err != nil {
		return err
	}
	if !access.IsOwner {
		return fmt.Errorf("event %d: %w", eventID, view.ErrUnauthorized)
	}
	return nil
}

func (s *Session) refreshAfterMutation(ctx context.Context, op string) {
	if _, err := s.Refresh(ctx); err != nil {
		// The mutation succeeded; the stale snapshot heals on the next
		// user-driven refresh.
		log.Printf("Refresh after %s failed: %v", op, err)
	}
}

// ErrInvalidDraft rejects a draft before it reaches the backend.
var ErrInvalidDraft = errors.New("invalid event draft")

func validateDraft(draft model.EventDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidDraft)
	}
	if draft.EndTime.Before(draft.StartTime) {
		return fmt.Errorf("%w: end before start", ErrInvalidDraft)
	}
	return nil
}
