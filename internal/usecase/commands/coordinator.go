package commands

import (
	"context"
	"sync"

	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/pkg/errs"
)

var ErrBookmarkBusy = errs.Conflict(bookmark.ErrBusy)

// ErrBookmarkMismatch rejects a remove whose bookmark id is not the one saved
// for the promotion. Nothing is deleted; the client should check again.
var ErrBookmarkMismatch = errs.Conflict(errs.New("bookmark id does not match the saved bookmark for this promotion"))

// SessionKey identifies one promotion card: a (user, promotion) pair as seen
// from one client session.
type SessionKey struct {
	Session string
	bookmark.Key
}

type bookmarkStore interface {
	find(ctx context.Context, key bookmark.Key) (*int64, error)
	add(ctx context.Context, key bookmark.Key) (int64, error)
	remove(ctx context.Context, key bookmark.Key, bookmarkID int64) error
}

type Settlement struct {
	Key    SessionKey
	Action string
	State  bookmark.State
	Err    error
}

// Coordinator holds a state machine for every card with a check or toggle in
// flight. Requests for a busy card are rejected; a machine is dropped as soon
// as it settles, so storage stays the source of truth between requests.
type Coordinator struct {
	mu        sync.Mutex
	inflight  map[SessionKey]*bookmark.Machine
	onSettled func(Settlement)
}

func NewCoordinator(onSettled func(Settlement)) *Coordinator {
	if onSettled == nil {
		onSettled = func(Settlement) {}
	}
	return &Coordinator{
		inflight:  make(map[SessionKey]*bookmark.Machine),
		onSettled: onSettled,
	}
}

func (c *Coordinator) claim(key SessionKey, m *bookmark.Machine) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[key]; busy {
		return ErrBookmarkBusy
	}
	c.inflight[key] = m
	return nil
}

func (c *Coordinator) release(key SessionKey) {
	c.mu.Lock()
	delete(c.inflight, key)
	c.mu.Unlock()
}

// InFlight reports whether key currently has an unsettled operation.
func (c *Coordinator) InFlight(key SessionKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inflight[key]
	return ok
}

func (c *Coordinator) Check(ctx context.Context, key SessionKey, store bookmarkStore) (*BookmarkStatus, error) {
	m := bookmark.NewMachine()
	if err := m.BeginCheck(); err != nil {
		return nil, err
	}
	if err := c.claim(key, m); err != nil {
		c.onSettled(Settlement{Key: key, Action: "check", State: bookmark.StateChecking, Err: err})
		return nil, err
	}
	defer c.release(key)

	id, err := store.find(ctx, key.Key)
	if err != nil {
		m.FailCheck()
		c.onSettled(Settlement{Key: key, Action: "check", State: m.State(), Err: err})
		return nil, err
	}
	m.CompleteCheck(id)
	c.onSettled(Settlement{Key: key, Action: "check", State: m.State()})
	return statusOf(key.PromotionID, m), nil
}

// Toggle flips a card whose steady state the client already knows: a known
// bookmark id means SAVED and resolves to a remove, none means UNSAVED and
// resolves to an add.
func (c *Coordinator) Toggle(ctx context.Context, key SessionKey, known *int64, store bookmarkStore) (*BookmarkStatus, error) {
	m := bookmark.Restore(known)
	intent, err := m.BeginToggle()
	if err != nil {
		return nil, err
	}
	if err := c.claim(key, m); err != nil {
		c.onSettled(Settlement{Key: key, Action: intent.Kind.String(), State: bookmark.StateMutating, Err: err})
		return nil, err
	}
	defer c.release(key)

	var newID int64
	switch intent.Kind {
	case bookmark.IntentAdd:
		newID, err = store.add(ctx, key.Key)
	case bookmark.IntentRemove:
		err = store.remove(ctx, key.Key, intent.BookmarkID)
	}
	if err != nil {
		m.FailToggle()
		c.onSettled(Settlement{Key: key, Action: intent.Kind.String(), State: m.State(), Err: err})
		return nil, err
	}
	m.CompleteToggle(newID)
	c.onSettled(Settlement{Key: key, Action: intent.Kind.String(), State: m.State()})
	return statusOf(key.PromotionID, m), nil
}

func statusOf(promotionID int64, m *bookmark.Machine) *BookmarkStatus {
	st := &BookmarkStatus{PromotionID: promotionID, State: m.State()}
	if id, ok := m.BookmarkID(); ok {
		st.BookmarkID = &id
	}
	return st
}
