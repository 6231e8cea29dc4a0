//go:build unit

package commands

import (
	"context"
	"errors"
	"sync"
	"testing"

	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedStore blocks add until release is closed.
type gatedStore struct {
	entered chan struct{}
	release chan struct{}
	addErr  error
	saved   *int64
}

func newGatedStore() *gatedStore {
	return &gatedStore{entered: make(chan struct{}, 8), release: make(chan struct{})}
}

func (s *gatedStore) find(ctx context.Context, key bookmark.Key) (*int64, error) {
	return s.saved, nil
}

func (s *gatedStore) add(ctx context.Context, key bookmark.Key) (int64, error) {
	s.entered <- struct{}{}
	<-s.release
	if s.addErr != nil {
		return 0, s.addErr
	}
	return 7, nil
}

func (s *gatedStore) remove(ctx context.Context, key bookmark.Key, bookmarkID int64) error {
	return nil
}

func TestCoordinator_RejectsSecondToggleWhileMutating(t *testing.T) {
	ctx := context.Background()
	var settled []Settlement
	var mu sync.Mutex
	c := NewCoordinator(func(s Settlement) {
		mu.Lock()
		settled = append(settled, s)
		mu.Unlock()
	})
	store := newGatedStore()
	key := SessionKey{Session: "tab-1", Key: bookmark.Key{UserID: uuid.New(), PromotionID: 42}}

	done := make(chan *BookmarkStatus)
	go func() {
		st, err := c.Toggle(ctx, key, nil, store)
		assert.NoError(t, err)
		done <- st
	}()
	<-store.entered
	require.True(t, c.InFlight(key))

	_, err := c.Toggle(ctx, key, nil, store)
	assert.ErrorIs(t, err, ErrBookmarkBusy)
	assert.True(t, errs.Is(err, errs.ErrConflict))

	_, err = c.Check(ctx, key, store)
	assert.ErrorIs(t, err, ErrBookmarkBusy)

	close(store.release)
	st := <-done
	assert.Equal(t, bookmark.StateSaved, st.State)
	require.NotNil(t, st.BookmarkID)
	assert.EqualValues(t, 7, *st.BookmarkID)
	assert.False(t, c.InFlight(key))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, settled, 3)
	assert.ErrorIs(t, settled[0].Err, ErrBookmarkBusy)
	assert.Equal(t, bookmark.StateSaved, settled[2].State)
}

func TestCoordinator_SessionsDoNotBlockEachOther(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(nil)
	store := newGatedStore()
	pair := bookmark.Key{UserID: uuid.New(), PromotionID: 42}

	var wg sync.WaitGroup
	for _, session := range []string{"tab-1", "tab-2"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Toggle(ctx, SessionKey{Session: session, Key: pair}, nil, store)
			assert.NoError(t, err)
		}()
	}
	<-store.entered
	<-store.entered
	close(store.release)
	wg.Wait()
}

func TestCoordinator_FailedToggleRevertsAndReleases(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(nil)
	store := newGatedStore()
	store.addErr = errs.Transient(errors.New("timeout"))
	close(store.release)
	key := SessionKey{Session: "tab-1", Key: bookmark.Key{UserID: uuid.New(), PromotionID: 42}}

	_, err := c.Toggle(ctx, key, nil, store)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrTransient))
	assert.False(t, c.InFlight(key))

	store.addErr = nil
	st, err := c.Toggle(ctx, key, nil, store)
	require.NoError(t, err)
	assert.Equal(t, bookmark.StateSaved, st.State)
}

func TestCoordinator_CheckReportsStoredState(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(nil)
	store := newGatedStore()
	key := SessionKey{Session: "tab-1", Key: bookmark.Key{UserID: uuid.New(), PromotionID: 42}}

	st, err := c.Check(ctx, key, store)
	require.NoError(t, err)
	assert.Equal(t, bookmark.StateUnsaved, st.State)
	assert.Nil(t, st.BookmarkID)

	id := int64(9)
	store.saved = &id
	st, err = c.Check(ctx, key, store)
	require.NoError(t, err)
	assert.Equal(t, bookmark.StateSaved, st.State)
	assert.Equal(t, &id, st.BookmarkID)
}
