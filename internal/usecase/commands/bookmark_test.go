//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/infra/memstore"
	"flightdeals/internal/pkg/clock"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/pkg/metrics"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/shared"
	"flightdeals/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	return config.Config{Store: config.StoreConfig{Timeout: time.Second, FanOut: 4}}
}

type bookmarkFixture struct {
	store       *memstore.Store
	uc          commands.BookmarkCommands
	viewer      access.Viewer
	promotionID int64
}

func newBookmarkFixture(t *testing.T) bookmarkFixture {
	t.Helper()
	ctx := context.Background()
	s := memstore.New()

	user := builder.NewProfileBuilder().BuildDomain()
	_, err := s.Repositories().Profiles().Create(ctx, user)
	require.NoError(t, err)
	promoID, err := s.Repositories().Promotions().Create(ctx, builder.NewPromotionBuilder().MustBuildDomain())
	require.NoError(t, err)

	return bookmarkFixture{
		store:       s,
		uc:          commands.NewBookmarkUseCase(s, clock.NewMockClock(testNow), testConfig(), metrics.New()),
		viewer:      access.ViewerOf(user.ID(), user, testNow),
		promotionID: promoID,
	}
}

func (f bookmarkFixture) rows(t *testing.T) int64 {
	t.Helper()
	n, err := f.store.Repositories().Bookmarks().CountByUser(context.Background(), f.viewer.UserID)
	require.NoError(t, err)
	return n
}

func TestBookmarkCommands_ToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newBookmarkFixture(t)

	st, err := f.uc.Check(ctx, f.viewer, "tab-1", f.promotionID)
	require.NoError(t, err)
	assert.Equal(t, bookmark.StateUnsaved, st.State)

	st, err = f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID, nil)
	require.NoError(t, err)
	assert.Equal(t, bookmark.StateSaved, st.State)
	require.NotNil(t, st.BookmarkID)
	savedID := *st.BookmarkID

	st, err = f.uc.Check(ctx, f.viewer, "tab-2", f.promotionID)
	require.NoError(t, err)
	assert.Equal(t, bookmark.StateSaved, st.State)
	assert.Equal(t, savedID, *st.BookmarkID)

	st, err = f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID, &savedID)
	require.NoError(t, err)
	assert.Equal(t, bookmark.StateUnsaved, st.State)
	assert.Nil(t, st.BookmarkID)
	assert.Zero(t, f.rows(t))
}

func TestBookmarkCommands_StaleAddReconcilesToExistingRow(t *testing.T) {
	ctx := context.Background()
	f := newBookmarkFixture(t)

	first, err := f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID, nil)
	require.NoError(t, err)

	// tab-2 still shows UNSAVED and adds again
	second, err := f.uc.Toggle(ctx, f.viewer, "tab-2", f.promotionID, nil)
	require.NoError(t, err)

	assert.Equal(t, bookmark.StateSaved, second.State)
	assert.Equal(t, *first.BookmarkID, *second.BookmarkID)
	assert.EqualValues(t, 1, f.rows(t))
}

func TestBookmarkCommands_StaleRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newBookmarkFixture(t)

	saved, err := f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID, nil)
	require.NoError(t, err)
	id := *saved.BookmarkID

	_, err = f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID, &id)
	require.NoError(t, err)
	st, err := f.uc.Toggle(ctx, f.viewer, "tab-2", f.promotionID, &id)
	require.NoError(t, err)
	assert.Equal(t, bookmark.StateUnsaved, st.State)
}

func TestBookmarkCommands_RemoveWithAnotherPromotionsID(t *testing.T) {
	ctx := context.Background()
	f := newBookmarkFixture(t)
	otherID, err := f.store.Repositories().Promotions().Create(ctx, builder.NewPromotionBuilder().MustBuildDomain())
	require.NoError(t, err)

	savedA, err := f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID, nil)
	require.NoError(t, err)
	savedB, err := f.uc.Toggle(ctx, f.viewer, "tab-1", otherID, nil)
	require.NoError(t, err)

	t.Run("id of a bookmark on another promotion is rejected", func(t *testing.T) {
		_, err := f.uc.Toggle(ctx, f.viewer, "tab-1", otherID, savedA.BookmarkID)
		assert.ErrorIs(t, err, commands.ErrBookmarkMismatch)
		assert.True(t, errs.Is(err, errs.ErrConflict))

		for promotionID, want := range map[int64]int64{f.promotionID: *savedA.BookmarkID, otherID: *savedB.BookmarkID} {
			st, err := f.uc.Check(ctx, f.viewer, "tab-2", promotionID)
			require.NoError(t, err)
			assert.Equal(t, bookmark.StateSaved, st.State)
			assert.Equal(t, want, *st.BookmarkID)
		}
	})

	t.Run("id of a promotion with no bookmark removes nothing", func(t *testing.T) {
		thirdID, err := f.store.Repositories().Promotions().Create(ctx, builder.NewPromotionBuilder().MustBuildDomain())
		require.NoError(t, err)

		st, err := f.uc.Toggle(ctx, f.viewer, "tab-1", thirdID, savedA.BookmarkID)
		require.NoError(t, err)
		assert.Equal(t, bookmark.StateUnsaved, st.State)
		assert.EqualValues(t, 2, f.rows(t))
	})
}

func TestBookmarkCommands_StaleRemoveKeepsNewerBookmark(t *testing.T) {
	ctx := context.Background()
	f := newBookmarkFixture(t)

	first, err := f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID, nil)
	require.NoError(t, err)
	staleID := *first.BookmarkID
	_, err = f.uc.Toggle(ctx, f.viewer, "tab-2", f.promotionID, &staleID)
	require.NoError(t, err)
	again, err := f.uc.Toggle(ctx, f.viewer, "tab-2", f.promotionID, nil)
	require.NoError(t, err)
	require.NotEqual(t, staleID, *again.BookmarkID)

	// tab-1 still holds the first id
	_, err = f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID, &staleID)
	assert.ErrorIs(t, err, commands.ErrBookmarkMismatch)
	assert.EqualValues(t, 1, f.rows(t))
}

func TestBookmarkCommands_ConcurrentAddsLeaveOneRow(t *testing.T) {
	ctx := context.Background()
	f := newBookmarkFixture(t)

	const sessions = 12
	ids := make([]int64, sessions)
	var wg sync.WaitGroup
	for i := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st, err := f.uc.Toggle(ctx, f.viewer, fmt.Sprintf("tab-%d", i), f.promotionID, nil)
			if assert.NoError(t, err) {
				ids[i] = *st.BookmarkID
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, f.rows(t))
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestBookmarkCommands_RemoveDoesNotTouchOtherUsers(t *testing.T) {
	ctx := context.Background()
	f := newBookmarkFixture(t)

	saved, err := f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID, nil)
	require.NoError(t, err)

	intruder := builder.NewProfileBuilder().BuildDomain()
	_, err = f.store.Repositories().Profiles().Create(ctx, intruder)
	require.NoError(t, err)
	other := access.ViewerOf(intruder.ID(), intruder, testNow)

	_, err = f.uc.Toggle(ctx, other, "tab-9", f.promotionID, saved.BookmarkID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, f.rows(t))
}

func TestBookmarkCommands_Errors(t *testing.T) {
	ctx := context.Background()
	f := newBookmarkFixture(t)

	_, err := f.uc.Toggle(ctx, access.Anonymous(), "tab-1", f.promotionID, nil)
	assert.ErrorIs(t, err, shared.ErrLoginRequired)

	_, err = f.uc.Toggle(ctx, f.viewer, "tab-1", f.promotionID+100, nil)
	assert.True(t, errs.Is(err, errs.ErrNotFound), "got %v", err)

	cancelled, cancel := context.WithTimeout(ctx, time.Nanosecond)
	defer cancel()
	<-cancelled.Done()
	_, err = f.uc.Check(cancelled, f.viewer, "tab-1", f.promotionID)
	assert.True(t, errs.Is(err, errs.ErrTransient), "got %v", err)
}
