//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/infra"
	"flightdeals/internal/infra/memstore"
	"flightdeals/internal/pkg/clock"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/pkg/metrics"
	"flightdeals/internal/pkg/ptr"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/shared"
	"flightdeals/tests/common/builder"
	sharedmock "flightdeals/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type adminFixture struct {
	store *memstore.Store
	uc    commands.AdminCommands
	inv   *recordingInvalidator
	admin access.Viewer
	user  access.Viewer
}

func newAdminFixture(t *testing.T) adminFixture {
	t.Helper()
	ctx := context.Background()
	s := memstore.New()

	admin := builder.NewProfileBuilder().Admin().BuildDomain()
	member := builder.NewProfileBuilder().BuildDomain()
	_, err := s.Repositories().Profiles().Create(ctx, admin)
	require.NoError(t, err)
	_, err = s.Repositories().Profiles().Create(ctx, member)
	require.NoError(t, err)

	inv := &recordingInvalidator{}
	return adminFixture{
		store: s,
		uc:    commands.NewAdminUseCase(s, clock.NewMockClock(testNow), testConfig(), metrics.New(), inv),
		inv:   inv,
		admin: access.ViewerOf(admin.ID(), admin, testNow),
		user:  access.ViewerOf(member.ID(), member, testNow),
	}
}

func TestAdminCommands_DeletePromotionRemovesBookmarksFirst(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	created, err := f.uc.CreatePromotion(ctx, f.admin, builder.NewPromotionBuilder().Premium().Params())
	require.NoError(t, err)
	_, err = f.store.Repositories().Bookmarks().Insert(ctx, f.user.UserID, created.ID(), testNow)
	require.NoError(t, err)

	result, err := f.uc.DeletePromotion(ctx, f.admin, created.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.RemovedBookmarks)

	_, err = f.store.Repositories().Promotions().FindByID(ctx, created.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	_, err = f.store.Repositories().Bookmarks().FindByPair(ctx, f.user.UserID, created.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	_, err = f.uc.DeletePromotion(ctx, f.admin, created.ID())
	assert.ErrorIs(t, err, commands.ErrPromotionNotFound)
}

func TestAdminCommands_RequireStoredAdminFlag(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	// a forged tier on the viewer is not enough
	forged := access.Viewer{UserID: f.user.UserID, Tier: access.TierAdmin}
	_, err := f.uc.CreatePromotion(ctx, forged, builder.NewPromotionBuilder().Params())
	assert.ErrorIs(t, err, commands.ErrNotAdmin)
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	_, err = f.uc.GrantAdmin(ctx, access.Anonymous(), f.user.UserID)
	assert.ErrorIs(t, err, shared.ErrLoginRequired)

	stranger := access.Viewer{UserID: uuid.New(), Tier: access.TierAdmin}
	_, err = f.uc.DeleteUser(ctx, stranger, f.user.UserID)
	assert.ErrorIs(t, err, commands.ErrNotAdmin)
}

func TestAdminCommands_GrantAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	first, err := f.uc.GrantAdmin(ctx, f.admin, f.user.UserID)
	require.NoError(t, err)
	assert.False(t, first.AlreadyAdmin)
	assert.True(t, first.Profile.IsAdmin())

	second, err := f.uc.GrantAdmin(ctx, f.admin, f.user.UserID)
	require.NoError(t, err)
	assert.True(t, second.AlreadyAdmin)
	assert.True(t, second.Profile.IsAdmin())

	_, err = f.uc.GrantAdmin(ctx, f.admin, uuid.New())
	assert.ErrorIs(t, err, commands.ErrUserNotFound)
}

func TestAdminCommands_DeleteUser(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	promoID, err := f.store.Repositories().Promotions().Create(ctx, builder.NewPromotionBuilder().MustBuildDomain())
	require.NoError(t, err)
	_, err = f.store.Repositories().Bookmarks().Insert(ctx, f.user.UserID, promoID, testNow)
	require.NoError(t, err)
	f.store.SeedOrder(order.Order{
		UserID: f.user.UserID, Plan: "annual", Amount: decimal.NewFromInt(99),
		Currency: "USD", Status: order.StatusPaid, CreatedAt: testNow, UpdatedAt: testNow,
	})

	_, err = f.uc.DeleteUser(ctx, f.admin, f.admin.UserID)
	assert.ErrorIs(t, err, commands.ErrDeleteSelf)

	result, err := f.uc.DeleteUser(ctx, f.admin, f.user.UserID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.RemovedBookmarks)
	assert.EqualValues(t, 1, result.RetainedOrders)
	assert.Equal(t, []uuid.UUID{f.user.UserID}, f.inv.invalidated)

	_, err = f.store.Repositories().Profiles().FindByID(ctx, f.user.UserID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	n, err := f.store.Repositories().Orders().CountByUser(ctx, f.user.UserID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestAdminCommands_UpdatePromotionSwitchesPayment(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	created, err := f.uc.CreatePromotion(ctx, f.admin, builder.NewPromotionBuilder().Params())
	require.NoError(t, err)

	updated, err := f.uc.UpdatePromotion(ctx, f.admin, created.ID(), commands.PromotionPatch{
		PaymentType: ptr.Of(string(promotion.PaymentMiles)),
		Miles:       ptr.Of(int64(42000)),
		IsPremium:   ptr.Of(true),
	})
	require.NoError(t, err)
	miles, ok := updated.Payment().(promotion.Miles)
	require.True(t, ok)
	assert.EqualValues(t, 42000, miles.Amount)
	assert.True(t, updated.IsPremium())
	assert.Equal(t, created.Route(), updated.Route())

	_, err = f.uc.UpdatePromotion(ctx, f.admin, created.ID(), commands.PromotionPatch{Discount: ptr.Of(101)})
	assert.True(t, errs.Is(err, errs.ErrValidation))

	stored, err := f.store.Repositories().Promotions().FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, 30, stored.Discount().Value())
}

func TestAdminCommands_UpdateSubscriptionAndOrderStatus(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture(t)

	expires := testNow.Add(30 * 24 * time.Hour)
	p, err := f.uc.UpdateSubscription(ctx, f.admin, f.user.UserID, true, &expires)
	require.NoError(t, err)
	assert.True(t, p.PremiumActiveAt(testNow))

	o := order.Order{ID: uuid.New(), UserID: f.user.UserID, Amount: decimal.NewFromInt(10), Status: order.StatusPending}
	f.store.SeedOrder(o)

	updated, err := f.uc.UpdateOrderStatus(ctx, f.admin, o.ID, "PAID")
	require.NoError(t, err)
	assert.Equal(t, order.StatusPaid, updated.Status)

	_, err = f.uc.UpdateOrderStatus(ctx, f.admin, o.ID, "lost")
	assert.True(t, errs.Is(err, errs.ErrValidation))
	_, err = f.uc.UpdateOrderStatus(ctx, f.admin, uuid.New(), "paid")
	assert.ErrorIs(t, err, commands.ErrOrderNotFound)
}

// =============================================================================
// Delete sequencing against a mocked store
// =============================================================================

type mockedStore struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	profiles   *sharedmock.MockProfileRepository
	promotions *sharedmock.MockPromotionRepository
	bookmarks  *sharedmock.MockBookmarkRepository
}

func newMockedStore(ctrl *gomock.Controller, actor uuid.UUID) mockedStore {
	m := mockedStore{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		profiles:   sharedmock.NewMockProfileRepository(ctrl),
		promotions: sharedmock.NewMockPromotionRepository(ctrl),
		bookmarks:  sharedmock.NewMockBookmarkRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).Times(1)
	m.tx.EXPECT().Profiles().Return(m.profiles).AnyTimes()
	m.tx.EXPECT().Promotions().Return(m.promotions).AnyTimes()
	m.tx.EXPECT().Bookmarks().Return(m.bookmarks).AnyTimes()
	m.profiles.EXPECT().FindByID(gomock.Any(), actor).
		Return(builder.NewProfileBuilder().With(func(b *builder.ProfileBuilder) { b.ID = actor }).Admin().BuildDomain(), nil)
	return m
}

func TestAdminCommands_DeletePromotionSequence(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	fkErr := infra.NewRepoErr(infra.KindForeignKeyViolated, "promotion is still bookmarked")

	testCases := []struct {
		name   string
		setup  func(m mockedStore)
		assert func(t *testing.T, res *commands.DeleteResult, err error)
	}{
		{
			name: "success: bookmark 7 removed before promotion 42",
			setup: func(m mockedStore) {
				gomock.InOrder(
					m.promotions.EXPECT().Lock(gomock.Any(), int64(42)).Return(nil),
					m.bookmarks.EXPECT().CountByPromotion(gomock.Any(), int64(42)).Return(int64(1), nil),
					m.bookmarks.EXPECT().DeleteByPromotion(gomock.Any(), int64(42)).Return(int64(1), nil),
					m.promotions.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil),
				)
			},
			assert: func(t *testing.T, res *commands.DeleteResult, err error) {
				require.NoError(t, err)
				assert.EqualValues(t, 1, res.RemovedBookmarks)
			},
		},
		{
			name: "success: no bookmarks skips the bookmark delete",
			setup: func(m mockedStore) {
				gomock.InOrder(
					m.promotions.EXPECT().Lock(gomock.Any(), int64(42)).Return(nil),
					m.bookmarks.EXPECT().CountByPromotion(gomock.Any(), int64(42)).Return(int64(0), nil),
					m.promotions.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil),
				)
			},
			assert: func(t *testing.T, res *commands.DeleteResult, err error) {
				require.NoError(t, err)
				assert.Zero(t, res.RemovedBookmarks)
			},
		},
		{
			name: "error: bookmark delete fails, promotion is kept",
			setup: func(m mockedStore) {
				gomock.InOrder(
					m.promotions.EXPECT().Lock(gomock.Any(), int64(42)).Return(nil),
					m.bookmarks.EXPECT().CountByPromotion(gomock.Any(), int64(42)).Return(int64(3), nil),
					m.bookmarks.EXPECT().DeleteByPromotion(gomock.Any(), int64(42)).Return(int64(0), errors.New("connection reset")),
				)
			},
			assert: func(t *testing.T, res *commands.DeleteResult, err error) {
				require.Error(t, err)
				var derr *commands.DependentRowsError
				require.True(t, errs.As(err, &derr))
				assert.EqualValues(t, 3, derr.Count)
				assert.Equal(t, "promotion", derr.Entity)
			},
		},
		{
			name: "error: foreign key on final delete is a conflict",
			setup: func(m mockedStore) {
				gomock.InOrder(
					m.promotions.EXPECT().Lock(gomock.Any(), int64(42)).Return(nil),
					m.bookmarks.EXPECT().CountByPromotion(gomock.Any(), int64(42)).Return(int64(1), nil),
					m.bookmarks.EXPECT().DeleteByPromotion(gomock.Any(), int64(42)).Return(int64(1), nil),
					m.promotions.EXPECT().Delete(gomock.Any(), int64(42)).Return(fkErr),
				)
			},
			assert: func(t *testing.T, res *commands.DeleteResult, err error) {
				assert.True(t, errs.Is(err, errs.ErrConflict))
				var derr *commands.DependentRowsError
				assert.True(t, errs.As(err, &derr))
			},
		},
		{
			name: "error: missing promotion",
			setup: func(m mockedStore) {
				m.promotions.EXPECT().Lock(gomock.Any(), int64(42)).Return(infra.NewRepoErr(infra.KindNotFound, "promotion not found"))
			},
			assert: func(t *testing.T, res *commands.DeleteResult, err error) {
				assert.ErrorIs(t, err, commands.ErrPromotionNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMockedStore(ctrl, actor)
			tc.setup(m)
			uc := commands.NewAdminUseCase(m.uow, clock.NewMockClock(testNow), testConfig(), nil, commands.NoopInvalidator{})

			res, err := uc.DeletePromotion(ctx, access.Viewer{UserID: actor, Tier: access.TierAdmin}, 42)
			tc.assert(t, res, err)
		})
	}
}
