//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/infra"
	"flightdeals/internal/infra/repository"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/pkg/pgconv"
	"flightdeals/tests/common/builder"
	repositorymock "flightdeals/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	uniqueViolation = &pgconn.PgError{Code: "23505", ConstraintName: "bookmarks_user_promotion_key"}
	fkViolation     = &pgconn.PgError{Code: "23503", ConstraintName: "bookmarks_promotion_id_fkey"}
)

func TestBookmarkRepositoryInsert(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		queryErr error
		wantID   int64
		wantKind infra.RepositoryErrorKind
	}{
		{name: "inserted", wantID: 17},
		{name: "pair already saved", queryErr: uniqueViolation, wantKind: infra.KindDuplicateKey},
		{name: "promotion gone", queryErr: fkViolation, wantKind: infra.KindForeignKeyViolated},
		{name: "deadline", queryErr: context.DeadlineExceeded, wantKind: infra.KindTimeout},
		{name: "other failure", queryErr: assert.AnError, wantKind: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockBookmarkQueries(ctrl)
			q.EXPECT().
				InsertBookmark(gomock.Any(), gomock.Any(), sqlc.InsertBookmarkParams{
					UserID:      userID,
					PromotionID: 42,
					CreatedAt:   pgconv.TimeToPgtype(now),
				}).
				Return(tt.wantID, tt.queryErr)

			id, err := repository.NewBookmarkRepository(q, nil).Insert(context.Background(), userID, 42, now)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestBookmarkRepositoryFindByPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockBookmarkQueries(ctrl)
	userID := uuid.New()

	q.EXPECT().FindBookmarkByPair(gomock.Any(), gomock.Any(), sqlc.FindBookmarkByPairParams{UserID: userID, PromotionID: 1}).
		Return(sqlc.Bookmarks{}, pgx.ErrNoRows)
	q.EXPECT().FindBookmarkByPair(gomock.Any(), gomock.Any(), sqlc.FindBookmarkByPairParams{UserID: userID, PromotionID: 2}).
		Return(sqlc.Bookmarks{ID: 9, UserID: userID, PromotionID: 2}, nil)

	repo := repository.NewBookmarkRepository(q, nil)

	_, err := repo.FindByPair(context.Background(), userID, 1)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	b, err := repo.FindByPair(context.Background(), userID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 9, b.ID)
}

func TestBookmarkRepositoryDeleteOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockBookmarkQueries(ctrl)
	owner := uuid.New()

	q.EXPECT().DeleteOwnedBookmark(gomock.Any(), gomock.Any(), sqlc.DeleteOwnedBookmarkParams{ID: 9, UserID: owner, PromotionID: 2}).Return(int64(1), nil)
	q.EXPECT().DeleteOwnedBookmark(gomock.Any(), gomock.Any(), sqlc.DeleteOwnedBookmarkParams{ID: 9, UserID: owner, PromotionID: 3}).Return(int64(0), nil)
	q.EXPECT().DeleteOwnedBookmark(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	repo := repository.NewBookmarkRepository(q, nil)
	removed, err := repo.DeleteOwned(context.Background(), 9, bookmark.Key{UserID: owner, PromotionID: 2})
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteOwned(context.Background(), 9, bookmark.Key{UserID: owner, PromotionID: 3})
	require.NoError(t, err)
	assert.False(t, removed, "the promotion is part of the delete predicate")

	removed, err = repo.DeleteOwned(context.Background(), 9, bookmark.Key{UserID: uuid.New(), PromotionID: 2})
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPromotionRepository(t *testing.T) {
	t.Run("find decodes the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockPromotionQueries(ctrl)
		b := builder.NewPromotionBuilder().PaidInMiles(35000)
		q.EXPECT().GetPromotionByID(gomock.Any(), gomock.Any(), int64(42)).Return(b.BuildInfra(), nil)

		got, err := repository.NewPromotionRepository(q, nil).FindByID(context.Background(), 42)
		require.NoError(t, err)

		want := b.MustBuildDomain()
		assert.Equal(t, want.ID(), got.ID())
		if diff := cmp.Diff(want.Params(), got.Params()); diff != "" {
			t.Errorf("params mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("find missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockPromotionQueries(ctrl)
		q.EXPECT().GetPromotionByID(gomock.Any(), gomock.Any(), int64(7)).Return(sqlc.Promotions{}, pgx.ErrNoRows)

		_, err := repository.NewPromotionRepository(q, nil).FindByID(context.Background(), 7)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt payment variant is a store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockPromotionQueries(ctrl)
		row := builder.NewPromotionBuilder().BuildInfra()
		row.Price = sqlc.Promotions{}.Price
		q.EXPECT().GetPromotionByID(gomock.Any(), gomock.Any(), int64(42)).Return(row, nil)

		_, err := repository.NewPromotionRepository(q, nil).FindByID(context.Background(), 42)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("update and delete report missing rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockPromotionQueries(ctrl)
		q.EXPECT().UpdatePromotion(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		q.EXPECT().DeletePromotion(gomock.Any(), gomock.Any(), int64(42)).Return(int64(0), nil)

		repo := repository.NewPromotionRepository(q, nil)
		assert.True(t, infra.IsKind(repo.Update(context.Background(), builder.NewPromotionBuilder().MustBuildDomain()), infra.KindNotFound))
		assert.True(t, infra.IsKind(repo.Delete(context.Background(), 42), infra.KindNotFound))
	})

	t.Run("delete blocked by dependents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockPromotionQueries(ctrl)
		q.EXPECT().DeletePromotion(gomock.Any(), gomock.Any(), int64(42)).Return(int64(0), fkViolation)

		err := repository.NewPromotionRepository(q, nil).Delete(context.Background(), 42)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestProfileRepository(t *testing.T) {
	t.Run("create reports an existing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockProfileQueries(ctrl)
		p := builder.NewProfileBuilder().BuildDomain()
		q.EXPECT().CreateProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		created, err := repository.NewProfileRepository(q, nil).Create(context.Background(), p)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("find maps premium state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockProfileQueries(ctrl)
		expires := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		b := builder.NewProfileBuilder().PremiumUntil(&expires)
		q.EXPECT().GetProfileByID(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildInfra(), nil)

		p, err := repository.NewProfileRepository(q, nil).FindByID(context.Background(), b.ID)
		require.NoError(t, err)
		assert.True(t, p.IsPremium())
		require.NotNil(t, p.PremiumExpiresAt())
		assert.True(t, expires.Equal(*p.PremiumExpiresAt()))
		assert.Nil(t, p.Phone())
	})

	t.Run("lock missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockProfileQueries(ctrl)
		q.EXPECT().LockProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, pgx.ErrNoRows)

		err := repository.NewProfileRepository(q, nil).Lock(context.Background(), uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOrderRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockOrderQueries(ctrl)
	id := uuid.New()

	q.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error) {
			assert.Equal(t, "refunded", arg.Status)
			assert.Equal(t, id, arg.ID)
			return 0, nil
		})

	err := repository.NewOrderRepository(q, nil).UpdateStatus(context.Background(), id, "refunded", time.Now())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
