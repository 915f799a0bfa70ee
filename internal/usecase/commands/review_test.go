//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domreview "campfinder/internal/domain/review"
	reqdto "campfinder/internal/handler/dto/request"
	"campfinder/internal/infra"
	sqlc "campfinder/internal/infra/sqlc/generated"
	"campfinder/internal/pkg/clock"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/pkg/patch"
	"campfinder/internal/usecase/commands"
	"campfinder/internal/usecase/queries"
	"campfinder/internal/usecase/shared"
	"campfinder/tests/common/builder"
	sharedmock "campfinder/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reviewFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	reviews   *sharedmock.MockReviewRepository
	stats     *sharedmock.MockRatingStatsRepository
	directory *sharedmock.MockCampsiteDirectory
	clock     *clock.MockClock
	useCase   commands.ReviewCommands
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &reviewFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		reads:     sharedmock.NewMockCommandReads(ctrl),
		reviews:   sharedmock.NewMockReviewRepository(ctrl),
		stats:     sharedmock.NewMockRatingStatsRepository(ctrl),
		directory: sharedmock.NewMockCampsiteDirectory(ctrl),
		clock:     clock.NewMockClock(time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC)),
	}
	f.useCase = commands.NewReviewUseCase(f.uow, f.directory, f.clock)

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reviews().Return(f.reviews).AnyTimes()
	f.tx.EXPECT().RatingStats().Return(f.stats).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

// =============================================================================
// CreateReview
// =============================================================================

func TestReviewUseCase_CreateReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	req := builder.NewReviewBuilder().BuildCreateRequestDTO()

	t.Run("success: review stored and campsite average refreshed", func(t *testing.T) {
		f := newReviewFixture(t)
		site := builder.NewCampsiteBuilder().BuildReconstructed()

		f.directory.EXPECT().FindByID(gomock.Any(), site.ID()).Return(site, nil)
		f.reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, rev *domreview.Review) (uuid.UUID, error) {
				assert.Equal(t, userID, rev.UserID())
				assert.Equal(t, site.ID(), rev.CampsiteID())
				assert.Equal(t, req.Title, rev.Title().String())
				return rev.ID(), nil
			})
		f.stats.EXPECT().Recalc(gomock.Any(), gomock.Any(), site.ID()).
			Return(&shared.RatingSummary{TotalReviews: 3, AverageRating: 4.3}, nil)
		f.directory.EXPECT().SetAverageRating(gomock.Any(), site.ID(), patch.Ptr(4.3)).Return(nil)

		result, err := f.useCase.CreateReview(ctx, site.ID(), userID, req)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ReviewID)
	})

	t.Run("success: directory sync failure does not fail the request", func(t *testing.T) {
		f := newReviewFixture(t)
		site := builder.NewCampsiteBuilder().BuildReconstructed()

		f.directory.EXPECT().FindByID(gomock.Any(), site.ID()).Return(site, nil)
		f.reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.stats.EXPECT().Recalc(gomock.Any(), gomock.Any(), site.ID()).
			Return(&shared.RatingSummary{TotalReviews: 1, AverageRating: 5}, nil)
		f.directory.EXPECT().SetAverageRating(gomock.Any(), site.ID(), gomock.Any()).Return(errors.New("mongo down"))

		_, err := f.useCase.CreateReview(ctx, site.ID(), userID, req)

		require.NoError(t, err)
	})

	t.Run("error: campsite does not exist", func(t *testing.T) {
		f := newReviewFixture(t)
		f.directory.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFoundErr())

		_, err := f.useCase.CreateReview(ctx, uuid.New(), userID, req)

		assert.ErrorIs(t, err, commands.ErrCampsiteNotFound)
	})

	t.Run("error: second review by the same user", func(t *testing.T) {
		f := newReviewFixture(t)
		site := builder.NewCampsiteBuilder().BuildReconstructed()

		f.directory.EXPECT().FindByID(gomock.Any(), site.ID()).Return(site, nil)
		f.reviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create review", errors.New("dup"), infra.KindDuplicateKey))

		_, err := f.useCase.CreateReview(ctx, site.ID(), userID, req)

		assert.ErrorIs(t, err, domreview.ErrReviewAlreadyExists)
		assert.Equal(t, errs.ErrConflict, errs.Kind(err))
	})

	t.Run("error: rating out of range", func(t *testing.T) {
		f := newReviewFixture(t)
		site := builder.NewCampsiteBuilder().BuildReconstructed()
		f.directory.EXPECT().FindByID(gomock.Any(), site.ID()).Return(site, nil)

		bad := req
		bad.Rating = 6
		_, err := f.useCase.CreateReview(ctx, site.ID(), userID, bad)

		assert.ErrorIs(t, err, domreview.ErrInvalidRating)
		assert.Equal(t, errs.ErrValidation, errs.Kind(err))
	})
}

// =============================================================================
// UpdateReview
// =============================================================================

func TestReviewUseCase_UpdateReview(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	snap := builder.NewReviewBuilder().WithUserID(authorID).BuildSnapshot()

	t.Run("author changes the rating only", func(t *testing.T) {
		f := newReviewFixture(t)
		req := reqdto.UpdateReviewRequest{Rating: patch.Ptr(2)}

		f.reads.EXPECT().ReviewByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.reviews.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, rev *domreview.Review) error {
				assert.Equal(t, 2, rev.Rating().Value())
				assert.Equal(t, snap.Title, rev.Title().String())
				assert.Equal(t, f.clock.Now(), rev.UpdatedAt())
				return nil
			})
		f.stats.EXPECT().Recalc(gomock.Any(), gomock.Any(), snap.CampsiteID).
			Return(&shared.RatingSummary{TotalReviews: 1, AverageRating: 2}, nil)
		f.directory.EXPECT().SetAverageRating(gomock.Any(), snap.CampsiteID, patch.Ptr(2.0)).Return(nil)

		err := f.useCase.UpdateReview(ctx, snap.ID, req, authorID, queries.RoleUser)

		require.NoError(t, err)
	})

	t.Run("admin edits someone else's review", func(t *testing.T) {
		f := newReviewFixture(t)
		req := reqdto.UpdateReviewRequest{Title: patch.Ptr("Moderated title")}

		f.reads.EXPECT().ReviewByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.reviews.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.stats.EXPECT().Recalc(gomock.Any(), gomock.Any(), snap.CampsiteID).
			Return(&shared.RatingSummary{TotalReviews: 1, AverageRating: 5}, nil)
		f.directory.EXPECT().SetAverageRating(gomock.Any(), snap.CampsiteID, gomock.Any()).Return(nil)

		err := f.useCase.UpdateReview(ctx, snap.ID, req, uuid.New(), queries.RoleAdmin)

		require.NoError(t, err)
	})

	t.Run("error: other user is forbidden", func(t *testing.T) {
		f := newReviewFixture(t)
		f.reads.EXPECT().ReviewByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := f.useCase.UpdateReview(ctx, snap.ID, reqdto.UpdateReviewRequest{Rating: patch.Ptr(1)}, uuid.New(), queries.RoleUser)

		assert.ErrorIs(t, err, commands.ErrReviewAccess)
		assert.Equal(t, errs.ErrForbidden, errs.Kind(err))
	})

	t.Run("error: empty title", func(t *testing.T) {
		f := newReviewFixture(t)
		f.reads.EXPECT().ReviewByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := f.useCase.UpdateReview(ctx, snap.ID, reqdto.UpdateReviewRequest{Title: patch.Ptr("   ")}, authorID, queries.RoleUser)

		assert.ErrorIs(t, err, domreview.ErrEmptyTitle)
		assert.Equal(t, errs.ErrValidation, errs.Kind(err))
	})

	t.Run("error: review does not exist", func(t *testing.T) {
		f := newReviewFixture(t)
		f.reads.EXPECT().ReviewByID(gomock.Any(), gomock.Any()).Return(nil, notFoundErr())

		err := f.useCase.UpdateReview(ctx, uuid.New(), reqdto.UpdateReviewRequest{}, authorID, queries.RoleUser)

		assert.ErrorIs(t, err, commands.ErrReviewNotFound)
	})
}

// =============================================================================
// DeleteReview
// =============================================================================

func TestReviewUseCase_DeleteReview(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	snap := builder.NewReviewBuilder().WithUserID(authorID).BuildSnapshot()

	t.Run("last review removed unsets the campsite average", func(t *testing.T) {
		f := newReviewFixture(t)

		f.reads.EXPECT().ReviewByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.reviews.EXPECT().Delete(gomock.Any(), gomock.Any(), snap.ID).Return(nil)
		f.stats.EXPECT().Recalc(gomock.Any(), gomock.Any(), snap.CampsiteID).
			Return(&shared.RatingSummary{TotalReviews: 0}, nil)
		f.directory.EXPECT().SetAverageRating(gomock.Any(), snap.CampsiteID, (*float64)(nil)).Return(nil)

		err := f.useCase.DeleteReview(ctx, snap.ID, authorID, queries.RoleUser)

		require.NoError(t, err)
	})

	t.Run("error: other user is forbidden", func(t *testing.T) {
		f := newReviewFixture(t)
		f.reads.EXPECT().ReviewByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := f.useCase.DeleteReview(ctx, snap.ID, uuid.New(), queries.RoleUser)

		assert.ErrorIs(t, err, commands.ErrReviewAccess)
	})

	t.Run("error: rating recalculation failure rolls back", func(t *testing.T) {
		f := newReviewFixture(t)
		boom := infra.WrapRepoErr("failed to recalc", errors.New("deadlock"))

		f.reads.EXPECT().ReviewByID(gomock.Any(), snap.ID).Return(snap, nil)
		f.reviews.EXPECT().Delete(gomock.Any(), gomock.Any(), snap.ID).Return(nil)
		f.stats.EXPECT().Recalc(gomock.Any(), gomock.Any(), snap.CampsiteID).Return(nil, boom)

		err := f.useCase.DeleteReview(ctx, snap.ID, authorID, queries.RoleUser)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
