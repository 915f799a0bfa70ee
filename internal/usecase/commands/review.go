package commands

import (
	"context"
	"log/slog"

	domreview "campfinder/internal/domain/review"
	reqdto "campfinder/internal/handler/dto/request"
	"campfinder/internal/infra"
	"campfinder/internal/pkg/clock"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/usecase/queries"
	"campfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, campsiteID, userID uuid.UUID, req reqdto.CreateReviewRequest) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req reqdto.UpdateReviewRequest, actorID uuid.UUID, actorRole string) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type reviewUseCaseImpl struct {
	uow       shared.UnitOfWork
	campsites shared.CampsiteDirectory
	clock     clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, campsites shared.CampsiteDirectory, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, campsites: campsites, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, campsiteID, userID uuid.UUID, req reqdto.CreateReviewRequest) (*CreateReviewResult, error) {
	if _, err := uc.campsites.FindByID(ctx, campsiteID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampsiteNotFound
		}
		return nil, err
	}

	rev, err := domreview.NewReview(userID, campsiteID, req.Title, req.Text, req.Rating, uc.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}

	var summary *shared.RatingSummary
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Reviews().Create(ctx, tx.DB(), rev); txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return domreview.ErrReviewAlreadyExists
			}
			return txErr
		}
		var txErr error
		summary, txErr = tx.RatingStats().Recalc(ctx, tx.DB(), campsiteID)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	uc.syncAverageRating(ctx, campsiteID, summary)
	return &CreateReviewResult{ReviewID: rev.ID()}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req reqdto.UpdateReviewRequest, actorID uuid.UUID, actorRole string) error {
	var campsiteID uuid.UUID
	var summary *shared.RatingSummary
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, txErr := loadReview(ctx, tx, reviewID)
		if txErr != nil {
			return txErr
		}
		if !rev.CanModify(actorID, actorRole == queries.RoleAdmin) {
			return ErrReviewAccess
		}
		if txErr = rev.Edit(req.Title, req.Text, req.Rating, uc.clock.Now()); txErr != nil {
			return errs.Validation(txErr)
		}
		if txErr = tx.Reviews().Update(ctx, tx.DB(), rev); txErr != nil {
			return txErr
		}

		campsiteID = rev.CampsiteID()
		summary, txErr = tx.RatingStats().Recalc(ctx, tx.DB(), campsiteID)
		return txErr
	})
	if err != nil {
		return err
	}

	uc.syncAverageRating(ctx, campsiteID, summary)
	return nil
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	var campsiteID uuid.UUID
	var summary *shared.RatingSummary
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, txErr := loadReview(ctx, tx, reviewID)
		if txErr != nil {
			return txErr
		}
		if !rev.CanModify(actorID, actorRole == queries.RoleAdmin) {
			return ErrReviewAccess
		}
		if txErr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); txErr != nil {
			return txErr
		}

		campsiteID = rev.CampsiteID()
		summary, txErr = tx.RatingStats().Recalc(ctx, tx.DB(), campsiteID)
		return txErr
	})
	if err != nil {
		return err
	}

	uc.syncAverageRating(ctx, campsiteID, summary)
	return nil
}

// syncAverageRating copies the recalculated average onto the directory listing.
// The review write has already committed, so a failure here is only logged;
// the next review change for the campsite repairs it.
func (uc *reviewUseCaseImpl) syncAverageRating(ctx context.Context, campsiteID uuid.UUID, summary *shared.RatingSummary) {
	var avg *float64
	if summary != nil && summary.TotalReviews > 0 {
		v := summary.AverageRating
		avg = &v
	}
	if err := uc.campsites.SetAverageRating(ctx, campsiteID, avg); err != nil {
		slog.Warn("failed to update campsite average rating", "campsite_id", campsiteID, "error", err)
	}
}

func loadReview(ctx context.Context, tx shared.Tx, id uuid.UUID) (*domreview.Review, error) {
	snap, err := tx.Reads().ReviewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return reviewFromSnapshot(snap)
}

func reviewFromSnapshot(s *shared.ReviewSnapshot) (*domreview.Review, error) {
	title, err := domreview.NewTitle(s.Title)
	if err != nil {
		return nil, errs.Wrap(err, "stored review has invalid title")
	}
	text, err := domreview.NewText(s.Text)
	if err != nil {
		return nil, errs.Wrap(err, "stored review has invalid text")
	}
	rating, err := domreview.NewRating(s.Rating)
	if err != nil {
		return nil, errs.Wrap(err, "stored review has invalid rating")
	}
	return domreview.ReconstructReview(s.ID, s.UserID, s.CampsiteID, title, text, rating, s.CreatedAt, s.UpdatedAt), nil
}
