package commands

import (
	"context"
	"log/slog"

	"campfinder/internal/domain/campsite"
	reqdto "campfinder/internal/handler/dto/request"
	"campfinder/internal/infra"
	"campfinder/internal/pkg/clock"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/usecase/queries"
	"campfinder/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CampsiteCommands interface {
	CreateCampsite(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateCampsiteRequest) (*queries.CampsiteView, error)
	UpdateCampsite(ctx context.Context, id uuid.UUID, req reqdto.UpdateCampsiteRequest, actorID uuid.UUID, actorRole string) (*queries.CampsiteView, error)
	DeleteCampsite(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type campsiteCommandsImpl struct {
	directory shared.CampsiteDirectory
	clock     clock.Clock
}

func NewCampsiteCommands(directory shared.CampsiteDirectory, clk clock.Clock) CampsiteCommands {
	return &campsiteCommandsImpl{directory: directory, clock: clk}
}

func (c *campsiteCommandsImpl) CreateCampsite(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateCampsiteRequest) (*queries.CampsiteView, error) {
	site, err := campsite.NewCampsite(ownerID, req.ToDraft(), c.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}

	if err := c.directory.Insert(ctx, site); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCampsiteNameTaken
		}
		return nil, err
	}

	slog.Info("campsite created", "campsite_id", site.ID(), "owner_id", ownerID)
	return queries.CampsiteViewOf(site), nil
}

func (c *campsiteCommandsImpl) UpdateCampsite(ctx context.Context, id uuid.UUID, req reqdto.UpdateCampsiteRequest, actorID uuid.UUID, actorRole string) (*queries.CampsiteView, error) {
	site, err := c.authorize(ctx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	draft := site.Draft()
	if err := copier.CopyWithOption(&draft, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "failed to apply campsite changes")
	}
	if err := site.Revise(draft, c.clock.Now()); err != nil {
		return nil, errs.Validation(err)
	}

	if err := c.directory.Update(ctx, site); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrCampsiteNameTaken
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCampsiteNotFound
		}
		return nil, err
	}
	return queries.CampsiteViewOf(site), nil
}

// DeleteCampsite removes the listing only. Reservations and reviews stay in
// the ledger and are shown without campsite details afterwards.
func (c *campsiteCommandsImpl) DeleteCampsite(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) error {
	if _, err := c.authorize(ctx, id, actorID, actorRole); err != nil {
		return err
	}
	if err := c.directory.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCampsiteNotFound
		}
		return err
	}
	slog.Info("campsite deleted", "campsite_id", id, "actor_id", actorID)
	return nil
}

func (c *campsiteCommandsImpl) authorize(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*campsite.Campsite, error) {
	site, err := c.directory.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampsiteNotFound
		}
		return nil, err
	}
	if actorRole != queries.RoleAdmin && !site.IsOwnedBy(actorID) {
		return nil, ErrCampsiteAccess
	}
	return site, nil
}
