package commands

import (
	"context"

	"campfinder/internal/domain/auth"
	"campfinder/internal/domain/user"
	reqdto "campfinder/internal/handler/dto/request"
	"campfinder/internal/infra"
	"campfinder/internal/pkg/clock"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/pkg/patch"
	"campfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error
	CreateAdmin(ctx context.Context, name, email, plainPassword string) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (c *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if !snap.IsActive {
			return ErrUserInactive
		}

		current, err := userFromSnapshot(snap)
		if err != nil {
			return err
		}

		name, err := user.NewName(patch.Coalesce(req.Name, snap.Name))
		if err != nil {
			return errs.Validation(err)
		}
		email, err := user.NewEmail(patch.Coalesce(req.Email, snap.Email))
		if err != nil {
			return errs.Validation(err)
		}

		if email.Value() != snap.Email {
			other, err := tx.Reads().UserByEmail(ctx, email.Value())
			if err == nil && other.ID != userID {
				return ErrEmailTaken
			}
			if err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
		}

		current.UpdateProfile(name, email, c.clock.Now())
		if err := tx.Users().UpdateProfile(ctx, tx.DB(), current); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
}

func (c *userCommandsImpl) CreateAdmin(ctx context.Context, name, email, plainPassword string) (uuid.UUID, error) {
	reg, err := auth.NewRegistration(name, email, plainPassword)
	if err != nil {
		return uuid.Nil, errs.Validation(err)
	}
	return createUser(ctx, c.uow, reg.Name(), reg.Email(), reg.Password(), user.RoleAdmin)
}

func userFromSnapshot(s *shared.UserSnapshot) (*user.User, error) {
	name, err := user.NewName(s.Name)
	if err != nil {
		return nil, errs.Wrap(err, "stored user has invalid name")
	}
	email, err := user.NewEmail(s.Email)
	if err != nil {
		return nil, errs.Wrap(err, "stored user has invalid email")
	}
	role, err := user.NewRole(s.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored user has invalid role")
	}
	return user.ReconstructUser(s.ID, name, email, s.PasswordHash, role, nil, s.IsActive, s.CreatedAt, s.UpdatedAt), nil
}
