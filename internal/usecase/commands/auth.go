package commands

import (
	"context"
	"log/slog"

	"campfinder/internal/domain/user"
	reqdto "campfinder/internal/handler/dto/request"
	"campfinder/internal/infra"
	"campfinder/internal/pkg/errs"
	"campfinder/internal/pkg/jwt"
	"campfinder/internal/pkg/password"
	"campfinder/internal/usecase/queries"
	"campfinder/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

// Register always creates a plain user. Admins come from the operator CLI.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return nil, errs.Validation(err)
	}

	id, err := createUser(ctx, a.uow, reg.Name(), reg.Email(), reg.Password(), user.RoleUser)
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(id, user.RoleUser)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: id, Role: user.RoleUser, TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	userReadModel, err := a.validateUser(ctx, credentials.Email().Value(), credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	pair, err := a.issueTokens(userReadModel.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID)
	})
	if err != nil {
		// login already succeeded; only the timestamp is stale
		slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &LoginResult{UserID: userReadModel.ID, Role: role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// the role is re-read so a promoted or demoted user gets fresh claims
	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	return a.issueTokens(userReadModel.ID, role)
}

func (a *authCommandsImpl) issueTokens(id uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(id, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(id, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, plain string) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a wrong password so emails cannot be enumerated
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, plain); err != nil {
		return nil, ErrInvalidCredentials
	}
	return userReadModel, nil
}

func createUser(ctx context.Context, uow shared.UnitOfWork, name user.Name, email user.Email, plain user.Password, role user.Role) (uuid.UUID, error) {
	if _, err := uow.CommandReads().UserByEmail(ctx, email.Value()); err == nil {
		return uuid.Nil, ErrEmailTaken
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(plain.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(name, email, hash, role)
	var id uuid.UUID
	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Users().Create(ctx, tx.DB(), u)
		if infra.IsKind(txErr, infra.KindDuplicateKey) {
			return ErrEmailTaken
		}
		return txErr
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
