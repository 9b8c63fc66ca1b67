// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/usecase"
	"contacts/internal/validation"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenGenerator service.TokenGenerator
	validator      *validation.Validator
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenGenerator service.TokenGenerator
	Validator      *validation.Validator
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenGenerator: params.TokenGenerator,
		validator:      params.Validator,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The existence check and the insert share one transaction;
// a concurrent insert that wins the race still surfaces as ErrUserAlreadyExists from the unique key.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserResponse, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	hash, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		Password: hash,
		Name:     input.Name,
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		count, err := userRepo.CountByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to count users by username")
		}
		if count > 0 {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
		}

		return userRepo.Create(ctx, user)
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute register user transaction")
	}

	srv.log(ctx).Info("User registered", slog.String("username", user.Username))

	return toUserResponse(user), nil
}

// Login checks the credentials and issues a fresh session token, replacing any previous one.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.UserResponse, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenGenerator.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenGenerationFailed.WrapMessage("login failed")
	}

	user.Token = &token
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store session token")
	}

	resp := toUserResponse(user)
	resp.Token = &token

	return resp, nil
}

// Get returns the caller's profile.
func (srv *userService) Get(_ context.Context, user *entity.User) (*usecase.UserResponse, error) {
	return toUserResponse(user), nil
}

// Update changes the caller's name and/or password.
func (srv *userService) Update(ctx context.Context, user *entity.User, input *usecase.UpdateUserInput) (*usecase.UserResponse, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	updated := *user
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := srv.hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		updated.Password = hash
	}

	if err := srv.userRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("failed to update user")
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return toUserResponse(&updated), nil
}

// Logout clears the caller's token so it no longer authenticates.
func (srv *userService) Logout(ctx context.Context, user *entity.User) error {
	loggedOut := *user
	loggedOut.Token = nil

	if err := srv.userRepo.Update(ctx, &loggedOut); err != nil {
		return errors.Wrap(err, "failed to clear session token")
	}

	return nil
}

func (srv *userService) hashPassword(password string) (string, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		// bcrypt's length limit is reported as a field error
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return "", err
		}

		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return hash, nil
}

func toUserResponse(user *entity.User) *usecase.UserResponse {
	return &usecase.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}
