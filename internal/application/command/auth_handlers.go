package command

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"planora/internal/domain/model"
	"planora/internal/domain/repository"
	"planora/pkg/errors"
	"planora/pkg/jwt"
)

// RegisterUserHandler handles account registration
type RegisterUserHandler struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(uowFactory repository.UnitOfWorkFactory) *RegisterUserHandler {
	return &RegisterUserHandler{uowFactory: uowFactory}
}

// Handle registers a new account. Emails are unique; passwords are stored
// only as bcrypt hashes.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd *RegisterUser) (*model.User, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.FullName == "" {
		return nil, errors.NewValidationError("full_name is required")
	}
	if cmd.Email == "" {
		return nil, errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to hash password: %v", err))
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	userRepo := uow.UserRepository()
	if _, err := userRepo.FindByEmail(ctx, cmd.Email); err == nil {
		uow.Rollback(ctx)
		return nil, errors.NewConflictError("email is already registered")
	} else if !stderrors.Is(err, repository.ErrNotFound) {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to check email: %v", err))
	}

	now := time.Now().UTC()
	user := &model.User{
		FullName:     cmd.FullName,
		Email:        cmd.Email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		PhoneNumber:  cmd.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Save(ctx, user); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to save user: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return user, nil
}

// LoginResult carries the issued token and the authenticated account
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// LoginUserHandler handles credential checks and token issuance
type LoginUserHandler struct {
	uowFactory repository.UnitOfWorkFactory
	jwtManager *jwt.JWTManager
}

// NewLoginUserHandler creates a new login handler
func NewLoginUserHandler(uowFactory repository.UnitOfWorkFactory, jwtManager *jwt.JWTManager) *LoginUserHandler {
	return &LoginUserHandler{
		uowFactory: uowFactory,
		jwtManager: jwtManager,
	}
}

// Handle authenticates the credentials and issues an access token. Unknown
// email and wrong password return the same error.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd *LoginUser) (*LoginResult, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	user, err := uow.UserRepository().FindByEmail(ctx, cmd.Email)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load user: %v", err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(cmd.Password)); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Email, user.FullName, user.Role)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to issue token: %v", err))
	}

	return &LoginResult{Token: token, User: user}, nil
}
