package services

import (
	"context"

	"planora/internal/application/command"
	"planora/internal/domain/model"
)

// UserService orchestrates account operations
type UserService struct {
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
}

func NewUserService(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
) *UserService {
	return &UserService{
		registerHandler: registerHandler,
		loginHandler:    loginHandler,
	}
}

func (s *UserService) Register(ctx context.Context, cmd command.RegisterUser) (*model.User, error) {
	return s.registerHandler.Handle(ctx, &cmd)
}

func (s *UserService) Login(ctx context.Context, cmd command.LoginUser) (*command.LoginResult, error) {
	return s.loginHandler.Handle(ctx, &cmd)
}
