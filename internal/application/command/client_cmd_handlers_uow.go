package command

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"planora/internal/domain/model"
	"planora/internal/domain/repository"
	"planora/pkg/errors"
)

// CreateClientWithUoWHandler handles create client commands with Unit of Work
type CreateClientWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewCreateClientWithUoWHandler creates a new create client handler with UoW
func NewCreateClientWithUoWHandler(uowFactory repository.UnitOfWorkFactory) *CreateClientWithUoWHandler {
	return &CreateClientWithUoWHandler{uowFactory: uowFactory}
}

// Handle creates a provider profile for an existing user and promotes the
// user's role to client. One profile per user.
func (h *CreateClientWithUoWHandler) Handle(ctx context.Context, cmd *CreateClient) (*model.Client, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.UserID == "" {
		return nil, errors.NewValidationError("user_id is required")
	}
	if cmd.FirstName == "" {
		return nil, errors.NewValidationError("first_name is required")
	}
	if cmd.Contact == "" {
		return nil, errors.NewValidationError("contact is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	userRepo := uow.UserRepository()
	user, err := userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("user")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load user: %v", err))
	}

	clientRepo := uow.ClientRepository()
	if existing, err := clientRepo.FindByUserID(ctx, cmd.UserID); err == nil && existing != nil {
		uow.Rollback(ctx)
		return nil, errors.NewConflictError("user already has a client profile")
	} else if err != nil && !stderrors.Is(err, repository.ErrNotFound) {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to check client profile: %v", err))
	}

	now := time.Now().UTC()
	client := &model.Client{
		FirstName:      cmd.FirstName,
		LastName:       cmd.LastName,
		Email:          cmd.Email,
		UserID:         cmd.UserID,
		RoleID:         cmd.RoleID,
		WorkExperience: cmd.WorkExperience,
		Location:       cmd.Location,
		Contact:        cmd.Contact,
		QID:            cmd.QID,
		CRNo:           cmd.CRNo,
		BestWork:       cmd.BestWork,
		Description:    cmd.Description,
		Availability:   cmd.Availability,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if client.Email == "" {
		client.Email = user.Email
	}
	client.NormalizeAvailability()

	if err := clientRepo.Save(ctx, client); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to save client: %v", err))
	}

	if user.Role != model.RoleClient {
		user.Role = model.RoleClient
		user.UpdatedAt = now
		if err := userRepo.Update(ctx, user); err != nil {
			uow.Rollback(ctx)
			return nil, errors.NewStoreError(fmt.Sprintf("failed to promote user: %v", err))
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return client, nil
}

// UpdateClientWithUoWHandler handles update client commands with Unit of Work
type UpdateClientWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewUpdateClientWithUoWHandler creates a new update client handler with UoW
func NewUpdateClientWithUoWHandler(uowFactory repository.UnitOfWorkFactory) *UpdateClientWithUoWHandler {
	return &UpdateClientWithUoWHandler{uowFactory: uowFactory}
}

// Handle updates the mutable profile fields. Availability is normalized to
// UTC midnight on every write.
func (h *UpdateClientWithUoWHandler) Handle(ctx context.Context, cmd *UpdateClient) (*model.Client, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.ClientID == "" {
		return nil, errors.NewValidationError("client_id is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	clientRepo := uow.ClientRepository()
	client, err := clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("client")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load client: %v", err))
	}

	if cmd.FirstName != "" {
		client.FirstName = cmd.FirstName
	}
	if cmd.LastName != "" {
		client.LastName = cmd.LastName
	}
	if cmd.WorkExperience > 0 {
		client.WorkExperience = cmd.WorkExperience
	}
	if cmd.Location != "" {
		client.Location = cmd.Location
	}
	if cmd.Contact != "" {
		client.Contact = cmd.Contact
	}
	if len(cmd.BestWork) > 0 {
		client.BestWork = cmd.BestWork
	}
	if cmd.Description != "" {
		client.Description = cmd.Description
	}
	if cmd.Availability != nil {
		client.Availability = cmd.Availability
		client.NormalizeAvailability()
	}
	client.UpdatedAt = time.Now().UTC()

	if err := clientRepo.Update(ctx, client); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to update client: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return client, nil
}

// DeleteClientWithUoWHandler handles delete client commands with Unit of Work
type DeleteClientWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewDeleteClientWithUoWHandler creates a new delete client handler with UoW
func NewDeleteClientWithUoWHandler(uowFactory repository.UnitOfWorkFactory) *DeleteClientWithUoWHandler {
	return &DeleteClientWithUoWHandler{uowFactory: uowFactory}
}

// Handle removes a provider profile. The owning user account stays; only the
// profile and its directory presence go away.
func (h *DeleteClientWithUoWHandler) Handle(ctx context.Context, cmd *DeleteClient) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.ClientID == "" {
		return errors.NewValidationError("client_id is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	if _, err := uow.ClientRepository().GetByID(ctx, cmd.ClientID); err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NewNotFoundError("client")
		}
		return errors.NewStoreError(fmt.Sprintf("failed to load client: %v", err))
	}

	if err := uow.ClientRepository().Delete(ctx, cmd.ClientID); err != nil {
		uow.Rollback(ctx)
		return errors.NewStoreError(fmt.Sprintf("failed to delete client: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}
	return nil
}

// UpdateClientPhotosWithUoWHandler handles portfolio photo updates
type UpdateClientPhotosWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewUpdateClientPhotosWithUoWHandler creates a new update client photos handler
func NewUpdateClientPhotosWithUoWHandler(uowFactory repository.UnitOfWorkFactory) *UpdateClientPhotosWithUoWHandler {
	return &UpdateClientPhotosWithUoWHandler{uowFactory: uowFactory}
}

// Handle replaces the client's portfolio image name list
func (h *UpdateClientPhotosWithUoWHandler) Handle(ctx context.Context, cmd *UpdateClientPhotos) (*model.Client, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.ClientID == "" {
		return nil, errors.NewValidationError("client_id is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	clientRepo := uow.ClientRepository()
	client, err := clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("client")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load client: %v", err))
	}

	client.BestWork = cmd.BestWork
	client.UpdatedAt = time.Now().UTC()

	if err := clientRepo.Update(ctx, client); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to update client: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return client, nil
}
