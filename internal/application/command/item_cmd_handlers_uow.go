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

// CreateItemWithUoWHandler handles create item commands with Unit of Work
type CreateItemWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewCreateItemWithUoWHandler creates a new create item handler with UoW
func NewCreateItemWithUoWHandler(uowFactory repository.UnitOfWorkFactory) *CreateItemWithUoWHandler {
	return &CreateItemWithUoWHandler{uowFactory: uowFactory}
}

// Handle processes the create item command. The referenced service type must
// exist; caterer sub-fields are only kept for items of the catering type.
func (h *CreateItemWithUoWHandler) Handle(ctx context.Context, cmd *CreateItem) (*model.Item, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.TypeID == "" {
		return nil, errors.NewValidationError("type_id is required")
	}
	if cmd.ClientID == "" {
		return nil, errors.NewValidationError("client_id is required")
	}
	if cmd.Name == "" {
		return nil, errors.NewValidationError("name is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	serviceType, err := uow.ServiceTypeRepository().GetByID(ctx, cmd.TypeID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("service type")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load service type: %v", err))
	}

	if _, err := uow.ClientRepository().GetByID(ctx, cmd.ClientID); err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("client")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load client: %v", err))
	}

	now := time.Now().UTC()
	item := &model.Item{
		TypeID:      cmd.TypeID,
		ClientID:    cmd.ClientID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Images:      cmd.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	switch serviceType.Name {
	case model.TypeCatering:
		details := &model.CatererDetails{
			VegMenu:    cmd.VegMenu,
			NonVegMenu: cmd.NonVegMenu,
		}
		if cmd.CatererPrice != nil {
			details.Price = *cmd.CatererPrice
		}
		item.CatererDetails = details
	case model.TypeDecoration:
		item.DecorationImages = cmd.DecorationImages
	}

	if err := uow.ItemRepository().Save(ctx, item); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to save item: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return item, nil
}

// DeleteItemWithUoWHandler handles delete item commands with Unit of Work
type DeleteItemWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewDeleteItemWithUoWHandler creates a new delete item handler with UoW
func NewDeleteItemWithUoWHandler(uowFactory repository.UnitOfWorkFactory) *DeleteItemWithUoWHandler {
	return &DeleteItemWithUoWHandler{uowFactory: uowFactory}
}

// Handle removes one item from the catalog
func (h *DeleteItemWithUoWHandler) Handle(ctx context.Context, cmd *DeleteItem) error {
	if cmd == nil {
		return errors.NewValidationError("command cannot be nil")
	}
	if cmd.ItemID == "" {
		return errors.NewValidationError("item_id is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	if err := uow.ItemRepository().Delete(ctx, cmd.ItemID); err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NewNotFoundError("item")
		}
		return errors.NewStoreError(fmt.Sprintf("failed to delete item: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}
	return nil
}

// EditItemWithUoWHandler handles edit item commands with Unit of Work
type EditItemWithUoWHandler struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewEditItemWithUoWHandler creates a new edit item handler with UoW
func NewEditItemWithUoWHandler(uowFactory repository.UnitOfWorkFactory) *EditItemWithUoWHandler {
	return &EditItemWithUoWHandler{uowFactory: uowFactory}
}

// Handle processes the edit item command. Type and owner are immutable.
func (h *EditItemWithUoWHandler) Handle(ctx context.Context, cmd *EditItem) (*model.Item, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if cmd.ItemID == "" {
		return nil, errors.NewValidationError("item_id is required")
	}

	uow := h.uowFactory.CreateUnitOfWork()
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to begin transaction: %v", err))
	}

	itemRepo := uow.ItemRepository()
	item, err := itemRepo.GetByID(ctx, cmd.ItemID)
	if err != nil {
		uow.Rollback(ctx)
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("item")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load item: %v", err))
	}

	if cmd.Name != "" {
		item.Name = cmd.Name
	}
	if cmd.Description != "" {
		item.Description = cmd.Description
	}
	if cmd.Price > 0 {
		item.Price = cmd.Price
	}
	if len(cmd.Images) > 0 {
		item.Images = cmd.Images
	}
	if len(cmd.DecorationImages) > 0 {
		item.DecorationImages = cmd.DecorationImages
	}
	item.UpdatedAt = time.Now().UTC()

	if err := itemRepo.Update(ctx, item); err != nil {
		uow.Rollback(ctx)
		return nil, errors.NewStoreError(fmt.Sprintf("failed to update item: %v", err))
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to commit transaction: %v", err))
	}

	return item, nil
}
