package services

import (
	"context"

	"planora/internal/application/command"
	"planora/internal/application/query"
	"planora/internal/domain/model"
)

// ItemService orchestrates service-offering operations
type ItemService struct {
	// Command handlers (using Unit of Work)
	createItemHandler *command.CreateItemWithUoWHandler
	editItemHandler   *command.EditItemWithUoWHandler
	deleteItemHandler *command.DeleteItemWithUoWHandler

	// Query handlers
	getItemHandler      *query.GetItemHandler
	listByTypeHandler   *query.ListItemsByTypeHandler
	listByClientHandler *query.ListItemsByClientHandler
	searchHandler       *query.SearchAvailableItemsHandler
}

func NewItemService(
	createItemHandler *command.CreateItemWithUoWHandler,
	editItemHandler *command.EditItemWithUoWHandler,
	deleteItemHandler *command.DeleteItemWithUoWHandler,
	getItemHandler *query.GetItemHandler,
	listByTypeHandler *query.ListItemsByTypeHandler,
	listByClientHandler *query.ListItemsByClientHandler,
	searchHandler *query.SearchAvailableItemsHandler,
) *ItemService {
	return &ItemService{
		createItemHandler:   createItemHandler,
		editItemHandler:     editItemHandler,
		deleteItemHandler:   deleteItemHandler,
		getItemHandler:      getItemHandler,
		listByTypeHandler:   listByTypeHandler,
		listByClientHandler: listByClientHandler,
		searchHandler:       searchHandler,
	}
}

// Command operations
func (s *ItemService) CreateItem(ctx context.Context, cmd command.CreateItem) (*model.Item, error) {
	return s.createItemHandler.Handle(ctx, &cmd)
}

func (s *ItemService) EditItem(ctx context.Context, cmd command.EditItem) (*model.Item, error) {
	return s.editItemHandler.Handle(ctx, &cmd)
}

func (s *ItemService) DeleteItem(ctx context.Context, cmd command.DeleteItem) error {
	return s.deleteItemHandler.Handle(ctx, &cmd)
}

// Query operations
func (s *ItemService) GetItem(ctx context.Context, q query.GetItem) (*query.ItemDetail, error) {
	return s.getItemHandler.Handle(ctx, &q)
}

func (s *ItemService) ListItemsByType(ctx context.Context, q query.ListItemsByType) ([]*model.Item, error) {
	return s.listByTypeHandler.Handle(ctx, &q)
}

func (s *ItemService) ListItemsByClient(ctx context.Context, q query.ListItemsByClient) ([]*query.EnrichedItem, error) {
	return s.listByClientHandler.Handle(ctx, &q)
}

func (s *ItemService) SearchAvailableItems(ctx context.Context, q query.SearchAvailableItems) (*query.ItemsByType, error) {
	return s.searchHandler.Handle(ctx, &q)
}
