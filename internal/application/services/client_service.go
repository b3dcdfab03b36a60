package services

import (
	"context"

	"planora/internal/application/command"
	"planora/internal/application/query"
	"planora/internal/domain/model"
)

// ClientService orchestrates provider profile operations
type ClientService struct {
	// Command handlers (using Unit of Work)
	createClientHandler *command.CreateClientWithUoWHandler
	updateClientHandler *command.UpdateClientWithUoWHandler
	updatePhotosHandler *command.UpdateClientPhotosWithUoWHandler
	deleteClientHandler *command.DeleteClientWithUoWHandler

	// Query handlers
	getClientHandler       *query.GetClientHandler
	listClientsHandler     *query.ListClientsHandler
	getByUserIDHandler     *query.GetClientByUserIDHandler
	getClientImagesHandler *query.GetClientImagesHandler
}

func NewClientService(
	createClientHandler *command.CreateClientWithUoWHandler,
	updateClientHandler *command.UpdateClientWithUoWHandler,
	updatePhotosHandler *command.UpdateClientPhotosWithUoWHandler,
	deleteClientHandler *command.DeleteClientWithUoWHandler,
	getClientHandler *query.GetClientHandler,
	listClientsHandler *query.ListClientsHandler,
	getByUserIDHandler *query.GetClientByUserIDHandler,
	getClientImagesHandler *query.GetClientImagesHandler,
) *ClientService {
	return &ClientService{
		createClientHandler:    createClientHandler,
		updateClientHandler:    updateClientHandler,
		updatePhotosHandler:    updatePhotosHandler,
		deleteClientHandler:    deleteClientHandler,
		getClientHandler:       getClientHandler,
		listClientsHandler:     listClientsHandler,
		getByUserIDHandler:     getByUserIDHandler,
		getClientImagesHandler: getClientImagesHandler,
	}
}

// Command operations
func (s *ClientService) CreateClient(ctx context.Context, cmd command.CreateClient) (*model.Client, error) {
	return s.createClientHandler.Handle(ctx, &cmd)
}

func (s *ClientService) UpdateClient(ctx context.Context, cmd command.UpdateClient) (*model.Client, error) {
	return s.updateClientHandler.Handle(ctx, &cmd)
}

func (s *ClientService) UpdateClientPhotos(ctx context.Context, cmd command.UpdateClientPhotos) (*model.Client, error) {
	return s.updatePhotosHandler.Handle(ctx, &cmd)
}

func (s *ClientService) DeleteClient(ctx context.Context, cmd command.DeleteClient) error {
	return s.deleteClientHandler.Handle(ctx, &cmd)
}

// Query operations
func (s *ClientService) GetClient(ctx context.Context, q query.GetClient) (*model.Client, error) {
	return s.getClientHandler.Handle(ctx, &q)
}

func (s *ClientService) ListClients(ctx context.Context) ([]*model.Client, error) {
	return s.listClientsHandler.Handle(ctx)
}

func (s *ClientService) GetClientByUserID(ctx context.Context, q query.GetClientByUserID) (*model.Client, error) {
	return s.getByUserIDHandler.Handle(ctx, &q)
}

func (s *ClientService) GetClientImages(ctx context.Context, q query.GetClientImages) (*query.ClientImages, error) {
	return s.getClientImagesHandler.Handle(ctx, &q)
}
