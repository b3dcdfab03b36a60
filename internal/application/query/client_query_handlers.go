package query

import (
	"context"
	stderrors "errors"
	"fmt"

	"planora/internal/application/images"
	"planora/internal/domain/model"
	"planora/internal/domain/repository"
	"planora/pkg/errors"
)

// GetClient query
type GetClient struct {
	ClientID string
}

// GetClientByUserID query
type GetClientByUserID struct {
	UserID string
}

// GetClientImages query
type GetClientImages struct {
	ClientID string
}

// ClientImages is the portfolio resolution result. Failures are reported
// alongside successes so the owner can see which assets are broken.
type ClientImages struct {
	Successful []images.Image `json:"successful"`
	Failed     []images.Image `json:"failed,omitempty"`
}

// GetClientHandler handles the single-client query
type GetClientHandler struct {
	clientRepo repository.ClientRepository
}

// NewGetClientHandler creates a new get client handler
func NewGetClientHandler(clientRepo repository.ClientRepository) *GetClientHandler {
	return &GetClientHandler{clientRepo: clientRepo}
}

// Handle loads one provider profile
func (h *GetClientHandler) Handle(ctx context.Context, q *GetClient) (*model.Client, error) {
	if q.ClientID == "" {
		return nil, errors.NewValidationError("client_id is required")
	}

	client, err := h.clientRepo.GetByID(ctx, q.ClientID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("client")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load client: %v", err))
	}
	return client, nil
}

// ListClientsHandler handles the provider directory query
type ListClientsHandler struct {
	clientRepo repository.ClientRepository
}

// NewListClientsHandler creates a new list clients handler
func NewListClientsHandler(clientRepo repository.ClientRepository) *ListClientsHandler {
	return &ListClientsHandler{clientRepo: clientRepo}
}

// Handle lists every provider profile
func (h *ListClientsHandler) Handle(ctx context.Context) ([]*model.Client, error) {
	clients, err := h.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to list clients: %v", err))
	}
	return clients, nil
}

// GetClientByUserIDHandler resolves the provider profile of an account
type GetClientByUserIDHandler struct {
	clientRepo repository.ClientRepository
}

// NewGetClientByUserIDHandler creates a new get client by user handler
func NewGetClientByUserIDHandler(clientRepo repository.ClientRepository) *GetClientByUserIDHandler {
	return &GetClientByUserIDHandler{clientRepo: clientRepo}
}

// Handle loads the provider profile owned by the given account
func (h *GetClientByUserIDHandler) Handle(ctx context.Context, q *GetClientByUserID) (*model.Client, error) {
	if q.UserID == "" {
		return nil, errors.NewValidationError("user_id is required")
	}

	client, err := h.clientRepo.FindByUserID(ctx, q.UserID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("client")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load client: %v", err))
	}
	return client, nil
}

// GetClientImagesHandler resolves a provider's portfolio gallery
type GetClientImagesHandler struct {
	clientRepo repository.ClientRepository
	enricher   *images.Enricher
}

// NewGetClientImagesHandler creates a new client images handler
func NewGetClientImagesHandler(
	clientRepo repository.ClientRepository,
	enricher *images.Enricher,
) *GetClientImagesHandler {
	return &GetClientImagesHandler{
		clientRepo: clientRepo,
		enricher:   enricher,
	}
}

// Handle resolves the portfolio, keeping failed lookups visible
func (h *GetClientImagesHandler) Handle(ctx context.Context, q *GetClientImages) (*ClientImages, error) {
	if q.ClientID == "" {
		return nil, errors.NewValidationError("client_id is required")
	}

	client, err := h.clientRepo.GetByID(ctx, q.ClientID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("client")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load client: %v", err))
	}

	successful, failed := images.Split(h.enricher.Resolve(ctx, client.BestWork))
	return &ClientImages{
		Successful: successful,
		Failed:     failed,
	}, nil
}
