package query

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"planora/internal/application/images"
	"planora/internal/domain/model"
	"planora/internal/domain/repository"
	"planora/pkg/errors"
)

// GetItem query
type GetItem struct {
	ItemID string
}

// ListItemsByType query. TypeName is one of the four service categories.
type ListItemsByType struct {
	TypeName string
}

// ListItemsByClient query
type ListItemsByClient struct {
	ClientID string
}

// SearchAvailableItems query: items whose owning provider is free on every
// day of [Start, End].
type SearchAvailableItems struct {
	Start time.Time
	End   time.Time
}

// ItemsByType groups a search result by service category, every item with its
// gallery resolved
type ItemsByType struct {
	Venues      []*EnrichedItem `json:"venues"`
	Caterings   []*EnrichedItem `json:"caterings"`
	Photographs []*EnrichedItem `json:"photographs"`
	Decorations []*EnrichedItem `json:"decorations"`
}

// GetItemHandler handles the single-item query
type GetItemHandler struct {
	itemRepo repository.ItemRepository
	typeRepo repository.ServiceTypeRepository
	enricher *images.Enricher
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(
	itemRepo repository.ItemRepository,
	typeRepo repository.ServiceTypeRepository,
	enricher *images.Enricher,
) *GetItemHandler {
	return &GetItemHandler{
		itemRepo: itemRepo,
		typeRepo: typeRepo,
		enricher: enricher,
	}
}

// ItemDetail is the single-item response with the type name resolved and the
// gallery enriched
type ItemDetail struct {
	Item     *model.Item    `json:"item"`
	TypeName string         `json:"type_name"`
	Images   []images.Image `json:"images,omitempty"`
}

// Handle loads one item with its classification and resolved gallery.
// Decoration items present their staging gallery.
func (h *GetItemHandler) Handle(ctx context.Context, q *GetItem) (*ItemDetail, error) {
	if q.ItemID == "" {
		return nil, errors.NewValidationError("item_id is required")
	}

	item, err := h.itemRepo.GetByID(ctx, q.ItemID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("item")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load item: %v", err))
	}

	serviceType, err := h.typeRepo.GetByID(ctx, item.TypeID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("service type")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load service type: %v", err))
	}

	names := item.Images
	if serviceType.Name == model.TypeDecoration {
		names = item.DecorationImages
	}

	return &ItemDetail{
		Item:     item,
		TypeName: serviceType.Name,
		Images:   h.enricher.ResolveSuccessful(ctx, names),
	}, nil
}

// ListItemsByTypeHandler handles the per-category item listing
type ListItemsByTypeHandler struct {
	itemRepo repository.ItemRepository
	typeRepo repository.ServiceTypeRepository
}

// NewListItemsByTypeHandler creates a new list items by type handler
func NewListItemsByTypeHandler(
	itemRepo repository.ItemRepository,
	typeRepo repository.ServiceTypeRepository,
) *ListItemsByTypeHandler {
	return &ListItemsByTypeHandler{
		itemRepo: itemRepo,
		typeRepo: typeRepo,
	}
}

// Handle resolves the category name to its type id and lists its items
func (h *ListItemsByTypeHandler) Handle(ctx context.Context, q *ListItemsByType) ([]*model.Item, error) {
	if q.TypeName == "" {
		return nil, errors.NewValidationError("type name is required")
	}

	serviceType, err := h.typeRepo.FindByName(ctx, q.TypeName)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("service type")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load service type: %v", err))
	}

	items, err := h.itemRepo.FindByTypeID(ctx, serviceType.ID)
	if err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to list items: %v", err))
	}
	return items, nil
}

// ListItemsByClientHandler handles the provider's own item listing
type ListItemsByClientHandler struct {
	itemRepo repository.ItemRepository
	enricher *images.Enricher
}

// NewListItemsByClientHandler creates a new list items by client handler
func NewListItemsByClientHandler(itemRepo repository.ItemRepository, enricher *images.Enricher) *ListItemsByClientHandler {
	return &ListItemsByClientHandler{
		itemRepo: itemRepo,
		enricher: enricher,
	}
}

// Handle lists every item owned by the provider with its gallery resolved
func (h *ListItemsByClientHandler) Handle(ctx context.Context, q *ListItemsByClient) ([]*EnrichedItem, error) {
	if q.ClientID == "" {
		return nil, errors.NewValidationError("client_id is required")
	}

	items, err := h.itemRepo.FindByClientID(ctx, q.ClientID)
	if err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to list items: %v", err))
	}

	enriched := make([]*EnrichedItem, len(items))
	for i, item := range items {
		enriched[i] = &EnrichedItem{
			Item:   item,
			Images: h.enricher.ResolveSuccessful(ctx, item.Images),
		}
	}
	return enriched, nil
}

// SearchAvailableItemsHandler handles the date-range availability search
type SearchAvailableItemsHandler struct {
	itemRepo   repository.ItemRepository
	clientRepo repository.ClientRepository
	typeRepo   repository.ServiceTypeRepository
	enricher   *images.Enricher
}

// NewSearchAvailableItemsHandler creates a new availability search handler
func NewSearchAvailableItemsHandler(
	itemRepo repository.ItemRepository,
	clientRepo repository.ClientRepository,
	typeRepo repository.ServiceTypeRepository,
	enricher *images.Enricher,
) *SearchAvailableItemsHandler {
	return &SearchAvailableItemsHandler{
		itemRepo:   itemRepo,
		clientRepo: clientRepo,
		typeRepo:   typeRepo,
		enricher:   enricher,
	}
}

// Handle expands the range to normalized days, finds the providers booked on
// none of them and groups their items by category. A provider's availability
// list records the days they are already taken.
func (h *SearchAvailableItemsHandler) Handle(ctx context.Context, q *SearchAvailableItems) (*ItemsByType, error) {
	days, err := model.DayRange(q.Start, q.End)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	clients, err := h.clientRepo.FindAvailableOutside(ctx, days)
	if err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to search providers: %v", err))
	}
	if len(clients) == 0 {
		return &ItemsByType{}, nil
	}

	clientIDs := make([]string, len(clients))
	for i, c := range clients {
		clientIDs[i] = c.ID
	}

	items, err := h.itemRepo.FindByClientIDs(ctx, clientIDs)
	if err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to list items: %v", err))
	}

	typeNames, err := h.typeNamesByID(ctx)
	if err != nil {
		return nil, err
	}

	grouped := &ItemsByType{}
	for _, item := range items {
		typeName := typeNames[item.TypeID]
		names := item.Images
		if typeName == model.TypeDecoration {
			names = item.DecorationImages
		}
		enriched := &EnrichedItem{
			Item:   item,
			Images: h.enricher.ResolveSuccessful(ctx, names),
		}
		switch typeName {
		case model.TypeVenue:
			grouped.Venues = append(grouped.Venues, enriched)
		case model.TypeCatering:
			grouped.Caterings = append(grouped.Caterings, enriched)
		case model.TypePhotograph:
			grouped.Photographs = append(grouped.Photographs, enriched)
		case model.TypeDecoration:
			grouped.Decorations = append(grouped.Decorations, enriched)
		}
	}
	return grouped, nil
}

func (h *SearchAvailableItemsHandler) typeNamesByID(ctx context.Context) (map[string]string, error) {
	types, err := h.typeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load service types: %v", err))
	}
	names := make(map[string]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}
	return names, nil
}
