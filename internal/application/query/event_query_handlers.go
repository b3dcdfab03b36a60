package query

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"planora/internal/application/images"
	"planora/internal/domain/model"
	"planora/internal/domain/repository"
	"planora/pkg/errors"
)

// Bound on concurrent per-event enrichment batches. Each batch fans out
// further inside the enricher, so this caps batches, not sockets.
const enrichConcurrency = 4

// ListEvents query. Published selects the public listing, UserID an owner's
// dashboard; exactly one shape is used per call.
type ListEvents struct {
	Published *bool
	UserID    string
}

// GetEventDetail query
type GetEventDetail struct {
	EventID string
}

// EnrichedEventView is a joined event view with its gallery resolved to
// binary content. Failed assets are dropped from listings.
type EnrichedEventView struct {
	*model.EventView
	ResolvedImages []images.Image `json:"resolved_images,omitempty"`
}

// EventsByTime is the partitioned listing response
type EventsByTime struct {
	Upcoming []*EnrichedEventView `json:"upcoming_events"`
	Past     []*EnrichedEventView `json:"past_events"`
}

// EnrichedItem pairs a joined item with its resolved images
type EnrichedItem struct {
	Item   *model.Item    `json:"item"`
	Images []images.Image `json:"images,omitempty"`
}

// EventDetail is the single-event response: the event document, its resolved
// gallery and the four service slots with their items and item images.
type EventDetail struct {
	Event      *model.Event   `json:"event"`
	Images     []images.Image `json:"images,omitempty"`
	Venue      *EnrichedItem  `json:"venue,omitempty"`
	Catering   *EnrichedItem  `json:"catering,omitempty"`
	Photograph *EnrichedItem  `json:"photograph,omitempty"`
	Decoration *EnrichedItem  `json:"decoration,omitempty"`
}

// ListEventsHandler handles the partitioned event listing
type ListEventsHandler struct {
	eventRepo repository.EventRepository
	enricher  *images.Enricher
	now       func() time.Time
}

// NewListEventsHandler creates a new list events handler
func NewListEventsHandler(eventRepo repository.EventRepository, enricher *images.Enricher) *ListEventsHandler {
	return &ListEventsHandler{
		eventRepo: eventRepo,
		enricher:  enricher,
		now:       time.Now,
	}
}

// Handle runs the aggregation, splits the views into upcoming and past by
// their latest scheduled date and resolves each view's gallery. Enrichment
// failures shrink a gallery, never the listing.
func (h *ListEventsHandler) Handle(ctx context.Context, q *ListEvents) (*EventsByTime, error) {
	views, err := h.eventRepo.ListViews(ctx, repository.EventFilter{
		Published: q.Published,
		UserID:    q.UserID,
	})
	if err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to list events: %v", err))
	}

	upcoming, past := model.PartitionEvents(views, h.now())

	enrichedUpcoming, err := h.enrichViews(ctx, upcoming)
	if err != nil {
		return nil, err
	}
	enrichedPast, err := h.enrichViews(ctx, past)
	if err != nil {
		return nil, err
	}

	return &EventsByTime{
		Upcoming: enrichedUpcoming,
		Past:     enrichedPast,
	}, nil
}

func (h *ListEventsHandler) enrichViews(ctx context.Context, views []*model.EventView) ([]*EnrichedEventView, error) {
	enriched := make([]*EnrichedEventView, len(views))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, view := range views {
		i, view := i, view
		g.Go(func() error {
			enriched[i] = &EnrichedEventView{
				EventView:      view,
				ResolvedImages: h.enricher.ResolveSuccessful(gctx, view.Images),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to enrich events: %v", err))
	}
	return enriched, nil
}

// GetEventDetailHandler handles the single-event query
type GetEventDetailHandler struct {
	eventRepo repository.EventRepository
	itemRepo  repository.ItemRepository
	enricher  *images.Enricher
}

// NewGetEventDetailHandler creates a new event detail handler
func NewGetEventDetailHandler(
	eventRepo repository.EventRepository,
	itemRepo repository.ItemRepository,
	enricher *images.Enricher,
) *GetEventDetailHandler {
	return &GetEventDetailHandler{
		eventRepo: eventRepo,
		itemRepo:  itemRepo,
		enricher:  enricher,
	}
}

// Handle loads one event with its four service slots joined and every gallery
// resolved. A missing event is a typed not-found, not an empty response. A
// referenced item that has meanwhile disappeared leaves its slot empty.
func (h *GetEventDetailHandler) Handle(ctx context.Context, q *GetEventDetail) (*EventDetail, error) {
	if q.EventID == "" {
		return nil, errors.NewValidationError("event_id is required")
	}

	evt, err := h.eventRepo.GetByID(ctx, q.EventID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("event")
		}
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load event: %v", err))
	}

	detail := &EventDetail{
		Event:  evt,
		Images: h.enricher.ResolveSuccessful(ctx, evt.Images),
	}

	type slot struct {
		itemID     string
		decoration bool
		target     **EnrichedItem
	}
	slots := []slot{
		{itemID: evt.VenueID, target: &detail.Venue},
		{itemID: evt.CateringID, target: &detail.Catering},
		{itemID: evt.PhotographID, target: &detail.Photograph},
		{itemID: evt.DecorationID, decoration: true, target: &detail.Decoration},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for _, s := range slots {
		if s.itemID == "" {
			continue
		}
		s := s
		g.Go(func() error {
			item, err := h.itemRepo.GetByID(gctx, s.itemID)
			if err != nil {
				if stderrors.Is(err, repository.ErrNotFound) {
					return nil
				}
				return err
			}

			// Decoration slots present their staging gallery, not the cover shots.
			names := item.Images
			if s.decoration {
				names = item.DecorationImages
			}
			*s.target = &EnrichedItem{
				Item:   item,
				Images: h.enricher.ResolveSuccessful(gctx, names),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.NewStoreError(fmt.Sprintf("failed to load event items: %v", err))
	}

	return detail, nil
}
