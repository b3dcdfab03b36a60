package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"planora/internal/application/command"
	"planora/internal/application/query"
	"planora/internal/application/services"
	"planora/pkg/middleware"
	"planora/pkg/response"
)

// ItemController handles HTTP requests for service-offering operations
type ItemController struct {
	service *services.ItemService
}

// NewItemController creates a new item controller
func NewItemController(service *services.ItemService) *ItemController {
	return &ItemController{
		service: service,
	}
}

// CreateItem handles POST /items
func (c *ItemController) CreateItem(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateItem
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	item, err := c.service.CreateItem(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, item)
}

// EditItem handles PUT /items/{id}
func (c *ItemController) EditItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		response.SendBadRequest(w, r, "Item ID is required")
		return
	}

	var cmd command.EditItem
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.ItemID = itemID

	item, err := c.service.EditItem(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, item)
}

// DeleteItem handles DELETE /items/{id}
func (c *ItemController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		response.SendBadRequest(w, r, "Item ID is required")
		return
	}

	if err := c.service.DeleteItem(r.Context(), command.DeleteItem{ItemID: itemID}); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]string{"deleted": itemID})
}

// GetItem handles GET /items/{id}
func (c *ItemController) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		response.SendBadRequest(w, r, "Item ID is required")
		return
	}

	detail, err := c.service.GetItem(r.Context(), query.GetItem{ItemID: itemID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, detail)
}

// ListItemsByType handles GET /items/type/{typeName}
func (c *ItemController) ListItemsByType(w http.ResponseWriter, r *http.Request) {
	typeName := chi.URLParam(r, "typeName")
	if typeName == "" {
		response.SendBadRequest(w, r, "Type name is required")
		return
	}

	items, err := c.service.ListItemsByType(r.Context(), query.ListItemsByType{TypeName: typeName})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, items)
}

// ListClientItems handles GET /clients/{id}/items
func (c *ItemController) ListClientItems(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		response.SendBadRequest(w, r, "Client ID is required")
		return
	}

	items, err := c.service.ListItemsByClient(r.Context(), query.ListItemsByClient{ClientID: clientID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, items)
}

// SearchAvailableItems handles GET /items/available?start=...&end=...
func (c *ItemController) SearchAvailableItems(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		response.SendBadRequest(w, r, "Invalid start date, expected RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		response.SendBadRequest(w, r, "Invalid end date, expected RFC3339")
		return
	}

	items, err := c.service.SearchAvailableItems(r.Context(), query.SearchAvailableItems{Start: start, End: end})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, items)
}
