package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"planora/internal/application/command"
	"planora/internal/application/query"
	"planora/internal/application/services"
	"planora/pkg/middleware"
	"planora/pkg/response"
)

// ClientController handles HTTP requests for provider profile operations
type ClientController struct {
	service *services.ClientService
}

// NewClientController creates a new client controller
func NewClientController(service *services.ClientService) *ClientController {
	return &ClientController{
		service: service,
	}
}

// CreateClient handles POST /clients
func (c *ClientController) CreateClient(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateClient
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	// The profile belongs to the authenticated account.
	if userID := middleware.GetUserID(r.Context()); userID != "" {
		cmd.UserID = userID
	}

	client, err := c.service.CreateClient(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, client)
}

// UpdateClient handles PUT /clients/{id}
func (c *ClientController) UpdateClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		response.SendBadRequest(w, r, "Client ID is required")
		return
	}

	var cmd command.UpdateClient
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.ClientID = clientID

	client, err := c.service.UpdateClient(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, client)
}

// UpdateClientPhotos handles PUT /clients/{id}/photos
func (c *ClientController) UpdateClientPhotos(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		response.SendBadRequest(w, r, "Client ID is required")
		return
	}

	var cmd command.UpdateClientPhotos
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.ClientID = clientID

	client, err := c.service.UpdateClientPhotos(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, client)
}

// DeleteClient handles DELETE /clients/{id}
func (c *ClientController) DeleteClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		response.SendBadRequest(w, r, "Client ID is required")
		return
	}

	if err := c.service.DeleteClient(r.Context(), command.DeleteClient{ClientID: clientID}); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, map[string]string{"deleted": clientID})
}

// GetClient handles GET /clients/{id}
func (c *ClientController) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		response.SendBadRequest(w, r, "Client ID is required")
		return
	}

	client, err := c.service.GetClient(r.Context(), query.GetClient{ClientID: clientID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, client)
}

// ListClients handles GET /clients
func (c *ClientController) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := c.service.ListClients(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, clients)
}

// GetMyClientProfile handles GET /clients/me
func (c *ClientController) GetMyClientProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.SendUnauthorized(w, r, "Authentication required")
		return
	}

	client, err := c.service.GetClientByUserID(r.Context(), query.GetClientByUserID{UserID: userID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, client)
}

// GetClientImages handles GET /clients/{id}/images
func (c *ClientController) GetClientImages(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	if clientID == "" {
		response.SendBadRequest(w, r, "Client ID is required")
		return
	}

	images, err := c.service.GetClientImages(r.Context(), query.GetClientImages{ClientID: clientID})
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, images)
}
