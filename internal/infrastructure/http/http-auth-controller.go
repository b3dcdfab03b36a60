package http

import (
	"encoding/json"
	"net/http"

	"planora/internal/application/command"
	"planora/internal/application/services"
	"planora/pkg/middleware"
	"planora/pkg/response"
)

// AuthController handles HTTP requests for account operations
type AuthController struct {
	service *services.UserService
}

// NewAuthController creates a new auth controller
func NewAuthController(service *services.UserService) *AuthController {
	return &AuthController{
		service: service,
	}
}

// Register handles POST /auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var cmd command.RegisterUser
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	user, err := c.service.Register(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendCreated(w, r, user)
}

// Login handles POST /auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var cmd command.LoginUser
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	result, err := c.service.Login(r.Context(), cmd)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, result)
}
