package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"itexe-marketplace-api/internal/service"
	"itexe-marketplace-api/pkg/apierror"
	"itexe-marketplace-api/pkg/response"
)

// AuthHandler handles session-related HTTP requests.
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}

	if err := h.userService.Login(r.Context(), req.Password); err != nil {
		response.Error(w, apierror.Unauthorized("Invalid credentials"))
		return
	}

	response.OK(w, h.userService.Current())
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.userService.Logout(r.Context())
	response.OK(w, map[string]interface{}{"status": "logged_out"})
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON"))
		return
	}
	if req.Name == "" {
		response.Error(w, apierror.BadRequest("name is required"))
		return
	}

	user, err := h.userService.Register(r.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateName) {
			response.Error(w, apierror.Conflict("a user with this name already exists"))
			return
		}
		response.Error(w, err)
		return
	}

	response.Created(w, user)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	current := h.userService.Current()
	if current == nil {
		response.Error(w, apierror.Unauthorized("No active session"))
		return
	}
	response.OK(w, current)
}
