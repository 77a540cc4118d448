package handler

import (
	"net/http"
	"strconv"

	"itexe-marketplace-api/internal/service"
	"itexe-marketplace-api/pkg/apierror"
	"itexe-marketplace-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// NotificationHandler exposes the live notification queue.
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.notificationService.Active())
}

// Dismiss handles DELETE /api/v1/notifications/{id}
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apierror.BadRequest("invalid notification id"))
		return
	}

	h.notificationService.Dismiss(id)
	response.NoContent(w)
}
