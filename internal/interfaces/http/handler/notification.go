package handler

import (
	"github.com/gin-gonic/gin"

	notificationapp "github.com/gymdesk/backend/internal/application/notification"
	"github.com/gymdesk/backend/internal/domain/notification"
)

// NotificationHandler handles member notification endpoints
type NotificationHandler struct {
	BaseHandler
	notificationService *notificationapp.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *notificationapp.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// NotifyRequest is the payload for a manual notification
type NotifyRequest struct {
	Type    notification.NotificationType `json:"type" binding:"required"`
	Title   string                        `json:"title"`
	Message string                        `json:"message" binding:"required"`
}

// Notify sends a notification to a member
// POST /api/v1/members/:id/notifications
func (h *NotificationHandler) Notify(c *gin.Context) {
	memberID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid notification request")
		return
	}

	resp, err := h.notificationService.Notify(c.Request.Context(), memberID, req.Type, req.Title, req.Message)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListForMember returns a member's notifications
// GET /api/v1/members/:id/notifications
func (h *NotificationHandler) ListForMember(c *gin.Context) {
	memberID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	notifications, err := h.notificationService.ListForMember(c.Request.Context(), memberID, parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notifications)
}

// CountUnread returns a member's unread notification count
// GET /api/v1/members/:id/notifications/unread
func (h *NotificationHandler) CountUnread(c *gin.Context) {
	memberID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	count, err := h.notificationService.CountUnread(c.Request.Context(), memberID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"unread": count})
}

// MarkRead marks a notification as read
// PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"read": true})
}
