package handler

import (
	"fmt"
	"net/http"

	model "storefront-engine/internal/models"
	"storefront-engine/services/storefront/helpers"
	"storefront-engine/utils"

	"github.com/gin-gonic/gin"
)

type NotificationBrokerInterface interface {
	History(userID string) []model.Notification
	MarkRead(userID, notificationID string) error
	UnreadCount(userID string) int
}

type SessionReader interface {
	Current() model.Session
}

type NotificationHandler struct {
	broker  NotificationBrokerInterface
	session SessionReader
}

func NewNotificationHandler(broker NotificationBrokerInterface, session SessionReader) *NotificationHandler {
	return &NotificationHandler{broker: broker, session: session}
}

// GetNotificationsHandler handles GET /notifications for the current user
func (h *NotificationHandler) GetNotificationsHandler(c *gin.Context) {
	userID := h.session.Current().Identifier

	notifications := h.broker.History(userID)
	if notifications == nil {
		notifications = []model.Notification{}
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"notifications": notifications,
		"unread":        h.broker.UnreadCount(userID),
	}, "notifications retrieved successfully")
}

// MarkNotificationReadHandler handles POST /notifications/:id/read
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	userID := h.session.Current().Identifier
	notificationID := c.Param("id")

	if err := h.broker.MarkRead(userID, notificationID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MarkNotificationReadHandler: mark read failed", map[string]any{
			"notification_id": notificationID,
			"error":           err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "notification marked read")
	helpers.LogSuccess("MarkNotificationReadHandler", "notification marked read", map[string]any{
		"notification_id": notificationID,
	})
}
