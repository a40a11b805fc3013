package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	model "storefront-engine/internal/models"
	"storefront-engine/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// staticSession is a fixed-identity session reader for handler tests
type staticSession struct {
	identifier string
}

func (s staticSession) Current() model.Session {
	return model.Session{Kind: model.SessionAuthenticated, Identifier: s.identifier}
}

func newNotificationRouter(t *testing.T, userID string) (*gin.Engine, *notify.Broker) {
	broker := notify.NewBroker()
	t.Cleanup(broker.Close)
	h := NewNotificationHandler(broker, staticSession{identifier: userID})

	router := gin.New()
	router.GET("/notifications", h.GetNotificationsHandler)
	router.POST("/notifications/:id/read", h.MarkNotificationReadHandler)
	return router, broker
}

// Tests GET /notifications
func TestGetNotificationsHandler(t *testing.T) {
	t.Run("returns_current_users_history", func(t *testing.T) {
		router, broker := newNotificationRouter(t, "alice")

		broker.Publish("alice", "Your bid was countered", "s1", "p1")
		broker.Publish("bob", "not for alice", "s1", "p2")

		status, env := performRequest(t, router, http.MethodGet, "/notifications", nil)
		require.Equal(t, http.StatusOK, status)

		var resp struct {
			Notifications []model.Notification `json:"notifications"`
			Unread        int                  `json:"unread"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		require.Len(t, resp.Notifications, 1)
		require.Equal(t, "Your bid was countered", resp.Notifications[0].Message)
		require.Equal(t, 1, resp.Unread)
	})

	t.Run("no_history_serializes_as_empty_list", func(t *testing.T) {
		router, _ := newNotificationRouter(t, "alice")

		_, env := performRequest(t, router, http.MethodGet, "/notifications", nil)
		require.JSONEq(t, `{"notifications": [], "unread": 0}`, string(env.Data))
	})
}

// Tests POST /notifications/:id/read
func TestMarkNotificationReadHandler(t *testing.T) {
	t.Run("marks_own_notification", func(t *testing.T) {
		router, broker := newNotificationRouter(t, "alice")
		n := broker.Publish("alice", "Your bid was approved", "s1", "p1")

		status, env := performRequest(t, router, http.MethodPost, "/notifications/"+n.ID+"/read", nil)
		require.Equal(t, http.StatusOK, status)
		require.True(t, env.Success)
		require.Zero(t, broker.UnreadCount("alice"))
	})

	t.Run("unknown_notification", func(t *testing.T) {
		router, _ := newNotificationRouter(t, "alice")

		status, env := performRequest(t, router, http.MethodPost, "/notifications/missing/read", nil)
		require.Equal(t, http.StatusNotFound, status)
		require.False(t, env.Success)
	})

	t.Run("other_users_notification_is_invisible", func(t *testing.T) {
		router, broker := newNotificationRouter(t, "alice")
		n := broker.Publish("bob", "bob's news", "s1", "p1")

		status, _ := performRequest(t, router, http.MethodPost, "/notifications/"+n.ID+"/read", nil)
		require.Equal(t, http.StatusNotFound, status)
	})
}
