package notify

import (
	"fmt"
	"sync"
	"time"

	model "storefront-engine/internal/models"
	"storefront-engine/internal/storeerrors"
	"storefront-engine/utils"
)

// Broker delivers asynchronous events to subscribers keyed by user
// identity. It replaces the global broadcaster singleton with an owned
// value: subscribe returns an unsubscribe function, and Close tears the
// whole broker down. Delivered notifications are also retained per user so
// history survives a subscriber coming and going.
type Broker struct {
	mu        sync.RWMutex
	closed    bool
	nextSub   int
	listeners map[string]map[int]func(model.Notification)
	history   map[string][]model.Notification // key: userID -> delivered notifications
}

// NewBroker creates a new notification broker
func NewBroker() *Broker {
	return &Broker{
		listeners: make(map[string]map[int]func(model.Notification)),
		history:   make(map[string][]model.Notification),
	}
}

// Subscribe registers a handler for a user's notifications and returns the
// matching unsubscribe function. Subscribing on a closed broker returns a
// no-op unsubscribe.
func (b *Broker) Subscribe(userID string, handler func(model.Notification)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return func() {}
	}

	id := b.nextSub
	b.nextSub++
	if b.listeners[userID] == nil {
		b.listeners[userID] = make(map[int]func(model.Notification))
	}
	b.listeners[userID][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if subs, ok := b.listeners[userID]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(b.listeners, userID)
			}
		}
	}
}

// Publish records a notification for a user and fans it out to the user's
// current subscribers
func (b *Broker) Publish(userID, message string, storeID, productID string) model.Notification {
	n := model.Notification{
		ID:        utils.GenerateID(),
		UserID:    userID,
		Message:   message,
		Timestamp: time.Now().UTC(),
		StoreID:   storeID,
		ProductID: productID,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return n
	}
	b.history[userID] = append(b.history[userID], n)
	handlers := make([]func(model.Notification), 0, len(b.listeners[userID]))
	for _, h := range b.listeners[userID] {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(n)
	}
	return n
}

// History returns a user's notifications, newest last
func (b *Broker) History(userID string) []model.Notification {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]model.Notification(nil), b.history[userID]...)
}

// MarkRead marks a notification read. Read is monotonic: marking an
// already-read notification is a no-op.
func (b *Broker) MarkRead(userID, notificationID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, n := range b.history[userID] {
		if n.ID == notificationID {
			b.history[userID][i].Read = true
			return nil
		}
	}
	return fmt.Errorf("notify: mark read %s for user %s: %w", notificationID, userID, storeerrors.ErrNotFound)
}

// UnreadCount returns how many of a user's notifications are unread
func (b *Broker) UnreadCount(userID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	count := 0
	for _, n := range b.history[userID] {
		if !n.Read {
			count++
		}
	}
	return count
}

// Close drops all subscribers and rejects further publishes
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.listeners = make(map[string]map[int]func(model.Notification))
}
