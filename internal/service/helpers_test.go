package service

import (
	"context"
	"sync"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

// captureNotifier records notifications for assertions.
type captureNotifier struct {
	mu     sync.Mutex
	events []model.Notification
}

func (c *captureNotifier) Notify(_ context.Context, n model.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, n)
}

func (c *captureNotifier) byEvent(event string) []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []model.Notification
	for _, n := range c.events {
		if n.Event == event {
			out = append(out, n)
		}
	}
	return out
}
