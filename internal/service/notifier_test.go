package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartreturn/storefront-service/internal/domain/model"
	"github.com/smartreturn/storefront-service/internal/mocks"
	"github.com/smartreturn/storefront-service/internal/repository"
)

func TestEventNotifier_PersistsNotification(t *testing.T) {
	repo := new(mocks.MockNotificationsRepositoryInterface)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.NotificationDocument) bool {
		return doc.Event == "cart.item_added" && doc.Level == "info" && doc.CartID == "c1"
	})).Return(nil).Once()

	notifier := NewEventNotifier(repo)
	notifier.Notify(context.Background(), model.Notification{
		Level:   model.NotifyInfo,
		Event:   "cart.item_added",
		Message: "Item added to cart",
		CartID:  "c1",
	})

	repo.AssertExpectations(t)
}

func TestEventNotifier_NilRepository(t *testing.T) {
	notifier := NewEventNotifier(nil)

	// Must not panic; the notification is still logged
	notifier.Notify(context.Background(), model.Notification{
		Level: model.NotifyWarn,
		Event: "cart.persist_failed",
	})
}

func TestAsyncNotifier_DeliversAll(t *testing.T) {
	inner := &captureNotifier{}
	an := NewAsyncNotifier(inner, AsyncNotifierConfig{
		BufferSize:     100,
		NumWorkers:     2,
		DeliverTimeout: time.Second,
	})

	for i := 0; i < 50; i++ {
		an.Notify(context.Background(), model.Notification{
			Level: model.NotifyInfo,
			Event: "checkout.settled",
		})
	}
	an.Stop()

	enqueued, dropped, delivered := an.Stats()
	assert.Equal(t, int64(50), enqueued)
	assert.Equal(t, int64(0), dropped)
	assert.Equal(t, int64(50), delivered)
	assert.Len(t, inner.byEvent("checkout.settled"), 50)
}

func TestAsyncNotifier_DropsWhenFull(t *testing.T) {
	// A single worker with a tiny buffer and a slow inner notifier forces
	// drops instead of blocking the caller.
	slow := slowNotifier{d: 50 * time.Millisecond}
	an := NewAsyncNotifier(slow, AsyncNotifierConfig{
		BufferSize:     1,
		NumWorkers:     1,
		DeliverTimeout: time.Second,
	})
	defer an.Stop()

	for i := 0; i < 20; i++ {
		an.Notify(context.Background(), model.Notification{Event: "e"})
	}

	_, dropped, _ := an.Stats()
	assert.Greater(t, dropped, int64(0))
}

func TestAsyncNotifier_NilInner(t *testing.T) {
	require.Nil(t, NewAsyncNotifier(nil, DefaultAsyncNotifierConfig()))
}

type slowNotifier struct {
	d time.Duration
}

func (s slowNotifier) Notify(context.Context, model.Notification) {
	time.Sleep(s.d)
}
