// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/smartreturn/storefront-service/internal/repository"
)

type MockNotificationsRepositoryInterface struct {
	mock.Mock
}

func (m *MockNotificationsRepositoryInterface) Create(ctx context.Context, doc *repository.NotificationDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockNotificationsRepositoryInterface) Query(ctx context.Context, opts repository.NotificationQueryOptions) ([]*repository.NotificationDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.NotificationDocument), args.Error(1)
}

func (m *MockNotificationsRepositoryInterface) Count(ctx context.Context, opts repository.NotificationQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
