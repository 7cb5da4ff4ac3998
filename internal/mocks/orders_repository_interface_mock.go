// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/smartreturn/storefront-service/internal/domain/model"
)

type MockOrdersRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrdersRepositoryInterface) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrdersRepositoryInterface) Get(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrdersRepositoryInterface) ListByBuyer(ctx context.Context, buyerEmail string, limit int) ([]model.Order, error) {
	args := m.Called(ctx, buyerEmail, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}
