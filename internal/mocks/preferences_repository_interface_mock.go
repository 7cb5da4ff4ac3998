// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPreferencesRepositoryInterface struct {
	mock.Mock
}

func (m *MockPreferencesRepositoryInterface) SetTheme(ctx context.Context, ownerID, theme string) error {
	args := m.Called(ctx, ownerID, theme)
	return args.Error(0)
}

func (m *MockPreferencesRepositoryInterface) GetTheme(ctx context.Context, ownerID string) (string, error) {
	args := m.Called(ctx, ownerID)
	return args.String(0), args.Error(1)
}
