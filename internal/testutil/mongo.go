//go:build integration

// Package testutil starts throwaway MongoDB containers for the repository
// and circuit-breaker integration tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoDBContainer wraps a running MongoDB testcontainer and its
// connection URI.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a MongoDB container and resolves its connection
// string. Callers own the container and must call Cleanup.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{
		Container: container,
		URI:       uri,
	}, nil
}

// Cleanup terminates the container. Safe on a nil or already-terminated
// wrapper.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}

var (
	sharedOnce sync.Once
	shared     *MongoDBContainer
	sharedErr  error
)

// GetSharedMongoDB starts one container for the whole package on first
// use. Pair with CleanupSharedMongoDB from TestMain when a package runs
// many container-backed tests.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = SetupMongoDB(ctx)
	})
	return shared, sharedErr
}

// CleanupSharedMongoDB terminates the shared container if one was started.
func CleanupSharedMongoDB(ctx context.Context) error {
	return shared.Cleanup(ctx)
}
