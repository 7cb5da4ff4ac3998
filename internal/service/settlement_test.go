package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedSettler_Settle(t *testing.T) {
	ctx := context.Background()
	req := SettlementRequest{OrderID: "o1", CartID: "c1", Amount: 1000}

	t.Run("succeeds with no failure rate", func(t *testing.T) {
		settler := NewSimulatedSettler(WithSettleDelay(0))
		assert.NoError(t, settler.Settle(ctx, req))
	})

	t.Run("always fails at rate one", func(t *testing.T) {
		settler := NewSimulatedSettler(WithSettleDelay(0), WithFailureRate(1))
		for i := 0; i < 10; i++ {
			assert.Error(t, settler.Settle(ctx, req))
		}
	})

	t.Run("honors context cancellation during the delay", func(t *testing.T) {
		settler := NewSimulatedSettler(WithSettleDelay(5 * time.Second))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := settler.Settle(cancelled, req)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
