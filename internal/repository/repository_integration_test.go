//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartreturn/storefront-service/internal/domain/model"
	"github.com/smartreturn/storefront-service/internal/repository"
	"github.com/smartreturn/storefront-service/internal/testutil"
)

func setupRepositoryDB(t *testing.T, ctx context.Context) *repository.MongoDB {
	t.Helper()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	})

	db, err := repository.NewMongoDB(mongoContainer.URI, "test_storefront_service")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(ctx)
	})

	return db
}

func TestCartsRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupRepositoryDB(t, ctx)
	repo := repository.NewCartsRepository(db)

	cart := &model.Cart{
		ID:        "01TESTCARTREPOSITORY000001",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	cart.AddOrIncrement(model.Item{ID: "1", Name: "Headphones", Price: 19999, Category: "Electronics"})
	cart.AddOrIncrement(model.Item{ID: "1", Name: "Headphones", Price: 19999, Category: "Electronics"})

	t.Run("save and get round trip", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, cart))

		loaded, err := repo.Get(ctx, cart.ID)
		require.NoError(t, err)
		assert.Equal(t, cart.ID, loaded.ID)
		require.Len(t, loaded.Lines, 1)
		assert.Equal(t, 2, loaded.Lines[0].Quantity)
		assert.Equal(t, model.Cents(19999), loaded.Lines[0].Item.Price)
	})

	t.Run("save is an upsert", func(t *testing.T) {
		cart.SetQuantity("1", 5)
		require.NoError(t, repo.Save(ctx, cart))

		loaded, err := repo.Get(ctx, cart.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, loaded.Lines[0].Quantity)
	})

	t.Run("get missing cart returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("delete removes the document", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, cart.ID))

		_, err := repo.Get(ctx, cart.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		// Deleting again is not an error
		assert.NoError(t, repo.Delete(ctx, cart.ID))
	})
}

func TestOrdersRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupRepositoryDB(t, ctx)
	repo := repository.NewOrdersRepository(db)

	newOrder := func(id string, createdAt time.Time) *model.Order {
		return &model.Order{
			ID:         id,
			CartID:     "01TESTCARTREPOSITORY000001",
			Total:      42997,
			Mode:       model.ModeSolo,
			BuyerName:  "Ada Lovelace",
			BuyerEmail: "ada@example.com",
			Split:      model.PaymentSplit{BuyerAmount: 42997},
			CreatedAt:  createdAt,
		}
	}

	t.Run("create and get round trip", func(t *testing.T) {
		order := newOrder("01TESTORDERREPOSITORY00001", time.Now())
		require.NoError(t, repo.Create(ctx, order))

		loaded, err := repo.Get(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.BuyerEmail, loaded.BuyerEmail)
		assert.Equal(t, model.Cents(42997), loaded.Total)
		assert.Equal(t, model.ModeSolo, loaded.Mode)
	})

	t.Run("get missing order returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("list by buyer sorts newest first", func(t *testing.T) {
		older := newOrder("01TESTORDERREPOSITORY00002", time.Now().Add(-time.Hour))
		newer := newOrder("01TESTORDERREPOSITORY00003", time.Now())
		require.NoError(t, repo.Create(ctx, older))
		require.NoError(t, repo.Create(ctx, newer))

		orders, err := repo.ListByBuyer(ctx, "ada@example.com", 0)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(orders), 2)
		assert.Equal(t, newer.ID, orders[0].ID)

		limited, err := repo.ListByBuyer(ctx, "ada@example.com", 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)

		none, err := repo.ListByBuyer(ctx, "nobody@example.com", 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestPreferencesRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupRepositoryDB(t, ctx)
	repo := repository.NewPreferencesRepository(db)

	t.Run("set and get round trip", func(t *testing.T) {
		require.NoError(t, repo.SetTheme(ctx, "owner-1", "dark"))

		theme, err := repo.GetTheme(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, "dark", theme)
	})

	t.Run("set is an upsert", func(t *testing.T) {
		require.NoError(t, repo.SetTheme(ctx, "owner-1", "light"))

		theme, err := repo.GetTheme(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, "light", theme)
	})

	t.Run("unknown owner returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetTheme(ctx, "owner-unknown")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestNotificationsRepository_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupRepositoryDB(t, ctx)
	repo := repository.NewNotificationsRepository(db)

	docs := []*repository.NotificationDocument{
		{Level: "info", Event: "cart.item_added", Message: "Item added to cart", CartID: "c1"},
		{Level: "info", Event: "checkout.settled", Message: "Your order has been placed successfully!", CartID: "c1"},
		{Level: "error", Event: "checkout.failed", Message: "Something went wrong. Please try again.", CartID: "c2"},
	}
	for _, doc := range docs {
		require.NoError(t, repo.Create(ctx, doc))
		assert.False(t, doc.ID.IsZero())
		assert.False(t, doc.Timestamp.IsZero())
	}

	t.Run("query by cart", func(t *testing.T) {
		found, err := repo.Query(ctx, repository.NotificationQueryOptions{CartID: "c1"})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("query by level and event", func(t *testing.T) {
		found, err := repo.Query(ctx, repository.NotificationQueryOptions{Level: "error"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "checkout.failed", found[0].Event)

		found, err = repo.Query(ctx, repository.NotificationQueryOptions{Event: "checkout.settled"})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("query honors limit", func(t *testing.T) {
		found, err := repo.Query(ctx, repository.NotificationQueryOptions{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("count matches filter", func(t *testing.T) {
		count, err := repo.Count(ctx, repository.NotificationQueryOptions{CartID: "c1"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
