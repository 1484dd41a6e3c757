package pos_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rei_do_lanche_backend/internal/models"
	"rei_do_lanche_backend/internal/pos"
)

func cachedCollection[T any](t *testing.T, cache *pos.LocalCache, collection string) []T {
	t.Helper()
	raw, ok, err := cache.Get(fmt.Sprintf("reidolanche:%s:%s", testAccount, collection))
	require.NoError(t, err)
	require.True(t, ok, "collection %s not mirrored", collection)
	var records []T
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	return records
}

func TestStore_MirrorsWritesToLocalCache(t *testing.T) {
	store, _, cache := newTestStore(t)
	ctx := context.Background()

	ing := store.SaveIngredient(ctx, models.Ingredient{Name: "Buns", StockQuantity: 40})

	cached := cachedCollection[models.Ingredient](t, cache, models.CollectionIngredients)
	require.Len(t, cached, 1)
	assert.Equal(t, ing.ID, cached[0].ID)
	assert.Equal(t, "Buns", cached[0].Name)

	store.DeleteIngredient(ctx, ing.ID)
	cached = cachedCollection[models.Ingredient](t, cache, models.CollectionIngredients)
	assert.Empty(t, cached)
}

func TestStore_MirrorSurvivesRemoteFailure(t *testing.T) {
	store, remote, cache := newTestStore(t)
	remote.mu.Lock()
	remote.failWrites = true
	remote.mu.Unlock()

	store.SaveIngredient(context.Background(), models.Ingredient{Name: "Cheese"})

	cached := cachedCollection[models.Ingredient](t, cache, models.CollectionIngredients)
	assert.Len(t, cached, 1)
	assert.Equal(t, 0, remote.upsertCount(models.CollectionIngredients))
}

func TestStore_UpsertPushesToRemote(t *testing.T) {
	store, remote, _ := newTestStore(t)

	store.SaveIngredient(context.Background(), models.Ingredient{Name: "Cheese"})

	assert.Equal(t, 1, remote.upsertCount(models.CollectionIngredients))
}

func TestStore_SaveAssignsIDAndDefaults(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	ing := store.SaveIngredient(ctx, models.Ingredient{Name: "Buns"})
	assert.NotEmpty(t, ing.ID)
	assert.Equal(t, models.UnitEach, ing.Unit)
	assert.Equal(t, models.RevenueOther, ing.Category)

	p := store.SaveProduct(ctx, models.Product{Name: "Burger"})
	assert.NotEmpty(t, p.ID)
	assert.NotNil(t, p.Ingredients)
}

func TestStore_SaveReplacesByID(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	ing := store.SaveIngredient(ctx, models.Ingredient{Name: "Buns", StockQuantity: 10})
	ing.StockQuantity = 25
	store.SaveIngredient(ctx, ing)

	all := store.Ingredients()
	require.Len(t, all, 1)
	assert.InDelta(t, 25.0, all[0].StockQuantity, 1e-9)
}

func TestClearHistory_HidesWithoutDeleting(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, burgerID := seedBurgerShop(t, store)
	ctx := context.Background()

	_, err := store.ProcessOrder(ctx, burgerOrder(burgerID, 1))
	require.NoError(t, err)

	require.NoError(t, store.ClearHistory())

	assert.Empty(t, store.VisibleOrders())
	// The order itself still exists; clearing only hides it from the view.
	assert.Len(t, store.Orders(), 1)
}

func TestLocalCache_RoundTrip(t *testing.T) {
	cache, err := pos.OpenCache(":memory:")
	require.NoError(t, err)
	defer cache.Close()

	_, ok, err := cache.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set("k", "v1"))
	require.NoError(t, cache.Set("k", "v2"))

	value, ok, err := cache.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", value)

	require.NoError(t, cache.Delete("k"))
	_, ok, err = cache.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
