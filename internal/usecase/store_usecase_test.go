package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/internal/usecase"
	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Мяч", Price: 500, Category: "toys", Brand: "A", InStock: true},
		{ID: "p2", Name: "Кубики", Price: 100, Category: "toys", Brand: "B", InStock: true},
		{ID: "p3", Name: "Пирамидка", Price: 300, Category: "development", Brand: "A", InStock: true},
	}
}

func newTestStore(t *testing.T) (*usecase.StoreUseCase, *stubCatalog, *fakeStateRepo) {
	t.Helper()

	catalog := &stubCatalog{products: testProducts()}
	states := &fakeStateRepo{loadErr: e.ErrStateNotFound}
	store := usecase.NewStoreUC(context.Background(), catalog, states, nopLogger{})
	return store, catalog, states
}

func TestStoreAddToCart(t *testing.T) {
	t.Run("NewLineIncreasesCountAndTotal", func(t *testing.T) {
		store, catalog, _ := newTestStore(t)

		p2, _ := catalog.ProductByID("p2")
		store.AddToCart(context.Background(), p2, 1)

		assert.Equal(t, 1, store.CartCount())
		assert.Equal(t, int64(100), store.CartTotal())
	})

	t.Run("ExistingLineMergesQuantity", func(t *testing.T) {
		store, catalog, _ := newTestStore(t)
		p1, _ := catalog.ProductByID("p1")

		store.AddToCart(context.Background(), p1, 2)
		store.AddToCart(context.Background(), p1, 3)

		state := store.State()
		require.Len(t, state.Cart, 1, "no duplicate line for the same product")
		assert.Equal(t, 5, state.Cart[0].Quantity)
		assert.Equal(t, int64(2500), store.CartTotal())
	})

	t.Run("ScenarioTwoItemsAtHundred", func(t *testing.T) {
		store, catalog, _ := newTestStore(t)
		p2, _ := catalog.ProductByID("p2")

		store.AddToCart(context.Background(), p2, 2)

		assert.Equal(t, 2, store.CartCount())
		assert.Equal(t, int64(200), store.CartTotal())
	})
}

func TestStoreRemoveFromCart(t *testing.T) {
	store, catalog, _ := newTestStore(t)
	p1, _ := catalog.ProductByID("p1")
	store.AddToCart(context.Background(), p1, 1)

	t.Run("AbsentProductIsNoop", func(t *testing.T) {
		store.RemoveFromCart(context.Background(), "ghost")
		assert.Equal(t, 1, store.CartCount())
	})

	t.Run("RemovesLine", func(t *testing.T) {
		store.RemoveFromCart(context.Background(), "p1")
		assert.Equal(t, 0, store.CartCount())
	})
}

func TestStoreUpdateQuantity(t *testing.T) {
	t.Run("SetsValue", func(t *testing.T) {
		store, catalog, _ := newTestStore(t)
		p1, _ := catalog.ProductByID("p1")
		store.AddToCart(context.Background(), p1, 1)

		store.UpdateQuantity(context.Background(), "p1", 7)

		assert.Equal(t, 7, store.State().Cart[0].Quantity)
	})

	t.Run("ZeroDoesNotRemoveLine", func(t *testing.T) {
		store, catalog, _ := newTestStore(t)
		p1, _ := catalog.ProductByID("p1")
		store.AddToCart(context.Background(), p1, 1)

		store.UpdateQuantity(context.Background(), "p1", 0)

		state := store.State()
		require.Len(t, state.Cart, 1, "line stays, clamping is the caller's job")
		assert.Equal(t, 0, state.Cart[0].Quantity)
	})

	t.Run("AbsentProductIsNoop", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		store.UpdateQuantity(context.Background(), "ghost", 5)
		assert.Empty(t, store.State().Cart)
	})
}

func TestStoreClearCart(t *testing.T) {
	store, catalog, _ := newTestStore(t)
	p1, _ := catalog.ProductByID("p1")
	p2, _ := catalog.ProductByID("p2")
	store.AddToCart(context.Background(), p1, 1)
	store.AddToCart(context.Background(), p2, 4)

	store.ClearCart(context.Background())

	assert.Empty(t, store.State().Cart)
	assert.Equal(t, 0, store.CartCount())
	assert.Equal(t, int64(0), store.CartTotal())
}

func TestStoreWishlist(t *testing.T) {
	t.Run("ToggleAddsThenRemoves", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		store.ToggleWishlist(context.Background(), "p3")
		assert.True(t, store.IsInWishlist("p3"))

		store.ToggleWishlist(context.Background(), "p3")
		assert.False(t, store.IsInWishlist("p3"), "double toggle returns to the original state")
	})

	t.Run("MembershipIsBinary", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		store.ToggleWishlist(context.Background(), "p1")
		store.ToggleWishlist(context.Background(), "p2")

		assert.Len(t, store.State().Wishlist, 2)
	})
}

func TestStoreLanguage(t *testing.T) {
	store, _, _ := newTestStore(t)
	require.Equal(t, domain.LangRu, store.Language())

	store.SetLanguage(context.Background(), domain.LangKz)

	assert.Equal(t, domain.LangKz, store.Language())
}

func TestStoreCartTotalReprices(t *testing.T) {
	store, catalog, _ := newTestStore(t)
	p2, _ := catalog.ProductByID("p2")
	store.AddToCart(context.Background(), p2, 2)
	require.Equal(t, int64(200), store.CartTotal())

	// Цена меняется в каталоге — корзина переоценивается без повторного
	// добавления позиции.
	catalog.setPrice("p2", 250)

	assert.Equal(t, int64(500), store.CartTotal())
}

func TestStorePersistence(t *testing.T) {
	t.Run("EveryMutationSavesSnapshot", func(t *testing.T) {
		store, catalog, states := newTestStore(t)
		p1, _ := catalog.ProductByID("p1")

		store.AddToCart(context.Background(), p1, 1)
		store.ToggleWishlist(context.Background(), "p2")
		store.SetLanguage(context.Background(), domain.LangKz)

		require.Equal(t, 3, states.saveCount())
		last := states.lastSave()
		assert.Equal(t, domain.LangKz, last.Language)
		assert.Equal(t, []string{"p2"}, last.Wishlist)
		require.Len(t, last.Cart, 1)
		assert.Equal(t, "p1", last.Cart[0].ProductID)
	})

	t.Run("SaveErrorDoesNotLoseMutation", func(t *testing.T) {
		catalog := &stubCatalog{products: testProducts()}
		states := &fakeStateRepo{loadErr: e.ErrStateNotFound, saveErr: fmt.Errorf("disk full")}
		store := usecase.NewStoreUC(context.Background(), catalog, states, nopLogger{})

		p1, _ := catalog.ProductByID("p1")
		store.AddToCart(context.Background(), p1, 1)

		assert.Equal(t, 1, store.CartCount(), "state lives on in memory")
	})

	t.Run("RestoresSnapshotOnStart", func(t *testing.T) {
		catalog := &stubCatalog{products: testProducts()}
		states := &fakeStateRepo{loadResp: domain.ClientState{
			Cart:     []domain.CartItem{{ProductID: "p1", Quantity: 2}},
			Wishlist: []string{"p3"},
			Language: domain.LangKz,
		}}

		store := usecase.NewStoreUC(context.Background(), catalog, states, nopLogger{})

		assert.Equal(t, 2, store.CartCount())
		assert.True(t, store.IsInWishlist("p3"))
		assert.Equal(t, domain.LangKz, store.Language())
	})

	t.Run("CorruptSnapshotFallsBackToDefaults", func(t *testing.T) {
		catalog := &stubCatalog{products: testProducts()}
		states := &fakeStateRepo{loadErr: e.ErrStateCorrupted}

		store := usecase.NewStoreUC(context.Background(), catalog, states, nopLogger{})

		assert.Equal(t, 0, store.CartCount())
		assert.Empty(t, store.State().Wishlist)
		assert.Equal(t, domain.LangRu, store.Language())
	})
}

func TestStoreStateIsACopy(t *testing.T) {
	store, catalog, _ := newTestStore(t)
	p1, _ := catalog.ProductByID("p1")
	store.AddToCart(context.Background(), p1, 1)

	state := store.State()
	state.Cart[0].Quantity = 99

	assert.Equal(t, 1, store.State().Cart[0].Quantity)
}
