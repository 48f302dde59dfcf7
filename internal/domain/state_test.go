package domain_test

import (
	"testing"

	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceTable(prices map[string]int64) func(string) (int64, bool) {
	return func(id string) (int64, bool) {
		p, ok := prices[id]
		return p, ok
	}
}

func TestCartCount(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		assert.Equal(t, 0, domain.CartCount(nil))
	})

	t.Run("SumsQuantitiesNotLines", func(t *testing.T) {
		cart := []domain.CartItem{
			{ProductID: "a", Quantity: 2},
			{ProductID: "b", Quantity: 3},
		}
		assert.Equal(t, 5, domain.CartCount(cart))
	})
}

func TestCartTotal(t *testing.T) {
	prices := map[string]int64{"a": 100, "b": 300}

	t.Run("EmptyCart", func(t *testing.T) {
		assert.Equal(t, int64(0), domain.CartTotal(nil, priceTable(prices)))
	})

	t.Run("PriceTimesQuantity", func(t *testing.T) {
		cart := []domain.CartItem{
			{ProductID: "a", Quantity: 2},
			{ProductID: "b", Quantity: 1},
		}
		assert.Equal(t, int64(500), domain.CartTotal(cart, priceTable(prices)))
	})

	t.Run("UsesCurrentPriceNotSnapshot", func(t *testing.T) {
		cart := []domain.CartItem{{ProductID: "a", Quantity: 2}}

		mutable := map[string]int64{"a": 100}
		require.Equal(t, int64(200), domain.CartTotal(cart, priceTable(mutable)))

		mutable["a"] = 150
		assert.Equal(t, int64(300), domain.CartTotal(cart, priceTable(mutable)))
	})

	t.Run("UnknownProductSkipped", func(t *testing.T) {
		cart := []domain.CartItem{
			{ProductID: "a", Quantity: 1},
			{ProductID: "ghost", Quantity: 10},
		}
		assert.Equal(t, int64(100), domain.CartTotal(cart, priceTable(prices)))
	})
}

func TestInWishlist(t *testing.T) {
	wishlist := []string{"a", "b"}

	assert.True(t, domain.InWishlist(wishlist, "a"))
	assert.False(t, domain.InWishlist(wishlist, "c"))
	assert.False(t, domain.InWishlist(nil, "a"))
}

func TestClientStateClone(t *testing.T) {
	state := domain.ClientState{
		Cart:     []domain.CartItem{{ProductID: "a", Quantity: 1}},
		Wishlist: []string{"b"},
		Language: domain.LangKz,
	}

	clone := state.Clone()
	clone.Cart[0].Quantity = 99
	clone.Wishlist[0] = "zzz"

	assert.Equal(t, 1, state.Cart[0].Quantity)
	assert.Equal(t, "b", state.Wishlist[0])
	assert.Equal(t, domain.LangKz, clone.Language)
}

func TestParseLanguage(t *testing.T) {
	for _, valid := range []string{"ru", "kz"} {
		lang, ok := domain.ParseLanguage(valid)
		require.True(t, ok)
		assert.Equal(t, valid, string(lang))
	}

	_, ok := domain.ParseLanguage("en")
	assert.False(t, ok)
}
