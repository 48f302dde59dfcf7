package usecase

import (
	"context"

	"github.com/balapan-kz/go-storefront/internal/domain"
)

// StoreUC — единственный источник истины для корзины, избранного и языка.
type StoreUC interface {
	AddToCart(ctx context.Context, product domain.Product, quantity int)
	RemoveFromCart(ctx context.Context, productID string)
	UpdateQuantity(ctx context.Context, productID string, quantity int)
	ClearCart(ctx context.Context)
	ToggleWishlist(ctx context.Context, productID string)
	IsInWishlist(productID string) bool
	SetLanguage(ctx context.Context, lang domain.Language)
	Language() domain.Language
	State() domain.ClientState
	CartTotal() int64
	CartCount() int
}

// CatalogUC — модель представления каталога: фильтрация, сортировка,
// пагинация и карточки товаров.
type CatalogUC interface {
	List(query CatalogQuery) CatalogPage
	ProductDetail(id string) (*ProductDetail, error)
	Categories() []domain.Category
	Brands() []string
	AgeRanges() []string
}

// CheckoutUC — оформление заказа и история заказов.
type CheckoutUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error)
	Orders(ctx context.Context) ([]domain.Order, error)
}
