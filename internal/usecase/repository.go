package usecase

import (
	"context"

	"github.com/balapan-kz/go-storefront/internal/domain"
)

// CatalogRepository — поставщик статического набора товаров и категорий.
// Данные неизменяемы и загружаются один раз при старте.
type CatalogRepository interface {
	Products() []domain.Product
	ProductByID(id string) (domain.Product, bool)
	Categories() []domain.Category
}

// StateRepository — локальное хранилище снимка состояния клиента.
// Load возвращает e.ErrStateNotFound, если снимок еще не сохранялся.
type StateRepository interface {
	Load(ctx context.Context) (domain.ClientState, error)
	Save(ctx context.Context, state domain.ClientState) error
}

// OrderRepository — локальное хранилище оформленных заказов.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
}
