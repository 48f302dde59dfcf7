package usecase_test

import (
	"context"
	"sync"

	"github.com/balapan-kz/go-storefront/internal/domain"
)

// nopLogger отключает вывод логов в тестах.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// stubCatalog — каталог на фиксированном срезе товаров.
type stubCatalog struct {
	products   []domain.Product
	categories []domain.Category
}

func (s *stubCatalog) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *stubCatalog) ProductByID(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *stubCatalog) Categories() []domain.Category {
	return s.categories
}

// setPrice меняет цену товара в наборе — для проверки переоценки корзины.
func (s *stubCatalog) setPrice(id string, price int64) {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Price = price
			return
		}
	}
}

// fakeStateRepo — локальное хранилище состояния в памяти с управляемыми
// ошибками чтения и записи.
type fakeStateRepo struct {
	mu       sync.Mutex
	loadResp domain.ClientState
	loadErr  error
	saveErr  error
	saves    []domain.ClientState
}

func (f *fakeStateRepo) Load(context.Context) (domain.ClientState, error) {
	if f.loadErr != nil {
		return domain.ClientState{}, f.loadErr
	}
	return f.loadResp, nil
}

func (f *fakeStateRepo) Save(_ context.Context, state domain.ClientState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, state)
	return f.saveErr
}

func (f *fakeStateRepo) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}

func (f *fakeStateRepo) lastSave() domain.ClientState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves[len(f.saves)-1]
}

// fakeOrderRepo — хранилище заказов в памяти.
type fakeOrderRepo struct {
	createErr error
	orders    []domain.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) List(context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}
