package usecase

import (
	"context"
	"sync"

	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/pkg/logger"
)

// StoreUseCase хранит состояние клиента (корзина, избранное, язык) и
// сохраняет его в локальное хранилище после каждой мутации.
//
// Операции над отсутствующим товаром — no-op, а не ошибка. Проверку наличия
// товара на складе делает слой представления; хранилище ее не дублирует.
type StoreUseCase struct {
	mu      sync.Mutex
	state   domain.ClientState
	catalog CatalogRepository
	states  StateRepository
	logger  logger.Logger
}

// NewStoreUC создает хранилище состояния, восстанавливая снимок из
// локального хранилища. Отсутствие или повреждение снимка — не ошибка:
// приложение стартует с состоянием по умолчанию и работает дальше в памяти.
func NewStoreUC(ctx context.Context, catalog CatalogRepository, states StateRepository, logger logger.Logger) *StoreUseCase {
	state, err := states.Load(ctx)
	if err != nil {
		logger.Warnf("client state not restored, using defaults: %v", err)
		state = domain.DefaultClientState()
	}

	return &StoreUseCase{
		state:   state,
		catalog: catalog,
		states:  states,
		logger:  logger,
	}
}

// AddToCart добавляет товар в корзину. Если позиция с таким товаром уже
// есть, ее количество увеличивается на quantity вместо создания дубля.
func (s *StoreUseCase) AddToCart(ctx context.Context, product domain.Product, quantity int) {
	s.mutate(ctx, func(state *domain.ClientState) {
		for i, item := range state.Cart {
			if item.ProductID == product.ID {
				state.Cart[i].Quantity += quantity
				return
			}
		}
		state.Cart = append(state.Cart, domain.CartItem{ProductID: product.ID, Quantity: quantity})
	})
}

// RemoveFromCart удаляет позицию корзины. Отсутствующий товар — no-op.
func (s *StoreUseCase) RemoveFromCart(ctx context.Context, productID string) {
	s.mutate(ctx, func(state *domain.ClientState) {
		filtered := state.Cart[:0]
		for _, item := range state.Cart {
			if item.ProductID != productID {
				filtered = append(filtered, item)
			}
		}
		state.Cart = filtered
	})
}

// UpdateQuantity выставляет количество позиции. Значение не нормализуется:
// ноль и меньше не удаляют позицию, округление до >=1 — на вызывающей
// стороне. Отсутствующий товар — no-op.
func (s *StoreUseCase) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.mutate(ctx, func(state *domain.ClientState) {
		for i, item := range state.Cart {
			if item.ProductID == productID {
				state.Cart[i].Quantity = quantity
				return
			}
		}
	})
}

// ClearCart безусловно очищает корзину.
func (s *StoreUseCase) ClearCart(ctx context.Context) {
	s.mutate(ctx, func(state *domain.ClientState) {
		state.Cart = nil
	})
}

// ToggleWishlist переключает товар в избранном: есть — убрать, нет — добавить.
func (s *StoreUseCase) ToggleWishlist(ctx context.Context, productID string) {
	s.mutate(ctx, func(state *domain.ClientState) {
		if domain.InWishlist(state.Wishlist, productID) {
			filtered := state.Wishlist[:0]
			for _, id := range state.Wishlist {
				if id != productID {
					filtered = append(filtered, id)
				}
			}
			state.Wishlist = filtered
			return
		}
		state.Wishlist = append(state.Wishlist, productID)
	})
}

// IsInWishlist сообщает, находится ли товар в избранном.
func (s *StoreUseCase) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.InWishlist(s.state.Wishlist, productID)
}

// SetLanguage переключает язык интерфейса. Строки не кэшируются:
// все тексты переразрешаются по новому языку при следующем чтении.
func (s *StoreUseCase) SetLanguage(ctx context.Context, lang domain.Language) {
	s.mutate(ctx, func(state *domain.ClientState) {
		state.Language = lang
	})
}

// Language возвращает текущий язык интерфейса.
func (s *StoreUseCase) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Language
}

// State возвращает копию текущего состояния клиента.
func (s *StoreUseCase) State() domain.ClientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// CartTotal возвращает сумму корзины по текущим ценам каталога.
func (s *StoreUseCase) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartTotal(s.state.Cart, func(id string) (int64, bool) {
		product, ok := s.catalog.ProductByID(id)
		if !ok {
			return 0, false
		}
		return product.Price, true
	})
}

// CartCount возвращает суммарное количество товаров в корзине.
func (s *StoreUseCase) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartCount(s.state.Cart)
}

// mutate применяет изменение к копии состояния, подменяет текущее состояние
// и сохраняет снимок. Запись выполняется по принципу fire-and-forget:
// ошибка хранилища логируется, приложение продолжает работать в памяти.
func (s *StoreUseCase) mutate(ctx context.Context, apply func(state *domain.ClientState)) {
	s.mu.Lock()
	next := s.state.Clone()
	apply(&next)
	s.state = next
	snapshot := next.Clone()
	s.mu.Unlock()

	if err := s.states.Save(ctx, snapshot); err != nil {
		s.logger.Warnf("failed to persist client state: %v", err)
	}
}
