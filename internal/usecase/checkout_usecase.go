package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/balapan-kz/go-storefront/internal/cfg"
	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/balapan-kz/go-storefront/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Промокоды магазина: код → доля скидки от подытога.
var promoCodes = map[string]decimal.Decimal{
	"kids10": decimal.NewFromFloat(0.10),
	"first":  decimal.NewFromFloat(0.15),
}

// CheckoutUseCase оформляет заказы: валидирует форму, считает доставку и
// скидку, фиксирует цены позиций и сохраняет заказ в локальное хранилище.
type CheckoutUseCase struct {
	store    StoreUC
	catalog  CatalogRepository
	orders   OrderRepository
	validate *validator.Validate
	cfg      *cfg.CheckoutCfg
	logger   logger.Logger
	now      func() time.Time
}

func NewCheckoutUC(
	store StoreUC,
	catalog CatalogRepository,
	orders OrderRepository,
	cfg *cfg.CheckoutCfg,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		store:    store,
		catalog:  catalog,
		orders:   orders,
		validate: validator.New(),
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// PlaceOrder оформляет заказ из текущей корзины.
//
// Цены позиций фиксируются на момент оформления — в отличие от живой
// корзины, заказ не переоценивается при изменении каталога. После успешного
// сохранения корзина очищается. Ошибка хранилища здесь не глотается:
// молча потерять заказ нельзя.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	if err := c.validate.Struct(req); err != nil {
		return nil, e.Wrap(op, e.Wrap(err.Error(), e.ErrMissingFields))
	}

	items, subtotal := c.snapshotCart()
	if len(items) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	discount, err := ApplyPromo(req.PromoCode, subtotal)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	delivery := domain.DeliveryMethod(req.Delivery)
	fee := c.DeliveryFee(delivery, subtotal)
	createdAt := c.now()

	order := &domain.Order{
		ID:        uuid.NewString(),
		Number:    orderNumber(createdAt),
		CreatedAt: createdAt,
		Status:    domain.OrderStatusProcessing,
		Customer: domain.Customer{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			City:    req.City,
			Address: req.Address,
			Comment: req.Comment,
		},
		Delivery:    delivery,
		Payment:     domain.PaymentMethod(req.Payment),
		Items:       items,
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: fee,
		Total:       subtotal - discount + fee,
	}

	if err := c.orders.Create(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.store.ClearCart(ctx)
	c.logger.Infof("order %s placed: %d item(s), total %d", order.Number, len(order.Items), order.Total)

	return order, nil
}

// Orders возвращает историю заказов, новые первыми.
func (c *CheckoutUseCase) Orders(ctx context.Context) ([]domain.Order, error) {
	const op = "CheckoutUseCase.Orders"

	orders, err := c.orders.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return orders, nil
}

// DeliveryFee возвращает стоимость доставки: самовывоз бесплатен,
// курьер бесплатен от порога FreeDeliveryAbove по подытогу.
func (c *CheckoutUseCase) DeliveryFee(method domain.DeliveryMethod, subtotal int64) int64 {
	if method == domain.DeliveryPickup {
		return 0
	}
	if subtotal >= c.cfg.FreeDeliveryAbove {
		return 0
	}
	return c.cfg.CourierFee
}

// ApplyPromo возвращает размер скидки в тиынах для промокода code.
// Пустой код — нет скидки; неизвестный код — e.ErrUnknownPromoCode.
// Регистр кода не учитывается.
func ApplyPromo(code string, subtotal int64) (int64, error) {
	if code == "" {
		return 0, nil
	}

	rate, ok := promoCodes[strings.ToLower(code)]
	if !ok {
		return 0, e.Wrap(code, e.ErrUnknownPromoCode)
	}

	discount := decimal.NewFromInt(subtotal).Mul(rate).Round(0)
	return discount.IntPart(), nil
}

// snapshotCart фиксирует позиции корзины по текущим ценам каталога.
// Название позиции берется на языке интерфейса на момент оформления.
// Позиции с неизвестным товаром пропускаются — так же, как при расчете
// суммы корзины.
func (c *CheckoutUseCase) snapshotCart() ([]domain.OrderItem, int64) {
	state := c.store.State()

	var (
		items    []domain.OrderItem
		subtotal int64
	)
	for _, line := range state.Cart {
		product, ok := c.catalog.ProductByID(line.ProductID)
		if !ok {
			c.logger.Warnf("cart references unknown product %s, skipping", line.ProductID)
			continue
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.DisplayName(state.Language),
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		subtotal += product.Price * int64(line.Quantity)
	}

	return items, subtotal
}

// orderNumber строит номер заказа вида KD-12345678 из последних восьми цифр
// времени оформления в миллисекундах.
func orderNumber(t time.Time) string {
	millis := fmt.Sprintf("%d", t.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return "KD-" + millis
}
