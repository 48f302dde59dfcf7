// Package converter преобразует доменные типы в модели локального
// хранилища и обратно.
package converter

import "github.com/balapan-kz/go-storefront/internal/domain"

// ToStateModel преобразует доменное состояние клиента в модель хранилища.
func ToStateModel(state domain.ClientState) ClientStateModel {
	model := ClientStateModel{
		Wishlist: state.Wishlist,
		Language: string(state.Language),
	}
	for _, item := range state.Cart {
		model.Cart = append(model.Cart, CartItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return model
}

// ToDomainState восстанавливает доменное состояние из модели хранилища.
// Неизвестный код языка откатывается на русский.
func ToDomainState(model ClientStateModel) domain.ClientState {
	state := domain.ClientState{Wishlist: model.Wishlist}

	lang, ok := domain.ParseLanguage(model.Language)
	if !ok {
		lang = domain.LangRu
	}
	state.Language = lang

	for _, item := range model.Cart {
		state.Cart = append(state.Cart, domain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return state
}

// ToOrderModel преобразует заказ в модель хранилища.
func ToOrderModel(order *domain.Order) OrderModel {
	model := OrderModel{
		ID:        order.ID,
		Number:    order.Number,
		CreatedAt: order.CreatedAt,
		Status:    string(order.Status),
		Customer: CustomerModel{
			Name:    order.Customer.Name,
			Phone:   order.Customer.Phone,
			Email:   order.Customer.Email,
			City:    order.Customer.City,
			Address: order.Customer.Address,
			Comment: order.Customer.Comment,
		},
		Delivery:    string(order.Delivery),
		Payment:     string(order.Payment),
		Subtotal:    order.Subtotal,
		Discount:    order.Discount,
		DeliveryFee: order.DeliveryFee,
		Total:       order.Total,
	}
	for _, item := range order.Items {
		model.Items = append(model.Items, OrderItemModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return model
}

// ToDomainOrder восстанавливает заказ из модели хранилища.
func ToDomainOrder(model OrderModel) domain.Order {
	order := domain.Order{
		ID:        model.ID,
		Number:    model.Number,
		CreatedAt: model.CreatedAt,
		Status:    domain.OrderStatus(model.Status),
		Customer: domain.Customer{
			Name:    model.Customer.Name,
			Phone:   model.Customer.Phone,
			Email:   model.Customer.Email,
			City:    model.Customer.City,
			Address: model.Customer.Address,
			Comment: model.Customer.Comment,
		},
		Delivery:    domain.DeliveryMethod(model.Delivery),
		Payment:     domain.PaymentMethod(model.Payment),
		Subtotal:    model.Subtotal,
		Discount:    model.Discount,
		DeliveryFee: model.DeliveryFee,
		Total:       model.Total,
	}
	for _, item := range model.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return order
}
