package domain

import "time"

// OrderStatus — статус заказа.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// DeliveryMethod — способ доставки заказа.
type DeliveryMethod string

const (
	DeliveryCourier DeliveryMethod = "courier"
	DeliveryPickup  DeliveryMethod = "pickup"
)

// PaymentMethod — способ оплаты заказа.
type PaymentMethod string

const (
	PaymentCard  PaymentMethod = "card"
	PaymentKaspi PaymentMethod = "kaspi"
	PaymentCash  PaymentMethod = "cash"
)

// Customer — данные покупателя из формы оформления заказа.
type Customer struct {
	Name    string
	Phone   string
	Email   string
	City    string
	Address string
	Comment string
}

// OrderItem — позиция заказа. В отличие от корзины, цена фиксируется
// на момент оформления.
type OrderItem struct {
	ProductID string
	Name      string
	Price     int64
	Quantity  int
}

// Order — оформленный заказ.
type Order struct {
	ID          string
	Number      string
	CreatedAt   time.Time
	Status      OrderStatus
	Customer    Customer
	Delivery    DeliveryMethod
	Payment     PaymentMethod
	Items       []OrderItem
	Subtotal    int64
	Discount    int64
	DeliveryFee int64
	Total       int64
}
