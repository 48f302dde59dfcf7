package converter

import "time"

// ClientStateModel — схема JSON-снимка состояния клиента в локальном
// хранилище. Формат терпим к отсутствию полей: нулевые значения означают
// состояние по умолчанию.
type ClientStateModel struct {
	Cart     []CartItemModel `json:"cart"`
	Wishlist []string        `json:"wishlist"`
	Language string          `json:"language"`
}

type CartItemModel struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderModel — схема JSON-представления заказа в локальном хранилище.
type OrderModel struct {
	ID          string           `json:"id"`
	Number      string           `json:"number"`
	CreatedAt   time.Time        `json:"created_at"`
	Status      string           `json:"status"`
	Customer    CustomerModel    `json:"customer"`
	Delivery    string           `json:"delivery"`
	Payment     string           `json:"payment"`
	Items       []OrderItemModel `json:"items"`
	Subtotal    int64            `json:"subtotal"`
	Discount    int64            `json:"discount"`
	DeliveryFee int64            `json:"delivery_fee"`
	Total       int64            `json:"total"`
}

type CustomerModel struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type OrderItemModel struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}
