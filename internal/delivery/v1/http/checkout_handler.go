package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/internal/usecase"
	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/balapan-kz/go-storefront/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

type orderItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	Number      string              `json:"number"`
	CreatedAt   time.Time           `json:"created_at"`
	Status      string              `json:"status"`
	Delivery    string              `json:"delivery"`
	Payment     string              `json:"payment"`
	Items       []orderItemResponse `json:"items"`
	Subtotal    int64               `json:"subtotal"`
	Discount    int64               `json:"discount"`
	DeliveryFee int64               `json:"delivery_fee"`
	Total       int64               `json:"total"`
}

func toOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return orderResponse{
		ID:          order.ID,
		Number:      order.Number,
		CreatedAt:   order.CreatedAt,
		Status:      string(order.Status),
		Delivery:    string(order.Delivery),
		Payment:     string(order.Payment),
		Items:       items,
		Subtotal:    order.Subtotal,
		Discount:    order.Discount,
		DeliveryFee: order.DeliveryFee,
		Total:       order.Total,
	}
}

// placeOrder оформляет заказ из текущей корзины.
func (h *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req usecase.PlaceOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	order, err := h.checkoutUsecase.PlaceOrder(r.Context(), &req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// listOrders возвращает историю заказов, новые первыми.
func (h *CheckoutHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.checkoutUsecase.Orders(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	WriteSuccess(w, http.StatusOK, out)
}
