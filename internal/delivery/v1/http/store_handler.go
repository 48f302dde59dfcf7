package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/internal/i18n"
	"github.com/balapan-kz/go-storefront/internal/usecase"
	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/balapan-kz/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// StoreHandler — адаптер слоя представления к хранилищу состояния клиента.
// Мутации над отсутствующим товаром отвечают 200 с текущим состоянием:
// no-op, не ошибка. Единственное исключение — добавление в корзину
// неизвестного товара: сливать количество не с чем, это 404.
type StoreHandler struct {
	storeUsecase   usecase.StoreUC
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewStoreHandler(storeUsecase usecase.StoreUC, catalogUsecase usecase.CatalogUC, logger logger.Logger) *StoreHandler {
	return &StoreHandler{storeUsecase: storeUsecase, catalogUsecase: catalogUsecase, logger: logger}
}

type cartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total int64              `json:"total"`
	Count int                `json:"count"`
}

func (h *StoreHandler) cartResponse() cartResponse {
	state := h.storeUsecase.State()

	items := make([]cartItemResponse, 0, len(state.Cart))
	for _, line := range state.Cart {
		detail, err := h.catalogUsecase.ProductDetail(line.ProductID)
		if err != nil {
			// Позиция ссылается на неизвестный товар: в сумму она не
			// входит, в ответе ее тоже не показываем.
			continue
		}
		items = append(items, cartItemResponse{
			Product:  toProductResponse(detail.Product),
			Quantity: line.Quantity,
		})
	}

	return cartResponse{
		Items: items,
		Total: h.storeUsecase.CartTotal(),
		Count: h.storeUsecase.CartCount(),
	}
}

func (h *StoreHandler) getCart(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, h.cartResponse())
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (h *StoreHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	detail, err := h.catalogUsecase.ProductDetail(req.ProductID)
	if err != nil {
		if !errors.Is(err, e.ErrProductNotFound) {
			h.logger.Warnf("%s", err.Error())
		}
		WriteError(w, err)
		return
	}

	h.storeUsecase.AddToCart(r.Context(), detail.Product, req.Quantity)
	WriteSuccess(w, http.StatusOK, h.cartResponse())
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *StoreHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	// Хранилище не нормализует количество, граница количества — здесь.
	if req.Quantity < 1 {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	h.storeUsecase.UpdateQuantity(r.Context(), chi.URLParam(r, "productID"), req.Quantity)
	WriteSuccess(w, http.StatusOK, h.cartResponse())
}

func (h *StoreHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.storeUsecase.RemoveFromCart(r.Context(), chi.URLParam(r, "productID"))
	WriteSuccess(w, http.StatusOK, h.cartResponse())
}

func (h *StoreHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.storeUsecase.ClearCart(r.Context())
	WriteSuccess(w, http.StatusOK, h.cartResponse())
}

type wishlistResponse struct {
	ProductIDs []string          `json:"product_ids"`
	Products   []ProductResponse `json:"products"`
}

func (h *StoreHandler) getWishlist(w http.ResponseWriter, _ *http.Request) {
	state := h.storeUsecase.State()

	resp := wishlistResponse{ProductIDs: state.Wishlist, Products: []ProductResponse{}}
	if resp.ProductIDs == nil {
		resp.ProductIDs = []string{}
	}
	for _, id := range state.Wishlist {
		if detail, err := h.catalogUsecase.ProductDetail(id); err == nil {
			resp.Products = append(resp.Products, toProductResponse(detail.Product))
		}
	}

	WriteSuccess(w, http.StatusOK, resp)
}

type toggleWishlistResponse struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
}

func (h *StoreHandler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	h.storeUsecase.ToggleWishlist(r.Context(), id)
	WriteSuccess(w, http.StatusOK, toggleWishlistResponse{
		ProductID:  id,
		InWishlist: h.storeUsecase.IsInWishlist(id),
	})
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

type languageResponse struct {
	Language string `json:"language"`
}

func (h *StoreHandler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req setLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	lang, ok := domain.ParseLanguage(req.Language)
	if !ok {
		WriteError(w, e.Wrap(req.Language, e.ErrUnknownLanguage))
		return
	}

	h.storeUsecase.SetLanguage(r.Context(), lang)
	WriteSuccess(w, http.StatusOK, languageResponse{Language: string(lang)})
}

// getTranslations возвращает словарь интерфейсных строк для языка из пути.
func (h *StoreHandler) getTranslations(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "lang")

	lang, ok := domain.ParseLanguage(raw)
	if !ok {
		WriteError(w, e.Wrap(raw, e.ErrUnknownLanguage))
		return
	}

	WriteSuccess(w, http.StatusOK, i18n.Dictionary(lang))
}
