package http

import (
	"net/http"

	"github.com/balapan-kz/go-storefront/internal/usecase"
	"github.com/balapan-kz/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

type catalogPageResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// listProducts возвращает страницу каталога по выбранным фильтрам.
// Пустой выбор фильтров дает полный каталог в порядке популярности.
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	query, err := parseCatalogQuery(r)
	if err != nil {
		h.logger.Warnf("%d bad catalog query: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	page := h.catalogUsecase.List(query)

	WriteSuccess(w, http.StatusOK, catalogPageResponse{
		Items:      toProductResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	})
}

type productDetailResponse struct {
	Product ProductResponse   `json:"product"`
	Related []ProductResponse `json:"related"`
}

// getProduct возвращает карточку товара со связанными товарами.
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	detail, err := h.catalogUsecase.ProductDetail(id)
	if err != nil {
		h.logger.Warnf("product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, productDetailResponse{
		Product: toProductResponse(detail.Product),
		Related: toProductResponses(detail.Related),
	})
}

type categoryResponse struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (h *CatalogHandler) listCategories(w http.ResponseWriter, _ *http.Request) {
	categories := h.catalogUsecase.Categories()

	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID, Icon: c.Icon, Color: c.Color})
	}
	WriteSuccess(w, http.StatusOK, out)
}

func (h *CatalogHandler) listBrands(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, h.catalogUsecase.Brands())
}

func (h *CatalogHandler) listAgeRanges(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, h.catalogUsecase.AgeRanges())
}
