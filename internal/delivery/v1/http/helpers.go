package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/internal/usecase"
	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidPage):
		return http.StatusBadRequest, e.ErrInvalidPage.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusBadRequest, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrUnknownPromoCode):
		return http.StatusBadRequest, e.ErrUnknownPromoCode.Error()
	case errors.Is(err, e.ErrUnknownSortKey):
		return http.StatusBadRequest, e.ErrUnknownSortKey.Error()
	case errors.Is(err, e.ErrUnknownLanguage):
		return http.StatusBadRequest, e.ErrUnknownLanguage.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToTiyn конвертирует строку вида "4599.50" или "4600" (тенге)
// в int64 тиынов. Ошибка возвращается для:
// - нечислового значения
// - более двух знаков после запятой
// - отрицательного значения
// - значения свыше разумного предела (10^9 тенге)
func parsePriceToTiyn(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrInvalidPrice
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// parseCatalogQuery собирает выбор фильтров каталога из query-параметров.
// Параметры-множества (category, age, brand) принимаются и повторами,
// и списком через запятую.
func parseCatalogQuery(r *http.Request) (usecase.CatalogQuery, error) {
	values := r.URL.Query()
	query := usecase.CatalogQuery{
		Categories: parseSet(values["category"]),
		Ages:       parseSet(values["age"]),
		Brands:     parseSet(values["brand"]),
	}

	if raw := values.Get("price_min"); raw != "" {
		min, err := parsePriceToTiyn(raw)
		if err != nil {
			return usecase.CatalogQuery{}, err
		}
		query.PriceMin = min
	}

	if raw := values.Get("price_max"); raw != "" {
		max, err := parsePriceToTiyn(raw)
		if err != nil {
			return usecase.CatalogQuery{}, err
		}
		query.PriceMax = max
	}

	sort, ok := usecase.ParseSortKey(values.Get("sort"))
	if !ok {
		return usecase.CatalogQuery{}, e.Wrap(values.Get("sort"), e.ErrUnknownSortKey)
	}
	query.Sort = sort

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return usecase.CatalogQuery{}, e.Wrap(raw, e.ErrInvalidPage)
		}
		query.Page = page
	}

	return query, nil
}

func parseSet(raw []string) []string {
	var out []string
	for _, chunk := range raw {
		for _, v := range strings.Split(chunk, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

type ProductResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameKz        string   `json:"name_kz,omitempty"`
	Price         int64    `json:"price"`
	OldPrice      int64    `json:"old_price,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Category      string   `json:"category"`
	AgeRange      string   `json:"age_range"`
	Brand         string   `json:"brand"`
	Rating        float64  `json:"rating"`
	ReviewsCount  int      `json:"reviews_count"`
	InStock       bool     `json:"in_stock"`
	IsNew         bool     `json:"is_new,omitempty"`
	IsSale        bool     `json:"is_sale,omitempty"`
	Description   string   `json:"description,omitempty"`
	DescriptionKz string   `json:"description_kz,omitempty"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		NameKz:        p.NameKz,
		Price:         p.Price,
		OldPrice:      p.OldPrice,
		Image:         p.Image,
		Images:        p.Images,
		Category:      p.Category,
		AgeRange:      p.AgeRange,
		Brand:         p.Brand,
		Rating:        p.Rating,
		ReviewsCount:  p.ReviewsCount,
		InStock:       p.InStock,
		IsNew:         p.IsNew,
		IsSale:        p.IsSale,
		Description:   p.Description,
		DescriptionKz: p.DescriptionKz,
	}
}

func toProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
