package usecase

import "github.com/balapan-kz/go-storefront/internal/domain"

// SortKey — ключ сортировки каталога.
type SortKey string

const (
	SortPopular   SortKey = "popular" // по числу отзывов, по умолчанию
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNew       SortKey = "new"
)

// ParseSortKey возвращает ключ сортировки по строковому коду.
// Пустая строка означает сортировку по умолчанию.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case "":
		return SortPopular, true
	case SortPopular, SortPriceAsc, SortPriceDesc, SortRating, SortNew:
		return SortKey(s), true
	}
	return "", false
}

// CatalogQuery — выбор фильтров каталога. Эфемерное состояние интерфейса,
// не сохраняется между сессиями.
type CatalogQuery struct {
	Categories []string
	Ages       []string
	Brands     []string
	PriceMin   int64
	PriceMax   int64 // 0 означает верхнюю границу по умолчанию
	Sort       SortKey
	Page       int // страницы нумеруются с единицы; 0 означает первую
	PageSize   int // 0 означает размер страницы по умолчанию
}

// CatalogPage — видимая страница каталога с итогами пагинации.
type CatalogPage struct {
	Items      []domain.Product
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// ProductDetail — карточка товара со связанными товарами той же категории.
type ProductDetail struct {
	Product domain.Product
	Related []domain.Product
}

// PlaceOrderReq — форма оформления заказа.
// Город и адрес обязательны для всех способов доставки, кроме самовывоза.
type PlaceOrderReq struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	City      string `json:"city" validate:"required_unless=Delivery pickup"`
	Address   string `json:"address" validate:"required_unless=Delivery pickup"`
	Comment   string `json:"comment"`
	Delivery  string `json:"delivery" validate:"required,oneof=courier pickup"`
	Payment   string `json:"payment" validate:"required,oneof=card kaspi cash"`
	PromoCode string `json:"promo_code"`
}
