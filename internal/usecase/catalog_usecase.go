package usecase

import (
	"sort"
	"strings"

	"github.com/balapan-kz/go-storefront/internal/cfg"
	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/pkg/e"
)

// ageRanges — фиксированные возрастные диапазоны фильтра каталога.
var ageRanges = []string{"0-1", "1-3", "3-6", "6-10", "10-14"}

const relatedLimit = 4

// CatalogUseCase строит видимую страницу каталога из статического набора
// товаров и текущего выбора фильтров. Чистая функция входных данных:
// скрытого состояния нет, результат пересчитывается на каждый запрос.
type CatalogUseCase struct {
	catalog CatalogRepository
	cfg     *cfg.CatalogCfg
}

func NewCatalogUC(catalog CatalogRepository, cfg *cfg.CatalogCfg) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, cfg: cfg}
}

// List применяет фильтры, сортировку и пагинацию к полному списку товаров.
// Пустые наборы фильтров пропускают все; внутри одного измерения — ИЛИ,
// между измерениями — И. Некорректный диапазон цены (min > max) дает
// пустой результат, а не ошибку.
func (c *CatalogUseCase) List(query CatalogQuery) CatalogPage {
	query = c.normalize(query)

	result := filterProducts(c.catalog.Products(), query)
	sortProducts(result, query.Sort)

	total := len(result)
	totalPages := (total + query.PageSize - 1) / query.PageSize

	return CatalogPage{
		Items:      paginate(result, query.Page, query.PageSize),
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: totalPages,
	}
}

// ProductDetail возвращает карточку товара и до четырех товаров той же
// категории в исходном порядке каталога.
func (c *CatalogUseCase) ProductDetail(id string) (*ProductDetail, error) {
	const op = "CatalogUseCase.ProductDetail"

	product, ok := c.catalog.ProductByID(id)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	var related []domain.Product
	for _, p := range c.catalog.Products() {
		if p.Category == product.Category && p.ID != product.ID {
			related = append(related, p)
			if len(related) == relatedLimit {
				break
			}
		}
	}

	return &ProductDetail{Product: product, Related: related}, nil
}

// Categories возвращает список категорий каталога.
func (c *CatalogUseCase) Categories() []domain.Category {
	return c.catalog.Categories()
}

// Brands возвращает бренды без дублей в порядке появления в каталоге.
func (c *CatalogUseCase) Brands() []string {
	seen := make(map[string]struct{})
	var brands []string
	for _, p := range c.catalog.Products() {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	return brands
}

// AgeRanges возвращает возрастные диапазоны фильтра.
func (c *CatalogUseCase) AgeRanges() []string {
	out := make([]string, len(ageRanges))
	copy(out, ageRanges)
	return out
}

// normalize подставляет значения по умолчанию вместо нулевых:
// первая страница, размер страницы и верхняя граница цены из конфигурации.
func (c *CatalogUseCase) normalize(query CatalogQuery) CatalogQuery {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = c.cfg.PageSize
	}
	if query.PriceMax == 0 {
		query.PriceMax = c.cfg.MaxPrice
	}
	if query.Sort == "" {
		query.Sort = SortPopular
	}
	return query
}

func filterProducts(products []domain.Product, query CatalogQuery) []domain.Product {
	result := make([]domain.Product, 0, len(products))

	for _, p := range products {
		if len(query.Categories) > 0 && !containsString(query.Categories, p.Category) {
			continue
		}
		if len(query.Ages) > 0 && !matchesAnyAge(p.AgeRange, query.Ages) {
			continue
		}
		if len(query.Brands) > 0 && !containsString(query.Brands, p.Brand) {
			continue
		}
		if p.Price < query.PriceMin || p.Price > query.PriceMax {
			continue
		}
		result = append(result, p)
	}

	return result
}

// matchesAnyAge сравнивает метку возраста товара с выбранными диапазонами
// по ведущему числу диапазона: выбор «3-6» пропускает любую метку,
// содержащую «3». Нестрогое совпадение по подстроке — так сверяет возраст
// и клиентская часть магазина.
func matchesAnyAge(label string, selected []string) bool {
	for _, age := range selected {
		lead, _, _ := strings.Cut(age, "-")
		if strings.Contains(label, lead) {
			return true
		}
	}
	return false
}

// sortProducts сортирует товары по выбранному ключу. Сортировка стабильная:
// равные ключи сохраняют исходный относительный порядок.
func sortProducts(products []domain.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNew:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	default: // SortPopular
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewsCount > products[j].ReviewsCount
		})
	}
}

// paginate вырезает страницу page (нумерация с единицы) размера size.
// Страница за последней дает пустой срез, автоматического ограничения нет.
func paginate(products []domain.Product, page, size int) []domain.Product {
	start := (page - 1) * size
	if start >= len(products) {
		return []domain.Product{}
	}
	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func containsString(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
