// Package dataset — статический каталог магазина. Товары и категории
// вкомпилированы в бинарник и загружаются один раз при старте; механизма
// обновления на лету нет.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/jimlawless/whereami"
)

//go:embed products.json categories.json
var files embed.FS

type productModel struct {
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

type categoryModel struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Repo отдает неизменяемые справочные данные каталога.
type Repo struct {
	products   []domain.Product
	byID       map[string]domain.Product
	categories []domain.Category
}

// New загружает вкомпилированный каталог и проверяет его целостность:
// идентификаторы уникальны, категория каждого товара известна,
// старая цена не ниже текущей.
func New() (*Repo, error) {
	categories, err := loadCategories()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products, byID, err := loadProducts(categories)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Repo{
		products:   products,
		byID:       byID,
		categories: categories,
	}, nil
}

// Products возвращает копию полного списка товаров в порядке каталога.
func (r *Repo) Products() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

// ProductByID возвращает товар по идентификатору.
func (r *Repo) ProductByID(id string) (domain.Product, bool) {
	product, ok := r.byID[id]
	return product, ok
}

// Categories возвращает копию списка категорий.
func (r *Repo) Categories() []domain.Category {
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

func loadCategories() ([]domain.Category, error) {
	raw, err := files.ReadFile("categories.json")
	if err != nil {
		return nil, err
	}

	var models []categoryModel
	if err := json.Unmarshal(raw, &models); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(models))
	categories := make([]domain.Category, 0, len(models))
	for _, m := range models {
		if _, ok := seen[m.ID]; ok {
			return nil, fmt.Errorf("duplicate category id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
		categories = append(categories, domain.Category{ID: m.ID, Icon: m.Icon, Color: m.Color})
	}

	return categories, nil
}

func loadProducts(categories []domain.Category) ([]domain.Product, map[string]domain.Product, error) {
	raw, err := files.ReadFile("products.json")
	if err != nil {
		return nil, nil, err
	}

	var models []productModel
	if err := json.Unmarshal(raw, &models); err != nil {
		return nil, nil, err
	}

	knownCategories := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		knownCategories[c.ID] = struct{}{}
	}

	products := make([]domain.Product, 0, len(models))
	byID := make(map[string]domain.Product, len(models))
	for _, m := range models {
		if _, ok := byID[m.ID]; ok {
			return nil, nil, fmt.Errorf("duplicate product id %q", m.ID)
		}
		if _, ok := knownCategories[m.Category]; !ok {
			return nil, nil, fmt.Errorf("product %q references unknown category %q", m.ID, m.Category)
		}
		if m.Price < 0 {
			return nil, nil, fmt.Errorf("product %q has negative price", m.ID)
		}
		if m.OldPrice != 0 && m.OldPrice < m.Price {
			return nil, nil, fmt.Errorf("product %q old price is below current price", m.ID)
		}

		product := domain.Product{
			ID:            m.ID,
			Name:          m.Name,
			NameKz:        m.NameKz,
			Price:         m.Price,
			OldPrice:      m.OldPrice,
			Image:         m.Image,
			Images:        m.Images,
			Category:      m.Category,
			AgeRange:      m.AgeRange,
			Brand:         m.Brand,
			Rating:        m.Rating,
			ReviewsCount:  m.ReviewsCount,
			InStock:       m.InStock,
			IsNew:         m.IsNew,
			IsSale:        m.IsSale,
			Description:   m.Description,
			DescriptionKz: m.DescriptionKz,
		}
		products = append(products, product)
		byID[m.ID] = product
	}

	return products, byID, nil
}
