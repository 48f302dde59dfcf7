package usecase_test

import (
	"testing"

	"github.com/balapan-kz/go-storefront/internal/cfg"
	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/internal/usecase"
	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogProducts() []domain.Product {
	return []domain.Product{
		{ID: "c1", Price: 500, Category: "toys", AgeRange: "3-6 лет", Brand: "LEGO", Rating: 4.9, ReviewsCount: 300},
		{ID: "c2", Price: 100, Category: "toys", AgeRange: "1-3 года", Brand: "Chicco", Rating: 4.1, ReviewsCount: 250},
		{ID: "c3", Price: 300, Category: "development", AgeRange: "6-10 лет", Brand: "LEGO", Rating: 4.5, ReviewsCount: 200, IsNew: true},
		{ID: "c4", Price: 300, Category: "clothing", AgeRange: "10-14 лет", Brand: "Reima", Rating: 4.5, ReviewsCount: 150},
		{ID: "c5", Price: 700, Category: "toys", AgeRange: "3-6 лет", Brand: "Barbie", Rating: 3.9, ReviewsCount: 100, IsNew: true},
	}
}

func newTestCatalog(pageSize int) *usecase.CatalogUseCase {
	return usecase.NewCatalogUC(
		&stubCatalog{
			products: catalogProducts(),
			categories: []domain.Category{
				{ID: "toys", Icon: "🧸", Color: "sunny"},
				{ID: "development", Icon: "🧩", Color: "lavender"},
				{ID: "clothing", Icon: "👕", Color: "mint"},
			},
		},
		&cfg.CatalogCfg{PageSize: pageSize, MaxPrice: 1_000_000},
	)
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestCatalogListFiltering(t *testing.T) {
	catalog := newTestCatalog(8)

	t.Run("EmptyFiltersAreIdentityInDefaultOrder", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{})

		// Популярность = число отзывов по убыванию.
		assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5"}, ids(page.Items))
		assert.Equal(t, 5, page.Total)
	})

	t.Run("CategorySetIsUnionWithinDimension", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{Categories: []string{"development", "clothing"}})
		assert.ElementsMatch(t, []string{"c3", "c4"}, ids(page.Items))
	})

	t.Run("DimensionsIntersect", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{
			Categories: []string{"toys"},
			Brands:     []string{"LEGO"},
		})
		assert.Equal(t, []string{"c1"}, ids(page.Items))
	})

	t.Run("AgeMatchesByLeadingNumber", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{Ages: []string{"6-10"}})

		// Нестрогое совпадение: «6» входит и в «3-6 лет», и в «6-10 лет».
		assert.ElementsMatch(t, []string{"c1", "c3", "c5"}, ids(page.Items))
	})

	t.Run("PriceRangeInclusive", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{PriceMin: 300, PriceMax: 500})
		assert.ElementsMatch(t, []string{"c1", "c3", "c4"}, ids(page.Items))
	})

	t.Run("MinAboveMaxYieldsEmptyNotError", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{PriceMin: 600, PriceMax: 200})
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Total)
	})
}

func TestCatalogListSorting(t *testing.T) {
	catalog := newTestCatalog(8)

	t.Run("PriceAscThenDescAreReversed", func(t *testing.T) {
		asc := catalog.List(usecase.CatalogQuery{
			Sort:   usecase.SortPriceAsc,
			Brands: []string{"LEGO", "Chicco", "Barbie"}, // без равных цен
		})
		desc := catalog.List(usecase.CatalogQuery{
			Sort:   usecase.SortPriceDesc,
			Brands: []string{"LEGO", "Chicco", "Barbie"},
		})

		require.Equal(t, []string{"c2", "c3", "c1", "c5"}, ids(asc.Items))

		reversed := ids(desc.Items)
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		assert.Equal(t, ids(asc.Items), reversed)
	})

	t.Run("EqualPricesKeepOriginalOrder", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{Sort: usecase.SortPriceAsc})

		// c3 и c4 стоят одинаково: стабильная сортировка сохраняет
		// их исходный относительный порядок.
		assert.Equal(t, []string{"c2", "c3", "c4", "c1", "c5"}, ids(page.Items))
	})

	t.Run("RatingDescending", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{Sort: usecase.SortRating})
		assert.Equal(t, []string{"c1", "c3", "c4", "c2", "c5"}, ids(page.Items))
	})

	t.Run("NewItemsFirstStableForTies", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{Sort: usecase.SortNew})
		assert.Equal(t, []string{"c3", "c5", "c1", "c2", "c4"}, ids(page.Items))
	})
}

func TestCatalogListPagination(t *testing.T) {
	catalog := newTestCatalog(2)

	t.Run("LastPageHoldsRemainder", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{Page: 3})

		require.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 5, page.Total)
	})

	t.Run("BeyondLastPageIsEmpty", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{Page: 4})
		assert.Empty(t, page.Items)
	})

	t.Run("ExactMultipleFillsLastPage", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{Page: 2, Brands: []string{"LEGO", "Chicco", "Barbie"}})

		// 4 товара при размере страницы 2: вторая страница полная.
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("ZeroPageMeansFirst", func(t *testing.T) {
		page := catalog.List(usecase.CatalogQuery{})
		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Items, 2)
	})
}

func TestCatalogProductDetail(t *testing.T) {
	catalog := newTestCatalog(8)

	t.Run("RelatedShareCategoryExcludingSelf", func(t *testing.T) {
		detail, err := catalog.ProductDetail("c1")
		require.NoError(t, err)

		assert.Equal(t, "c1", detail.Product.ID)
		assert.Equal(t, []string{"c2", "c5"}, ids(detail.Related))
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		_, err := catalog.ProductDetail("ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestCatalogBrands(t *testing.T) {
	catalog := newTestCatalog(8)

	assert.Equal(t, []string{"LEGO", "Chicco", "Reima", "Barbie"}, catalog.Brands())
}

func TestCatalogAgeRanges(t *testing.T) {
	catalog := newTestCatalog(8)

	assert.Equal(t, []string{"0-1", "1-3", "3-6", "6-10", "10-14"}, catalog.AgeRanges())
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"", "popular", "price-asc", "price-desc", "rating", "new"} {
		_, ok := usecase.ParseSortKey(valid)
		assert.True(t, ok, valid)
	}

	_, ok := usecase.ParseSortKey("cheapest")
	assert.False(t, ok)
}
