package domain

// Product описывает товар каталога. Справочные данные: загружаются один раз
// при старте и не изменяются во время работы приложения.
type Product struct {
	ID            string
	Name          string
	NameKz        string
	Price         int64 // Цена хранится в тиынах
	OldPrice      int64 // Старая цена для отображения скидки, 0 — не задана
	Image         string
	Images        []string
	Category      string
	AgeRange      string
	Brand         string
	Rating        float64
	ReviewsCount  int
	InStock       bool
	IsNew         bool
	IsSale        bool
	Description   string
	DescriptionKz string
}

// DisplayName возвращает название товара для языка lang с откатом на русское.
func (p Product) DisplayName(lang Language) string {
	if lang == LangKz && p.NameKz != "" {
		return p.NameKz
	}
	return p.Name
}

// Category описывает категорию товаров. Ключом перевода названия служит ID.
type Category struct {
	ID    string
	Icon  string
	Color string
}
