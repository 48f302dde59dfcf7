package domain

// Language — язык интерфейса магазина.
type Language string

const (
	LangRu Language = "ru"
	LangKz Language = "kz"
)

// ParseLanguage возвращает язык по строковому коду и признак его валидности.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LangRu:
		return LangRu, true
	case LangKz:
		return LangKz, true
	}
	return "", false
}

// CartItem — одна позиция корзины: ссылка на товар по ID и количество.
// В корзине не бывает двух позиций с одним ProductID.
type CartItem struct {
	ProductID string
	Quantity  int
}

// ClientState — состояние клиента: корзина, избранное и язык.
// Снимок целиком сохраняется в локальное хранилище после каждой мутации.
type ClientState struct {
	Cart     []CartItem
	Wishlist []string
	Language Language
}

// DefaultClientState возвращает состояние по умолчанию: пустая корзина,
// пустое избранное, русский язык.
func DefaultClientState() ClientState {
	return ClientState{Language: LangRu}
}

// Clone возвращает глубокую копию состояния.
func (s ClientState) Clone() ClientState {
	out := ClientState{Language: s.Language}
	if len(s.Cart) > 0 {
		out.Cart = make([]CartItem, len(s.Cart))
		copy(out.Cart, s.Cart)
	}
	if len(s.Wishlist) > 0 {
		out.Wishlist = make([]string, len(s.Wishlist))
		copy(out.Wishlist, s.Wishlist)
	}
	return out
}

// CartCount возвращает суммарное количество товаров в корзине
// (не число позиций).
func CartCount(items []CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// CartTotal возвращает сумму корзины в тиынах по текущим ценам товаров.
// Цена берется через priceOf на момент вызова, а не на момент добавления:
// если цена товара в каталоге изменилась, позиции корзины переоцениваются.
// Позиции с неизвестным товаром в сумму не входят.
func CartTotal(items []CartItem, priceOf func(productID string) (int64, bool)) int64 {
	var total int64
	for _, item := range items {
		price, ok := priceOf(item.ProductID)
		if !ok {
			continue
		}
		total += price * int64(item.Quantity)
	}
	return total
}

// InWishlist сообщает, находится ли товар в избранном.
func InWishlist(wishlist []string, productID string) bool {
	for _, id := range wishlist {
		if id == productID {
			return true
		}
	}
	return false
}
