// Package i18n содержит словари интерфейсных строк магазина на русском и
// казахском языках. Словари статические и компилируются в бинарник.
package i18n

import (
	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/pkg/e"
)

// Key — ключ перевода. Допустимые ключи перечислены ниже закрытым списком;
// обращение по произвольной строке возвращает ошибку, а не пустое значение.
type Key string

const (
	// Шапка
	KeySearch   Key = "search"
	KeyCatalog  Key = "catalog"
	KeyCart     Key = "cart"
	KeyWishlist Key = "wishlist"
	KeyAccount  Key = "account"

	// Категории: ключ совпадает с ID категории из каталога
	KeyCategories  Key = "categories"
	KeyNewborns    Key = "newborns"
	KeyClothing    Key = "clothing"
	KeyToys        Key = "toys"
	KeyStrollers   Key = "strollers"
	KeyFurniture   Key = "furniture"
	KeySchool      Key = "school"
	KeyHygiene     Key = "hygiene"
	KeyFeeding     Key = "feeding"
	KeyDevelopment Key = "development"
	KeySale        Key = "sale"

	// Главный экран
	KeyHeroTitle    Key = "heroTitle"
	KeyHeroSubtitle Key = "heroSubtitle"
	KeyShopNow      Key = "shopNow"
	KeyViewCatalog  Key = "viewCatalog"

	// Товары
	KeyProducts        Key = "products"
	KeyNewProducts     Key = "newProducts"
	KeyPopularProducts Key = "popularProducts"
	KeySaleProducts    Key = "saleProducts"
	KeyAddToCart       Key = "addToCart"
	KeyInCart          Key = "inCart"
	KeyOutOfStock      Key = "outOfStock"
	KeyReviews         Key = "reviews"

	// Корзина
	KeyYourCart         Key = "yourCart"
	KeyEmptyCart        Key = "emptyCart"
	KeyContinueShopping Key = "continueShopping"
	KeyCheckout         Key = "checkout"
	KeyTotal            Key = "total"
	KeyRemove           Key = "remove"

	// Заказы
	KeyOrderProcessing Key = "orderProcessing"
	KeyOrderShipped    Key = "orderShipped"
	KeyOrderDelivered  Key = "orderDelivered"

	// Подвал
	KeyAboutUs   Key = "aboutUs"
	KeyDelivery  Key = "delivery"
	KeyReturns   Key = "returns"
	KeyContacts  Key = "contacts"
	KeyBlog      Key = "blog"
	KeyPrivacy   Key = "privacy"
	KeyOffer     Key = "offer"
	KeyAllRights Key = "allRights"

	// Прочее
	KeyCurrency Key = "currency"
	KeyAge      Key = "age"
	KeyBrand    Key = "brand"
	KeyPrice    Key = "price"
	KeyRating   Key = "rating"
	KeyFilters  Key = "filters"
	KeySortBy   Key = "sortBy"
	KeyNew      Key = "new"
	KeyHot      Key = "hot"
)

var ru = map[Key]string{
	KeySearch:   "Поиск товаров...",
	KeyCatalog:  "Каталог",
	KeyCart:     "Корзина",
	KeyWishlist: "Избранное",
	KeyAccount:  "Аккаунт",

	KeyCategories:  "Категории",
	KeyNewborns:    "Для новорождённых",
	KeyClothing:    "Одежда и обувь",
	KeyToys:        "Игрушки",
	KeyStrollers:   "Коляски и автокресла",
	KeyFurniture:   "Мебель для детской",
	KeySchool:      "Товары для школы",
	KeyHygiene:     "Гигиена и уход",
	KeyFeeding:     "Питание и кормление",
	KeyDevelopment: "Развитие и обучение",
	KeySale:        "Акции и скидки",

	KeyHeroTitle:    "Лучшие товары для ваших малышей",
	KeyHeroSubtitle: "Качественные и безопасные товары для детей от 0 до 14 лет с доставкой по всему Казахстану",
	KeyShopNow:      "Начать покупки",
	KeyViewCatalog:  "Смотреть каталог",

	KeyProducts:        "Товары",
	KeyNewProducts:     "Новинки",
	KeyPopularProducts: "Популярные товары",
	KeySaleProducts:    "Распродажа",
	KeyAddToCart:       "В корзину",
	KeyInCart:          "В корзине",
	KeyOutOfStock:      "Нет в наличии",
	KeyReviews:         "отзывов",

	KeyYourCart:         "Ваша корзина",
	KeyEmptyCart:        "Корзина пуста",
	KeyContinueShopping: "Продолжить покупки",
	KeyCheckout:         "Оформить заказ",
	KeyTotal:            "Итого",
	KeyRemove:           "Удалить",

	KeyOrderProcessing: "Обработка",
	KeyOrderShipped:    "В пути",
	KeyOrderDelivered:  "Доставлен",

	KeyAboutUs:   "О компании",
	KeyDelivery:  "Доставка и оплата",
	KeyReturns:   "Возврат и гарантия",
	KeyContacts:  "Контакты",
	KeyBlog:      "Блог",
	KeyPrivacy:   "Политика конфиденциальности",
	KeyOffer:     "Публичная оферта",
	KeyAllRights: "Все права защищены",

	KeyCurrency: "₸",
	KeyAge:      "Возраст",
	KeyBrand:    "Бренд",
	KeyPrice:    "Цена",
	KeyRating:   "Рейтинг",
	KeyFilters:  "Фильтры",
	KeySortBy:   "Сортировка",
	KeyNew:      "Новинка",
	KeyHot:      "Хит",
}

var kz = map[Key]string{
	KeySearch:   "Тауарларды іздеу...",
	KeyCatalog:  "Каталог",
	KeyCart:     "Себет",
	KeyWishlist: "Таңдаулылар",
	KeyAccount:  "Аккаунт",

	KeyCategories:  "Санаттар",
	KeyNewborns:    "Жаңа туған нәрестелерге",
	KeyClothing:    "Киім және аяқ киім",
	KeyToys:        "Ойыншықтар",
	KeyStrollers:   "Арбалар мен автокресла",
	KeyFurniture:   "Бала бөлмесіне жиһаз",
	KeySchool:      "Мектеп тауарлары",
	KeyHygiene:     "Гигиена және күтім",
	KeyFeeding:     "Тамақтандыру",
	KeyDevelopment: "Даму және оқыту",
	KeySale:        "Акциялар",

	KeyHeroTitle:    "Сіздің балаларыңызға ең жақсы тауарлар",
	KeyHeroSubtitle: "Қазақстан бойынша жеткізумен 0-ден 14 жасқа дейінгі балаларға арналған сапалы және қауіпсіз тауарлар",
	KeyShopNow:      "Сатып алуды бастау",
	KeyViewCatalog:  "Каталогты қарау",

	KeyProducts:        "Тауарлар",
	KeyNewProducts:     "Жаңа тауарлар",
	KeyPopularProducts: "Танымал тауарлар",
	KeySaleProducts:    "Жеңілдіктер",
	KeyAddToCart:       "Себетке",
	KeyInCart:          "Себетте",
	KeyOutOfStock:      "Қоймада жоқ",
	KeyReviews:         "пікір",

	KeyYourCart:         "Сіздің себетіңіз",
	KeyEmptyCart:        "Себет бос",
	KeyContinueShopping: "Сатып алуды жалғастыру",
	KeyCheckout:         "Тапсырыс беру",
	KeyTotal:            "Барлығы",
	KeyRemove:           "Жою",

	KeyOrderProcessing: "Өңдеуде",
	KeyOrderShipped:    "Жолда",
	KeyOrderDelivered:  "Жеткізілді",

	KeyAboutUs:   "Компания туралы",
	KeyDelivery:  "Жеткізу және төлем",
	KeyReturns:   "Қайтару және кепілдік",
	KeyContacts:  "Байланыс",
	KeyBlog:      "Блог",
	KeyPrivacy:   "Құпиялылық саясаты",
	KeyOffer:     "Жария оферта",
	KeyAllRights: "Барлық құқықтар қорғалған",

	KeyCurrency: "₸",
	KeyAge:      "Жасы",
	KeyBrand:    "Бренд",
	KeyPrice:    "Бағасы",
	KeyRating:   "Рейтинг",
	KeyFilters:  "Сүзгілер",
	KeySortBy:   "Сұрыптау",
	KeyNew:      "Жаңа",
	KeyHot:      "Хит",
}

// dictionary возвращает словарь для языка. Неизвестный язык трактуется
// как русский — язык по умолчанию.
func dictionary(lang domain.Language) map[Key]string {
	if lang == domain.LangKz {
		return kz
	}
	return ru
}

// Lookup возвращает перевод ключа key для языка lang.
// Для ключа вне закрытого списка возвращается e.ErrUnknownTranslationKey.
func Lookup(lang domain.Language, key Key) (string, error) {
	value, ok := dictionary(lang)[key]
	if !ok {
		return "", e.Wrap(string(key), e.ErrUnknownTranslationKey)
	}
	return value, nil
}

// T — упрощенная форма Lookup: для неизвестного ключа возвращает сам ключ,
// чтобы пропуск перевода был виден в интерфейсе, а не терялся молча.
func T(lang domain.Language, key Key) string {
	value, err := Lookup(lang, key)
	if err != nil {
		return string(key)
	}
	return value
}

// Dictionary возвращает копию всего словаря языка для передачи
// слою представления одним ответом.
func Dictionary(lang domain.Language) map[string]string {
	src := dictionary(lang)
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[string(k)] = v
	}
	return out
}

// CategoryLabel возвращает перевод названия категории по ее ID.
func CategoryLabel(lang domain.Language, categoryID string) (string, error) {
	return Lookup(lang, Key(categoryID))
}
