package e

import "fmt"

var (
	// Внутренние ошибки хранилища состояния
	ErrStateNotFound  = fmt.Errorf("client state not found")
	ErrStateCorrupted = fmt.Errorf("client state corrupted")

	// Ошибки каталога
	ErrProductNotFound = fmt.Errorf("product not found")

	// Ошибки переводов
	ErrUnknownTranslationKey = fmt.Errorf("unknown translation key")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrInvalidQuantity  = fmt.Errorf("quantity must be positive")
	ErrInvalidPage      = fmt.Errorf("page must be positive")
	ErrMissingFields    = fmt.Errorf("missing required fields")
	ErrEmptyCart        = fmt.Errorf("cart is empty")
	ErrUnknownPromoCode = fmt.Errorf("unknown promo code")
	ErrUnknownSortKey   = fmt.Errorf("unknown sort key")
	ErrUnknownLanguage  = fmt.Errorf("unknown language")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
