package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/balapan-kz/go-storefront/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http     *HTTPConfig
	Storage  *StorageCfg
	Catalog  *CatalogCfg
	Checkout *CheckoutCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StorageCfg struct {
	Path      string // Путь к файлу локальной базы sqlite
	Namespace string // Ключ, под которым хранится снимок состояния клиента
}

type CatalogCfg struct {
	PageSize int   // Количество товаров на странице каталога
	MaxPrice int64 // Верхняя граница ценового фильтра по умолчанию, в тиынах
}

type CheckoutCfg struct {
	CourierFee        int64 // Стоимость курьерской доставки, в тиынах
	FreeDeliveryAbove int64 // Порог бесплатной доставки по подытогу, в тиынах
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	storage := loadStorageCfg()

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	checkout, err := loadCheckoutCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:     http,
		Storage:  storage,
		Catalog:  catalog,
		Checkout: checkout,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadStorageCfg() *StorageCfg {
	const (
		defaultPath      = "balapan.db"
		defaultNamespace = "kids-store"
	)

	return &StorageCfg{
		Path:      getEnvOrDefault("STORAGE_PATH", defaultPath),
		Namespace: getEnvOrDefault("STORAGE_NAMESPACE", defaultNamespace),
	}
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const (
		defaultPageSize = 8
		defaultMaxPrice = 10_000_000 // 100 000 тенге
	)

	pageSize, err := parseIntEnv("CATALOG_PAGE_SIZE", defaultPageSize)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_PAGE_SIZE")
		return nil, err
	}
	if pageSize <= 0 {
		err := fmt.Errorf("CATALOG_PAGE_SIZE must be positive, got %d", pageSize)
		log.Errorf(err, "invalid CATALOG_PAGE_SIZE")
		return nil, err
	}

	maxPrice, err := parseInt64Env("CATALOG_MAX_PRICE", defaultMaxPrice)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_MAX_PRICE")
		return nil, err
	}

	return &CatalogCfg{
		PageSize: pageSize,
		MaxPrice: maxPrice,
	}, nil
}

func loadCheckoutCfg(log logger.Logger) (*CheckoutCfg, error) {
	const (
		defaultCourierFee        = 250_000   // 2 500 тенге
		defaultFreeDeliveryAbove = 3_000_000 // 30 000 тенге
	)

	courierFee, err := parseInt64Env("CHECKOUT_COURIER_FEE", defaultCourierFee)
	if err != nil {
		log.Errorf(err, "invalid CHECKOUT_COURIER_FEE")
		return nil, err
	}

	freeAbove, err := parseInt64Env("CHECKOUT_FREE_DELIVERY_ABOVE", defaultFreeDeliveryAbove)
	if err != nil {
		log.Errorf(err, "invalid CHECKOUT_FREE_DELIVERY_ABOVE")
		return nil, err
	}

	return &CheckoutCfg{
		CourierFee:        courierFee,
		FreeDeliveryAbove: freeAbove,
	}, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func parseInt64Env(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
