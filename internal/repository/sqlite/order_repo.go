package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/internal/repository/sqlite/converter"
	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/balapan-kz/go-storefront/pkg/logger"
	"github.com/jimlawless/whereami"
)

// OrderRepo хранит оформленные заказы.
type OrderRepo struct {
	db     *sql.DB
	logger logger.Logger
}

func NewOrderRepo(db *sql.DB, logger logger.Logger) *OrderRepo {
	return &OrderRepo{db: db, logger: logger}
}

// Create сохраняет заказ. Ошибка не глотается: потерянный заказ —
// не то состояние, в которое можно молча деградировать.
func (r *OrderRepo) Create(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(converter.ToOrderModel(order))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (id, number, created_at, status, payload)
		VALUES (?, ?, ?, ?, ?)`,
		order.ID, order.Number, order.CreatedAt, string(order.Status), payload,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// List возвращает заказы, новые первыми. Нечитаемые записи пропускаются
// с предупреждением, остальная история остается доступной.
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM orders ORDER BY created_at DESC, number DESC`,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		var model converter.OrderModel
		if err := json.Unmarshal(payload, &model); err != nil {
			r.logger.Warnf("order payload unreadable, skipping: %v", err)
			continue
		}
		orders = append(orders, converter.ToDomainOrder(model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return orders, nil
}
