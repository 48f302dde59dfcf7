package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/balapan-kz/go-storefront/internal/domain"
	"github.com/balapan-kz/go-storefront/internal/repository/sqlite/converter"
	"github.com/balapan-kz/go-storefront/pkg/e"
	"github.com/balapan-kz/go-storefront/pkg/logger"
	"github.com/jimlawless/whereami"
)

// StateRepo хранит снимок состояния клиента одним JSON-значением под
// фиксированным пространством имен.
type StateRepo struct {
	db        *sql.DB
	namespace string
	logger    logger.Logger
}

func NewStateRepo(db *sql.DB, namespace string, logger logger.Logger) *StateRepo {
	return &StateRepo{db: db, namespace: namespace, logger: logger}
}

// Load читает снимок состояния. Отсутствие снимка — e.ErrStateNotFound,
// нечитаемый JSON — e.ErrStateCorrupted; вызывающая сторона в обоих случаях
// откатывается на состояние по умолчанию.
func (r *StateRepo) Load(ctx context.Context) (domain.ClientState, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM client_state WHERE namespace = ?`, r.namespace,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ClientState{}, e.Wrap(r.namespace, e.ErrStateNotFound)
	}
	if err != nil {
		return domain.ClientState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ClientStateModel
	if err := json.Unmarshal(payload, &model); err != nil {
		r.logger.Warnf("client state payload unreadable: %v", err)
		return domain.ClientState{}, e.Wrap(r.namespace, e.ErrStateCorrupted)
	}

	return converter.ToDomainState(model), nil
}

// Save записывает снимок состояния целиком, затирая предыдущий.
func (r *StateRepo) Save(ctx context.Context, state domain.ClientState) error {
	payload, err := json.Marshal(converter.ToStateModel(state))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO client_state (namespace, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (namespace) DO UPDATE SET
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP`,
		r.namespace, payload,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
