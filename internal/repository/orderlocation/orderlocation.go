package orderlocation

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"backoffice/internal/entities"
	"backoffice/internal/service/orderlocation"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert inserts or replaces the classification for the order. The whole
// union is written on conflict, so the column that no longer applies is
// cleared in the same statement.
func (r *Repository) Upsert(ctx context.Context, location entities.OrderLocation) (*entities.OrderLocation, error) {
	locationDB := FromDomain(&location)

	query := `
		INSERT INTO order_locations (order_id, delivery_option, store_id, internal_delivery_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_id) DO UPDATE SET
			delivery_option = EXCLUDED.delivery_option,
			store_id = EXCLUDED.store_id,
			internal_delivery_type = EXCLUDED.internal_delivery_type,
			updated_at = NOW()
		RETURNING order_id, delivery_option, store_id, internal_delivery_type, created_at, updated_at
	`

	var storedDB OrderLocationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		locationDB.OrderID,
		locationDB.DeliveryOption,
		locationDB.StoreID,
		locationDB.InternalDeliveryType,
	).Scan(
		&storedDB.OrderID,
		&storedDB.DeliveryOption,
		&storedDB.StoreID,
		&storedDB.InternalDeliveryType,
		&storedDB.CreatedAt,
		&storedDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order location repository upsert error: %w", err)
	}

	return ToDomain(&storedDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.OrderLocation, error) {
	query := `
		SELECT order_id, delivery_option, store_id, internal_delivery_type, created_at, updated_at
		FROM order_locations
		WHERE order_id = $1
	`

	var locationDB OrderLocationDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&locationDB.OrderID,
		&locationDB.DeliveryOption,
		&locationDB.StoreID,
		&locationDB.InternalDeliveryType,
		&locationDB.CreatedAt,
		&locationDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderlocation.ErrLocationNotFound
		}
		return nil, fmt.Errorf("unexpected order location repository get error: %w", err)
	}

	return ToDomain(&locationDB), nil
}

// GetLocalTypesByOrderIDs maps order id to internal delivery type for the
// given ids, restricted to Local classifications. Orders without a Local
// record are simply absent from the result.
func (r *Repository) GetLocalTypesByOrderIDs(ctx context.Context, orderIDs []string) (map[string]int64, error) {
	if len(orderIDs) == 0 {
		return map[string]int64{}, nil
	}

	query, args, err := qb.
		Select("order_id", "internal_delivery_type").
		From("order_locations").
		Where(sq.Eq{
			"order_id":        orderIDs,
			"delivery_option": int64(entities.DeliveryOptionLocal),
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order location repository local types error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order location repository local types error: %w", err)
	}
	defer rows.Close()

	localTypes := make(map[string]int64, len(orderIDs))
	for rows.Next() {
		var (
			orderID      string
			internalType *int64
		)
		if err := rows.Scan(&orderID, &internalType); err != nil {
			return nil, fmt.Errorf("unexpected order location repository local types scan error: %w", err)
		}
		if internalType != nil {
			localTypes[orderID] = *internalType
		} else {
			localTypes[orderID] = 0
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order location repository local types rows error: %w", err)
	}

	return localTypes, nil
}
