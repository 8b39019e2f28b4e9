package deliveryman

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"backoffice/internal/entities"
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

// Upsert stores the single active assignment for the order. Reassignment
// overwrites the previous assignee; no history is kept.
func (r *Repository) Upsert(ctx context.Context, deliveryMan entities.DeliveryMan) error {
	query := `
		INSERT INTO delivery_men (order_id, name, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			updated_at = NOW()
	`

	_, err := r.querier.Exec(ctx, query, deliveryMan.OrderID, deliveryMan.Name, deliveryMan.Phone)
	if err != nil {
		return fmt.Errorf("unexpected delivery man repository upsert error: %w", err)
	}

	return nil
}

// GetByOrderIDs maps order id to assigned contact for the given ids. Orders
// without an assignment are absent from the result.
func (r *Repository) GetByOrderIDs(ctx context.Context, orderIDs []string) (map[string]entities.DeliveryManContact, error) {
	if len(orderIDs) == 0 {
		return map[string]entities.DeliveryManContact{}, nil
	}

	query, args, err := qb.
		Select("order_id", "name", "phone").
		From("delivery_men").
		Where(sq.Eq{"order_id": orderIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery man repository get error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery man repository get error: %w", err)
	}
	defer rows.Close()

	contacts := make(map[string]entities.DeliveryManContact, len(orderIDs))
	for rows.Next() {
		var (
			orderID string
			contact entities.DeliveryManContact
		)
		if err := rows.Scan(&orderID, &contact.Name, &contact.Phone); err != nil {
			return nil, fmt.Errorf("unexpected delivery man repository get scan error: %w", err)
		}
		contacts[orderID] = contact
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery man repository get rows error: %w", err)
	}

	return contacts, nil
}
