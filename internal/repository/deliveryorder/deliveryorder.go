package deliveryorder

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"backoffice/internal/entities"
	"backoffice/internal/repository"
	"backoffice/internal/service/orderevents"
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

func (r *Repository) Create(ctx context.Context, orderModify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	orderModifyDB := FromDomainModify(&orderModify)

	query := `
		INSERT INTO delivery_orders
			(store_id, store_url, courier_service, order_id, order_name, customer_id, consignment_id, fulfillment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, store_id, store_url, courier_service, order_id, order_name,
			customer_id, consignment_id, fulfillment_id, events, created_at, updated_at
	`

	var orderDB DeliveryOrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyDB.StoreID,
		orderModifyDB.StoreURL,
		orderModifyDB.CourierService,
		orderModifyDB.OrderID,
		orderModifyDB.OrderName,
		orderModifyDB.CustomerID,
		orderModifyDB.ConsignmentID,
		orderModifyDB.FulfillmentID,
	).Scan(
		&orderDB.ID,
		&orderDB.StoreID,
		&orderDB.StoreURL,
		&orderDB.CourierService,
		&orderDB.OrderID,
		&orderDB.OrderName,
		&orderDB.CustomerID,
		&orderDB.ConsignmentID,
		&orderDB.FulfillmentID,
		&orderDB.Events,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, orderevents.ErrConsignmentExists
		}
		return nil, fmt.Errorf("unexpected delivery order repository create error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

// AppendEvent pushes one event onto the end of the order's events sequence.
// Positional append via jsonb concatenation keeps the "latest status is the
// last element" invariant without touching earlier entries.
func (r *Repository) AppendEvent(ctx context.Context, fulfillmentID string, event entities.OrderEvent) error {
	eventJSON, err := json.Marshal(FromDomainEvent(event))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	query := `
		UPDATE delivery_orders
		SET events = events || $2::jsonb,
		    updated_at = NOW()
		WHERE fulfillment_id = $1
	`

	result, err := r.querier.Exec(ctx, query, fulfillmentID, eventJSON)
	if err != nil {
		return fmt.Errorf("unexpected delivery order repository append event error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return orderevents.ErrOrderNotFound
	}

	return nil
}

// ListInternalPage returns one page of internal-courier orders for the store,
// newest first, projected down to the listing summary. The last event status
// comes straight from the tail of the jsonb array (NULL for empty sequences).
func (r *Repository) ListInternalPage(ctx context.Context, storeID int64, search string, offset, limit uint64) ([]entities.InternalOrderSummary, error) {
	builder := qb.
		Select(
			"order_id",
			"order_name",
			"fulfillment_id",
			"consignment_id",
			"customer_id",
			"events->-1->>'status'",
		).
		From("delivery_orders").
		Where(sq.Eq{
			"store_id":        storeID,
			"courier_service": entities.CourierInternal.String(),
		})

	if search != "" {
		builder = builder.Where(sq.ILike{"order_name": likePattern(search)})
	}

	builder = builder.
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(limit)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository list error: %w", err)
	}
	defer rows.Close()

	summaries := make([]entities.InternalOrderSummary, 0, limit)
	for rows.Next() {
		var summaryDB InternalOrderSummaryDB
		err := rows.Scan(
			&summaryDB.OrderID,
			&summaryDB.OrderName,
			&summaryDB.FulfillmentID,
			&summaryDB.ConsignmentID,
			&summaryDB.CustomerID,
			&summaryDB.LastEventStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery order repository list scan error: %w", err)
		}
		summaries = append(summaries, ToSummaryDomain(&summaryDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository list rows error: %w", err)
	}

	return summaries, nil
}

// CountInternal counts the full filtered universe of internal-courier orders
// for the store, with the same search filter the page query uses.
func (r *Repository) CountInternal(ctx context.Context, storeID int64, search string) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("delivery_orders").
		Where(sq.Eq{
			"store_id":        storeID,
			"courier_service": entities.CourierInternal.String(),
		})

	if search != "" {
		builder = builder.Where(sq.ILike{"order_name": likePattern(search)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery order repository count error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery order repository count error: %w", err)
	}

	return total, nil
}

// CountInternalMissingLocalLocation counts internal-courier orders that have
// no Local order-location record. The listing silently drops such orders, so
// a growing count means the upsert discipline broke somewhere upstream.
func (r *Repository) CountInternalMissingLocalLocation(ctx context.Context, storeID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM delivery_orders o
		LEFT JOIN order_locations l
			ON l.order_id = o.order_id
			AND l.delivery_option = $2
		WHERE o.store_id = $1
		  AND o.courier_service = $3
		  AND l.order_id IS NULL
	`

	var total int64
	err := r.querier.QueryRow(
		ctx,
		query,
		storeID,
		int64(entities.DeliveryOptionLocal),
		entities.CourierInternal.String(),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery order repository consistency count error: %w", err)
	}

	return total, nil
}

// likePattern wraps the raw search term for a substring ILIKE match, escaping
// the LIKE metacharacters so user input stays literal.
func likePattern(search string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(search) + "%"
}
