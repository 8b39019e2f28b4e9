package listing

import (
	"context"
	"fmt"

	"backoffice/internal/entities"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageQuery is the listing request: one-based page, page size and an
// optional case-insensitive substring filter on the order name.
type PageQuery struct {
	Page   int64
	Limit  int64
	Search string
}

// Listing assembles the internal-delivery-orders view for one store. The
// three reads (orders page, Local locations, delivery men) run sequentially
// without a transaction; a write landing between steps can produce a stale
// join, which the operator dashboard tolerates.
type Listing struct {
	orders      OrdersRepository
	locations   LocationsRepository
	deliveryMen DeliveryMenRepository
	storeID     int64
}

func New(
	orders OrdersRepository,
	locations LocationsRepository,
	deliveryMen DeliveryMenRepository,
	storeID int64,
) *Listing {
	return &Listing{
		orders:      orders,
		locations:   locations,
		deliveryMen: deliveryMen,
		storeID:     storeID,
	}
}

// ListInternalDeliveryOrders returns one page of internal-courier orders
// joined with their Local classification and assigned delivery man.
//
// Orders on the page without a Local order-location record are dropped from
// the output, so a page can carry fewer than Limit items even when more
// matching orders exist. Pagination totals are computed over the full
// filtered universe (store + internal courier + search), not over the
// fetched page.
func (l *Listing) ListInternalDeliveryOrders(ctx context.Context, query PageQuery) (*entities.OrderPage, error) {
	page := query.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	summaries, err := l.orders.ListInternalPage(ctx, l.storeID, query.Search, uint64(offset), uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("list internal orders page: %w", err)
	}

	orderIDs := make([]string, 0, len(summaries))
	for _, summary := range summaries {
		orderIDs = append(orderIDs, summary.OrderID)
	}

	localTypes, err := l.locations.GetLocalTypesByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch local order locations: %w", err)
	}

	contacts, err := l.deliveryMen.GetByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch delivery men: %w", err)
	}

	items := make([]entities.InternalDeliveryOrder, 0, len(summaries))
	for _, summary := range summaries {
		internalType, ok := localTypes[summary.OrderID]
		if !ok {
			// No Local classification for this order: excluded even though it
			// matched the primary filter.
			continue
		}

		item := entities.InternalDeliveryOrder{
			InternalOrderSummary: summary,
			InternalDeliveryType: internalType,
		}
		if contact, ok := contacts[summary.OrderID]; ok {
			item.DeliveryMan = &entities.DeliveryManContact{
				Name:  contact.Name,
				Phone: contact.Phone,
			}
		}
		items = append(items, item)
	}

	totalItems, err := l.orders.CountInternal(ctx, l.storeID, query.Search)
	if err != nil {
		return nil, fmt.Errorf("count internal orders: %w", err)
	}

	totalPages := totalItems / limit
	if totalItems%limit != 0 {
		totalPages++
	}

	var searchQuery *string
	if query.Search != "" {
		search := query.Search
		searchQuery = &search
	}

	return &entities.OrderPage{
		Items: items,
		Pagination: entities.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   totalItems,
			ItemsPerPage: limit,
			SearchQuery:  searchQuery,
		},
	}, nil
}
