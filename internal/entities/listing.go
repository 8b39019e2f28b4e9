package entities

// InternalOrderSummary is the projection of a delivery order used by the
// internal-delivery-orders listing. LastEventStatus is nil when the order has
// no events yet.
type InternalOrderSummary struct {
	OrderID         string
	OrderName       string
	FulfillmentID   string
	ConsignmentID   string
	CustomerID      string
	LastEventStatus *string
}

// DeliveryManContact is the assignee attached to a listed order.
type DeliveryManContact struct {
	Name  string
	Phone string
}

// InternalDeliveryOrder is one row of the operator listing: the order summary
// joined with its Local delivery classification and, when present, the
// assigned delivery man.
type InternalDeliveryOrder struct {
	InternalOrderSummary
	InternalDeliveryType int64
	DeliveryMan          *DeliveryManContact
}

// Pagination describes the window the listing was computed over. SearchQuery
// is nil when no search filter was applied.
type Pagination struct {
	CurrentPage  int64
	TotalPages   int64
	TotalItems   int64
	ItemsPerPage int64
	SearchQuery  *string
}

type OrderPage struct {
	Items      []InternalDeliveryOrder
	Pagination Pagination
}
