package entities

// FulfillmentEvent is the payload of a storefront fulfillment status change.
// Forwarding it to the storefront platform is an external collaborator
// concern; see the deliverystatus service contract.
type FulfillmentEvent struct {
	Event         string
	FulfillmentID string
	OrderID       string
	StoreID       string
	CustomerInfo  map[string]interface{}
}
