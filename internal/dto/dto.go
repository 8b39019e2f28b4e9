// Package dto holds the wire-level request and response shapes of the HTTP
// API. Field names follow the storefront dashboard contract and are kept
// stable for compatibility.
package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexInt64 is an int64 that also decodes from a numeric JSON string, since
// dashboard clients sometimes send stringified numbers.
type FlexInt64 int64

func (n *FlexInt64) UnmarshalJSON(data []byte) error {
	// null and "" mean absent, like the nullable dashboard fields.
	if string(data) == "null" {
		return nil
	}
	raw := bytes.Trim(data, `"`)
	if len(raw) == 0 {
		*n = 0
		return nil
	}

	value, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("parse number %s: %w", data, err)
	}

	*n = FlexInt64(value)
	return nil
}

func (n FlexInt64) Int64() int64 {
	return int64(n)
}

func (n *FlexInt64) Int64Ptr() *int64 {
	if n == nil {
		return nil
	}
	value := int64(*n)
	return &value
}

type AssignDeliveryManRequest struct {
	OrderID     string `json:"order_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type AssignDeliveryManResponse struct {
	Message string `json:"message"`
}

type UpdateDeliveryStatusRequest struct {
	FulfillmentEvent string                 `json:"fulfillmentEvent"`
	FulfillmentID    string                 `json:"fulfillment_id"`
	OrderID          string                 `json:"order_id"`
	StoreID          string                 `json:"storeID"`
	CustomerInfo     map[string]interface{} `json:"customerInfo,omitempty"`
}

type OrderLocationCreateRequest struct {
	OrderID              string     `json:"order_id"`
	DeliveryOption       FlexInt64  `json:"deliveryOption"`
	StoreID              *FlexInt64 `json:"storeId,omitempty"`
	InternalDeliveryType *FlexInt64 `json:"internalDeliveryType,omitempty"`
}

type OrderLocationData struct {
	OrderID              string `json:"order_id"`
	DeliveryOption       int64  `json:"deliveryOption"`
	StoreID              *int64 `json:"storeId,omitempty"`
	InternalDeliveryType *int64 `json:"internalDeliveryType,omitempty"`
}

type OrderLocationCreateResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    OrderLocationData `json:"data"`
}

type OrderLocationGetResponse struct {
	Data OrderLocationData `json:"data"`
}

type DeliveryManData struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type InternalDeliveryOrder struct {
	OrderID              string           `json:"orderId"`
	OrderName            string           `json:"orderName"`
	FulfillmentID        string           `json:"fulfillmentId"`
	ConsignmentID        string           `json:"consignmentId"`
	CustomerID           string           `json:"customerId"`
	LastEventStatus      *string          `json:"lastEventStatus"`
	InternalDeliveryType int64            `json:"internalDeliveryType"`
	DeliveryManData      *DeliveryManData `json:"deliveryManData"`
}

type Pagination struct {
	CurrentPage  int64   `json:"currentPage"`
	TotalPages   int64   `json:"totalPages"`
	TotalItems   int64   `json:"totalItems"`
	ItemsPerPage int64   `json:"itemsPerPage"`
	SearchQuery  *string `json:"searchQuery"`
}

type InternalDeliveryOrdersResponse struct {
	Success    bool                    `json:"success"`
	Data       []InternalDeliveryOrder `json:"data"`
	Pagination Pagination              `json:"pagination"`
}

// StatusResponse is the generic {success, message} envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the bare {message} envelope used by lookup errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a generic error string without detail.
type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
