package internal_delivery_orders_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"backoffice/internal/dto"
	"backoffice/internal/service/listing"
	"backoffice/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	params := r.URL.Query()
	query := listing.PageQuery{
		Page:   parsePositive(params.Get("page"), listing.DefaultPage),
		Limit:  parsePositive(params.Get("limit"), listing.DefaultLimit),
		Search: params.Get("search"),
	}

	page, err := h.service.ListInternalDeliveryOrders(r.Context(), query)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list internal delivery orders")
		w.WriteHeader(http.StatusInternalServerError)
		h.encode(w, dto.StatusResponse{
			Success: false,
			Message: "Internal server error.",
		})
		return
	}

	items := make([]dto.InternalDeliveryOrder, 0, len(page.Items))
	for _, item := range page.Items {
		row := dto.InternalDeliveryOrder{
			OrderID:              item.OrderID,
			OrderName:            item.OrderName,
			FulfillmentID:        item.FulfillmentID,
			ConsignmentID:        item.ConsignmentID,
			CustomerID:           item.CustomerID,
			LastEventStatus:      item.LastEventStatus,
			InternalDeliveryType: item.InternalDeliveryType,
		}
		if item.DeliveryMan != nil {
			row.DeliveryManData = &dto.DeliveryManData{
				Name:        item.DeliveryMan.Name,
				PhoneNumber: item.DeliveryMan.Phone,
			}
		}
		items = append(items, row)
	}

	response := dto.InternalDeliveryOrdersResponse{
		Success: true,
		Data:    items,
		Pagination: dto.Pagination{
			CurrentPage:  page.Pagination.CurrentPage,
			TotalPages:   page.Pagination.TotalPages,
			TotalItems:   page.Pagination.TotalItems,
			ItemsPerPage: page.Pagination.ItemsPerPage,
			SearchQuery:  page.Pagination.SearchQuery,
		},
	}

	w.WriteHeader(http.StatusOK)
	h.encode(w, response)
}

// parsePositive returns fallback for absent, malformed or non-positive
// values, matching how dashboard clients send page and limit.
func parsePositive(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func (h *Handler) encode(w http.ResponseWriter, response interface{}) {
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
