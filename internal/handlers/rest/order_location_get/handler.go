package order_location_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/service/orderlocation"
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

	orderID := r.URL.Query().Get("orderId")
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.encode(w, dto.MessageResponse{Message: "orderId is required."})
		return
	}

	location, err := h.service.GetByOrderID(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, orderlocation.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
			h.encode(w, dto.MessageResponse{Message: "orderId is required."})
		case errors.Is(err, orderlocation.ErrLocationNotFound):
			w.WriteHeader(http.StatusNotFound)
			h.encode(w, dto.MessageResponse{Message: "Order location not found."})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			h.encode(w, dto.MessageResponse{Message: "Internal server error."})
		}
		return
	}

	data := dto.OrderLocationData{
		OrderID:        location.OrderID,
		DeliveryOption: int64(location.Method.Option()),
	}
	if storeID, ok := location.Method.StoreID(); ok {
		data.StoreID = &storeID
	}
	if internalType, ok := location.Method.InternalDeliveryType(); ok {
		data.InternalDeliveryType = &internalType
	}

	w.WriteHeader(http.StatusOK)
	h.encode(w, dto.OrderLocationGetResponse{Data: data})
}

func (h *Handler) encode(w http.ResponseWriter, response interface{}) {
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
