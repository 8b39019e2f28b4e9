package update_delivery_status_post

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/entities"
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
	var statusDTO dto.UpdateDeliveryStatusRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event := entities.FulfillmentEvent{
		Event:         statusDTO.FulfillmentEvent,
		FulfillmentID: statusDTO.FulfillmentID,
		OrderID:       statusDTO.OrderID,
		StoreID:       statusDTO.StoreID,
		CustomerInfo:  statusDTO.CustomerInfo,
	}

	err = h.service.UpdateDeliveryStatus(r.Context(), event)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		h.encode(w, dto.StatusResponse{
			Success: false,
			Message: "Failed to update delivery status",
		})
		return
	}

	response := dto.StatusResponse{
		Success: true,
		Message: "Delivery status updated successfully",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	h.encode(w, response)
}

func (h *Handler) encode(w http.ResponseWriter, response interface{}) {
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
