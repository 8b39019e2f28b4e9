package assign_delivery_man_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/entities"
	"backoffice/internal/service/deliveryman"
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
	var assignDTO dto.AssignDeliveryManRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryManEntity := entities.DeliveryMan{
		OrderID: assignDTO.OrderID,
		Name:    assignDTO.Name,
		Phone:   assignDTO.PhoneNumber,
	}

	err = h.service.AssignDeliveryMan(r.Context(), deliveryManEntity)
	if err != nil {
		switch {
		case errors.Is(err, deliveryman.ErrInvalidOrderID),
			errors.Is(err, deliveryman.ErrInvalidName),
			errors.Is(err, deliveryman.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			h.encode(w, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	response := dto.AssignDeliveryManResponse{
		Message: "Delivery man assigned successfully",
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
