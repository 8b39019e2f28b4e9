package order_location_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/entities"
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
	var createDTO dto.OrderLocationCreateRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		h.encode(w, dto.StatusResponse{
			Success: false,
			Message: "order_id and delivery option are required.",
		})
		return
	}

	classification := orderlocation.Classification{
		OrderID:              createDTO.OrderID,
		DeliveryOption:       createDTO.DeliveryOption.Int64(),
		StoreID:              createDTO.StoreID.Int64Ptr(),
		InternalDeliveryType: createDTO.InternalDeliveryType.Int64Ptr(),
	}

	location, err := h.service.Upsert(r.Context(), classification)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response := dto.OrderLocationCreateResponse{
		Success: true,
		Message: "Order location created/updated successfully.",
		Data:    toLocationData(location),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	h.encode(w, response)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var message string
	switch {
	case errors.Is(err, orderlocation.ErrMissingRequiredFields):
		message = "order_id and delivery option are required."
	case errors.Is(err, orderlocation.ErrInvalidDeliveryOption):
		message = "Delivery option must be 1 (Local) or 2 (Courier)."
	case errors.Is(err, orderlocation.ErrStoreIDRequired):
		message = "Store ID is required for Courier delivery."
	case errors.Is(err, orderlocation.ErrInternalTypeRequired):
		message = "Internal Delivery Type is required for Local delivery."
	default:
		w.WriteHeader(http.StatusInternalServerError)
		h.encode(w, dto.StatusResponse{
			Success: false,
			Message: "Internal server error. Please try again later.",
		})
		return
	}

	w.WriteHeader(http.StatusBadRequest)
	h.encode(w, dto.StatusResponse{
		Success: false,
		Message: message,
	})
}

func toLocationData(location *entities.OrderLocation) dto.OrderLocationData {
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

	return data
}

func (h *Handler) encode(w http.ResponseWriter, response interface{}) {
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
