package courier_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"backoffice/internal/entities"
	"backoffice/internal/service/orderevents"
	"backoffice/pkg/logger"
)

const (
	typeConsignmentRegistered = "consignment.registered"
	typeStatusUpdated         = "status.updated"
)

// courierEvent is the wire shape of a courier tracking message. The fields
// in play depend on Type: registration messages carry the full order,
// status updates only the fulfillment key with the new status.
type courierEvent struct {
	Type           string    `json:"type"`
	StoreID        *int64    `json:"store_id"`
	StoreURL       *string   `json:"store_url"`
	CourierService *string   `json:"courier_service"`
	OrderID        *string   `json:"order_id"`
	OrderName      *string   `json:"order_name"`
	CustomerID     *string   `json:"customer_id"`
	ConsignmentID  *string   `json:"consignment_id"`
	FulfillmentID  *string   `json:"fulfillment_id"`
	Status         string    `json:"status"`
	Description    string    `json:"description"`
	HappenedAt     time.Time `json:"happened_at"`
}

type Handler struct {
	eventsService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventsService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		eventsService:            eventsService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("courier-event: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("courier-event: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. It returns true when
// ConsumeClaim must stop (context cancellation, message left unmarked for
// reprocessing) and false to continue with the next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event courierEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("courier-event handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("type", event.Type),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("courier-event processing")

	switch event.Type {
	case typeConsignmentRegistered:
		err = h.registerConsignment(ctx, msgLog, event)
	case typeStatusUpdated:
		err = h.appendStatus(ctx, msgLog, event)
	default:
		msgLog.Warn("courier-event handler unknown message type")
		sess.MarkMessage(message, "")
		return false
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("courier-event handler context cancelled, message will be reprocessed")
			return true
		}
		msgLog.With(
			logger.NewField("error", err),
		).Warn("courier-event handler failed to process message")
	}

	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) registerConsignment(ctx context.Context, msgLog logger.Logger, event courierEvent) error {
	var courierService *entities.CourierServiceType
	if event.CourierService != nil {
		service := entities.CourierServiceType(*event.CourierService)
		courierService = &service
	}

	orderModify := entities.DeliveryOrderModify{
		StoreID:        event.StoreID,
		StoreURL:       event.StoreURL,
		CourierService: courierService,
		OrderID:        event.OrderID,
		OrderName:      event.OrderName,
		CustomerID:     event.CustomerID,
		ConsignmentID:  event.ConsignmentID,
		FulfillmentID:  event.FulfillmentID,
	}

	order, err := h.eventsService.RegisterConsignment(ctx, orderModify)
	if err != nil {
		if errors.Is(err, orderevents.ErrConsignmentExists) {
			msgLog.Warn("courier-event handler consignment already registered, skipping")
			return nil
		}
		return err
	}

	msgLog.With(
		logger.NewField("order", order.OrderID),
		logger.NewField("fulfillment_id", order.FulfillmentID),
	).Info("courier-event: consignment registered")

	if event.Status == "" {
		return nil
	}

	// Registration messages may carry the initial tracking status.
	return h.eventsService.AppendCourierEvent(ctx, order.FulfillmentID, entities.OrderEvent{
		HappenedAt:  event.HappenedAt,
		Status:      event.Status,
		Description: event.Description,
	})
}

func (h *Handler) appendStatus(ctx context.Context, msgLog logger.Logger, event courierEvent) error {
	var fulfillmentID string
	if event.FulfillmentID != nil {
		fulfillmentID = *event.FulfillmentID
	}

	err := h.eventsService.AppendCourierEvent(ctx, fulfillmentID, entities.OrderEvent{
		HappenedAt:  event.HappenedAt,
		Status:      event.Status,
		Description: event.Description,
	})
	if err != nil {
		if errors.Is(err, orderevents.ErrOrderNotFound) {
			msgLog.Warn("courier-event handler order not found for status update, skipping")
			return nil
		}
		return err
	}

	msgLog.With(
		logger.NewField("fulfillment_id", fulfillmentID),
		logger.NewField("status", event.Status),
	).Info("courier-event: status appended")

	return nil
}
