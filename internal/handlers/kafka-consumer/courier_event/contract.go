//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_event_test
package courier_event

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RegisterConsignment(ctx context.Context, orderModify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error)
	AppendCourierEvent(ctx context.Context, fulfillmentID string, event entities.OrderEvent) error
}
