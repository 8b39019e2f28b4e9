//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/handlers/tasks/location_consistency"
	"backoffice/internal/pkg/config"

	deliverymanRepo "backoffice/internal/repository/deliveryman"
	deliveryorderRepo "backoffice/internal/repository/deliveryorder"
	orderlocationRepo "backoffice/internal/repository/orderlocation"
	deliverymanService "backoffice/internal/service/deliveryman"
	deliverystatusService "backoffice/internal/service/deliverystatus"
	listingService "backoffice/internal/service/listing"
	"backoffice/internal/service/orderevents"
	orderlocationService "backoffice/internal/service/orderlocation"

	"backoffice/pkg/logger"
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideQuerier,
		provideStoreID,
		provideConsistencyInterval,

		provideDeliveryOrderRepository,
		provideOrderLocationRepository,
		provideDeliveryManRepository,

		provideServiceDeliveryMan,
		provideServiceOrderLocation,
		provideServiceListing,
		provideNopForwarder,
		provideServiceDeliveryStatus,

		provideLocationConsistencyTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDeliveryMan), new(*deliverymanService.Assignment)),
		wire.Bind(new(ServiceDeliveryStatus), new(*deliverystatusService.Status)),
		wire.Bind(new(ServiceOrderLocation), new(*orderlocationService.Locations)),
		wire.Bind(new(ServiceListing), new(*listingService.Listing)),

		wire.Bind(new(deliverymanService.Repository), new(*deliverymanRepo.Repository)),
		wire.Bind(new(orderlocationService.Repository), new(*orderlocationRepo.Repository)),
		wire.Bind(new(listingService.OrdersRepository), new(*deliveryorderRepo.Repository)),
		wire.Bind(new(listingService.LocationsRepository), new(*orderlocationRepo.Repository)),
		wire.Bind(new(listingService.DeliveryMenRepository), new(*deliverymanRepo.Repository)),

		wire.Bind(new(deliverystatusService.Forwarder), new(*deliverystatusService.NopForwarder)),
		wire.Bind(new(location_consistency.Service), new(*deliveryorderRepo.Repository)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the courier-events worker
// (cmd/worker-courier-events).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideDeliveryOrderRepository,
		provideServiceEvents,

		wire.Bind(new(orderevents.Repository), new(*deliveryorderRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
