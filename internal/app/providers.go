package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/handlers/rest/assign_delivery_man_post"
	"backoffice/internal/handlers/rest/internal_delivery_orders_get"
	"backoffice/internal/handlers/rest/order_location_create_post"
	"backoffice/internal/handlers/rest/order_location_get"
	"backoffice/internal/handlers/rest/update_delivery_status_post"
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

	"backoffice/pkg/background"
	"backoffice/pkg/logger"
	"backoffice/pkg/querier"
)

type (
	ConsistencyInterval time.Duration
	StoreID             int64
)

type Application struct {
	ServiceDeliveryMan    ServiceDeliveryMan
	ServiceDeliveryStatus ServiceDeliveryStatus
	ServiceOrderLocation  ServiceOrderLocation
	ServiceListing        ServiceListing
	BackgroundWorkers     *background.Worker
}

type ServiceDeliveryMan interface {
	assign_delivery_man_post.Service
}

type ServiceDeliveryStatus interface {
	update_delivery_status_post.Service
}

type ServiceOrderLocation interface {
	order_location_create_post.Service
	order_location_get.Service
}

type ServiceListing interface {
	internal_delivery_orders_get.Service
}

type KafkaWorkerApp struct {
	ServiceEvents *orderevents.Events
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideStoreID(cfg *config.Config) StoreID {
	return StoreID(cfg.Store.ID)
}

func provideConsistencyInterval(cfg *config.Config) ConsistencyInterval {
	return ConsistencyInterval(cfg.Tasks.LocationConsistencyInterval)
}

func provideDeliveryOrderRepository(querier *querier.Querier) *deliveryorderRepo.Repository {
	return deliveryorderRepo.New(querier)
}

func provideOrderLocationRepository(querier *querier.Querier) *orderlocationRepo.Repository {
	return orderlocationRepo.New(querier)
}

func provideDeliveryManRepository(querier *querier.Querier) *deliverymanRepo.Repository {
	return deliverymanRepo.New(querier)
}

func provideServiceDeliveryMan(repository deliverymanService.Repository) *deliverymanService.Assignment {
	return deliverymanService.New(repository)
}

func provideServiceOrderLocation(repository orderlocationService.Repository) *orderlocationService.Locations {
	return orderlocationService.New(repository)
}

func provideServiceListing(
	orders listingService.OrdersRepository,
	locations listingService.LocationsRepository,
	deliveryMen listingService.DeliveryMenRepository,
	storeID StoreID,
) *listingService.Listing {
	return listingService.New(orders, locations, deliveryMen, int64(storeID))
}

func provideNopForwarder(log logger.Logger) *deliverystatusService.NopForwarder {
	return deliverystatusService.NewNopForwarder(log)
}

func provideServiceDeliveryStatus(forwarder deliverystatusService.Forwarder) *deliverystatusService.Status {
	return deliverystatusService.New(forwarder)
}

func provideServiceEvents(repository orderevents.Repository) *orderevents.Events {
	return orderevents.New(repository)
}

func provideLocationConsistencyTask(
	log logger.Logger,
	service location_consistency.Service,
	storeID StoreID,
	interval ConsistencyInterval,
) *location_consistency.LocationConsistency {
	return location_consistency.New(log, service, int64(storeID), time.Duration(interval))
}

func provideTaskList(
	locationConsistencyTask *location_consistency.LocationConsistency,
) []background.Task {
	return []background.Task{
		locationConsistencyTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
