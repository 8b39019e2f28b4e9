package location_consistency

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"backoffice/pkg/logger"
)

var missingLocalLocation = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "internal_orders_missing_local_location",
		Help: "Internal delivery orders without a Local order-location record",
	},
)

type Service interface {
	CountInternalMissingLocalLocation(ctx context.Context, storeID int64) (int64, error)
}

// LocationConsistency periodically counts internal-courier orders without a
// Local classification. The listing drops such orders from its output, so a
// non-zero gauge means orders are invisible to operators.
type LocationConsistency struct {
	log      logger.Logger
	service  Service
	storeID  int64
	interval time.Duration
}

func New(log logger.Logger, service Service, storeID int64, interval time.Duration) *LocationConsistency {
	return &LocationConsistency{
		log:      log,
		service:  service,
		storeID:  storeID,
		interval: interval,
	}
}

func (l *LocationConsistency) TTL() time.Duration {
	return l.interval
}

func (l *LocationConsistency) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	missing, err := l.service.CountInternalMissingLocalLocation(ctxWithTimeout, l.storeID)
	if err != nil {
		return err
	}

	missingLocalLocation.Set(float64(missing))

	if missing > 0 {
		l.log.With(
			logger.NewField("missing", missing),
		).Warn("internal orders without Local location")
	}

	return nil
}

func (l *LocationConsistency) Info() string {
	return "location consistency"
}
