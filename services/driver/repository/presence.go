package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ojekdriver/internal/pkg/constants"
	"github.com/piresc/ojekdriver/internal/pkg/database"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	nrpkg "github.com/piresc/ojekdriver/internal/pkg/newrelic"
	"github.com/piresc/ojekdriver/services/driver"
)

// PresenceRepo mirrors availability, active trips and locations into Redis
type PresenceRepo struct {
	redisClient *database.RedisClient
}

// NewPresenceRepo creates a new presence repository
func NewPresenceRepo(redisClient *database.RedisClient) *PresenceRepo {
	return &PresenceRepo{redisClient: redisClient}
}

var _ driver.PresenceRepo = (*PresenceRepo)(nil)

func (r *PresenceRepo) traced(ctx context.Context, collection, op string, fn func() error) error {
	return nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreRedis, collection, op, fn)
}

// SetOnline adds the driver to the available set
func (r *PresenceRepo) SetOnline(ctx context.Context, driverID string) error {
	err := r.traced(ctx, constants.KeyAvailableDrivers, "SADD", func() error {
		return r.redisClient.Client.SAdd(ctx, constants.KeyAvailableDrivers, driverID).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to mark driver online: %w", err)
	}
	return nil
}

// SetOffline removes the driver from the available set and the location index
func (r *PresenceRepo) SetOffline(ctx context.Context, driverID string) error {
	err := r.traced(ctx, constants.KeyAvailableDrivers, "MULTI", func() error {
		pipe := r.redisClient.Client.TxPipeline()
		pipe.SRem(ctx, constants.KeyAvailableDrivers, driverID)
		pipe.ZRem(ctx, constants.DriverLocationKey, driverID)
		pipe.Del(ctx, fmt.Sprintf(constants.KeyDriverGeohash, driverID))
		_, err := pipe.Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to mark driver offline: %w", err)
	}
	return nil
}

// SetActiveTrip records the driver's accepted trip. The marker expires so a
// crashed session does not pin the driver forever.
func (r *PresenceRepo) SetActiveTrip(ctx context.Context, driverID, tripID string) error {
	key := fmt.Sprintf(constants.KeyDriverActiveTrip, driverID)
	err := r.traced(ctx, "driver:active_trip", "SET", func() error {
		return r.redisClient.Client.Set(ctx, key, tripID, constants.ActiveTripTTL).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to set active trip: %w", err)
	}
	return nil
}

// ClearActiveTrip removes the driver's active trip marker
func (r *PresenceRepo) ClearActiveTrip(ctx context.Context, driverID string) error {
	key := fmt.Sprintf(constants.KeyDriverActiveTrip, driverID)
	err := r.traced(ctx, "driver:active_trip", "DEL", func() error {
		return r.redisClient.Client.Del(ctx, key).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to clear active trip: %w", err)
	}
	return nil
}

// UpdateLocation stores the driver's position in the GEO index with its geohash
func (r *PresenceRepo) UpdateLocation(ctx context.Context, driverID string, loc *models.Location, geohash string) error {
	err := r.traced(ctx, constants.DriverLocationKey, "GEOADD", func() error {
		pipe := r.redisClient.Client.TxPipeline()
		pipe.GeoAdd(ctx, constants.DriverLocationKey, &redis.GeoLocation{
			Name:      driverID,
			Longitude: loc.Longitude,
			Latitude:  loc.Latitude,
		})
		pipe.Set(ctx, fmt.Sprintf(constants.KeyDriverGeohash, driverID), geohash, 0)
		_, err := pipe.Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	return nil
}

// OnlineDrivers returns the ids in the available set, sorted
func (r *PresenceRepo) OnlineDrivers(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.traced(ctx, constants.KeyAvailableDrivers, "SMEMBERS", func() error {
		var err error
		ids, err = r.redisClient.Client.SMembers(ctx, constants.KeyAvailableDrivers).Result()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list online drivers: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}
