package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"skuledger/config"
	"skuledger/internal/domain/entity"
	"skuledger/internal/domain/lifecycle"
	"skuledger/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultMetadataTTL = 5 * time.Minute

// metadataCache is a best-effort redis cache in front of the catalog API.
// Cache errors are logged and otherwise ignored; a broken cache only costs
// extra API calls.
type metadataCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func newMetadataCache(client *redis.Client, cfg *config.Config, logger *slog.Logger) *metadataCache {
	ttl := defaultMetadataTTL
	if cfg.Redis != nil && cfg.Redis.MetadataTTL > 0 {
		ttl = cfg.Redis.MetadataTTL
	}

	return &metadataCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (mc *metadataCache) get(ctx context.Context, productID int64) *entity.Product {
	if mc == nil {
		return nil
	}

	payload, err := mc.client.Get(ctx, cacheKey(productID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			mc.logger.LogAttrs(ctx, slog.LevelWarn, "metadata cache read failed",
				slog.Int64("productID", productID),
				slog.String("error", err.Error()),
			)
		}

		return nil
	}

	var product entity.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return nil
	}

	return &product
}

func (mc *metadataCache) set(ctx context.Context, productID int64, product *entity.Product) {
	if mc == nil {
		return
	}

	payload, err := json.Marshal(product)
	if err != nil {
		return
	}

	if err := mc.client.Set(ctx, cacheKey(productID), payload, mc.ttl).Err(); err != nil {
		mc.logger.LogAttrs(ctx, slog.LevelWarn, "metadata cache write failed",
			slog.Int64("productID", productID),
			slog.String("error", err.Error()),
		)
	}
}

func cacheKey(productID int64) string {
	return fmt.Sprintf("product:%d", productID)
}

// RedisParams defines the required parameters for the optional cache client.
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the redis client backing the metadata cache.
// Redis is optional: a nil config yields a nil client and caching is skipped.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
