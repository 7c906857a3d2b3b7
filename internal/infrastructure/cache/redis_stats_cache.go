// Package cache implementa la caché del dashboard sobre Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/bluebook-api/internal/application/dto"
)

// keyPrefix separa las claves de esta app dentro de una instancia compartida.
const keyPrefix = "bluebook:"

// RedisStatsCache implementa analytics.StatsCache guardando el DTO como JSON con TTL.
type RedisStatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStatsCache construye la caché. ttl <= 0 usa 60 segundos.
func NewRedisStatsCache(rdb *redis.Client, ttl time.Duration) *RedisStatsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisStatsCache{rdb: rdb, ttl: ttl}
}

// Connect abre el cliente y verifica la conexión con PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return rdb, nil
}

// GetStats devuelve (stats, true) si la clave existe; redis.Nil no es error.
func (c *RedisStatsCache) GetStats(ctx context.Context, key string) (*dto.DashboardStatsDTO, bool, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var out dto.DashboardStatsDTO
	if err := json.Unmarshal(raw, &out); err != nil {
		// entrada corrupta: se trata como ausente y se reescribe en el próximo Set
		return nil, false, nil
	}
	return &out, true, nil
}

// SetStats guarda el resultado con el TTL configurado.
func (c *RedisStatsCache) SetStats(ctx context.Context, key string, stats *dto.DashboardStatsDTO) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+key, raw, c.ttl).Err()
}
