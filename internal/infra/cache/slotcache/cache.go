package slotcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playgrid/turf-booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache кэш рассчитанных сеток слотов в Redis
// Кэш best-effort: любая ошибка Redis трактуется как промах, сетка пересчитывается.
// Ключ - пара (площадка, дата); инвалидация выполняется при создании и отмене
// бронирований, затрагивающих дату
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кэш сеток слотов поверх Redis-клиента
func New(client *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func key(turfID int64, date time.Time) string {
	return fmt.Sprintf("slots:%d:%s", turfID, date.Format(domain.DateFormat))
}

// Get возвращает закэшированную сетку слотов и признак попадания
func (c *Cache) Get(ctx context.Context, turfID int64, date time.Time) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key(turfID, date)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("slotcache: get failed for turf=%d date=%s: %v",
				turfID, date.Format(domain.DateFormat), err)
		}
		return nil, false
	}
	return payload, true
}

// Set сохраняет сетку слотов с TTL
func (c *Cache) Set(ctx context.Context, turfID int64, date time.Time, payload []byte) {
	if err := c.client.Set(ctx, key(turfID, date), payload, c.ttl).Err(); err != nil {
		c.log.Warn("slotcache: set failed for turf=%d date=%s: %v",
			turfID, date.Format(domain.DateFormat), err)
	}
}

// Invalidate удаляет закэшированные сетки для указанных дат площадки
func (c *Cache) Invalidate(ctx context.Context, turfID int64, dates ...time.Time) {
	if len(dates) == 0 {
		return
	}

	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = key(turfID, d)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("slotcache: invalidate failed for turf=%d (%d dates): %v", turfID, len(dates), err)
	}
}

// Nop заглушка кэша, используется когда Redis выключен в конфигурации
type Nop struct{}

// Get всегда промах
func (Nop) Get(ctx context.Context, turfID int64, date time.Time) ([]byte, bool) {
	return nil, false
}

// Set ничего не делает
func (Nop) Set(ctx context.Context, turfID int64, date time.Time, payload []byte) {}

// Invalidate ничего не делает
func (Nop) Invalidate(ctx context.Context, turfID int64, dates ...time.Time) {}
