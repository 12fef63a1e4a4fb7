package cache

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

// MemCache is a small in-memory cache used in front of Redis to avoid
// network round trips for hot keys.
type MemCache[T any] interface {
	Get(key string) T
	Set(key string, value T, ttl time.Duration)
	Close()
}

type memCache[T any] struct {
	items         sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

type memCacheItem[T any] struct {
	value     T
	expiresAt time.Time
}

// NewMemCache creates a memory cache and starts its cleanup worker.
func NewMemCache[T any]() MemCache[T] {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &memCache[T]{
		cleanupTicker: time.NewTicker(cleanupInterval),
		ctx:           ctx,
		cancel:        cancel,
	}
	mc.startCleanupWorker()

	return mc
}

// startCleanupWorker starts the background worker that drops expired keys.
func (mc *memCache[T]) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup walks every key and removes the expired ones.
func (mc *memCache[T]) cleanup() {
	now := time.Now()
	mc.items.Range(func(key, value any) bool {
		item := value.(*memCacheItem[T])
		if now.After(item.expiresAt) {
			mc.items.Delete(key)
		}
		return true
	})
}

// Close shuts down the cleanup worker.
func (mc *memCache[T]) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns the cached value or the zero value when the key is missing or
// expired.
func (mc *memCache[T]) Get(key string) T {
	var zero T

	value, exists := mc.items.Load(key)
	if !exists {
		return zero
	}

	item := value.(*memCacheItem[T])
	if time.Now().After(item.expiresAt) {
		mc.items.Delete(key)
		return zero
	}

	return item.value
}

// Set stores a value under the given key with the given TTL.
func (mc *memCache[T]) Set(key string, value T, ttl time.Duration) {
	mc.items.Store(key, &memCacheItem[T]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}
