package solcast

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/vfg2006/bill-insights-api/internal/domain"
)

type cacheEntry struct {
	series    *domain.ForecastSeries
	expiresAt time.Time
}

// forecastCache guarda séries de previsão por localização e período.
// Apenas respostas bem-sucedidas entram no cache.
type forecastCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newForecastCache(ttl time.Duration) *forecastCache {
	return &forecastCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// cacheKey arredonda as coordenadas para 4 casas (~11m)
func cacheKey(req domain.ForecastRequest) string {
	lat := math.Round(req.Latitude*1e4) / 1e4
	lon := math.Round(req.Longitude*1e4) / 1e4
	return fmt.Sprintf("%.4f|%.4f|%g|%s|%s",
		lat, lon, req.CapacityKW,
		req.Start.UTC().Format(time.RFC3339),
		req.End.UTC().Format(time.RFC3339),
	)
}

func (c *forecastCache) get(key string) (*domain.ForecastSeries, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.series, true
}

func (c *forecastCache) set(key string, series *domain.ForecastSeries) {
	if c == nil || c.ttl <= 0 || series == nil {
		return
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{series: series, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// purgeExpired remove entradas vencidas e retorna quantas foram removidas
func (c *forecastCache) purgeExpired() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *forecastCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
