package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const diseaseListKey = "diseases:all"

// DiseaseCache is a read-through Redis cache for the disease catalog. A nil
// *DiseaseCache or one without a client caches nothing. Cache failures are
// logged and otherwise ignored.
type DiseaseCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewDiseaseCache returns nil when rdb is nil.
func NewDiseaseCache(rdb *redis.Client, ttl time.Duration) *DiseaseCache {
	if rdb == nil {
		return nil
	}
	return &DiseaseCache{Client: rdb, TTL: ttl}
}

func diseaseKey(id uint) string {
	return fmt.Sprintf("disease:%d", id)
}

func (dc *DiseaseCache) enabled() bool {
	return dc != nil && dc.Client != nil
}

// List returns the cached catalog listing.
func (dc *DiseaseCache) List(ctx context.Context) ([]model.DiseaseSummary, bool) {
	var list []model.DiseaseSummary
	if !dc.get(ctx, diseaseListKey, &list) {
		return nil, false
	}
	return list, true
}

// SetList caches the catalog listing.
func (dc *DiseaseCache) SetList(ctx context.Context, list []model.DiseaseSummary) {
	dc.set(ctx, diseaseListKey, list)
}

// Get returns a cached disease by id.
func (dc *DiseaseCache) Get(ctx context.Context, id uint) (model.Disease, bool) {
	var d model.Disease
	if !dc.get(ctx, diseaseKey(id), &d) {
		return model.Disease{}, false
	}
	return d, true
}

// Set caches one disease.
func (dc *DiseaseCache) Set(ctx context.Context, d model.Disease) {
	dc.set(ctx, diseaseKey(d.ID), d)
}

func (dc *DiseaseCache) get(ctx context.Context, key string, dst interface{}) bool {
	if !dc.enabled() {
		return false
	}
	raw, err := dc.Client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("disease cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("disease cache entry is corrupt")
		return false
	}
	return true
}

func (dc *DiseaseCache) set(ctx context.Context, key string, v interface{}) {
	if !dc.enabled() {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := dc.Client.Set(ctx, key, raw, dc.TTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("disease cache write failed")
	}
}
