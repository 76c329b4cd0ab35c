package middleware

import (
	"strings"
	"time"

	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	dbKey           = "db"
	diseaseCacheKey = "disease_cache"
)

// CORSMiddleware configures CORS for the given comma separated origins. An
// empty list allows every origin, as the mobile and web clients did before.
func CORSMiddleware(allowedOrigins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Requested-With", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        24 * time.Hour,
	}

	origins := splitOrigins(allowedOrigins)
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// DatabaseMiddleware makes the connection pool available to handlers.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, db)
		c.Next()
	}
}

// GetDB returns the pool set by DatabaseMiddleware, or nil.
func GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.Get(dbKey)
	if !ok {
		return nil
	}
	gdb, _ := db.(*gorm.DB)
	return gdb
}

// DiseaseCacheMiddleware makes the disease catalog cache available to
// handlers. dc may be nil.
func DiseaseCacheMiddleware(dc *util.DiseaseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(diseaseCacheKey, dc)
		c.Next()
	}
}

// GetDiseaseCache returns the cache set by DiseaseCacheMiddleware. The result
// may be nil, which is a valid no-op cache.
func GetDiseaseCache(c *gin.Context) *util.DiseaseCache {
	v, ok := c.Get(diseaseCacheKey)
	if !ok {
		return nil
	}
	dc, _ := v.(*util.DiseaseCache)
	return dc
}
