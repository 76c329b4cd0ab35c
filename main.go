// main.go
package main

import (
	"fmt"

	"github.com/ariebrainware/fitbuddy-api/config"
	"github.com/ariebrainware/fitbuddy-api/docs"
	"github.com/ariebrainware/fitbuddy-api/endpoint"
	"github.com/ariebrainware/fitbuddy-api/logger"
	"github.com/ariebrainware/fitbuddy-api/middleware"
	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/ariebrainware/fitbuddy-api/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title           FitBuddy API
// @version         1.0
// @description     Users, body-metric assessments and disease exercise guidance for the FitBuddy app.
// @BasePath        /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// the logger is not configured yet; the default writes JSON to stderr
		log.Fatal().Err(err).Msg("refusing to start: invalid configuration")
	}

	appLog := logger.Setup(cfg.AppEnv, cfg.LogLevel)
	util.SetSecurityLogger(appLog)

	db, err := config.ConnectMySQL(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	// security_logs is owned by this service; the other tables are managed externally
	if err := migrate(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}
	util.SetSecurityLoggerDB(db)

	rdb, err := config.ConnectRedis(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, disease cache disabled")
	}
	cache := util.NewDiseaseCache(rdb, cfg.RedisCacheTTL)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.DiseaseCacheMiddleware(cache))
	router.Use(middleware.EndpointCallLogger())

	endpoint.RegisterRoutes(router, cfg.AppName)

	docs.SwaggerInfo.Title = cfg.AppName
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	address := fmt.Sprintf(":%d", cfg.AppPort)
	log.Info().Str("address", address).Str("env", cfg.AppEnv).Msg("starting server")
	if err := router.Run(address); err != nil {
		log.Fatal().Err(err).Msg("error starting server")
	}
}

// migrate creates the tables this process needs. Outside the test environment
// only security_logs is created; in tests the whole schema is.
func migrate(db *gorm.DB, cfg *config.Config) error {
	if cfg.IsTest() {
		return db.AutoMigrate(model.Tables...)
	}
	return db.AutoMigrate(&model.SecurityLog{})
}
