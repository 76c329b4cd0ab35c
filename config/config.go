package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// EnvTest switches the database to an in-memory SQLite instance.
const EnvTest = "test"

// Config holds the application's configuration values.
type Config struct {
	AppName  string `koanf:"appname" json:"appname"`
	AppEnv   string `koanf:"appenv" json:"appenv"`
	AppPort  uint16 `koanf:"appport" json:"appport" validate:"required"`
	GinMode  string `koanf:"ginmode" json:"ginmode" validate:"omitempty,oneof=debug release test"`
	LogLevel string `koanf:"loglevel" json:"loglevel"`

	DBHost            string        `koanf:"dbhost" json:"dbhost" validate:"required_unless=AppEnv test"`
	DBPort            uint16        `koanf:"dbport" json:"dbport" validate:"required_unless=AppEnv test"`
	DBName            string        `koanf:"dbname" json:"dbname" validate:"required_unless=AppEnv test"`
	DBUser            string        `koanf:"dbuser" json:"dbuser" validate:"required_unless=AppEnv test"`
	DBPass            string        `koanf:"dbpass" json:"-" validate:"required_unless=AppEnv test"`
	DBTLS             bool          `koanf:"dbtls" json:"dbtls"`
	DBMaxOpenConns    int           `koanf:"dbmaxopenconns" json:"dbmaxopenconns" validate:"gte=1"`
	DBMaxIdleConns    int           `koanf:"dbmaxidleconns" json:"dbmaxidleconns" validate:"gte=0"`
	DBConnMaxLifetime time.Duration `koanf:"dbconnmaxlifetime" json:"dbconnmaxlifetime"`

	RedisEnabled  bool          `koanf:"redisenabled" json:"redisenabled"`
	RedisAddr     string        `koanf:"redisaddr" json:"redisaddr" validate:"required_if=RedisEnabled true"`
	RedisPass     string        `koanf:"redispass" json:"-"`
	RedisDB       int           `koanf:"redisdb" json:"redisdb"`
	RedisCacheTTL time.Duration `koanf:"rediscachettl" json:"rediscachettl"`

	CORSAllowedOrigins string `koanf:"corsallowedorigins" json:"corsallowedorigins"`
}

// knownKeys limits which process environment variables are read into Config.
var knownKeys = map[string]struct{}{
	"appname": {}, "appenv": {}, "appport": {}, "ginmode": {}, "loglevel": {},
	"dbhost": {}, "dbport": {}, "dbname": {}, "dbuser": {}, "dbpass": {}, "dbtls": {},
	"dbmaxopenconns": {}, "dbmaxidleconns": {}, "dbconnmaxlifetime": {},
	"redisenabled": {}, "redisaddr": {}, "redispass": {}, "redisdb": {}, "rediscachettl": {},
	"corsallowedorigins": {},
}

func defaultConfig() *Config {
	return &Config{
		AppName:           "FitBuddy API",
		AppPort:           3000,
		GinMode:           "release",
		LogLevel:          "info",
		DBMaxOpenConns:    10,
		DBMaxIdleConns:    5,
		DBConnMaxLifetime: 30 * time.Minute,
		RedisCacheTTL:     5 * time.Minute,
	}
}

// LoadConfig reads an optional .env file and the process environment into a
// Config. It fails when database credentials are missing outside the test
// environment; there are no credential fallbacks.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := knownKeys[key]; !ok {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// IsTest reports whether the service runs against the in-memory database.
func (c *Config) IsTest() bool {
	return c.AppEnv == EnvTest
}

// MySQLDSN builds the driver DSN. clientFoundRows makes UPDATE report matched
// rows, so an update that changes nothing is not mistaken for a missing row.
func (c *Config) MySQLDSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.DBUser
	dsn.Passwd = c.DBPass
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("%s:%d", c.DBHost, c.DBPort)
	dsn.DBName = c.DBName
	dsn.ParseTime = true
	dsn.ClientFoundRows = true
	if c.DBTLS {
		dsn.TLSConfig = "true"
	}
	return dsn.FormatDSN()
}

// ConnectMySQL opens the connection pool described by cfg. In the test
// environment it opens a private in-memory SQLite database instead.
func ConnectMySQL(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	var dialector gorm.Dialector
	if cfg.IsTest() {
		dsn := fmt.Sprintf("file:fitbuddy_%d?mode=memory&cache=shared", time.Now().UnixNano())
		dialector = sqlite.Open(dsn)
	} else {
		dialector = gormmysql.Open(cfg.MySQLDSN())
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return db, nil
}
