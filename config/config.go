package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Postgres is one side of the read/write split.
type Postgres struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type Redis struct {
	Host     string `envconfig:"HOST"     default:"localhost"`
	Port     string `envconfig:"PORT"     default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
}

type CORS struct {
	Enable           bool     `envconfig:"ENABLE"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
}

type RateLimiter struct {
	Enable        bool `envconfig:"ENABLE"`
	MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
	WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
}

// Panorama bounds an uploaded equirectangular image.
type Panorama struct {
	MaxSizeMB float64 `envconfig:"MAX_SIZE_MB" default:"10"`
	MinWidth  int     `envconfig:"MIN_WIDTH"   default:"2048"`
	MinHeight int     `envconfig:"MIN_HEIGHT"  default:"1024"`
	MinAspect float64 `envconfig:"MIN_ASPECT"  default:"1.8"`
	MaxAspect float64 `envconfig:"MAX_ASPECT"  default:"2.2"`
}

type S3 struct {
	APIEndpoint     string `envconfig:"API_ENDPOINT"`
	AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
	BucketName      string `envconfig:"BUCKET_NAME"`
	PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"local"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Host     string `envconfig:"HOST"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"15"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name          string      `envconfig:"APP_NAME"        default:"luxhome"`
		Timezone      string      `envconfig:"TIMEZONE"        default:"UTC"`
		APIKey        string      `envconfig:"API_KEY"`
		PublicBaseURL string      `envconfig:"PUBLIC_BASE_URL"`
		CORS          CORS        `envconfig:"CORS"`
		RateLimiter   RateLimiter `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary Redis `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int      `envconfig:"MAX_RETRY"       default:"5"`
			RetryWaitTime  int      `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string   `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool     `envconfig:"AUTO_MIGRATE"`
			Prefix         string   `envconfig:"PREFIX"`
			Read           Postgres `envconfig:"READ"`
			Write          Postgres `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Tour struct {
		Panorama Panorama `envconfig:"PANORAMA"`
	} `envconfig:"TOUR"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3      S3 `envconfig:"S3"`
		Metrics struct {
			Enable bool `envconfig:"ENABLE"`
		} `envconfig:"METRICS"`
	} `envconfig:"EXTERNAL"`
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.Tour.Panorama.MinAspect > c.Tour.Panorama.MaxAspect {
		return fmt.Errorf("panorama aspect range is empty: %v > %v", c.Tour.Panorama.MinAspect, c.Tour.Panorama.MaxAspect)
	}

	if c.Tour.Panorama.MaxSizeMB <= 0 {
		return errors.New("panorama max size must be positive")
	}

	if c.App.RateLimiter.Enable && (c.App.RateLimiter.MaxRequests <= 0 || c.App.RateLimiter.WindowSeconds <= 0) {
		return errors.New("rate limiter needs a positive request budget and window")
	}

	return nil
}

// Load reads a .env file when present, then the process environment.
func Load() (Config, error) {
	cfg := Config{}

	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("no .env file, using process environment")
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to process environment variables")
	}

	return cfg, cfg.Validate()
}

var (
	conf    Config
	once    sync.Once
	loadErr error
)

func Init() error {
	once.Do(func() {
		conf, loadErr = Load()
		if loadErr == nil {
			log.Info().Str("env", conf.Server.Env).Msg("configuration loaded")
		}
	})

	return loadErr
}

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize configuration")
	}

	return &conf
}
