package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string        `env:"YA_ADDR,default=:8080" validate:"required"`
	LogLevel          string        `env:"YA_LOG_LEVEL,default=info" validate:"oneof=trace debug info warn error"`
	LogFormat         string        `env:"YA_LOG_FORMAT,default=console" validate:"oneof=console json"`
	JWTSecret         string        `env:"YA_JWT_SECRET,required=true" validate:"min=32"`
	JWTIssuer         string        `env:"YA_JWT_ISSUER,default=ya-relay"`
	BadgerPath        string        `env:"YA_BADGER_PATH"`
	OutboundQueueSize int           `env:"YA_OUTBOUND_QUEUE_SIZE,default=256" validate:"gte=1"`
	WriteTimeout      time.Duration `env:"YA_WRITE_TIMEOUT,default=10s" validate:"gt=0"`
	PongTimeout       time.Duration `env:"YA_PONG_TIMEOUT,default=60s" validate:"gt=0"`
	PingInterval      time.Duration `env:"YA_PING_INTERVAL,default=54s" validate:"gt=0,ltfield=PongTimeout"`
	MaxFrameBytes     int           `env:"YA_MAX_FRAME_BYTES,default=65536" validate:"gte=512"`
	ShutdownGrace     time.Duration `env:"YA_SHUTDOWN_GRACE,default=15s" validate:"gt=0"`
	// Semicolon separated. Empty accepts any origin.
	AllowedOrigins string `env:"YA_ALLOWED_ORIGINS"`
}

// Load reads an optional .env file, then the environment.
func Load(files ...string) (Config, error) {
	// Missing dotenv files are fine; the environment alone may be enough.
	_ = godotenv.Load(files...)

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ";") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
