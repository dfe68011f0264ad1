// Package config предоставляет структуры и функцию для парсинга и загрузки конфига шлюза.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Окружения. Детали внутренних ошибок отдаются клиенту только в local и dev,
// без явного env шлюз работает как prod.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string        `yaml:"env" env:"ENV" env-default:"prod"`
	StorageConnectionString string        `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	StoreTimeout            time.Duration `yaml:"store_timeout" env:"STORE_TIMEOUT" env-default:"3s"`
	MigrationsPath          string        `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	HTTPServer              `yaml:"http_server"`
	RedisConnection         `yaml:"redis_connection"`
	RabbitMQ                `yaml:"rabbitmq"`
	Actuator                `yaml:"actuator"`
	RateLimit               `yaml:"rate_limit"`
	AdminAuth               `yaml:"admin_auth"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":3000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
	TariffTTL    time.Duration `yaml:"tariff_ttl" env-default:"10m"`
}

// RabbitMQ настройки брокера событий. Пустой URL отключает публикацию.
type RabbitMQ struct {
	RabbitMQURL        string        `yaml:"url" env:"RABBITMQ_URL"`
	RabbitMQMaxRetries int           `yaml:"max_retries" env-default:"5"`
	RabbitMQRetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
	EventBuffer        int           `yaml:"event_buffer" env-default:"256"`
}

// Actuator настройки контроллера шлагбаума (ESP32).
type Actuator struct {
	ActuatorBaseURL  string        `yaml:"base_url" env:"ESP32_IP" env-default:"http://192.168.0.252"`
	ActuatorPath     string        `yaml:"path" env:"ESP32_ENDPOINT" env-default:"/activate-led"`
	ActuatorTimeout  time.Duration `yaml:"timeout" env:"ACTUATOR_TIMEOUT" env-default:"5s"`
	ActuatorDuration time.Duration `yaml:"pulse" env-default:"3000ms"`
}

// RateLimit ограничение входящих запросов для всего шлюза.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"50"`
	Burst int     `yaml:"burst" env-default:"100"`
}

// AdminAuth секрет для проверки admin-токенов. Пустой секрет отключает проверку.
type AdminAuth struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"ADMIN_JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// ExposeErrors сообщает, можно ли отдавать клиенту детали внутренних ошибок.
func (c *Config) ExposeErrors() bool {
	return c.Env == EnvLocal || c.Env == EnvDev
}

// MustLoad функция для загрузки конфига из файла CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StoreTimeout: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Redis: %s (db %d)\n"+
			"RabbitMQ enabled: %t\n"+
			"Actuator: %s%s (timeout %s, pulse %s)\n"+
			"RateLimit: %.1f rps, burst %d\n"+
			"AdminAuth enabled: %t\n",
		c.Env,
		c.StoreTimeout,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.AddressRedis,
		c.DB,
		c.RabbitMQURL != "",
		c.ActuatorBaseURL,
		c.ActuatorPath,
		c.ActuatorTimeout,
		c.ActuatorDuration,
		c.RPS,
		c.Burst,
		c.JWTSecretKey != "",
	)
}
