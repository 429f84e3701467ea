package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTPAddr      string
	PublicBaseURL string
	SeedFile      string
	OrderExpiry   time.Duration
	StatusTTL     time.Duration
	DB            Postgres
	Redis         Redis
	Kafka         Kafka
	Stats         Stats
	Gateway       Gateway
}

type Postgres struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

func (p Postgres) DSN() string {
	return "host=" + p.Host + " port=" + p.Port + " user=" + p.User +
		" password=" + p.Password + " dbname=" + p.Name + " sslmode=disable"
}

type Redis struct {
	Host string
	Port string
}

func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

type Kafka struct {
	Broker     string
	OrderTopic string
	AggGroupID string
}

// Stats configures the agg-svc read API.
type Stats struct {
	HTTPAddr string
}

// Gateway configures the api-gateway and the services it fronts.
type Gateway struct {
	HTTPAddr    string
	OrderSvcURL string
	StatsSvcURL string
}

func Load() *Config {
	return &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8081"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8081"),
		SeedFile:      getEnv("SEED_FILE", "config/seed.yaml"),
		OrderExpiry:   getDuration("ORDER_EXPIRY", 30*time.Minute),
		StatusTTL:     getDuration("STATUS_TTL", 24*time.Hour),
		DB: Postgres{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "gourmet_burgers"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
		},
		Redis: Redis{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Kafka: Kafka{
			Broker:     getEnv("KAFKA_BROKER", "localhost:9092"),
			OrderTopic: getEnv("ORDER_EVENTS_TOPIC", "order-events"),
			AggGroupID: getEnv("AGG_GROUP_ID", "agg-svc"),
		},
		Stats: Stats{
			HTTPAddr: getEnv("STATS_HTTP_ADDR", ":8083"),
		},
		Gateway: Gateway{
			HTTPAddr:    getEnv("GATEWAY_HTTP_ADDR", ":8080"),
			OrderSvcURL: getEnv("ORDER_SVC_URL", "http://localhost:8081"),
			StatsSvcURL: getEnv("STATS_SVC_URL", "http://localhost:8083"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration %q for %s, using %s", value, key, defaultValue)
		return defaultValue
	}
	return d
}

func MustInitPostgres(cfg Postgres) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Redis) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg Kafka) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.OrderTopic,
		GroupID: cfg.AggGroupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.OrderTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
	}
}
