// Package config loads process configuration from the environment, with an
// optional file named by CASEWORK_CONFIG. Keys map to variables by upper-casing
// and replacing dots, so kafka.brokers is CASEWORK_KAFKA_BROKERS.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	pstrings "casework/pkg/platform/strings"
)

const envPrefix = "CASEWORK"

// Config is the full process configuration.
type Config struct {
	Server   Server
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Features Features
	Log      LogConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	TxTimeout    time.Duration
}

// RedisConfig is optional; an empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig is optional; no brokers disables the feeds and the listener.
type KafkaConfig struct {
	Brokers           []string
	ClientID          string
	SPGTopic          string
	IAPSTopic         string
	MovementTopic     string
	ConsumerGroup     string
	Partitions        int32
	ReplicationFactor int16
}

// AuthConfig holds bearer token settings and the operator secret. When
// AdminTokenHash (bcrypt) is set it is used instead of AdminToken.
type AuthConfig struct {
	JWTSigningKey  string
	JWTIssuer      string
	AdminToken     string
	AdminTokenHash string
}

// Features are the default feature switch values. Redis overrides win.
type Features struct {
	CustodyUpdate            bool
	BookingNumberUpdate      bool
	MultiEventKeyDateUpdate  bool
	MultiEventLocationUpdate bool
}

type LogConfig struct {
	Level  string
	Format string
}

func defaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.max_open_conns", 20)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.tx_timeout", 5*time.Second)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)

	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.client_id", "casework")
	v.SetDefault("kafka.spg_topic", "casework.spg-notifications")
	v.SetDefault("kafka.iaps_topic", "casework.iaps-notifications")
	v.SetDefault("kafka.movement_topic", "prison.movements")
	v.SetDefault("kafka.consumer_group", "casework-movements")
	v.SetDefault("kafka.partitions", 3)
	v.SetDefault("kafka.replication_factor", 1)

	v.SetDefault("auth.jwt_signing_key", "dev-secret-key-change-in-production")
	v.SetDefault("auth.jwt_issuer", "")
	v.SetDefault("auth.admin_token", "")
	v.SetDefault("auth.admin_token_hash", "")

	v.SetDefault("features.custody_update", true)
	v.SetDefault("features.booking_number_update", true)
	v.SetDefault("features.multi_event_key_date_update", false)
	v.SetDefault("features.multi_event_location_update", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads configuration from the environment and the optional file.
func Load() (Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		Server: Server{
			Addr:            v.GetString("server.addr"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Postgres: PostgresConfig{
			DSN:          v.GetString("postgres.dsn"),
			MaxOpenConns: v.GetInt("postgres.max_open_conns"),
			MaxIdleConns: v.GetInt("postgres.max_idle_conns"),
			TxTimeout:    v.GetDuration("postgres.tx_timeout"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("redis.url"),
			PoolSize:     v.GetInt("redis.pool_size"),
			MinIdleConns: v.GetInt("redis.min_idle_conns"),
			DialTimeout:  v.GetDuration("redis.dial_timeout"),
			ReadTimeout:  v.GetDuration("redis.read_timeout"),
			WriteTimeout: v.GetDuration("redis.write_timeout"),
		},
		Kafka: KafkaConfig{
			Brokers:           splitList(v.GetString("kafka.brokers")),
			ClientID:          v.GetString("kafka.client_id"),
			SPGTopic:          v.GetString("kafka.spg_topic"),
			IAPSTopic:         v.GetString("kafka.iaps_topic"),
			MovementTopic:     v.GetString("kafka.movement_topic"),
			ConsumerGroup:     v.GetString("kafka.consumer_group"),
			Partitions:        v.GetInt32("kafka.partitions"),
			ReplicationFactor: int16(v.GetInt("kafka.replication_factor")),
		},
		Auth: AuthConfig{
			JWTSigningKey:  v.GetString("auth.jwt_signing_key"),
			JWTIssuer:      v.GetString("auth.jwt_issuer"),
			AdminToken:     v.GetString("auth.admin_token"),
			AdminTokenHash: v.GetString("auth.admin_token_hash"),
		},
		Features: Features{
			CustodyUpdate:            v.GetBool("features.custody_update"),
			BookingNumberUpdate:      v.GetBool("features.booking_number_update"),
			MultiEventKeyDateUpdate:  v.GetBool("features.multi_event_key_date_update"),
			MultiEventLocationUpdate: v.GetBool("features.multi_event_location_update"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres dsn is required (set %s_POSTGRES_DSN)", envPrefix)
	}
	if c.Auth.JWTSigningKey == "" {
		return fmt.Errorf("jwt signing key is required")
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Partitions < 1 {
		return fmt.Errorf("kafka partitions must be positive")
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return pstrings.DedupeAndTrim(strings.Split(s, ","))
}
