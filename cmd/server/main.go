package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/sync/errgroup"

	custodykafka "casework/internal/custody/adapters/kafka"
	collaborators "casework/internal/custody/adapters/postgres"
	"casework/internal/custody/adapters/telemetry"
	custodyhandler "casework/internal/custody/handler"
	"casework/internal/custody/keydate"
	"casework/internal/custody/listener"
	custodymetrics "casework/internal/custody/metrics"
	"casework/internal/custody/resolver"
	"casework/internal/custody/service"
	custodystore "casework/internal/custody/store/postgres"
	"casework/internal/featureswitch"
	switchhandler "casework/internal/featureswitch/handler"
	jwttoken "casework/internal/jwt_token"
	"casework/internal/platform/config"
	"casework/internal/platform/httpserver"
	"casework/internal/platform/kafka"
	"casework/internal/platform/kafka/consumer"
	"casework/internal/platform/logger"
	"casework/internal/platform/metrics"
	platformredis "casework/internal/platform/redis"
	"casework/pkg/platform/circuit"
	"casework/pkg/platform/middleware/admin"
	"casework/pkg/platform/tx"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "casework: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openPostgres(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := platformredis.Open(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var overrides featureswitch.OverrideStore = featureswitch.NewMemoryStore()
	if redisClient != nil {
		defer redisClient.Close()
		overrides = featureswitch.NewRedisStore(redisClient)
	} else {
		log.Warn("redis not configured, feature switch overrides are local to this instance")
	}
	switches, err := featureswitch.New(cfg.Features, overrides, featureswitch.WithLogger(log))
	if err != nil {
		return err
	}

	var (
		publisher   custodykafka.Publisher = custodykafka.NewLogPublisher(log)
		kafkaClient *kgo.Client
	)
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = kafka.NewClient(cfg.Kafka)
		if err != nil {
			return err
		}
		defer kafkaClient.Close()
		if err := kafka.EnsureTopics(ctx, kafkaClient, cfg.Kafka.Partitions, cfg.Kafka.ReplicationFactor,
			cfg.Kafka.SPGTopic, cfg.Kafka.IAPSTopic, cfg.Kafka.MovementTopic); err != nil {
			return err
		}
		publisher = custodykafka.NewGuardedPublisher(kafka.NewProducer(kafkaClient),
			circuit.New("notification-feed", circuit.WithFailureThreshold(5), circuit.WithCooldown(30*time.Second)), log)
	} else {
		log.Warn("kafka not configured, notifications are logged and the movement listener is off")
	}

	custodyMetrics := custodymetrics.New()
	store := custodystore.New(db)
	collab := collaborators.New(db)
	txRunner := tx.NewRunner(db, cfg.Postgres.TxTimeout)
	cases := resolver.New(store)
	notifier := custodykafka.NewSPGNotifier(publisher, cfg.Kafka.SPGTopic)
	sink := telemetry.New(log, custodyMetrics)

	custodySvc, err := service.New(service.Deps{
		Cases:        cases,
		Events:       store,
		Institutions: store,
		History:      store,
		Reference:    store,
		Tx:           txRunner,
		Notifier:     notifier,
		Managers:     collab,
		Contacts:     collab,
		Prisoners:    collab,
		Telemetry:    sink,
		Switches:     switches,
	}, service.WithLogger(log), service.WithMetrics(custodyMetrics))
	if err != nil {
		return err
	}

	keyDateSvc, err := keydate.New(keydate.Deps{
		Events:    store,
		Cases:     cases,
		Reference: store,
		Tx:        txRunner,
		Notifier:  notifier,
		IAPS:      custodykafka.NewIAPSNotifier(publisher, cfg.Kafka.IAPSTopic),
		Telemetry: sink,
		Switches:  switches,
	}, keydate.WithLogger(log), keydate.WithMetrics(custodyMetrics))
	if err != nil {
		return err
	}

	jwtValidator := jwttoken.NewValidator(jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer))

	checks := []healthCheck{{"postgres", db.PingContext}}
	if redisClient != nil {
		checks = append(checks, healthCheck{"redis", platformredis.Health(redisClient)})
	}
	if kafkaClient != nil {
		checks = append(checks, healthCheck{"kafka", func(ctx context.Context) error {
			return kafka.Health(ctx, kafkaClient)
		}})
	}

	r := newRouter(log, metrics.New(), health(log, checks...),
		custodyhandler.New(custodySvc, keyDateSvc, jwtValidator, log),
		switchhandler.New(switches, admin.FromConfig(cfg.Auth.AdminToken, cfg.Auth.AdminTokenHash), log),
	)

	var consumerClient *kgo.Client
	if kafkaClient != nil {
		consumerClient, err = kafka.NewClient(cfg.Kafka,
			kgo.ConsumerGroup(cfg.Kafka.ConsumerGroup),
			kgo.ConsumeTopics(cfg.Kafka.MovementTopic),
			kgo.DisableAutoCommit(),
		)
		if err != nil {
			return err
		}
		defer consumerClient.Close()
	}

	srv := httpserver.New(cfg.Server, r)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting casework", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if consumerClient != nil {
		router := consumer.NewRouter(log, nil)
		router.Register(cfg.Kafka.MovementTopic, listener.NewMovementHandler(custodySvc, log))
		g.Go(func() error {
			log.Info("starting prison movement listener", "topic", cfg.Kafka.MovementTopic)
			return consumer.New(consumerClient, router, log).Run(gctx)
		})
	}

	return g.Wait()
}

func openPostgres(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := custodystore.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
