package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agora/internal/access"
	accessMetrics "agora/internal/access/metrics"
	"agora/internal/featureflags"
	jwttoken "agora/internal/jwt_token"
	marketHandler "agora/internal/marketplace/handler"
	marketMetrics "agora/internal/marketplace/metrics"
	marketService "agora/internal/marketplace/service"
	marketStore "agora/internal/marketplace/store"
	membershipHandler "agora/internal/membership/handler"
	membershipMetrics "agora/internal/membership/metrics"
	membershipService "agora/internal/membership/service"
	membershipStore "agora/internal/membership/store"
	"agora/internal/payout/gateway"
	payoutHandler "agora/internal/payout/handler"
	payoutMetrics "agora/internal/payout/metrics"
	payoutService "agora/internal/payout/service"
	payoutStore "agora/internal/payout/store"
	"agora/internal/platform/cache"
	"agora/internal/platform/config"
	"agora/internal/platform/eventbus"
	"agora/internal/platform/kafka"
	"agora/internal/platform/metrics"
	"agora/internal/platform/middleware"
	"agora/internal/platform/postgres"
	"agora/internal/platform/redis"
	"agora/pkg/platform/httputil"
	"agora/pkg/platform/tx"
)

const (
	accessCachePrefix = "agora:access:"
	tokenIssuer       = "agora"
	tokenAudience     = "agora-api"
)

// infra holds the backing services chosen from configuration. Every external
// dependency is optional and falls back to an in-process implementation.
type infra struct {
	db        *sql.DB
	redis     *redis.Client
	cache     cache.Cache
	flags     featureflags.Store
	publisher eventbus.Publisher
	events    *eventbus.Router
	consume   func(ctx context.Context) error
	closers   []func()
}

func openInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	in := &infra{events: eventbus.NewRouter(log)}

	db, err := postgres.Open(ctx, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	if db != nil {
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		in.db = db
		in.closers = append(in.closers, func() { _ = db.Close() })
		log.Info("postgres connected")
	}

	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		in.Close()
		return nil, err
	}
	if client != nil {
		in.redis = client
		in.cache = cache.NewRedis(client.Client, accessCachePrefix)
		in.flags = featureflags.NewRedisStore(client.Client)
		in.closers = append(in.closers, func() { _ = client.Close() })
		log.Info("redis connected")
	} else {
		in.cache = cache.NewMemory()
		in.flags = featureflags.NewInMemoryStore()
	}
	return in, nil
}

// connectEvents picks the access event transport. It runs after every handler
// is registered on the router so the consumer subscribes to all topics.
func (in *infra) connectEvents(cfg config.KafkaConfig, log *slog.Logger) error {
	if len(cfg.Brokers) == 0 {
		bus := eventbus.NewInMemory()
		bus.Attach(in.events)
		in.publisher = bus
		return nil
	}

	producer, err := kafka.NewClient(cfg)
	if err != nil {
		return err
	}
	in.closers = append(in.closers, producer.Close)
	in.publisher = kafka.NewProducer(producer)

	consumer, err := kafka.NewClient(cfg, in.events.Topics()...)
	if err != nil {
		return err
	}
	in.closers = append(in.closers, consumer.Close)
	in.consume = func(ctx context.Context) error {
		err := kafka.NewConsumer(consumer, log).Run(ctx, in.events)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	log.Info("kafka connected", "brokers", cfg.Brokers)
	return nil
}

func (in *infra) Close() {
	for i := len(in.closers) - 1; i >= 0; i-- {
		in.closers[i]()
	}
}

func (in *infra) runner() tx.Runner {
	if in.db != nil {
		return tx.NewSQLRunner(in.db)
	}
	return tx.NewInMemoryRunner()
}

type application struct {
	members *membershipService.Service
	payouts *payoutService.SellerPayoutService
	router  http.Handler
}

func buildApp(cfg config.Server, in *infra, log *slog.Logger) (*application, error) {
	runner := in.runner()

	var (
		memberships  membershipService.MembershipStore
		capabilities membershipService.CapabilityStore
		permissions  membershipService.PermissionStore
		transactions payoutService.TransactionRepository
		balances     payoutService.BalanceRepository
		ledger       payoutService.LedgerRepository
		payoutConfs  payoutService.PayoutConfigRepository
	)
	if in.db != nil {
		memberships = membershipStore.NewPostgresMembershipStore(in.db)
		capabilities = membershipStore.NewPostgresCapabilityStore(in.db)
		permissions = membershipStore.NewPostgresPermissionStore(in.db)
		transactions = payoutStore.NewPostgresTransactions(in.db)
		balances = payoutStore.NewPostgresBalances(in.db)
		ledger = payoutStore.NewPostgresLedger(in.db)
		payoutConfs = payoutStore.NewPostgresPayoutConfigs(in.db)
	} else {
		memberships = membershipStore.NewInMemoryMembershipStore()
		capabilities = membershipStore.NewInMemoryCapabilityStore()
		permissions = membershipStore.NewInMemoryPermissionStore()
		transactions = payoutStore.NewInMemoryTransactions()
		balances = payoutStore.NewInMemoryBalances()
		ledger = payoutStore.NewInMemoryLedger()
		payoutConfs = payoutStore.NewInMemoryPayoutConfigs()
	}

	evaluator, err := access.New(memberships, capabilities, permissions, in.cache,
		access.WithLogger(log),
		access.WithMetrics(accessMetrics.New()),
		access.WithCacheTTL(cfg.Access.CacheTTL),
	)
	if err != nil {
		return nil, fmt.Errorf("access evaluator: %w", err)
	}
	access.NewInvalidationHandler(evaluator, log).Register(in.events)
	if err := in.connectEvents(cfg.Kafka, log); err != nil {
		return nil, err
	}

	members, err := membershipService.New(memberships, capabilities, permissions, evaluator, runner,
		membershipService.WithLogger(log),
		membershipService.WithMetrics(membershipMetrics.New()),
		membershipService.WithPublisher(in.publisher),
	)
	if err != nil {
		return nil, fmt.Errorf("membership service: %w", err)
	}

	flags, err := featureflags.New(in.flags, evaluator,
		featureflags.WithLogger(log),
		featureflags.WithDefault(featureflags.FlagMarketplace, cfg.Features.MarketplaceDefault),
	)
	if err != nil {
		return nil, fmt.Errorf("feature flags: %w", err)
	}

	payoutGateway, err := newPayoutGateway(cfg.Payout, log)
	if err != nil {
		return nil, err
	}

	stores := marketStore.NewInMemoryStores()
	items := marketStore.NewInMemoryItems()
	checkouts := marketStore.NewInMemoryCheckouts()
	inquiries := marketStore.NewInMemoryInquiries()
	fees := marketStore.NewInMemoryFeeConfigs()
	marketRunner := tx.NewInMemoryRunner()

	pm := payoutMetrics.New()
	payouts, err := payoutService.NewSellerPayoutService(payoutService.SellerPayoutDeps{
		Transactions: transactions,
		Balances:     balances,
		Ledger:       ledger,
		Configs:      payoutConfs,
		Checkouts:    checkouts,
		Stores:       stores,
		Gateway:      payoutGateway,
		Authz:        evaluator,
		Tx:           runner,
	}, payoutService.WithLogger(log), payoutService.WithMetrics(pm))
	if err != nil {
		return nil, fmt.Errorf("payout service: %w", err)
	}
	payoutConfigs, err := payoutService.NewTerritoryPayoutConfigService(payoutConfs, evaluator, runner,
		payoutService.WithLogger(log), payoutService.WithMetrics(pm))
	if err != nil {
		return nil, fmt.Errorf("payout config service: %w", err)
	}

	mm := marketMetrics.New()
	storeSvc, err := marketService.NewStoreService(stores, items, inquiries, flags, membershipService.NewAccessRules(memberships),
		marketService.WithLogger(log), marketService.WithMetrics(mm))
	if err != nil {
		return nil, fmt.Errorf("store service: %w", err)
	}
	cartSvc, err := marketService.NewCartService(marketStore.NewInMemoryCarts(), items, stores, checkouts, inquiries, fees, flags, marketRunner,
		marketService.WithLogger(log), marketService.WithMetrics(mm))
	if err != nil {
		return nil, fmt.Errorf("cart service: %w", err)
	}
	checkoutSvc, err := marketService.NewCheckoutService(checkouts, stores, evaluator, marketRunner,
		marketService.WithLogger(log), marketService.WithMetrics(mm), marketService.WithPaidCheckoutProcessor(payouts),
		marketService.WithRefundedCheckoutProcessor(payouts))
	if err != nil {
		return nil, fmt.Errorf("checkout service: %w", err)
	}
	feeSvc, err := marketService.NewPlatformFeeService(fees, evaluator, marketRunner,
		marketService.WithLogger(log), marketService.WithMetrics(mm))
	if err != nil {
		return nil, fmt.Errorf("fee service: %w", err)
	}

	httpMetrics := metrics.New()
	validator := jwttoken.NewValidator(jwttoken.NewJWTService(cfg.JWTSigningKey, tokenIssuer, tokenAudience))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recover(log))
	r.Use(middleware.Logger(log, httpMetrics))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if in.redis != nil {
			if err := in.redis.Health(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, log))
		membershipHandler.New(members, log).Register(r)
		featureflags.NewHandler(flags, log).Register(r)
		marketHandler.New(storeSvc, cartSvc, checkoutSvc, feeSvc, log).Register(r)
		payoutHandler.New(payouts, payoutConfigs, log).Register(r)
	})

	return &application{members: members, payouts: payouts, router: r}, nil
}

// newPayoutGateway uses the HTTP provider when configured. Without one,
// payouts are recorded for manual settlement.
func newPayoutGateway(cfg config.PayoutConfig, log *slog.Logger) (gateway.Gateway, error) {
	if cfg.GatewayURL == "" {
		log.Warn("no payout gateway configured, payouts will be settled manually")
		return gateway.NewManual(), nil
	}
	client, err := gateway.NewHTTPClient(cfg.GatewayURL, cfg.GatewayAPIKey, cfg.GatewayTimeout,
		gateway.WithLogger(log),
		gateway.WithRetries(cfg.GatewayRetries),
	)
	if err != nil {
		return nil, fmt.Errorf("payout gateway: %w", err)
	}
	return client, nil
}
