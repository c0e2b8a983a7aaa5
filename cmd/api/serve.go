package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpadp "agrimarket-backend/internal/adapter/http"
	"agrimarket-backend/internal/adapter/gateway/razorpay"
	"agrimarket-backend/internal/adapter/identity"
	"agrimarket-backend/internal/adapter/prediction"
	"agrimarket-backend/internal/adapter/repository/mongodb"
	"agrimarket-backend/internal/adapter/repository/mysql"
	"agrimarket-backend/internal/config"
	"agrimarket-backend/internal/domain/insight"
	"agrimarket-backend/internal/domain/payment"
	"agrimarket-backend/internal/infrastructure/cache"
	"agrimarket-backend/internal/infrastructure/db"
	"agrimarket-backend/internal/infrastructure/docstore"
	"agrimarket-backend/internal/infrastructure/logging"
	"agrimarket-backend/internal/infrastructure/metrics"
	adminUC "agrimarket-backend/internal/usecase/admin"
	"agrimarket-backend/internal/usecase/auditlog"
	authUC "agrimarket-backend/internal/usecase/auth"
	buyerUC "agrimarket-backend/internal/usecase/buyer"
	contractUC "agrimarket-backend/internal/usecase/contract"
	deliveryUC "agrimarket-backend/internal/usecase/delivery"
	"agrimarket-backend/internal/usecase/demand"
	farmerUC "agrimarket-backend/internal/usecase/farmer"
	insightUC "agrimarket-backend/internal/usecase/insight"
	"agrimarket-backend/internal/usecase/notification"
	paymentUC "agrimarket-backend/internal/usecase/payment"
	qualityUC "agrimarket-backend/internal/usecase/quality"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	outboundTimeout = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config: %w", err)
			}
			log, err := logging.NewLogger(string(cfg.Mode))
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, log)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	for _, w := range cfg.DemoWarnings() {
		log.Warn("demo mode", zap.String("detail", w))
	}

	store, err := docstore.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = store.Close(closeCtx)
	}()
	if err := docstore.EnsureIndexes(ctx, store.DB(), log); err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}

	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB, log)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	auditDB, err := db.OpenGorm(cfg.AuditDriver, cfg.AuditDataSource(), log)
	if err != nil {
		return fmt.Errorf("audit db: %w", err)
	}
	if err := mysql.Migrate(auditDB); err != nil {
		return fmt.Errorf("audit migrate: %w", err)
	}

	m := metrics.New()

	senders := []notification.Sender{notification.NewLogSender(log)}
	if cfg.NotifyWebhookURL != "" {
		senders = append(senders, notification.NewWebhookSender(cfg.NotifyWebhookURL))
	}
	notify := notification.NewService(log, m, senders...)

	var source insight.PredictionSource
	if cfg.PredictionSource == config.PredictionHTTP {
		source = prediction.NewClient(cfg.AIServiceURL, outboundTimeout)
	} else {
		source = prediction.NewRandom(time.Now().UnixNano())
	}

	var gateway payment.Gateway
	if cfg.RazorpayKeySecret == "" {
		gateway = razorpay.NewFake(cfg.RazorpayKeyID)
	} else {
		gateway = razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayBaseURL, outboundTimeout)
	}

	mdb := store.DB()
	users := mongodb.NewUserRepository(mdb)
	farmers := mongodb.NewFarmerRepository(mdb)
	crops := mongodb.NewCropRepository(mdb)
	buyers := mongodb.NewBuyerRepository(mdb)
	contracts := mongodb.NewContractRepository(mdb)
	payments := mongodb.NewPaymentRepository(mdb)
	checks := mongodb.NewQualityRepository(mdb)
	insights := mongodb.NewInsightRepository(mdb)
	deliveries := mongodb.NewDeliveryRepository(mdb)

	tokens := identity.NewJWT(cfg.JWTSecret, cfg.JWTTTL)
	rec := auditlog.NewRecorder(mysql.NewAuditRepository(auditDB), log)

	authSvc := authUC.NewUsecase(users, farmers, buyers, identity.NewCredentials(mdb), tokens, log)
	if cfg.IsDemo() {
		authSvc.EnableMockLogin()
	}
	contractSvc := contractUC.NewUsecase(contracts, buyers, farmers, notify, rec, m, log)
	qualitySvc := qualityUC.NewUsecase(checks, contracts, log)
	paymentSvc := paymentUC.NewUsecase(payments, contracts, gateway, cfg.SignatureSecret(), rec, notify, m, log)

	router := &httpadp.Router{
		Tokens:   tokens,
		Redis:    rdb,
		IdempTTL: time.Duration(cfg.IdempTTLSecs) * time.Second,
		Metrics:  m,
		Log:      log,

		Health:   httpadp.NewHandler(),
		Auth:     httpadp.NewAuthHandler(authSvc, log),
		Contract: httpadp.NewContractHandler(contractSvc, log),
		Buyer:    httpadp.NewBuyerHandler(buyerUC.NewUsecase(buyers, contracts), contractSvc, log),
		Farmer:   httpadp.NewFarmerHandler(farmerUC.NewUsecase(farmers, crops, contracts, demand.NewEstimator(time.Now().UnixNano())), log),
		Payment:  httpadp.NewPaymentHandler(paymentSvc, log),
		Admin:    httpadp.NewAdminHandler(adminUC.NewUsecase(users, contracts, contractSvc, qualitySvc, rec, log), log),
		Quality:  httpadp.NewQualityHandler(qualitySvc, log),
		Insight:  httpadp.NewInsightHandler(insightUC.NewUsecase(insights, source, notify, m, log), log),
		Delivery: httpadp.NewDeliveryHandler(deliveryUC.NewUsecase(deliveries, contracts, notify, log), log),
	}

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router.NewEcho(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("mode", string(cfg.Mode)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
