package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	gateway "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/project/bookcrossing/api/lending"
	"github.com/project/bookcrossing/config"
	"github.com/project/bookcrossing/db"
	"github.com/project/bookcrossing/internal/controller"
	"github.com/project/bookcrossing/internal/identity"
	"github.com/project/bookcrossing/internal/notification"
	"github.com/project/bookcrossing/internal/usecase/library"
	"github.com/project/bookcrossing/internal/usecase/outbox"
	"github.com/project/bookcrossing/internal/usecase/repository"
	"github.com/project/bookcrossing/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const (
	shutDownSeconds   = 3
	readHeaderTimeout = 5 * time.Second
)

func Run(l *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracer, err := initTracer(cfg)
	if err != nil {
		l.Error("can not init tracer", zap.Error(err))
		return
	}
	defer shutdownTracer()

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		l.Error("can not create pgxpool", zap.Error(err))
		return
	}
	defer dbPool.Close()

	if err = db.SetupPostgres(dbPool, l); err != nil {
		l.Error("can not apply migrations", zap.Error(err))
		return
	}

	repo := repository.New(logger.Enabled(l, cfg.Log.LogDBRepo, "repository"), dbPool)
	outboxRepository := repository.NewOutbox(dbPool, cfg.Outbox.AttemptsRetry)
	transactor := repository.NewTransactor(logger.Enabled(l, cfg.Log.LogTransactor, "transactor"), dbPool)

	relay := runOutbox(ctx, cfg, l, outboxRepository, transactor)

	useCaseLogger := logger.Enabled(l, cfg.Log.LogUseCase, "usecase")
	resolver := identity.NewResolver()

	requests := library.NewRequests(useCaseLogger, repo, repo, outboxRepository, transactor)
	wishlist := library.NewWishlist(
		useCaseLogger,
		repo,
		repo,
		transactor,
		resolver,
		notification.NewGateway(useCaseLogger, outboxRepository),
		cfg.Notify,
	)

	ctrl := controller.New(logger.Enabled(l, cfg.Log.LogController, "controller"), requests, wishlist, resolver)

	grpcServer, err := runGrpc(cfg, l, ctrl)
	if err != nil {
		l.Error("can not start grpc server", zap.Error(err))
		return
	}

	restServer, err := runRest(cfg, l, ctrl)
	if err != nil {
		l.Error("can not start rest gateway", zap.Error(err))
		grpcServer.Stop()
		return
	}

	metricsServer := runMetrics(cfg, l)

	<-ctx.Done()
	l.Info("shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
	defer stop()

	grpcServer.GracefulStop()
	for _, srv := range []*http.Server{restServer, metricsServer} {
		if srv == nil {
			continue
		}
		if err = srv.Shutdown(shutdownCtx); err != nil {
			l.Error("http shutdown error", zap.Error(err), zap.String("addr", srv.Addr))
		}
	}
	relay.Wait()
}

func runOutbox(
	ctx context.Context,
	cfg *config.Config,
	l *zap.Logger,
	outboxRepository outbox.Repository,
	transactor outbox.Transactor,
) *sync.WaitGroup {
	globalHandler := notification.GlobalHandler(notification.NewHTTPClient(), cfg.Outbox)

	outboxService := outbox.New(
		logger.Enabled(l, cfg.Log.LogOutboxWorker, "outbox"),
		outboxRepository,
		globalHandler,
		cfg,
		transactor,
	)

	return outboxService.Start(
		ctx,
		cfg.Outbox.Workers,
		cfg.Outbox.BatchSize,
		cfg.Outbox.WaitTimeMS,
		cfg.Outbox.InProgressTTLMS,
	)
}

func runRest(cfg *config.Config, l *zap.Logger, srv lending.LendingServer) (*http.Server, error) {
	mux := gateway.NewServeMux()
	if err := controller.RegisterRoutes(mux, srv); err != nil {
		return nil, err
	}

	gatewayPort := ":" + cfg.GRPC.GatewayPort
	server := &http.Server{
		Addr:              gatewayPort,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		l.Info("gateway listening at port", zap.String("port", gatewayPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("gateway listen error", zap.Error(err))
		}
	}()

	return server, nil
}

func runGrpc(cfg *config.Config, l *zap.Logger, srv lending.LendingServer) (*grpc.Server, error) {
	port := ":" + cfg.GRPC.Port
	lis, err := net.Listen("tcp", port)
	if err != nil {
		return nil, err
	}

	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(identity.UnaryServerInterceptor()),
		grpc.ForceServerCodec(lending.Codec{}),
	)
	reflection.Register(s)

	lending.RegisterLendingServer(s, srv)

	go func() {
		l.Info("grpc server listening at port", zap.String("port", port))
		if err := s.Serve(lis); err != nil {
			l.Error("grpc server listen error", zap.Error(err))
		}
	}()

	return s, nil
}

// runMetrics serves the default prometheus registry. It is skipped when no
// port is configured.
func runMetrics(cfg *config.Config, l *zap.Logger) *http.Server {
	if cfg.Observability.MetricsPort == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              ":" + cfg.Observability.MetricsPort,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		l.Info("metrics listening at port", zap.String("port", cfg.Observability.MetricsPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("metrics listen error", zap.Error(err))
		}
	}()

	return server
}
