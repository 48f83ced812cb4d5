package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/equipledger/salesledger-backend/internal/ledger"
	"github.com/equipledger/salesledger-backend/internal/metrics"
	"github.com/equipledger/salesledger-backend/internal/repository/postgres"
	"github.com/equipledger/salesledger-backend/internal/service/reconciler"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	PostgresDSN      string        `long:"postgres-dsn" env:"ORACLE_POSTGRES_DSN" description:"PostgreSQL DSN"`
	RPCURL           string        `long:"rpc-url" env:"ORACLE_RPC_URL" description:"EVM node RPC URL" default:"http://127.0.0.1:8545"`
	ContractAddress  string        `long:"contract-address" env:"ORACLE_CONTRACT_ADDRESS" description:"SalesManager contract address" required:"true"`
	OraclePrivateKey string        `long:"oracle-private-key" env:"ORACLE_PRIVATE_KEY" description:"hex private key of the oracle signer" required:"true"`
	ChainID          int64         `long:"chain-id" env:"ORACLE_CHAIN_ID" description:"EVM chain id" default:"31337"`
	PollInterval     time.Duration `long:"poll-interval" env:"ORACLE_POLL_INTERVAL" description:"delay between poll cycles" default:"5s"`
	CallTimeout      time.Duration `long:"call-timeout" env:"ORACLE_CALL_TIMEOUT" description:"timeout for contract calls" default:"30s"`
	RPCRateLimit     int           `long:"rpc-rate-limit" env:"ORACLE_RPC_RATE_LIMIT" description:"max RPC requests per second, 0 for unlimited" default:"0"`
	MetricsAddr      string        `long:"metrics-addr" env:"ORACLE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.PostgresDSN == "" {
		logger.Fatal("PostgreSQL DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("oracle worker failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := postgres.NewRepository(cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	evm, err := ledger.NewEVMClient(cfg.RPCURL, cfg.ContractAddress, cfg.OraclePrivateKey, cfg.ChainID, cfg.CallTimeout, logger)
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}
	defer evm.Close()
	client := ledger.NewObservedClient(evm, metrics.NewLedgerClient(), cfg.RPCRateLimit)

	workerMetrics := metrics.NewOracleWorker()
	processor := reconciler.NewProcessor(client, repo, workerMetrics, logger)
	worker := reconciler.NewWorker(client, repo, processor, workerMetrics, logger, cfg.PollInterval)
	return worker.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
