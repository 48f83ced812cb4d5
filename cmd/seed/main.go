// Command seed loads the demo catalog and the two demo accounts. Inserts are
// upserts keyed on natural identifiers, so reruns are safe.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/equipledger/salesledger-backend/internal/metrics"
	"github.com/equipledger/salesledger-backend/internal/model"
	"github.com/equipledger/salesledger-backend/internal/repository/postgres"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	PostgresDSN string `long:"postgres-dsn" env:"SEED_POSTGRES_DSN" description:"PostgreSQL DSN" required:"true"`
}

var users = []model.User{
	{
		Name:          "Agent Alat Berat (Budi)",
		Email:         "budi@heavyequip.dev",
		WalletAddress: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		Role:          model.RoleAgent,
	},
	{
		Name:          "Inspektor Siti",
		Email:         "siti@heavyequip.dev",
		WalletAddress: "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
		Role:          model.RoleAuditor,
	},
}

var items = []model.Item{
	{Name: "Caterpillar 320 Excavator", Price: 1800000000, Stock: 5},
	{Name: "Komatsu D65 Bulldozer", Price: 2500000000, Stock: 2},
	{Name: "Sany SY215C Excavator", Price: 1600000000, Stock: 4},
	{Name: "Zoomlion QUY50 Crane", Price: 3200000000, Stock: 1},
	{Name: "Volvo FMX Dump Truck", Price: 2100000000, Stock: 3},
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := postgres.NewRepository(cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return err
	}
	defer func() {
		_ = repo.Close()
	}()

	for _, user := range users {
		id, err := repo.UpsertUser(ctx, user)
		if err != nil {
			return err
		}
		logger.Info("seeded user",
			zap.String("user_id", id),
			zap.String("email", user.Email),
			zap.String("role", string(user.Role)))
	}

	for _, item := range items {
		id, err := repo.UpsertItem(ctx, item)
		if err != nil {
			return err
		}
		logger.Info("seeded item", zap.String("item_id", id), zap.String("name", item.Name))
	}

	logger.Info("seed complete", zap.Int("users", len(users)), zap.Int("items", len(items)))
	return nil
}
