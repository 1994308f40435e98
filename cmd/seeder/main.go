// Command seeder imports destinations and packages from a YAML file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/config"
	dbRedis "github.com/kailas-cloud/tripdex/internal/db/redis"
	dombatch "github.com/kailas-cloud/tripdex/internal/domain/batch"
	logpkg "github.com/kailas-cloud/tripdex/internal/logger"
	destinationrepo "github.com/kailas-cloud/tripdex/internal/repository/destination"
	tourrepo "github.com/kailas-cloud/tripdex/internal/repository/tour"
	destinationuc "github.com/kailas-cloud/tripdex/internal/usecase/destination"
	seeduc "github.com/kailas-cloud/tripdex/internal/usecase/seed"
	touruc "github.com/kailas-cloud/tripdex/internal/usecase/tour"
)

func main() {
	file := flag.String("file", "config/seed.yaml", "path to the seed YAML file")
	flag.Parse()

	if err := run(*file); err != nil {
		fmt.Fprintln(os.Stderr, "seeder:", err)
		os.Exit(1)
	}
}

func run(file string) error {
	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Database.Driver != config.DriverRedis {
		return fmt.Errorf("seeding needs a persistent database, driver is %q", cfg.Database.Driver)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := seeduc.LoadFile(file)
	if err != nil {
		return err
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:      cfg.Database.Addrs,
		Username:   cfg.Database.Username,
		Password:   cfg.Database.Password,
		Standalone: cfg.Database.Standalone,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	svc := seeduc.New(
		destinationuc.New(destinationrepo.New(store, cfg.Storage.KeyPrefix)),
		touruc.New(tourrepo.New(store, cfg.Storage.KeyPrefix)),
	)
	report, err := svc.Import(ctx, catalog)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	for _, r := range report.All() {
		fields := []zap.Field{
			zap.String("kind", string(r.Kind())),
			zap.String("label", r.Label()),
			zap.String("status", string(r.Status())),
		}
		if r.Status() == dombatch.StatusError {
			logger.Warn("seed item failed", append(fields, zap.Error(r.Err()))...)
			continue
		}
		logger.Info("seed item", append(fields, zap.String("id", r.ID()))...)
	}

	sum := dombatch.Summarize(report.All())
	logger.Info("seed finished",
		zap.String("file", file),
		zap.Int("created", sum.OK),
		zap.Int("skipped", sum.Skipped),
		zap.Int("failed", sum.Failed),
	)
	if sum.Failed > 0 {
		return fmt.Errorf("%d items failed", sum.Failed)
	}
	return nil
}
