// Command scoutgen generates a roster of football players with scouting
// reports and, when a database path is configured, persists them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/scoutgen/internal/adapters/repository"
	"github.com/okian/scoutgen/internal/app"
	"github.com/okian/scoutgen/internal/batch"
	"github.com/okian/scoutgen/internal/config"
	"github.com/okian/scoutgen/internal/domain/model"
	"github.com/okian/scoutgen/internal/domain/rng"
	"github.com/okian/scoutgen/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("scoutgen: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags override the layered config.
	var (
		region  = flag.String("region", cfg.Region, "region id for generated players")
		count   = flag.Int("count", cfg.BatchSize, "number of players to generate")
		workers = flag.Int("workers", cfg.Workers, "concurrent generation workers")
		seed    = flag.Int64("seed", cfg.Seed, "random seed; 0 seeds from the clock")
		dbPath  = flag.String("db", cfg.DBPath, "sqlite path for persistence; empty keeps results in memory")
	)
	flag.Parse()

	if err := logger.Init(cfg.LogFormat); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel))
		_ = logger.SetLevelString("info")
	}

	src := rng.NewTimeSeeded()
	if *seed != 0 {
		src = rng.New(*seed)
	}

	store, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	svc, err := app.New(
		app.WithSource(src),
		app.WithStore(store),
		app.WithLogger(log),
		app.WithRegions(cfg.Regions),
		app.WithDefaultRegion(cfg.DefaultRegion),
	)
	if err != nil {
		return fmt.Errorf("build service: %w", err)
	}

	runner := batch.NewRunner(svc,
		batch.WithCount(*count),
		batch.WithWorkers(*workers),
		batch.WithNameRetries(cfg.NameRetries),
		batch.WithLogger(log),
	)

	skills := model.SkillProfile(cfg.ScoutSkills)
	roster, stats, err := runner.Run(ctx, *region, skills)
	if err != nil {
		return fmt.Errorf("run batch: %w", err)
	}

	for _, res := range roster {
		p, rep := res.Player, res.Report
		fmt.Printf("%-24s %3s  age %2d  T%2d P%2d M%2d  pot %2d  [%s]\n",
			p.Name, p.Position, p.Age,
			rep.Perceived.Technical, rep.Perceived.Physical, rep.Perceived.Mental,
			rep.PerceivedPotential, res.StoredID)
		fmt.Printf("  confidence: attributes %d%%, potential %d%%\n",
			rep.Confidence.Attributes, rep.Confidence.Potential)
		fmt.Printf("  %s\n", rep.Text)
	}

	log.Info(ctx, "roster generated",
		logger.String("region", *region),
		logger.Int("players", stats.Generated),
		logger.Int("duplicateNames", stats.DuplicateNames),
		logger.String("elapsed", stats.Elapsed.String()),
	)
	return nil
}

// openStore picks the persistence sink: SQLite when a path is configured,
// otherwise in-memory.
func openStore(dbPath string) (repository.Store, error) {
	if dbPath == "" {
		return repository.NewMemStore(), nil
	}
	store, err := repository.OpenSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}
