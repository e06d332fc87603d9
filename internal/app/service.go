// Package app provides the generation service that orchestrates player
// creation, scouting-report synthesis, and best-effort persistence.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/scoutgen/internal/adapters/repository"
	"github.com/okian/scoutgen/internal/domain/model"
	"github.com/okian/scoutgen/internal/domain/names"
	"github.com/okian/scoutgen/internal/domain/report"
	"github.com/okian/scoutgen/internal/domain/rng"
	"github.com/okian/scoutgen/pkg/logger"
	"github.com/okian/scoutgen/pkg/metrics"
)

// Result is what a generation request returns: the ground truth, the
// scout's perception of it, and where (if anywhere) it was stored.
type Result struct {
	Player   model.Player `json:"player"`
	Report   model.Report `json:"report"`
	StoredID string       `json:"stored_id"`
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the random source shared by every sampler.
func WithSource(src rng.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.src = src
		}
	}
}

// WithStore sets the persistence sink. Without one, results are returned
// unpersisted with locally generated ids.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegions merges extra region name pools over the built-ins.
func WithRegions(pools map[string]names.Pool) Option {
	return func(s *Service) {
		s.regions = pools
	}
}

// WithDefaultRegion overrides the name-table fallback region.
func WithDefaultRegion(region string) Option {
	return func(s *Service) {
		if region != "" {
			s.defaultRegion = region
		}
	}
}

// Service generates players and scouting reports per request and hands
// results to the persistence sink. Each call is independent and stateless;
// concurrent calls share only the random source.
type Service struct {
	factory *Factory
	engine  *report.Engine
	store   repository.Store

	src           rng.Source
	regions       map[string]names.Pool
	defaultRegion string

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		src:           rng.NewTimeSeeded(),
		defaultRegion: names.DefaultRegion,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("generation")
	}

	factory, err := NewFactory(s.src, s.regions, s.defaultRegion)
	if err != nil {
		return nil, fmt.Errorf("build player factory: %w", err)
	}
	s.factory = factory
	s.engine = report.NewEngine(report.WithSource(s.src))
	return s, nil
}

// Generate runs one full generation request. Validation failures return an
// error before any generation work; persistence failures do not fail the
// call, since the generated content is the valuable response either way.
func (s *Service) Generate(ctx context.Context, regionID string, skills model.SkillProfile) (Result, error) {
	start := time.Now()

	player, rep, err := s.GenerateUnstored(regionID, skills)
	if err != nil {
		return Result{}, err
	}

	storedID := s.Persist(ctx, player, rep)
	metrics.RecordGenerationLatency(float64(time.Since(start).Milliseconds()))

	return Result{Player: player, Report: rep, StoredID: storedID}, nil
}

// GenerateUnstored runs the pure generation phase: validation, player
// creation, and report synthesis, with no persistence side effect.
func (s *Service) GenerateUnstored(regionID string, skills model.SkillProfile) (model.Player, model.Report, error) {
	if strings.TrimSpace(regionID) == "" {
		metrics.RecordGenerationError()
		return model.Player{}, model.Report{}, fmt.Errorf("generate: %w", ErrMissingRegion)
	}

	player := s.factory.Generate(regionID, skills)
	metrics.RecordPlayerGenerated()

	rep := s.engine.Generate(player, skills)
	metrics.RecordReportGenerated()

	return player, rep, nil
}

// Persist hands the record to the sink. Failures are logged and absorbed;
// the caller always gets a stored id, locally minted when the sink did not
// provide one.
func (s *Service) Persist(ctx context.Context, player model.Player, rep model.Report) string {
	if s.store == nil {
		return uuid.New().String()
	}

	id, err := s.store.Save(ctx, repository.Record{Player: player, Report: rep})
	if err != nil || id == "" {
		metrics.RecordPersistenceFailure()
		s.logger.Warn(ctx, "persistence failed; returning result with local id",
			logger.String("player", player.Name),
			logger.Error(err),
		)
		return uuid.New().String()
	}

	metrics.RecordPersistenceStore()
	return id
}

// Regions exposes the known name-table regions, default first not
// guaranteed. Used by the CLI for input validation hints.
func (s *Service) Regions() []string {
	return s.factory.names.Regions()
}
