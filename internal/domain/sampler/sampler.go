// Package sampler draws ground-truth player properties: position,
// attribute scores, and potential.
package sampler

import (
	"github.com/okian/scoutgen/internal/domain/model"
	"github.com/okian/scoutgen/internal/domain/rng"
)

// Option applies a configuration option to a sampler constructor.
type Option func(*options)

type options struct {
	src    rng.Source
	boosts map[model.Position]Boost
}

func newOptions(opts []Option) *options {
	o := &options{
		src:    rng.NewTimeSeeded(),
		boosts: DefaultBoosts(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithSource sets the random source used for draws.
func WithSource(src rng.Source) Option {
	return func(o *options) {
		if src != nil {
			o.src = src
		}
	}
}

// WithBoosts replaces the position boost table. Only the attribute sampler
// reads it; the table must still cover every position.
func WithBoosts(boosts map[model.Position]Boost) Option {
	return func(o *options) {
		if len(boosts) > 0 {
			o.boosts = boosts
		}
	}
}

// PositionSampler draws playing positions uniformly.
type PositionSampler struct {
	src rng.Source
}

// NewPositionSampler builds a PositionSampler.
func NewPositionSampler(opts ...Option) *PositionSampler {
	o := newOptions(opts)
	return &PositionSampler{src: o.src}
}

// Generate returns a uniform random position. All thirteen positions are
// equally likely; there is no weighting by squad composition.
func (s *PositionSampler) Generate() model.Position {
	return rng.Pick(s.src, model.Positions())
}

// AgeSampler draws player ages uniformly in [16,35].
type AgeSampler struct {
	src rng.Source
}

// NewAgeSampler builds an AgeSampler.
func NewAgeSampler(opts ...Option) *AgeSampler {
	o := newOptions(opts)
	return &AgeSampler{src: o.src}
}

// Generate returns a uniform random age.
func (s *AgeSampler) Generate() int {
	return rng.IntBetween(s.src, model.MinAge, model.MaxAge)
}
