// Package names generates plausible player names per region.
package names

import (
	"github.com/okian/scoutgen/internal/domain/rng"
)

// DefaultRegion receives lookups for regions without name tables.
const DefaultRegion = "england"

// Pool holds the first- and last-name lists for one region.
type Pool struct {
	First []string `koanf:"first" json:"first"`
	Last  []string `koanf:"last" json:"last"`
}

// valid reports whether the pool can produce a full name.
func (p Pool) valid() bool {
	return len(p.First) > 0 && len(p.Last) > 0
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSource sets the random source used for draws.
func WithSource(src rng.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithRegions merges extra region pools over the built-in tables.
// Pools missing either name list are ignored.
func WithRegions(pools map[string]Pool) Option {
	return func(g *Generator) {
		for region, pool := range pools {
			if pool.valid() {
				g.pools[region] = pool
			}
		}
	}
}

// WithDefaultRegion overrides the fallback region. Unknown fallbacks are
// ignored so the generator always has a usable default.
func WithDefaultRegion(region string) Option {
	return func(g *Generator) {
		g.fallback = region
	}
}

// Generator produces full names from per-region pools. Unknown regions
// silently fall back to the default region; name generation never fails.
type Generator struct {
	pools    map[string]Pool
	fallback string
	src      rng.Source
}

// NewGenerator builds a Generator over the built-in tables plus options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		pools:    builtinPools(),
		fallback: DefaultRegion,
		src:      rng.NewTimeSeeded(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if _, ok := g.pools[g.fallback]; !ok {
		g.fallback = DefaultRegion
	}
	return g
}

// Regions returns the region ids with a usable name pool.
func (g *Generator) Regions() []string {
	out := make([]string, 0, len(g.pools))
	for region := range g.pools {
		out = append(out, region)
	}
	return out
}

// Known reports whether a region has its own name pool.
func (g *Generator) Known(regionID string) bool {
	_, ok := g.pools[regionID]
	return ok
}

// Generate returns "First Last" drawn independently and uniformly from the
// region's pools, degrading to the fallback region when the region is
// unknown.
func (g *Generator) Generate(regionID string) string {
	pool, ok := g.pools[regionID]
	if !ok {
		pool = g.pools[g.fallback]
	}
	first := rng.Pick(g.src, pool.First)
	last := rng.Pick(g.src, pool.Last)
	return first + " " + last
}
