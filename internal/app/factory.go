package app

import (
	"github.com/okian/scoutgen/internal/domain/model"
	"github.com/okian/scoutgen/internal/domain/names"
	"github.com/okian/scoutgen/internal/domain/rng"
	"github.com/okian/scoutgen/internal/domain/sampler"
)

// Factory composes the name, age, position, attribute, and potential
// samplers into complete Player entities.
type Factory struct {
	names      *names.Generator
	ages       *sampler.AgeSampler
	positions  *sampler.PositionSampler
	attributes *sampler.AttributeSampler
	potentials *sampler.PotentialSampler
}

// NewFactory wires the samplers over one shared random source. Extra
// region name pools may be merged in; the boost table is validated here,
// at construction, rather than at sampling time.
func NewFactory(src rng.Source, regions map[string]names.Pool, defaultRegion string) (*Factory, error) {
	attrs, err := sampler.NewAttributeSampler(sampler.WithSource(src))
	if err != nil {
		return nil, err
	}
	return &Factory{
		names: names.NewGenerator(
			names.WithSource(src),
			names.WithRegions(regions),
			names.WithDefaultRegion(defaultRegion),
		),
		ages:       sampler.NewAgeSampler(sampler.WithSource(src)),
		positions:  sampler.NewPositionSampler(sampler.WithSource(src)),
		attributes: attrs,
		potentials: sampler.NewPotentialSampler(sampler.WithSource(src)),
	}, nil
}

// Generate produces one ground-truth player for a region. The scout's
// skill profile shapes the sampling ranges (talent spotting raises the
// attribute ceiling); the result is immutable ground truth.
func (f *Factory) Generate(regionID string, skills model.SkillProfile) model.Player {
	age := f.ages.Generate()
	position := f.positions.Generate()

	return model.Player{
		Name:       f.names.Generate(regionID),
		RegionID:   regionID,
		Age:        age,
		Position:   position,
		Attributes: f.attributes.Generate(position, skills),
		Potential:  f.potentials.Generate(age, skills),
	}
}
