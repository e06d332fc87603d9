package sampler

import (
	"math"

	"github.com/okian/scoutgen/internal/domain/model"
	"github.com/okian/scoutgen/internal/domain/rng"
)

// Base potential range and the age curve bounds.
const (
	basePotentialMin = 5
	basePotentialMax = 9

	// ageFactor falls linearly from 1.0 at peakYouthAge to 0.0 at
	// peakYouthAge+ageFadeYears (30) and beyond.
	peakYouthAge = 16
	ageFadeYears = 14

	// An aging player's ceiling drops by up to this many points.
	maxAgeCeilingDrop = 3
)

// PotentialSampler draws a ceiling score adjusted by age and scout skill.
type PotentialSampler struct {
	src rng.Source
}

// NewPotentialSampler builds a PotentialSampler.
func NewPotentialSampler(opts ...Option) *PotentialSampler {
	o := newOptions(opts)
	return &PotentialSampler{src: o.src}
}

// AgeFactor returns the youth scaling for an age: 1.0 at 16, fading to
// 0.0 at 30 and beyond.
func AgeFactor(age int) float64 {
	f := 1.0 - float64(age-peakYouthAge)/float64(ageFadeYears)
	return math.Max(0, f)
}

// Generate draws a potential score in [1,10]. Older players lose up to
// three points of ceiling; age 16 keeps the full [5,9] range.
func (s *PotentialSampler) Generate(age int, skills model.SkillProfile) int {
	lo := basePotentialMin
	hi := basePotentialMax - int(math.Floor((1-AgeFactor(age))*maxAgeCeilingDrop))

	assessment := skills.Impact(model.SkillPlayerPotential)
	// Potential assessment is meant to narrow the sampling span. As with
	// attribute knowledge, the impact is computed but not yet applied.
	// TODO: apply the assessment narrowing together with the attribute-side
	// tuning; tests pin the current unnarrowed ranges.
	_ = assessment

	lo = model.ClampAttribute(lo)
	hi = model.ClampAttribute(hi)
	if lo > hi {
		lo = hi
	}
	return rng.IntBetween(s.src, lo, hi)
}
