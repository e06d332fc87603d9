package sampler

import (
	"math"

	"github.com/okian/scoutgen/internal/domain/model"
	"github.com/okian/scoutgen/internal/domain/rng"
)

// Base attribute range before position boosts.
const (
	baseAttributeMin = 3
	baseAttributeMax = 9

	// Talent spotting can raise the sampling ceiling by up to this many
	// points.
	maxTalentCeilingRaise = 3
)

// AttributeSampler draws technical/physical/mental scores for a position,
// adjusted by the scout's skill profile.
type AttributeSampler struct {
	src    rng.Source
	boosts map[model.Position]Boost
}

// NewAttributeSampler builds an AttributeSampler. The boost table is
// validated for exhaustiveness up front.
func NewAttributeSampler(opts ...Option) (*AttributeSampler, error) {
	o := newOptions(opts)
	if err := validateBoosts(o.boosts); err != nil {
		return nil, err
	}
	return &AttributeSampler{src: o.src, boosts: o.boosts}, nil
}

// Generate draws the three attribute scores. Returned values always lie
// in [1,10].
func (s *AttributeSampler) Generate(position model.Position, skills model.SkillProfile) model.Attributes {
	boost := s.boosts[position]

	talent := skills.Impact(model.SkillTalentSpotting)
	knowledge := skills.Impact(model.KnowledgeFor(position.RoleOf()))
	// Role knowledge is meant to narrow the sampling span toward the
	// position's archetype. The narrowing is computed but not yet applied.
	// TODO: fold the knowledge impact into the span once perception tuning
	// is settled; tests pin the current unnarrowed ranges.
	_ = knowledge

	return model.Attributes{
		Technical: s.draw(boost.Technical, talent),
		Physical:  s.draw(boost.Physical, talent),
		Mental:    s.draw(boost.Mental, talent),
	}
}

// draw samples one attribute from the boosted, clamped range. Talent
// spotting raises the ceiling by floor(impact*3), capped at 10.
func (s *AttributeSampler) draw(boost int, talentImpact float64) int {
	lo := model.ClampAttribute(baseAttributeMin + boost)
	hi := model.ClampAttribute(baseAttributeMax + boost)

	hi += int(math.Floor(talentImpact * maxTalentCeilingRaise))
	if hi > model.MaxAttribute {
		hi = model.MaxAttribute
	}
	if lo > hi {
		lo = hi
	}
	return rng.IntBetween(s.src, lo, hi)
}
