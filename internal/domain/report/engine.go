// Package report turns a ground-truth player into a scout's perceived
// assessment: noised attributes, confidence figures, and commentary.
package report

import (
	"math"

	"github.com/okian/scoutgen/internal/domain/model"
	"github.com/okian/scoutgen/internal/domain/rng"
)

// Accuracy model constants. Accuracy starts at the base and is capped so a
// perfect scout still carries some noise.
const (
	baseAccuracy = 0.70
	maxAccuracy  = 0.95

	attrTalentWeight    = 0.15
	attrKnowledgeWeight = 0.15
	potAssessmentWeight = 0.20
	potTalentWeight     = 0.10
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithSource sets the random source used for noise draws.
func WithSource(src rng.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.src = src
		}
	}
}

// Engine produces perceived reports. It performs no I/O and holds no
// per-player state; the injected random source is its only dependency.
type Engine struct {
	src rng.Source
}

// NewEngine builds an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{src: rng.NewTimeSeeded()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate evaluates a player through a scout's eyes. The same player with
// a different skill profile yields a fresh report; nothing is mutated.
func (e *Engine) Generate(player model.Player, skills model.SkillProfile) model.Report {
	attrAcc, potAcc := accuracies(player.Position, skills)

	perceived := model.Attributes{
		Technical: e.perceive(player.Attributes.Technical, attrAcc),
		Physical:  e.perceive(player.Attributes.Physical, attrAcc),
		Mental:    e.perceive(player.Attributes.Mental, attrAcc),
	}
	potential := e.perceive(player.Potential, potAcc)

	return model.Report{
		Perceived:          perceived,
		PerceivedPotential: potential,
		Text:               Text(player.Age, player.Position, perceived, potential),
		Confidence: model.Confidence{
			Attributes: confidence(attrAcc),
			Potential:  confidence(potAcc),
		},
	}
}

// accuracies derives the attribute and potential perception accuracy from
// the scout's skills. Both figures are capped at 0.95.
func accuracies(position model.Position, skills model.SkillProfile) (attrAcc, potAcc float64) {
	talent := skills.Impact(model.SkillTalentSpotting)
	knowledge := skills.Impact(model.KnowledgeFor(position.RoleOf()))
	assessment := skills.Impact(model.SkillPlayerPotential)

	attrAcc = math.Min(maxAccuracy, baseAccuracy+talent*attrTalentWeight+knowledge*attrKnowledgeWeight)
	potAcc = math.Min(maxAccuracy, baseAccuracy+assessment*potAssessmentWeight+talent*potTalentWeight)
	return attrAcc, potAcc
}

// perceive applies the noise model to one true value: a uniform error of
// at most 10-floor(accuracy*10) points, signed by a coin flip, clamped
// back to [1,10].
func (e *Engine) perceive(truth int, accuracy float64) int {
	maxError := 10 - int(math.Floor(accuracy*10))
	if maxError < 0 {
		maxError = 0
	}
	err := rng.IntBetween(e.src, 0, maxError)
	if rng.Coin(e.src) {
		err = -err
	}
	return model.ClampAttribute(truth + err)
}

// confidence reports the pre-noise accuracy as a whole percentage. It
// never reflects the realized error draw.
func confidence(accuracy float64) int {
	return int(math.Floor(accuracy * 100))
}
