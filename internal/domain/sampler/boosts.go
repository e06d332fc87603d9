package sampler

import "github.com/okian/scoutgen/internal/domain/model"

// Boost shifts the base attribute sampling range for one position. The
// shift applies to both bounds before clamping to [1,10].
type Boost struct {
	Technical int
	Physical  int
	Mental    int
}

// DefaultBoosts returns the position boost table. The returned map is
// fresh on every call so callers can adjust a copy without sharing state.
func DefaultBoosts() map[model.Position]Boost {
	return map[model.Position]Boost{
		model.GK:  {Technical: 0, Physical: 1, Mental: 1},
		model.CB:  {Technical: 0, Physical: 2, Mental: 0},
		model.RB:  {Technical: 0, Physical: 1, Mental: 0},
		model.LB:  {Technical: 0, Physical: 1, Mental: 0},
		model.CDM: {Technical: 0, Physical: 1, Mental: 1},
		model.CM:  {Technical: 1, Physical: 0, Mental: 1},
		model.CAM: {Technical: 3, Physical: -1, Mental: 0},
		model.RM:  {Technical: 1, Physical: 0, Mental: 0},
		model.LM:  {Technical: 1, Physical: 0, Mental: 0},
		model.RW:  {Technical: 2, Physical: 0, Mental: 0},
		model.LW:  {Technical: 2, Physical: 0, Mental: 0},
		model.ST:  {Technical: 1, Physical: 1, Mental: 0},
		model.CF:  {Technical: 2, Physical: 0, Mental: 0},
	}
}

// validateBoosts ensures the table covers the full position enum, so a
// lookup never needs an optional-chaining fallback at sampling time.
func validateBoosts(boosts map[model.Position]Boost) error {
	for _, p := range model.Positions() {
		if _, ok := boosts[p]; !ok {
			return ErrIncompleteBoostTable
		}
	}
	return nil
}
