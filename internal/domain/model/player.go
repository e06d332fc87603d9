// Package model contains domain models passed between layers.
package model

// Attribute bounds shared across the generation pipeline.
const (
	MinAttribute = 1
	MaxAttribute = 10

	MinAge = 16
	MaxAge = 35
)

// Position is a playing position on the pitch.
type Position string

// The full position set. Samplers and lookup tables must cover every entry.
const (
	GK  Position = "GK"
	CB  Position = "CB"
	RB  Position = "RB"
	LB  Position = "LB"
	CDM Position = "CDM"
	CM  Position = "CM"
	CAM Position = "CAM"
	RM  Position = "RM"
	LM  Position = "LM"
	RW  Position = "RW"
	LW  Position = "LW"
	ST  Position = "ST"
	CF  Position = "CF"
)

// Positions lists every playing position in a fixed order.
func Positions() []Position {
	return []Position{GK, CB, RB, LB, CDM, CM, CAM, RM, LM, RW, LW, ST, CF}
}

// Role groups positions for scout-knowledge lookups.
type Role string

// Role buckets.
const (
	RoleGoalkeeper Role = "goalkeeper"
	RoleDefender   Role = "defender"
	RoleMidfielder Role = "midfielder"
	RoleForward    Role = "forward"
)

// RoleOf maps a position to its role bucket.
func (p Position) RoleOf() Role {
	switch p {
	case GK:
		return RoleGoalkeeper
	case CB, RB, LB:
		return RoleDefender
	case CDM, CM, CAM, RM, LM:
		return RoleMidfielder
	default:
		return RoleForward
	}
}

// Attributes holds the three core ability scores, each in [1,10].
type Attributes struct {
	Technical int `json:"technical"`
	Physical  int `json:"physical"`
	Mental    int `json:"mental"`
}

// Player is the ground truth for a generated player. It is immutable once
// generated; re-evaluation produces a new Report, never a changed Player.
type Player struct {
	Name       string     `json:"name"`
	RegionID   string     `json:"region_id"`
	Age        int        `json:"age"`
	Position   Position   `json:"position"`
	Attributes Attributes `json:"attributes"`
	Potential  int        `json:"potential"`
}

// ClampAttribute bounds a raw attribute or potential value to [1,10].
func ClampAttribute(v int) int {
	if v < MinAttribute {
		return MinAttribute
	}
	if v > MaxAttribute {
		return MaxAttribute
	}
	return v
}
