package report

import (
	"strings"

	"github.com/okian/scoutgen/internal/domain/model"
)

// Comment tables. The exact sentences and their order are a contract:
// report text must be reproducible byte-for-byte from the same inputs.
const (
	ageUnder20  = "A promising young talent with plenty of time to develop."
	age20to23   = "Entering a key development phase of the career."
	age24to27   = "In the prime years of a footballer's career."
	ageOver27   = "An experienced player in the latter stage of the career."

	techHigh = "Technically gifted with excellent ball control."
	techMid  = "Shows solid technique on the ball."
	techLow  = "Technique needs considerable work."

	physHigh = "A physically dominant presence."
	physMid  = "Decent physical attributes for the level."
	physLow  = "Lacks the physicality required at the top level."

	mentHigh = "Reads the game exceptionally well."
	mentMid  = "Shows good composure and awareness."
	mentLow  = "Decision-making under pressure is a concern."

	gkHigh  = "Commands the area well and distributes confidently."
	gkLow   = "Handling and distribution need improvement."
	defHigh = "A commanding defender who wins the important duels."
	defLow  = "Can be exposed physically in defensive duels."
	midHigh = "Dictates the tempo from midfield."
	midLow  = "Struggles to impose control in midfield."
	fwdHigh = "A dangerous presence in the final third."
	fwdLow  = "Needs sharper finishing to be a regular threat."

	potWorldClass = "Has the potential to become a world-class player."
	potTopFlight  = "Could develop into a top-flight regular."
	potSolidPro   = "Shows promise of a solid professional career."
	potSquadRole  = "May carve out a useful squad role."
	potLimited    = "Unlikely to progress much beyond the current level."
)

// Attribute comment bucket thresholds.
const (
	bucketHigh = 8
	bucketMid  = 6
	bucketLow  = 4

	// Role comments branch high/low at this perceived score.
	roleThreshold = 7
)

// Text synthesizes scouting commentary from perceived values. It is a pure
// function: identical inputs yield byte-identical output. Sentences are
// emitted in fixed order (age, attributes, role, potential) with empty
// candidates dropped before joining.
func Text(age int, position model.Position, perceived model.Attributes, potential int) string {
	parts := []string{
		ageComment(age),
		attributeComment(perceived.Technical, techHigh, techMid, techLow),
		attributeComment(perceived.Physical, physHigh, physMid, physLow),
		attributeComment(perceived.Mental, mentHigh, mentMid, mentLow),
		roleComment(position, perceived),
		potentialComment(potential),
	}

	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// ageComment picks one of four mutually exclusive age bands.
func ageComment(age int) string {
	switch {
	case age < 20:
		return ageUnder20
	case age <= 23:
		return age20to23
	case age <= 27:
		return age24to27
	default:
		return ageOver27
	}
}

// attributeComment buckets one perceived score: high at 8+, mid at 6-7,
// low at 4 and under. A score of exactly 5 draws no comment.
func attributeComment(score int, high, mid, low string) string {
	switch {
	case score >= bucketHigh:
		return high
	case score >= bucketMid:
		return mid
	case score <= bucketLow:
		return low
	default:
		return ""
	}
}

// roleComment emits exactly one comment for the player's role bucket.
// Defenders branch on perceived physical; every other bucket branches on
// perceived technical.
func roleComment(position model.Position, perceived model.Attributes) string {
	switch position.RoleOf() {
	case model.RoleGoalkeeper:
		if perceived.Technical >= roleThreshold {
			return gkHigh
		}
		return gkLow
	case model.RoleDefender:
		if perceived.Physical >= roleThreshold {
			return defHigh
		}
		return defLow
	case model.RoleMidfielder:
		if perceived.Technical >= roleThreshold {
			return midHigh
		}
		return midLow
	default:
		if perceived.Technical >= roleThreshold {
			return fwdHigh
		}
		return fwdLow
	}
}

// potentialComment picks one of five bands keyed by the exact perceived
// potential value.
func potentialComment(potential int) string {
	switch {
	case potential >= 9:
		return potWorldClass
	case potential == 8:
		return potTopFlight
	case potential == 7:
		return potSolidPro
	case potential == 6:
		return potSquadRole
	default:
		return potLimited
	}
}
