package model

// Named scout skills. Unknown names are ignored; missing names read as 0.
const (
	SkillTalentSpotting      = "talent_spotting"
	SkillPlayerPotential     = "player_potential"
	SkillGoalkeeperKnowledge = "goalkeeper_knowledge"
	SkillDefenderKnowledge   = "defender_knowledge"
	SkillMidfielderKnowledge = "midfielder_knowledge"
	SkillForwardKnowledge    = "forward_knowledge"
)

// Skill level bounds.
const (
	MinSkill = 0
	MaxSkill = 10
)

// SkillProfile maps scout skill names to levels in [0,10]. The zero value
// is a valid profile with every skill at 0.
type SkillProfile map[string]int

// Level returns the level for a named skill, clamped to [0,10].
// Missing skills read as 0.
func (p SkillProfile) Level(name string) int {
	v := p[name]
	if v < MinSkill {
		return MinSkill
	}
	if v > MaxSkill {
		return MaxSkill
	}
	return v
}

// Impact normalizes a named skill to [0,1].
func (p SkillProfile) Impact(name string) float64 {
	return float64(p.Level(name)) / float64(MaxSkill)
}

// KnowledgeFor returns the knowledge skill name matching a role bucket.
func KnowledgeFor(role Role) string {
	switch role {
	case RoleGoalkeeper:
		return SkillGoalkeeperKnowledge
	case RoleDefender:
		return SkillDefenderKnowledge
	case RoleMidfielder:
		return SkillMidfielderKnowledge
	default:
		return SkillForwardKnowledge
	}
}
