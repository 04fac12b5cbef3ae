package data

import "fmt"

// Archetype is a character's specialization path. The set is closed; adding
// a variant means extending the effectiveness table below.
type Archetype int8

const (
	PureDPS Archetype = iota
	PureSupport
	PureTank
	HybridDpsSupport
	HybridDpsTank
	HybridSupportTank
	Support

	archetypeCount = 7
)

// SkillType classifies what a skill fundamentally does.
type SkillType int8

const (
	SkillDamage SkillType = iota
	SkillDefense
	SkillSupport
	SkillUltimate

	skillTypeCount = 4
)

var archetypeNames = [archetypeCount]string{
	"pure_dps",
	"pure_support",
	"pure_tank",
	"hybrid_dps_support",
	"hybrid_dps_tank",
	"hybrid_support_tank",
	"support",
}

var skillTypeNames = [skillTypeCount]string{
	"damage",
	"defense",
	"support",
	"ultimate",
}

// String returns the snake_case name used in config files and persistence.
func (a Archetype) String() string {
	if a < 0 || a >= archetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

func (s SkillType) String() string {
	if s < 0 || s >= skillTypeCount {
		return "unknown"
	}
	return skillTypeNames[s]
}

// IsPure reports whether the archetype is a pure specialization. Only pure
// specializations may learn Ultimate skills.
func (a Archetype) IsPure() bool {
	return a == PureDPS || a == PureSupport || a == PureTank
}

// ParseArchetype maps a stored name back to its variant.
func ParseArchetype(name string) (Archetype, error) {
	for i, n := range archetypeNames {
		if n == name {
			return Archetype(i), nil
		}
	}
	return 0, fmt.Errorf("unknown archetype %q", name)
}

// Archetypes returns every archetype variant.
func Archetypes() []Archetype {
	return []Archetype{
		PureDPS, PureSupport, PureTank,
		HybridDpsSupport, HybridDpsTank, HybridSupportTank,
		Support,
	}
}

// SkillTypes returns every skill type variant.
func SkillTypes() []SkillType {
	return []SkillType{SkillDamage, SkillDefense, SkillSupport, SkillUltimate}
}

// effectivenessTable holds the multiplier for every (archetype, skill type)
// pair. Total by construction: every cell is filled in init, so lookups never
// fail. Built once at process start, read-only afterwards.
var effectivenessTable [archetypeCount][skillTypeCount]float64

func init() {
	// Default every cell to neutral, then overlay the specialization rules:
	// pure: 150% primary and 150% ultimate; hybrid: 125% primary, neutral
	// secondary; generalist support: neutral across the board.
	for a := range effectivenessTable {
		for s := range effectivenessTable[a] {
			effectivenessTable[a][s] = 1.0
		}
	}

	effectivenessTable[PureDPS][SkillDamage] = 1.5
	effectivenessTable[PureDPS][SkillUltimate] = 1.5
	effectivenessTable[PureSupport][SkillSupport] = 1.5
	effectivenessTable[PureSupport][SkillUltimate] = 1.5
	effectivenessTable[PureTank][SkillDefense] = 1.5
	effectivenessTable[PureTank][SkillUltimate] = 1.5

	effectivenessTable[HybridDpsSupport][SkillDamage] = 1.25
	effectivenessTable[HybridDpsTank][SkillDamage] = 1.25
	effectivenessTable[HybridSupportTank][SkillSupport] = 1.25
}

// Effectiveness returns the skill-type multiplier for the archetype.
// Out-of-range inputs return 1.0 (neutral) rather than panicking; the enums
// are closed so this only matters for corrupted persisted values.
func Effectiveness(a Archetype, s SkillType) float64 {
	if a < 0 || a >= archetypeCount || s < 0 || s >= skillTypeCount {
		return 1.0
	}
	return effectivenessTable[a][s]
}
