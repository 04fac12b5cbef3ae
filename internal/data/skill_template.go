package data

// Application describes what a resolved amount does to its target. It drives
// target eligibility, whether resistance applies, and which floor the final
// amount gets: damage clamps to a minimum of 1, heals and mitigation may
// legitimately resolve to 0 but never go negative.
type Application int8

const (
	ApplyDamage Application = iota
	ApplyHeal
	ApplyMitigation
)

var applicationNames = [...]string{
	ApplyDamage:     "damage",
	ApplyHeal:       "heal",
	ApplyMitigation: "mitigation",
}

func (a Application) String() string {
	if int(a) < 0 || int(a) >= len(applicationNames) {
		return "unknown"
	}
	return applicationNames[a]
}

// SkillEffect is a status effect a skill tries to attach on a successful
// resolution. ChancePct is rolled per application; DurationRounds counts
// combat rounds, not wall-clock time. Magnitude is the per-tick amount for
// over-time kinds and the modifier strength for stat kinds.
type SkillEffect struct {
	Kind           EffectKind
	ChancePct      int32
	DurationRounds int32
	Magnitude      int32
}

// SkillTemplate — immutable skill catalog record, one per skill id.
// Built by LoadSkills from Go-literal defs.
// Shared across all encounters — do not modify after load.
type SkillTemplate struct {
	ID          int32
	Name        string
	Type        SkillType
	Application Application
	DamageType  DamageType

	// BaseMin/BaseMax bound the value roll at skill level 1 with no ranks
	// allocated. ScalePerLevel widens both bounds per skill level above 1.
	BaseMin       int32
	BaseMax       int32
	ScalePerLevel int32

	// MaxRank caps class-point allocation into this skill; each allocated
	// rank adds RankBonusPct percent to the rolled value.
	MaxRank      int32
	RankBonusPct int32

	EnergyCost int32
	CritPct    int32

	// Cures removes up to this many harmful effects from the target before
	// the skill's own effects are applied. 0 for skills that do not cleanse.
	Cures   int32
	Effects []SkillEffect
}

// IsUltimate reports whether only pure-specialization archetypes may learn
// this skill.
func (t *SkillTemplate) IsUltimate() bool {
	return t.Type == SkillUltimate
}

// IsOffensive reports whether the skill targets an enemy.
func (t *SkillTemplate) IsOffensive() bool {
	return t.Application == ApplyDamage
}

// ValueBounds returns the roll bounds scaled for the given skill level and
// allocated rank. Inputs below their minimums are treated as the minimum, so
// bounds never shrink under the catalog base. Rank above MaxRank clamps.
func (t *SkillTemplate) ValueBounds(skillLevel, rank int32) (int32, int32) {
	if skillLevel < 1 {
		skillLevel = 1
	}
	if rank < 0 {
		rank = 0
	}
	if rank > t.MaxRank {
		rank = t.MaxRank
	}
	lo := t.BaseMin + t.ScalePerLevel*(skillLevel-1)
	hi := t.BaseMax + t.ScalePerLevel*(skillLevel-1)
	if t.RankBonusPct > 0 && rank > 0 {
		pct := 100 + t.RankBonusPct*rank
		lo = lo * pct / 100
		hi = hi * pct / 100
	}
	return lo, hi
}
