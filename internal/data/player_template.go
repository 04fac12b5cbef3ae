package data

import "fmt"

// PlayerTemplate holds the base characteristics of a player archetype.
// Stats grow with the character's effective level, never the true level, so
// the chapter catch-up clamp actually bites on combat power.
type PlayerTemplate struct {
	Archetype Archetype

	// Base attributes at level 1.
	BasePower    int32
	BaseVitality int32

	// Per-effective-level growth.
	PowerPerLevel    int32
	VitalityPerLevel int32

	// Pool formulas: MaxHealth = HealthBase + Vitality*HealthPerVitality,
	// MaxEnergy = EnergyBase + EnergyPerLevel*(effective level - 1).
	HealthBase        int32
	HealthPerVitality int32
	EnergyBase        int32
	EnergyPerLevel    int32

	// StartingSkills seed the toolbelt at creation. Ultimates are learned
	// later and never start here.
	StartingSkills []int32
}

// PowerAt returns the archetype's power stat at an effective level.
func (t *PlayerTemplate) PowerAt(level int32) int32 {
	if level < 1 {
		level = 1
	}
	return t.BasePower + t.PowerPerLevel*(level-1)
}

// VitalityAt returns the archetype's vitality stat at an effective level.
func (t *PlayerTemplate) VitalityAt(level int32) int32 {
	if level < 1 {
		level = 1
	}
	return t.BaseVitality + t.VitalityPerLevel*(level-1)
}

// MaxHealthAt returns the health pool at an effective level.
func (t *PlayerTemplate) MaxHealthAt(level int32) int32 {
	return t.HealthBase + t.VitalityAt(level)*t.HealthPerVitality
}

// MaxEnergyAt returns the energy pool at an effective level.
func (t *PlayerTemplate) MaxEnergyAt(level int32) int32 {
	if level < 1 {
		level = 1
	}
	return t.EnergyBase + t.EnergyPerLevel*(level-1)
}

// playerTemplates — one template per archetype variant.
var playerTemplates = map[Archetype]*PlayerTemplate{
	PureDPS: {
		Archetype:    PureDPS,
		BasePower:    12, BaseVitality: 8,
		PowerPerLevel: 2, VitalityPerLevel: 1,
		HealthBase: 60, HealthPerVitality: 5,
		EnergyBase: 50, EnergyPerLevel: 5,
		StartingSkills: []int32{SkillCrushingBlow, SkillFlameLash, SkillVenomDart, SkillHamstring},
	},
	PureTank: {
		Archetype:    PureTank,
		BasePower:    8, BaseVitality: 14,
		PowerPerLevel: 1, VitalityPerLevel: 2,
		HealthBase: 80, HealthPerVitality: 6,
		EnergyBase: 45, EnergyPerLevel: 4,
		StartingSkills: []int32{SkillCrushingBlow, SkillBulwark, SkillIronSkin},
	},
	PureSupport: {
		Archetype:    PureSupport,
		BasePower:    7, BaseVitality: 10,
		PowerPerLevel: 1, VitalityPerLevel: 1,
		HealthBase: 65, HealthPerVitality: 5,
		EnergyBase: 60, EnergyPerLevel: 6,
		StartingSkills: []int32{SkillMendingTouch, SkillRegrowth, SkillPurify, SkillVenomDart},
	},
	HybridDpsSupport: {
		Archetype:    HybridDpsSupport,
		BasePower:    10, BaseVitality: 9,
		PowerPerLevel: 2, VitalityPerLevel: 1,
		HealthBase: 65, HealthPerVitality: 5,
		EnergyBase: 55, EnergyPerLevel: 5,
		StartingSkills: []int32{SkillFlameLash, SkillVenomDart, SkillMendingTouch, SkillRegrowth},
	},
	HybridDpsTank: {
		Archetype:    HybridDpsTank,
		BasePower:    11, BaseVitality: 11,
		PowerPerLevel: 2, VitalityPerLevel: 1,
		HealthBase: 70, HealthPerVitality: 5,
		EnergyBase: 50, EnergyPerLevel: 4,
		StartingSkills: []int32{SkillCrushingBlow, SkillFlameLash, SkillBulwark},
	},
	HybridSupportTank: {
		Archetype:    HybridSupportTank,
		BasePower:    8, BaseVitality: 12,
		PowerPerLevel: 1, VitalityPerLevel: 2,
		HealthBase: 75, HealthPerVitality: 5,
		EnergyBase: 55, EnergyPerLevel: 5,
		StartingSkills: []int32{SkillMendingTouch, SkillBulwark, SkillIronSkin, SkillPurify},
	},
	Support: {
		Archetype:    Support,
		BasePower:    8, BaseVitality: 10,
		PowerPerLevel: 1, VitalityPerLevel: 1,
		HealthBase: 65, HealthPerVitality: 5,
		EnergyBase: 60, EnergyPerLevel: 5,
		StartingSkills: []int32{SkillMendingTouch, SkillBattleHymn, SkillPurify, SkillVenomDart},
	},
}

// GetPlayerTemplate returns the template for an archetype.
func GetPlayerTemplate(a Archetype) (*PlayerTemplate, error) {
	t, ok := playerTemplates[a]
	if !ok {
		return nil, fmt.Errorf("%w: no player template for archetype %s", ErrCatalog, a)
	}
	return t, nil
}

// LoadPlayerTemplates checks the archetype table for completeness and for
// referential integrity against the skill catalog. Call after LoadSkills.
func LoadPlayerTemplates() error {
	if SkillTable == nil {
		return fmt.Errorf("%w: player templates loaded before skills", ErrCatalog)
	}
	for _, a := range Archetypes() {
		t, ok := playerTemplates[a]
		if !ok {
			return fmt.Errorf("%w: no player template for archetype %s", ErrCatalog, a)
		}
		if len(t.StartingSkills) == 0 {
			return fmt.Errorf("%w: archetype %s starts with no skills", ErrCatalog, a)
		}
		for _, skillID := range t.StartingSkills {
			tpl := GetSkillTemplate(skillID)
			if tpl == nil {
				return fmt.Errorf("%w: archetype %s starting skill %d unknown", ErrCatalog, a, skillID)
			}
			if tpl.IsUltimate() {
				return fmt.Errorf("%w: archetype %s starts with ultimate %d", ErrCatalog, a, skillID)
			}
		}
	}
	return nil
}
