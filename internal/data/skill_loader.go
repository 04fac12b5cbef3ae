package data

import (
	"fmt"
	"log/slog"
)

// SkillTable — global registry of all skill templates.
// map[skillID]*SkillTemplate, populated by LoadSkills() at startup.
var SkillTable map[int32]*SkillTemplate

// GetSkillTemplate returns the template for a skill id.
// Returns nil if the skill is unknown.
func GetSkillTemplate(skillID int32) *SkillTemplate {
	if SkillTable == nil {
		return nil
	}
	return SkillTable[skillID]
}

// LoadSkills builds SkillTable from the Go-literal catalog (skillDefs) and
// validates every record. Any violation aborts startup: a broken catalog is
// a content-authoring bug, not a runtime condition.
func LoadSkills() error {
	table := make(map[int32]*SkillTemplate, len(skillDefs))

	for i := range skillDefs {
		t := &skillDefs[i]
		if err := validateSkill(t); err != nil {
			return err
		}
		if _, dup := table[t.ID]; dup {
			return fmt.Errorf("%w: duplicate skill id %d", ErrCatalog, t.ID)
		}
		table[t.ID] = t
	}

	SkillTable = table
	slog.Info("loaded skills", "count", len(SkillTable))
	return nil
}

func validateSkill(t *SkillTemplate) error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: skill %q has non-positive id %d", ErrCatalog, t.Name, t.ID)
	}
	if t.Name == "" {
		return fmt.Errorf("%w: skill %d has empty name", ErrCatalog, t.ID)
	}
	if t.BaseMin < 0 || t.BaseMax < t.BaseMin {
		return fmt.Errorf("%w: skill %d has bad value bounds [%d,%d]", ErrCatalog, t.ID, t.BaseMin, t.BaseMax)
	}
	if t.EnergyCost < 0 {
		return fmt.Errorf("%w: skill %d has negative energy cost", ErrCatalog, t.ID)
	}
	if t.MaxRank < 0 || t.RankBonusPct < 0 || t.ScalePerLevel < 0 {
		return fmt.Errorf("%w: skill %d has negative scaling", ErrCatalog, t.ID)
	}
	if t.CritPct < 0 || t.CritPct > 100 {
		return fmt.Errorf("%w: skill %d crit chance %d out of range", ErrCatalog, t.ID, t.CritPct)
	}
	if t.Application == ApplyDamage && t.BaseMax == 0 {
		return fmt.Errorf("%w: damage skill %d has zero value bounds", ErrCatalog, t.ID)
	}
	if t.Application == ApplyDamage && t.DamageType.IsControl() {
		return fmt.Errorf("%w: damage skill %d carries control type %s", ErrCatalog, t.ID, t.DamageType)
	}
	for _, eff := range t.Effects {
		def, err := GetEffectKindDef(eff.Kind)
		if err != nil {
			return fmt.Errorf("skill %d: %w", t.ID, err)
		}
		if eff.ChancePct < 1 || eff.ChancePct > 100 {
			return fmt.Errorf("%w: skill %d effect %s chance %d out of range", ErrCatalog, t.ID, eff.Kind, eff.ChancePct)
		}
		if eff.DurationRounds < 1 {
			return fmt.Errorf("%w: skill %d effect %s has no duration", ErrCatalog, t.ID, eff.Kind)
		}
		switch def.Category {
		case CategoryDamageOverTime, CategoryHealOverTime:
			if eff.Magnitude < 1 {
				return fmt.Errorf("%w: skill %d effect %s ticks with zero magnitude", ErrCatalog, t.ID, eff.Kind)
			}
		}
	}
	return nil
}
