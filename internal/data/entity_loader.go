package data

import (
	"fmt"
	"log/slog"
)

// EntityTable — global registry of all entity templates.
// map[templateID]*EntityTemplate, populated by LoadEntityTemplates().
var EntityTable map[int32]*EntityTemplate

// GetEntityTemplate returns the template for an entity template id.
// Returns nil if not found.
func GetEntityTemplate(templateID int32) *EntityTemplate {
	if EntityTable == nil {
		return nil
	}
	return EntityTable[templateID]
}

// LoadEntityTemplates builds EntityTable from the Go-literal bestiary and
// checks referential integrity against the skill catalog. Call after
// LoadSkills; a toolbelt naming an unknown skill aborts startup.
func LoadEntityTemplates() error {
	if SkillTable == nil {
		return fmt.Errorf("%w: entity templates loaded before skills", ErrCatalog)
	}

	table := make(map[int32]*EntityTemplate, len(entityDefs))

	for i := range entityDefs {
		t := &entityDefs[i]
		if err := validateEntity(t); err != nil {
			return err
		}
		if _, dup := table[t.ID]; dup {
			return fmt.Errorf("%w: duplicate entity template id %d", ErrCatalog, t.ID)
		}
		table[t.ID] = t
	}

	EntityTable = table
	slog.Info("loaded entity templates", "count", len(EntityTable))
	return nil
}

func validateEntity(t *EntityTemplate) error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: entity %q has non-positive id %d", ErrCatalog, t.Name, t.ID)
	}
	if t.Name == "" {
		return fmt.Errorf("%w: entity %d has empty name", ErrCatalog, t.ID)
	}
	if t.Level < 1 || t.Level > MaxLevel {
		return fmt.Errorf("%w: entity %d level %d out of range", ErrCatalog, t.ID, t.Level)
	}
	if t.MaxHealth < 1 {
		return fmt.Errorf("%w: entity %d has no health", ErrCatalog, t.ID)
	}
	if t.MaxEnergy < 0 || t.Power < 0 || t.Vitality < 0 {
		return fmt.Errorf("%w: entity %d has negative stats", ErrCatalog, t.ID)
	}
	if t.BaseXP < 0 || t.BaseClassPoints < 0 {
		return fmt.Errorf("%w: entity %d has negative rewards", ErrCatalog, t.ID)
	}
	for dt, val := range t.Resists {
		if dt < DamagePhysical || dt > ControlSlow {
			return fmt.Errorf("%w: entity %d resist for unknown damage type %d", ErrCatalog, t.ID, dt)
		}
		if val < ResistFloor || val > ResistCeil {
			return fmt.Errorf("%w: entity %d resist %s=%d outside [%d,%d]", ErrCatalog, t.ID, dt, val, ResistFloor, ResistCeil)
		}
	}
	if len(t.HardImmune) > 0 && t.Kind != KindBoss {
		return fmt.Errorf("%w: entity %d carries an immunity profile but is not a boss", ErrCatalog, t.ID)
	}
	for _, imm := range t.HardImmune {
		if !imm.IsControl() {
			return fmt.Errorf("%w: entity %d hard immunity on non-control type %s", ErrCatalog, t.ID, imm)
		}
	}
	if len(t.Toolbelt) == 0 {
		return fmt.Errorf("%w: entity %d has an empty toolbelt", ErrCatalog, t.ID)
	}
	for _, skillID := range t.Toolbelt {
		if GetSkillTemplate(skillID) == nil {
			return fmt.Errorf("%w: entity %d toolbelt references unknown skill %d", ErrCatalog, t.ID, skillID)
		}
	}
	return nil
}
