package data

import (
	"errors"
	"testing"
)

func loadCatalogs(t *testing.T) {
	t.Helper()
	if err := LoadSkills(); err != nil {
		t.Fatalf("LoadSkills() failed: %v", err)
	}
	if err := LoadEntityTemplates(); err != nil {
		t.Fatalf("LoadEntityTemplates() failed: %v", err)
	}
}

func TestLoadEntityTemplatesRequiresSkills(t *testing.T) {
	saved := SkillTable
	SkillTable = nil
	defer func() { SkillTable = saved }()

	err := LoadEntityTemplates()
	if !errors.Is(err, ErrCatalog) {
		t.Errorf("LoadEntityTemplates() before LoadSkills err = %v, want ErrCatalog", err)
	}
}

func TestLoadEntityTemplates(t *testing.T) {
	loadCatalogs(t)

	if len(EntityTable) != len(entityDefs) {
		t.Errorf("EntityTable has %d entries, want %d", len(EntityTable), len(entityDefs))
	}

	hound := GetEntityTemplate(TemplateRuinHound)
	if hound == nil {
		t.Fatal("Ruin Hound not found in EntityTable")
	}
	if hound.Kind != KindMonster || hound.Level != 3 {
		t.Errorf("Ruin Hound = %s level %d, want monster level 3", hound.Kind, hound.Level)
	}
	if got := hound.Resist(DamageFrost); got != -20 {
		t.Errorf("Ruin Hound frost resist = %d, want -20", got)
	}
	if got := hound.Resist(DamageFire); got != 0 {
		t.Errorf("Ruin Hound fire resist = %d, want default 0", got)
	}

	if GetEntityTemplate(77777) != nil {
		t.Error("GetEntityTemplate(77777) returned a template, want nil")
	}
}

func TestBossImmunityProfile(t *testing.T) {
	loadCatalogs(t)

	warden := GetEntityTemplate(TemplateWardenOfEmbers)
	if warden == nil {
		t.Fatal("Warden of Embers not found")
	}
	if warden.Kind != KindBoss {
		t.Fatalf("Warden kind = %s, want boss", warden.Kind)
	}

	if !warden.IsHardImmune(ControlStun) {
		t.Error("Warden should be hard-immune to stun")
	}
	if !warden.IsHardImmune(ControlFreeze) {
		t.Error("Warden should be hard-immune to freeze")
	}
	if warden.IsHardImmune(ControlSlow) {
		t.Error("Warden must stay susceptible to slow")
	}
	if warden.IsHardImmune(DamageFire) {
		t.Error("hard immunity never covers damage schools")
	}

	// Immunity is a boss-only concept.
	knight := GetEntityTemplate(TemplateHollowKnight)
	if knight.IsHardImmune(ControlStun) {
		t.Error("non-boss reported hard immunity")
	}
}

func TestToolbeltIntegrity(t *testing.T) {
	loadCatalogs(t)

	for _, tpl := range EntityTable {
		for _, skillID := range tpl.Toolbelt {
			if GetSkillTemplate(skillID) == nil {
				t.Errorf("entity %d (%s) toolbelt references unknown skill %d", tpl.ID, tpl.Name, skillID)
			}
		}
	}
}

func TestValidateEntityRejectsBadRecords(t *testing.T) {
	loadCatalogs(t)

	base := func() EntityTemplate {
		return EntityTemplate{
			ID: 1, Name: "x", Kind: KindMonster, Level: 5,
			MaxHealth: 10, Toolbelt: []int32{SkillCrushingBlow},
		}
	}

	tests := []struct {
		name   string
		mutate func(*EntityTemplate)
	}{
		{"zero id", func(t *EntityTemplate) { t.ID = 0 }},
		{"empty name", func(t *EntityTemplate) { t.Name = "" }},
		{"level out of range", func(t *EntityTemplate) { t.Level = 101 }},
		{"no health", func(t *EntityTemplate) { t.MaxHealth = 0 }},
		{"resist out of range", func(t *EntityTemplate) { t.Resists = map[DamageType]int32{DamageFire: 100} }},
		{"resist under floor", func(t *EntityTemplate) { t.Resists = map[DamageType]int32{DamageFire: -100} }},
		{"immunity on non-boss", func(t *EntityTemplate) { t.HardImmune = []DamageType{ControlStun} }},
		{"immunity on damage school", func(t *EntityTemplate) {
			t.Kind = KindBoss
			t.HardImmune = []DamageType{DamageFire}
		}},
		{"empty toolbelt", func(t *EntityTemplate) { t.Toolbelt = nil }},
		{"dangling toolbelt skill", func(t *EntityTemplate) { t.Toolbelt = []int32{424242} }},
		{"negative rewards", func(t *EntityTemplate) { t.BaseXP = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := base()
			tt.mutate(&tpl)
			err := validateEntity(&tpl)
			if !errors.Is(err, ErrCatalog) {
				t.Errorf("validateEntity() err = %v, want ErrCatalog", err)
			}
		})
	}
}
