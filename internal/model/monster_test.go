package model

import (
	"testing"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
)

func TestNewMonster(t *testing.T) {
	tpl := data.GetEntityTemplate(data.TemplateAshWraith)
	if tpl == nil {
		t.Fatal("ash wraith template missing")
	}

	m := NewMonster(9001, tpl)

	if !m.IsAggressive() {
		t.Error("ash wraith should spawn aggressive")
	}
	if m.Target() != 0 {
		t.Errorf("fresh monster target = %d, want none", m.Target())
	}

	// The backref must resolve to the monster, not the embedded npc.
	if back, ok := m.Creature.Data.(*Monster); !ok || back != m {
		t.Error("Creature.Data does not point back at the monster")
	}
}

func TestMonsterTargeting(t *testing.T) {
	tpl := data.GetEntityTemplate(data.TemplateRuinHound)
	m := NewMonster(9002, tpl)

	m.SetTarget(42)
	if m.Target() != 42 {
		t.Errorf("target = %d, want 42", m.Target())
	}

	m.ClearTarget()
	if m.Target() != 0 {
		t.Errorf("target after clear = %d, want 0", m.Target())
	}

	m.SetAggressive(false)
	if m.IsAggressive() {
		t.Error("SetAggressive(false) did not stick")
	}
}
