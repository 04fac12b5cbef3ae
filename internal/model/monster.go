package model

import (
	"sync/atomic"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
)

// Monster — a hostile creature. Extends Npc with aggression and target
// tracking for the encounter loop.
type Monster struct {
	*Npc

	aggressive atomic.Bool
	target     atomic.Uint32 // current target creature id, 0 when idle
}

// NewMonster spawns a monster from a template.
func NewMonster(id uint32, template *data.EntityTemplate) *Monster {
	npc := NewNpc(id, template)

	m := &Monster{
		Npc: npc,
	}
	m.aggressive.Store(template.Aggressive)

	// Point the backref at the outermost variant, not the embedded npc.
	npc.Creature.Data = m

	return m
}

// IsAggressive returns the aggression flag (atomic read).
func (m *Monster) IsAggressive() bool {
	return m.aggressive.Load()
}

// SetAggressive sets the aggression flag (atomic write).
func (m *Monster) SetAggressive(v bool) {
	m.aggressive.Store(v)
}

// Target returns the current target id, 0 when none.
func (m *Monster) Target() uint32 {
	return m.target.Load()
}

// SetTarget records the current target id.
func (m *Monster) SetTarget(id uint32) {
	m.target.Store(id)
}

// ClearTarget drops the current target.
func (m *Monster) ClearTarget() {
	m.target.Store(0)
}
