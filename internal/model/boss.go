package model

import (
	"sync/atomic"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
)

// BossStatus tracks where a boss is in its lifecycle.
type BossStatus int32

const (
	BossStatusAlive    BossStatus = 0
	BossStatusFighting BossStatus = 1
	BossStatusDead     BossStatus = 2
)

// Boss — a story boss. Extends Monster with the hard-immunity profile and a
// lifecycle status. Hard immunity is categorical: an immune control category
// can never be applied, no matter the magnitude behind it.
type Boss struct {
	*Monster

	status atomic.Int32 // BossStatus
}

// NewBoss spawns a boss from a template.
func NewBoss(id uint32, template *data.EntityTemplate) *Boss {
	monster := NewMonster(id, template)

	b := &Boss{
		Monster: monster,
	}
	b.status.Store(int32(BossStatusAlive))

	monster.Npc.Creature.Data = b

	return b
}

// Title returns the boss's story title.
func (b *Boss) Title() string {
	return b.Template().Title
}

// IsHardImmune reports whether the boss ignores the given control category.
func (b *Boss) IsHardImmune(dt data.DamageType) bool {
	return b.Template().IsHardImmune(dt)
}

// Status returns the lifecycle status (atomic read).
func (b *Boss) Status() BossStatus {
	return BossStatus(b.status.Load())
}

// SetStatus sets the lifecycle status (atomic write).
func (b *Boss) SetStatus(s BossStatus) {
	b.status.Store(int32(s))
}

// HardImmune reports whether the creature's variant is hard-immune to the
// given control category. False for every non-boss variant.
func (c *Creature) HardImmune(dt data.DamageType) bool {
	if b, ok := c.Data.(*Boss); ok {
		return b.IsHardImmune(dt)
	}
	return false
}
