package model

import "github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"

// Npc — a non-player creature spawned from an entity template. The template
// stays shared and read-only; the npc copies its numbers into mutable state.
type Npc struct {
	*Creature

	template *data.EntityTemplate
}

// NewNpc spawns a creature from a template with full pools and the
// template's resistance profile.
func NewNpc(id uint32, template *data.EntityTemplate) *Npc {
	creature := NewCreature(
		id, template.Name, template.Level,
		template.Power, template.Vitality,
		template.MaxHealth, template.MaxEnergy,
		template.Toolbelt,
	)

	for dt, val := range template.Resists {
		creature.Resists().Set(dt, val)
	}

	npc := &Npc{
		Creature: creature,
		template: template,
	}

	creature.Data = npc
	return npc
}

// Template returns the entity template this npc was spawned from.
func (n *Npc) Template() *data.EntityTemplate {
	return n.template
}

// BaseXP returns the kill reward before rate and level-gap scaling.
func (n *Npc) BaseXP() int64 {
	return n.template.BaseXP
}

// BaseClassPoints returns the class-point kill reward before scaling.
func (n *Npc) BaseClassPoints() int32 {
	return n.template.BaseClassPoints
}

// AsNpc returns the creature's npc base for the Npc, Monster and Boss
// variants, nil for players.
func (c *Creature) AsNpc() *Npc {
	switch v := c.Data.(type) {
	case *Boss:
		return v.Npc
	case *Monster:
		return v.Npc
	case *Npc:
		return v
	}
	return nil
}

// SpawnEntity builds the variant the template calls for and returns its
// creature base. The concrete variant hangs off Creature.Data.
func SpawnEntity(id uint32, template *data.EntityTemplate) *Creature {
	switch template.Kind {
	case data.KindBoss:
		return NewBoss(id, template).Creature
	case data.KindMonster:
		return NewMonster(id, template).Creature
	default:
		return NewNpc(id, template).Creature
	}
}
