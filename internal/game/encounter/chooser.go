package encounter

import (
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// Chooser picks one action for an actor each round. Implementations live
// outside the core engine — a human input adapter, an AI player, a scripted
// boss — the encounter only consumes the chosen action. allies is the
// actor's own side, the actor included. Returning ok=false passes the turn.
type Chooser interface {
	Choose(actor *model.Creature, allies, enemies []*model.Creature) (skillID int32, target *model.Creature, ok bool)
}

// FirstUsable is the built-in stand-in chooser: the first affordable skill
// from the toolbelt, in learn order, aimed at the most obvious target. It
// exists so playtests run without any real decision model behind them.
type FirstUsable struct{}

// Choose walks the actor's toolbelt and returns the first skill the actor
// can pay for that has an eligible target.
func (FirstUsable) Choose(actor *model.Creature, allies, enemies []*model.Creature) (int32, *model.Creature, bool) {
	for _, skillID := range actor.Toolbelt() {
		tpl := data.GetSkillTemplate(skillID)
		if tpl == nil || tpl.EnergyCost > actor.CurrentEnergy() {
			continue
		}

		var target *model.Creature
		switch tpl.Application {
		case data.ApplyDamage:
			target = firstLiving(enemies)
		case data.ApplyHeal:
			target = mostHurt(allies)
		case data.ApplyMitigation:
			target = mostHurt(allies)
			if target == nil && !actor.IsDead() {
				// Shielding at full health is still worth the turn.
				target = actor
			}
		}
		if target != nil {
			return skillID, target, true
		}
	}
	return 0, nil, false
}

// firstLiving returns the first living creature in the list.
func firstLiving(list []*model.Creature) *model.Creature {
	for _, c := range list {
		if !c.IsDead() {
			return c
		}
	}
	return nil
}

// mostHurt returns the living creature missing the largest share of its
// health. Nil when nobody is hurt — a full-health heal is a wasted turn.
func mostHurt(list []*model.Creature) *model.Creature {
	var best *model.Creature
	bestPct := 1.0

	for _, c := range list {
		if c.IsDead() {
			continue
		}
		if pct := c.HealthPercentage(); pct < bestPct {
			bestPct = pct
			best = c
		}
	}
	return best
}
