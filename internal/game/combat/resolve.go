package combat

import (
	"fmt"
	"log/slog"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// ModKind distinguishes flat and percentage adjustments.
type ModKind int8

const (
	ModFlat    ModKind = iota // adds Value points
	ModPercent                // scales by (100 + Value) / 100
)

// Modifier is an externally supplied adjustment: equipment affixes, combat
// bonuses, active stat effects. The caller's list is applied after the
// archetype multiplier, all flat entries first, then all percent entries,
// each group in caller order.
type Modifier struct {
	Kind  ModKind
	Value int32
}

// EffectSink receives status applications emitted by resolved actions.
// Implemented by the status effect engine. A nil sink drops the emissions,
// which keeps formula-level tests free of effect bookkeeping.
type EffectSink interface {
	// TryApply attempts to attach one declared effect to the target.
	// Returns false when the application was rejected: hard immunity,
	// a failed chance roll, or the kind's stacking policy.
	TryApply(source, target *model.Creature, eff data.SkillEffect) bool

	// Cure removes up to count harmful effects from the target and reports
	// how many were removed.
	Cure(target *model.Creature, count int32) int32
}

// Action is one combat action to resolve: actor uses a skill on a target,
// with whatever external modifiers the caller supplies for this use.
type Action struct {
	Actor   *model.Creature
	Target  *model.Creature
	SkillID int32
	Mods    []Modifier
}

// ResolvedOutcome is the result of one fully resolved action.
type ResolvedOutcome struct {
	ActorID     uint32
	TargetID    uint32
	SkillID     int32
	Application data.Application
	DamageType  data.DamageType

	// Amount is the final post-pipeline value: damage dealt, health
	// restored, or shield granted, depending on Application.
	Amount int32
	Crit   bool

	// Applied lists the declared status effects that actually landed.
	Applied []data.EffectKind

	// Cured counts harmful effects removed by a cleansing skill.
	Cured int32
}

// Resolver runs the fixed action pipeline. One resolver may serve many
// encounters: it holds no per-encounter state.
type Resolver struct {
	effects EffectSink
}

// NewResolver creates a resolver emitting status effects into the given sink.
func NewResolver(effects EffectSink) *Resolver {
	return &Resolver{effects: effects}
}

// Resolve executes one action end to end. The step order is fixed:
// validation, base value, resistance, archetype effectiveness, caller
// modifiers, floor, then cleanse and status emission. Reordering the steps
// changes balance and must not be done silently.
//
// The energy cost is deducted only after validation passes; a failed
// validation mutates nothing and returns a typed error the caller may retry
// on.
func (r *Resolver) Resolve(act Action) (*ResolvedOutcome, error) {
	skill := data.GetSkillTemplate(act.SkillID)
	if err := ValidateAction(act.Actor, act.Target, skill); err != nil {
		return nil, err
	}

	skillLevel, rank := int32(1), int32(0)
	effectiveness := 1.0
	if p, ok := act.Actor.Data.(*model.Player); ok {
		skillLevel = p.Progression().SkillLevel()
		rank = p.RankOf(act.SkillID)
		effectiveness = data.Effectiveness(p.Archetype(), skill.Type)
	}

	value, crit := CalcBaseValue(act.Actor, skill, skillLevel, rank)

	// Resistance sees base damage only. Heals and mitigation are not
	// resisted.
	if skill.Application == data.ApplyDamage {
		value = ApplyResistance(value, skill.DamageType, act.Target)
	}

	value = int32(float64(value) * effectiveness)
	value = applyModifiers(value, act.Mods)

	// Offensive damage always lands for at least 1; support outcomes may be
	// zero but never negative.
	if skill.Application == data.ApplyDamage {
		if value < 1 {
			value = 1
		}
	} else if value < 0 {
		value = 0
	}

	// Commit. Past this point the action has succeeded.
	if !act.Actor.ConsumeEnergy(skill.EnergyCost) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientResource, skill.EnergyCost, act.Actor.CurrentEnergy())
	}

	out := &ResolvedOutcome{
		ActorID:     act.Actor.ID(),
		TargetID:    act.Target.ID(),
		SkillID:     skill.ID,
		Application: skill.Application,
		DamageType:  skill.DamageType,
		Amount:      value,
		Crit:        crit,
	}

	switch skill.Application {
	case data.ApplyDamage:
		act.Target.ApplyDamage(value)
	case data.ApplyHeal:
		out.Amount = act.Target.Heal(value)
	case data.ApplyMitigation:
		act.Target.AddShield(value)
	}

	if r.effects != nil {
		if skill.Cures > 0 {
			out.Cured = r.effects.Cure(act.Target, skill.Cures)
		}
		for _, eff := range skill.Effects {
			if r.effects.TryApply(act.Actor, act.Target, eff) {
				out.Applied = append(out.Applied, eff.Kind)
			}
		}
	}

	slog.Debug("action resolved",
		"actor", act.Actor.Name(),
		"target", act.Target.Name(),
		"skill", skill.Name,
		"application", skill.Application.String(),
		"amount", out.Amount,
		"crit", crit)

	return out, nil
}

// applyModifiers folds the caller's adjustment list into the value: all flat
// entries first, then all percent entries, each group in caller order.
func applyModifiers(value int32, mods []Modifier) int32 {
	for _, m := range mods {
		if m.Kind == ModFlat {
			value += m.Value
		}
	}
	for _, m := range mods {
		if m.Kind == ModPercent {
			value = value * (100 + m.Value) / 100
		}
	}
	return value
}
