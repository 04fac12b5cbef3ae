package effect

import (
	"log/slog"
	"math/rand"
	"sync"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// RollApply rolls an application chance in whole percent.
// Function variable so tests can pin the roll.
var RollApply = func(chancePct int32) bool {
	if chancePct <= 0 {
		return false
	}
	return rand.Int31n(100) < chancePct
}

// TickResult reports what one instance did during a round tick.
type TickResult struct {
	TargetID uint32
	SourceID uint32
	Kind     data.EffectKind

	// Amount is the health the tick moved: damage for over-time damage,
	// restore for over-time healing, 0 for control and stat kinds.
	Amount  int32
	Expired bool
}

// targetEffects is one entity's effect collection.
type targetEffects struct {
	creature  *model.Creature
	instances []*Instance
}

// Manager is the status effect engine for one encounter. It owns every
// participant's effect collection, applies per-kind stacking and immunity
// rules, and ticks instances once per combat round.
//
// Implements combat.EffectSink.
//
// Thread-safe, though an encounter drives it from a single goroutine.
type Manager struct {
	mu      sync.Mutex
	targets map[uint32]*targetEffects
	order   []uint32
}

// NewManager creates an empty effect engine.
func NewManager() *Manager {
	return &Manager{targets: make(map[uint32]*targetEffects)}
}

// TryApply attempts to attach one declared effect to the target. Returns
// false when the application is rejected: unknown kind, hard immunity, a
// failed chance roll, or the kind's stacking policy. A hard-immune rejection
// is a defined no-op, logged and never surfaced as an error.
func (m *Manager) TryApply(source, target *model.Creature, eff data.SkillEffect) bool {
	def, err := data.GetEffectKindDef(eff.Kind)
	if err != nil {
		slog.Warn("skill declares unknown effect kind", "kind", eff.Kind, "error", err)
		return false
	}

	if def.HasResist && target.HardImmune(def.ResistType) {
		slog.Debug("effect blocked by hard immunity",
			"kind", def.Kind.String(),
			"target", target.Name())
		return false
	}

	chance := eff.ChancePct
	if def.HasResist {
		// Resistance scales the application chance the same way it scales
		// damage. Negative resistance raises the chance.
		resist := target.Resists().Value(def.ResistType)
		chance = chance * (100 - resist) / 100
	}
	if !RollApply(chance) {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	te := m.register(target)

	if existing := findActive(te.instances, eff.Kind); existing != nil {
		switch def.Stacking {
		case data.StackReject:
			return false
		case data.StackAdd:
			if existing.Stacks < def.MaxStacks {
				existing.Stacks++
			}
			existing.Remaining = eff.DurationRounds
			return true
		default: // data.StackRefresh
			existing.Remaining = eff.DurationRounds
			existing.Magnitude = eff.Magnitude
			return true
		}
	}

	inst := &Instance{
		Kind:      eff.Kind,
		SourceID:  source.ID(),
		Remaining: eff.DurationRounds,
		Stacks:    1,
		Magnitude: eff.Magnitude,
		state:     StateApplied,
	}
	te.instances = append(te.instances, inst)
	setControlFlag(target, eff.Kind, true)

	slog.Debug("effect applied",
		"kind", eff.Kind.String(),
		"target", target.Name(),
		"rounds", eff.DurationRounds)
	return true
}

// TickRound advances every instance by one combat round: over-time kinds
// apply their magnitude, durations decrement, exhausted instances expire.
// Results come back in application order per target, targets in registration
// order.
func (m *Manager) TickRound() []TickResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	var results []TickResult
	for _, id := range m.order {
		te := m.targets[id]
		if te == nil {
			continue
		}
		if te.creature.IsDead() {
			m.dropAll(te)
			continue
		}

		n := 0
		for _, inst := range te.instances {
			res := tickInstance(te.creature, inst)
			results = append(results, res)

			if inst.Active() {
				te.instances[n] = inst
				n++
			} else {
				setControlFlag(te.creature, inst.Kind, false)
			}
		}
		te.instances = te.instances[:n]
	}
	return results
}

// tickInstance runs one round on one instance.
func tickInstance(target *model.Creature, inst *Instance) TickResult {
	if inst.state == StateApplied {
		inst.state = StateTicking
	}

	res := TickResult{
		TargetID: target.ID(),
		SourceID: inst.SourceID,
		Kind:     inst.Kind,
	}

	def, err := data.GetEffectKindDef(inst.Kind)
	if err == nil {
		switch def.Category {
		case data.CategoryDamageOverTime:
			dmg := inst.Magnitude * inst.Stacks
			if def.HasResist {
				resist := target.Resists().Value(def.ResistType)
				dmg = dmg * (100 - resist) / 100
			}
			if dmg < 1 {
				dmg = 1
			}
			target.ApplyDamage(dmg)
			res.Amount = dmg
		case data.CategoryHealOverTime:
			res.Amount = target.Heal(inst.Magnitude * inst.Stacks)
		}
	}

	inst.Remaining--
	if inst.Remaining <= 0 {
		inst.state = StateExpired
		res.Expired = true
	}
	return res
}

// Cure removes up to count harmful effects from the target, oldest first,
// and reports how many were removed. Beneficial kinds are untouched.
func (m *Manager) Cure(target *model.Creature, count int32) int32 {
	if count <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	te := m.targets[target.ID()]
	if te == nil {
		return 0
	}

	var cured int32
	n := 0
	for _, inst := range te.instances {
		if cured < count && isHarmful(inst.Kind) {
			inst.state = StateCured
			setControlFlag(te.creature, inst.Kind, false)
			cured++
			continue
		}
		te.instances[n] = inst
		n++
	}
	te.instances = te.instances[:n]

	if cured > 0 {
		slog.Debug("effects cured", "target", target.Name(), "count", cured)
	}
	return cured
}

// ClearTarget drops every instance on the target and resets its control
// flags. Used when a participant dies or leaves the encounter.
func (m *Manager) ClearTarget(target *model.Creature) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if te := m.targets[target.ID()]; te != nil {
		m.dropAll(te)
	}
}

// Has reports whether the target carries an active instance of the kind.
func (m *Manager) Has(targetID uint32, kind data.EffectKind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	te := m.targets[targetID]
	if te == nil {
		return false
	}
	return findActive(te.instances, kind) != nil
}

// StacksOf returns the active stack count of the kind on the target, 0 when
// absent.
func (m *Manager) StacksOf(targetID uint32, kind data.EffectKind) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	te := m.targets[targetID]
	if te == nil {
		return 0
	}
	if inst := findActive(te.instances, kind); inst != nil {
		return inst.Stacks
	}
	return 0
}

// OutgoingPenaltyPct returns the total percent reduction an actor's
// damage-down effects put on its outgoing damage. 0 when unaffected.
func (m *Manager) OutgoingPenaltyPct(actorID uint32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	te := m.targets[actorID]
	if te == nil {
		return 0
	}

	var pct int32
	for _, inst := range te.instances {
		if !inst.Active() {
			continue
		}
		if def, err := data.GetEffectKindDef(inst.Kind); err == nil && def.Category == data.CategoryDamageDown {
			pct += inst.Magnitude * inst.Stacks
		}
	}
	return pct
}

// IncomingFlatReduction returns the flat damage reduction a target's stat-up
// effects grant against each incoming hit. 0 when unaffected.
func (m *Manager) IncomingFlatReduction(targetID uint32) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	te := m.targets[targetID]
	if te == nil {
		return 0
	}

	var flat int32
	for _, inst := range te.instances {
		if !inst.Active() {
			continue
		}
		if def, err := data.GetEffectKindDef(inst.Kind); err == nil && def.Category == data.CategoryStatUp {
			flat += inst.Magnitude * inst.Stacks
		}
	}
	return flat
}

// SnapshotFor captures the target's active instances for persistence.
func (m *Manager) SnapshotFor(targetID uint32) []Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	te := m.targets[targetID]
	if te == nil {
		return nil
	}

	out := make([]Snapshot, 0, len(te.instances))
	for _, inst := range te.instances {
		if !inst.Active() {
			continue
		}
		out = append(out, Snapshot{
			Kind:      inst.Kind,
			SourceID:  inst.SourceID,
			Remaining: inst.Remaining,
			Stacks:    inst.Stacks,
			Magnitude: inst.Magnitude,
		})
	}
	return out
}

// RestoreFor rebuilds the target's collection from persisted snapshots.
// Control flags are re-applied so a restored stun still disables.
func (m *Manager) RestoreFor(target *model.Creature, snaps []Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	te := m.register(target)
	m.dropAll(te)

	for _, s := range snaps {
		if s.Remaining <= 0 {
			continue
		}
		stacks := s.Stacks
		if stacks < 1 {
			stacks = 1
		}
		te.instances = append(te.instances, &Instance{
			Kind:      s.Kind,
			SourceID:  s.SourceID,
			Remaining: s.Remaining,
			Stacks:    stacks,
			Magnitude: s.Magnitude,
			state:     StateTicking,
		})
		setControlFlag(target, s.Kind, true)
	}
}

// register returns the target's collection, creating it on first contact.
// Caller holds mu.
func (m *Manager) register(target *model.Creature) *targetEffects {
	te := m.targets[target.ID()]
	if te == nil {
		te = &targetEffects{creature: target}
		m.targets[target.ID()] = te
		m.order = append(m.order, target.ID())
	}
	return te
}

// dropAll expires every instance on the collection and clears control flags.
// Caller holds mu.
func (m *Manager) dropAll(te *targetEffects) {
	for _, inst := range te.instances {
		if inst.Active() {
			inst.state = StateExpired
		}
		setControlFlag(te.creature, inst.Kind, false)
	}
	te.instances = nil
}

// findActive returns the target's active instance of the kind, nil if none.
func findActive(instances []*Instance, kind data.EffectKind) *Instance {
	for _, inst := range instances {
		if inst.Kind == kind && inst.Active() {
			return inst
		}
	}
	return nil
}

// isHarmful reports whether the kind counts against a cure's removal budget.
func isHarmful(kind data.EffectKind) bool {
	def, err := data.GetEffectKindDef(kind)
	if err != nil {
		return false
	}
	switch def.Category {
	case data.CategoryDamageOverTime, data.CategoryControl, data.CategoryDamageDown:
		return true
	}
	return false
}

// setControlFlag flips the creature's disable flag matching a control kind.
func setControlFlag(c *model.Creature, kind data.EffectKind, on bool) {
	switch kind {
	case data.EffectStun:
		c.SetStunned(on)
	case data.EffectFreeze:
		c.SetFrozen(on)
	case data.EffectSlow:
		c.SetSlowed(on)
	}
}
