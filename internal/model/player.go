package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
)

var (
	ErrUnknownSkill       = errors.New("skill not in catalog")
	ErrUltimateIneligible = errors.New("only pure specializations may learn ultimates")
	ErrSkillNotLearned    = errors.New("skill not learned")
	ErrMaxRank            = errors.New("skill already at maximum rank")
	ErrNoClassPoints      = errors.New("not enough class points")
)

// Player — a played character. Adds archetype, class-point allocations and
// progression state to the creature base.
type Player struct {
	*Creature

	archetype data.Archetype
	template  *data.PlayerTemplate

	progression *ProgressionState

	playerMu sync.RWMutex // guards allocations and archetype swap

	// allocations maps skill id to allocated rank count.
	allocations map[int32]int32
}

// NewPlayer creates a level-1 character of the given archetype, with the
// archetype's starting toolbelt and full pools.
func NewPlayer(id uint32, name string, archetype data.Archetype) (*Player, error) {
	tpl, err := data.GetPlayerTemplate(archetype)
	if err != nil {
		return nil, fmt.Errorf("create player %q: %w", name, err)
	}

	creature := NewCreature(
		id, name, 1,
		tpl.PowerAt(1), tpl.VitalityAt(1),
		tpl.MaxHealthAt(1), tpl.MaxEnergyAt(1),
		tpl.StartingSkills,
	)

	p := &Player{
		Creature:    creature,
		archetype:   archetype,
		template:    tpl,
		progression: NewProgressionState(),
		allocations: make(map[int32]int32),
	}

	// Backref for type assertions from *Creature call sites.
	creature.Data = p

	return p, nil
}

// Archetype returns the current specialization.
func (p *Player) Archetype() data.Archetype {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.archetype
}

// Template returns the archetype template stats derive from.
func (p *Player) Template() *data.PlayerTemplate {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.template
}

// Progression returns the character's progression state.
func (p *Player) Progression() *ProgressionState {
	return p.progression
}

// LearnSkill adds a catalog skill to the toolbelt. Ultimates require a pure
// specialization. Learning an already-known skill is a no-op.
func (p *Player) LearnSkill(skillID int32) error {
	tpl := data.GetSkillTemplate(skillID)
	if tpl == nil {
		return fmt.Errorf("%w: id %d", ErrUnknownSkill, skillID)
	}
	if tpl.IsUltimate() && !p.Archetype().IsPure() {
		return fmt.Errorf("%w: %s", ErrUltimateIneligible, tpl.Name)
	}

	p.addSkill(skillID)
	return nil
}

// RankOf returns the allocated rank for a skill, 0 when none.
func (p *Player) RankOf(skillID int32) int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.allocations[skillID]
}

// AllocateRank spends one class point to raise a learned skill's rank by
// one. Fails without mutating when the skill is unknown, not learned, at
// maximum rank, or no points are free.
func (p *Player) AllocateRank(skillID int32) error {
	tpl := data.GetSkillTemplate(skillID)
	if tpl == nil {
		return fmt.Errorf("%w: id %d", ErrUnknownSkill, skillID)
	}
	if !p.HasSkill(skillID) {
		return fmt.Errorf("%w: %s", ErrSkillNotLearned, tpl.Name)
	}

	p.playerMu.Lock()
	defer p.playerMu.Unlock()

	if p.allocations[skillID] >= tpl.MaxRank {
		return fmt.Errorf("%w: %s rank %d", ErrMaxRank, tpl.Name, tpl.MaxRank)
	}
	if !p.progression.SpendClassPoints(1) {
		return ErrNoClassPoints
	}
	p.allocations[skillID]++
	return nil
}

// Allocations returns a copy of the rank allocations.
func (p *Player) Allocations() map[int32]int32 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()

	out := make(map[int32]int32, len(p.allocations))
	for id, rank := range p.allocations {
		out[id] = rank
	}
	return out
}

// ClearAllocations wipes every rank allocation and refunds the spent class
// points. Returns the number of points refunded.
func (p *Player) ClearAllocations() int32 {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()

	p.allocations = make(map[int32]int32)
	return p.progression.RefundAllClassPoints()
}

// SetArchetype swaps the specialization and rebuilds the toolbelt from the
// new archetype's starting skills. Everything learned on the old path,
// ultimates included, is dropped. Used by the class reset.
func (p *Player) SetArchetype(archetype data.Archetype) error {
	tpl, err := data.GetPlayerTemplate(archetype)
	if err != nil {
		return err
	}

	p.playerMu.Lock()
	p.archetype = archetype
	p.template = tpl
	p.playerMu.Unlock()

	p.setToolbelt(tpl.StartingSkills)
	return nil
}

// RestoreAllocations overwrites the rank allocations wholesale. Persistence
// boundary only: the spent-point counter is restored separately through the
// progression snapshot, so no points are charged here.
func (p *Player) RestoreAllocations(allocs map[int32]int32) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()

	p.allocations = make(map[int32]int32, len(allocs))
	for id, rank := range allocs {
		if rank > 0 {
			p.allocations[id] = rank
		}
	}
}

// SyncToLevel recomputes stats and pool maxima from the template at the
// given effective level. Current pools are trimmed, never refilled; see
// RefillPools for the level-up refresh.
func (p *Player) SyncToLevel(level int32) {
	tpl := p.Template()

	p.SetLevel(level)
	p.SetPower(tpl.PowerAt(level))
	p.SetVitality(tpl.VitalityAt(level))
	p.SetMaxHealth(tpl.MaxHealthAt(level))
	p.SetMaxEnergy(tpl.MaxEnergyAt(level))
}

// RefillPools restores health and energy to their maxima.
func (p *Player) RefillPools() {
	p.SetCurrentHealth(p.MaxHealth())
	p.SetCurrentEnergy(p.MaxEnergy())
}
