package progression

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// Respec costs, paid in gold through the injected PayFunc. Gold itself lives
// outside the engine; the controller only runs the precondition.
const (
	SkillResetCost int64 = 5_000
	ClassResetCost int64 = 25_000
)

var (
	// ErrInCombat — respec operations are refused while the character sits
	// in an active encounter.
	ErrInCombat = errors.New("character is in combat")

	// ErrCannotPay — the external gold deduction failed, nothing was reset.
	ErrCannotPay = errors.New("cannot pay respec cost")
)

// PayFunc deducts a gold cost from the character's external wallet. A nil
// PayFunc waives all costs. Returning an error aborts the reset before any
// state changes.
type PayFunc func(playerID uint32, cost int64) error

// Respec handles the two reset operations. The engine reference re-applies
// the chapter clamp after a class reset.
type Respec struct {
	engine *Engine
	pay    PayFunc
}

// NewRespec creates a respec controller. pay may be nil to waive costs.
func NewRespec(engine *Engine, pay PayFunc) *Respec {
	return &Respec{engine: engine, pay: pay}
}

// SkillReset clears every class-point allocation and returns the points to
// the free pool. True level, skill mastery level, archetype and total class
// points are untouched. Returns the number of points refunded.
func (r *Respec) SkillReset(p *model.Player) (int32, error) {
	if p.InCombat() {
		return 0, fmt.Errorf("%w: skill reset", ErrInCombat)
	}
	if err := r.charge(p, SkillResetCost); err != nil {
		return 0, err
	}

	refunded := p.ClearAllocations()

	slog.Info("skill reset",
		"player", p.Name(),
		"refundedPoints", refunded)
	return refunded, nil
}

// ClassReset swaps the character onto a new archetype and starts it over:
// true level, effective level and skill mastery drop to 1, allocations are
// wiped, the toolbelt rebuilds from the new archetype's starting skills.
// Total class points earned survive in full and return to the free pool.
// The current chapter's clamp re-applies exactly as if the character had
// just transitioned chapters at level 1 — at the floor or below that is
// no clamp at all.
func (r *Respec) ClassReset(p *model.Player, archetype data.Archetype) (model.ProgressionSnapshot, error) {
	if p.InCombat() {
		return model.ProgressionSnapshot{}, fmt.Errorf("%w: class reset", ErrInCombat)
	}
	old := p.Archetype()
	if err := r.charge(p, ClassResetCost); err != nil {
		return model.ProgressionSnapshot{}, err
	}

	if err := p.SetArchetype(archetype); err != nil {
		return model.ProgressionSnapshot{}, fmt.Errorf("class reset: %w", err)
	}
	p.ClearAllocations()

	state := p.Progression()
	state.SetTrueLevel(1)
	state.SetEffectiveLevel(1)
	state.SetSkillLevel(1)
	state.SetXPIntoLevel(0)
	state.SetSkillUses(0)

	snap, err := r.engine.EnterChapter(p, state.Chapter())
	if err != nil {
		return model.ProgressionSnapshot{}, fmt.Errorf("class reset: %w", err)
	}
	p.RefillPools()

	slog.Info("class reset",
		"player", p.Name(),
		"oldArchetype", old.String(),
		"newArchetype", archetype.String(),
		"classPoints", state.TotalClassPoints())
	return snap, nil
}

// charge runs the external gold deduction, if one is configured.
func (r *Respec) charge(p *model.Player, cost int64) error {
	if r.pay == nil {
		return nil
	}
	if err := r.pay(p.ID(), cost); err != nil {
		return fmt.Errorf("%w: %w", ErrCannotPay, err)
	}
	return nil
}
