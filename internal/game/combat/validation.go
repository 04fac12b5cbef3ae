package combat

import (
	"errors"
	"fmt"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

var (
	// ErrInvalidAction — the action cannot be taken: unknown or unlearned
	// skill, dead or missing participant, or the actor is disabled by a
	// control effect.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInsufficientResource — the skill costs more energy than the actor
	// currently has.
	ErrInsufficientResource = errors.New("insufficient energy")
)

// ValidateAction checks an action before any state changes. A non-nil error
// means nothing was mutated: no energy spent, no effect applied.
func ValidateAction(actor, target *model.Creature, skill *data.SkillTemplate) error {
	if skill == nil {
		return fmt.Errorf("%w: unknown skill", ErrInvalidAction)
	}
	if actor == nil {
		return fmt.Errorf("%w: no actor", ErrInvalidAction)
	}
	if target == nil {
		return fmt.Errorf("%w: no target", ErrInvalidAction)
	}
	if actor.IsDead() {
		return fmt.Errorf("%w: actor is dead", ErrInvalidAction)
	}
	if actor.IsDisabled() {
		return fmt.Errorf("%w: actor is disabled", ErrInvalidAction)
	}
	if target.IsDead() {
		return fmt.Errorf("%w: target is dead", ErrInvalidAction)
	}
	if !actor.HasSkill(skill.ID) {
		return fmt.Errorf("%w: skill %d not in toolbelt", ErrInvalidAction, skill.ID)
	}
	if actor.CurrentEnergy() < skill.EnergyCost {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientResource, skill.EnergyCost, actor.CurrentEnergy())
	}
	return nil
}
