package combat

import (
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// ApplyResistance reduces base damage by the target's resistance to the
// damage type. Runs against base damage only, before any archetype or
// equipment multiplier.
//
// Boss hard immunity is categorical: a hard-immune damage type returns 0
// before any numeric work, whatever the magnitude. For everything else the
// profile value (clamped to ±99 at write time) scales the damage, so
// resistance alone can never fully negate nor infinitely amplify a hit.
//
// Pure over the target snapshot; no side effects.
func ApplyResistance(baseDamage int32, dt data.DamageType, target *model.Creature) int32 {
	if target.HardImmune(dt) {
		return 0
	}
	resist := target.Resists().Value(dt)
	return baseDamage * (100 - resist) / 100
}
