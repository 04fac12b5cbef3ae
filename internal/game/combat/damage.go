package combat

import (
	"math/rand"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// RollRange picks a value from the closed range [lo, hi].
// Function variable so tests can pin the roll.
var RollRange = func(lo, hi int32) int32 {
	if hi <= lo {
		return lo
	}
	return lo + rand.Int31n(hi-lo+1)
}

// RollCrit rolls a critical strike against a percent chance.
// Function variable so tests can pin the roll.
var RollCrit = func(critPct int32) bool {
	if critPct <= 0 {
		return false
	}
	return rand.Int31n(100) < critPct
}

// CalcBaseValue computes the pre-mitigation value of one skill use: a bounded
// roll from the catalog scaled by the actor's power, doubled on a critical
// strike. Power scaling is (200 + power) / 200, so 200 power doubles output.
func CalcBaseValue(actor *model.Creature, skill *data.SkillTemplate, skillLevel, rank int32) (value int32, crit bool) {
	lo, hi := skill.ValueBounds(skillLevel, rank)
	value = RollRange(lo, hi)
	value = value * (200 + actor.Power()) / 200

	if RollCrit(skill.CritPct) {
		value *= 2
		crit = true
	}
	return value, crit
}
