package progression

import (
	"log/slog"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// Level-gap penalty: victims this many effective levels below the killer
// start losing reward value, 10% per level past the grace band.
const (
	levelGapGrace      = 5
	levelGapPenaltyPct = 10
)

// KillReward computes the experience and class points a victim is worth to
// the killer before the award is applied: template base rewards, scaled by
// the configured rates, then by the level-gap penalty. Experience never drops
// below 1 — however weak the victim, grinding out catch-up debt must stay
// possible.
func (e *Engine) KillReward(killer *model.Player, victim *model.Creature) (xp int64, points int32) {
	npc := victim.AsNpc()
	if npc == nil {
		return 0, 0
	}

	xp = int64(float64(npc.BaseXP()) * e.rates.XP)
	points = int32(float64(npc.BaseClassPoints()) * e.rates.ClassPoints)

	gap := killer.Progression().EffectiveLevel() - victim.Level()
	if gap > levelGapGrace {
		pct := int64(100 - (gap-levelGapGrace)*levelGapPenaltyPct)
		if pct < 0 {
			pct = 0
		}
		xp = xp * pct / 100
		points = int32(int64(points) * pct / 100)
	}

	if xp < 1 {
		xp = 1
	}
	if points < 0 {
		points = 0
	}
	return xp, points
}

// RewardKill awards a victim's experience and class points to the killer.
// Called once per death by the encounter loop.
func (e *Engine) RewardKill(killer *model.Player, victim *model.Creature) AwardResult {
	xp, points := e.KillReward(killer, victim)

	res := e.AwardXP(killer, xp)
	res.ClassPoints = points
	killer.Progression().AddClassPoints(points)

	slog.Debug("kill rewarded",
		"killer", killer.Name(),
		"victim", victim.Name(),
		"xp", xp,
		"classPoints", points)
	return res
}
