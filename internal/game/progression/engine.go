package progression

import (
	"fmt"
	"log/slog"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/config"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// SkillUsesPerLevel — successful skill uses needed to raise the character's
// skill mastery level by one. The mastery level is the skill-level input to
// catalog value scaling and caps at MaxSkillLevel.
const (
	SkillUsesPerLevel = 25
	MaxSkillLevel     = 100
)

// AwardResult reports what one experience award did to the character.
type AwardResult struct {
	XP          int64
	ClassPoints int32

	// DebtRepaid is how much of the award went into the chapter catch-up
	// debt before any of it could raise the true level.
	DebtRepaid int64

	OldLevel int32
	NewLevel int32

	OldEffectiveLevel int32
	NewEffectiveLevel int32

	OldSkillLevel int32
	NewSkillLevel int32
}

// LeveledUp reports whether the award crossed at least one true-level
// threshold.
func (r AwardResult) LeveledUp() bool {
	return r.NewLevel > r.OldLevel
}

// Engine owns the experience curve walk, level-up transitions and the
// per-chapter catch-up mechanic. One engine serves every character; all
// per-character state lives in the character's ProgressionState, mutated
// under the single-writer rule (a character sits in at most one encounter).
type Engine struct {
	rates config.Rates
}

// NewEngine creates a progression engine with the given reward rates.
func NewEngine(rates config.Rates) *Engine {
	return &Engine{rates: rates}
}

// AwardXP grants experience to the character and walks the curve:
// outstanding catch-up debt is repaid first, then remaining experience
// crosses true-level thresholds with overflow carrying into the next level.
// Past the level ceiling experience is retained but converts into nothing —
// a defined no-op, not an error.
//
// Stats and pool maxima re-sync when the effective level moves; pools refill
// only on a true level-up.
func (e *Engine) AwardXP(p *model.Player, amount int64) AwardResult {
	state := p.Progression()

	res := AwardResult{
		XP:                amount,
		OldLevel:          state.TrueLevel(),
		OldEffectiveLevel: state.EffectiveLevel(),
		OldSkillLevel:     state.SkillLevel(),
	}
	res.NewLevel = res.OldLevel
	res.NewEffectiveLevel = res.OldEffectiveLevel
	res.NewSkillLevel = res.OldSkillLevel

	if amount <= 0 {
		return res
	}
	state.AddTotalXP(amount)

	remaining := amount
	if debt := state.CatchupDebt(); debt > 0 {
		repaid := min(debt, remaining)
		remaining -= repaid
		state.SetCatchupDebt(debt - repaid)
		res.DebtRepaid = repaid

		res.NewEffectiveLevel = e.recoverEffectiveLevel(p)
		if res.NewEffectiveLevel != res.OldEffectiveLevel {
			p.SyncToLevel(res.NewEffectiveLevel)
			slog.Info("catch-up level recovered",
				"player", p.Name(),
				"effectiveLevel", res.NewEffectiveLevel,
				"trueLevel", res.NewLevel,
				"debtLeft", state.CatchupDebt())
		}
	}

	if remaining > 0 {
		res.NewLevel = e.walkCurve(p, remaining)
		if res.NewLevel > res.OldLevel {
			// No debt is outstanding here: overflow only reaches the curve
			// after full repayment, so effective tracks true again.
			res.NewEffectiveLevel = res.NewLevel
			state.SetEffectiveLevel(res.NewLevel)
			p.SyncToLevel(res.NewLevel)
			p.RefillPools()

			slog.Info("player leveled up",
				"player", p.Name(),
				"oldLevel", res.OldLevel,
				"newLevel", res.NewLevel,
				"totalXP", state.TotalXP())
		}
	}

	return res
}

// walkCurve adds experience toward the next true level and crosses as many
// thresholds as the amount affords. Returns the resulting true level.
func (e *Engine) walkCurve(p *model.Player, amount int64) int32 {
	state := p.Progression()

	level := state.TrueLevel()
	xp := state.XPIntoLevel() + amount

	for level < data.MaxLevel {
		need := data.XPToAdvance(level)
		if xp < need {
			break
		}
		xp -= need
		level++
	}

	// At the ceiling the counter keeps the overflow; it is retained, just
	// never convertible into another level.
	state.SetTrueLevel(level)
	state.SetXPIntoLevel(xp)
	return level
}

// recoverEffectiveLevel recomputes the effective level from how much of the
// chapter debt has been repaid: each re-crossed threshold above the bracket
// floor returns one clamped level. Reaching full repayment restores the true
// level exactly.
func (e *Engine) recoverEffectiveLevel(p *model.Player) int32 {
	state := p.Progression()

	floor := state.BracketFloor()
	trueLevel := state.TrueLevel()
	repaid := data.XPBetween(floor, trueLevel) - state.CatchupDebt()

	eff := floor
	for eff < trueLevel && data.XPBetween(floor, eff+1) <= repaid {
		eff++
	}
	state.SetEffectiveLevel(eff)
	return eff
}

// EnterChapter moves the character into a story chapter bracket. A true
// level above the bracket floor is clamped: the effective level drops to the
// floor and the exact curve cost from the floor back up to the true level
// becomes catch-up debt. At or below the floor nothing clamps; the bracket
// maximum is pacing guidance, never enforced.
//
// Returns the updated progression snapshot for display and persistence.
func (e *Engine) EnterChapter(p *model.Player, chapter int32) (model.ProgressionSnapshot, error) {
	bracket, err := data.GetBracket(chapter)
	if err != nil {
		return model.ProgressionSnapshot{}, fmt.Errorf("enter chapter: %w", err)
	}

	state := p.Progression()
	state.SetBracket(bracket.Chapter, bracket.MinLevel)

	trueLevel := state.TrueLevel()
	if trueLevel > bracket.MinLevel {
		debt := data.XPBetween(bracket.MinLevel, trueLevel)
		state.SetCatchupDebt(debt)
		state.SetEffectiveLevel(bracket.MinLevel)
		p.SyncToLevel(bracket.MinLevel)

		slog.Info("chapter entered with catch-up clamp",
			"player", p.Name(),
			"chapter", bracket.Chapter,
			"trueLevel", trueLevel,
			"effectiveLevel", bracket.MinLevel,
			"debt", debt)
	} else {
		state.SetCatchupDebt(0)
		state.SetEffectiveLevel(trueLevel)
		p.SyncToLevel(trueLevel)

		slog.Info("chapter entered",
			"player", p.Name(),
			"chapter", bracket.Chapter,
			"level", trueLevel)
	}

	return state.Snapshot(), nil
}

// RecordSkillUse counts one successful skill use toward the character's
// skill mastery level: one level per SkillUsesPerLevel uses, capped at
// MaxSkillLevel. Returns the mastery level after the use.
func (e *Engine) RecordSkillUse(p *model.Player) int32 {
	state := p.Progression()

	uses := state.AddSkillUses(1)
	level := min(int32(uses/SkillUsesPerLevel)+1, int32(MaxSkillLevel))

	if level > state.SkillLevel() {
		state.SetSkillLevel(level)
		slog.Info("skill mastery increased",
			"player", p.Name(),
			"skillLevel", level,
			"uses", uses)
	}
	return state.SkillLevel()
}
