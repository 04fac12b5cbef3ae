package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/config"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

func init() {
	if err := data.LoadSkills(); err != nil {
		panic("load skills: " + err.Error())
	}
	if err := data.LoadEntityTemplates(); err != nil {
		panic("load entity templates: " + err.Error())
	}
	if err := data.LoadPlayerTemplates(); err != nil {
		panic("load player templates: " + err.Error())
	}
}

func newTestEngine() *Engine {
	return NewEngine(config.DefaultRates())
}

func newTestPlayer(t *testing.T) *model.Player {
	t.Helper()
	p, err := model.NewPlayer(1, "hero", data.PureDPS)
	require.NoError(t, err)
	return p
}

// levelTo drives the player to the given true level through the public award
// path, so the state is exactly what real play produces.
func levelTo(t *testing.T, e *Engine, p *model.Player, level int32) {
	t.Helper()
	e.AwardXP(p, data.XPBetween(p.Progression().TrueLevel(), level)-p.Progression().XPIntoLevel())
	require.Equal(t, level, p.Progression().TrueLevel())
	require.Equal(t, int64(0), p.Progression().XPIntoLevel())
}

func TestAwardXPSingleLevelUp(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)

	res := e.AwardXP(p, 100)

	assert.Equal(t, int32(1), res.OldLevel)
	assert.Equal(t, int32(2), res.NewLevel)
	assert.True(t, res.LeveledUp())
	assert.Equal(t, int32(2), p.Progression().TrueLevel())
	assert.Equal(t, int32(2), p.Progression().EffectiveLevel())
	assert.Equal(t, int64(0), p.Progression().XPIntoLevel())
}

func TestAwardXPOverflowCarries(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)

	// Level 1 needs 100, level 2 needs 102. 250 = two level-ups + 48 spare.
	res := e.AwardXP(p, 250)

	assert.Equal(t, int32(3), res.NewLevel)
	assert.Equal(t, int64(48), p.Progression().XPIntoLevel())
	assert.Equal(t, int64(250), p.Progression().TotalXP())
}

func TestAwardXPLevelUpSyncsStoredEffectiveLevel(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)

	res := e.AwardXP(p, 250)

	// Gap penalties and snapshots read the stored state, never the result.
	state := p.Progression()
	assert.Equal(t, res.NewEffectiveLevel, state.EffectiveLevel())
	assert.Equal(t, int32(3), state.EffectiveLevel())
	assert.Equal(t, int32(3), state.Snapshot().EffectiveLevel)
}

func TestAwardXPBelowThreshold(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)

	res := e.AwardXP(p, 99)

	assert.False(t, res.LeveledUp())
	assert.Equal(t, int32(1), p.Progression().TrueLevel())
	assert.Equal(t, int64(99), p.Progression().XPIntoLevel())
}

func TestAwardXPZeroAndNegative(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)

	e.AwardXP(p, 0)
	e.AwardXP(p, -50)

	assert.Equal(t, int32(1), p.Progression().TrueLevel())
	assert.Equal(t, int64(0), p.Progression().TotalXP())
}

func TestAwardXPLevelUpRefillsPools(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)
	p.SetCurrentHealth(1)
	p.SetCurrentEnergy(0)

	e.AwardXP(p, 100)

	assert.Equal(t, p.MaxHealth(), p.CurrentHealth())
	assert.Equal(t, p.MaxEnergy(), p.CurrentEnergy())
}

func TestAwardXPSyncsStatsToLevel(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)
	tpl := p.Template()

	levelTo(t, e, p, 5)

	assert.Equal(t, tpl.PowerAt(5), p.Power())
	assert.Equal(t, tpl.MaxHealthAt(5), p.MaxHealth())
	assert.Equal(t, int32(5), p.Level())
}

func TestLevelCeiling(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)

	levelTo(t, e, p, data.MaxLevel)
	require.Equal(t, int32(data.MaxLevel), p.Progression().TrueLevel())

	// Past the ceiling experience is retained but never converts.
	res := e.AwardXP(p, 1_000_000)

	assert.False(t, res.LeveledUp())
	assert.Equal(t, int32(data.MaxLevel), p.Progression().TrueLevel())
	assert.Equal(t, int64(1_000_000), p.Progression().XPIntoLevel())
	assert.Equal(t, data.CumulativeXP(data.MaxLevel)+1_000_000, p.Progression().TotalXP())
}

func TestEnterChapterClampsOverleveled(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)
	levelTo(t, e, p, 23)

	snap, err := e.EnterChapter(p, 2)
	require.NoError(t, err)

	assert.Equal(t, int32(23), snap.TrueLevel)
	assert.Equal(t, int32(20), snap.EffectiveLevel)
	assert.Equal(t, data.XPBetween(20, 23), snap.CatchupDebt)
	assert.Equal(t, int32(20), p.Level(), "combat level drops to the floor")
	assert.Equal(t, p.Template().PowerAt(20), p.Power(), "stats recompute from the effective level")
}

func TestEnterChapterAtOrBelowFloor(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)
	levelTo(t, e, p, 15)

	snap, err := e.EnterChapter(p, 2)
	require.NoError(t, err)

	assert.Equal(t, int32(15), snap.EffectiveLevel)
	assert.Equal(t, int64(0), snap.CatchupDebt)
}

func TestEnterChapterUnknownChapter(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)

	_, err := e.EnterChapter(p, 9)
	assert.ErrorIs(t, err, data.ErrCatalog)
}

// The catch-up guarantee: a character at true level 23 clamped to floor 20
// must re-earn the exact 20→23 curve cost before its true level moves again,
// recovering one effective level per re-crossed threshold on the way.
func TestCatchupDebtRepayment(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)
	levelTo(t, e, p, 23)

	_, err := e.EnterChapter(p, 2)
	require.NoError(t, err)

	debt := data.XPBetween(20, 23)
	state := p.Progression()

	// One level's worth of repayment recovers one effective level.
	res := e.AwardXP(p, data.XPToAdvance(20))
	assert.Equal(t, data.XPToAdvance(20), res.DebtRepaid)
	assert.Equal(t, int32(21), state.EffectiveLevel())
	assert.Equal(t, int32(23), state.TrueLevel(), "true level frozen while debt is outstanding")

	// Everything but the last point: still one short of full recovery.
	e.AwardXP(p, debt-data.XPToAdvance(20)-1)
	assert.Equal(t, int32(22), state.EffectiveLevel())
	assert.Equal(t, int64(1), state.CatchupDebt())

	// The final point clears the debt and restores the true level.
	e.AwardXP(p, 1)
	assert.Equal(t, int64(0), state.CatchupDebt())
	assert.Equal(t, int32(23), state.EffectiveLevel())
	assert.Equal(t, int32(23), state.TrueLevel())
}

func TestCatchupOverflowFlowsIntoLeveling(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)
	levelTo(t, e, p, 23)

	_, err := e.EnterChapter(p, 2)
	require.NoError(t, err)

	debt := data.XPBetween(20, 23)
	state := p.Progression()

	// Repay the whole debt and cross the next threshold in one award.
	res := e.AwardXP(p, debt+data.XPToAdvance(23))

	assert.Equal(t, debt, res.DebtRepaid)
	assert.Equal(t, int32(24), state.TrueLevel())
	assert.Equal(t, int32(24), state.EffectiveLevel())
	assert.Equal(t, int64(0), state.CatchupDebt())
}

func TestCatchupDoesNotRefillPools(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)
	levelTo(t, e, p, 23)
	_, err := e.EnterChapter(p, 2)
	require.NoError(t, err)

	p.SetCurrentHealth(1)
	e.AwardXP(p, data.XPToAdvance(20))

	// Recovering a clamped level is not a level-up.
	assert.Equal(t, int32(1), p.CurrentHealth())
}

func TestRecordSkillUse(t *testing.T) {
	e := newTestEngine()
	p := newTestPlayer(t)

	for i := 0; i < SkillUsesPerLevel-1; i++ {
		e.RecordSkillUse(p)
	}
	assert.Equal(t, int32(1), p.Progression().SkillLevel())

	got := e.RecordSkillUse(p)
	assert.Equal(t, int32(2), got)
	assert.Equal(t, int32(2), p.Progression().SkillLevel())

	for i := 0; i < SkillUsesPerLevel; i++ {
		e.RecordSkillUse(p)
	}
	assert.Equal(t, int32(3), p.Progression().SkillLevel())
}
