package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

func TestFirstUsablePicksDamageAtFirstLivingEnemy(t *testing.T) {
	p := newTestPlayer(t, data.PureDPS)
	dead := spawn(data.TemplateRuinHound, 50)
	dead.SetCurrentHealth(0)
	alive := spawn(data.TemplateRuinHound, 51)

	skillID, target, ok := FirstUsable{}.Choose(p.Creature,
		[]*model.Creature{p.Creature},
		[]*model.Creature{dead, alive})

	require.True(t, ok)
	assert.Equal(t, data.SkillCrushingBlow, skillID)
	assert.Same(t, alive, target)
}

func TestFirstUsableHealsMostHurtAlly(t *testing.T) {
	healer := newTestPlayer(t, data.PureSupport)
	ally, err := model.NewPlayer(2, "ally", data.PureTank)
	require.NoError(t, err)
	ally.SetCurrentHealth(ally.MaxHealth() / 10)

	skillID, target, ok := FirstUsable{}.Choose(healer.Creature,
		[]*model.Creature{healer.Creature, ally.Creature},
		nil)

	require.True(t, ok)
	assert.Equal(t, data.SkillMendingTouch, skillID)
	assert.Same(t, ally.Creature, target)
}

func TestFirstUsableShieldsSelfAtFullHealth(t *testing.T) {
	// No enemies and nobody hurt: the damage skill has no target and the
	// heal is wasted, so the tank falls through to shielding itself.
	tank := newTestPlayer(t, data.PureTank)

	skillID, target, ok := FirstUsable{}.Choose(tank.Creature,
		[]*model.Creature{tank.Creature},
		nil)

	require.True(t, ok)
	assert.Equal(t, data.SkillBulwark, skillID)
	assert.Same(t, tank.Creature, target)
}

func TestFirstUsablePassesWithoutEnergy(t *testing.T) {
	p := newTestPlayer(t, data.PureDPS)
	p.SetCurrentEnergy(0)
	hound := spawn(data.TemplateRuinHound, 50)

	_, _, ok := FirstUsable{}.Choose(p.Creature,
		[]*model.Creature{p.Creature},
		[]*model.Creature{hound})

	assert.False(t, ok)
}

func TestFirstUsableSkipsUnaffordableSkills(t *testing.T) {
	// 10 energy: Crushing Blow (12) and Flame Lash (14) are out of reach,
	// Venom Dart (10) is the first affordable skill in learn order.
	p := newTestPlayer(t, data.PureDPS)
	p.SetCurrentEnergy(10)
	hound := spawn(data.TemplateRuinHound, 50)

	skillID, _, ok := FirstUsable{}.Choose(p.Creature,
		[]*model.Creature{p.Creature},
		[]*model.Creature{hound})

	require.True(t, ok)
	assert.Equal(t, data.SkillVenomDart, skillID)
}
