package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

func TestCharacterRepositorySaveAndLoad(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCharacterRepository(pool)
	ctx := context.Background()

	p, err := model.NewPlayer(7, "Ashen", data.PureDPS)
	require.NoError(t, err)

	// Shape some lived-in state: a learned ultimate, spent points, a
	// chapter clamp.
	require.NoError(t, p.LearnSkill(data.SkillCataclysm))
	state := p.Progression()
	state.SetTrueLevel(23)
	state.SetEffectiveLevel(20)
	state.SetXPIntoLevel(42)
	state.AddTotalXP(5_000)
	state.AddClassPoints(12)
	state.SetSkillUses(60)
	state.SetSkillLevel(3)
	state.SetBracket(2, 20)
	state.SetCatchupDebt(data.XPBetween(20, 23))
	require.NoError(t, p.AllocateRank(data.SkillCrushingBlow))
	require.NoError(t, p.AllocateRank(data.SkillCrushingBlow))

	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.Load(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, "Ashen", loaded.Name())
	assert.Equal(t, data.PureDPS, loaded.Archetype())
	assert.Equal(t, p.Progression().Snapshot(), loaded.Progression().Snapshot())
	assert.Equal(t, p.Toolbelt(), loaded.Toolbelt())
	assert.Equal(t, int32(2), loaded.RankOf(data.SkillCrushingBlow))
	assert.True(t, loaded.HasSkill(data.SkillCataclysm))

	// Stats come from the effective level, not the true level.
	assert.Equal(t, int32(20), loaded.Level())
}

func TestCharacterRepositorySaveIsUpsert(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCharacterRepository(pool)
	ctx := context.Background()

	p, err := model.NewPlayer(3, "Brant", data.PureTank)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p))

	p.Progression().SetTrueLevel(5)
	p.Progression().SetEffectiveLevel(5)
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.Load(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, int32(5), loaded.Progression().TrueLevel())
}

func TestCharacterRepositoryLoadMissing(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCharacterRepository(pool)

	loaded, err := repo.Load(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCharacterRepositoryNameExists(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCharacterRepository(pool)
	ctx := context.Background()

	p, err := model.NewPlayer(11, "Selene", data.Support)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p))

	exists, err := repo.NameExists(ctx, "selene")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.NameExists(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCharacterRepositoryDelete(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCharacterRepository(pool)
	ctx := context.Background()

	p, err := model.NewPlayer(21, "Vale", data.HybridDpsTank)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, repo.Delete(ctx, 21))

	loaded, err := repo.Load(ctx, 21)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	assert.Error(t, repo.Delete(ctx, 21))
}
