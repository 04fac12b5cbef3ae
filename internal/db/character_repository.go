package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// CharacterRepository persists characters and their progression state.
// The character id is owned by the caller: the engine assigns entity ids,
// the repository only stores them.
type CharacterRepository struct {
	pool *pgxpool.Pool
}

// NewCharacterRepository creates a CharacterRepository.
func NewCharacterRepository(pool *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{pool: pool}
}

// Save upserts the character row: identity, archetype, the full progression
// snapshot, the toolbelt and the rank allocations.
func (r *CharacterRepository) Save(ctx context.Context, p *model.Player) error {
	snap := p.Progression().Snapshot()

	query := `
		INSERT INTO characters (
			character_id, name, archetype,
			true_level, effective_level, skill_level,
			xp_into_level, total_xp,
			total_class_points, spent_class_points, skill_uses,
			chapter, bracket_floor, catchup_debt,
			toolbelt, allocations, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (character_id) DO UPDATE SET
			name = EXCLUDED.name,
			archetype = EXCLUDED.archetype,
			true_level = EXCLUDED.true_level,
			effective_level = EXCLUDED.effective_level,
			skill_level = EXCLUDED.skill_level,
			xp_into_level = EXCLUDED.xp_into_level,
			total_xp = EXCLUDED.total_xp,
			total_class_points = EXCLUDED.total_class_points,
			spent_class_points = EXCLUDED.spent_class_points,
			skill_uses = EXCLUDED.skill_uses,
			chapter = EXCLUDED.chapter,
			bracket_floor = EXCLUDED.bracket_floor,
			catchup_debt = EXCLUDED.catchup_debt,
			toolbelt = EXCLUDED.toolbelt,
			allocations = EXCLUDED.allocations,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		int64(p.ID()), p.Name(), p.Archetype().String(),
		snap.TrueLevel, snap.EffectiveLevel, snap.SkillLevel,
		snap.XPIntoLevel, snap.TotalXP,
		snap.TotalClassPoints, snap.SpentClassPoints, snap.SkillUses,
		snap.Chapter, snap.BracketFloor, snap.CatchupDebt,
		p.Toolbelt(), p.Allocations(), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving character %q: %w", p.Name(), err)
	}
	return nil
}

// Load rebuilds a character from its row. Returns nil, nil when the id is
// unknown (not an error). The toolbelt is re-learned through the catalog, so
// a row referencing a skill that no longer exists fails loudly.
func (r *CharacterRepository) Load(ctx context.Context, characterID uint32) (*model.Player, error) {
	query := `
		SELECT name, archetype,
		       true_level, effective_level, skill_level,
		       xp_into_level, total_xp,
		       total_class_points, spent_class_points, skill_uses,
		       chapter, bracket_floor, catchup_debt,
		       toolbelt, allocations
		FROM characters
		WHERE character_id = $1
	`

	var (
		name          string
		archetypeName string
		snap          model.ProgressionSnapshot
		toolbelt      []int32
		allocations   map[int32]int32
	)

	err := r.pool.QueryRow(ctx, query, int64(characterID)).Scan(
		&name, &archetypeName,
		&snap.TrueLevel, &snap.EffectiveLevel, &snap.SkillLevel,
		&snap.XPIntoLevel, &snap.TotalXP,
		&snap.TotalClassPoints, &snap.SpentClassPoints, &snap.SkillUses,
		&snap.Chapter, &snap.BracketFloor, &snap.CatchupDebt,
		&toolbelt, &allocations,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying character %d: %w", characterID, err)
	}

	archetype, err := data.ParseArchetype(archetypeName)
	if err != nil {
		return nil, fmt.Errorf("character %d: %w", characterID, err)
	}

	p, err := model.NewPlayer(characterID, name, archetype)
	if err != nil {
		return nil, fmt.Errorf("rebuilding character %d: %w", characterID, err)
	}

	for _, skillID := range toolbelt {
		if err := p.LearnSkill(skillID); err != nil {
			return nil, fmt.Errorf("character %d toolbelt: %w", characterID, err)
		}
	}
	p.RestoreAllocations(allocations)

	p.Progression().Restore(snap)
	p.SyncToLevel(snap.EffectiveLevel)
	p.RefillPools()

	return p, nil
}

// NameExists checks whether a character name is taken (case-insensitive).
func (r *CharacterRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM characters WHERE LOWER(name) = LOWER($1))`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking name existence %q: %w", name, err)
	}
	return exists, nil
}

// Delete removes a character and, via the schema cascade, its snapshot.
func (r *CharacterRepository) Delete(ctx context.Context, characterID uint32) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM characters WHERE character_id = $1`, int64(characterID),
	)
	if err != nil {
		return fmt.Errorf("deleting character %d: %w", characterID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("character %d not found", characterID)
	}
	return nil
}
