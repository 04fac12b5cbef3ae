package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/blake2b"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/game/effect"
	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/model"
)

// ErrSnapshotCorrupt — the stored payload no longer matches its digest.
// The row was damaged outside the engine; loading it would resurrect a
// character in an undefined state.
var ErrSnapshotCorrupt = errors.New("snapshot digest mismatch")

// RuntimeSnapshot is the plain save-file form of a character's runtime
// state between sessions: progression, resource pools and whatever status
// effects were still ticking.
type RuntimeSnapshot struct {
	Progression   model.ProgressionSnapshot `json:"progression"`
	CurrentHealth int32                     `json:"current_health"`
	CurrentEnergy int32                     `json:"current_energy"`
	Shield        int32                     `json:"shield"`
	Effects       []effect.Snapshot         `json:"effects,omitempty"`
}

// CaptureRuntime assembles a character's runtime snapshot. effects may be
// nil when the character is saved outside an encounter.
func CaptureRuntime(p *model.Player, effects *effect.Manager) RuntimeSnapshot {
	snap := RuntimeSnapshot{
		Progression:   p.Progression().Snapshot(),
		CurrentHealth: p.CurrentHealth(),
		CurrentEnergy: p.CurrentEnergy(),
		Shield:        p.Shield(),
	}
	if effects != nil {
		snap.Effects = effects.SnapshotFor(p.ID())
	}
	return snap
}

// SnapshotStore saves and loads runtime snapshots. Payloads are stored as
// the exact JSON bytes that were hashed, alongside a blake2b-256 digest; a
// row whose bytes drift from the digest is refused on load.
type SnapshotStore struct {
	pool *pgxpool.Pool
}

// NewSnapshotStore creates a SnapshotStore.
func NewSnapshotStore(pool *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool}
}

// Save upserts the character's runtime snapshot.
func (s *SnapshotStore) Save(ctx context.Context, characterID uint32, snap RuntimeSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot for character %d: %w", characterID, err)
	}
	digest := blake2b.Sum256(payload)

	_, err = s.pool.Exec(ctx, `
		INSERT INTO character_snapshots (character_id, payload, digest, saved_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (character_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			digest = EXCLUDED.digest,
			saved_at = EXCLUDED.saved_at
	`, int64(characterID), payload, digest[:], time.Now())
	if err != nil {
		return fmt.Errorf("saving snapshot for character %d: %w", characterID, err)
	}

	slog.Debug("runtime snapshot saved",
		"characterID", characterID,
		"bytes", len(payload))
	return nil
}

// Load reads and verifies the character's runtime snapshot. Returns
// nil, nil when no snapshot exists; ErrSnapshotCorrupt when the payload
// fails digest verification.
func (s *SnapshotStore) Load(ctx context.Context, characterID uint32) (*RuntimeSnapshot, error) {
	var payload, digest []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload, digest FROM character_snapshots WHERE character_id = $1`,
		int64(characterID),
	).Scan(&payload, &digest)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot for character %d: %w", characterID, err)
	}

	want := blake2b.Sum256(payload)
	if !bytes.Equal(digest, want[:]) {
		return nil, fmt.Errorf("character %d: %w", characterID, ErrSnapshotCorrupt)
	}

	var snap RuntimeSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot for character %d: %w", characterID, err)
	}
	return &snap, nil
}

// RestoreRuntime applies a loaded snapshot to a character: progression,
// stats at the restored effective level, pools and shield, and any active
// effects back into the given effect engine.
func RestoreRuntime(p *model.Player, snap *RuntimeSnapshot, effects *effect.Manager) {
	p.Progression().Restore(snap.Progression)
	p.SyncToLevel(snap.Progression.EffectiveLevel)

	p.SetCurrentHealth(snap.CurrentHealth)
	p.SetCurrentEnergy(snap.CurrentEnergy)
	p.ClearShield()
	p.AddShield(snap.Shield)

	if effects != nil && len(snap.Effects) > 0 {
		effects.RestoreFor(p.Creature, snap.Effects)
	}
}

// Delete removes the character's snapshot. Missing rows are fine.
func (s *SnapshotStore) Delete(ctx context.Context, characterID uint32) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM character_snapshots WHERE character_id = $1`, int64(characterID),
	)
	if err != nil {
		return fmt.Errorf("deleting snapshot for character %d: %w", characterID, err)
	}
	return nil
}
