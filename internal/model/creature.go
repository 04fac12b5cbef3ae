package model

import (
	"sync"
	"sync/atomic"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
)

// Creature — shared base for every combatant (Player, Npc, Monster, Boss).
// Holds identity, the stat block, resource pools and crowd-control state.
// Mutable fields are guarded by mu; CC flags are atomic for lock-free reads
// from the encounter loop.
type Creature struct {
	id   uint32
	name string

	// Data points back at the concrete variant. Call sites that only hold
	// a *Creature recover the variant via type assertion: c.Data.(*Boss).
	Data any

	level         int32
	power         int32
	vitality      int32
	currentHealth int32
	maxHealth     int32
	currentEnergy int32
	maxEnergy     int32

	// shield is the remaining flat absorb pool granted by mitigation
	// skills. Consumed before health on incoming damage.
	shield int32

	resists  *ResistanceProfile
	toolbelt []int32

	// CC flags. Stun and freeze disable the creature's actions; slow is
	// tracked for display and never blocks a turn by itself.
	stunned atomic.Bool
	frozen  atomic.Bool
	slowed  atomic.Bool

	// inCombat is set for the lifetime of an encounter. Respec operations
	// refuse to run while it is up.
	inCombat atomic.Bool

	mu sync.RWMutex
}

// NewCreature creates a creature with full pools.
func NewCreature(id uint32, name string, level, power, vitality, maxHealth, maxEnergy int32, toolbelt []int32) *Creature {
	belt := make([]int32, len(toolbelt))
	copy(belt, toolbelt)

	return &Creature{
		id:            id,
		name:          name,
		level:         level,
		power:         power,
		vitality:      vitality,
		currentHealth: maxHealth,
		maxHealth:     maxHealth,
		currentEnergy: maxEnergy,
		maxEnergy:     maxEnergy,
		resists:       NewResistanceProfile(),
		toolbelt:      belt,
	}
}

// ID returns the unique id (immutable after creation).
func (c *Creature) ID() uint32 {
	return c.id
}

func (c *Creature) Name() string {
	return c.name
}

// Level returns the combat-relevant level. For players this is the effective
// level maintained by the progression engine, not the true level.
func (c *Creature) Level() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

// SetLevel sets the combat-relevant level (clamp 1..100).
func (c *Creature) SetLevel(level int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if level < 1 {
		level = 1
	}
	if level > data.MaxLevel {
		level = data.MaxLevel
	}
	c.level = level
}

func (c *Creature) Power() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.power
}

func (c *Creature) SetPower(power int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if power < 0 {
		power = 0
	}
	c.power = power
}

func (c *Creature) Vitality() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vitality
}

func (c *Creature) SetVitality(vitality int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if vitality < 0 {
		vitality = 0
	}
	c.vitality = vitality
}

// CurrentHealth returns current health.
func (c *Creature) CurrentHealth() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHealth
}

// MaxHealth returns maximum health.
func (c *Creature) MaxHealth() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxHealth
}

// SetCurrentHealth sets current health with clamping (0..maxHealth).
func (c *Creature) SetCurrentHealth(hp int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentHealth = clamp(hp, 0, c.maxHealth)
}

// SetMaxHealth sets maximum health and trims current health if needed.
func (c *Creature) SetMaxHealth(maxHP int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if maxHP < 1 {
		maxHP = 1
	}
	c.maxHealth = maxHP
	if c.currentHealth > c.maxHealth {
		c.currentHealth = c.maxHealth
	}
}

// CurrentEnergy returns the current energy pool.
func (c *Creature) CurrentEnergy() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentEnergy
}

// MaxEnergy returns the maximum energy pool.
func (c *Creature) MaxEnergy() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxEnergy
}

// SetCurrentEnergy sets current energy with clamping (0..maxEnergy).
func (c *Creature) SetCurrentEnergy(energy int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentEnergy = clamp(energy, 0, c.maxEnergy)
}

// SetMaxEnergy sets maximum energy and trims current energy if needed.
func (c *Creature) SetMaxEnergy(maxEnergy int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if maxEnergy < 0 {
		maxEnergy = 0
	}
	c.maxEnergy = maxEnergy
	if c.currentEnergy > c.maxEnergy {
		c.currentEnergy = c.maxEnergy
	}
}

// ConsumeEnergy deducts cost from the pool if the full amount is available.
// The check and the deduction happen under one lock, so a validated action
// can never leave the pool negative.
func (c *Creature) ConsumeEnergy(cost int32) bool {
	if cost < 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.currentEnergy < cost {
		return false
	}
	c.currentEnergy -= cost
	return true
}

// RestoreEnergy adds to the pool, clamped at maximum.
func (c *Creature) RestoreEnergy(amount int32) {
	if amount <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentEnergy = clamp(c.currentEnergy+amount, 0, c.maxEnergy)
}

// Shield returns the remaining absorb pool.
func (c *Creature) Shield() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shield
}

// AddShield grows the absorb pool.
func (c *Creature) AddShield(amount int32) {
	if amount <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.shield += amount
}

// ClearShield drops any remaining absorb pool.
func (c *Creature) ClearShield() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shield = 0
}

// ApplyDamage routes incoming damage through the shield first, then health.
// Returns how much the shield absorbed and how much health was lost.
func (c *Creature) ApplyDamage(amount int32) (absorbed, lost int32) {
	if amount <= 0 {
		return 0, 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shield > 0 {
		absorbed = min(c.shield, amount)
		c.shield -= absorbed
		amount -= absorbed
	}

	lost = min(c.currentHealth, amount)
	c.currentHealth -= lost
	return absorbed, lost
}

// Heal restores health up to the maximum. Returns the amount actually
// restored, which may be less than requested at full health.
func (c *Creature) Heal(amount int32) int32 {
	if amount <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	healed := min(amount, c.maxHealth-c.currentHealth)
	c.currentHealth += healed
	return healed
}

// IsDead reports whether health is exhausted.
func (c *Creature) IsDead() bool {
	return c.CurrentHealth() <= 0
}

// HealthPercentage returns current health as a fraction (0.0 - 1.0).
func (c *Creature) HealthPercentage() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.maxHealth == 0 {
		return 0.0
	}
	return float64(c.currentHealth) / float64(c.maxHealth)
}

// Resists returns the creature's resistance profile.
func (c *Creature) Resists() *ResistanceProfile {
	return c.resists
}

// Toolbelt returns a copy of the usable skill ids, in learn order.
func (c *Creature) Toolbelt() []int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]int32, len(c.toolbelt))
	copy(out, c.toolbelt)
	return out
}

// HasSkill reports whether the skill id is on the toolbelt.
func (c *Creature) HasSkill(skillID int32) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.toolbelt {
		if id == skillID {
			return true
		}
	}
	return false
}

// addSkill appends a skill id if not already present.
func (c *Creature) addSkill(skillID int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range c.toolbelt {
		if id == skillID {
			return
		}
	}
	c.toolbelt = append(c.toolbelt, skillID)
}

// setToolbelt replaces the toolbelt wholesale.
func (c *Creature) setToolbelt(skills []int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.toolbelt = make([]int32, len(skills))
	copy(c.toolbelt, skills)
}

// IsStunned returns the stun flag (atomic read).
func (c *Creature) IsStunned() bool {
	return c.stunned.Load()
}

// SetStunned sets the stun flag (atomic write).
func (c *Creature) SetStunned(v bool) {
	c.stunned.Store(v)
}

// IsFrozen returns the freeze flag (atomic read).
func (c *Creature) IsFrozen() bool {
	return c.frozen.Load()
}

// SetFrozen sets the freeze flag (atomic write).
func (c *Creature) SetFrozen(v bool) {
	c.frozen.Store(v)
}

// IsSlowed returns the slow flag (atomic read).
func (c *Creature) IsSlowed() bool {
	return c.slowed.Load()
}

// SetSlowed sets the slow flag (atomic write).
func (c *Creature) SetSlowed(v bool) {
	c.slowed.Store(v)
}

// IsDisabled reports whether the creature loses its action this round.
func (c *Creature) IsDisabled() bool {
	return c.stunned.Load() || c.frozen.Load()
}

// InCombat reports whether the creature sits in an active encounter.
func (c *Creature) InCombat() bool {
	return c.inCombat.Load()
}

// SetInCombat marks the creature as in or out of an encounter.
func (c *Creature) SetInCombat(v bool) {
	c.inCombat.Store(v)
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
