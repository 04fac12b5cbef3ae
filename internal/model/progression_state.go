package model

import "sync"

// ProgressionState — per-character leveling state. Created once at character
// creation and mutated only by the progression engine and the respec
// controller, under the single-writer rule: a character sits in at most one
// encounter, so writers never race.
//
// True level is what the character has earned across its lifetime; effective
// level is what combat uses. They diverge only while a chapter catch-up debt
// is outstanding.
type ProgressionState struct {
	mu sync.RWMutex

	trueLevel      int32
	effectiveLevel int32
	skillLevel     int32
	xpIntoLevel    int64
	totalXP        int64

	totalClassPoints int32
	spentClassPoints int32
	skillUses        int64

	chapter      int32
	bracketFloor int32
	catchupDebt  int64
}

// NewProgressionState creates the state of a fresh level-1 character in
// chapter 1.
func NewProgressionState() *ProgressionState {
	return &ProgressionState{
		trueLevel:      1,
		effectiveLevel: 1,
		skillLevel:     1,
		chapter:        1,
		bracketFloor:   1,
	}
}

// TrueLevel returns the earned level, unaffected by chapter clamps.
func (p *ProgressionState) TrueLevel() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.trueLevel
}

func (p *ProgressionState) SetTrueLevel(level int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trueLevel = level
}

// EffectiveLevel returns the combat-relevant level.
func (p *ProgressionState) EffectiveLevel() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.effectiveLevel
}

func (p *ProgressionState) SetEffectiveLevel(level int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.effectiveLevel = level
}

// SkillLevel returns the character-wide skill mastery level that feeds
// catalog scaling.
func (p *ProgressionState) SkillLevel() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.skillLevel
}

func (p *ProgressionState) SetSkillLevel(level int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.skillLevel = level
}

// XPIntoLevel returns progress toward the next true-level threshold.
func (p *ProgressionState) XPIntoLevel() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.xpIntoLevel
}

func (p *ProgressionState) SetXPIntoLevel(xp int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.xpIntoLevel = xp
}

// TotalXP returns lifetime experience, including amounts earned past the
// level ceiling and while repaying catch-up debt.
func (p *ProgressionState) TotalXP() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.totalXP
}

// AddTotalXP bumps the lifetime counter.
func (p *ProgressionState) AddTotalXP(amount int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.totalXP += amount
}

// TotalClassPoints returns lifetime class points earned. Never reduced, not
// even by a class reset.
func (p *ProgressionState) TotalClassPoints() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.totalClassPoints
}

// AddClassPoints grants newly earned class points.
func (p *ProgressionState) AddClassPoints(points int32) {
	if points <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.totalClassPoints += points
}

// SpentClassPoints returns how many earned points sit in allocations.
func (p *ProgressionState) SpentClassPoints() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.spentClassPoints
}

// AvailableClassPoints returns points free to allocate.
func (p *ProgressionState) AvailableClassPoints() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.totalClassPoints - p.spentClassPoints
}

// SpendClassPoints moves points into allocations if enough are free.
func (p *ProgressionState) SpendClassPoints(points int32) bool {
	if points <= 0 {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.totalClassPoints-p.spentClassPoints < points {
		return false
	}
	p.spentClassPoints += points
	return true
}

// RefundAllClassPoints returns every spent point to the free pool and
// reports how many were refunded.
func (p *ProgressionState) RefundAllClassPoints() int32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	refunded := p.spentClassPoints
	p.spentClassPoints = 0
	return refunded
}

// SkillUses returns the lifetime count of successful skill uses.
func (p *ProgressionState) SkillUses() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.skillUses
}

func (p *ProgressionState) SetSkillUses(uses int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.skillUses = uses
}

// AddSkillUses bumps the use counter and returns the new total.
func (p *ProgressionState) AddSkillUses(n int64) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.skillUses += n
	return p.skillUses
}

// Chapter returns the current story chapter.
func (p *ProgressionState) Chapter() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.chapter
}

// BracketFloor returns the chapter floor currently in effect.
func (p *ProgressionState) BracketFloor() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.bracketFloor
}

// SetBracket records the chapter and its floor.
func (p *ProgressionState) SetBracket(chapter, floor int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chapter = chapter
	p.bracketFloor = floor
}

// CatchupDebt returns the XP still owed before the true level can grow
// again. Zero outside a catch-up window.
func (p *ProgressionState) CatchupDebt() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.catchupDebt
}

func (p *ProgressionState) SetCatchupDebt(debt int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.catchupDebt = debt
}

// ProgressionSnapshot is the plain serializable form of ProgressionState,
// exchanged with the persistence boundary.
type ProgressionSnapshot struct {
	TrueLevel        int32 `json:"true_level"`
	EffectiveLevel   int32 `json:"effective_level"`
	SkillLevel       int32 `json:"skill_level"`
	XPIntoLevel      int64 `json:"xp_into_level"`
	TotalXP          int64 `json:"total_xp"`
	TotalClassPoints int32 `json:"total_class_points"`
	SpentClassPoints int32 `json:"spent_class_points"`
	SkillUses        int64 `json:"skill_uses"`
	Chapter          int32 `json:"chapter"`
	BracketFloor     int32 `json:"bracket_floor"`
	CatchupDebt      int64 `json:"catchup_debt"`
}

// Snapshot captures the state under one read lock.
func (p *ProgressionState) Snapshot() ProgressionSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return ProgressionSnapshot{
		TrueLevel:        p.trueLevel,
		EffectiveLevel:   p.effectiveLevel,
		SkillLevel:       p.skillLevel,
		XPIntoLevel:      p.xpIntoLevel,
		TotalXP:          p.totalXP,
		TotalClassPoints: p.totalClassPoints,
		SpentClassPoints: p.spentClassPoints,
		SkillUses:        p.skillUses,
		Chapter:          p.chapter,
		BracketFloor:     p.bracketFloor,
		CatchupDebt:      p.catchupDebt,
	}
}

// Restore overwrites the state from a snapshot under one write lock.
func (p *ProgressionState) Restore(s ProgressionSnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.trueLevel = s.TrueLevel
	p.effectiveLevel = s.EffectiveLevel
	p.skillLevel = s.SkillLevel
	p.xpIntoLevel = s.XPIntoLevel
	p.totalXP = s.TotalXP
	p.totalClassPoints = s.TotalClassPoints
	p.spentClassPoints = s.SpentClassPoints
	p.skillUses = s.SkillUses
	p.chapter = s.Chapter
	p.bracketFloor = s.BracketFloor
	p.catchupDebt = s.CatchupDebt
}
