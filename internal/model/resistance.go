package model

import (
	"sync"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
)

// ResistanceProfile maps damage type to a signed percentage. Values are
// silently clamped to [-99, 99] on every write: the bounds are a domain
// rule, not an input error, so out-of-range writes correct instead of fail.
// Unset types read as 0.
type ResistanceProfile struct {
	mu     sync.RWMutex
	values map[data.DamageType]int32
}

// NewResistanceProfile creates an empty profile (all types at 0).
func NewResistanceProfile() *ResistanceProfile {
	return &ResistanceProfile{
		values: make(map[data.DamageType]int32),
	}
}

// Value returns the resistance for a damage type.
func (p *ResistanceProfile) Value(dt data.DamageType) int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values[dt]
}

// Set stores a resistance value, clamped to the allowed range.
func (p *ResistanceProfile) Set(dt data.DamageType, value int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[dt] = clamp(value, data.ResistFloor, data.ResistCeil)
}

// Add shifts a resistance value by delta, clamped to the allowed range.
func (p *ResistanceProfile) Add(dt data.DamageType, delta int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[dt] = clamp(p.values[dt]+delta, data.ResistFloor, data.ResistCeil)
}

// Snapshot returns a copy of all non-zero values, for persistence.
func (p *ResistanceProfile) Snapshot() map[data.DamageType]int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[data.DamageType]int32, len(p.values))
	for dt, v := range p.values {
		if v != 0 {
			out[dt] = v
		}
	}
	return out
}
