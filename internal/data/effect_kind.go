package data

import "fmt"

// EffectCategory groups effect kinds by what they do to their bearer each
// round. The category decides how the effect engine ticks an instance and
// whether boss hard-immunity applies (control categories only).
type EffectCategory int8

const (
	CategoryDamageOverTime EffectCategory = iota
	CategoryHealOverTime
	CategoryControl
	CategoryDamageDown
	CategoryStatUp
)

var effectCategoryNames = [...]string{
	CategoryDamageOverTime: "damage_over_time",
	CategoryHealOverTime:   "heal_over_time",
	CategoryControl:        "control",
	CategoryDamageDown:     "damage_down",
	CategoryStatUp:         "stat_up",
}

func (c EffectCategory) String() string {
	if int(c) < 0 || int(c) >= len(effectCategoryNames) {
		return "unknown"
	}
	return effectCategoryNames[c]
}

// StackPolicy decides what happens when an effect of an already-present kind
// is applied to the same target again. The policy belongs to the kind, never
// to the individual application.
type StackPolicy int8

const (
	// StackRefresh resets the existing instance's remaining duration.
	StackRefresh StackPolicy = iota
	// StackAdd adds a stack up to the kind's MaxStacks, refreshing duration.
	StackAdd
	// StackReject leaves the existing instance untouched.
	StackReject
)

var stackPolicyNames = [...]string{
	StackRefresh: "refresh",
	StackAdd:     "add",
	StackReject:  "reject",
}

func (p StackPolicy) String() string {
	if int(p) < 0 || int(p) >= len(stackPolicyNames) {
		return "unknown"
	}
	return stackPolicyNames[p]
}

// EffectKind identifies a status effect in the catalog.
type EffectKind int8

const (
	EffectBurn EffectKind = iota
	EffectPoison
	EffectBleed
	EffectStun
	EffectFreeze
	EffectSlow
	EffectWeaken
	EffectRegrowth
	EffectFortify

	effectKindCount
)

var effectKindNames = [effectKindCount]string{
	EffectBurn:     "burn",
	EffectPoison:   "poison",
	EffectBleed:    "bleed",
	EffectStun:     "stun",
	EffectFreeze:   "freeze",
	EffectSlow:     "slow",
	EffectWeaken:   "weaken",
	EffectRegrowth: "regrowth",
	EffectFortify:  "fortify",
}

func (k EffectKind) String() string {
	if k < 0 || k >= effectKindCount {
		return "unknown"
	}
	return effectKindNames[k]
}

// EffectKindDef is the per-kind catalog row: tick behavior, stacking rule and
// the resistance channel that gates application. DoT magnitudes run through
// the resistance step on every tick; control kinds use ResistType only as an
// application gate.
type EffectKindDef struct {
	Kind       EffectKind
	Category   EffectCategory
	Stacking   StackPolicy
	MaxStacks  int32
	ResistType DamageType
	// HasResist is false for purely beneficial kinds, which are never
	// resisted or blocked by immunities.
	HasResist bool
}

// effectKindDefs is the built-in effect kind catalog, indexed by kind.
var effectKindDefs = [effectKindCount]EffectKindDef{
	EffectBurn:     {Kind: EffectBurn, Category: CategoryDamageOverTime, Stacking: StackRefresh, MaxStacks: 1, ResistType: DamageFire, HasResist: true},
	EffectPoison:   {Kind: EffectPoison, Category: CategoryDamageOverTime, Stacking: StackAdd, MaxStacks: 3, ResistType: DamageVenom, HasResist: true},
	EffectBleed:    {Kind: EffectBleed, Category: CategoryDamageOverTime, Stacking: StackAdd, MaxStacks: 5, ResistType: DamagePhysical, HasResist: true},
	EffectStun:     {Kind: EffectStun, Category: CategoryControl, Stacking: StackReject, MaxStacks: 1, ResistType: ControlStun, HasResist: true},
	EffectFreeze:   {Kind: EffectFreeze, Category: CategoryControl, Stacking: StackReject, MaxStacks: 1, ResistType: ControlFreeze, HasResist: true},
	EffectSlow:     {Kind: EffectSlow, Category: CategoryControl, Stacking: StackRefresh, MaxStacks: 1, ResistType: ControlSlow, HasResist: true},
	EffectWeaken:   {Kind: EffectWeaken, Category: CategoryDamageDown, Stacking: StackRefresh, MaxStacks: 1, ResistType: DamageShadow, HasResist: true},
	EffectRegrowth: {Kind: EffectRegrowth, Category: CategoryHealOverTime, Stacking: StackRefresh, MaxStacks: 1, HasResist: false},
	EffectFortify:  {Kind: EffectFortify, Category: CategoryStatUp, Stacking: StackRefresh, MaxStacks: 1, HasResist: false},
}

// GetEffectKindDef returns the catalog row for a kind.
func GetEffectKindDef(kind EffectKind) (EffectKindDef, error) {
	if kind < 0 || kind >= effectKindCount {
		return EffectKindDef{}, fmt.Errorf("%w: unknown effect kind %d", ErrCatalog, kind)
	}
	return effectKindDefs[kind], nil
}

// EffectKinds returns every kind in catalog order.
func EffectKinds() []EffectKind {
	out := make([]EffectKind, 0, effectKindCount)
	for k := EffectKind(0); k < effectKindCount; k++ {
		out = append(out, k)
	}
	return out
}

// IsControlKind reports whether the kind belongs to a control category and is
// therefore subject to boss hard-immunity.
func IsControlKind(kind EffectKind) bool {
	if kind < 0 || kind >= effectKindCount {
		return false
	}
	return effectKindDefs[kind].Category == CategoryControl
}
