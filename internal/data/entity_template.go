package data

// EntityKind separates the non-player entity variants. Bosses are the only
// kind that carries a hard-immunity profile; every other combat difference
// between kinds lives in the numbers, not the code.
type EntityKind int8

const (
	KindNPC EntityKind = iota
	KindMonster
	KindBoss
)

var entityKindNames = [...]string{
	KindNPC:     "npc",
	KindMonster: "monster",
	KindBoss:    "boss",
}

func (k EntityKind) String() string {
	if int(k) < 0 || int(k) >= len(entityKindNames) {
		return "unknown"
	}
	return entityKindNames[k]
}

// EntityTemplate — definition of a non-player combatant for Go literals.
// One record per template id; spawned creatures copy these numbers into
// their own mutable state.
type EntityTemplate struct {
	ID    int32
	Name  string
	Title string
	Kind  EntityKind
	Level int32

	// Stats
	Power     int32
	Vitality  int32
	MaxHealth int32
	MaxEnergy int32

	// Resists maps damage type to a signed percentage. Types absent from
	// the map default to 0. Non-boss values must stay inside [-99, 99].
	Resists map[DamageType]int32

	// HardImmune lists the control categories a boss ignores outright.
	// Only meaningful when Kind == KindBoss.
	HardImmune []DamageType

	// Toolbelt lists the skill ids this creature may use.
	Toolbelt []int32

	// Rewards
	BaseXP          int64
	BaseClassPoints int32

	Aggressive bool
}

// IsHardImmune reports whether the template's immunity profile covers the
// given control category. Always false for non-boss kinds.
func (t *EntityTemplate) IsHardImmune(dt DamageType) bool {
	if t.Kind != KindBoss {
		return false
	}
	for _, imm := range t.HardImmune {
		if imm == dt {
			return true
		}
	}
	return false
}

// Resist returns the template's resist value for a damage type, 0 when the
// type is not listed.
func (t *EntityTemplate) Resist(dt DamageType) int32 {
	if t.Resists == nil {
		return 0
	}
	return t.Resists[dt]
}
