package data

// DamageType identifies the school of an incoming hit or status application.
// Resistance profiles are keyed by this type. The control categories (stun,
// freeze, slow) share the keyspace so a single resistance lookup covers both
// direct damage and crowd-control applications.
type DamageType int8

const (
	DamagePhysical DamageType = iota
	DamageFire
	DamageFrost
	DamageVenom
	DamageShadow

	// Control categories. Bosses may be hard-immune to these; for everyone
	// else they resist like any other type.
	ControlStun
	ControlFreeze
	ControlSlow
)

// Resistance bounds for non-boss entities. Values are signed percentages;
// the closed range keeps damage from being fully negated (+100) or endlessly
// amplified (-100) by resistance alone.
const (
	ResistFloor int32 = -99
	ResistCeil  int32 = 99
)

// damageTypeNames is indexed by DamageType.
var damageTypeNames = [...]string{
	"physical",
	"fire",
	"frost",
	"venom",
	"shadow",
	"stun",
	"freeze",
	"slow",
}

// String returns the lowercase name used in logs and persistence.
func (d DamageType) String() string {
	if d < 0 || int(d) >= len(damageTypeNames) {
		return "unknown"
	}
	return damageTypeNames[d]
}

// IsControl reports whether the type is a crowd-control category rather than
// a damage school.
func (d DamageType) IsControl() bool {
	return d >= ControlStun && d <= ControlSlow
}

// DamageTypes returns every defined damage type, damage schools first.
func DamageTypes() []DamageType {
	return []DamageType{
		DamagePhysical, DamageFire, DamageFrost, DamageVenom, DamageShadow,
		ControlStun, ControlFreeze, ControlSlow,
	}
}
