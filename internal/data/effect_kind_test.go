package data

import (
	"errors"
	"testing"
)

func TestGetEffectKindDef(t *testing.T) {
	tests := []struct {
		kind         EffectKind
		wantCategory EffectCategory
		wantStacking StackPolicy
		wantResist   DamageType
	}{
		{EffectBurn, CategoryDamageOverTime, StackRefresh, DamageFire},
		{EffectPoison, CategoryDamageOverTime, StackAdd, DamageVenom},
		{EffectBleed, CategoryDamageOverTime, StackAdd, DamagePhysical},
		{EffectStun, CategoryControl, StackReject, ControlStun},
		{EffectFreeze, CategoryControl, StackReject, ControlFreeze},
		{EffectSlow, CategoryControl, StackRefresh, ControlSlow},
		{EffectWeaken, CategoryDamageDown, StackRefresh, DamageShadow},
	}

	for _, tt := range tests {
		def, err := GetEffectKindDef(tt.kind)
		if err != nil {
			t.Fatalf("GetEffectKindDef(%s): %v", tt.kind, err)
		}
		if def.Category != tt.wantCategory {
			t.Errorf("%s category = %s, want %s", tt.kind, def.Category, tt.wantCategory)
		}
		if def.Stacking != tt.wantStacking {
			t.Errorf("%s stacking = %s, want %s", tt.kind, def.Stacking, tt.wantStacking)
		}
		if def.ResistType != tt.wantResist {
			t.Errorf("%s resist type = %s, want %s", tt.kind, def.ResistType, tt.wantResist)
		}
	}
}

func TestGetEffectKindDefUnknown(t *testing.T) {
	_, err := GetEffectKindDef(EffectKind(77))
	if !errors.Is(err, ErrCatalog) {
		t.Errorf("GetEffectKindDef(77) err = %v, want ErrCatalog", err)
	}
}

func TestBeneficialKindsHaveNoResist(t *testing.T) {
	for _, kind := range []EffectKind{EffectRegrowth, EffectFortify} {
		def, err := GetEffectKindDef(kind)
		if err != nil {
			t.Fatalf("GetEffectKindDef(%s): %v", kind, err)
		}
		if def.HasResist {
			t.Errorf("%s is beneficial but carries a resist gate", kind)
		}
	}
}

func TestIsControlKind(t *testing.T) {
	control := map[EffectKind]bool{EffectStun: true, EffectFreeze: true, EffectSlow: true}
	for _, kind := range EffectKinds() {
		if got := IsControlKind(kind); got != control[kind] {
			t.Errorf("IsControlKind(%s) = %v, want %v", kind, got, control[kind])
		}
	}
}

// Kinds that add stacks must declare room for more than one.
func TestStackingDefsConsistent(t *testing.T) {
	for _, kind := range EffectKinds() {
		def, err := GetEffectKindDef(kind)
		if err != nil {
			t.Fatalf("GetEffectKindDef(%s): %v", kind, err)
		}
		if def.Stacking == StackAdd && def.MaxStacks < 2 {
			t.Errorf("%s stacks but MaxStacks = %d", kind, def.MaxStacks)
		}
		if def.Stacking != StackAdd && def.MaxStacks != 1 {
			t.Errorf("%s does not stack but MaxStacks = %d", kind, def.MaxStacks)
		}
	}
}
