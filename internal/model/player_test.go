package model

import (
	"errors"
	"testing"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
)

func init() {
	if err := data.LoadSkills(); err != nil {
		panic("load skills: " + err.Error())
	}
	if err := data.LoadEntityTemplates(); err != nil {
		panic("load entity templates: " + err.Error())
	}
	if err := data.LoadPlayerTemplates(); err != nil {
		panic("load player templates: " + err.Error())
	}
}

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer(1, "Vael", data.PureDPS)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	if p.Archetype() != data.PureDPS {
		t.Errorf("archetype = %s, want pure_dps", p.Archetype())
	}
	if p.Level() != 1 {
		t.Errorf("level = %d, want 1", p.Level())
	}
	if p.Progression().TrueLevel() != 1 || p.Progression().Chapter() != 1 {
		t.Error("fresh progression should start at level 1, chapter 1")
	}

	tpl := p.Template()
	if p.MaxHealth() != tpl.MaxHealthAt(1) {
		t.Errorf("max health = %d, want template %d", p.MaxHealth(), tpl.MaxHealthAt(1))
	}
	for _, skillID := range tpl.StartingSkills {
		if !p.HasSkill(skillID) {
			t.Errorf("starting skill %d missing from toolbelt", skillID)
		}
	}

	// The variant backref must point at the player.
	if back, ok := p.Creature.Data.(*Player); !ok || back != p {
		t.Error("Creature.Data does not point back at the player")
	}
}

func TestNewPlayerEveryArchetype(t *testing.T) {
	for i, a := range data.Archetypes() {
		p, err := NewPlayer(uint32(i+1), "x", a)
		if err != nil {
			t.Fatalf("NewPlayer(%s) failed: %v", a, err)
		}
		if p.MaxHealth() < 1 || p.MaxEnergy() < 1 {
			t.Errorf("archetype %s spawns with empty pools", a)
		}
	}
}

func TestLearnSkillUltimateEligibility(t *testing.T) {
	pure, err := NewPlayer(1, "pure", data.PureDPS)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	if err := pure.LearnSkill(data.SkillCataclysm); err != nil {
		t.Errorf("pure archetype failed to learn ultimate: %v", err)
	}
	if !pure.HasSkill(data.SkillCataclysm) {
		t.Error("learned ultimate missing from toolbelt")
	}

	hybrid, err := NewPlayer(2, "hybrid", data.HybridDpsTank)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	err = hybrid.LearnSkill(data.SkillCataclysm)
	if !errors.Is(err, ErrUltimateIneligible) {
		t.Errorf("hybrid learning ultimate err = %v, want ErrUltimateIneligible", err)
	}
	if hybrid.HasSkill(data.SkillCataclysm) {
		t.Error("failed learn still added the skill")
	}

	if err := hybrid.LearnSkill(424242); !errors.Is(err, ErrUnknownSkill) {
		t.Errorf("unknown skill err = %v, want ErrUnknownSkill", err)
	}
}

func TestAllocateRank(t *testing.T) {
	p, err := NewPlayer(1, "alloc", data.PureDPS)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	// No points earned yet.
	if err := p.AllocateRank(data.SkillCrushingBlow); !errors.Is(err, ErrNoClassPoints) {
		t.Errorf("allocate with no points err = %v, want ErrNoClassPoints", err)
	}

	p.Progression().AddClassPoints(3)

	if err := p.AllocateRank(data.SkillCrushingBlow); err != nil {
		t.Fatalf("AllocateRank failed: %v", err)
	}
	if got := p.RankOf(data.SkillCrushingBlow); got != 1 {
		t.Errorf("rank = %d, want 1", got)
	}
	if got := p.Progression().AvailableClassPoints(); got != 2 {
		t.Errorf("available points = %d, want 2", got)
	}

	// Not learned.
	if err := p.AllocateRank(data.SkillMiracle); !errors.Is(err, ErrSkillNotLearned) {
		t.Errorf("allocate unlearned err = %v, want ErrSkillNotLearned", err)
	}
}

func TestAllocateRankMaxRank(t *testing.T) {
	p, err := NewPlayer(1, "maxer", data.PureDPS)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	tpl := data.GetSkillTemplate(data.SkillCrushingBlow)
	p.Progression().AddClassPoints(tpl.MaxRank + 5)

	for i := int32(0); i < tpl.MaxRank; i++ {
		if err := p.AllocateRank(data.SkillCrushingBlow); err != nil {
			t.Fatalf("AllocateRank #%d failed: %v", i+1, err)
		}
	}

	if err := p.AllocateRank(data.SkillCrushingBlow); !errors.Is(err, ErrMaxRank) {
		t.Errorf("allocate past max err = %v, want ErrMaxRank", err)
	}
	if got := p.RankOf(data.SkillCrushingBlow); got != tpl.MaxRank {
		t.Errorf("rank = %d, want cap %d", got, tpl.MaxRank)
	}
}

func TestClearAllocationsRefunds(t *testing.T) {
	p, err := NewPlayer(1, "refund", data.PureDPS)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	p.Progression().AddClassPoints(5)
	for i := 0; i < 3; i++ {
		if err := p.AllocateRank(data.SkillCrushingBlow); err != nil {
			t.Fatalf("AllocateRank failed: %v", err)
		}
	}

	refunded := p.ClearAllocations()
	if refunded != 3 {
		t.Errorf("refunded = %d, want 3", refunded)
	}
	if got := p.RankOf(data.SkillCrushingBlow); got != 0 {
		t.Errorf("rank after clear = %d, want 0", got)
	}
	if got := p.Progression().AvailableClassPoints(); got != 5 {
		t.Errorf("available after refund = %d, want all 5", got)
	}
	if got := p.Progression().TotalClassPoints(); got != 5 {
		t.Errorf("total after refund = %d, want unchanged 5", got)
	}
}

func TestSetArchetypeRebuildsToolbelt(t *testing.T) {
	p, err := NewPlayer(1, "reborn", data.PureDPS)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	if err := p.LearnSkill(data.SkillCataclysm); err != nil {
		t.Fatalf("LearnSkill failed: %v", err)
	}

	if err := p.SetArchetype(data.HybridSupportTank); err != nil {
		t.Fatalf("SetArchetype failed: %v", err)
	}

	if p.Archetype() != data.HybridSupportTank {
		t.Errorf("archetype = %s, want hybrid_support_tank", p.Archetype())
	}
	// Old path is gone, ultimate included.
	if p.HasSkill(data.SkillCataclysm) {
		t.Error("ultimate survived the archetype swap")
	}
	newTpl, _ := data.GetPlayerTemplate(data.HybridSupportTank)
	for _, skillID := range newTpl.StartingSkills {
		if !p.HasSkill(skillID) {
			t.Errorf("new starting skill %d missing after swap", skillID)
		}
	}
}

func TestSyncToLevelAndRefill(t *testing.T) {
	p, err := NewPlayer(1, "growth", data.PureTank)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	tpl := p.Template()

	p.SyncToLevel(10)
	if p.Level() != 10 {
		t.Errorf("level = %d, want 10", p.Level())
	}
	if p.MaxHealth() != tpl.MaxHealthAt(10) {
		t.Errorf("max health = %d, want %d", p.MaxHealth(), tpl.MaxHealthAt(10))
	}
	// Raising the max does not refill by itself.
	if p.CurrentHealth() != tpl.MaxHealthAt(1) {
		t.Errorf("current health = %d, want old pool %d", p.CurrentHealth(), tpl.MaxHealthAt(1))
	}

	p.RefillPools()
	if p.CurrentHealth() != p.MaxHealth() || p.CurrentEnergy() != p.MaxEnergy() {
		t.Error("RefillPools left pools short of max")
	}

	// Syncing down trims the pools with the max.
	p.SyncToLevel(2)
	if p.CurrentHealth() != p.MaxHealth() {
		t.Errorf("current health = %d, want trimmed to max %d", p.CurrentHealth(), p.MaxHealth())
	}
}
