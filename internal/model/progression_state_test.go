package model

import "testing"

func TestProgressionStateDefaults(t *testing.T) {
	ps := NewProgressionState()

	if ps.TrueLevel() != 1 || ps.EffectiveLevel() != 1 || ps.SkillLevel() != 1 {
		t.Error("fresh state should start every level at 1")
	}
	if ps.Chapter() != 1 || ps.BracketFloor() != 1 {
		t.Error("fresh state should start in chapter 1 at floor 1")
	}
	if ps.TotalXP() != 0 || ps.XPIntoLevel() != 0 || ps.CatchupDebt() != 0 {
		t.Error("fresh state should carry no experience")
	}
}

func TestClassPointSpending(t *testing.T) {
	ps := NewProgressionState()

	ps.AddClassPoints(4)
	ps.AddClassPoints(-2) // ignored
	if got := ps.TotalClassPoints(); got != 4 {
		t.Errorf("total = %d, want 4", got)
	}

	if !ps.SpendClassPoints(3) {
		t.Fatal("spend within budget rejected")
	}
	if got := ps.AvailableClassPoints(); got != 1 {
		t.Errorf("available = %d, want 1", got)
	}
	if ps.SpendClassPoints(2) {
		t.Error("overspend accepted")
	}
	if ps.SpendClassPoints(0) {
		t.Error("non-positive spend accepted")
	}

	refunded := ps.RefundAllClassPoints()
	if refunded != 3 {
		t.Errorf("refunded = %d, want 3", refunded)
	}
	if got := ps.AvailableClassPoints(); got != 4 {
		t.Errorf("available after refund = %d, want 4", got)
	}
}

func TestProgressionSnapshotRoundTrip(t *testing.T) {
	ps := NewProgressionState()
	ps.SetTrueLevel(23)
	ps.SetEffectiveLevel(20)
	ps.SetSkillLevel(7)
	ps.SetXPIntoLevel(42)
	ps.AddTotalXP(3141)
	ps.AddClassPoints(9)
	ps.SpendClassPoints(4)
	ps.AddSkillUses(61)
	ps.SetBracket(2, 20)
	ps.SetCatchupDebt(489)

	snap := ps.Snapshot()

	restored := NewProgressionState()
	restored.Restore(snap)

	if restored.TrueLevel() != 23 || restored.EffectiveLevel() != 20 {
		t.Errorf("levels = %d/%d, want 23/20", restored.TrueLevel(), restored.EffectiveLevel())
	}
	if restored.SkillLevel() != 7 {
		t.Errorf("skill level = %d, want 7", restored.SkillLevel())
	}
	if restored.XPIntoLevel() != 42 || restored.TotalXP() != 3141 {
		t.Errorf("xp = %d/%d, want 42/3141", restored.XPIntoLevel(), restored.TotalXP())
	}
	if restored.TotalClassPoints() != 9 || restored.AvailableClassPoints() != 5 {
		t.Errorf("points = %d total / %d free, want 9/5", restored.TotalClassPoints(), restored.AvailableClassPoints())
	}
	if restored.SkillUses() != 61 {
		t.Errorf("skill uses = %d, want 61", restored.SkillUses())
	}
	if restored.Chapter() != 2 || restored.BracketFloor() != 20 {
		t.Errorf("bracket = chapter %d floor %d, want 2/20", restored.Chapter(), restored.BracketFloor())
	}
	if restored.CatchupDebt() != 489 {
		t.Errorf("debt = %d, want 489", restored.CatchupDebt())
	}

	if snap2 := restored.Snapshot(); snap2 != snap {
		t.Error("second snapshot differs from the first")
	}
}
