package data

import (
	"errors"
	"testing"
)

func TestGetBracket(t *testing.T) {
	tests := []struct {
		chapter          int32
		wantMin, wantMax int32
	}{
		{1, 1, 20},
		{2, 20, 40},
		{3, 40, 60},
		{4, 60, 80},
		{5, 80, 100},
	}

	for _, tt := range tests {
		b, err := GetBracket(tt.chapter)
		if err != nil {
			t.Fatalf("GetBracket(%d): %v", tt.chapter, err)
		}
		if b.MinLevel != tt.wantMin || b.MaxLevel != tt.wantMax {
			t.Errorf("GetBracket(%d) = [%d,%d], want [%d,%d]",
				tt.chapter, b.MinLevel, b.MaxLevel, tt.wantMin, tt.wantMax)
		}
	}

	for _, chapter := range []int32{0, 6, -1} {
		if _, err := GetBracket(chapter); !errors.Is(err, ErrCatalog) {
			t.Errorf("GetBracket(%d) err = %v, want ErrCatalog", chapter, err)
		}
	}
}

// Each bracket must start where the previous one tops out, so chapter
// transitions at the intended pace never clamp.
func TestBracketsContiguous(t *testing.T) {
	brackets := Brackets()
	if len(brackets) != ChapterCount {
		t.Fatalf("Brackets() returned %d entries, want %d", len(brackets), ChapterCount)
	}

	for i := 1; i < len(brackets); i++ {
		if brackets[i].MinLevel != brackets[i-1].MaxLevel {
			t.Errorf("chapter %d starts at %d, previous tops out at %d",
				brackets[i].Chapter, brackets[i].MinLevel, brackets[i-1].MaxLevel)
		}
	}

	if brackets[0].MinLevel != 1 {
		t.Errorf("first bracket starts at %d, want 1", brackets[0].MinLevel)
	}
	if brackets[len(brackets)-1].MaxLevel != MaxLevel {
		t.Errorf("last bracket tops out at %d, want %d", brackets[len(brackets)-1].MaxLevel, MaxLevel)
	}
}
