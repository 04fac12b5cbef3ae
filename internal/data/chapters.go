package data

import "fmt"

// ChapterBracket pins a story chapter to its recommended level band.
// MinLevel is the floor the catch-up clamp pulls overleveled characters down
// to on entry. MaxLevel is a soft ceiling: pacing guidance, never enforced.
type ChapterBracket struct {
	Chapter  int32
	MinLevel int32
	MaxLevel int32
}

// ChapterCount — number of main story segments.
const ChapterCount = 5

// chapterBrackets covers the five main story segments. Adjacent brackets
// share a boundary level on purpose: finishing chapter N at its soft cap
// means entering chapter N+1 exactly at the floor, with no clamp.
var chapterBrackets = [ChapterCount]ChapterBracket{
	{Chapter: 1, MinLevel: 1, MaxLevel: 20},
	{Chapter: 2, MinLevel: 20, MaxLevel: 40},
	{Chapter: 3, MinLevel: 40, MaxLevel: 60},
	{Chapter: 4, MinLevel: 60, MaxLevel: 80},
	{Chapter: 5, MinLevel: 80, MaxLevel: 100},
}

// GetBracket returns the bracket for the given chapter id.
func GetBracket(chapter int32) (ChapterBracket, error) {
	if chapter < 1 || chapter > ChapterCount {
		return ChapterBracket{}, fmt.Errorf("%w: unknown chapter %d", ErrCatalog, chapter)
	}
	return chapterBrackets[chapter-1], nil
}

// Brackets returns all chapter brackets in story order.
func Brackets() []ChapterBracket {
	out := make([]ChapterBracket, ChapterCount)
	copy(out[:], chapterBrackets[:])
	return out
}
