package data

// MaxLevel is the absolute level ceiling. Experience earned past the final
// threshold is retained but never converts into further level-ups.
const MaxLevel = 100

// LevelUpTable holds the experience required to advance FROM each level to
// the next: floor(100 × 1.025^(level-1)). Index = current level (1-99);
// index 0 is unused and index 100 stays 0 because there is nothing past the
// ceiling. Values are precomputed so the curve is data, not runtime math.
var LevelUpTable = [MaxLevel + 1]int64{
	0,      // 0 (unused)
	100,    // 1
	102,    // 2
	105,    // 3
	107,    // 4
	110,    // 5
	113,    // 6
	115,    // 7
	118,    // 8
	121,    // 9
	124,    // 10
	128,    // 11
	131,    // 12
	134,    // 13
	137,    // 14
	141,    // 15
	144,    // 16
	148,    // 17
	152,    // 18
	155,    // 19
	159,    // 20
	163,    // 21
	167,    // 22
	172,    // 23
	176,    // 24
	180,    // 25
	185,    // 26
	190,    // 27
	194,    // 28
	199,    // 29
	204,    // 30
	209,    // 31
	215,    // 32
	220,    // 33
	225,    // 34
	231,    // 35
	237,    // 36
	243,    // 37
	249,    // 38
	255,    // 39
	261,    // 40
	268,    // 41
	275,    // 42
	282,    // 43
	289,    // 44
	296,    // 45
	303,    // 46
	311,    // 47
	319,    // 48
	327,    // 49
	335,    // 50
	343,    // 51
	352,    // 52
	361,    // 53
	370,    // 54
	379,    // 55
	388,    // 56
	398,    // 57
	408,    // 58
	418,    // 59
	429,    // 60
	439,    // 61
	450,    // 62
	462,    // 63
	473,    // 64
	485,    // 65
	497,    // 66
	510,    // 67
	522,    // 68
	536,    // 69
	549,    // 70
	563,    // 71
	577,    // 72
	591,    // 73
	606,    // 74
	621,    // 75
	637,    // 76
	653,    // 77
	669,    // 78
	686,    // 79
	703,    // 80
	720,    // 81
	738,    // 82
	757,    // 83
	776,    // 84
	795,    // 85
	815,    // 86
	836,    // 87
	856,    // 88
	878,    // 89
	900,    // 90
	922,    // 91
	945,    // 92
	969,    // 93
	993,    // 94
	1018,   // 95
	1044,   // 96
	1070,   // 97
	1097,   // 98
	1124,   // 99
	0,      // 100 (ceiling)
}

// cumulativeTable[n] is the total experience required to reach level n
// starting from level 1. Derived from LevelUpTable at init.
var cumulativeTable [MaxLevel + 1]int64

func init() {
	for lvl := int32(2); lvl <= MaxLevel; lvl++ {
		cumulativeTable[lvl] = cumulativeTable[lvl-1] + LevelUpTable[lvl-1]
	}
}

// XPToAdvance returns the experience needed to go from the given level to the
// next one. Returns 0 at or past the ceiling (no further level-ups exist).
func XPToAdvance(level int32) int64 {
	if level < 1 || level >= MaxLevel {
		return 0
	}
	return LevelUpTable[level]
}

// XPBetween returns the total experience needed to climb from level `from` to
// level `to`. Returns 0 when to <= from. Both ends are clamped to [1, MaxLevel].
func XPBetween(from, to int32) int64 {
	if from < 1 {
		from = 1
	}
	if to > MaxLevel {
		to = MaxLevel
	}
	if to <= from {
		return 0
	}
	return cumulativeTable[to] - cumulativeTable[from]
}

// CumulativeXP returns the total experience required to reach the given level
// from level 1. Levels past the ceiling clamp to the ceiling total.
func CumulativeXP(level int32) int64 {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return cumulativeTable[level]
}

// LevelForXP returns the level reached with the given total experience,
// scanning upward from startLevel. Never exceeds MaxLevel.
func LevelForXP(total int64, startLevel int32) int32 {
	if startLevel < 1 {
		startLevel = 1
	}
	level := startLevel
	for level < MaxLevel {
		if cumulativeTable[level+1] > total {
			break
		}
		level++
	}
	return level
}
