// Command curve dumps the progression tables for balance review: the
// per-level experience curve, the cumulative totals, and the chapter
// brackets with their catch-up floors.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"
)

func main() {
	every := flag.Int("every", 1, "print every Nth level row")
	flag.Parse()

	if *every < 1 {
		fmt.Fprintln(os.Stderr, "-every must be >= 1")
		os.Exit(1)
	}

	fmt.Println("level | xp to next | cumulative")
	fmt.Println("------+------------+-----------")
	for lvl := int32(1); lvl <= data.MaxLevel; lvl++ {
		if (lvl-1)%int32(*every) != 0 && lvl != data.MaxLevel {
			continue
		}
		fmt.Printf("%5d | %10d | %10d\n", lvl, data.XPToAdvance(lvl), data.CumulativeXP(lvl))
	}

	fmt.Printf("\ntotal to level %d: %d XP\n\n", data.MaxLevel, data.CumulativeXP(data.MaxLevel))

	fmt.Println("chapter | floor | soft cap | clamp debt at cap")
	fmt.Println("--------+-------+----------+------------------")
	for _, b := range data.Brackets() {
		fmt.Printf("%7d | %5d | %8d | %17d\n",
			b.Chapter, b.MinLevel, b.MaxLevel, data.XPBetween(b.MinLevel, b.MaxLevel))
	}
}
