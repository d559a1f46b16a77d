package scoring

import (
	"fmt"
	"math"
)

// Shuttle course geometry for the jet test, in metres.
const (
	shuttleLapMetres  = 40
	shuttleSideMetres = 10
)

// ReachCount is the number of directional reaches in a y-balance test.
const ReachCount = 12

// beepLevelOffsets holds the laps completed before each level starts, levels 1..15.
var beepLevelOffsets = [...]int{7, 15, 23, 32, 41, 51, 61, 72, 83, 94, 106, 118, 131, 144, 157}

// ShuttleDistance converts completed laps and extra sides into metres.
func ShuttleDistance(laps, sides int) int {
	return laps*shuttleLapMetres + sides*shuttleSideMetres
}

// ReachIndex normalizes the summed reaches by height, floored to two decimals.
func ReachIndex(height float64, reaches [ReachCount]float64) (float64, error) {
	if height <= 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHeight, height)
	}
	var sum float64
	for _, r := range reaches {
		sum += r
	}
	return math.Floor(sum/height/ReachCount*100) / 100, nil
}

// BeepTotalLaps returns the total shuttles run given the reached level and
// the laps completed inside it.
func BeepTotalLaps(level, laps int) (int, error) {
	if level < 1 || level > len(beepLevelOffsets) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return laps + beepLevelOffsets[level-1], nil
}
