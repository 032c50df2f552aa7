package arrow

import (
	"github.com/iw2rmb/strands/grid"
	"github.com/iw2rmb/strands/letters"
	"github.com/iw2rmb/strands/trigram"
)

// Frequencies is the read access Decide needs; *trigram.Model implements it.
type Frequencies interface {
	FrequencyOf(k trigram.Key) float64
}

// Decision is the outcome for one neighbourhood.
type Decision struct {
	// Center is the letter to draw.
	Center rune
	// Arrows holds the directions whose best trigram beat the threshold.
	Arrows Set
	// Strength is the best trigram frequency found per direction, zero for
	// absent neighbours.
	Strength [Count]float64
}

// Decide applies the hinge rule to n.
//
// For each direction D with a letter, every other present neighbour D' is
// tried as the first letter of the trigram (D', center, D). The best of those
// frequencies must exceed threshold for D to get an arrow. A neighbour with
// no other present neighbour therefore scores 0 and never gets one.
func Decide(n grid.Neighborhood, f Frequencies, threshold float64) Decision {
	d := Decision{Center: n.Center()}
	if d.Center == letters.End || f == nil {
		return d
	}

	for to := range Directions() {
		tx, ty := to.Offset()
		if !n.Present(ty, tx) {
			continue
		}
		last := n.At(ty, tx)

		best, found := 0.0, false
		for from := range Directions() {
			if from == to {
				continue
			}
			fx, fy := from.Offset()
			if !n.Present(fy, fx) {
				continue
			}
			first := n.At(fy, fx)
			found = true
			best = max(best, f.FrequencyOf(trigram.Key{first, d.Center, last}))
		}

		d.Strength[to] = best
		if found && best > threshold {
			d.Arrows = d.Arrows.Add(to)
		}
	}
	return d
}
