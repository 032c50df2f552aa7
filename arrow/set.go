package arrow

import (
	"iter"
	"math/bits"
	"strings"
)

// Set is a set of directions.
type Set uint8

func (s Set) Has(d Direction) bool { return s&(1<<d) != 0 }

func (s Set) Add(d Direction) Set { return s | 1<<d }

func (s Set) Len() int { return bits.OnesCount8(uint8(s)) }

// All iterates the members of s in row-major order.
func (s Set) All() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := range Directions() {
			if s.Has(d) && !yield(d) {
				return
			}
		}
	}
}

func (s Set) String() string {
	var parts []string
	for d := range s.All() {
		parts = append(parts, d.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
