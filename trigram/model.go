package trigram

import (
	"cmp"
	"io"
	"slices"

	"github.com/iw2rmb/strands/letters"
)

// Model is a trigram frequency table. The zero value is an empty table
// ready for use.
//
// A Model is not safe for concurrent use. Readers such as a redraw must not
// overlap Ingest or Clear.
type Model struct {
	counts map[Key]uint64
	total  uint64
	max    uint64
}

// Entry is one row of the table.
type Entry struct {
	Key   Key
	Count uint64
}

func New() *Model {
	return &Model{counts: make(map[Key]uint64)}
}

// Ingest consumes r to exhaustion and adds its trigrams to the table.
//
// Every decoded character is pushed through a three-slot window; whenever
// all three slots hold letters the window contents are counted. Characters
// that are not letters still occupy the window, so trigrams straddling them
// are never recorded. Malformed or truncated input ends the source early and
// keeps what was read before it.
//
// n is the number of trigrams recorded from r. err is non-nil only when a
// read failed mid-stream; the counts from the prefix stay in the table.
func (m *Model) Ingest(r io.Reader) (n int, err error) {
	src := letters.NewReader(r)
	win := letters.NewWindow[rune](len(Key{}))
	for c := src.Next(); c != letters.End; c = src.Next() {
		win.Push(c)
		k, ok := keyFromWindow(win)
		if !ok {
			continue
		}
		m.add(k, 1)
		n++
	}
	m.recompute()
	return n, src.Err()
}

// Merge adds every count of o to m. o is left unchanged.
func (m *Model) Merge(o *Model) {
	if o == nil || o == m {
		return
	}
	for k, c := range o.counts {
		m.add(k, c)
	}
	m.recompute()
}

func (m *Model) add(k Key, c uint64) {
	if m.counts == nil {
		m.counts = make(map[Key]uint64)
	}
	m.counts[k] += c
}

// Clear empties the table.
func (m *Model) Clear() {
	clear(m.counts)
	m.recompute()
}

// Count returns the raw count of k.
func (m *Model) Count(k Key) uint64 { return m.counts[k] }

// FrequencyOf returns Count(k)/Total(), or 0 for an empty model.
func (m *Model) FrequencyOf(k Key) float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.counts[k]) / float64(m.total)
}

// Total is the sum of all counts.
func (m *Model) Total() uint64 { return m.total }

// Max is the largest single count.
func (m *Model) Max() uint64 { return m.max }

// Len is the number of distinct trigrams.
func (m *Model) Len() int { return len(m.counts) }

// Empty reports whether nothing has been ingested since creation or the last
// Clear.
func (m *Model) Empty() bool { return m.total == 0 }

// MaxFrequency is Max()/Total(), or 0 for an empty model.
func (m *Model) MaxFrequency() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.max) / float64(m.total)
}

// Threshold converts a permissiveness value in [0,1] into the frequency an
// arrow has to exceed: MaxFrequency()*(1-value). value is clamped first, so 1
// yields 0 (every observed trigram qualifies) and 0 yields MaxFrequency().
func (m *Model) Threshold(value float64) float64 {
	value = min(max(value, 0), 1)
	return m.MaxFrequency() * (1 - value)
}

// Top returns up to n entries ordered by descending count, ties broken by
// key. n <= 0 returns every entry.
func (m *Model) Top(n int) []Entry {
	out := make([]Entry, 0, len(m.counts))
	for k, c := range m.counts {
		out = append(out, Entry{Key: k, Count: c})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return slices.Compare(a.Key[:], b.Key[:])
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func (m *Model) recompute() {
	m.total, m.max = 0, 0
	for _, c := range m.counts {
		m.total += c
		m.max = max(m.max, c)
	}
}
