package trigram

import "github.com/iw2rmb/strands/letters"

// Key is an ordered sequence of three uppercase letters.
type Key [3]rune

// KeyOf builds a Key from s. ok is false unless s is exactly three letters;
// the letters are uppercased.
func KeyOf(s string) (k Key, ok bool) {
	i := 0
	for _, r := range s {
		if i == len(k) || !letters.IsLetter(r) {
			return Key{}, false
		}
		k[i] = letters.Upper(r)
		i++
	}
	return k, i == len(k)
}

// MustKey is KeyOf for literals; it panics on malformed input.
func MustKey(s string) Key {
	k, ok := KeyOf(s)
	if !ok {
		panic("trigram: malformed key " + s)
	}
	return k
}

// Valid reports whether every element of k is a letter.
func (k Key) Valid() bool {
	for _, r := range k {
		if !letters.IsLetter(r) {
			return false
		}
	}
	return true
}

func (k Key) String() string { return string(k[:]) }

func keyFromWindow(w *letters.Window[rune]) (Key, bool) {
	k := Key{w.At(0), w.At(1), w.At(2)}
	if !k.Valid() {
		return Key{}, false
	}
	return k, true
}
