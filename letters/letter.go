package letters

import "unicode"

// End terminates every stream. It is not alphabetic, so it never collides
// with an emitted letter.
const End rune = 0

// IsLetter reports whether r is alphabetic.
func IsLetter(r rune) bool {
	return r != End && unicode.IsLetter(r)
}

// Upper maps r through the Unicode uppercase mapping. Non-alphabetic values
// are returned unchanged.
func Upper(r rune) rune {
	return unicode.ToUpper(r)
}
