package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pullAll(c *LineCursor) []rune {
	var out []rune
	for r := c.Next(); r != End; r = c.Next() {
		out = append(out, r)
	}
	return out
}

func TestLineCursor_SkipsNonLetters(t *testing.T) {
	c := NewLineCursor([]rune("a1 b-c, ü"))
	assert.Equal(t, []rune("ABCÜ"), pullAll(c))
	assert.Equal(t, End, c.Next())
}

func TestLineCursor_NonAlphabeticLineIsEmpty(t *testing.T) {
	c := NewLineCursor([]rune(" 12 -- ?! "))
	assert.Equal(t, End, c.Next())
}

func TestLineCursor_StopsAtLineBreak(t *testing.T) {
	c := NewLineCursor([]rune("ab\r\ncd"))
	assert.Equal(t, []rune("AB"), pullAll(c))
	assert.Equal(t, End, c.Next(), "the cursor stays on the line break")
}

func TestLineCursor_TrailingNonLetters(t *testing.T) {
	c := NewLineCursor([]rune("a  b  "))
	assert.Equal(t, 'A', c.Next())
	assert.Equal(t, 'B', c.Next())
	assert.Equal(t, End, c.Next())
}

func TestLineCursor_EmptyLine(t *testing.T) {
	assert.Equal(t, End, NewLineCursor(nil).Next())
}

func TestIsLetter(t *testing.T) {
	for _, r := range []rune{'a', 'Z', 'é', 'Ж', '日'} {
		assert.True(t, IsLetter(r), "%q", r)
	}
	for _, r := range []rune{End, ' ', '1', '-', '\n', '😀'} {
		assert.False(t, IsLetter(r), "%q", r)
	}
}
