package letters

// LineCursor yields the alphabetic characters of one line, uppercased.
//
// Non-letters are skipped. A carriage return, a line feed or the end of the
// slice terminates the line; from then on Next returns End and the cursor
// stays where it stopped.
type LineCursor struct {
	line []rune
	pos  int
}

func NewLineCursor(line []rune) *LineCursor {
	return &LineCursor{line: line}
}

// Next returns the next letter on the line, or End.
func (c *LineCursor) Next() rune {
	for c.pos < len(c.line) {
		r := c.line[c.pos]
		if r == '\r' || r == '\n' {
			return End
		}
		c.pos++
		if IsLetter(r) {
			return Upper(r)
		}
	}
	return End
}
