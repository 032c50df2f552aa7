package letters

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// MaxSequenceLen bounds how many bytes Reader accumulates while waiting for a
// sequence to become a valid scalar value.
const MaxSequenceLen = 6

// Reader decodes a byte source one scalar value at a time.
//
// Bytes are consumed individually and validated after each read. A source
// that ends mid-sequence, or produces MaxSequenceLen bytes without forming a
// valid scalar, ends the stream. Once ended, Next keeps returning End.
type Reader struct {
	src  io.ByteReader
	seq  [MaxSequenceLen]byte
	done bool
	err  error
}

// NewReader wraps r. Sources that are not already an io.ByteReader are
// buffered.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{src: br}
}

// Next returns the next scalar value, uppercased, or End.
func (r *Reader) Next() rune {
	if r.done {
		return End
	}
	for n := 0; n < MaxSequenceLen; n++ {
		b, err := r.src.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.err = err
			}
			return r.stop()
		}
		r.seq[n] = b
		seq := r.seq[:n+1]
		if !utf8.FullRune(seq) || !utf8.Valid(seq) {
			continue
		}
		c, _ := utf8.DecodeRune(seq)
		if c == End {
			return r.stop()
		}
		return Upper(c)
	}
	return r.stop()
}

// Err returns the read error that ended the stream, if any. Exhaustion and
// malformed input are not errors.
func (r *Reader) Err() error { return r.err }

func (r *Reader) stop() rune {
	r.done = true
	return End
}
