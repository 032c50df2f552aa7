// Package letters turns bytes and text lines into streams of uppercase
// Unicode scalar values.
//
// Two extraction modes exist. Reader decodes a byte source character by
// character (every scalar is passed through, uppercased). LineCursor walks a
// single line of text and yields only alphabetic characters. Both signal
// exhaustion with End, which is never a letter.
package letters
