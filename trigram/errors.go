package trigram

import (
	"errors"
	"fmt"
)

// ErrUnknownEncoding is returned for a corpus encoding name that has no
// decoder.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// SourceError reports a corpus that could not be opened. The model is left
// untouched when it is returned.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("open corpus %q: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
