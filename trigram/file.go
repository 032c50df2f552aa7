package trigram

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

type ingestOptions struct {
	encoding string
}

// IngestOption configures IngestFile.
type IngestOption func(*ingestOptions)

// WithEncoding decodes the corpus from the named text encoding (a WHATWG or
// IANA label such as "latin1", "windows-1252" or "utf-16le") before letters
// are extracted. An empty name or any UTF-8 label reads the bytes as is.
func WithEncoding(name string) IngestOption {
	return func(o *ingestOptions) { o.encoding = name }
}

// LookupEncoding resolves name to a decoder. It returns nil for UTF-8 so that
// malformed bytes keep ending the stream instead of being replaced.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		return nil, nil
	}
	return enc, nil
}

// IngestFile opens path and ingests it. The file is closed before IngestFile
// returns. An open failure is reported as *SourceError and leaves the model
// unchanged.
func (m *Model) IngestFile(path string, opts ...IngestOption) (int, error) {
	var o ingestOptions
	for _, opt := range opts {
		opt(&o)
	}
	enc, err := LookupEncoding(o.encoding)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, &SourceError{Path: path, Err: err}
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}
	n, err := m.Ingest(r)
	if err != nil {
		return n, fmt.Errorf("read corpus %q: %w", path, err)
	}
	return n, nil
}
