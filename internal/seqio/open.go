package seqio

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Open opens path for reading. "-" is stdin and a .gz suffix is decompressed.
// A leading UTF-8 byte-order mark is removed so it never lands in a sequence.
func Open(path string) (io.ReadCloser, error) {
	var (
		r io.Reader
		c io.Closer
	)
	if path == "-" {
		r, c = os.Stdin, io.NopCloser(nil)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		r, c = fh, fh
		if strings.HasSuffix(path, ".gz") {
			gr, err := gzip.NewReader(fh)
			if err != nil {
				fh.Close()
				return nil, err
			}
			r = gr
		}
	}
	return struct {
		io.Reader
		io.Closer
	}{Reader: stripBOM(r), Closer: c}, nil
}

func stripBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
