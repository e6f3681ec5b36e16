package encoding

import (
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/oesand/reqkit/specs"
)

// NewReader wraps reader with the decompressor of contentEncoding.
func NewReader(contentEncoding string, reader io.Reader) (io.ReadCloser, error) {
	switch contentEncoding {
	case specs.ContentEncodingIdentity:
		return io.NopCloser(reader), nil
	case specs.ContentEncodingGzip:
		return gzip.NewReader(reader)
	case specs.ContentEncodingDeflate:
		return zlib.NewReader(reader)
	case specs.ContentEncodingBrotli:
		return io.NopCloser(brotli.NewReader(reader)), nil
	}
	return nil, fmt.Errorf("%w %q", specs.ErrUnknownEncoding, contentEncoding)
}
