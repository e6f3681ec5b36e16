package encoding

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/oesand/reqkit/specs"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// NewWriter wraps writer with the compressor of contentEncoding.
// The identity encoding returns writer with a no-op Close.
func NewWriter(contentEncoding string, writer io.Writer) (io.WriteCloser, error) {
	switch contentEncoding {
	case specs.ContentEncodingIdentity:
		return nopWriteCloser{writer}, nil
	case specs.ContentEncodingGzip:
		return gzip.NewWriter(writer), nil
	case specs.ContentEncodingDeflate:
		return zlib.NewWriter(writer), nil
	case specs.ContentEncodingBrotli:
		return brotli.NewWriter(writer), nil
	}
	return nil, fmt.Errorf("%w %q", specs.ErrUnknownEncoding, contentEncoding)
}

// Compress returns data encoded with contentEncoding.
func Compress(contentEncoding string, data []byte) ([]byte, error) {
	if contentEncoding == specs.ContentEncodingIdentity {
		return data, nil
	}

	var buf bytes.Buffer
	writer, err := NewWriter(contentEncoding, &buf)
	if err != nil {
		return nil, err
	}
	if _, err = writer.Write(data); err != nil {
		writer.Close()
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
