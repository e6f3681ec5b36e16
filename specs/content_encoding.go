package specs

// ContentEncoding values a request body may be compressed with.
//
// Reference: https://www.iana.org/assignments/http-parameters/http-parameters.xhtml
const (
	ContentEncodingIdentity = ""
	ContentEncodingGzip     = "gzip"
	ContentEncodingDeflate  = "deflate"
	ContentEncodingBrotli   = "br"
)

// IsKnownEncoding reports whether a body can be written with contentEncoding.
func IsKnownEncoding(contentEncoding string) bool {
	switch contentEncoding {
	case ContentEncodingIdentity, ContentEncodingGzip, ContentEncodingDeflate, ContentEncodingBrotli:
		return true
	}
	return false
}
