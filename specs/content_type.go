package specs

import (
	"mime"
	"strings"
)

const (
	ContentTypeUndefined = ""
	ContentTypeRaw       = "application/octet-stream"
	ContentTypePlain     = "text/plain"
	ContentTypeHTML      = "text/html"
	ContentTypeCSV       = "text/csv"

	ContentTypeJson           = "application/json"
	ContentTypeXml            = "application/xml"
	ContentTypeForm           = "application/x-www-form-urlencoded"
	ContentTypeMultipart      = "multipart/form-data"
	ContentTypeMultipartMixed = "multipart/mixed"
)

// MediaType returns the lower-cased media type and the charset
// parameter of a Content-Type value. Malformed values fall back to the
// text before the first ';'.
func MediaType(contentType string) (mediaType, charset string) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
		return strings.ToLower(strings.TrimSpace(mediaType)), ""
	}
	return mediaType, params["charset"]
}

// IsContentType reports whether the header's Content-Type has the given media type.
func IsContentType(header *Header, contentType string) bool {
	mediaType, _ := MediaType(header.Get("Content-Type"))
	return mediaType == contentType
}
