package specs

var (
	ErrCancelled       = NewOpError("context", "cancelled")
	ErrInvalidHeader   = NewOpError("header", "invalid header field")
	ErrUnknownEncoding = NewOpError("encoding", "unknown content encoding")
	ErrUnknownCharset  = NewOpError("charset", "unknown charset")
	ErrTooLarge        = NewOpError("write", "too large content")
)
