package reqkit

import (
	"github.com/oesand/reqkit/specs"
)

// NewRequest creates an editable request for the raw url.
//
// if method unspecified then [specs.HttpMethodGet] will be set
func NewRequest(method specs.HttpMethod, url string) *Request {
	if method == "" {
		method = specs.HttpMethodGet
	}
	return &Request{
		Method: method,
		Url:    specs.NewUrlParser(url, nil),
		Header: specs.NewHeader(),
	}
}

// Request is the state of a request editor: every field may still
// hold ${variable} placeholders, which [Composer] resolves.
type Request struct {
	Method specs.HttpMethod
	Url    *specs.UrlParser
	Header *specs.Header

	// Auth, when set, overrides any Authorization header field.
	Auth Authorization

	// Body is dropped for methods that do not carry one.
	Body Body
}

// Clone returns a copy whose url and header can be edited independently.
// Auth and Body are shared.
func (req *Request) Clone() *Request {
	copied := *req
	if req.Url != nil {
		copied.Url = req.Url.Clone()
	}
	if req.Header != nil {
		copied.Header = req.Header.Clone()
	}
	return &copied
}
