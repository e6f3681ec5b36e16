package specs

import "strings"

type HttpMethod string

// HttpMethod constants represent the standard HTTP methods as defined in RFC 7231 and related specifications.
const (
	HttpMethodGet     HttpMethod = "GET"
	HttpMethodPost    HttpMethod = "POST"
	HttpMethodPut     HttpMethod = "PUT"
	HttpMethodDelete  HttpMethod = "DELETE"
	HttpMethodOptions HttpMethod = "OPTIONS"
	HttpMethodHead    HttpMethod = "HEAD"
	HttpMethodConnect HttpMethod = "CONNECT"
	HttpMethodPatch   HttpMethod = "PATCH"
	HttpMethodTrace   HttpMethod = "TRACE"
)

// ParseHttpMethod normalizes user input from a method field.
// Unknown but well-formed tokens are kept upper-cased, since REST
// clients may send extension methods; an empty input means GET.
func ParseHttpMethod(value string) HttpMethod {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return HttpMethodGet
	}
	return HttpMethod(value)
}

// IsValid checks if the HttpMethod is one of the standard HTTP methods.
func (method HttpMethod) IsValid() bool {
	switch method {
	case HttpMethodGet, HttpMethodPost, HttpMethodPut, HttpMethodDelete, HttpMethodOptions,
		HttpMethodHead, HttpMethodConnect, HttpMethodPatch, HttpMethodTrace:
		return true
	}
	return false
}

// IsPostable checks if the HttpMethod is suitable for sending a request body.
// Extension methods are assumed to carry one.
func (method HttpMethod) IsPostable() bool {
	switch method {
	case HttpMethodGet, HttpMethodHead, HttpMethodConnect, HttpMethodOptions, HttpMethodTrace:
		return false
	}
	return method != ""
}
