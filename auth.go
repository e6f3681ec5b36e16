package reqkit

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/oesand/reqkit/specs"
	"github.com/oesand/reqkit/vars"
)

// Authorization fills the Authorization header of a composed request.
type Authorization interface {
	// Apply sets the header, resolving placeholders with lookup.
	Apply(header *specs.Header, lookup vars.Lookup)
}

// BasicAuth is the "Basic" scheme of RFC 7617.
type BasicAuth struct {
	Username, Password string
}

func (auth BasicAuth) Apply(header *specs.Header, lookup vars.Lookup) {
	username, _ := vars.Expand(auth.Username, lookup)
	password, _ := vars.Expand(auth.Password, lookup)
	header.Set("Authorization", BasicAuthHeader(username, password))
}

// BearerAuth is the "Bearer" scheme of RFC 6750.
type BearerAuth struct {
	Token string
}

func (auth BearerAuth) Apply(header *specs.Header, lookup vars.Lookup) {
	token, _ := vars.Expand(auth.Token, lookup)
	header.Set("Authorization", BearerAuthHeader(token))
}

// BasicAuthHeader creates a Basic Authentication header from a username and password.
func BasicAuthHeader(username, password string) string {
	auth := username + ":" + password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(auth))
}

// BearerAuthHeader creates a Bearer Authentication header from a token.
func BearerAuthHeader(token string) string {
	return "Bearer " + token
}

// ParseBasicAuthHeader parses a Basic Authentication header and returns the username and password.
func ParseBasicAuthHeader(header string) (username, password string, err error) {
	const prefix = "Basic "

	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", errors.New("missing Basic prefix")
	}

	decodedBytes, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", errors.New("cannot decode base64")
	}

	username, password, ok := strings.Cut(string(decodedBytes), ":")
	if !ok {
		return "", "", errors.New("invalid format, expected username:password")
	}
	return username, password, nil
}

// ParseBearerAuthHeader parses a Bearer Authentication header and returns the token.
func ParseBearerAuthHeader(header string) (token string, err error) {
	const prefix = "Bearer "

	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", errors.New("missing Bearer prefix")
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}

// ParseAuthorization recognizes a Basic or Bearer header value.
// Other schemes give nil.
func ParseAuthorization(header string) Authorization {
	if username, password, err := ParseBasicAuthHeader(header); err == nil {
		return BasicAuth{Username: username, Password: password}
	}
	if token, err := ParseBearerAuthHeader(header); err == nil {
		return BearerAuth{Token: token}
	}
	return nil
}
