package reqkit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/oesand/reqkit/internal/encoding"
	"github.com/oesand/reqkit/internal/plain"
	"github.com/oesand/reqkit/internal/writing"
	"github.com/oesand/reqkit/specs"
	"github.com/oesand/reqkit/vars"
)

// Composer turns an edited [Request] into an HTTP/1.1 message.
type Composer struct {
	Logger *log.Logger

	// Debug flag to allow show system messages
	Debug bool

	// Environment resolves ${variable} placeholders.
	// Unresolved placeholders are written as they are.
	Environment vars.Lookup

	// ContentEncoding compresses the body unless the request header
	// already names one. Empty means identity.
	ContentEncoding string

	// MaxBodySize limits the body before compression.
	// If zero, DefaultMaxBodySize is used.
	MaxBodySize int64
}

func (composer *Composer) logger() *log.Logger {
	if composer.Logger != nil {
		return composer.Logger
	}
	return log.Default()
}

func (composer *Composer) debugf(format string, args ...any) {
	if composer.Debug {
		composer.logger().Printf("reqkit: "+format, args...)
	}
}

func (composer *Composer) maxBodySize() int64 {
	if composer.MaxBodySize > 0 {
		return composer.MaxBodySize
	}
	return DefaultMaxBodySize
}

func (composer *Composer) expand(field, s string) string {
	expanded, missing := vars.Expand(s, composer.Environment)
	if len(missing) > 0 {
		composer.debugf("unresolved variables in %s: %s", field, strings.Join(missing, ", "))
	}
	return expanded
}

// credential decodes the percent-encoded user info of the url.
// A malformed sequence leaves the value as written.
func (composer *Composer) credential(field, s string) string {
	decoded, err := plain.UnEscapeUrl(s)
	if err != nil {
		composer.debugf("url %s kept as written: %s", field, err)
		return s
	}
	return decoded
}

// Message is a request with every placeholder resolved,
// ready to be written.
type Message struct {
	Method specs.HttpMethod
	Url    *specs.UrlParser
	Header *specs.Header

	// Body is already content-encoded.
	Body []byte
}

// Target returns the request target of the request line.
func (msg *Message) Target() string {
	return writing.RequestTarget(msg.Url)
}

// WriteTo writes the message in HTTP/1.1 form.
func (msg *Message) WriteTo(w io.Writer) (int64, error) {
	n, err := writing.WriteRequestHead(w, msg.Method, msg.Target(), msg.Header)
	if err != nil || len(msg.Body) == 0 {
		return n, err
	}
	written, err := w.Write(msg.Body)
	n += int64(written)
	if err != nil {
		return n, specs.WrapOpError("write body", err)
	}
	return n, nil
}

// Compose resolves the request into a Message.
// The request itself is not modified.
func (composer *Composer) Compose(req *Request) (*Message, error) {
	if req == nil {
		panic("reqkit: passed nil request")
	}
	method := req.Method
	if method == "" {
		method = specs.HttpMethodGet
	}

	var opts *specs.ParserOptions
	raw := ""
	if req.Url != nil {
		options := req.Url.Options()
		opts = &options
		raw = req.Url.Clone().Value()
	}
	url := specs.NewUrlParser(composer.expand("url", raw), opts)

	header := specs.NewHeader()
	if req.Header != nil {
		for _, field := range req.Header.Fields() {
			if field.Disabled {
				continue
			}
			field.Name = composer.expand("header name", field.Name)
			field.Value = composer.expand("header "+field.Name, field.Value)
			if field.Name == "" {
				composer.debugf("skipped header field without name")
				continue
			}
			header.AddField(field)
		}
	}

	host := specs.SplitHost(url.Host())
	if !header.Has("Host") && host.Hostname != "" {
		header.Set("Host", specs.HostParts{Hostname: host.Hostname, Port: host.Port}.String())
	}

	switch {
	case req.Auth != nil:
		req.Auth.Apply(header, composer.Environment)
	case host.Username != "" && !header.Has("Authorization"):
		BasicAuth{
			Username: composer.credential("username", host.Username),
			Password: composer.credential("password", host.Password),
		}.Apply(header, nil)
	}

	if err := header.Validate(); err != nil {
		return nil, err
	}

	msg := &Message{
		Method: method,
		Url:    url,
		Header: header,
	}
	if req.Body == nil {
		return msg, nil
	}
	if !method.IsPostable() {
		composer.debugf("dropped body of %s request", method)
		return msg, nil
	}

	var buf bytes.Buffer
	if err := req.Body.WriteBody(&buf, composer.Environment); err != nil {
		return nil, specs.WrapOpError("body", err)
	}
	if int64(buf.Len()) > composer.maxBodySize() {
		return nil, specs.ErrTooLarge
	}

	if !header.Has("Content-Type") {
		header.Set("Content-Type", req.Body.ContentType())
	}

	contentEncoding := strings.ToLower(strings.TrimSpace(header.Get("Content-Encoding")))
	switch contentEncoding {
	case "":
		contentEncoding = composer.ContentEncoding
	case "identity":
		contentEncoding = specs.ContentEncodingIdentity
		header.Del("Content-Encoding")
	}
	if !specs.IsKnownEncoding(contentEncoding) {
		return nil, fmt.Errorf("%w %q", specs.ErrUnknownEncoding, contentEncoding)
	}

	body := buf.Bytes()
	if contentEncoding != specs.ContentEncodingIdentity {
		compressed, err := encoding.Compress(contentEncoding, body)
		if err != nil {
			return nil, err
		}
		composer.debugf("body encoded with %s: %d -> %d bytes", contentEncoding, len(body), len(compressed))
		body = compressed
		header.Set("Content-Encoding", contentEncoding)
	}

	header.Set("Content-Length", strconv.Itoa(len(body)))
	msg.Body = body
	return msg, nil
}

// WriteRequest writes the composed request to w and returns the
// number of bytes written.
func (composer *Composer) WriteRequest(ctx context.Context, w io.Writer, req *Request) (int64, error) {
	if ctx.Err() != nil {
		return 0, specs.ErrCancelled
	}

	msg, err := composer.Compose(req)
	if err != nil {
		return 0, err
	}

	if ctx.Err() != nil {
		return 0, specs.ErrCancelled
	}
	return msg.WriteTo(w)
}

// Dump returns the composed request as text.
func (composer *Composer) Dump(ctx context.Context, req *Request) (string, error) {
	var buf strings.Builder
	if _, err := composer.WriteRequest(ctx, &buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
