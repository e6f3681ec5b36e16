package reqkit

import (
	"crypto/rand"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/oesand/reqkit/formenc"
	"github.com/oesand/reqkit/specs"
	"github.com/oesand/reqkit/vars"
	"golang.org/x/text/encoding"
)

// Body is the payload of a [Request].
type Body interface {
	// ContentType is sent unless the request header already has one.
	ContentType() string

	// WriteBody writes the payload with placeholders resolved by lookup.
	WriteBody(w io.Writer, lookup vars.Lookup) error
}

// FormBody is the implementation for the [Body] with
// application/x-www-form-urlencoded records.
//
// Disabled and empty optional records are skipped,
// names and values are query-encoded after placeholder expansion.
func FormBody(params []formenc.Param) *UrlEncodedBody {
	return &UrlEncodedBody{Params: params}
}

// UrlEncodedBody holds the records of a url-encoded payload.
type UrlEncodedBody struct {
	Params []formenc.Param

	// Charset the records are transcoded to before encoding,
	// UTF-8 when empty.
	Charset string
}

// WithCharset sets the charset and returns the body.
func (body *UrlEncodedBody) WithCharset(charset string) *UrlEncodedBody {
	body.Charset = charset
	return body
}

func (body *UrlEncodedBody) ContentType() string {
	if body.Charset == "" {
		return specs.ContentTypeForm
	}
	return specs.ContentTypeForm + "; charset=" + body.Charset
}

// Encode returns the payload string.
func (body *UrlEncodedBody) Encode(lookup vars.Lookup) (string, error) {
	enc, err := lookupCharset(body.Charset)
	if err != nil {
		return "", err
	}

	params := make([]formenc.Param, 0, len(body.Params))
	for _, param := range body.Params {
		if !param.Sendable() {
			continue
		}
		if param.Name, err = expandCharset(param.Name, lookup, enc); err != nil {
			return "", err
		}
		values := make(formenc.Value, len(param.Value))
		for i, value := range param.Value {
			if values[i], err = expandCharset(value, lookup, enc); err != nil {
				return "", err
			}
		}
		param.Value = values
		params = append(params, param)
	}

	return formenc.FormArrayToString(formenc.EncodeUrlEncoded(params)), nil
}

func expandCharset(s string, lookup vars.Lookup, enc encoding.Encoding) (string, error) {
	s, _ = vars.Expand(s, lookup)
	return toCharset(enc, s)
}

func (body *UrlEncodedBody) WriteBody(w io.Writer, lookup vars.Lookup) error {
	payload, err := body.Encode(lookup)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, payload)
	return err
}

// TextBody is the implementation for the [Body] with
// a raw text payload, placeholders included.
//
// if content type unspecified then [specs.ContentTypePlain] will be set
func TextBody(contentType string, text string) Body {
	if contentType == specs.ContentTypeUndefined {
		contentType = specs.ContentTypePlain
	}
	return &textBody{contentType: contentType, text: text}
}

type textBody struct {
	contentType string
	text        string
}

func (body *textBody) ContentType() string {
	return body.contentType
}

func (body *textBody) WriteBody(w io.Writer, lookup vars.Lookup) error {
	text, _ := vars.Expand(body.text, lookup)
	_, err := io.WriteString(w, text)
	return err
}

// MultipartFile is a file part of a multipart payload.
type MultipartFile struct {
	Field, FileName, ContentType string
	Data                         []byte
}

// MultipartBody is the implementation for the [Body] with
// multipart/form-data payload built from text records and files.
//
// Records follow the same skipping rules as [FormBody],
// an array value writes one part per element.
func MultipartBody(params []formenc.Param, files ...MultipartFile) *MultipartFormBody {
	return &MultipartFormBody{
		Params:   params,
		Files:    files,
		boundary: multipartBoundary(),
	}
}

func multipartBoundary() string {
	var buf [30]byte
	_, err := io.ReadFull(rand.Reader, buf[:])
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%x", buf[:])
}

// MultipartFormBody holds the parts of a multipart payload.
type MultipartFormBody struct {
	Params []formenc.Param
	Files  []MultipartFile

	boundary string
}

// Boundary returns the part delimiter.
func (body *MultipartFormBody) Boundary() string {
	return body.boundary
}

func (body *MultipartFormBody) ContentType() string {
	return specs.ContentTypeMultipart + "; boundary=" + body.boundary
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (body *MultipartFormBody) WriteBody(w io.Writer, lookup vars.Lookup) error {
	writer := multipart.NewWriter(w)
	if err := writer.SetBoundary(body.boundary); err != nil {
		return err
	}

	for _, param := range body.Params {
		if !param.Sendable() {
			continue
		}
		name, _ := vars.Expand(param.Name, lookup)
		values := param.Value
		if len(values) == 0 {
			values = formenc.Single("")
		}
		for _, value := range values {
			value, _ = vars.Expand(value, lookup)
			if err := writer.WriteField(name, value); err != nil {
				return err
			}
		}
	}

	for _, file := range body.Files {
		contentType := file.ContentType
		if contentType == "" {
			contentType = specs.ContentTypeRaw
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(file.Field), quoteEscaper.Replace(file.FileName)))
		h.Set("Content-Type", contentType)
		part, err := writer.CreatePart(h)
		if err != nil {
			return err
		}
		if _, err = part.Write(file.Data); err != nil {
			return err
		}
	}

	return writer.Close()
}
