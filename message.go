package reqkit

import (
	"bufio"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"

	"github.com/oesand/reqkit/formenc"
	"github.com/oesand/reqkit/internal/encoding"
	"github.com/oesand/reqkit/specs"
)

const readMessageOp specs.OpName = "read message"

// skipped when a message is read back, they are recomputed by [Composer]
var composedHeaders = []string{"Host", "Content-Length", "Content-Encoding", "Authorization", "Transfer-Encoding"}

// ReadMessage reads an HTTP/1.x request message into an editable [Request].
//
// The body is decoded by its Content-Encoding. Url-encoded and multipart
// bodies become records, any other body a text body. The protocol is
// [DefaultProtocol] unless the request line is in absolute form.
func ReadMessage(r io.Reader) (*Request, error) {
	httpReq, err := http.ReadRequest(bufio.NewReader(r))
	if err != nil {
		return nil, specs.WrapOpError(readMessageOp, err)
	}
	defer httpReq.Body.Close()

	req := &Request{
		Method: specs.ParseHttpMethod(httpReq.Method),
		Url:    specs.NewUrlParser(httpReq.RequestURI, nil),
		Header: specs.NewHeader(),
	}
	if req.Url.Host() == "" && httpReq.Host != "" {
		req.Url.SetProtocol(DefaultProtocol)
		req.Url.SetHost(httpReq.Host)
	}

	names := make([]string, 0, len(httpReq.Header))
	for name := range httpReq.Header {
		if !slices.Contains(composedHeaders, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		for _, value := range httpReq.Header[name] {
			req.Header.Add(name, value)
		}
	}

	if value := httpReq.Header.Get("Authorization"); value != "" {
		if req.Auth = ParseAuthorization(value); req.Auth == nil {
			req.Header.Add("Authorization", value)
		}
	}

	contentEncoding := strings.ToLower(strings.TrimSpace(httpReq.Header.Get("Content-Encoding")))
	if contentEncoding == "identity" {
		contentEncoding = specs.ContentEncodingIdentity
	}
	reader, err := encoding.NewReader(contentEncoding, httpReq.Body)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	// the decoded size is limited, a compressed body may be any size
	data, err := io.ReadAll(io.LimitReader(reader, DefaultMaxBodySize+1))
	if err != nil {
		return nil, specs.WrapOpError(readMessageOp, err)
	}
	if int64(len(data)) > DefaultMaxBodySize {
		return nil, specs.ErrTooLarge
	}
	if len(data) == 0 {
		return req, nil
	}

	contentType := httpReq.Header.Get("Content-Type")
	mediaType, charset := specs.MediaType(contentType)
	switch mediaType {
	case specs.ContentTypeForm:
		body, err := readFormBody(string(data), charset)
		if err != nil {
			return nil, err
		}
		req.Body = body
		req.Header.Del("Content-Type")
	case specs.ContentTypeMultipart:
		body, err := readMultipartBody(data, contentType)
		if err != nil {
			return nil, err
		}
		req.Body = body
		req.Header.Del("Content-Type")
	default:
		req.Body = TextBody(contentType, string(data))
	}
	return req, nil
}

func readFormBody(payload, charset string) (*UrlEncodedBody, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}

	params := formenc.DecodeUrlEncoded(formenc.CreateParamsArray(payload))
	for i := range params {
		if params[i].Name, err = fromCharset(enc, params[i].Name); err != nil {
			return nil, err
		}
		for j, value := range params[i].Value {
			if params[i].Value[j], err = fromCharset(enc, value); err != nil {
				return nil, err
			}
		}
	}
	return FormBody(params).WithCharset(charset), nil
}

func readMultipartBody(data []byte, contentType string) (*MultipartFormBody, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, specs.WrapOpError(readMessageOp, err)
	}
	boundary, ok := params["boundary"]
	if !ok {
		return nil, specs.NewOpError(readMessageOp, "no multipart boundary param in Content-Type")
	}

	body := &MultipartFormBody{boundary: boundary}
	index := make(map[string]int)
	reader := multipart.NewReader(strings.NewReader(string(data)), boundary)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, specs.WrapOpError(readMessageOp, err)
		}

		content, err := io.ReadAll(part)
		if err != nil {
			return nil, specs.WrapOpError(readMessageOp, err)
		}

		if part.FileName() != "" {
			body.Files = append(body.Files, MultipartFile{
				Field:       part.FormName(),
				FileName:    part.FileName(),
				ContentType: part.Header.Get("Content-Type"),
				Data:        content,
			})
			continue
		}

		name := part.FormName()
		if i, has := index[name]; has {
			body.Params[i].Value = append(body.Params[i].Value, string(content))
			continue
		}
		index[name] = len(body.Params)
		body.Params = append(body.Params, formenc.NewParam(name, string(content)))
	}
	return body, nil
}
