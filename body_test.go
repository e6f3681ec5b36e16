package reqkit

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"reflect"
	"strings"
	"testing"

	"github.com/oesand/reqkit/formenc"
	"github.com/oesand/reqkit/specs"
	"github.com/oesand/reqkit/vars"
)

func TestFormBodyEncode(t *testing.T) {
	env := vars.NewEnvironment("test")
	env.Set("name", "John Doe")

	tests := []struct {
		name    string
		params  []formenc.Param
		charset string
		want    string
	}{
		{
			name: "plain",
			params: []formenc.Param{
				formenc.NewParam("a", "1"),
				formenc.NewParam("b", "x y"),
			},
			want: "a=1&b=x+y",
		},
		{
			name: "skipped records",
			params: []formenc.Param{
				formenc.NewParam("a", "1"),
				{Name: "off", Value: formenc.Single("2"), Disabled: true},
				{Name: "opt", Optional: true},
				{},
				formenc.NewParam("empty", ""),
			},
			want: "a=1&empty=",
		},
		{
			name: "array value",
			params: []formenc.Param{
				{Name: "k", Value: formenc.Multi("1", "2")},
			},
			want: "k=1&k=2",
		},
		{
			name: "placeholders",
			params: []formenc.Param{
				formenc.NewParam("user", "${name}"),
				formenc.NewParam("other", "${unknown}"),
			},
			want: "user=John+Doe&other=%24%7Bunknown%7D",
		},
		{
			name: "latin1",
			params: []formenc.Param{
				formenc.NewParam("a", "é"),
				formenc.NewParam("b", "日"),
			},
			charset: "iso-8859-1",
			want:    "a=%E9&b=%26%2326085%3B",
		},
		{
			name: "utf8 label",
			params: []formenc.Param{
				formenc.NewParam("a", "é"),
			},
			charset: "utf-8",
			want:    "a=%C3%A9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := FormBody(tt.params).WithCharset(tt.charset)
			got, err := body.Encode(env)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormBodyUnknownCharset(t *testing.T) {
	body := FormBody([]formenc.Param{formenc.NewParam("a", "b")}).WithCharset("no-such-charset")
	_, err := body.Encode(nil)
	if !errors.Is(err, specs.ErrUnknownCharset) {
		t.Errorf("Encode() error = %v, want %v", err, specs.ErrUnknownCharset)
	}
}

func TestFormBodyContentType(t *testing.T) {
	if ct := FormBody(nil).ContentType(); ct != specs.ContentTypeForm {
		t.Errorf("ContentType() = %q", ct)
	}
	if ct := FormBody(nil).WithCharset("windows-1251").ContentType(); ct != specs.ContentTypeForm+"; charset=windows-1251" {
		t.Errorf("ContentType() = %q", ct)
	}
}

func TestTextBody(t *testing.T) {
	env := vars.NewEnvironment("test")
	env.Set("id", "42")

	body := TextBody(specs.ContentTypeUndefined, `{"id": ${id}}`)
	if body.ContentType() != specs.ContentTypePlain {
		t.Errorf("ContentType() = %q", body.ContentType())
	}

	var buf bytes.Buffer
	if err := body.WriteBody(&buf, env); err != nil {
		t.Fatal(err)
	}
	if buf.String() != `{"id": 42}` {
		t.Errorf("WriteBody() = %q", buf.String())
	}
}

func TestMultipartBody(t *testing.T) {
	env := vars.NewEnvironment("test")
	env.Set("host", "example.com")

	body := MultipartBody([]formenc.Param{
		formenc.NewParam("hello", "world"),
		formenc.NewParam("host", "${host}"),
		{Name: "k", Value: formenc.Multi("1", "2")},
		{Name: "off", Value: formenc.Single("x"), Disabled: true},
		{Name: "none"},
	}, MultipartFile{
		Field:    "file",
		FileName: "a.txt",
		Data:     []byte("file content"),
	})

	var buf bytes.Buffer
	if err := body.WriteBody(&buf, env); err != nil {
		t.Fatal(err)
	}

	mediaType, params, err := mime.ParseMediaType(body.ContentType())
	if err != nil {
		t.Fatal(err)
	}
	if mediaType != specs.ContentTypeMultipart || params["boundary"] != body.Boundary() {
		t.Fatalf("ContentType() = %q", body.ContentType())
	}

	form, err := multipart.NewReader(&buf, body.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}

	wantValues := map[string][]string{
		"hello": {"world"},
		"host":  {"example.com"},
		"k":     {"1", "2"},
		"none":  {""},
	}
	if !reflect.DeepEqual(form.Value, wantValues) {
		t.Errorf("form values = %v, want %v", form.Value, wantValues)
	}

	files := form.File["file"]
	if len(files) != 1 || files[0].Filename != "a.txt" || files[0].Header.Get("Content-Type") != specs.ContentTypeRaw {
		t.Fatalf("form files = %+v", form.File)
	}
	f, err := files[0].Open()
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	data, _ := io.ReadAll(f)
	if string(data) != "file content" {
		t.Errorf("file content = %q", data)
	}
}

func TestMultipartBoundaryUnique(t *testing.T) {
	a, b := MultipartBody(nil), MultipartBody(nil)
	if a.Boundary() == b.Boundary() {
		t.Errorf("boundaries repeat: %s", a.Boundary())
	}
	if strings.ContainsAny(a.Boundary(), " \"") {
		t.Errorf("boundary %q needs quoting", a.Boundary())
	}
}
