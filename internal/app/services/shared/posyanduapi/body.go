package posyanduapi

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"posyandu-console/internal/pkg/constvars"
	"sort"

	"github.com/goccy/go-json"
)

// File is a binary attachment sent as a multipart file part.
type File struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Form is an explicit multipart body. Fields keep their order.
type Form struct {
	Fields [][2]string
	Files  map[string]File
}

// encodeBody picks the wire format: multipart when the body carries a File, JSON otherwise.
func encodeBody(body interface{}) (io.Reader, string, error) {
	switch payload := body.(type) {
	case nil:
		return nil, "", nil
	case *Form:
		return encodeForm(payload)
	case Form:
		return encodeForm(&payload)
	case map[string]interface{}:
		if hasFile(payload) {
			return encodeForm(formFromMap(payload))
		}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(raw), constvars.MIMEApplicationJSON, nil
}

func hasFile(values map[string]interface{}) bool {
	for _, value := range values {
		switch value.(type) {
		case File, *File:
			return true
		}
	}
	return false
}

func formFromMap(values map[string]interface{}) *Form {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	form := &Form{Files: make(map[string]File)}
	for _, key := range keys {
		switch value := values[key].(type) {
		case File:
			form.Files[key] = value
		case *File:
			form.Files[key] = *value
		case nil:
			form.Fields = append(form.Fields, [2]string{key, ""})
		default:
			form.Fields = append(form.Fields, [2]string{key, fmt.Sprint(value)})
		}
	}
	return form
}

func encodeForm(form *Form) (io.Reader, string, error) {
	buffer := new(bytes.Buffer)
	writer := multipart.NewWriter(buffer)

	for _, field := range form.Fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", err
		}
	}

	names := make([]string, 0, len(form.Files))
	for name := range form.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		file := form.Files[name]
		contentType := file.ContentType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, name, file.FileName))
		header.Set(constvars.HeaderContentType, contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buffer, writer.FormDataContentType(), nil
}

// DecodeList accepts both a bare JSON array and a {"data": [...]} envelope.
func DecodeList(raw []byte, out interface{}) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return err
		}
		if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
			return nil
		}
		raw = envelope.Data
	}
	return json.Unmarshal(raw, out)
}
