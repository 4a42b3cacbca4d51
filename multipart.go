package pmclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

type filePart struct {
	field    string
	filename string
	content  io.Reader
}

// encodeMultipart builds a multipart/form-data payload. The returned content
// type carries the writer's boundary and is the only Content-Type such a
// request ever gets.
func encodeMultipart(fields map[string]string, files ...filePart) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("write form field %q: %w", key, err)
		}
	}

	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %q: %w", f.field, err)
		}
		if _, err := io.Copy(part, f.content); err != nil {
			return nil, "", fmt.Errorf("copy form file %q: %w", f.filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart payload: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
