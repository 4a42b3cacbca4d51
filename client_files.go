package pmclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// UploadFile attaches a document to a project. projectID may be empty for
// unscoped uploads.
func (c *Client) UploadFile(ctx context.Context, projectID, filename string, content io.Reader) (FileInfo, error) {
	fields := map[string]string{"project_id": projectID}
	body, contentType, err := encodeMultipart(fields, filePart{field: "file", filename: filename, content: content})
	if err != nil {
		return FileInfo{}, err
	}

	var info FileInfo
	err = c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/files/upload",
		body:        body,
		contentType: contentType,
		out:         &info,
	})
	if err != nil {
		return FileInfo{}, err
	}
	return info, nil
}

// FilesByProject fetches a project's file metadata.
func (c *Client) FilesByProject(ctx context.Context, projectID string) ([]FileInfo, error) {
	var files []FileInfo
	if err := c.getJSON(ctx, "/files/project/"+url.PathEscape(projectID), &files); err != nil {
		return nil, err
	}
	return files, nil
}

// UpdateFile replaces the content of an uploaded file, bumping its version.
func (c *Client) UpdateFile(ctx context.Context, fileID, filename string, content io.Reader) (FileInfo, error) {
	body, contentType, err := encodeMultipart(nil, filePart{field: "file", filename: filename, content: content})
	if err != nil {
		return FileInfo{}, err
	}

	var info FileInfo
	err = c.do(ctx, call{
		method:      http.MethodPut,
		path:        "/files/" + url.PathEscape(fileID),
		body:        body,
		contentType: contentType,
		out:         &info,
	})
	if err != nil {
		return FileInfo{}, err
	}
	return info, nil
}

// DeleteFile removes a file and its content.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	return c.deleteJSON(ctx, "/files/"+url.PathEscape(fileID), nil)
}

// DownloadFile streams a file's content. The caller owns closing the reader;
// the returned headers carry Content-Type and Content-Disposition.
func (c *Client) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, http.Header, error) {
	return c.stream(ctx, call{
		method: http.MethodGet,
		path:   "/files/" + url.PathEscape(fileID),
	})
}
