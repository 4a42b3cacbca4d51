package pmclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SchedulePresentation uploads a deck and schedules (or reschedules) the
// presentation for a project round. Travels as multipart form data: the
// backend wants the fields and the file in one request.
func (c *Client) SchedulePresentation(ctx context.Context, input PresentationInput, filename string, deck io.Reader) (Presentation, error) {
	fields := map[string]string{
		"team_id":            input.TeamID,
		"project_id":         input.ProjectID,
		"round_number":       strconv.Itoa(input.RoundNumber),
		"date":               input.Date,
		"assigned_panel_ids": strings.Join(input.AssignedPanelIDs, ","),
	}

	body, contentType, err := encodeMultipart(fields, filePart{field: "file", filename: filename, content: deck})
	if err != nil {
		return Presentation{}, err
	}

	var presentation Presentation
	err = c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/presentations/",
		body:        body,
		contentType: contentType,
		out:         &presentation,
	})
	if err != nil {
		return Presentation{}, err
	}
	return presentation, nil
}

// AssignedPresentations fetches the presentations assigned to the current
// panel member.
func (c *Client) AssignedPresentations(ctx context.Context) ([]Presentation, error) {
	var presentations []Presentation
	if err := c.getJSON(ctx, "/presentations/assigned", &presentations); err != nil {
		return nil, err
	}
	return presentations, nil
}

// PresentationWithFiles pairs a presentation with its file metadata, as
// returned by /presentations/assigned_with_files.
type PresentationWithFiles struct {
	Presentation
	Files []FileInfo `json:"files"`
}

// AssignedPresentationsWithFiles fetches assigned presentations together with
// their deck metadata, saving the panel dashboard one round-trip per row.
func (c *Client) AssignedPresentationsWithFiles(ctx context.Context) ([]PresentationWithFiles, error) {
	var out []PresentationWithFiles
	if err := c.getJSON(ctx, "/presentations/assigned_with_files", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllPresentations fetches every presentation (admin view).
func (c *Client) ListAllPresentations(ctx context.Context) ([]Presentation, error) {
	var presentations []Presentation
	if err := c.getJSON(ctx, "/presentations/all", &presentations); err != nil {
		return nil, err
	}
	return presentations, nil
}

// PresentationsByProject fetches a project's presentations.
func (c *Client) PresentationsByProject(ctx context.Context, projectID string) ([]Presentation, error) {
	var presentations []Presentation
	if err := c.getJSON(ctx, "/presentations/project/"+url.PathEscape(projectID), &presentations); err != nil {
		return nil, err
	}
	return presentations, nil
}

// UpdatePresentationFile replaces the deck of an existing presentation.
func (c *Client) UpdatePresentationFile(ctx context.Context, presentationID, filename string, deck io.Reader) (Presentation, error) {
	body, contentType, err := encodeMultipart(nil, filePart{field: "file", filename: filename, content: deck})
	if err != nil {
		return Presentation{}, err
	}

	var presentation Presentation
	err = c.do(ctx, call{
		method:      http.MethodPut,
		path:        "/presentations/" + url.PathEscape(presentationID),
		body:        body,
		contentType: contentType,
		out:         &presentation,
	})
	if err != nil {
		return Presentation{}, err
	}
	return presentation, nil
}

// DeletePresentation removes a presentation and its files.
func (c *Client) DeletePresentation(ctx context.Context, presentationID string) error {
	return c.deleteJSON(ctx, "/presentations/"+url.PathEscape(presentationID), nil)
}

// DownloadPresentationFile streams a deck. The caller owns closing the reader.
func (c *Client) DownloadPresentationFile(ctx context.Context, fileID string) (io.ReadCloser, http.Header, error) {
	return c.stream(ctx, call{
		method: http.MethodGet,
		path:   "/presentations/file/" + url.PathEscape(fileID),
	})
}

// DownloadPresentationFilePublic streams a deck through the unauthenticated
// endpoint used by shared links. No bearer is attached.
func (c *Client) DownloadPresentationFilePublic(ctx context.Context, fileID string) (io.ReadCloser, http.Header, error) {
	return c.stream(ctx, call{
		method: http.MethodGet,
		path:   "/presentations/public/file/" + url.PathEscape(fileID),
		noAuth: true,
	})
}
