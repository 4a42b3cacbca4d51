package pmclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// UploadAllocationCSV ingests a guide-allocation sheet. The backend detects
// the delimiter and header aliases itself, so the file goes up as-is.
func (c *Client) UploadAllocationCSV(ctx context.Context, filename string, content io.Reader) (AllocationUploadResult, error) {
	body, contentType, err := encodeMultipart(nil, filePart{field: "file", filename: filename, content: content})
	if err != nil {
		return AllocationUploadResult{}, err
	}

	var result AllocationUploadResult
	err = c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/csv/upload",
		body:        body,
		contentType: contentType,
		out:         &result,
	})
	if err != nil {
		return AllocationUploadResult{}, err
	}
	return result, nil
}

// AllocationSummaryTotals aggregates every uploaded batch.
func (c *Client) AllocationSummaryTotals(ctx context.Context) (AllocationSummary, error) {
	var summary AllocationSummary
	if err := c.getJSON(ctx, "/csv/summary", &summary); err != nil {
		return AllocationSummary{}, err
	}
	return summary, nil
}

// AllocationRecords lists uploaded rows, newest batch first. limit <= 0 uses
// the backend default of 100.
func (c *Client) AllocationRecords(ctx context.Context, limit int) ([]AllocationRecord, error) {
	path := "/csv/records"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var records []AllocationRecord
	if err := c.getJSON(ctx, path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AllocationRecordPatch carries the editable fields of an allocation row.
// Nil fields are left untouched.
type AllocationRecordPatch struct {
	TeamName     *string `json:"team_name,omitempty"`
	ProjectTitle *string `json:"project_title,omitempty"`
	GuideName    *string `json:"guide_name,omitempty"`
	StudentName  *string `json:"student_name,omitempty"`
	EnrollmentNo *string `json:"enrollment_no,omitempty"`
	GroupNo      *string `json:"group_no,omitempty"`
}

// UpdateAllocationRecord edits one row in place.
func (c *Client) UpdateAllocationRecord(ctx context.Context, recordID string, patch AllocationRecordPatch) (AllocationRecord, error) {
	body, err := marshalBody(patch)
	if err != nil {
		return AllocationRecord{}, err
	}

	var record AllocationRecord
	err = c.do(ctx, call{
		method: http.MethodPatch,
		path:   "/csv/" + url.PathEscape(recordID),
		body:   body,
		out:    &record,
	})
	if err != nil {
		return AllocationRecord{}, err
	}
	return record, nil
}

// AllocationGroupStudent is one member of a manually created group.
type AllocationGroupStudent struct {
	StudentName  string `json:"student_name"`
	EnrollmentNo string `json:"enrollment_no"`
}

// AllocationGroupInput creates an allocation group by hand, outside of a CSV
// ingest. The backend caps groups at four students.
type AllocationGroupInput struct {
	GroupNo      string                   `json:"group_no"`
	TeamName     string                   `json:"team_name,omitempty"`
	ProjectTitle string                   `json:"project_title,omitempty"`
	GuideName    string                   `json:"guide_name,omitempty"`
	Students     []AllocationGroupStudent `json:"students"`
}

// CreateAllocationGroup inserts a new group as its own single-group batch.
func (c *Client) CreateAllocationGroup(ctx context.Context, input AllocationGroupInput) ([]AllocationRecord, error) {
	var out struct {
		Inserted int                `json:"inserted"`
		Records  []AllocationRecord `json:"records"`
	}
	if err := c.postJSON(ctx, "/csv/groups", input, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}
