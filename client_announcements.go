package pmclient

import (
	"context"
	"net/http"
	"net/url"
)

// AnnouncementResult is the creation response: the stored announcement plus
// how many per-user notifications were fanned out.
type AnnouncementResult struct {
	Announcement      Announcement `json:"announcement"`
	NotificationCount int          `json:"notification_count"`
}

// CreateAnnouncement broadcasts to an audience ("all", "students", "mentors",
// "panels"). The backend takes these as query parameters, not a JSON body.
func (c *Client) CreateAnnouncement(ctx context.Context, title, message, audience string) (AnnouncementResult, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("message", message)
	if audience != "" {
		q.Set("audience", audience)
	}

	var result AnnouncementResult
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/announcements/?" + q.Encode(),
		out:    &result,
	})
	if err != nil {
		return AnnouncementResult{}, err
	}
	return result, nil
}

// ListAnnouncements fetches the announcements visible to the current user.
func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	if err := c.getJSON(ctx, "/announcements/", &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// DeleteAnnouncement removes an announcement.
func (c *Client) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	return c.deleteJSON(ctx, "/announcements/"+url.PathEscape(announcementID), nil)
}
