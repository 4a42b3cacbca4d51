package pmclient

import (
	"context"
	"net/url"
)

// ListNotifications fetches the current user's notifications, newest first.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.getJSON(ctx, "/notifications/", &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// UnreadCount returns how many notifications are unread.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := c.getJSON(ctx, "/notifications/unread-count", &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.postJSON(ctx, "/notifications/read/"+url.PathEscape(notificationID), struct{}{}, nil)
}

// MarkAllNotificationsRead marks every notification of the current user read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.postJSON(ctx, "/notifications/mark-all-read", struct{}{}, nil)
}
