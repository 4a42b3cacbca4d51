package pmclient

import (
	"context"
	"time"
)

// DefaultWatchInterval matches the polling cadence of the web dashboard.
const DefaultWatchInterval = 30 * time.Second

// WatchUnreadCount polls the unread-notification count and invokes fn each
// time the value changes. Polls run sequentially, so a slow backend never
// stacks requests. Poll errors are logged and swallowed; the watcher keeps
// going until ctx is canceled.
func (c *Client) WatchUnreadCount(ctx context.Context, interval time.Duration, fn func(count int)) {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := -1
	poll := func() {
		count, err := c.UnreadCount(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("unread count poll failed")
			return
		}
		if count != last {
			last = count
			fn(count)
		}
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}

// WatchTeamChat polls a team thread and invokes fn with messages that were
// not seen on a previous poll, oldest first. Seen messages are tracked by ID.
// Poll errors are logged and swallowed; the watcher runs until ctx is
// canceled.
func (c *Client) WatchTeamChat(ctx context.Context, teamID string, interval time.Duration, fn func(messages []ChatMessage)) {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := make(map[string]struct{})
	poll := func() {
		messages, err := c.TeamChat(ctx, teamID)
		if err != nil {
			c.logger.Warn().Err(err).Str("team_id", teamID).Msg("team chat poll failed")
			return
		}
		var fresh []ChatMessage
		for _, msg := range messages {
			if _, ok := seen[msg.ID]; ok {
				continue
			}
			seen[msg.ID] = struct{}{}
			fresh = append(fresh, msg)
		}
		if len(fresh) > 0 {
			fn(fresh)
		}
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}
