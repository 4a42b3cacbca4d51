package pmclient

import (
	"context"
	"net/url"
)

// SendChatMessage posts into a team thread (TeamID set) or a mentor and
// student thread (MentorID and StudentID set).
func (c *Client) SendChatMessage(ctx context.Context, input ChatMessageInput) (ChatMessage, error) {
	var message ChatMessage
	if err := c.postJSON(ctx, "/chat/", input, &message); err != nil {
		return ChatMessage{}, err
	}
	return message, nil
}

// MentorCommunication fetches a mentor's direct messages with their students.
// Returns empty for non-mentor callers.
func (c *Client) MentorCommunication(ctx context.Context) ([]ChatMessage, error) {
	var messages []ChatMessage
	if err := c.getJSON(ctx, "/chat/mentor", &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// StudentCommunication fetches a student's direct messages with their mentor.
// Returns empty for non-student callers.
func (c *Client) StudentCommunication(ctx context.Context) ([]ChatMessage, error) {
	var messages []ChatMessage
	if err := c.getJSON(ctx, "/chat/student", &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// TeamChat fetches a team's full thread, oldest first.
func (c *Client) TeamChat(ctx context.Context, teamID string) ([]ChatMessage, error) {
	var messages []ChatMessage
	if err := c.getJSON(ctx, "/chat/team/"+url.PathEscape(teamID), &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
