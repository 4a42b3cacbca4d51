package pmclient

import (
	"context"
	"net/url"
)

// ListUsers fetches all accounts, optionally filtered by role.
func (c *Client) ListUsers(ctx context.Context, role string) ([]User, error) {
	path := "/users/"
	if role != "" {
		path += "?role=" + url.QueryEscape(role)
	}

	var users []User
	if err := c.getJSON(ctx, path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one account by id.
func (c *Client) GetUser(ctx context.Context, userID string) (User, error) {
	var user User
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(userID), &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// GetUserByEmail fetches one account by email address.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	if err := c.getJSON(ctx, "/users/by-email/"+url.PathEscape(email), &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// AssignMentorToStudent links a mentor to a student account. The backend takes
// the mentor id as a query parameter.
func (c *Client) AssignMentorToStudent(ctx context.Context, studentID, mentorID string) error {
	path := "/users/" + url.PathEscape(studentID) + "/assign-mentor?mentor_id=" + url.QueryEscape(mentorID)
	return c.putJSON(ctx, path, struct{}{}, nil)
}
