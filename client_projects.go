package pmclient

import (
	"context"
	"net/url"
)

// CreateProject registers a project for a team under a mentor.
func (c *Client) CreateProject(ctx context.Context, input ProjectInput) (Project, error) {
	var project Project
	if err := c.postJSON(ctx, "/projects/", input, &project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// ListProjects fetches the projects visible to the current session's role.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.getJSON(ctx, "/projects/", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListAllProjects fetches every project, regardless of ownership. Backed by
// /projects/all, which the admin dashboard uses.
func (c *Client) ListAllProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.getJSON(ctx, "/projects/all", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches one project by id.
func (c *Client) GetProject(ctx context.Context, projectID string) (Project, error) {
	var project Project
	if err := c.getJSON(ctx, "/projects/"+url.PathEscape(projectID), &project); err != nil {
		return Project{}, err
	}
	return project, nil
}
