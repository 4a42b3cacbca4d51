package pmclient

import (
	"context"
	"net/http"
	"net/url"
)

// SubmitProjectIdea files a proposal from inside the app.
func (c *Client) SubmitProjectIdea(ctx context.Context, input ProjectIdeaInput) (ProjectIdea, error) {
	var idea ProjectIdea
	if err := c.postJSON(ctx, "/project-ideas/", input, &idea); err != nil {
		return ProjectIdea{}, err
	}
	return idea, nil
}

// ListProjectIdeas fetches every submitted proposal.
func (c *Client) ListProjectIdeas(ctx context.Context) ([]ProjectIdea, error) {
	var ideas []ProjectIdea
	if err := c.getJSON(ctx, "/project-ideas/", &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// ProjectIdeasByProject fetches the proposals tied to one project.
func (c *Client) ProjectIdeasByProject(ctx context.Context, projectID string) ([]ProjectIdea, error) {
	var ideas []ProjectIdea
	if err := c.getJSON(ctx, "/project-ideas/project/"+url.PathEscape(projectID), &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// GenerateIdeaLink mints a shareable token so externals can submit proposals
// without an account. Either ID may be empty.
func (c *Client) GenerateIdeaLink(ctx context.Context, projectID, teamID string) (string, error) {
	in := struct {
		ProjectID string `json:"project_id,omitempty"`
		TeamID    string `json:"team_id,omitempty"`
	}{ProjectID: projectID, TeamID: teamID}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.postJSON(ctx, "/project-ideas/generate-link", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ResolveIdeaLink checks a public submission token. No bearer is attached.
func (c *Client) ResolveIdeaLink(ctx context.Context, token string) (IdeaLinkInfo, error) {
	var info IdeaLinkInfo
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/public/project-ideas/" + url.PathEscape(token),
		noAuth: true,
		out:    &info,
	})
	if err != nil {
		return IdeaLinkInfo{}, err
	}
	return info, nil
}

// SubmitIdeaByLink files a proposal through a public token. The token decides
// which project and team the idea lands on.
func (c *Client) SubmitIdeaByLink(ctx context.Context, token string, input ProjectIdeaInput) (ProjectIdea, error) {
	body, err := marshalBody(input)
	if err != nil {
		return ProjectIdea{}, err
	}

	var idea ProjectIdea
	err = c.do(ctx, call{
		method: http.MethodPost,
		path:   "/public/project-ideas/" + url.PathEscape(token),
		body:   body,
		noAuth: true,
		out:    &idea,
	})
	if err != nil {
		return ProjectIdea{}, err
	}
	return idea, nil
}
