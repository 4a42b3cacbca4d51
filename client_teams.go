package pmclient

import (
	"context"
	"net/url"
)

// CreateTeam registers a team.
func (c *Client) CreateTeam(ctx context.Context, input TeamInput) (Team, error) {
	var team Team
	if err := c.postJSON(ctx, "/teams/", input, &team); err != nil {
		return Team{}, err
	}
	return team, nil
}

// ListTeams fetches the teams visible to the session (students see their own,
// mentors their mentees', admins all).
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := c.getJSON(ctx, "/teams/", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// GetTeam fetches one team by id.
func (c *Client) GetTeam(ctx context.Context, teamID string) (Team, error) {
	var team Team
	if err := c.getJSON(ctx, "/teams/"+url.PathEscape(teamID), &team); err != nil {
		return Team{}, err
	}
	return team, nil
}

// UpdateTeam replaces a team's fields.
func (c *Client) UpdateTeam(ctx context.Context, teamID string, input TeamInput) (Team, error) {
	var team Team
	if err := c.putJSON(ctx, "/teams/"+url.PathEscape(teamID), input, &team); err != nil {
		return Team{}, err
	}
	return team, nil
}

// DeleteTeam removes a team.
func (c *Client) DeleteTeam(ctx context.Context, teamID string) error {
	return c.deleteJSON(ctx, "/teams/"+url.PathEscape(teamID), nil)
}

// AssignTeamMentor sets a team's mentor. The backend takes the mentor id as a
// query parameter.
func (c *Client) AssignTeamMentor(ctx context.Context, teamID, mentorID string) (Team, error) {
	path := "/teams/" + url.PathEscape(teamID) + "/assign-mentor?mentor_id=" + url.QueryEscape(mentorID)

	var resp struct {
		Updated bool `json:"updated"`
		Team    Team `json:"team"`
	}
	if err := c.putJSON(ctx, path, struct{}{}, &resp); err != nil {
		return Team{}, err
	}
	return resp.Team, nil
}
