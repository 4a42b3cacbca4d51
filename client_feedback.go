package pmclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SubmitFeedback files a raw evaluation for a team's presentation round.
func (c *Client) SubmitFeedback(ctx context.Context, input FeedbackInput) (Feedback, error) {
	var feedback Feedback
	if err := c.postJSON(ctx, "/feedback/", input, &feedback); err != nil {
		return Feedback{}, err
	}
	return feedback, nil
}

// TeamFeedback fetches every evaluation filed for a team.
func (c *Client) TeamFeedback(ctx context.Context, teamID string) ([]Feedback, error) {
	var feedback []Feedback
	if err := c.getJSON(ctx, "/feedback/"+url.PathEscape(teamID), &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// EvaluationInput is a panel member's rubric scores for one presentation.
// Each criterion is scored independently and the backend sums them.
type EvaluationInput struct {
	PresentationID          string
	TechnicalImplementation int
	PresentationClarity     int
	ProblemSolving          int
	OverallImpression       int
	Comments                string
}

// EvaluatePresentation scores a presentation against the rubric. The backend
// takes the scores as query parameters and derives team, project and round
// from the presentation itself.
func (c *Client) EvaluatePresentation(ctx context.Context, input EvaluationInput) (Feedback, error) {
	q := url.Values{}
	q.Set("presentation_id", input.PresentationID)
	q.Set("technical_implementation", strconv.Itoa(input.TechnicalImplementation))
	q.Set("presentation_clarity", strconv.Itoa(input.PresentationClarity))
	q.Set("problem_solving", strconv.Itoa(input.ProblemSolving))
	q.Set("overall_impression", strconv.Itoa(input.OverallImpression))
	if input.Comments != "" {
		q.Set("comments", input.Comments)
	}

	var feedback Feedback
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/feedback/evaluate?" + q.Encode(),
		out:    &feedback,
	})
	if err != nil {
		return Feedback{}, err
	}
	return feedback, nil
}

// SubmitStudentFeedback files end-of-term program feedback from a student.
func (c *Client) SubmitStudentFeedback(ctx context.Context, input StudentFeedbackInput) (StudentFeedback, error) {
	var feedback StudentFeedback
	if err := c.postJSON(ctx, "/student-feedback/", input, &feedback); err != nil {
		return StudentFeedback{}, err
	}
	return feedback, nil
}

// ListStudentFeedback fetches every student feedback entry (mentor and admin
// view).
func (c *Client) ListStudentFeedback(ctx context.Context) ([]StudentFeedback, error) {
	var feedback []StudentFeedback
	if err := c.getJSON(ctx, "/student-feedback/all", &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// StudentFeedbackByProject fetches the student feedback tied to one project.
func (c *Client) StudentFeedbackByProject(ctx context.Context, projectID string) ([]StudentFeedback, error) {
	var feedback []StudentFeedback
	if err := c.getJSON(ctx, "/student-feedback/project/"+url.PathEscape(projectID), &feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// UpsertRoundSchedule creates or updates a project's round dates in one call.
func (c *Client) UpsertRoundSchedule(ctx context.Context, input RoundScheduleInput) (RoundSchedule, error) {
	var schedule RoundSchedule
	if err := c.postJSON(ctx, "/round-schedules/", input, &schedule); err != nil {
		return RoundSchedule{}, err
	}
	return schedule, nil
}

// GetRoundSchedule fetches a project's round schedule. A project without one
// yields ErrNotFound.
func (c *Client) GetRoundSchedule(ctx context.Context, projectID string) (RoundSchedule, error) {
	var schedule RoundSchedule
	if err := c.getJSON(ctx, "/round-schedules/project/"+url.PathEscape(projectID), &schedule); err != nil {
		return RoundSchedule{}, err
	}
	return schedule, nil
}
