package pmclient

import (
	"context"
	"fmt"
	"net/url"
)

// CreateTask adds a card to the board.
func (c *Client) CreateTask(ctx context.Context, input TaskInput) (Task, error) {
	if input.Status == "" {
		input.Status = TaskPending
	}

	var task Task
	if err := c.postJSON(ctx, "/tasks/", input, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// ListTasks fetches every task visible to the session.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.getJSON(ctx, "/tasks/", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask fetches one task by id.
func (c *Client) GetTask(ctx context.Context, taskID string) (Task, error) {
	var task Task
	if err := c.getJSON(ctx, "/tasks/"+url.PathEscape(taskID), &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// UpdateTask fully replaces a task's fields.
func (c *Client) UpdateTask(ctx context.Context, taskID string, input TaskInput) (Task, error) {
	var task Task
	if err := c.putJSON(ctx, "/tasks/"+url.PathEscape(taskID), input, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// MoveTask is the Kanban column move: it re-reads the task and replaces it
// with only the status changed, so a concurrent edit to other fields is not
// clobbered by a stale local copy.
func (c *Client) MoveTask(ctx context.Context, taskID, status string) (Task, error) {
	switch status {
	case TaskPending, TaskInProgress, TaskCompleted:
	default:
		return Task{}, fmt.Errorf("unknown task status %q", status)
	}

	current, err := c.GetTask(ctx, taskID)
	if err != nil {
		return Task{}, err
	}

	input := TaskInput{
		Title:       current.Title,
		Description: current.Description,
		Status:      status,
		AssignedTo:  current.AssignedTo,
		TeamID:      current.TeamID,
		ProjectID:   current.ProjectID,
		DueDate:     current.DueDate,
	}
	return c.UpdateTask(ctx, taskID, input)
}

// DeleteTask removes a card. Only the creator may delete; the server enforces
// that and answers 404 otherwise.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.deleteJSON(ctx, "/tasks/"+url.PathEscape(taskID), nil)
}
