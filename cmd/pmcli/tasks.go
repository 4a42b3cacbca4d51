package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pmclient "github.com/Nikhilraj155/project-managment"
)

func newTasksCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the Kanban board",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks visible to the current role",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.client.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(tasks)
			}
			for _, task := range tasks {
				fmt.Printf("%s  [%-11s]  %s\n", task.ID, task.Status, task.Title)
			}
			return nil
		},
	}

	board := &cobra.Command{
		Use:   "board",
		Short: "Group tasks by status, the way the web board renders them",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.client.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			columns := map[string][]pmclient.Task{}
			for _, task := range tasks {
				columns[task.Status] = append(columns[task.Status], task)
			}
			if a.jsonOut {
				return a.printJSON(columns)
			}
			for _, status := range []string{pmclient.TaskPending, pmclient.TaskInProgress, pmclient.TaskCompleted} {
				fmt.Printf("== %s (%d)\n", status, len(columns[status]))
				for _, task := range columns[status] {
					fmt.Printf("   %s  %s\n", task.ID, task.Title)
				}
			}
			return nil
		},
	}

	var input pmclient.TaskInput
	var due string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if due != "" {
				parsed, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parse --due: %w", err)
				}
				input.DueDate = &parsed
			}
			task, err := a.client.CreateTask(cmd.Context(), input)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(task)
			}
			fmt.Printf("Created task %s (%s)\n", task.Title, task.ID)
			return nil
		},
	}
	flags := create.Flags()
	flags.StringVar(&input.Title, "title", "", "task title")
	flags.StringVar(&input.Description, "description", "", "task description")
	flags.StringVar(&input.AssignedTo, "assignee", "", "assignee user id")
	flags.StringVar(&input.TeamID, "team", "", "team id")
	flags.StringVar(&input.ProjectID, "project", "", "project id")
	flags.StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	_ = create.MarkFlagRequired("title")

	move := &cobra.Command{
		Use:   "move <task-id> <status>",
		Short: "Move a task to pending, in_progress or completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.client.MoveTask(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s -> %s\n", task.Title, task.Status)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.DeleteTask(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, board, create, move, del)
	return cmd
}

func newTeamsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Manage teams",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := a.client.ListTeams(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(teams)
			}
			for _, team := range teams {
				fmt.Printf("%s  %-25s mentor=%s members=%d\n", team.ID, team.Name, team.MentorID, len(team.Members))
			}
			return nil
		},
	}

	var input pmclient.TeamInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := a.client.CreateTeam(cmd.Context(), input)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(team)
			}
			fmt.Printf("Created team %s (%s)\n", team.Name, team.ID)
			return nil
		},
	}
	flags := create.Flags()
	flags.StringVar(&input.Name, "name", "", "team name")
	flags.StringVar(&input.MentorID, "mentor", "", "mentor id")
	flags.StringVar(&input.Description, "description", "", "team description")
	flags.StringSliceVar(&input.Members, "members", nil, "member user ids")
	_ = create.MarkFlagRequired("name")

	assign := &cobra.Command{
		Use:   "assign-mentor <team-id> <mentor-id>",
		Short: "Assign or replace a team's mentor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := a.client.AssignTeamMentor(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Team %s now mentored by %s\n", team.Name, team.MentorID)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <team-id>",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.DeleteTeam(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, create, assign, del)
	return cmd
}
