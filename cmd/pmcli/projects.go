package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pmclient "github.com/Nikhilraj155/project-managment"
)

func newProjectsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Create and inspect projects",
	}

	var all bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects visible to the current role",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				projects []pmclient.Project
				err      error
			)
			if all {
				projects, err = a.client.ListAllProjects(cmd.Context())
			} else {
				projects, err = a.client.ListProjects(cmd.Context())
			}
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(projects)
			}
			for _, p := range projects {
				fmt.Printf("%s  %-30s  status=%s team=%s\n", p.ID, p.Title, p.Status, p.TeamID)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&all, "all", false, "list every project (admin view)")

	get := &cobra.Command{
		Use:   "get <project-id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.client.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(project)
		},
	}

	var input pmclient.ProjectInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a project for a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := a.client.CreateProject(cmd.Context(), input)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(project)
			}
			fmt.Printf("Created project %s (%s)\n", project.Title, project.ID)
			return nil
		},
	}
	flags := create.Flags()
	flags.StringVar(&input.Title, "title", "", "project title")
	flags.StringVar(&input.Description, "description", "", "project description")
	flags.StringVar(&input.TeamID, "team", "", "owning team id")
	flags.StringVar(&input.MentorID, "mentor", "", "mentor id")
	flags.StringVar(&input.Status, "status", "", "initial status")
	_ = create.MarkFlagRequired("title")
	_ = create.MarkFlagRequired("team")
	_ = create.MarkFlagRequired("mentor")

	cmd.AddCommand(list, get, create)
	return cmd
}

func newStatsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Dashboard and report aggregates",
	}

	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the admin dashboard totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.client.GetDashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(stats)
			}
			s := stats.Summary
			fmt.Printf("students=%d mentors=%d teams=%d projects=%d\n",
				s.TotalStudents, s.TotalMentors, s.TotalTeams, s.TotalProjects)
			fmt.Printf("active last 24h: students=%d mentors=%d\n", s.ActiveStudents24h, s.ActiveMentors24h)
			for _, ev := range stats.UpcomingEvents {
				fmt.Printf("  upcoming: %s on %s\n", ev.Event, ev.Date)
			}
			return nil
		},
	}

	reports := &cobra.Command{
		Use:   "reports",
		Short: "Show the reports summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.client.GetReportsSummary(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(summary)
		},
	}

	cmd.AddCommand(dashboard, reports)
	return cmd
}
