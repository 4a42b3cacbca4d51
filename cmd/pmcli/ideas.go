package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pmclient "github.com/Nikhilraj155/project-managment"
)

func newIdeasCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Project idea proposals and share links",
	}

	list := &cobra.Command{
		Use:   "list [project-id]",
		Short: "List proposals, optionally for one project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ideas []pmclient.ProjectIdea
				err   error
			)
			if len(args) == 1 {
				ideas, err = a.client.ProjectIdeasByProject(cmd.Context(), args[0])
			} else {
				ideas, err = a.client.ListProjectIdeas(cmd.Context())
			}
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(ideas)
			}
			for _, idea := range ideas {
				fmt.Printf("%s  %s <%s>: %s\n", idea.ID, idea.StudentName, idea.Email, idea.Idea1)
			}
			return nil
		},
	}

	var input pmclient.ProjectIdeaInput
	var token string
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit a proposal, in-app or through a share token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				idea pmclient.ProjectIdea
				err  error
			)
			if token != "" {
				idea, err = a.client.SubmitIdeaByLink(cmd.Context(), token, input)
			} else {
				idea, err = a.client.SubmitProjectIdea(cmd.Context(), input)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Submitted idea %s\n", idea.ID)
			return nil
		},
	}
	flags := submit.Flags()
	flags.StringVar(&input.StudentName, "name", "", "student name")
	flags.StringVar(&input.MobileNumber, "mobile", "", "mobile number")
	flags.StringVar(&input.Email, "email", "", "contact email")
	flags.StringVar(&input.Idea1, "idea1", "", "first idea (required)")
	flags.StringVar(&input.Idea2, "idea2", "", "second idea")
	flags.StringVar(&input.Idea3, "idea3", "", "third idea")
	flags.StringVar(&input.TeamID, "team", "", "team id")
	flags.StringVar(&input.ProjectID, "project", "", "project id")
	flags.StringVar(&token, "token", "", "public share token (skips auth)")
	for _, required := range []string{"name", "mobile", "email", "idea1"} {
		_ = submit.MarkFlagRequired(required)
	}

	var projectID, teamID string
	link := &cobra.Command{
		Use:   "link",
		Short: "Mint a public submission token",
		RunE: func(cmd *cobra.Command, args []string) error {
			minted, err := a.client.GenerateIdeaLink(cmd.Context(), projectID, teamID)
			if err != nil {
				return err
			}
			fmt.Println(minted)
			return nil
		},
	}
	link.Flags().StringVar(&projectID, "project", "", "project id")
	link.Flags().StringVar(&teamID, "team", "", "team id")

	resolve := &cobra.Command{
		Use:   "resolve <token>",
		Short: "Check what a share token points at",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.client.ResolveIdeaLink(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(info)
		},
	}

	cmd.AddCommand(list, submit, link, resolve)
	return cmd
}

func newFeedbackCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Panel evaluations and round schedules",
	}

	var eval pmclient.EvaluationInput
	evaluate := &cobra.Command{
		Use:   "evaluate <presentation-id>",
		Short: "Score a presentation against the rubric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eval.PresentationID = args[0]
			feedback, err := a.client.EvaluatePresentation(cmd.Context(), eval)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded score %.0f for round %d\n", feedback.Score, feedback.RoundNumber)
			return nil
		},
	}
	flags := evaluate.Flags()
	flags.IntVar(&eval.TechnicalImplementation, "technical", 0, "technical implementation score")
	flags.IntVar(&eval.PresentationClarity, "clarity", 0, "presentation clarity score")
	flags.IntVar(&eval.ProblemSolving, "problem-solving", 0, "problem solving score")
	flags.IntVar(&eval.OverallImpression, "overall", 0, "overall impression score")
	flags.StringVar(&eval.Comments, "comments", "", "free-form comments")

	team := &cobra.Command{
		Use:   "team <team-id>",
		Short: "List evaluations filed for a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feedback, err := a.client.TeamFeedback(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(feedback)
			}
			for _, f := range feedback {
				fmt.Printf("%s  round %d  score %.0f  %s\n", f.ID, f.RoundNumber, f.Score, f.Comments)
			}
			return nil
		},
	}

	var schedule pmclient.RoundScheduleInput
	rounds := &cobra.Command{
		Use:   "rounds <project-id>",
		Short: "Show or update a project's round schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false
			for _, flag := range []string{"round1", "round2", "round3", "deadline1", "deadline2", "deadline3"} {
				if cmd.Flags().Changed(flag) {
					changed = true
				}
			}
			if changed {
				schedule.ProjectID = args[0]
				updated, err := a.client.UpsertRoundSchedule(cmd.Context(), schedule)
				if err != nil {
					return err
				}
				return a.printJSON(updated)
			}
			current, err := a.client.GetRoundSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(current)
		},
	}
	rf := rounds.Flags()
	rf.StringVar(&schedule.Round1Date, "round1", "", "round 1 date")
	rf.StringVar(&schedule.Round2Date, "round2", "", "round 2 date")
	rf.StringVar(&schedule.Round3Date, "round3", "", "round 3 date")
	rf.StringVar(&schedule.Round1Deadline, "deadline1", "", "round 1 submission deadline")
	rf.StringVar(&schedule.Round2Deadline, "deadline2", "", "round 2 submission deadline")
	rf.StringVar(&schedule.Round3Deadline, "deadline3", "", "round 3 submission deadline")

	cmd.AddCommand(evaluate, team, rounds)
	return cmd
}
