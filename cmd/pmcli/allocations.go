package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	pmclient "github.com/Nikhilraj155/project-managment"
)

func newAllocationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocations",
		Short: "Guide allocation sheets (CSV ingest)",
	}

	upload := &cobra.Command{
		Use:   "upload <path>",
		Short: "Ingest an allocation CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := a.client.UploadAllocationCSV(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Printf("Inserted %d rows (batch %s): %d groups, %d guides, %d students\n",
				result.Inserted, result.BatchID, result.Groups, result.Guides, result.Students)
			return nil
		},
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Totals across every uploaded batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := a.client.AllocationSummaryTotals(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(totals)
			}
			fmt.Printf("students=%d guides=%d teams=%d\n", totals.TotalStudents, totals.TotalGuides, totals.TotalTeams)
			return nil
		},
	}

	var limit int
	records := &cobra.Command{
		Use:   "records",
		Short: "List uploaded rows, newest batch first",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.client.AllocationRecords(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(rows)
			}
			for _, row := range rows {
				fmt.Printf("%s  %-6s %-25s guide=%s\n", row.ID, row.GroupNo, row.StudentName, row.GuideName)
			}
			return nil
		},
	}
	records.Flags().IntVar(&limit, "limit", 100, "maximum rows to fetch")

	var patch pmclient.AllocationRecordPatch
	var teamName, projectTitle, guideName string
	edit := &cobra.Command{
		Use:   "edit <record-id>",
		Short: "Edit one allocation row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("team-name") {
				patch.TeamName = &teamName
			}
			if cmd.Flags().Changed("project-title") {
				patch.ProjectTitle = &projectTitle
			}
			if cmd.Flags().Changed("guide-name") {
				patch.GuideName = &guideName
			}
			record, err := a.client.UpdateAllocationRecord(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return a.printJSON(record)
		},
	}
	edit.Flags().StringVar(&teamName, "team-name", "", "new team name")
	edit.Flags().StringVar(&projectTitle, "project-title", "", "new project title")
	edit.Flags().StringVar(&guideName, "guide-name", "", "new guide name")

	var group pmclient.AllocationGroupInput
	var students []string
	addGroup := &cobra.Command{
		Use:   "add-group",
		Short: "Create an allocation group by hand (up to 4 students)",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range students {
				name, enrollment, ok := splitPair(s)
				if !ok {
					return fmt.Errorf("student %q must be name:enrollment", s)
				}
				group.Students = append(group.Students, pmclient.AllocationGroupStudent{
					StudentName:  name,
					EnrollmentNo: enrollment,
				})
			}
			rows, err := a.client.CreateAllocationGroup(cmd.Context(), group)
			if err != nil {
				return err
			}
			fmt.Printf("Created group %s with %d student(s)\n", group.GroupNo, len(rows))
			return nil
		},
	}
	flags := addGroup.Flags()
	flags.StringVar(&group.GroupNo, "group", "", "group number, e.g. G65")
	flags.StringVar(&group.TeamName, "team-name", "", "team name")
	flags.StringVar(&group.ProjectTitle, "project-title", "", "project title")
	flags.StringVar(&group.GuideName, "guide-name", "", "guide name")
	flags.StringSliceVar(&students, "student", nil, "student as name:enrollment (repeatable)")
	_ = addGroup.MarkFlagRequired("group")
	_ = addGroup.MarkFlagRequired("student")

	cmd.AddCommand(upload, summary, records, edit, addGroup)
	return cmd
}

func splitPair(s string) (string, string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ':' {
			return s[:i], s[i+1:], i > 0 && i < len(s)-1
		}
	}
	return "", "", false
}
