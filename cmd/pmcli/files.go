package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pmclient "github.com/Nikhilraj155/project-managment"
)

func newFilesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Upload, list and download project files",
	}

	var projectID string
	upload := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file, optionally attached to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			info, err := a.client.UploadFile(cmd.Context(), projectID, filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Printf("Uploaded %s as %s (v%d)\n", info.Filename, info.ID, info.Version)
			return nil
		},
	}
	upload.Flags().StringVar(&projectID, "project", "", "project id to attach to")

	list := &cobra.Command{
		Use:   "list <project-id>",
		Short: "List a project's files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.client.FilesByProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(files)
			}
			for _, info := range files {
				fmt.Printf("%s  v%-2d  %s\n", info.ID, info.Version, info.Filename)
			}
			return nil
		},
	}

	var out string
	download := &cobra.Command{
		Use:   "download <file-id>",
		Short: "Download a file's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, header, err := a.client.DownloadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer body.Close()

			dest := out
			if dest == "" {
				dest = filenameFromDisposition(header.Get("Content-Disposition"), args[0])
			}
			f, err := os.Create(dest)
			if err != nil {
				return err
			}
			defer f.Close()

			n, err := io.Copy(f, body)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %d bytes to %s\n", n, dest)
			return nil
		},
	}
	download.Flags().StringVar(&out, "out", "", "destination path (defaults to the served filename)")

	del := &cobra.Command{
		Use:   "delete <file-id>",
		Short: "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.DeleteFile(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(upload, list, download, del)
	return cmd
}

func newPresentationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presentations",
		Short: "Schedule and review presentation rounds",
	}

	var input pmclient.PresentationInput
	var deckPath string
	schedule := &cobra.Command{
		Use:   "schedule",
		Short: "Upload a deck and schedule a round",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(deckPath)
			if err != nil {
				return err
			}
			defer f.Close()

			presentation, err := a.client.SchedulePresentation(cmd.Context(), input, filepath.Base(deckPath), f)
			if err != nil {
				return err
			}
			fmt.Printf("Scheduled round %d on %s (%s)\n", presentation.RoundNumber, presentation.Date, presentation.ID)
			return nil
		},
	}
	flags := schedule.Flags()
	flags.StringVar(&input.TeamID, "team", "", "team id")
	flags.StringVar(&input.ProjectID, "project", "", "project id")
	flags.IntVar(&input.RoundNumber, "round", 1, "round number")
	flags.StringVar(&input.Date, "date", "", "presentation date (YYYY-MM-DD)")
	flags.StringSliceVar(&input.AssignedPanelIDs, "panels", nil, "panel member ids")
	flags.StringVar(&deckPath, "deck", "", "path to the deck file")
	for _, required := range []string{"team", "project", "date", "deck"} {
		_ = schedule.MarkFlagRequired(required)
	}

	assigned := &cobra.Command{
		Use:   "assigned",
		Short: "List presentations assigned to the current panel member",
		RunE: func(cmd *cobra.Command, args []string) error {
			presentations, err := a.client.AssignedPresentationsWithFiles(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(presentations)
			}
			for _, p := range presentations {
				fmt.Printf("%s  round %d on %s, %d file(s)\n", p.ID, p.RoundNumber, p.Date, len(p.Files))
			}
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list [project-id]",
		Short: "List every presentation, or one project's rounds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				presentations []pmclient.Presentation
				err           error
			)
			if len(args) == 1 {
				presentations, err = a.client.PresentationsByProject(cmd.Context(), args[0])
			} else {
				presentations, err = a.client.ListAllPresentations(cmd.Context())
			}
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(presentations)
			}
			for _, p := range presentations {
				fmt.Printf("%s  team=%s project=%s round=%d date=%s\n", p.ID, p.TeamID, p.ProjectID, p.RoundNumber, p.Date)
			}
			return nil
		},
	}

	var public bool
	download := &cobra.Command{
		Use:   "download <file-id>",
		Short: "Download a presentation deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fetch := a.client.DownloadPresentationFile
			if public {
				fetch = a.client.DownloadPresentationFilePublic
			}
			body, header, err := fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer body.Close()

			dest := filenameFromDisposition(header.Get("Content-Disposition"), args[0])
			f, err := os.Create(dest)
			if err != nil {
				return err
			}
			defer f.Close()

			if _, err := io.Copy(f, body); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", dest)
			return nil
		},
	}
	download.Flags().BoolVar(&public, "public", false, "use the unauthenticated share endpoint")

	del := &cobra.Command{
		Use:   "delete <presentation-id>",
		Short: "Delete a presentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.DeletePresentation(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(schedule, assigned, list, download, del)
	return cmd
}

// filenameFromDisposition extracts filename="..." from a Content-Disposition
// header, falling back to the given id when the header is absent or odd.
func filenameFromDisposition(disposition, fallback string) string {
	const marker = `filename=`
	idx := strings.Index(disposition, marker)
	if idx < 0 {
		return fallback
	}
	name := strings.Trim(disposition[idx+len(marker):], `"`)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fallback
	}
	return name
}
