package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	pmclient "github.com/Nikhilraj155/project-managment"
)

func newLoginCommand(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the credential under ~/.pmcli",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Print("Email: ")
				scanner := bufio.NewScanner(os.Stdin)
				scanner.Scan()
				email = strings.TrimSpace(scanner.Text())
			}
			if password == "" {
				fmt.Print("Password: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Println()
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(raw)
			}

			sess, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", sess.Username, sess.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session and the persisted credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the restored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.requireSession()
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(sess)
			}
			fmt.Printf("%s <%s> role=%s id=%s\n", sess.Username, sess.Email, sess.Role, sess.UserID)
			return nil
		},
	}
}

func newRegisterCommand(a *app) *cobra.Command {
	var input pmclient.RegisterInput
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.client.Register(cmd.Context(), input)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(user)
			}
			fmt.Printf("Created %s (%s) as %s\n", user.Username, user.Email, user.Role)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&input.Username, "username", "", "display name")
	flags.StringVar(&input.Email, "email", "", "account email")
	flags.StringVar(&input.Password, "password", "", "password (6 to 72 characters)")
	flags.StringVar(&input.Role, "role", "student", "student, mentor, panel or admin")
	for _, required := range []string{"username", "email", "password"} {
		_ = cmd.MarkFlagRequired(required)
	}
	return cmd
}
