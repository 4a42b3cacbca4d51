// Command pmcli is a terminal front-end for the project management backend.
// It signs in against /auth/login, keeps the credential under ~/.pmcli, and
// exposes the role-scoped workflows (projects, tasks, teams, presentations,
// announcements, chat, allocations) as subcommands.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pmclient "github.com/Nikhilraj155/project-managment"
	"github.com/Nikhilraj155/project-managment/session"
)

// app carries what every subcommand needs once the root command has run its
// persistent setup.
type app struct {
	client *pmclient.Client
	logger zerolog.Logger

	jsonOut bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	root := newRootCommand(a)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pmcli: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "pmcli",
		Short:         "CLI for the college project management system",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("env", string(pmclient.EnvDevelopment), "backend environment (development or production)")
	flags.String("base-url", "", "override the backend base URL")
	flags.Duration("timeout", 30*time.Second, "per-request timeout")
	flags.Bool("verbose", false, "log request details to stderr")
	flags.BoolVar(&a.jsonOut, "json", false, "print raw JSON instead of tables")

	viper.SetEnvPrefix("PMCLI")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"env", "base-url", "timeout", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup()
	}

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newRegisterCommand(a),
		newProjectsCommand(a),
		newTasksCommand(a),
		newTeamsCommand(a),
		newPresentationsCommand(a),
		newAnnouncementsCommand(a),
		newNotificationsCommand(a),
		newChatCommand(a),
		newFilesCommand(a),
		newAllocationsCommand(a),
		newIdeasCommand(a),
		newFeedbackCommand(a),
		newStatsCommand(a),
	)
	return root
}

// setup loads the optional config file, assembles the gateway client, and
// restores any persisted session. A missing credential is not an error here;
// commands that need auth fail on their first request instead.
func (a *app) setup() error {
	if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(filepath.Join(home, ".pmcli"))
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config file: %w", err)
			}
		}
	}

	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg := pmclient.Config{
		Environment: pmclient.Environment(viper.GetString("env")),
		Timeout:     viper.GetDuration("timeout"),
	}
	if base := viper.GetString("base-url"); base != "" {
		cfg.DevBaseURL = base
		cfg.ProdBaseURL = base
	}

	client, err := pmclient.New().
		WithConfig(cfg).
		WithLogger(a.logger).
		Build()
	if err != nil {
		return err
	}
	a.client = client

	if _, err := client.Sessions().Restore(context.Background()); err != nil {
		a.logger.Debug().Err(err).Msg("no session restored")
	}
	return nil
}

// printJSON renders any payload as indented JSON on stdout.
func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// requireSession fails fast with a helpful message instead of letting the
// backend answer 401 on commands that obviously need a login.
func (a *app) requireSession() (*session.Session, error) {
	sess := a.client.Sessions().Current()
	if sess == nil {
		return nil, fmt.Errorf("not logged in, run: pmcli login")
	}
	return sess, nil
}
