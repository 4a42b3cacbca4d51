package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pmclient "github.com/Nikhilraj155/project-managment"
	"github.com/Nikhilraj155/project-managment/session"
)

func newAnnouncementsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announcements",
		Short: "Broadcast and list announcements",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List announcements for the current role",
		RunE: func(cmd *cobra.Command, args []string) error {
			announcements, err := a.client.ListAnnouncements(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(announcements)
			}
			for _, ann := range announcements {
				fmt.Printf("%s  [%s] %s: %s\n", ann.ID, ann.Audience, ann.Title, ann.Message)
			}
			return nil
		},
	}

	var title, message, audience string
	create := &cobra.Command{
		Use:   "create",
		Short: "Broadcast an announcement to an audience",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.client.CreateAnnouncement(cmd.Context(), title, message, audience)
			if err != nil {
				return err
			}
			fmt.Printf("Announced %q, notified %d users\n", result.Announcement.Title, result.NotificationCount)
			return nil
		},
	}
	create.Flags().StringVar(&title, "title", "", "announcement title")
	create.Flags().StringVar(&message, "message", "", "announcement body")
	create.Flags().StringVar(&audience, "audience", "all", "all, students, mentors or panels")
	_ = create.MarkFlagRequired("title")
	_ = create.MarkFlagRequired("message")

	del := &cobra.Command{
		Use:   "delete <announcement-id>",
		Short: "Delete an announcement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.DeleteAnnouncement(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, create, del)
	return cmd
}

func newNotificationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List and acknowledge notifications",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the current user's notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifications, err := a.client.ListNotifications(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(notifications)
			}
			for _, n := range notifications {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				fmt.Printf("%s %s  [%s] %s\n", marker, n.ID, n.NotifType, n.Message)
			}
			return nil
		},
	}

	unread := &cobra.Command{
		Use:   "unread",
		Short: "Show the unread count",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := a.client.UnreadCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(count)
			return nil
		},
	}

	read := &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.MarkNotificationRead(cmd.Context(), args[0])
		},
	}

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification read",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.MarkAllNotificationsRead(cmd.Context())
		},
	}

	var interval time.Duration
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Poll the unread count and print changes until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.client.WatchUnreadCount(cmd.Context(), interval, func(count int) {
				fmt.Printf("%s  unread: %d\n", time.Now().Format(time.TimeOnly), count)
			})
			return nil
		},
	}
	watch.Flags().DurationVar(&interval, "interval", pmclient.DefaultWatchInterval, "poll interval")

	cmd.AddCommand(list, unread, read, readAll, watch)
	return cmd
}

func newChatCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Team and mentor chat threads",
	}

	team := &cobra.Command{
		Use:   "team <team-id>",
		Short: "Show a team thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := a.client.TeamChat(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(messages)
			}
			printMessages(messages)
			return nil
		},
	}

	direct := &cobra.Command{
		Use:   "direct",
		Short: "Show the mentor and student direct thread for the current role",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.requireSession()
			if err != nil {
				return err
			}
			var messages []pmclient.ChatMessage
			if sess.Role == session.RoleMentor {
				messages, err = a.client.MentorCommunication(cmd.Context())
			} else {
				messages, err = a.client.StudentCommunication(cmd.Context())
			}
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(messages)
			}
			printMessages(messages)
			return nil
		},
	}

	var teamID, mentorID, studentID string
	send := &cobra.Command{
		Use:   "send <content>",
		Short: "Send a message into a team or direct thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.requireSession()
			if err != nil {
				return err
			}
			input := pmclient.ChatMessageInput{
				TeamID:    teamID,
				SenderID:  sess.UserID,
				Content:   args[0],
				MentorID:  mentorID,
				StudentID: studentID,
			}
			message, err := a.client.SendChatMessage(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("sent %s\n", message.ID)
			return nil
		},
	}
	send.Flags().StringVar(&teamID, "team", "", "team thread id")
	send.Flags().StringVar(&mentorID, "mentor", "", "mentor id for a direct thread")
	send.Flags().StringVar(&studentID, "student", "", "student id for a direct thread")

	var interval time.Duration
	watch := &cobra.Command{
		Use:   "watch <team-id>",
		Short: "Poll a team thread and print new messages until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.client.WatchTeamChat(cmd.Context(), args[0], interval, printMessages)
			return nil
		},
	}
	watch.Flags().DurationVar(&interval, "interval", pmclient.DefaultWatchInterval, "poll interval")

	cmd.AddCommand(team, direct, send, watch)
	return cmd
}

func printMessages(messages []pmclient.ChatMessage) {
	for _, msg := range messages {
		name := msg.SenderName
		if name == "" {
			name = msg.SenderID
		}
		fmt.Printf("%s  %s: %s\n", msg.Timestamp.Format("2006-01-02 15:04"), name, msg.Content)
	}
}
