package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sahaara/core/internal/domain/entities"
	"github.com/sahaara/core/internal/ports"
)

// NewRegisterCommand creates the register command
func NewRegisterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create your account and start a session",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			location, _ := cmd.Flags().GetString("location")

			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			session, err := app.sessions.Register(context.Background(), ports.RegisterRequest{
				Name:     name,
				Email:    email,
				Password: password,
				Location: location,
			})
			if err != nil {
				fmt.Printf("Registration failed: %v\n", err)
				return
			}
			fmt.Printf("Welcome to Sahaara, %s!\n", session.Name)
		},
	}

	cmd.Flags().String("name", "", "Full name (required)")
	cmd.Flags().String("email", "", "Email (required)")
	cmd.Flags().String("password", "", "Password (required, never stored)")
	cmd.Flags().String("location", "", "Your neighborhood/area (required)")
	return cmd
}

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and start a session",
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			session, err := app.sessions.Login(context.Background(), ports.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				fmt.Printf("Login failed: %v\n", err)
				return
			}
			fmt.Printf("Signed in as %s (%s)\n", session.Name, session.Email)
		},
	}

	cmd.Flags().String("email", "", "Email (required)")
	cmd.Flags().String("password", "", "Password (required, never verified)")
	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		Run: func(cmd *cobra.Command, args []string) {
			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			if err := app.sessions.Logout(context.Background()); err != nil {
				fmt.Printf("Logout failed: %v\n", err)
				return
			}
			fmt.Println("Logged out.")
		},
	}
}

// NewWhoamiCommand creates the whoami command
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Run: func(cmd *cobra.Command, args []string) {
			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			session, err := app.requireSession(context.Background())
			if err != nil {
				return
			}
			fmt.Printf("%s <%s> — %s\n", session.Name, session.Email, session.Location)
		},
	}
}

// NewPostCommand creates the post command
func NewPostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new task for your neighbors",
		Run: func(cmd *cobra.Command, args []string) {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			location, _ := cmd.Flags().GetString("location")
			reward, _ := cmd.Flags().GetString("reward")
			rewardType, _ := cmd.Flags().GetString("type")

			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			ctx := context.Background()
			session, err := app.requireSession(ctx)
			if err != nil {
				return
			}

			// The authoring form pre-fills the task location with the
			// session's neighborhood.
			if location == "" {
				location = session.Location
			}

			task, err := app.tasks.PostTask(ctx, session, ports.CreateTaskRequest{
				Title:       title,
				Description: description,
				Location:    location,
				Reward:      reward,
				Type:        entities.RewardType(rewardType),
			})
			if err != nil {
				if errors.Is(err, entities.ErrValidation) {
					app.notifier.Notify(ports.Notification{
						Title:       "Missing Information",
						Description: "Please fill in all fields to post your task.",
						Destructive: true,
					})
					return
				}
				fmt.Printf("Posting failed: %v\n", err)
				return
			}

			app.notifier.Notify(ports.Notification{
				Title:       "Task Posted Successfully! 🎉",
				Description: "Your task is now visible to the community.",
			})

			// Grace period before switching back to the dashboard view.
			time.Sleep(app.cfg.UX.RedirectDelay)
			fmt.Println()
			fmt.Println("Your posted tasks:")
			printTask(*task)
		},
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "What help you need (required)")
	cmd.Flags().String("location", "", "Task area (defaults to your neighborhood)")
	cmd.Flags().String("reward", "", "Reward/payment, e.g. ₹200 or Home-cooked meal (required)")
	cmd.Flags().String("type", "money", "Reward type: money, favor, or barter")
	return cmd
}

// NewBrowseCommand creates the browse command
func NewBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse tasks near you",
		Run: func(cmd *cobra.Command, args []string) {
			search, _ := cmd.Flags().GetString("search")
			follow, _ := cmd.Flags().GetBool("follow")

			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			ctx := context.Background()
			session, err := app.requireSession(ctx)
			if err != nil {
				return
			}

			app.acceptance.Mount(ctx)
			fmt.Println(permissionStatusLine(app.awaitPermissionState(200 * time.Millisecond)))
			fmt.Println()

			render := func() {
				tasks, err := app.tasks.Browse(ctx, session, search)
				if err != nil {
					fmt.Printf("Browsing failed: %v\n", err)
					return
				}

				if len(tasks) == 0 {
					fmt.Println("No tasks found matching your search.")
					return
				}

				for _, task := range tasks {
					printTask(task)
					fmt.Println()
				}
			}

			render()

			if follow {
				if err := app.followStore(ctx, render); err != nil {
					fmt.Printf("Cannot follow store changes: %v\n", err)
				}
			}
		},
	}

	cmd.Flags().String("search", "", "Filter by title, description, or location")
	cmd.Flags().Bool("follow", false, "Keep the view open and re-render when the local store changes")
	return cmd
}

// NewMineCommand creates the mine command
func NewMineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Show the tasks you have posted",
		Run: func(cmd *cobra.Command, args []string) {
			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			ctx := context.Background()
			session, err := app.requireSession(ctx)
			if err != nil {
				return
			}

			tasks, err := app.tasks.PostedBy(ctx, session)
			if err != nil {
				fmt.Printf("Listing failed: %v\n", err)
				return
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks posted yet. Post your first task and get help from your community.")
				return
			}

			for _, task := range tasks {
				printTask(task)
				if task.AcceptedBy != "" {
					fmt.Printf("  ✅ Accepted by %s\n", task.AcceptedBy)
				}
				fmt.Println()
			}
		},
	}
}

// NewAcceptCommand creates the accept command
func NewAcceptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <task-id>",
		Short: "Help with a task, sharing your location with its poster",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := uuid.Parse(args[0])
			if err != nil {
				fmt.Printf("Invalid task id: %v\n", err)
				return
			}

			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			ctx := context.Background()
			if _, err := app.requireSession(ctx); err != nil {
				return
			}

			task, err := app.tasks.FindInCorpus(ctx, id)
			if err != nil {
				fmt.Printf("Cannot accept: %v\n", err)
				return
			}

			app.acceptance.Mount(ctx)
			app.awaitPermissionState(200 * time.Millisecond)

			pos, err := app.acceptance.Accept(ctx, task)
			if err != nil {
				if errors.Is(err, entities.ErrConsentDeclined) {
					fmt.Println("Cancelled.")
				}
				// Permission and location errors were already surfaced as
				// notifications.
				return
			}

			fmt.Printf("Your location: (%.4f, %.4f)\n", pos.Latitude, pos.Longitude)

			// Keep the process alive long enough for the deferred next-steps
			// notification to land.
			time.Sleep(app.cfg.UX.FollowUpDelay + 100*time.Millisecond)
		},
	}
}

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show local store contents and this run's counters",
		Run: func(cmd *cobra.Command, args []string) {
			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			ctx := context.Background()

			if session, err := app.sessions.Current(ctx); err == nil {
				fmt.Printf("Session: %s <%s> — %s\n", session.Name, session.Email, session.Location)
				if own, err := app.tasks.PostedBy(ctx, session); err == nil {
					fmt.Printf("Your posted tasks: %d\n", len(own))
				}
			} else {
				fmt.Println("Session: none")
			}

			lines, err := app.metrics.Snapshot()
			if err != nil {
				fmt.Printf("Metrics unavailable: %v\n", err)
				return
			}
			fmt.Println("Counters (this run):")
			for _, line := range lines {
				fmt.Printf("  %s\n", line)
			}
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Sahaara version",
		Run: func(cmd *cobra.Command, args []string) {
			app, err := newApp()
			if err != nil {
				log.Fatalf("Failed to start: %v", err)
			}
			defer app.close()

			fmt.Printf("%s %s (%s)\n", app.cfg.App.Name, app.cfg.App.Version, app.cfg.App.Environment)
		},
	}
}
