// Command seed populates the document store with sample events and
// users for local development.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/eventbook/server/internal/config"
	"github.com/eventbook/server/internal/domain/events"
	"github.com/eventbook/server/internal/domain/users"
	mongostore "github.com/eventbook/server/internal/storage/mongo"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var sampleEvents = []events.EventInput{
	{Title: "Meetup", Description: "Tech talk", Price: "12.50", Date: "2024-05-01"},
	{Title: "Concert", Description: "Live music downtown", Price: 25.0, Date: "2024-06-15T19:30:00Z"},
	{Title: "Workshop", Description: "Hands-on Go workshop", Price: 0, Date: "2024-07-20"},
}

func main() {
	var (
		eventCount int
		userCount  int
		password   string
	)

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Insert sample events and users into the store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), eventCount, userCount, password)
		},
	}
	root.Flags().IntVar(&eventCount, "events", len(sampleEvents), "number of events to insert")
	root.Flags().IntVar(&userCount, "users", 3, "number of users to insert")
	root.Flags().StringVar(&password, "password", "changeme", "password for seeded users")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, eventCount, userCount int, password string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongostore.Connect(connectCtx, cfg.Database.URI)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo, err := mongostore.NewRepository(client.Database(cfg.Database.Name))
	if err != nil {
		return err
	}
	if err := repo.EnsureIndexes(ctx); err != nil {
		return err
	}

	eventsSvc := events.NewService(repo.Events())
	for i := 0; i < eventCount; i++ {
		input := sampleEvents[i%len(sampleEvents)]
		created, err := eventsSvc.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("seed event %q: %w", input.Title, err)
		}
		fmt.Printf("event %s %q\n", created.ID, created.Title)
	}

	usersSvc := users.NewService(repo.Users())
	for i := 0; i < userCount; i++ {
		input := users.UserInput{
			Name:     fmt.Sprintf("Sample User %d", i+1),
			Email:    fmt.Sprintf("user%d@example.com", i+1),
			Password: password,
		}
		created, err := usersSvc.Create(ctx, input)
		if errors.Is(err, users.ErrDuplicateEmail) {
			fmt.Printf("user %s already exists, skipping\n", input.Email)
			continue
		}
		if err != nil {
			return fmt.Errorf("seed user %q: %w", input.Email, err)
		}
		fmt.Printf("user %s %s\n", created.ID, created.Email)
	}

	return nil
}
