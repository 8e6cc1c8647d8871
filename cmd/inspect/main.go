// Operator tool: dumps the durable dataset as tables, reading straight
// from BadgerDB without going through the in-memory store.
package main

import (
	"fmt"
	"os"
	"time"

	"chat-bootstrap/domain"
	"chat-bootstrap/repositories"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

type config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	var cfg config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	users, err := repositories.NewUserRepository(db).ListUsers()
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}
	conversations, err := repositories.NewConversationRepository(db).ListConversations()
	if err != nil {
		return fmt.Errorf("listing conversations: %w", err)
	}
	messages, err := repositories.NewMessageRepository(db).ListMessages()
	if err != nil {
		return fmt.Errorf("listing messages: %w", err)
	}

	printUsers(users)
	printConversations(conversations)
	printMessages(messages)

	color.Green.Printf("\n%d users, %d conversations, %d messages\n",
		len(users), len(conversations), len(messages))
	return nil
}

func printUsers(users []domain.User) {
	color.Bold.Println("Users")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Created"})
	for _, u := range users {
		table.Append([]string{shortID(u.ID.String()), u.Name, u.CreatedAt.Format(time.RFC3339)})
	}
	table.Render()
}

func printConversations(conversations []domain.Conversation) {
	color.Bold.Println("Conversations")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Owner", "Title", "Created"})
	for _, c := range conversations {
		table.Append([]string{
			shortID(c.ID.String()),
			shortID(c.OwnerID.String()),
			c.Title,
			c.CreatedAt.Format(time.RFC3339),
		})
	}
	table.Render()
}

func printMessages(messages []domain.Message) {
	color.Bold.Println("Messages")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Conversation", "Author", "Content"})
	for _, m := range messages {
		table.Append([]string{
			shortID(m.ID.String()),
			shortID(m.ConversationID.String()),
			shortID(m.AuthorID.String()),
			truncate(m.Content, 48),
		})
	}
	table.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
