package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chat-bootstrap/internal"
	"chat-bootstrap/repositories"
	"chat-bootstrap/services"
	"chat-bootstrap/sink"
	"chat-bootstrap/store"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and
// centralizes error reporting so deferred cleanup always executes.
// Nothing is served until Bootstrap has fully succeeded: a failed or
// partial seeding must never be observable by a request.
func run() error {
	// 1. Configuration & Logger (.env is optional, real environments
	// set variables directly)
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Persistence write-through sink
	userRepository := repositories.NewUserRepository(db)
	diskSink := sink.NewDiskSink(
		userRepository,
		repositories.NewConversationRepository(db),
		repositories.NewMessageRepository(db),
		log,
	)

	// Synthetic data is only for fresh installs: if durable users
	// already exist, seeding is skipped regardless of configuration.
	// The check lives here, not in the store, so the store's sink
	// stays write-only.
	enableSynthetic := config.EnableSyntheticData
	if enableSynthetic {
		existing, err := userRepository.ListUsers()
		if err != nil {
			return fmt.Errorf("inspecting existing data: %w", err)
		}
		if len(existing) > 0 {
			log.Info("Persisted users found, skipping synthetic seeding", "users", len(existing))
			enableSynthetic = false
		}
	}

	// 4. Bootstrap data layer
	dataStore := store.New(store.Config{
		EnableSyntheticData: enableSynthetic,
		UserCount:           config.UserCount,
		ConversationCount:   config.ConversationCount,
		MessageCount:        config.MessageCount,
	}, diskSink, log)

	if err := dataStore.Bootstrap(); err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	// 5. Request layer
	authService := services.NewAuthService(dataStore, config.AuthTokenDuration)
	internal.StartDebugServer(dataStore, authService, config.DebugPort, log)
	log.Info("chat-bootstrap ready",
		"users", len(dataStore.AllUsersByID()),
		"conversations", len(dataStore.AllConversations()),
		"messages", len(dataStore.AllMessages()),
		"debug_port", config.DebugPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("Shutting down...")
	return nil
}
