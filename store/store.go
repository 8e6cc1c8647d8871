// Package store is the process-wide bootstrap data layer: an in-memory
// view of users, conversations and messages that seeds itself with a
// consistent synthetic dataset when the durable backend starts empty.
// Every entity is written through the sink before it becomes visible
// in memory.
package store

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"chat-bootstrap/domain"
	"chat-bootstrap/errors"
	"chat-bootstrap/sink"

	"github.com/google/uuid"
)

// Config controls synthetic seeding. Counts are only consulted when
// EnableSyntheticData is set. UserCount must not exceed NamePoolSize.
type Config struct {
	EnableSyntheticData bool
	UserCount           int
	ConversationCount   int
	MessageCount        int
}

// Store holds the in-memory collections and the two user indexes.
// Construct exactly one per process with New, hand the same instance to
// every consumer, and call Bootstrap before serving anything that
// depends on it.
type Store struct {
	cfg  Config
	sink sink.Sink
	log  *slog.Logger

	once    sync.Once
	bootErr error

	mu            sync.RWMutex
	usersByID     map[uuid.UUID]domain.User
	usersByName   map[string]domain.User
	conversations []domain.Conversation
	messages      []domain.Message
}

func New(cfg Config, s sink.Sink, log *slog.Logger) *Store {
	return &Store{
		cfg:         cfg,
		sink:        s,
		log:         log,
		usersByID:   make(map[uuid.UUID]domain.User),
		usersByName: make(map[string]domain.User),
	}
}

// Bootstrap runs the seeding phases at most once, no matter how many
// callers race on first access. The sync.Once both guards the single
// run and publishes its writes to every later caller; the result,
// success or failure, is cached and replayed. A failed bootstrap
// leaves the store empty of any entity whose write-through did not
// complete and must be treated as fatal by the caller.
func (s *Store) Bootstrap() error {
	s.once.Do(func() {
		s.bootErr = s.seed()
	})
	return s.bootErr
}

// AllUsersByID returns a snapshot of the identifier index.
func (s *Store) AllUsersByID() map[uuid.UUID]domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.usersByID)
}

// AllUsersByName returns a snapshot of the display-name index.
func (s *Store) AllUsersByName() map[string]domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.usersByName)
}

// AllConversations returns a snapshot of every conversation in
// insertion order.
func (s *Store) AllConversations() []domain.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.conversations)
}

// AllMessages returns a snapshot of every message in insertion order.
func (s *Store) AllMessages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.messages)
}

func (s *Store) UserByID(id uuid.UUID) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.usersByID[id]
	return user, ok
}

func (s *Store) UserByName(name string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.usersByName[name]
	return user, ok
}

// CreateUser registers an account outside seeding, on behalf of the
// request layer. The user is durable before it appears in either
// index, and both indexes are updated under the same lock so they can
// never diverge.
func (s *Store) CreateUser(name, passwordHash, about string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usersByName[name]; taken {
		return domain.User{}, fmt.Errorf("%w: %q", errors.ErrNameTaken, name)
	}
	user := domain.User{
		ID:           uuid.New(),
		Name:         name,
		CreatedAt:    time.Now().UTC(),
		PasswordHash: passwordHash,
		About:        about,
	}
	if err := s.sink.WriteUser(user); err != nil {
		return domain.User{}, fmt.Errorf("%w: user %q: %v", errors.ErrWriteThrough, name, err)
	}
	s.usersByID[user.ID] = user
	s.usersByName[user.Name] = user
	return user, nil
}

// CreateConversation opens a thread owned by an existing user.
func (s *Store) CreateConversation(ownerID uuid.UUID, title string) (domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usersByID[ownerID]; !ok {
		return domain.Conversation{}, fmt.Errorf("%w: owner %s", errors.ErrUnknownUser, ownerID)
	}
	conversation := domain.Conversation{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sink.WriteConversation(conversation); err != nil {
		return domain.Conversation{}, fmt.Errorf("%w: conversation %q: %v", errors.ErrWriteThrough, title, err)
	}
	s.conversations = append(s.conversations, conversation)
	return conversation, nil
}

// CreateMessage posts to an existing conversation on behalf of an
// existing author.
func (s *Store) CreateMessage(conversationID, authorID uuid.UUID, content string) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(content) == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}
	if _, ok := s.usersByID[authorID]; !ok {
		return domain.Message{}, fmt.Errorf("%w: author %s", errors.ErrUnknownUser, authorID)
	}
	if !s.hasConversationLocked(conversationID) {
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrUnknownConversation, conversationID)
	}
	message := domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		AuthorID:       authorID,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.sink.WriteMessage(message); err != nil {
		return domain.Message{}, fmt.Errorf("%w: message by %s: %v", errors.ErrWriteThrough, authorID, err)
	}
	s.messages = append(s.messages, message)
	return message, nil
}

// hasConversationLocked scans the conversation list. The store keeps
// no index beyond the two user maps, and the list stays small enough
// that a scan is fine for the request layer's precondition check.
func (s *Store) hasConversationLocked(id uuid.UUID) bool {
	return slices.ContainsFunc(s.conversations, func(c domain.Conversation) bool {
		return c.ID == id
	})
}
