package store

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"chat-bootstrap/auth"
	"chat-bootstrap/domain"
	"chat-bootstrap/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samber/lo/mutable"
)

const (
	// seedSecret is the credential every synthetic account is
	// provisioned with; Login accepts it against the stored hash.
	seedSecret  = "password"
	seedProfile = "Write about you..."

	// Content windows are at least minContentLen and strictly under
	// maxContentLen runes before clamping and trimming.
	minContentLen = 10
	maxContentLen = 100
)

// NamePoolSize is the number of distinct display names available to
// the user phase, and therefore the upper bound on UserCount.
var NamePoolSize = len(namePool)

// seed populates the store with synthetic data. Phases run strictly in
// order: users, then conversations, then messages, so every reference
// a later phase draws is guaranteed to resolve. The write lock is held
// for the whole run; readers either observe an empty store or the
// fully seeded one.
func (s *Store) seed() error {
	if !s.cfg.EnableSyntheticData {
		s.log.Debug("synthetic data disabled, store starts empty")
		return nil
	}
	if err := validateSeedConfig(s.cfg); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	if err := s.seedUsers(); err != nil {
		return err
	}
	if err := s.seedConversations(); err != nil {
		return err
	}
	if err := s.seedMessages(); err != nil {
		return err
	}
	s.log.Info("synthetic dataset seeded",
		"users", s.cfg.UserCount,
		"conversations", s.cfg.ConversationCount,
		"messages", s.cfg.MessageCount,
		"took", time.Since(started))
	return nil
}

// validateSeedConfig rejects, before any write-through happens, every
// configuration that could not produce a referentially consistent
// dataset.
func validateSeedConfig(cfg Config) error {
	switch {
	case cfg.UserCount < 0 || cfg.ConversationCount < 0 || cfg.MessageCount < 0:
		return fmt.Errorf("%w: counts must not be negative", errors.ErrConfiguration)
	case cfg.UserCount > len(namePool):
		return fmt.Errorf("%w: user count %d exceeds the %d available names",
			errors.ErrConfiguration, cfg.UserCount, len(namePool))
	case cfg.ConversationCount > 0 && cfg.UserCount == 0:
		return fmt.Errorf("%w: conversations need at least one user", errors.ErrConfiguration)
	case cfg.MessageCount > 0 && (cfg.UserCount == 0 || cfg.ConversationCount == 0):
		return fmt.Errorf("%w: messages need at least one user and one conversation", errors.ErrConfiguration)
	}
	return nil
}

// seedUsers draws UserCount names from a random permutation of the
// pool, without replacement, so display names come out pairwise
// distinct. Each user is durable before it enters the indexes.
func (s *Store) seedUsers() error {
	names := slices.Clone(namePool)
	mutable.Shuffle(names)

	for _, name := range names[:s.cfg.UserCount] {
		hash, err := auth.HashPassword(seedSecret)
		if err != nil {
			return fmt.Errorf("hashing seed credential: %w", err)
		}
		user := domain.User{
			ID:           uuid.New(),
			Name:         name,
			CreatedAt:    time.Now().UTC(),
			PasswordHash: hash,
			About:        seedProfile,
		}
		if err := s.sink.WriteUser(user); err != nil {
			return fmt.Errorf("%w: user %q: %v", errors.ErrWriteThrough, name, err)
		}
		s.usersByID[user.ID] = user
		s.usersByName[user.Name] = user
	}
	return nil
}

// seedConversations assigns each conversation a random owner from the
// already-seeded users and a 1-based sequence title.
func (s *Store) seedConversations() error {
	if s.cfg.ConversationCount > 0 && len(s.usersByID) == 0 {
		return fmt.Errorf("%w: conversation phase with no users", errors.ErrPhaseOrdering)
	}
	owners := slices.Collect(maps.Values(s.usersByID))

	for i := 1; i <= s.cfg.ConversationCount; i++ {
		conversation := domain.Conversation{
			ID:        uuid.New(),
			OwnerID:   lo.Sample(owners).ID,
			Title:     fmt.Sprintf("Conversation_%d", i),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.sink.WriteConversation(conversation); err != nil {
			return fmt.Errorf("%w: conversation %q: %v", errors.ErrWriteThrough, conversation.Title, err)
		}
		s.conversations = append(s.conversations, conversation)
	}
	return nil
}

// seedMessages pairs a random conversation with a random author and a
// random slice of the filler corpus.
func (s *Store) seedMessages() error {
	if s.cfg.MessageCount > 0 && (len(s.usersByID) == 0 || len(s.conversations) == 0) {
		return fmt.Errorf("%w: message phase with no users or conversations", errors.ErrPhaseOrdering)
	}
	authors := slices.Collect(maps.Values(s.usersByID))

	for i := 0; i < s.cfg.MessageCount; i++ {
		message := domain.Message{
			ID:             uuid.New(),
			ConversationID: lo.Sample(s.conversations).ID,
			AuthorID:       lo.Sample(authors).ID,
			Content:        messageContent(),
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.sink.WriteMessage(message); err != nil {
			return fmt.Errorf("%w: message %d: %v", errors.ErrWriteThrough, i, err)
		}
		s.messages = append(s.messages, message)
	}
	return nil
}

// messageContent slices a random contiguous window out of the filler
// corpus and trims surrounding whitespace. The corpus is plain ASCII,
// so byte indexing is safe.
func messageContent() string {
	start := rand.IntN(len(fillerCorpus) - maxContentLen)
	length := minContentLen + rand.IntN(maxContentLen-minContentLen)
	end := min(start+length, len(fillerCorpus))
	return strings.TrimSpace(fillerCorpus[start:end])
}

// namePool holds the distinct display names available to synthetic
// users, drawn from computing pioneers.
var namePool = []string{
	"Grace", "Ada", "Stanley", "Howard", "Frances", "John",
	"Henrietta", "Gertrude", "Charles", "Jean", "Kathleen", "Marlyn",
	"Ruth", "Irma", "Evelyn", "Margaret", "Ida", "Mary", "Dana",
	"Tim", "Corrado", "George", "Fred", "Nikolay", "Vannevar",
	"David", "Vint", "Karen",
}

// fillerCorpus feeds the message phase with plausible running text.
const fillerCorpus = "dolorem ipsum, quia dolor sit amet consectetur adipiscing velit, " +
	"sed quia non numquam do eius modi tempora incididunt, ut labore et dolore magnam " +
	"aliquam quaerat voluptatem. Ut enim ad minima veniam, quis nostrum exercitationem ullam " +
	"corporis suscipit laboriosam, nisi ut aliquid ex ea commodi consequatur? Quis autem vel eum " +
	"iure reprehenderit, qui in ea voluptate velit esse, quam nihil molestiae consequatur, vel illum, " +
	"qui dolorem eum fugiat, quo voluptas nulla pariatur"
