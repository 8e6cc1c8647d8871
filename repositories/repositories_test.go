package repositories

import (
	"testing"
	"time"

	"chat-bootstrap/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Record_And_List_Users(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	at := time.Now().UTC()
	users := []domain.User{
		{ID: uuid.New(), Name: "Ada", CreatedAt: at, PasswordHash: "$argon2id$a", About: "first"},
		{ID: uuid.New(), Name: "Grace", CreatedAt: at.Add(time.Second), PasswordHash: "$argon2id$b", About: "second"},
	}
	for _, user := range users {
		req.NoError(repository.StoreUser(user))
	}

	fetched, err := repository.ListUsers()
	req.NoError(err)
	req.Len(fetched, len(users))
	// Keys are display names, so listing comes back name-ordered.
	req.Equal(users[0], fetched[0])
	req.Equal(users[1], fetched[1])
}

func Test_Record_And_List_Conversations_Chronologically(t *testing.T) {
	req := require.New(t)
	repository := NewConversationRepository(openTestDB(t))

	owner := uuid.New()
	at := time.Now().UTC()
	conversations := []domain.Conversation{
		{ID: uuid.New(), OwnerID: owner, Title: "Conversation_1", CreatedAt: at},
		{ID: uuid.New(), OwnerID: owner, Title: "Conversation_2", CreatedAt: at.Add(time.Minute)},
		{ID: uuid.New(), OwnerID: owner, Title: "Conversation_3", CreatedAt: at.Add(2 * time.Minute)},
	}
	// Store out of order; the padded-timestamp key restores it.
	for _, i := range []int{2, 0, 1} {
		req.NoError(repository.StoreConversation(conversations[i]))
	}

	fetched, err := repository.ListConversations()
	req.NoError(err)
	req.Equal(conversations, fetched)
}

func Test_Record_And_List_Messages_Chronologically(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t))

	conversation, author := uuid.New(), uuid.New()
	at := time.Now().UTC()
	messages := []domain.Message{
		{ID: uuid.New(), ConversationID: conversation, AuthorID: author, Content: "first", CreatedAt: at},
		{ID: uuid.New(), ConversationID: conversation, AuthorID: author, Content: "second", CreatedAt: at.Add(time.Second)},
		{ID: uuid.New(), ConversationID: conversation, AuthorID: author, Content: "third", CreatedAt: at.Add(2 * time.Second)},
	}
	for _, i := range []int{1, 2, 0} {
		req.NoError(repository.StoreMessage(messages[i]))
	}

	fetched, err := repository.ListMessages()
	req.NoError(err)
	req.Equal(messages, fetched)
}
