package sink

import (
	"log/slog"
	"testing"
	"time"

	"chat-bootstrap/domain"
	"chat-bootstrap/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_DiskSink_WritesEveryEntityType(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	users := repositories.NewUserRepository(db)
	conversations := repositories.NewConversationRepository(db)
	messages := repositories.NewMessageRepository(db)
	diskSink := NewDiskSink(users, conversations, messages, slog.Default())

	at := time.Now().UTC()
	user := domain.User{ID: uuid.New(), Name: "Evelyn", CreatedAt: at, PasswordHash: "$argon2id$x", About: "hi"}
	conversation := domain.Conversation{ID: uuid.New(), OwnerID: user.ID, Title: "Conversation_1", CreatedAt: at}
	message := domain.Message{ID: uuid.New(), ConversationID: conversation.ID, AuthorID: user.ID, Content: "hello", CreatedAt: at}

	req.NoError(diskSink.WriteUser(user))
	req.NoError(diskSink.WriteConversation(conversation))
	req.NoError(diskSink.WriteMessage(message))

	storedUsers, err := users.ListUsers()
	req.NoError(err)
	req.Equal([]domain.User{user}, storedUsers)

	storedConversations, err := conversations.ListConversations()
	req.NoError(err)
	req.Equal([]domain.Conversation{conversation}, storedConversations)

	storedMessages, err := messages.ListMessages()
	req.NoError(err)
	req.Equal([]domain.Message{message}, storedMessages)
}
