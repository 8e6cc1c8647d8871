package repositories

import (
	"chat-bootstrap/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	ListMessages() ([]domain.Message, error)
}

type MessageRepository struct {
	db *badger.DB
}

func NewMessageRepository(db *badger.DB) IMessageRepository {
	return &MessageRepository{db: db}
}

type messageRecord struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	AuthorID       string `json:"author_id"`
	Content        string `json:"content"`
	CreatedAt      int64  `json:"created_at"`
}

// StoreMessage persists a message under "msg:{timestamp_padded}:{uuid}",
// the same key discipline as conversations.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	key := fmt.Sprintf("msg:%019d:%s", message.CreatedAt.UnixNano(), message.ID)
	data, err := json.Marshal(fromMessage(message))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// ListMessages returns every persisted message in creation order.
func (m MessageRepository) ListMessages() ([]domain.Message, error) {
	raw, err := scanPrefix(m.db, "msg:")
	if err != nil {
		return nil, err
	}
	messages := make([]domain.Message, 0, len(raw))
	for _, b := range raw {
		var record messageRecord
		if err = json.Unmarshal(b, &record); err != nil {
			return nil, err
		}
		message, err := toMessage(record)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func fromMessage(message domain.Message) messageRecord {
	return messageRecord{
		ID:             message.ID.String(),
		ConversationID: message.ConversationID.String(),
		AuthorID:       message.AuthorID.String(),
		Content:        message.Content,
		CreatedAt:      message.CreatedAt.UnixNano(),
	}
}

func toMessage(record messageRecord) (domain.Message, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.Message{}, err
	}
	parsedConversation, err := uuid.Parse(record.ConversationID)
	if err != nil {
		return domain.Message{}, err
	}
	parsedAuthor, err := uuid.Parse(record.AuthorID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:             parsedID,
		ConversationID: parsedConversation,
		AuthorID:       parsedAuthor,
		Content:        record.Content,
		CreatedAt:      time.Unix(0, record.CreatedAt).UTC(),
	}, nil
}
