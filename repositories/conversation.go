package repositories

import (
	"chat-bootstrap/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IConversationRepository interface {
	StoreConversation(conversation domain.Conversation) error
	ListConversations() ([]domain.Conversation, error)
}

type ConversationRepository struct {
	db *badger.DB
}

func NewConversationRepository(db *badger.DB) IConversationRepository {
	return &ConversationRepository{db: db}
}

type conversationRecord struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"created_at"`
}

// StoreConversation persists a conversation in BadgerDB. The key is
// formatted as "conv:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if
//     two conversations are created at the same nanosecond.
func (c ConversationRepository) StoreConversation(conversation domain.Conversation) error {
	key := fmt.Sprintf("conv:%019d:%s", conversation.CreatedAt.UnixNano(), conversation.ID)
	data, err := json.Marshal(fromConversation(conversation))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// ListConversations returns every persisted conversation in creation
// order, courtesy of the padded timestamp in the key.
func (c ConversationRepository) ListConversations() ([]domain.Conversation, error) {
	raw, err := scanPrefix(c.db, "conv:")
	if err != nil {
		return nil, err
	}
	conversations := make([]domain.Conversation, 0, len(raw))
	for _, b := range raw {
		var record conversationRecord
		if err = json.Unmarshal(b, &record); err != nil {
			return nil, err
		}
		conversation, err := toConversation(record)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conversation)
	}
	return conversations, nil
}

func fromConversation(conversation domain.Conversation) conversationRecord {
	return conversationRecord{
		ID:        conversation.ID.String(),
		OwnerID:   conversation.OwnerID.String(),
		Title:     conversation.Title,
		CreatedAt: conversation.CreatedAt.UnixNano(),
	}
}

func toConversation(record conversationRecord) (domain.Conversation, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.Conversation{}, err
	}
	parsedOwner, err := uuid.Parse(record.OwnerID)
	if err != nil {
		return domain.Conversation{}, err
	}
	return domain.Conversation{
		ID:        parsedID,
		OwnerID:   parsedOwner,
		Title:     record.Title,
		CreatedAt: time.Unix(0, record.CreatedAt).UTC(),
	}, nil
}

// scanPrefix collects the values of every key under prefix, in key
// order. Values are copied out of the transaction before use.
func scanPrefix(db *badger.DB, prefix string) ([][]byte, error) {
	var raw [][]byte
	err := db.View(func(txn *badger.Txn) error {
		p := []byte(prefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				raw = append(raw, append([]byte(nil), val...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return raw, err
}
