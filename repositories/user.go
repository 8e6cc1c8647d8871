package repositories

import (
	"chat-bootstrap/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	StoreUser(user domain.User) error
	ListUsers() ([]domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// userRecord is the durable layout of a User. Timestamps are stored as
// UnixNano so records sort and round-trip without timezone drift.
type userRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CreatedAt    int64  `json:"created_at"`
	PasswordHash string `json:"password_hash"`
	About        string `json:"about"`
}

// StoreUser persists a fully-formed user in BadgerDB. The key is the
// unique display name, which makes accidental double-registration a
// visible overwrite rather than a silent duplicate.
func (u UserRepository) StoreUser(user domain.User) error {
	data, err := json.Marshal(fromUser(user))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("user:"+user.Name), data)
	})
}

// ListUsers returns every persisted user, ordered by display name.
func (u UserRepository) ListUsers() ([]domain.User, error) {
	var raw [][]byte
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte("user:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
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
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(raw))
	for _, b := range raw {
		var record userRecord
		if err = json.Unmarshal(b, &record); err != nil {
			return nil, err
		}
		user, err := toUser(record)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func fromUser(user domain.User) userRecord {
	return userRecord{
		ID:           user.ID.String(),
		Name:         user.Name,
		CreatedAt:    user.CreatedAt.UnixNano(),
		PasswordHash: user.PasswordHash,
		About:        user.About,
	}
}

func toUser(record userRecord) (domain.User, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:           parsedID,
		Name:         record.Name,
		CreatedAt:    time.Unix(0, record.CreatedAt).UTC(),
		PasswordHash: record.PasswordHash,
		About:        record.About,
	}, nil
}
