package sink

import (
	"chat-bootstrap/domain"
	"chat-bootstrap/repositories"
	"log/slog"
)

// DiskSink forwards each entity to its BadgerDB repository.
type DiskSink struct {
	users         repositories.IUserRepository
	conversations repositories.IConversationRepository
	messages      repositories.IMessageRepository
	log           *slog.Logger
}

func NewDiskSink(
	users repositories.IUserRepository,
	conversations repositories.IConversationRepository,
	messages repositories.IMessageRepository,
	log *slog.Logger,
) DiskSink {
	return DiskSink{
		users:         users,
		conversations: conversations,
		messages:      messages,
		log:           log,
	}
}

func (d DiskSink) WriteUser(user domain.User) error {
	d.log.Debug("write-through", "entity", "user", "id", user.ID)
	return d.users.StoreUser(user)
}

func (d DiskSink) WriteConversation(conversation domain.Conversation) error {
	d.log.Debug("write-through", "entity", "conversation", "id", conversation.ID)
	return d.conversations.StoreConversation(conversation)
}

func (d DiskSink) WriteMessage(message domain.Message) error {
	d.log.Debug("write-through", "entity", "message", "id", message.ID)
	return d.messages.StoreMessage(message)
}
