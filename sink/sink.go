//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=../mocks/mock_sink.go -package=mocks
package sink

import "chat-bootstrap/domain"

// Sink is the write-through persistence boundary of the store. The
// store only writes fully-formed entities and only observes pass or
// fail; it never reads, updates, or deletes through this interface.
type Sink interface {
	WriteUser(user domain.User) error
	WriteConversation(conversation domain.Conversation) error
	WriteMessage(message domain.Message) error
}
