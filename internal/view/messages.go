package view

import (
	"github.com/google/uuid"

	"ragview/internal/api"
)

// Kind classifies a chat message.
type Kind string

const (
	KindUser      Kind = "user"
	KindAssistant Kind = "assistant"
	KindSystem    Kind = "system"
	KindWarning   Kind = "warning"
	KindError     Kind = "error"
	KindLoading   Kind = "loading"
)

// Message is one entry in the chat feed. Sources are only set on
// assistant messages.
type Message struct {
	ID      string
	Kind    Kind
	Content string
	Sources []api.QuerySource
}

func newMessage(kind Kind, content string) Message {
	return Message{ID: uuid.NewString(), Kind: kind, Content: content}
}
