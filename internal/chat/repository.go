package chat

import (
	"context"

	Message "friendzone/internal/chat/model"
)

type ChatRepository interface {
	// Append inserts the message into the conversation's log scored by its
	// timestamp. Append-only; nothing is ever updated or removed.
	Append(ctx context.Context, chatID string, msg *Message.Message) error
	// History returns the full log in ascending-timestamp store order,
	// every entry validated. The caller reverses for display.
	History(ctx context.Context, chatID string) ([]Message.Message, error)
}
