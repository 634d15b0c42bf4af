// Package chat defines the chat-platform capability the relay depends on.
// How updates arrive (long polling, webhooks) is left to the implementation.
package chat

import "context"

// Update is a platform-neutral view of an incoming chat event.
type Update struct {
	ChatID   int64
	UserID   int64
	Username string
	Text     string
	Data     string
}

type HandlerFunc func(ctx context.Context, u Update) error

// Choice is one selectable option under a message. URL choices open a link
// instead of producing a callback.
type Choice struct {
	Label string
	Data  string
	URL   string
}

type Messenger interface {
	RegisterCommandHandler(command string, h HandlerFunc)
	// RegisterCallbackHandler routes callbacks whose data starts with prefix.
	// Routes are matched in registration order; an empty prefix matches everything.
	RegisterCallbackHandler(prefix string, h HandlerFunc)
	RegisterTextHandler(h HandlerFunc)

	SendMessage(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, png []byte, caption string) error
	SendChoices(ctx context.Context, chatID int64, text string, choices []Choice) error

	// Run receives updates and dispatches them until ctx is cancelled.
	Run(ctx context.Context) error
}
