package channel

import "github.com/mymmrac/telego"

// Envelope is the platform-neutral wrapper handed to the dispatcher for every
// inbound interaction, either a text message or a tapped inline button.
// The closures let the dispatcher answer without knowing the platform API;
// menu-related ones are nil on platforms without inline keyboards.
type Envelope struct {
	Platform   string
	SenderID   string
	SenderName string
	ChatID     string
	MessageID  string // message carrying the tapped button, "" for plain text
	Content    string // message text, or callback data for button taps
	IsCallback bool

	Reply          func(text string) error
	MarkProcessing func() error

	// AnswerCallback dismisses the button spinner, optionally with a toast.
	AnswerCallback func(text string) error
	// SendMenu posts a new message with an inline keyboard.
	SendMenu func(text string, keyboard *telego.InlineKeyboardMarkup) error
	// EditMenu rewrites the message that carried the tapped button.
	EditMenu func(text string, keyboard *telego.InlineKeyboardMarkup) error
	// EditMenuMarkup swaps only the keyboard, keeping the text (vote counters).
	EditMenuMarkup func(keyboard *telego.InlineKeyboardMarkup) error
}
