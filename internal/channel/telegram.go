package channel

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/valyala/fasthttp"
)

// TelegramChannel wraps the bot API: long polling for commands and button
// taps, plus the outbound send methods the scheduler publishes through.
type TelegramChannel struct {
	bot         *telego.Bot
	stopPolling context.CancelFunc
}

// customLogger intercepts specific errors (like 409 Conflict).
type customLogger struct {
	debug bool
}

func (l *customLogger) Debugf(format string, args ...interface{}) {
	if l.debug {
		log.Printf("[Telego Debug] "+format, args...)
	}
}

func (l *customLogger) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if strings.Contains(msg, "Conflict: terminated by other getUpdates request") {
		fmt.Println("\n⚠️  [Telegram] Hay otra instancia del bot corriendo; esta se detiene para evitar el conflicto.")
		os.Exit(0)
	}
	log.Printf("⚠️ [Telego Error] %s", msg)
}

// NewTelegramChannel initializes the bot. The fasthttp client's read timeout
// must outlive the 60s long-polling timeout or requests die mid-poll.
func NewTelegramChannel(token string, debug bool) (*TelegramChannel, error) {
	fastHTTPClient := &fasthttp.Client{
		ReadTimeout:                   90 * time.Second,
		WriteTimeout:                  90 * time.Second,
		MaxIdleConnDuration:           90 * time.Second,
		NoDefaultUserAgentHeader:      true,
		DisableHeaderNamesNormalizing: true,
		Dial: (&fasthttp.TCPDialer{
			Concurrency:      4096,
			DNSCacheDuration: time.Hour,
		}).Dial,
	}

	bot, err := telego.NewBot(token,
		telego.WithLogger(&customLogger{debug: debug}),
		telego.WithFastHTTPClient(fastHTTPClient),
	)
	if err != nil {
		return nil, err
	}
	return &TelegramChannel{bot: bot}, nil
}

// SetCommands publishes the slash-command list shown in the chat UI.
func (t *TelegramChannel) SetCommands(ctx context.Context) error {
	return t.bot.SetMyCommands(ctx, &telego.SetMyCommandsParams{
		Commands: []telego.BotCommand{
			{Command: "menu", Description: "Abrir el menú interactivo"},
			{Command: "todo", Description: "Agenda completa del mes"},
			{Command: "semana", Description: "Agenda de la semana actual"},
			{Command: "dia", Description: "Actividades de un día: /dia 4 Enero"},
			{Command: "ayuda", Description: "Cómo usar el bot"},
		},
	})
}

// SendMessage posts Markdown text and returns the new message ID.
func (t *TelegramChannel) SendMessage(chatID int64, text string) (int, error) {
	msg, err := t.bot.SendMessage(context.Background(),
		tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeMarkdown))
	if err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

// SendMenu posts Markdown text with an inline keyboard attached.
func (t *TelegramChannel) SendMenu(chatID int64, text string, keyboard *telego.InlineKeyboardMarkup) (int, error) {
	msg, err := t.bot.SendMessage(context.Background(),
		tu.Message(tu.ID(chatID), text).
			WithParseMode(telego.ModeMarkdown).
			WithReplyMarkup(keyboard))
	if err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

// SendPhoto posts a local image with a Markdown caption.
func (t *TelegramChannel) SendPhoto(chatID int64, path, caption string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("no se pudo abrir la imagen %s: %w", path, err)
	}
	defer file.Close()

	_, err = t.bot.SendPhoto(context.Background(),
		tu.Photo(tu.ID(chatID), tu.File(file)).
			WithCaption(caption).
			WithParseMode(telego.ModeMarkdown))
	return err
}

// Listen starts long polling and converts every text message and callback
// query into an Envelope for the dispatcher.
func (t *TelegramChannel) Listen(handler func(Envelope)) {
	ctx, cancel := context.WithCancel(context.Background())
	t.stopPolling = cancel

	updates, err := t.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: 60,
	})
	if err != nil {
		log.Fatalf("⚠️ [Telegram] No se pudo iniciar el long polling: %v", err)
	}

	fmt.Println("✅ [Telegram] Canal iniciado, escuchando...")

	for update := range updates {
		switch {
		case update.Message != nil && update.Message.Text != "":
			go handler(t.messageEnvelope(update.Message))
		case update.CallbackQuery != nil:
			if env, ok := t.callbackEnvelope(update.CallbackQuery); ok {
				go handler(env)
			}
		}
	}
	fmt.Println("🛑 [Telegram] Long polling terminado")
}

func (t *TelegramChannel) messageEnvelope(msg *telego.Message) Envelope {
	chatID := msg.Chat.ID
	senderName := ""
	senderID := ""
	if msg.From != nil {
		senderName = msg.From.FirstName
		senderID = fmt.Sprintf("%d", msg.From.ID)
	}

	return Envelope{
		Platform:   "telegram",
		SenderID:   senderID,
		SenderName: senderName,
		ChatID:     fmt.Sprintf("%d", chatID),
		Content:    msg.Text,
		Reply: func(text string) error {
			_, err := t.SendMessage(chatID, text)
			return err
		},
		MarkProcessing: func() error {
			return t.bot.SendChatAction(context.Background(), tu.ChatAction(
				tu.ID(chatID),
				telego.ChatActionTyping,
			))
		},
		SendMenu: func(text string, keyboard *telego.InlineKeyboardMarkup) error {
			_, err := t.SendMenu(chatID, text, keyboard)
			return err
		},
	}
}

func (t *TelegramChannel) callbackEnvelope(cq *telego.CallbackQuery) (Envelope, bool) {
	// Message is optional: inline-mode taps carry no message to edit.
	if cq.Message == nil {
		return Envelope{}, false
	}
	chatID := cq.Message.GetChat().ID
	messageID := cq.Message.GetMessageID()

	return Envelope{
		Platform:   "telegram",
		SenderID:   fmt.Sprintf("%d", cq.From.ID),
		SenderName: cq.From.FirstName,
		ChatID:     fmt.Sprintf("%d", chatID),
		MessageID:  fmt.Sprintf("%d", messageID),
		Content:    cq.Data,
		IsCallback: true,
		Reply: func(text string) error {
			_, err := t.SendMessage(chatID, text)
			return err
		},
		AnswerCallback: func(text string) error {
			params := &telego.AnswerCallbackQueryParams{CallbackQueryID: cq.ID}
			if text != "" {
				params.Text = text
			}
			return t.bot.AnswerCallbackQuery(context.Background(), params)
		},
		SendMenu: func(text string, keyboard *telego.InlineKeyboardMarkup) error {
			_, err := t.SendMenu(chatID, text, keyboard)
			return err
		},
		EditMenu: func(text string, keyboard *telego.InlineKeyboardMarkup) error {
			_, err := t.bot.EditMessageText(context.Background(), &telego.EditMessageTextParams{
				ChatID:      tu.ID(chatID),
				MessageID:   messageID,
				Text:        text,
				ParseMode:   telego.ModeMarkdown,
				ReplyMarkup: keyboard,
			})
			return err
		},
		EditMenuMarkup: func(keyboard *telego.InlineKeyboardMarkup) error {
			_, err := t.bot.EditMessageReplyMarkup(context.Background(), &telego.EditMessageReplyMarkupParams{
				ChatID:      tu.ID(chatID),
				MessageID:   messageID,
				ReplyMarkup: keyboard,
			})
			return err
		},
	}, true
}

// Stop ends the long polling loop.
func (t *TelegramChannel) Stop() {
	if t.stopPolling != nil {
		fmt.Println("🛑 [Telegram] Canal detenido...")
		t.stopPolling()
	}
}
