package channel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"

	_ "modernc.org/sqlite" // CGO-free driver
)

// WhatsAppChannel mirrors the digests to a WhatsApp group or channel through
// a linked device. Inbound text commands are forwarded to the dispatcher;
// there are no inline menus on this platform.
type WhatsAppChannel struct {
	client   *whatsmeow.Client
	store    *sqlstore.Container
	shutdown chan struct{}
	selfID   types.JID

	// BroadcastJID is the default destination for scheduled digests.
	BroadcastJID string
}

// NewWhatsAppChannel opens the session store and builds the client.
func NewWhatsAppChannel(dbPath, broadcastJID string) (*WhatsAppChannel, error) {
	dbLog := waLog.Stdout("Database", "ERROR", true)

	// WAL plus busy timeout avoids SQLITE_BUSY on the single-file store.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)
	container, err := sqlstore.New(context.Background(), "sqlite", dsn, dbLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	clientLog := waLog.Stdout("Client", "INFO", true)
	client := whatsmeow.NewClient(deviceStore, clientLog)

	return &WhatsAppChannel{
		client:       client,
		store:        container,
		shutdown:     make(chan struct{}),
		BroadcastJID: broadcastJID,
	}, nil
}

// Listen connects (showing a QR code on first run) and forwards inbound text.
func (wc *WhatsAppChannel) Listen(handler func(Envelope)) error {
	if wc.client.Store.ID == nil {
		qrChan, _ := wc.client.GetQRChannel(context.Background())
		if err := wc.client.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}

		fmt.Println("Escanea el código QR con WhatsApp para vincular el bot:")
		for evt := range qrChan {
			if evt.Event == "code" {
				qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
			} else {
				fmt.Println("Login event:", evt.Event)
			}
		}
	} else {
		if err := wc.client.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		wc.selfID = wc.client.Store.ID.ToNonAD()
		fmt.Printf("✅ [WhatsApp] Conectado como %s\n", wc.selfID)
	}

	wc.client.AddEventHandler(func(evt interface{}) {
		wc.handleEvent(evt, handler)
	})

	<-wc.shutdown
	return nil
}

// Stop disconnects the linked device.
func (wc *WhatsAppChannel) Stop() {
	if wc.client != nil {
		wc.client.Disconnect()
	}
	close(wc.shutdown)
}

// SendMessage delivers text to a JID or a bare phone number.
func (wc *WhatsAppChannel) SendMessage(chatID string, content string) error {
	jid, err := types.ParseJID(chatID)
	if err != nil {
		if strings.Contains(chatID, "@") {
			return fmt.Errorf("invalid JID: %w", err)
		}
		jid = types.NewJID(chatID, types.DefaultUserServer)
	}

	msg := &waProto.Message{
		Conversation: proto.String(content),
	}

	_, err = wc.client.SendMessage(context.Background(), jid, msg)
	return err
}

// Send posts to the broadcast destination; with Name it satisfies the
// notify.Notifier contract so scheduled digests fan out here too.
func (wc *WhatsAppChannel) Send(_ context.Context, message string) error {
	if wc.BroadcastJID == "" {
		return fmt.Errorf("WHATSAPP_CHANNEL_JID no configurado")
	}
	return wc.SendMessage(wc.BroadcastJID, message)
}

func (wc *WhatsAppChannel) Name() string { return "WhatsApp" }

func (wc *WhatsAppChannel) handleEvent(evt interface{}, handler func(Envelope)) {
	switch v := evt.(type) {
	case *events.Message:
		if v.Info.IsFromMe {
			return
		}

		var text string
		if v.Message.Conversation != nil {
			text = *v.Message.Conversation
		} else if v.Message.ExtendedTextMessage != nil && v.Message.ExtendedTextMessage.Text != nil {
			text = *v.Message.ExtendedTextMessage.Text
		} else {
			return
		}

		chatID := v.Info.Chat.String()

		env := Envelope{
			Platform:   "whatsapp",
			SenderID:   v.Info.Sender.User,
			SenderName: v.Info.PushName,
			ChatID:     chatID,
			Content:    text,
			Reply: func(replyText string) error {
				return wc.SendMessage(chatID, replyText)
			},
			MarkProcessing: func() error {
				return wc.client.SendChatPresence(context.Background(), v.Info.Chat, types.ChatPresenceComposing, types.ChatPresenceMediaText)
			},
		}

		if handler != nil {
			handler(env)
		}
	}
}
