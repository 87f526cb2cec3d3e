package notify

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// WhatsAppCloud posts announcements through the Meta Cloud API. It is the
// session-less alternative to the linked-device channel: only a permanent
// token and a phone number ID are needed.
type WhatsAppCloud struct {
	Token   string
	PhoneID string
	To      string // destination phone, international format without +
	Client  *resty.Client
}

func NewWhatsAppCloud(token, phoneID, to string) *WhatsAppCloud {
	return &WhatsAppCloud{
		Token:   token,
		PhoneID: phoneID,
		To:      to,
		Client:  resty.New(),
	}
}

func (w *WhatsAppCloud) Send(ctx context.Context, message string) error {
	url := fmt.Sprintf("https://graph.facebook.com/v21.0/%s/messages", w.PhoneID)

	resp, err := w.Client.R().
		SetContext(ctx).
		SetAuthToken(w.Token).
		SetBody(map[string]interface{}{
			"messaging_product": "whatsapp",
			"to":                w.To,
			"type":              "text",
			"text":              map[string]string{"body": message},
		}).
		Post(url)

	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (w *WhatsAppCloud) Name() string { return "WhatsAppCloud" }
