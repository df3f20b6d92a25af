package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/k12345663/Shop-Mauli/internal/rent"
)

// PaymentNotification is the summary pushed to the owner's chat for every
// recorded or corrected payment.
type PaymentNotification struct {
	RenterName  string
	RenterCode  string
	PeriodMonth string
	Status      rent.Status
	Expected    float64
	Received    float64
	PaymentMode string
	Advance     bool
}

// Notifier dispatches payment notifications. Delivery is fire-and-forget:
// callers log failures and never propagate them into the payment result.
type Notifier interface {
	PaymentRecorded(ctx context.Context, n PaymentNotification) error
}

// BotNotifier sends messages through the Telegram Bot API.
type BotNotifier struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

func NewBotNotifier(token, chatID string) *BotNotifier {
	return &BotNotifier{
		token:   token,
		chatID:  chatID,
		baseURL: "https://api.telegram.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (b *BotNotifier) PaymentRecorded(ctx context.Context, n PaymentNotification) error {
	return b.send(ctx, FormatPaymentMessage(n))
}

func (b *BotNotifier) send(ctx context.Context, text string) error {
	payload := map[string]interface{}{
		"chat_id":    b.chatID,
		"text":       text,
		"parse_mode": "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", b.baseURL, b.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram sendMessage returned %d: %s", resp.StatusCode, data)
	}
	return nil
}

// FormatPaymentMessage renders the HTML message body for one payment.
func FormatPaymentMessage(n PaymentNotification) string {
	header := "Rent Collected"
	if n.Advance {
		header = "Advance Distributed"
	}

	var icon string
	switch n.Status {
	case rent.StatusPaid:
		icon = "✅"
	case rent.StatusPartial:
		icon = "⚠️"
	default:
		icon = "❌"
	}

	return fmt.Sprintf(
		"<b>%s</b>\n%s <b>%s</b> (%s)\nPeriod: %s\nReceived: ₹%.2f of ₹%.2f\nMode: %s\nStatus: %s",
		header, icon, n.RenterName, n.RenterCode, n.PeriodMonth,
		n.Received, n.Expected, n.PaymentMode, n.Status,
	)
}

// NopNotifier is used when Telegram credentials are not configured.
type NopNotifier struct{}

func (NopNotifier) PaymentRecorded(context.Context, PaymentNotification) error { return nil }

// New returns a bot notifier when credentials are present, otherwise a no-op.
func New(token, chatID string) Notifier {
	if token == "" || chatID == "" {
		return NopNotifier{}
	}
	return NewBotNotifier(token, chatID)
}
