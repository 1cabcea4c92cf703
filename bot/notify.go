package bot

import (
	"time"

	"legrazie-orders/models"
	"legrazie-orders/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier mirrors new orders into the restaurant's admin Telegram chat.
// The user-facing channel stays the WhatsApp deep link; this is a
// server-side convenience so the staff sees saved orders immediately.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{api: api, chatID: chatID}, nil
}

func (n *Notifier) NotifyNewOrder(orderID int64, in models.CreateOrderInput, at time.Time) error {
	msg := tgbotapi.NewMessage(n.chatID, services.FormatOrderMessage(orderID, in, at))
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := n.api.Send(msg)
	return err
}
