package notification

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// Sender hands a formatted message to an external delivery channel and
// returns a delivery handle. Callers treat delivery as fire-and-forget.
type Sender interface {
	Send(ctx context.Context, message string) (string, error)
}

// whatsAppSender produces WhatsApp click-to-chat links addressed to the
// store's order-intake number.
type whatsAppSender struct {
	storePhone string
	logger     zerolog.Logger
}

// NewWhatsAppSender creates a sender targeting the given store number. The
// number is in international format without the leading plus.
func NewWhatsAppSender(storePhone string, logger zerolog.Logger) Sender {
	return &whatsAppSender{
		storePhone: storePhone,
		logger:     logger.With().Str("sender", "whatsapp").Logger(),
	}
}

// Send returns a wa.me deep link carrying the message.
func (s *whatsAppSender) Send(ctx context.Context, message string) (string, error) {
	if s.storePhone == "" {
		return "", fmt.Errorf("store WhatsApp number is not configured")
	}

	link := fmt.Sprintf("https://wa.me/%s?text=%s", s.storePhone, url.QueryEscape(message))

	s.logger.Debug().
		Str("store_phone", s.storePhone).
		Int("message_length", len(message)).
		Msg("generated WhatsApp link")

	return link, nil
}
