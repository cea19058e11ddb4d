package email

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dlevchenko/airagency/internal/kafka"
)

type Sender struct {
	log zerolog.Logger
}

func NewSender(log zerolog.Logger) *Sender {
	return &Sender{log: log}
}

// Send delivers a notification for the event. Delivery is a log line for now;
// there is no SMTP relay in the deployment yet.
func (s *Sender) Send(ctx context.Context, event kafka.EntityEvent) error {
	if event.Email == "" {
		return nil
	}
	s.log.Info().
		Str("email", event.Email).
		Str("type", event.Type).
		Str("entity", event.Entity).
		Int64("entity_id", event.EntityID).
		Msg("send notification email")
	return nil
}
