// Package notify tells launch customers about changes to their launches.
package notify

import (
	"context"
	"log"
	"strings"

	"github.com/Domenick1991/missioncontrol/internal/kafka"
)

type Sender struct {
	logf func(format string, args ...any)
}

func NewSender() *Sender {
	return &Sender{logf: log.Printf}
}

func (s *Sender) Send(ctx context.Context, event kafka.LaunchEvent) error {
	msg, ok := Message(event)
	if !ok {
		return nil
	}
	for _, customer := range event.Customers {
		s.logf("notify %s: %s", customer, msg)
	}
	return nil
}

// Message renders the customer-facing text for event. Events that customers
// are not told about return false.
func Message(event kafka.LaunchEvent) (string, bool) {
	var b strings.Builder
	switch event.Type {
	case kafka.EventLaunchScheduled:
		b.WriteString("mission ")
		b.WriteString(event.Mission)
		b.WriteString(" scheduled on ")
		b.WriteString(event.Rocket)
		if event.Target != "" {
			b.WriteString(" to ")
			b.WriteString(event.Target)
		}
		if !event.LaunchDate.IsZero() {
			b.WriteString(" for ")
			b.WriteString(event.LaunchDate.Format("January 2, 2006"))
		}
	case kafka.EventLaunchAborted:
		b.WriteString("mission ")
		b.WriteString(event.Mission)
		b.WriteString(" aborted")
	default:
		return "", false
	}
	return b.String(), true
}
