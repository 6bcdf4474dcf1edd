package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-fluxmud/internal/engine"
)

// PlayerSubject is the subject a player's session listens on.
func PlayerSubject(id string) string {
	return fmt.Sprintf("player-%s", id)
}

// GroupSubject is the subject every session of a broadcast group listens on.
func GroupSubject(group string) string {
	return fmt.Sprintf("group-%s", group)
}

type publisher interface {
	Publish(subject string, data []byte) error
}

// Publisher delivers engine notifications as JSON over NATS subjects.
type Publisher struct {
	pub publisher
}

func NewPublisher(pub publisher) *Publisher {
	return &Publisher{pub: pub}
}

func (p *Publisher) SendPlayer(_ context.Context, id string, n engine.Notification) error {
	return p.publish(PlayerSubject(id), n)
}

func (p *Publisher) Broadcast(_ context.Context, group string, n engine.Notification) error {
	return p.publish(GroupSubject(group), n)
}

func (p *Publisher) publish(subject string, n engine.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshalling %s notification: %w", n.Kind, err)
	}
	if err := p.pub.Publish(subject, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}
	return nil
}
