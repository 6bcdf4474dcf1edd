package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-fluxmud/internal/engine"
)

type published struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	msgs []published
	err  error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, published{subject: subject, data: data})
	return nil
}

func TestPublisher(t *testing.T) {
	tests := map[string]struct {
		send       func(p *Publisher) error
		expSubject string
		expText    string
	}{
		"player": {
			send: func(p *Publisher) error {
				return p.SendPlayer(context.Background(), "goku", engine.Notification{Kind: engine.KindSystemText, PlayerId: "goku", Text: "hi"})
			},
			expSubject: "player-goku",
			expText:    "hi",
		},
		"group": {
			send: func(p *Publisher) error {
				return p.Broadcast(context.Background(), "world", engine.Notification{Kind: engine.KindRoomBroadcast, Group: "world", Sender: "Goku", Text: "hello"})
			},
			expSubject: "group-world",
			expText:    "hello",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fake := &fakePublisher{}

			if err := tt.send(NewPublisher(fake)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "messages", len(fake.msgs), 1)
			testutil.AssertEqual(t, "subject", fake.msgs[0].subject, tt.expSubject)

			var n engine.Notification
			if err := json.Unmarshal(fake.msgs[0].data, &n); err != nil {
				t.Fatalf("decoding: %v", err)
			}
			testutil.AssertEqual(t, "text", n.Text, tt.expText)
		})
	}
}

func TestPublisher_Error(t *testing.T) {
	p := NewPublisher(&fakePublisher{err: errors.New("down")})

	err := p.SendPlayer(context.Background(), "goku", engine.Notification{Kind: engine.KindSystemText})

	testutil.AssertErrorContains(t, err, "publishing to player-goku: down")
}

func TestNatsServer_NotStarted(t *testing.T) {
	s, err := NewNatsServer(WithPort(-1))
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}

	_, err = s.Subscribe("player-goku", func([]byte) {})
	testutil.AssertEqual(t, "subscribe", errors.Is(err, ErrNotStarted), true)
	testutil.AssertEqual(t, "publish", errors.Is(s.Publish("player-goku", nil), ErrNotStarted), true)
}

func TestNatsServer_PublishSubscribe(t *testing.T) {
	s, err := NewNatsServer(WithPort(-1), WithStartTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	select {
	case <-s.Ready():
	case err := <-done:
		t.Fatalf("server stopped: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server never became ready")
	}

	got := make(chan engine.Notification, 1)
	unsub, err := s.Subscribe(PlayerSubject("goku"), func(data []byte) {
		var n engine.Notification
		if err := json.Unmarshal(data, &n); err == nil {
			got <- n
		}
	})
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer unsub()

	err = NewPublisher(s).SendPlayer(ctx, "goku", engine.Notification{Kind: engine.KindSystemText, Text: "over the wire"})
	if err != nil {
		t.Fatalf("sending: %v", err)
	}

	select {
	case n := <-got:
		testutil.AssertEqual(t, "text", n.Text, "over the wire")
	case <-time.After(5 * time.Second):
		t.Fatal("notification never arrived")
	}
}
