package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Client publishes evaluation events and lets consumers tail them.
type Client interface {
	Publish(subject string, data interface{}) error
	Subscribe(subject string, handler func(subject string, data []byte)) error
	Close()
}

const publishTimeout = 5 * time.Second

// Option configures a NATSClient.
type Option func(*options)

type options struct {
	name   string
	maxAge time.Duration
}

// WithName sets the connection name reported to the NATS server.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithMaxAge overrides how long the event stream retains messages.
func WithMaxAge(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.maxAge = d
		}
	}
}

// NATSClient is a Client backed by a NATS connection. Events go through
// JetStream when the VENDOREVAL_EVENTS stream is available and fall back to
// core NATS otherwise.
type NATSClient struct {
	conn        *nats.Conn
	js          jetstream.JetStream
	streamReady bool
	subs        []*nats.Subscription
	logger      *slog.Logger
}

func NewNATSClient(ctx context.Context, url string, logger *slog.Logger, opts ...Option) (*NATSClient, error) {
	o := options{name: "vendoreval", maxAge: StreamMaxAge}
	for _, opt := range opts {
		opt(&o)
	}

	nc, err := nats.Connect(url,
		nats.Name(o.name),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("hermes disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("hermes reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	c := &NATSClient{conn: nc, js: js, logger: logger}
	if err := c.ensureStream(ctx, o.maxAge); err != nil {
		logger.Warn("failed to ensure stream, publishing without persistence", "stream", StreamName, "error", err)
	} else {
		c.streamReady = true
	}
	return c, nil
}

func (c *NATSClient) ensureStream(ctx context.Context, maxAge time.Duration) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{StreamSubjects},
		MaxAge:   maxAge,
	})
	return err
}

// Publish marshals data as JSON and sends it on subject.
func (c *NATSClient) Publish(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", subject, err)
	}
	if !c.streamReady {
		return c.conn.Publish(subject, payload)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if _, err := c.js.Publish(ctx, subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Subscribe delivers live messages on subject to handler.
func (c *NATSClient) Subscribe(subject string, handler func(string, []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	return nil
}

func (c *NATSClient) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	if err := c.conn.Drain(); err != nil {
		c.conn.Close()
	}
}
