// Package webhook implementa notify.Notifier avisando a una URL
// externa tras cada write confirmado. Reemplaza el event-bus global
// del diseño anterior por un suscriptor explícito e inyectado.
package webhook

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"dog-walk-tracker/internal/platform/httpclient"
	"dog-walk-tracker/internal/platform/logger"
)

var ErrInvalidURL = errors.New("webhook: invalid url")

type Notifier struct {
	client *httpclient.Client
	url    string
	log    logger.Logger
}

func New(rawURL string, log logger.Logger) (*Notifier, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrInvalidURL
	}
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, ErrInvalidURL
	}

	return &Notifier{
		client: httpclient.New(httpclient.DefaultTimeout),
		url:    rawURL,
		log:    log,
	}, nil
}

type payload struct {
	Topic string    `json:"topic"`
	At    time.Time `json:"at"`
}

// DataChanged es best-effort: una falla se loguea y nada más.
// El que escribió ya recibió su 2xx; el suscriptor refetchea cuando pueda.
func (n *Notifier) DataChanged(ctx context.Context, topic string) {
	err := n.client.PostJSON(ctx, n.url, payload{
		Topic: topic,
		At:    time.Now().UTC(),
	}, nil)
	if err != nil && n.log != nil {
		n.log.Warn("webhook notify failed", map[string]any{
			"topic": topic,
			"err":   err.Error(),
		})
	}
}
