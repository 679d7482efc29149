// Package bark sends remote push notifications through a Bark server.
package bark

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/nocoo/skill-task-notifier/pkg/config"
	"github.com/nocoo/skill-task-notifier/pkg/logger"
	"github.com/nocoo/skill-task-notifier/pkg/severity"
)

const (
	// userAgent identifies the notifier to the Bark server.
	userAgent = "Claude-Task-Notifier/1.0"

	// requestTimeout bounds the push request.
	requestTimeout = 10 * time.Second

	// successCode is the application-level success code in the response body.
	successCode = 200
)

var (
	// ErrMissingKey is returned when bark_key is empty or whitespace-only.
	// The dispatcher treats it as a skip, not an error.
	ErrMissingKey = errors.New("bark_key is empty")

	// ErrPushRejected is returned when the server answers but does not
	// accept the push.
	ErrPushRejected = errors.New("push rejected")
)

// response is the Bark API response body.
type response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Sender delivers push notifications to a Bark server.
type Sender struct {
	cfg    *config.Config
	client *http.Client
	log    logger.Logger
}

// NewSender creates a Sender with the default HTTP client.
func NewSender(cfg *config.Config, log logger.Logger) *Sender {
	return NewSenderWithClient(cfg, &http.Client{Timeout: requestTimeout}, log)
}

// NewSenderWithClient creates a Sender with a custom HTTP client.
func NewSenderWithClient(cfg *config.Config, client *http.Client, log logger.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		client: client,
		log:    log,
	}
}

// Name returns the channel display name.
func (*Sender) Name() string {
	return "Bark"
}

// Send issues the push request. An empty key returns ErrMissingKey without
// any network call. An unknown severity keeps its raw lower-cased level in
// the query; only the icon and sound lookups fall back to the info entry.
func (s *Sender) Send(ctx context.Context, sev severity.Severity, message string) error {
	key := s.cfg.Key()
	if key == "" {
		return ErrMissingKey
	}

	fullURL := s.buildURL(key, sev, message)

	s.log.Debug("sending bark push", "level", sev.Tag())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return errors.Wrap(err, "building request")
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "connection error")
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrPushRejected, "HTTP %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "decoding response")
	}

	if body.Code != successCode {
		msg := body.Message
		if msg == "" {
			msg = "Unknown error"
		}

		return errors.Wrapf(ErrPushRejected, "%s", msg)
	}

	return nil
}

// buildURL constructs {server}/{key}/{escaped message}?group&icon&sound&level.
// The message path segment is percent-escaped (spaces become %20) while
// query values use the standard query encoding (spaces become +); the Bark
// server expects exactly this asymmetry.
func (s *Sender) buildURL(key string, sev severity.Severity, message string) string {
	params := url.Values{
		"group": {s.cfg.Group()},
		"icon":  {s.cfg.Icon(sev)},
		"sound": {sev.BarkSound()},
		"level": {sev.Tag()},
	}

	return fmt.Sprintf(
		"%s/%s/%s?%s",
		s.cfg.Server(),
		key,
		url.PathEscape(message),
		params.Encode(),
	)
}
