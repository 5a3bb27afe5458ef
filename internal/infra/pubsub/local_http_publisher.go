package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"bloodlink/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// localSubscription names the simulated push subscription in local envelopes.
const localSubscription = "projects/local/subscriptions/request-created-sub"

// localHTTPPublisher posts events straight to the worker's push endpoint, for development
// without a Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushEnvelope is the body Google Pub/Sub posts to push endpoints.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher posting to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // a local worker runs the whole fan-out before answering
		},
		logger: logger,
	}
}

// PublishRequestCreated posts the event to the local worker the way a push subscription would.
func (p *localHTTPPublisher) PublishRequestCreated(ctx context.Context, event *service.RequestCreatedEvent) error {
	encoded, err := encodeRequestCreated(event)
	if err != nil {
		return err
	}

	var envelope PushEnvelope
	envelope.Subscription = localSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(encoded.data)
	envelope.Message.Attributes = encoded.attributes
	envelope.Message.MessageID = event.EventID
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.TraceID != "" {
		req.Header.Set(echo.HeaderXRequestID, event.TraceID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to post event %s", event.EventID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Request created event posted to local worker",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
		slog.String("blood_request_id", event.Request.RequestID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
