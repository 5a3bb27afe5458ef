package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bloodlink/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// publishDelay bounds how long a request-created event waits for a batch to fill.
// Events are rare and donors are waiting on them.
const publishDelay = 10 * time.Millisecond

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicID   string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists before
// the binary starts serving.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = publishDelay

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topicID:   topicID,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishRequestCreated(ctx context.Context, event *service.RequestCreatedEvent) error {
	encoded, err := encodeRequestCreated(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       encoded.data,
		Attributes: encoded.attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish event %s to %s", event.EventID, p.topicID)
	}

	p.logger.InfoContext(ctx, "Request created event published",
		slog.String("event_id", event.EventID),
		slog.String("blood_request_id", event.Request.RequestID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
