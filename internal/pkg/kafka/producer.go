package kafka

import (
	"Quizfeed/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

const (
	EventPostCreated = "post.created"
	EventVideoGotIt  = "video.got-it"
	EventVideoScored = "video.scored"
)

// FeedEvent 下游消费的领域事件
type FeedEvent struct {
	Type       string   `json:"type"`
	UserID     string   `json:"user_id"`
	PostID     string   `json:"post_id"`
	QuestionID string   `json:"question_id,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	OccurredAt int64    `json:"occurred_at"`
}

type EventProducer interface {
	Publish(ctx context.Context, event *FeedEvent) error
	Close() error
}

type eventProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

// NewEventProducer 构造同步生产者；kafka.enable 为 false 时返回 noop 实现
func NewEventProducer(cfg *config.Config) (EventProducer, error) {
	if !cfg.Kafka.Enable {
		log.Info("Kafka disabled, feed events will not be published")
		return &noopProducer{}, nil
	}

	saramaCfg := newSaramaConfig(cfg.Kafka)
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &eventProducerImpl{
		producer: producer,
		topic:    cfg.Kafka.Topics.FeedEvents,
	}, nil
}

func (s *eventProducerImpl) Publish(ctx context.Context, event *FeedEvent) error {
	if event.OccurredAt == 0 {
		event.OccurredAt = time.Now().Unix()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.PostID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "Feed event published",
		"type", event.Type,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (s *eventProducerImpl) Close() error {
	return s.producer.Close()
}

type noopProducer struct{}

func (s *noopProducer) Publish(ctx context.Context, event *FeedEvent) error {
	return nil
}

func (s *noopProducer) Close() error {
	return nil
}
