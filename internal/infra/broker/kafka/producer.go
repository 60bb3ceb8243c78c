package kafka

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"stayview/internal/app/calendar"
)

type Producer struct {
	sync sarama.SyncProducer
}

func NewProducer(brokers []string, cfg *sarama.Config) (*Producer, error) {
	if cfg == nil {
		cfg = sarama.NewConfig()
	}
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	sync, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{sync: sync}, nil
}

func (p *Producer) Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error {
	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: hs,
	}
	_, _, err := p.sync.SendMessage(msg)
	return err
}

func (p *Producer) Close() error {
	if p.sync == nil {
		return nil
	}
	return p.sync.Close()
}

// EventPublisher ships widget calendar events to a single topic, keyed by
// session id so one session's events stay ordered within a partition.
type EventPublisher struct {
	Producer *Producer
	Topic    string
}

func (e EventPublisher) Publish(ctx context.Context, event calendar.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	headers := map[string]string{"kind": string(event.Kind)}
	return e.Producer.Publish(ctx, e.Topic, event.SessionID, payload, headers)
}

var _ calendar.EventPublisher = EventPublisher{}
