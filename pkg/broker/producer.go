package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const EventReferenceDataSeeded = "ReferenceDataSeeded"

type Producer struct {
	l           *slog.Logger
	w           *kafka.Writer
	seededTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:           l,
		w:           w,
		seededTopic: topic,
	}
}

type SeedCompletedEvent struct {
	Type       string    `json:"type"`
	Inserted   int       `json:"inserted"`
	FinishedAt time.Time `json:"finished_at"`
}

func seedCompletedMessage(topic string, inserted int, finishedAt time.Time) (kafka.Message, error) {
	b, err := json.Marshal(SeedCompletedEvent{
		Type:       EventReferenceDataSeeded,
		Inserted:   inserted,
		FinishedAt: finishedAt.UTC(),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(EventReferenceDataSeeded),
		Value: b,
		Topic: topic,
	}, nil
}

// SendSeedCompleted announces a finished seeding run. Delivery failures are
// logged only: consumers treat the event as a hint.
func (p *Producer) SendSeedCompleted(ctx context.Context, inserted int, finishedAt time.Time) {
	msg, err := seedCompletedMessage(p.seededTopic, inserted, finishedAt)
	if err != nil {
		p.l.ErrorContext(ctx, err.Error())
		return
	}

	err = p.w.WriteMessages(ctx, msg)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
