package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/dnwe/otelsarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/tradingiq/bybit-client/types"
)

var tracer = otel.Tracer("bybit-client/sink")

// KafkaConfig configures the Kafka sink. Zero Timeout, Acks and Compression
// fall back to 10s, "all" and "none".
type KafkaConfig struct {
	Brokers     []string      `mapstructure:"brokers"`
	Topic       string        `mapstructure:"topic"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Acks        string        `mapstructure:"acks"`
	Compression string        `mapstructure:"compression"`
}

func (c *KafkaConfig) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Acks == "" {
		c.Acks = "all"
	}
	if c.Compression == "" {
		c.Compression = "none"
	}
}

func saramaConfig(c KafkaConfig) (*sarama.Config, error) {
	sc := sarama.NewConfig()

	switch strings.ToLower(c.Acks) {
	case "all":
		sc.Producer.RequiredAcks = sarama.WaitForAll
	case "leader":
		sc.Producer.RequiredAcks = sarama.WaitForLocal
	case "none":
		sc.Producer.RequiredAcks = sarama.NoResponse
	default:
		return nil, fmt.Errorf("kafka sink: invalid acks %q", c.Acks)
	}

	switch strings.ToLower(c.Compression) {
	case "none":
		sc.Producer.Compression = sarama.CompressionNone
	case "gzip":
		sc.Producer.Compression = sarama.CompressionGZIP
	case "snappy":
		sc.Producer.Compression = sarama.CompressionSnappy
	case "lz4":
		sc.Producer.Compression = sarama.CompressionLZ4
	case "zstd":
		sc.Producer.Compression = sarama.CompressionZSTD
	default:
		return nil, fmt.Errorf("kafka sink: invalid compression %q", c.Compression)
	}

	sc.Producer.Return.Successes = true
	sc.Producer.Return.Errors = true
	sc.Producer.Timeout = c.Timeout
	return sc, nil
}

// Kafka publishes events as JSON records keyed by event kind.
type Kafka struct {
	topic    string
	producer sarama.SyncProducer
	logger   *zap.Logger
}

func NewKafka(cfg KafkaConfig, logger *zap.Logger) (*Kafka, error) {
	cfg.applyDefaults()
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka sink: brokers required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka sink: topic required")
	}

	sc, err := saramaConfig(cfg)
	if err != nil {
		return nil, err
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("kafka sink: new producer: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Kafka sink ready",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic))
	return newKafka(producer, sc, cfg.Topic, logger), nil
}

func newKafka(producer sarama.SyncProducer, sc *sarama.Config, topic string, logger *zap.Logger) *Kafka {
	return &Kafka{
		topic:    topic,
		producer: otelsarama.WrapSyncProducer(sc, producer),
		logger:   logger,
	}
}

func (k *Kafka) Publish(ctx context.Context, event types.Event) error {
	kind := string(event.EventKind())
	ctx, span := tracer.Start(ctx, "kafka.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.destination", k.topic),
			attribute.String("bybit.event_kind", kind),
		))
	defer span.End()

	value, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to marshal %s event: %w", kind, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(kind),
		Value: sarama.ByteEncoder(value),
	}
	// The otelsarama producer span picks its parent from the headers.
	otel.GetTextMapPropagator().Inject(ctx, otelsarama.NewProducerMessageCarrier(msg))

	partition, offset, err := k.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		k.logger.Error("Failed to publish event",
			zap.String("topic", k.topic),
			zap.String("kind", kind),
			zap.Error(err))
		return fmt.Errorf("failed to publish %s event: %w", kind, err)
	}

	k.logger.Debug("Published event",
		zap.String("topic", k.topic),
		zap.String("kind", kind),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (k *Kafka) Close() error {
	return k.producer.Close()
}
