package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/config"
	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderSaver interface {
	SaveOrder(ctx context.Context, order entities.Order) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DLQ пишем, пока не получится или не закончится ctx: коммит следующего сообщения сдвинул бы offset за это
var dlqRetry = utils.RetryConfig{
	MaxAttempts:  math.MaxInt,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     10 * time.Second,
	Multiplier:   2,
}

type kafkaHandler struct {
	dlqRetry utils.RetryConfig
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	saver    OrderSaver
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, saver OrderSaver) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaHandler(logger, reader, dlq, saver)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, saver OrderSaver) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		dlqRetry: dlqRetry,
		validate: newValidator(),
		saver:    saver,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handle(ctx, m); err != nil {
			// сообщение остаётся незакоммиченным, его перечитает следующий consumer
			h.logger.Error("stopping consumer, message not moved to DLQ",
				slog.Any("error", err), slog.Int64("offset", m.Offset))
			return
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// handle returns an error only when ctx ended before a bad message could be
// moved to the DLQ.
func (h *kafkaHandler) handle(ctx context.Context, m kafka.Message) error {
	ordersInProgress.Inc()
	defer ordersInProgress.Dec()

	start := time.Now()
	defer func() {
		orderProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	// В операции сохранения уже есть retry
	if err := h.handleSaveOrder(ctx, m); err != nil {
		ordersFailed.Inc()
		h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

		err := utils.Retry(ctx, h.dlqRetry, func() error {
			if err := h.WriteToDLQ(ctx, m); err != nil {
				dlqWriteErrors.Inc()
				h.logger.Warn("failed to write message to DLQ", slog.Any("error", err), slog.Int64("offset", m.Offset))
				return err
			}
			return nil
		})
		if err != nil {
			return err
		}
		ordersDLQ.Inc()
		return nil
	}

	ordersProcessed.Inc()
	return nil
}

func (h *kafkaHandler) handleSaveOrder(ctx context.Context, m kafka.Message) error {
	var order Order
	if err := json.Unmarshal(m.Value, &order); err != nil {
		return fmt.Errorf("failed to unmarshal order: %w", err)
	}

	if err := h.validate.Struct(order); err != nil {
		return fmt.Errorf("invalid order data: %w", err)
	}

	return h.saver.SaveOrder(ctx, OrderJSONToEntity(order))
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	return errors.Join(h.reader.Close(), h.dlq.Close())
}
