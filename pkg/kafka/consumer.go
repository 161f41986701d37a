package kafka

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

// MessageHandler handles messages from a specific topic.
type MessageHandler interface {
	Topic() string
	Handle(context.Context, []byte) error
}

// Consumer wraps a Kafka reader with a worker pool, bounded retries, and DLQ.
type Consumer struct {
	cfg      *ConsumerConfig
	readers  map[string]*kafka.Reader
	handlers map[string]MessageHandler
	stopChan chan struct{}
	msgChan  chan *message
	dlq      *kafka.Writer
	wg       sync.WaitGroup
	stopOnce sync.Once
}

type message struct {
	topic string
	data  []byte
	km    kafka.Message
}

// NewConsumer creates a new Kafka consumer.
func NewConsumer(opts ...ConsumerOption) (*Consumer, error) {
	cfg := &ConsumerConfig{
		GroupID:     "default",
		WorkerCount: 1,
		BufferSize:  10,
		RetryMax:    3,
		BackoffMin:  50 * time.Millisecond,
		BackoffMax:  2 * time.Second,
		MinBytes:    10e3,
		MaxBytes:    10e6,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("brokers are required")
	}

	c := &Consumer{
		cfg:      cfg,
		readers:  make(map[string]*kafka.Reader),
		handlers: make(map[string]MessageHandler),
		stopChan: make(chan struct{}),
		msgChan:  make(chan *message, cfg.BufferSize),
	}

	initConsumerMetricsOnce()

	if cfg.DLQTopic != "" {
		c.dlq = &kafka.Writer{Addr: kafka.TCP(cfg.Brokers...), Balancer: &kafka.LeastBytes{}}
	}

	return c, nil
}

// RegisterHandler registers a message handler for its topic.
func (c *Consumer) RegisterHandler(handler MessageHandler) {
	topic := handler.Topic()
	if _, ok := c.handlers[topic]; ok {
		log.Printf("warn: handler already registered for topic %s", topic)
		return
	}
	c.handlers[topic] = handler
}

// Start starts readers and the worker pool.
func (c *Consumer) Start() error {
	for topic := range c.handlers {
		c.readers[topic] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  c.cfg.Brokers,
			Topic:    topic,
			GroupID:  c.cfg.GroupID,
			MinBytes: c.cfg.MinBytes,
			MaxBytes: c.cfg.MaxBytes,
		})
	}

	for i := 0; i < c.cfg.WorkerCount; i++ {
		c.wg.Add(1)
		go c.messageWorker()
	}

	for topic, reader := range c.readers {
		c.wg.Add(1)
		go c.consumeMessages(topic, reader)
	}

	log.Printf("kafka consumer: started topics=%d workers=%d", len(c.readers), c.cfg.WorkerCount)
	return nil
}

// Stop stops the consumer gracefully.
func (c *Consumer) Stop(ctx context.Context) error {
	var stopErr error

	c.stopOnce.Do(func() {
		log.Println("kafka consumer: stopping...")

		close(c.stopChan)
		close(c.msgChan)

		stopErr = c.waitForWg(ctx)

		for topic, reader := range c.readers {
			if err := reader.Close(); err != nil {
				log.Printf("error closing reader for topic %s: %v", topic, err)
			}
		}

		if c.dlq != nil {
			if err := c.dlq.Close(); err != nil {
				log.Printf("error closing dlq writer: %v", err)
			}
		}
	})

	return stopErr
}

func (c *Consumer) waitForWg(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("timeout waiting for consumer to stop: %w", ctx.Err())
	case <-done:
		return nil
	}
}

func (c *Consumer) consumeMessages(topic string, reader *kafka.Reader) {
	defer c.wg.Done()

	for {
		select {
		case <-c.stopChan:
			return
		default:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		msg, err := reader.ReadMessage(ctx)
		cancel()

		if err != nil {
			if !errors.Is(err, context.DeadlineExceeded) {
				log.Printf("error reading message from topic %s: %v", topic, err)
			}
			continue
		}

		select {
		case c.msgChan <- &message{topic: topic, data: msg.Value, km: msg}:
			consumerQueueDepth.WithLabelValues(topic).Set(float64(len(c.msgChan)))
		case <-c.stopChan:
			return
		}
	}
}

func (c *Consumer) messageWorker() {
	defer c.wg.Done()

	for msg := range c.msgChan {
		handler, ok := c.handlers[msg.topic]
		if !ok {
			continue
		}
		c.handleWithRetry(handler, msg)
	}
}

func (c *Consumer) handleWithRetry(handler MessageHandler, msg *message) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic in message handler for topic %s: %v", msg.topic, r)
		}
	}()

	var err error
	for attempt := 1; ; attempt++ {
		err = handler.Handle(context.Background(), msg.data)
		if err == nil || attempt > c.cfg.RetryMax {
			break
		}

		select {
		case <-time.After(backoffWithJitter(c.cfg.BackoffMin, c.cfg.BackoffMax, attempt)):
		case <-c.stopChan:
			return
		}
	}

	if err != nil {
		log.Printf("error handling message from topic %s: %v", msg.topic, err)
		consumerFailures.WithLabelValues(msg.topic).Inc()
		c.publishDLQ(msg)
	}

	// Commit on success or after DLQ to avoid poison loops.
	if err == nil || c.dlq != nil {
		if reader := c.readers[msg.topic]; reader != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if cerr := reader.CommitMessages(ctx, msg.km); cerr != nil {
				log.Printf("error committing message on topic %s: %v", msg.topic, cerr)
			}
			cancel()
		}
	}

	consumerHandleLatency.WithLabelValues(msg.topic).Observe(time.Since(start).Seconds())
}

func (c *Consumer) publishDLQ(msg *message) {
	if c.dlq == nil || c.cfg.DLQTopic == "" {
		return
	}
	err := c.dlq.WriteMessages(context.Background(), kafka.Message{
		Topic:   c.cfg.DLQTopic,
		Value:   msg.data,
		Time:    time.Now(),
		Headers: []kafka.Header{{Key: "source_topic", Value: []byte(msg.topic)}},
	})
	if err != nil {
		log.Printf("error writing to DLQ topic %s: %v", c.cfg.DLQTopic, err)
	}
}

func backoffWithJitter(min, max time.Duration, attempt int) time.Duration {
	if min <= 0 {
		min = 50 * time.Millisecond
	}
	if max < min {
		max = min
	}
	exp := min * time.Duration(1<<uint(attempt-1))
	if exp > max {
		exp = max
	}
	jitter := time.Duration(rand.Int63n(int64(exp)/2 + 1))
	return exp - jitter
}

// Consumer metrics
var (
	consumerQueueDepth    *prometheus.GaugeVec
	consumerHandleLatency *prometheus.HistogramVec
	consumerFailures      *prometheus.CounterVec
	consumerMetricsOnce   sync.Once
)

func initConsumerMetricsOnce() {
	consumerMetricsOnce.Do(func() {
		consumerQueueDepth = promauto.NewGaugeVec(
			prometheus.GaugeOpts{Name: "cotsignal_kafka_consumer_queue_depth", Help: "Number of messages waiting in consumer queue"},
			[]string{"topic"},
		)
		consumerHandleLatency = promauto.NewHistogramVec(
			prometheus.HistogramOpts{Name: "cotsignal_kafka_consumer_handle_seconds", Help: "Handling time per message"},
			[]string{"topic"},
		)
		consumerFailures = promauto.NewCounterVec(
			prometheus.CounterOpts{Name: "cotsignal_kafka_consumer_failures_total", Help: "Messages that exhausted retries"},
			[]string{"topic"},
		)
	})
}
