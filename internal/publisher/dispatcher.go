package publisher

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(context.Context, ...kafka.Message) error
}

// Dispatcher drains the staging queue and delivers registration events to Kafka.
// Failed batches are requeued until the per-event attempt cap is reached, then
// dropped with a counter. There is no durable dead-letter store; the directory
// itself is in-memory and events are best-effort by design of the service.
type Dispatcher struct {
	queue            *Queue
	producer         messageWriter
	pollInterval     time.Duration
	batchSize        int
	maxAttempts      int
	logger           *log.Logger
	shutdownComplete chan struct{}
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(queue *Queue, producer messageWriter, pollInterval time.Duration, batchSize, maxAttempts int) *Dispatcher {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Dispatcher{
		queue:            queue,
		producer:         producer,
		pollInterval:     pollInterval,
		batchSize:        batchSize,
		maxAttempts:      maxAttempts,
		logger:           log.New(log.Writer(), "[dispatcher] ", log.LstdFlags),
		shutdownComplete: make(chan struct{}),
	}
}

// Start launches the polling loop. It should be called in a goroutine.
func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.pollInterval)
	defer func() {
		ticker.Stop()
		close(d.shutdownComplete)
	}()

	for {
		if err := d.processBatch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Printf("dispatch error: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Wait blocks until the dispatcher has stopped.
func (d *Dispatcher) Wait() {
	<-d.shutdownComplete
}

func (d *Dispatcher) processBatch(ctx context.Context) error {
	batch := d.queue.Dequeue(d.batchSize)
	if len(batch) == 0 {
		return nil
	}

	start := time.Now()
	defer func() { batchDuration.Observe(time.Since(start).Seconds()) }()

	records := make([]kafka.Message, 0, len(batch))
	for _, env := range batch {
		records = append(records, kafka.Message{
			Key:   []byte(env.PartitionKey),
			Value: []byte(env.Payload),
			Time:  time.Now().UTC(),
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(env.EventType)},
				{Key: "activity", Value: []byte(env.Activity)},
			},
		})
	}

	if err := d.producer.WriteMessages(ctx, records...); err != nil {
		failedCounter.Add(float64(len(batch)))
		d.retryOrDrop(batch, err)
		return err
	}

	deliveredCounter.Add(float64(len(batch)))
	return nil
}

func (d *Dispatcher) retryOrDrop(batch []Envelope, cause error) {
	retry := make([]Envelope, 0, len(batch))
	for _, env := range batch {
		env.Attempts++
		if env.Attempts >= d.maxAttempts {
			droppedCounter.WithLabelValues("max_attempts").Inc()
			d.logger.Printf("dropping event after %d attempts (event_type=%s, activity=%s): %v", env.Attempts, env.EventType, env.Activity, cause)
			continue
		}
		retry = append(retry, env)
	}
	if len(retry) > 0 {
		d.queue.Requeue(retry)
	}
}
