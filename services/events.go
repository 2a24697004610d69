package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/smartlink-edu/campus-payments/models"
	"github.com/smartlink-edu/campus-payments/utils"
)

// Payment lifecycle event types published to the payments topic.
const (
	EventPaymentCreated   = "payment.created"
	EventPaymentCompleted = "payment.completed"
	EventPaymentFailed    = "payment.failed"
)

const paymentsTopic = "payments"

// PaymentEvent is the JSON envelope written to Kafka.
type PaymentEvent struct {
	Event       string    `json:"event"`
	PaymentID   string    `json:"payment_id"`
	StudentName string    `json:"student_name"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher publishes payment lifecycle events so downstream systems
// (accounts, notifications) can react without polling the database.
// Publishing is best-effort: failures are logged, never surfaced to clients.
type EventPublisher struct {
	writer *kafka.Writer
}

// NewEventPublisher returns nil when no brokers are configured, which
// callers treat as "events disabled".
func NewEventPublisher(brokerList string) *EventPublisher {
	var brokers []string
	for _, b := range strings.Split(brokerList, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		utils.LogInfo("Kafka events disabled (KAFKA_BROKERS is empty)")
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        paymentsTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireAll,
	}

	utils.LogInfo("Kafka producer initialized. Brokers=%v, Topic=%s", brokers, paymentsTopic)
	return &EventPublisher{writer: writer}
}

// PublishPaymentEvent writes one lifecycle event keyed by payment id.
func (p *EventPublisher) PublishPaymentEvent(event string, payment *models.Payment) {
	if p == nil || p.writer == nil {
		return
	}

	payload, err := json.Marshal(PaymentEvent{
		Event:       event,
		PaymentID:   payment.ID,
		StudentName: payment.StudentName,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      payment.Status,
		OccurredAt:  time.Now(),
	})
	if err != nil {
		utils.LogError("Failed to marshal payment event %s for payment %s: %v", event, payment.ID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payment.ID),
		Value: payload,
	}); err != nil {
		utils.LogError("Failed to publish %s event for payment %s: %v", event, payment.ID, err)
		return
	}
	utils.LogDebug("Published %s event for payment %s", event, payment.ID)
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() {
	if p != nil && p.writer != nil {
		_ = p.writer.Close()
	}
}
