// Package kafka publishes custody notifications to the SPG and IAPS feeds.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"casework/internal/custody/models"
	"casework/pkg/requestcontext"
)

// Notification event types carried in the eventType header and payload.
const (
	EventKeyDateCreated       = "KEY_DATE_CREATED"
	EventKeyDateUpdated       = "KEY_DATE_UPDATED"
	EventCustodyUpdated       = "CUSTODY_UPDATED"
	EventCustodyLocationMoved = "CUSTODY_LOCATION_CHANGED"
	EventSentenceUpdated      = "SENTENCE_UPDATED"
)

// Publisher writes one record to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte, headers map[string]string) error
}

// Notification is the JSON body written to both feeds.
type Notification struct {
	MessageID       string    `json:"messageId"`
	EventType       string    `json:"eventType"`
	CRN             string    `json:"crn,omitempty"`
	CaseID          int64     `json:"offenderId,omitempty"`
	EventID         int64     `json:"eventId"`
	CustodyID       int64     `json:"custodyId,omitempty"`
	KeyDateType     string    `json:"keyDateType,omitempty"`
	CustodialStatus string    `json:"custodialStatus,omitempty"`
	InstitutionCode string    `json:"institutionCode,omitempty"`
	BookingNumber   string    `json:"bookingNumber,omitempty"`
	Actor           string    `json:"actor,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

type publisher struct {
	pub   Publisher
	topic string
}

func (p publisher) send(ctx context.Context, n Notification) error {
	n.MessageID = uuid.NewString()
	n.Actor = requestcontext.Actor(ctx)
	n.OccurredAt = requestcontext.Now(ctx)
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal %s notification: %w", n.EventType, err)
	}
	headers := map[string]string{
		"eventType": n.EventType,
		"messageId": n.MessageID,
	}
	if rid := requestcontext.RequestID(ctx); rid != "" {
		headers["requestId"] = rid
	}
	key := []byte(fmt.Sprintf("%d", n.EventID))
	if n.CRN != "" {
		key = []byte(n.CRN)
	}
	return p.pub.Publish(ctx, p.topic, key, body, headers)
}

// SPGNotifier implements ports.Notifier.
type SPGNotifier struct {
	publisher
}

func NewSPGNotifier(pub Publisher, topic string) *SPGNotifier {
	return &SPGNotifier{publisher{pub: pub, topic: topic}}
}

func (n *SPGNotifier) NotifyNewKeyDate(ctx context.Context, c *models.Case, e *models.SentenceEvent, typeCode string) error {
	msg := notificationFor(EventKeyDateCreated, c, e)
	msg.KeyDateType = typeCode
	return n.send(ctx, msg)
}

func (n *SPGNotifier) NotifyUpdateOfKeyDate(ctx context.Context, c *models.Case, e *models.SentenceEvent, typeCode string) error {
	msg := notificationFor(EventKeyDateUpdated, c, e)
	msg.KeyDateType = typeCode
	return n.send(ctx, msg)
}

func (n *SPGNotifier) NotifyCustodyUpdate(ctx context.Context, c *models.Case, e *models.SentenceEvent) error {
	return n.send(ctx, notificationFor(EventCustodyUpdated, c, e))
}

func (n *SPGNotifier) NotifyCustodyLocationChange(ctx context.Context, c *models.Case, e *models.SentenceEvent) error {
	return n.send(ctx, notificationFor(EventCustodyLocationMoved, c, e))
}

// IAPSNotifier implements ports.IAPSNotifier.
type IAPSNotifier struct {
	publisher
}

func NewIAPSNotifier(pub Publisher, topic string) *IAPSNotifier {
	return &IAPSNotifier{publisher{pub: pub, topic: topic}}
}

func (n *IAPSNotifier) NotifyEventUpdated(ctx context.Context, e *models.SentenceEvent) error {
	return n.send(ctx, notificationFor(EventSentenceUpdated, nil, e))
}

func notificationFor(eventType string, c *models.Case, e *models.SentenceEvent) Notification {
	n := Notification{
		EventType: eventType,
		EventID:   int64(e.ID),
	}
	if c != nil {
		n.CRN = c.CRN.String()
		n.CaseID = int64(c.ID)
	}
	if e.Custody != nil {
		n.CustodyID = int64(e.Custody.ID)
		n.CustodialStatus = string(e.Custody.Status)
		n.BookingNumber = e.Custody.BookingNumber.String()
		if e.Custody.Institution != nil {
			n.InstitutionCode = e.Custody.Institution.Code
		}
	}
	return n
}

// LogPublisher stands in for the broker when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, key, value []byte, headers map[string]string) error {
	p.logger.InfoContext(ctx, "notification not sent, kafka disabled",
		"request_id", requestcontext.RequestID(ctx),
		"topic", topic,
		"key", string(key),
		"event_type", headers["eventType"],
	)
	return nil
}
