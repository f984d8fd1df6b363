package events

import (
	"context"
	"sync"
	"time"

	"clinichours-service/internal/app/contracts"
	"clinichours-service/internal/app/models"
	"clinichours-service/internal/pkg/constvars"
	"clinichours-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// RuleEvent is the payload published to the rule events queue.
type RuleEvent struct {
	Event      string               `json:"event"`
	RuleID     string               `json:"rule_id"`
	RuleType   string               `json:"rule_type,omitempty"`
	OccurredAt time.Time            `json:"occurred_at"`
	Intervals  []eventInterval `json:"intervals,omitempty"`
}

type eventInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var (
	ruleEventPublisherInstance contracts.RuleEventPublisher
	onceRuleEventPublisher     sync.Once
)

type ruleEventPublisher struct {
	ch  *amqp.Channel
	log *zap.Logger
	mu  sync.Mutex
}

// NewRuleEventPublisher declares the durable rule events queue and returns a
// publisher bound to it.
func NewRuleEventPublisher(conn *amqp.Connection, logger *zap.Logger) (contracts.RuleEventPublisher, error) {
	var initErr error
	onceRuleEventPublisher.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = ch.QueueDeclare(
			constvars.RabbitMQRuleEventsQueue,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			initErr = err
			return
		}

		ruleEventPublisherInstance = &ruleEventPublisher{
			ch:  ch,
			log: logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return ruleEventPublisherInstance, nil
}

func (p *ruleEventPublisher) PublishRuleCreated(ctx context.Context, rule *models.Rule) error {
	intervals := make([]eventInterval, 0, len(rule.Intervals))
	for _, interval := range rule.Intervals {
		intervals = append(intervals, eventInterval{
			Start: interval.Start.String(),
			End:   interval.End.String(),
		})
	}

	return p.publish(ctx, RuleEvent{
		Event:      constvars.RuleEventCreated,
		RuleID:     rule.ID,
		RuleType:   string(rule.RuleType),
		OccurredAt: time.Now().UTC(),
		Intervals:  intervals,
	})
}

func (p *ruleEventPublisher) PublishRuleDeleted(ctx context.Context, ruleID string) error {
	return p.publish(ctx, RuleEvent{
		Event:      constvars.RuleEventDeleted,
		RuleID:     ruleID,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *ruleEventPublisher) publish(ctx context.Context, event RuleEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := p.ch.PublishWithContext(ctx, "", constvars.RabbitMQRuleEventsQueue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.RabbitMQRuleEventsQueue)
	}

	p.log.Info("ruleEventPublisher.publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, constvars.RabbitMQRuleEventsQueue),
		zap.String(constvars.LoggingRuleIDKey, event.RuleID),
	)
	return nil
}
