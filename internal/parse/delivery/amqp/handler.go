package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	amqp091 "github.com/rabbitmq/amqp091-go"

	"task-nlp-service/internal/parse"
)

// Run declares the queue and serves parse requests until the context is
// cancelled. Every message is acked exactly once, whether or not it could
// be answered: requeueing a malformed request would loop forever.
func (c *consumer) Run(ctx context.Context) error {
	if _, err := c.mq.DeclareQueue(c.queue); err != nil {
		return fmt.Errorf("failed to declare queue %q: %w", c.queue, err)
	}

	deliveries, err := c.mq.Consume(c.queue)
	if err != nil {
		return fmt.Errorf("failed to consume queue %q: %w", c.queue, err)
	}

	c.l.Infof(ctx, "AMQP consumer waiting on queue %q", c.queue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed for queue %q", c.queue)
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *consumer) handleDelivery(ctx context.Context, d amqp091.Delivery) {
	reply := c.process(ctx, d.Body)

	if d.ReplyTo == "" || d.CorrelationId == "" {
		c.l.Warn(ctx, "AMQP request without reply_to or correlation_id, reply dropped")
	} else {
		body, err := json.Marshal(reply)
		if err != nil {
			c.l.Errorf(ctx, "failed to marshal reply: %v", err)
		} else if err := c.mq.Publish(ctx, d.ReplyTo, d.CorrelationId, body); err != nil {
			c.l.Errorf(ctx, "failed to publish reply to %q: %v", d.ReplyTo, err)
		}
	}

	if err := d.Ack(false); err != nil {
		c.l.Errorf(ctx, "failed to ack delivery: %v", err)
	}
}

// process converts one request body into a reply envelope. Transport-level
// failures aside, every input yields a reply: bad requests carry Err and a
// null record.
func (c *consumer) process(ctx context.Context, body []byte) responseEnvelope {
	var req requestEnvelope
	if err := json.Unmarshal(body, &req); err != nil {
		return errorReply(fmt.Errorf("invalid request body: %w", err))
	}

	if req.Pattern != PatternParseText {
		return errorReply(fmt.Errorf("%w: expected %q, got %q", ErrPatternMismatch, PatternParseText, req.Pattern))
	}
	if req.Data == "" {
		return errorReply(ErrMissingData)
	}

	output, err := c.uc.Parse(ctx, parse.ParseInput{RawText: req.Data})
	if err != nil {
		c.l.Errorf(ctx, "uc.Parse: %v", err)
		return errorReply(err)
	}

	return responseEnvelope{
		Response:   &output.Record,
		IsDisposed: true,
	}
}

func errorReply(err error) responseEnvelope {
	msg := err.Error()
	return responseEnvelope{
		IsDisposed: true,
		Err:        &msg,
	}
}
