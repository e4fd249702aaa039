package amqp

import (
	"context"

	"task-nlp-service/internal/parse"
	pkgLog "task-nlp-service/pkg/log"
	"task-nlp-service/pkg/rabbitmq"
)

// Consumer is the RPC consumer for parse requests.
type Consumer interface {
	Run(ctx context.Context) error
}

type consumer struct {
	l     pkgLog.Logger
	uc    parse.UseCase
	mq    *rabbitmq.Client
	queue string
}

// New creates a new AMQP parse consumer.
func New(l pkgLog.Logger, uc parse.UseCase, mq *rabbitmq.Client, queue string) Consumer {
	return &consumer{
		l:     l,
		uc:    uc,
		mq:    mq,
		queue: queue,
	}
}
