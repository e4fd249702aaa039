package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"task-nlp-service/pkg/log"
)

type Middleware struct {
	l               log.Logger
	rateLimitPerMin int
	limiters        *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	if rateLimitPerMin <= 0 {
		rateLimitPerMin = 60
	}
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
	}
}
