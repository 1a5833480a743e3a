package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/oggyb/interview-match/internal/cache"
	"github.com/oggyb/interview-match/internal/clock"
	"github.com/oggyb/interview-match/internal/config"
	"github.com/oggyb/interview-match/internal/db"
	"github.com/oggyb/interview-match/internal/events"
)

// Open builds the full AppContext from configuration: database (migrated),
// Redis, the event publisher and the reference-zone clock. The returned
// closer releases the connections.
//
// Events go to AMQP when AMQP_URL is set, otherwise they are logged.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*AppContext, io.Closer, error) {
	days, err := clock.LoadDayKeyer(cfg.Quota.Timezone, nil)
	if err != nil {
		return nil, nil, err
	}

	database, err := db.NewDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init db: %w", err)
	}

	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(ctx); err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	closers := closeAll{redisCache}
	var pub events.Publisher
	if cfg.AMQP.URL != "" {
		amqpPub := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		closers = append(closers, amqpPub)
		pub = amqpPub
		log.Info("publishing events to amqp", "exchange", cfg.AMQP.Exchange)
	} else {
		pub = events.NewLogPublisher(log)
	}
	if sqlDB, err := database.DB(); err == nil {
		closers = append(closers, sqlDB)
	}

	return New(cfg, database, redisCache, log, days, pub), closers, nil
}

type closeAll []io.Closer

func (c closeAll) Close() error {
	var first error
	for _, cl := range c {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
