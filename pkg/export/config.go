package export

import (
	"context"
	"errors"

	"github.com/matzehuels/graphsketch/pkg/config"
)

// Set is the group of publishers named in the configuration.
type Set struct {
	file  *FilePublisher
	http  *HTTPPublisher
	redis *RedisPublisher
	mongo *MongoPublisher
}

// FromConfig builds the configured publishers, connecting to Redis and
// MongoDB when they are enabled. Connections opened before a failure are
// closed.
func FromConfig(ctx context.Context, cfg config.ExportConfig) (*Set, error) {
	s := &Set{}
	if cfg.File != "" {
		s.file = &FilePublisher{Path: cfg.File}
	}
	if cfg.HTTPURL != "" {
		s.http = NewHTTPPublisher(cfg.HTTPURL, cfg.HTTPTimeout.Duration)
	}
	if cfg.Redis.Addr != "" {
		p, err := NewRedisPublisher(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Channel:  cfg.Redis.Channel,
			Key:      cfg.Redis.Key,
		})
		if err != nil {
			return nil, err
		}
		s.redis = p
	}
	if cfg.Mongo.URI != "" {
		p, err := NewMongoPublisher(ctx, MongoOptions{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.mongo = p
	}
	return s, nil
}

// Empty reports whether no sink is configured.
func (s *Set) Empty() bool { return len(s.Names()) == 0 }

// Names lists the configured sinks.
func (s *Set) Names() []string {
	var names []string
	if s.file != nil {
		names = append(names, "file")
	}
	if s.http != nil {
		names = append(names, "http")
	}
	if s.redis != nil {
		names = append(names, "redis")
	}
	if s.mongo != nil {
		names = append(names, "mongo")
	}
	return names
}

// Publisher returns a publisher sending to every configured sink.
func (s *Set) Publisher() Publisher { return s.ForSession("") }

// ForSession is like Publisher but tags stored documents with a session id.
func (s *Set) ForSession(id string) Publisher {
	var ps []Publisher
	if s.file != nil {
		ps = append(ps, s.file)
	}
	if s.http != nil {
		ps = append(ps, s.http)
	}
	if s.redis != nil {
		ps = append(ps, s.redis)
	}
	if s.mongo != nil {
		ps = append(ps, s.mongo.ForSession(id))
	}
	return Multi(ps...)
}

// Close releases the Redis and MongoDB connections.
func (s *Set) Close(ctx context.Context) error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.mongo != nil {
		errs = append(errs, s.mongo.Close(ctx))
	}
	return errors.Join(errs...)
}
